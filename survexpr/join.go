// SPDX-License-Identifier: MIT
// Package survexpr: Join — temporal projection/switchover constructor.
//
// Contract:
//   - N ≥ 2 expressions and exactly N−1 cutpoints (else ErrTooFewMembers /
//     ErrCountMismatch).
//   - Every cutpoint finite and ≥ 0; the sequence ascending — strictly by
//     default, ties opt-in via AllowTiedCutpoints() (else ErrUnsortedCutpoints).
//   - Left fold: seed = first expression; each later expression e_i with
//     cutpoint c_i wraps the accumulator as Projection{Early: acc, Late: e_i,
//     At: c_i}. The result is left-nested — the first distribution is the
//     deepest Early branch, so Join(d1, 10, d2, 20, d3) reads "d1 until 10,
//     d2 from 10 until 20, d3 after 20".
//
// Complexity: O(N) validation + O(N) fold, O(N) nodes allocated.

package survexpr

import "fmt"

// minJoinMembers is the least number of distributions a projection needs.
const minJoinMembers = 2

// joinConfig is the resolved option state for one Join call.
type joinConfig struct {
	allowTies bool
}

// JoinOption configures a single Join/JoinAt call.
type JoinOption func(*joinConfig)

// AllowTiedCutpoints relaxes the default strict cutpoint ordering so that
// consecutive cutpoints may be equal (two switchovers at the same instant).
// The default rejects ties; this opt-in exists for compatibility with
// front-ends that only guaranteed non-decreasing sequences.
func AllowTiedCutpoints() JoinOption {
	return func(cfg *joinConfig) { cfg.allowTies = true }
}

// Join builds a projection chain: xs[0] is used before cutpoints[0], xs[1]
// between cutpoints[0] and cutpoints[1], and so on; xs[N-1] after the last
// cutpoint. This is the primary entrypoint; JoinAt is interleaved sugar.
//
// Errors (checked in this order):
//   - ErrTooFewMembers, ErrNilExpr — member cardinality / nil children.
//   - ErrCountMismatch — len(cutpoints) != len(xs)-1.
//   - ErrNotFinite, ErrNegativeValue — per-cutpoint domain.
//   - ErrUnsortedCutpoints — sequence not ascending.
//
// All validation precedes the fold: on error no node has been built.
func Join(xs []Expr, cutpoints []float64, opts ...JoinOption) (Expr, error) {
	var cfg joinConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := requireMembers(methodJoin, xs, minJoinMembers); err != nil {
		return nil, err
	}
	if len(cutpoints) != len(xs)-1 {
		return nil, errf(methodJoin,
			fmt.Sprintf("got %d cutpoints for %d expressions, need %d", len(cutpoints), len(xs), len(xs)-1),
			ErrCountMismatch)
	}
	for i, c := range cutpoints {
		name := fmt.Sprintf("cutpoint[%d]", i)
		if err := requireFinite(methodJoin, name, c); err != nil {
			return nil, err
		}
		if err := requireNonNegative(methodJoin, name, c); err != nil {
			return nil, err
		}
		if i == 0 {
			continue
		}
		prev := cutpoints[i-1]
		if c < prev || (!cfg.allowTies && c == prev) {
			return nil, fmt.Errorf("%s: cutpoint[%d]=%v after %v: %w",
				methodJoin, i, c, prev, ErrUnsortedCutpoints)
		}
	}

	// Left fold: later distributions and cutpoints wrap around the earlier
	// accumulator, leaving the first distribution deepest.
	acc := xs[0]
	for i := 1; i < len(xs); i++ {
		acc = &Projection{Early: acc, Late: xs[i], At: cutpoints[i-1]}
	}

	return acc, nil
}

// Breakpoint pairs a switchover time with the distribution used from that
// time on; the argument form consumed by JoinAt.
type Breakpoint struct {
	// At is the cutpoint time.
	At float64

	// Dist is the expression projected from At onward.
	Dist Expr
}

// JoinAt is call-site sugar over Join for the interleaved reading
// "first, then from t1 use d1, then from t2 use d2, ...":
//
//	JoinAt(d1, Breakpoint{10, d2}, Breakpoint{20, d3})
//
// It splits the interleaved form into the two parallel sequences and
// delegates every rule to Join; it adds no semantics of its own.
func JoinAt(first Expr, rest ...Breakpoint) (Expr, error) {
	xs := make([]Expr, 0, len(rest)+1)
	cutpoints := make([]float64, 0, len(rest))
	xs = append(xs, first)
	for _, bp := range rest {
		xs = append(xs, bp.Dist)
		cutpoints = append(cutpoints, bp.At)
	}

	x, err := Join(xs, cutpoints)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodJoinAt, err)
	}

	return x, nil
}
