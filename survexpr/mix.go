// SPDX-License-Identifier: MIT
// Package survexpr: Mix — weighted mixture constructor.
//
// Contract:
//   - N ≥ 2 expressions and exactly N weights (else ErrTooFewMembers /
//     ErrCountMismatch).
//   - Each weight finite and ≥ 0, validated element-wise.
//   - Weights are NOT required to sum to 1; normalization, if wanted, is the
//     evaluator's responsibility.
//   - Result is one flat Pooled node: all members at the same level, no
//     pairwise folding.
//
// Complexity: O(N) validation, O(N) copies, one node allocated.

package survexpr

import "fmt"

// minMixMembers is the least number of distributions a mixture needs.
const minMixMembers = 2

// Mix builds a flat weighted mixture of xs with index-paired weights.
//
// Errors (checked in this order):
//   - ErrTooFewMembers, ErrNilExpr — member cardinality / nil children.
//   - ErrCountMismatch — len(weights) != len(xs).
//   - ErrNotFinite, ErrNegativeValue — per-weight domain.
//
// Both slices are copied; the caller's slices stay independent of the tree.
func Mix(xs []Expr, weights []float64) (Expr, error) {
	if err := requireMembers(methodMix, xs, minMixMembers); err != nil {
		return nil, err
	}
	if len(weights) != len(xs) {
		return nil, errf(methodMix,
			fmt.Sprintf("got %d weights for %d expressions", len(weights), len(xs)),
			ErrCountMismatch)
	}
	for i, w := range weights {
		name := fmt.Sprintf("weight[%d]", i)
		if err := requireFinite(methodMix, name, w); err != nil {
			return nil, err
		}
		if err := requireNonNegative(methodMix, name, w); err != nil {
			return nil, err
		}
	}

	members := make([]Expr, len(xs))
	copy(members, xs)
	ws := make([]float64, len(weights))
	copy(ws, weights)

	return &Pooled{Members: members, Weights: ws}, nil
}
