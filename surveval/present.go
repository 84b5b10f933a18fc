// SPDX-License-Identifier: MIT
// Package surveval: presentation hooks over a finished tree.
//
// Two thin queries the rendering layer needs beyond raw curves:
//   - JoinBoundaries — the cutpoints of the top-level projection chain, for
//     marking switchover times on a plot.
//   - Summarize — time/survival pairs; when the root is a Shift the wrapped
//     expression's own summary is re-rendered with the shift added to every
//     reported time.

package surveval

import (
	"fmt"

	"github.com/katalvlaran/survkit/survexpr"
)

// JoinBoundaries returns the cutpoints of the projection chain at the root
// of x, ascending. A Join of N distributions yields N−1 boundaries; a
// non-Projection root yields nil. Only the top-level chain is inspected —
// projections nested under other operators are interior structure, not
// switchover marks of the whole model.
//
// Complexity: O(chain depth).
func JoinBoundaries(x survexpr.Expr) []float64 {
	var rev []float64
	for {
		p, ok := x.(*survexpr.Projection)
		if !ok {
			break
		}
		rev = append(rev, p.At)
		x = p.Early
	}
	if rev == nil {
		return nil
	}

	// The outermost node carries the last cutpoint; reverse to ascending.
	out := make([]float64, len(rev))
	for i, at := range rev {
		out[len(rev)-1-i] = at
	}

	return out
}

// Summarize renders x as time/survival pairs on the given grid.
//
// When the root is a Shift node the summary is the wrapped expression's own
// summary with the shift added to every reported time — the curve itself is
// untouched, only its clock is relabeled. Any other root evaluates directly.
//
// Errors: as ComputeSurv.
func Summarize(x survexpr.Expr, times []float64) ([]SummaryPoint, error) {
	if x == nil {
		return nil, fmt.Errorf("Summarize: %w", ErrNilExpr)
	}

	if sh, ok := x.(*survexpr.Shift); ok {
		pts, err := Summarize(sh.Base, times)
		if err != nil {
			return nil, err
		}
		for i := range pts {
			pts[i].Time += sh.Shift
		}

		return pts, nil
	}

	vals, err := ComputeSurv(x, times)
	if err != nil {
		return nil, err
	}
	pts := make([]SummaryPoint, len(vals))
	for i, s := range vals {
		pts[i] = SummaryPoint{Time: times[i], Survival: s}
	}

	return pts, nil
}
