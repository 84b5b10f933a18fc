// SPDX-License-Identifier: MIT
// Package surveval: the recursive evaluation kernel.
//
// Algorithm outline (ComputeSurv):
//  1. Resolve options, validate the expression and the time grid
//     (finite, non-negative, non-decreasing).
//  2. Recurse over the tree computing S(t) for every requested time.
//     Each composite case evaluates its children on a derived grid:
//     Projection re-bases the late grid by the cutpoint, AFT divides the
//     grid by the acceleration factor, Shift subtracts the offset. All three
//     transforms preserve grid ordering, so child validation never repeats.
//  3. If ConditionalProb was requested, post-transform the survival curve
//     into per-interval conditional event probabilities.
//
// Covariate rows travel down the recursion: a CovariateModel binds each of
// its rows in turn and averages. An inner CovariateModel re-binds — the
// innermost row wins for the sub-tree it wraps.
//
// Complexity: O(nodes × len(times)) time, O(len(times)) per recursion level.

package surveval

import (
	"fmt"
	"math"

	"github.com/katalvlaran/survkit/survexpr"
)

// ComputeSurv evaluates x on the given ascending time grid and returns one
// value per time: survival S(t) by default, or conditional event
// probabilities under WithKind(ConditionalProb).
//
// An empty grid yields an empty result. Errors: ErrNilExpr, ErrBadTimes,
// ErrBadResultKind, plus any leaf/structure error from the recursion
// (ErrNilDistribution, ErrLeafOutput, ErrZeroWeightSum, ErrCovariateMismatch).
func ComputeSurv(x survexpr.Expr, times []float64, opts ...Option) ([]float64, error) {
	var cfg evalConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.kind != Survival && cfg.kind != ConditionalProb {
		return nil, fmt.Errorf("ComputeSurv: kind=%d: %w", cfg.kind, ErrBadResultKind)
	}
	if x == nil {
		return nil, fmt.Errorf("ComputeSurv: %w", ErrNilExpr)
	}
	if err := validateTimes(times); err != nil {
		return nil, err
	}

	s, err := survival(x, times, nil)
	if err != nil {
		return nil, err
	}
	if cfg.kind == ConditionalProb {
		return toConditional(s), nil
	}

	return s, nil
}

// validateTimes enforces the grid contract shared by every entrypoint.
func validateTimes(times []float64) error {
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return fmt.Errorf("times[%d]=%v: %w", i, t, ErrBadTimes)
		}
		if i > 0 && t < times[i-1] {
			return fmt.Errorf("times[%d]=%v after %v: %w", i, t, times[i-1], ErrBadTimes)
		}
	}

	return nil
}

// toConditional maps a survival curve to per-interval conditional event
// probabilities: p_0 = 1 − S(t_0), p_i = 1 − S(t_i)/S(t_{i−1}).
// Once survival is exhausted (previous S = 0) the event is certain.
func toConditional(s []float64) []float64 {
	out := make([]float64, len(s))
	prev := 1.0
	for i, v := range s {
		if prev == 0 {
			out[i] = 1
		} else {
			out[i] = 1 - v/prev
		}
		prev = v
	}

	return out
}

// survival is the recursive kernel. row is the covariate binding in effect
// (nil when unconditioned); it reaches leaves through every composite.
func survival(x survexpr.Expr, times []float64, row survexpr.CovariateRow) ([]float64, error) {
	switch n := x.(type) {
	case *survexpr.Base:
		return leafSurvival(n, times, row)

	case *survexpr.Projection:
		return projectionSurvival(n, times, row)

	case *survexpr.Pooled:
		wsum := 0.0
		for _, w := range n.Weights {
			wsum += w
		}
		if wsum <= 0 {
			return nil, fmt.Errorf("Pooled: weight sum %v: %w", wsum, ErrZeroWeightSum)
		}
		out := make([]float64, len(times))
		for i, m := range n.Members {
			vals, err := survival(m, times, row)
			if err != nil {
				return nil, err
			}
			w := n.Weights[i] / wsum
			for j, s := range vals {
				out[j] += w * s
			}
		}

		return out, nil

	case *survexpr.ProportionalHazards:
		vals, err := survival(n.Base, times, row)
		if err != nil {
			return nil, err
		}
		for i, s := range vals {
			vals[i] = math.Pow(s, n.HR)
		}

		return vals, nil

	case *survexpr.AcceleratedFailureTime:
		grid := make([]float64, len(times))
		for i, t := range times {
			grid[i] = t / n.AF
		}

		return survival(n.Base, grid, row)

	case *survexpr.ProportionalOdds:
		vals, err := survival(n.Base, times, row)
		if err != nil {
			return nil, err
		}
		for i, s := range vals {
			vals[i] = s / (s + n.OR*(1-s))
		}

		return vals, nil

	case *survexpr.Shift:
		return shiftSurvival(n, times, row)

	case *survexpr.AdditiveHazards:
		// Summing hazards is multiplying survivals.
		out := make([]float64, len(times))
		for i := range out {
			out[i] = 1
		}
		for _, m := range n.Members {
			vals, err := survival(m, times, row)
			if err != nil {
				return nil, err
			}
			for j, s := range vals {
				out[j] *= s
			}
		}

		return out, nil

	case *survexpr.CovariateModel:
		if len(n.Covariates) == 0 {
			return nil, fmt.Errorf("CovariateModel: no rows: %w", ErrCovariateMismatch)
		}
		out := make([]float64, len(times))
		for _, r := range n.Covariates {
			vals, err := survival(n.Base, times, r)
			if err != nil {
				return nil, err
			}
			for j, s := range vals {
				out[j] += s
			}
		}
		inv := 1 / float64(len(n.Covariates))
		for j := range out {
			out[j] *= inv
		}

		return out, nil

	default:
		// Unreachable for trees built via survexpr (sealed variant set).
		return nil, fmt.Errorf("surveval: unhandled variant %v", x.Kind())
	}
}

// leafSurvival evaluates a Base leaf, binding the covariate row if one is in
// effect. The leaf output length is verified against the grid.
func leafSurvival(n *survexpr.Base, times []float64, row survexpr.CovariateRow) ([]float64, error) {
	if n.Dist == nil {
		return nil, fmt.Errorf("Base: %w", ErrNilDistribution)
	}

	var (
		vals []float64
		err  error
	)
	if row == nil {
		vals, err = n.Dist.Survival(times)
	} else {
		cd, ok := n.Dist.(CovariateDistribution)
		if !ok {
			return nil, fmt.Errorf("Base: handle %T takes no covariates: %w", n.Dist, ErrCovariateMismatch)
		}
		vals, err = cd.SurvivalWithCovariates(row, times)
	}
	if err != nil {
		return nil, fmt.Errorf("Base: %w", err)
	}
	if len(vals) != len(times) {
		return nil, fmt.Errorf("Base: got %d values for %d times: %w", len(vals), len(times), ErrLeafOutput)
	}

	return vals, nil
}

// projectionSurvival evaluates a switchover node: the early branch answers
// times before the cutpoint; from the cutpoint on, survival continues as
// S_early(at) · S_late(t − at).
func projectionSurvival(n *survexpr.Projection, times []float64, row survexpr.CovariateRow) ([]float64, error) {
	// split = first index at or past the cutpoint.
	split := len(times)
	for i, t := range times {
		if t >= n.At {
			split = i

			break
		}
	}

	out := make([]float64, len(times))
	if split == len(times) {
		vals, err := survival(n.Early, times, row)
		if err != nil {
			return nil, err
		}
		copy(out, vals)

		return out, nil
	}

	// Early grid plus the anchor point at the cutpoint itself; times[:split]
	// are all < At, so the appended anchor keeps the grid ascending.
	earlyGrid := make([]float64, split, split+1)
	copy(earlyGrid, times[:split])
	earlyGrid = append(earlyGrid, n.At)
	earlyVals, err := survival(n.Early, earlyGrid, row)
	if err != nil {
		return nil, err
	}
	copy(out, earlyVals[:split])
	anchor := earlyVals[split]

	lateGrid := make([]float64, len(times)-split)
	for i, t := range times[split:] {
		lateGrid[i] = t - n.At
	}
	lateVals, err := survival(n.Late, lateGrid, row)
	if err != nil {
		return nil, err
	}
	for i, s := range lateVals {
		out[split+i] = anchor * s
	}

	return out, nil
}

// shiftSurvival evaluates a time-origin shift: times before the shifted
// origin report survival 1 (the event cannot have occurred yet); the rest
// evaluate the base at t − shift.
func shiftSurvival(n *survexpr.Shift, times []float64, row survexpr.CovariateRow) ([]float64, error) {
	k := len(times)
	for i, t := range times {
		if t-n.Shift >= 0 {
			k = i

			break
		}
	}

	out := make([]float64, len(times))
	for i := 0; i < k; i++ {
		out[i] = 1
	}
	if k < len(times) {
		grid := make([]float64, len(times)-k)
		for i, t := range times[k:] {
			grid[i] = t - n.Shift
		}
		vals, err := survival(n.Base, grid, row)
		if err != nil {
			return nil, err
		}
		copy(out[k:], vals)
	}

	return out, nil
}
