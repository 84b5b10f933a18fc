// SPDX-License-Identifier: MIT
// Package survexpr: canonical validation helpers.
//
// Purpose:
//   - Provide a single source of truth for the scalar/member checks shared by
//     every constructor (Join, Mix, AddHazards, ApplyHR/AF/OR/Shift,
//     SetCovariates).
//   - Fail fast: every validator runs before any node is allocated, so a
//     partially built tree is never observable.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - distinctScalar is O(len(vals)); the rest are O(1) per value.

package survexpr

import (
	"fmt"
	"math"
)

// Method tags used when wrapping sentinels with call context.
const (
	methodNewBase       = "NewBase"
	methodJoin          = "Join"
	methodJoinAt        = "JoinAt"
	methodMix           = "Mix"
	methodAddHazards    = "AddHazards"
	methodApplyHR       = "ApplyHR"
	methodApplyAF       = "ApplyAF"
	methodApplyOR       = "ApplyOR"
	methodApplyShift    = "ApplyShift"
	methodApplyLogHR    = "ApplyLogHR"
	methodApplyLogAF    = "ApplyLogAF"
	methodApplyLogOR    = "ApplyLogOR"
	methodSetCovariates = "SetCovariates"
)

// errf wraps a sentinel with method context: "<Method>: <msg>: <sentinel>".
// Callers still branch with errors.Is against the sentinel.
func errf(method, msg string, sentinel error) error {
	return fmt.Errorf("%s: %s: %w", method, msg, sentinel)
}

// distinctScalar reduces a possibly replicated control value to its single
// distinct scalar. Call sites mirroring vectorized front-ends may pass the
// same value many times; passing two different values is an error, as is
// passing none.
//
// Errors: ErrNonScalar.
// Complexity: O(len(vals)).
func distinctScalar(method string, vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, errf(method, "no value supplied", ErrNonScalar)
	}
	v := vals[0]
	for _, u := range vals[1:] {
		// NaN never equals itself, so replicated NaNs also land here; a lone
		// NaN falls through and is caught by the finiteness check instead.
		if u != v {
			return 0, errf(method, fmt.Sprintf("values %v and %v differ", v, u), ErrNonScalar)
		}
	}

	return v, nil
}

// requireFinite rejects NaN and ±Inf.
//
// Errors: ErrNotFinite.
func requireFinite(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errf(method, fmt.Sprintf("%s=%v", name, v), ErrNotFinite)
	}

	return nil
}

// requirePositive rejects v ≤ 0; used for ratios (hr/af/or).
// Assumes finiteness was checked first.
//
// Errors: ErrNotPositive.
func requirePositive(method, name string, v float64) error {
	if v <= 0 {
		return errf(method, fmt.Sprintf("%s=%v", name, v), ErrNotPositive)
	}

	return nil
}

// requireNonNegative rejects v < 0; used for cutpoints and weights.
// Assumes finiteness was checked first.
//
// Errors: ErrNegativeValue.
func requireNonNegative(method, name string, v float64) error {
	if v < 0 {
		return errf(method, fmt.Sprintf("%s=%v", name, v), ErrNegativeValue)
	}

	return nil
}

// requireMembers checks member cardinality and rejects nil children.
// Validation order: count first, then nil scan — matches the documented
// sentinel priority (cardinality before per-value checks).
//
// Errors: ErrTooFewMembers, ErrNilExpr.
// Complexity: O(len(xs)).
func requireMembers(method string, xs []Expr, min int) error {
	if len(xs) < min {
		return errf(method, fmt.Sprintf("got %d expressions, need ≥ %d", len(xs), min), ErrTooFewMembers)
	}
	for i, x := range xs {
		if x == nil {
			return errf(method, fmt.Sprintf("expression %d", i), ErrNilExpr)
		}
	}

	return nil
}
