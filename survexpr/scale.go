// SPDX-License-Identifier: MIT
// Package survexpr: proportional/shift constructors and the collapse rule.
//
// ApplyHR, ApplyAF, ApplyOR and ApplyShift share one normalization pattern
// (⊕ = multiplication for the three ratios, addition for shift; identity
// 1 and 0 respectively):
//
//  1. Validate the control value: variadic input must reduce to one distinct
//     scalar, finite, and for the ratios strictly positive. The log variants
//     accept any finite value and exponentiate first.
//  2. Identity short-circuit: applying the identity returns the input
//     expression unchanged — no node is built, the tree never grows on
//     no-op applications.
//  3. Same-kind collapse: applying over a node of the same kind combines the
//     scalars into a NEW node sharing the old node's Base; if the combined
//     scalar hits the identity the wrapper disappears entirely and the inner
//     Base is returned. The old node is never touched — references to it held
//     elsewhere stay valid.
//  4. Otherwise a fresh wrapper node is built. Different kinds always nest;
//     only same-kind adjacency collapses.
//
// Consequence relied upon downstream: a persisted ratio node never carries
// the value 1, a persisted Shift never carries 0, and no chain of same-kind
// wrappers can exist — ApplyHR(ApplyHR(e, 2), 3) is structurally identical
// to ApplyHR(e, 6).

package survexpr

import "math"

// Identity values for the collapse rule.
const (
	ratioIdentity = 1.0
	shiftIdentity = 0.0
)

// validateRatio resolves a variadic ratio control to its single validated
// scalar. With logScale set the value is exponentiated after the scalar
// reduction, which also guarantees positivity.
func validateRatio(method, name string, vals []float64, logScale bool) (float64, error) {
	v, err := distinctScalar(method, vals)
	if err != nil {
		return 0, err
	}
	if err = requireFinite(method, name, v); err != nil {
		return 0, err
	}
	if logScale {
		return math.Exp(v), nil
	}
	if err = requirePositive(method, name, v); err != nil {
		return 0, err
	}

	return v, nil
}

// ApplyHR multiplies the hazard of x by a ratio. The control is variadic to
// mirror replicated call sites; it must reduce to one distinct value.
//
// Identity and collapse:
//
//	ApplyHR(x, 1)              == x (unchanged, no node built)
//	ApplyHR(ApplyHR(x, a), b)  == ApplyHR(x, a*b) structurally
//	ApplyHR(ApplyHR(x, 2), .5) == x (wrapper fully removed)
//
// Errors: ErrNonScalar, ErrNotFinite, ErrNotPositive.
func ApplyHR(x Expr, hr ...float64) (Expr, error) {
	v, err := validateRatio(methodApplyHR, "hr", hr, false)
	if err != nil {
		return nil, err
	}

	return scaleHR(x, v)
}

// ApplyLogHR is ApplyHR with the control given on the log scale: any finite
// value is accepted and exponentiated before application.
func ApplyLogHR(x Expr, logHR ...float64) (Expr, error) {
	v, err := validateRatio(methodApplyLogHR, "log_hr", logHR, true)
	if err != nil {
		return nil, err
	}

	return scaleHR(x, v)
}

func scaleHR(x Expr, v float64) (Expr, error) {
	if x == nil {
		return nil, errf(methodApplyHR, "expression", ErrNilExpr)
	}
	if v == ratioIdentity {
		return x, nil
	}
	if ph, ok := x.(*ProportionalHazards); ok {
		combined := ph.HR * v
		if combined == ratioIdentity {
			return ph.Base, nil
		}

		return &ProportionalHazards{Base: ph.Base, HR: combined}, nil
	}

	return &ProportionalHazards{Base: x, HR: v}, nil
}

// ApplyAF rescales the event-time axis of x by an acceleration factor.
// Identity/collapse semantics match ApplyHR (multiplicative, identity 1).
//
// Errors: ErrNonScalar, ErrNotFinite, ErrNotPositive.
func ApplyAF(x Expr, af ...float64) (Expr, error) {
	v, err := validateRatio(methodApplyAF, "af", af, false)
	if err != nil {
		return nil, err
	}

	return scaleAF(x, v)
}

// ApplyLogAF is ApplyAF with the control on the log scale.
func ApplyLogAF(x Expr, logAF ...float64) (Expr, error) {
	v, err := validateRatio(methodApplyLogAF, "log_af", logAF, true)
	if err != nil {
		return nil, err
	}

	return scaleAF(x, v)
}

func scaleAF(x Expr, v float64) (Expr, error) {
	if x == nil {
		return nil, errf(methodApplyAF, "expression", ErrNilExpr)
	}
	if v == ratioIdentity {
		return x, nil
	}
	if aft, ok := x.(*AcceleratedFailureTime); ok {
		combined := aft.AF * v
		if combined == ratioIdentity {
			return aft.Base, nil
		}

		return &AcceleratedFailureTime{Base: aft.Base, AF: combined}, nil
	}

	return &AcceleratedFailureTime{Base: x, AF: v}, nil
}

// ApplyOR multiplies the odds of event of x by an odds ratio.
// Identity/collapse semantics match ApplyHR (multiplicative, identity 1).
//
// Errors: ErrNonScalar, ErrNotFinite, ErrNotPositive.
func ApplyOR(x Expr, or ...float64) (Expr, error) {
	v, err := validateRatio(methodApplyOR, "or", or, false)
	if err != nil {
		return nil, err
	}

	return scaleOR(x, v)
}

// ApplyLogOR is ApplyOR with the control on the log scale.
func ApplyLogOR(x Expr, logOR ...float64) (Expr, error) {
	v, err := validateRatio(methodApplyLogOR, "log_or", logOR, true)
	if err != nil {
		return nil, err
	}

	return scaleOR(x, v)
}

func scaleOR(x Expr, v float64) (Expr, error) {
	if x == nil {
		return nil, errf(methodApplyOR, "expression", ErrNilExpr)
	}
	if v == ratioIdentity {
		return x, nil
	}
	if po, ok := x.(*ProportionalOdds); ok {
		combined := po.OR * v
		if combined == ratioIdentity {
			return po.Base, nil
		}

		return &ProportionalOdds{Base: po.Base, OR: combined}, nil
	}

	return &ProportionalOdds{Base: x, OR: v}, nil
}

// ApplyShift moves the time origin of x by a finite offset (positive shifts
// move the curve backward in time). The collapse is additive with identity 0:
//
//	ApplyShift(x, 0)                 == x (unchanged)
//	ApplyShift(ApplyShift(x, a), b)  == ApplyShift(x, a+b) structurally
//	ApplyShift(ApplyShift(x, 2), -2) == x (wrapper fully removed)
//
// There is no log variant; any finite value, either sign, is a valid shift.
//
// Errors: ErrNonScalar, ErrNotFinite, ErrNilExpr.
func ApplyShift(x Expr, shift ...float64) (Expr, error) {
	v, err := distinctScalar(methodApplyShift, shift)
	if err != nil {
		return nil, err
	}
	if err = requireFinite(methodApplyShift, "shift", v); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, errf(methodApplyShift, "expression", ErrNilExpr)
	}
	if v == shiftIdentity {
		return x, nil
	}
	if sh, ok := x.(*Shift); ok {
		combined := sh.Shift + v
		if combined == shiftIdentity {
			return sh.Base, nil
		}

		return &Shift{Base: sh.Base, Shift: combined}, nil
	}

	return &Shift{Base: x, Shift: v}, nil
}
