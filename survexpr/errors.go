// SPDX-License-Identifier: MIT
// Package survexpr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// survexpr package. All constructors MUST return these sentinels and tests
// MUST check them via errors.Is. No constructor panics on user input.

package survexpr

import (
	"errors"
	"fmt"
)

// NOTE ON TAXONOMY
// ----------------
// Two class sentinels exist: ErrInvalidArgument and ErrUnsortedCutpoints.
// The specific sentinels below are defined by wrapping ErrInvalidArgument
// with %w at definition time, so a caller may branch either coarsely
// (errors.Is(err, ErrInvalidArgument)) or precisely
// (errors.Is(err, ErrCountMismatch)). Constructors attach call context with
// fmt.Errorf("<Method>: ...: %w", ErrX) at the return site.
//
// All of these are terminal programmer-input errors: no retry semantics.

var (
	// ErrInvalidArgument is the class sentinel for every malformed scalar or
	// cardinality problem caught at construction time.
	ErrInvalidArgument = errors.New("survexpr: invalid argument")

	// ErrUnsortedCutpoints indicates that a Join cutpoint sequence is not
	// ascending. Strictly ascending is required unless AllowTiedCutpoints()
	// was passed, in which case ties between consecutive cutpoints pass.
	ErrUnsortedCutpoints = errors.New("survexpr: cutpoints are not ascending")
)

var (
	// ErrNonScalar indicates a replicated control value (hr, af, or, shift)
	// did not reduce to exactly one distinct value.
	ErrNonScalar = fmt.Errorf("%w: replicated value does not reduce to a single scalar", ErrInvalidArgument)

	// ErrNotFinite indicates a NaN or ±Inf where a finite value is required.
	ErrNotFinite = fmt.Errorf("%w: value is not finite", ErrInvalidArgument)

	// ErrNotPositive indicates a ratio (hr/af/or) that is not strictly positive.
	ErrNotPositive = fmt.Errorf("%w: value must be strictly positive", ErrInvalidArgument)

	// ErrNegativeValue indicates a cutpoint or weight below zero.
	ErrNegativeValue = fmt.Errorf("%w: value must be non-negative", ErrInvalidArgument)

	// ErrCountMismatch indicates mismatched parallel-sequence lengths,
	// e.g. len(cutpoints) != len(exprs)-1 or len(weights) != len(exprs).
	ErrCountMismatch = fmt.Errorf("%w: argument counts do not match", ErrInvalidArgument)

	// ErrTooFewMembers indicates fewer member expressions than the
	// constructor's minimum (2 for Join/Mix, 1 for AddHazards).
	ErrTooFewMembers = fmt.Errorf("%w: not enough member expressions", ErrInvalidArgument)

	// ErrNilExpr indicates a nil Expr argument; no tree may embed a nil child.
	ErrNilExpr = fmt.Errorf("%w: nil expression", ErrInvalidArgument)

	// ErrNilDistribution indicates NewBase received a nil leaf handle.
	ErrNilDistribution = fmt.Errorf("%w: nil distribution handle", ErrInvalidArgument)

	// ErrNoCovariateRows indicates SetCovariates ended up with zero rows
	// (no named assignments and no external table).
	ErrNoCovariateRows = fmt.Errorf("%w: covariate table has no rows", ErrInvalidArgument)
)
