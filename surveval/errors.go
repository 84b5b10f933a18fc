// SPDX-License-Identifier: MIT
// Package surveval: sentinel error set.
// Evaluation errors are separate from survexpr's construction errors: a tree
// that constructs cleanly can still fail here (bad time grid, leaf contract
// violations, unbindable covariate rows). Tests and callers branch with
// errors.Is; no evaluation path panics.

package surveval

import "errors"

var (
	// ErrNilExpr indicates a nil expression was passed to an entrypoint.
	ErrNilExpr = errors.New("surveval: nil expression")

	// ErrNilDistribution indicates a Base leaf holds a nil handle (a tree
	// assembled by hand rather than through survexpr constructors).
	ErrNilDistribution = errors.New("surveval: base leaf has nil distribution")

	// ErrBadTimes indicates the requested time grid is not finite,
	// non-negative and non-decreasing.
	ErrBadTimes = errors.New("surveval: times must be finite, non-negative and ascending")

	// ErrBadResultKind indicates WithKind received an unknown ResultKind.
	ErrBadResultKind = errors.New("surveval: unknown result kind")

	// ErrLeafOutput indicates a Distribution returned the wrong number of
	// values for the requested grid (leaf contract violation).
	ErrLeafOutput = errors.New("surveval: leaf returned wrong number of values")

	// ErrZeroWeightSum indicates a Pooled node whose weights sum to zero;
	// normalization is undefined there.
	ErrZeroWeightSum = errors.New("surveval: pooled weights sum to zero")

	// ErrCovariateMismatch indicates a covariate row reached a leaf that
	// cannot bind it (the handle does not implement CovariateDistribution,
	// or rejected the row). Schema checking is deliberately deferred to this
	// point; construction never rejects a shape mismatch.
	ErrCovariateMismatch = errors.New("surveval: covariate row cannot bind to leaf")
)
