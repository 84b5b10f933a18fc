// SPDX-License-Identifier: MIT
// Package survexpr: variant data model for composite survival expressions.
//
// This file declares the sealed Expr interface, the Kind tag, the opaque
// Distribution leaf handle, and the nine node variants. The variant set is
// closed: every node type lives in this file and carries the unexported
// exprNode marker, so an evaluator's type switch can be exhaustive.
//
// Ownership and lifecycle (package contract):
//   - A node is created once, by its constructor, fully initialized, and is
//     never mutated afterwards. Constructors copy incoming slices/maps, so a
//     caller keeping the original slice cannot reach into a built tree.
//   - Child expressions are shared structurally, not copied: because nothing
//     mutates after construction, the same sub-tree may appear as a building
//     block in many independent composites, across goroutines, safely.
//   - Exported fields exist for evaluator dispatch and tests; treat them as
//     read-only.

package survexpr

// Kind tags the node variant for logging and non-type-switch dispatch.
type Kind int

const (
	// KindBase — leaf wrapping an external fitted/defined distribution.
	KindBase Kind = iota

	// KindProjection — temporal switchover: early model before At, late after.
	KindProjection

	// KindPooled — weighted mixture of member expressions.
	KindPooled

	// KindProportionalHazards — hazard multiplied by HR.
	KindProportionalHazards

	// KindAcceleratedFailureTime — event time rescaled by AF.
	KindAcceleratedFailureTime

	// KindProportionalOdds — odds of event multiplied by OR.
	KindProportionalOdds

	// KindShift — time origin shifted by Shift.
	KindShift

	// KindAdditiveHazards — member hazards summed (competing risks).
	KindAdditiveHazards

	// KindCovariateModel — evaluation conditioned on covariate rows.
	KindCovariateModel
)

// kindNames backs Kind.String; order must match the constant block above.
var kindNames = [...]string{
	"Base",
	"Projection",
	"Pooled",
	"ProportionalHazards",
	"AcceleratedFailureTime",
	"ProportionalOdds",
	"Shift",
	"AdditiveHazards",
	"CovariateModel",
}

// String returns the canonical variant name, or "Kind(?)" out of range.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}

	return kindNames[k]
}

// Distribution is the opaque handle to an externally fitted or defined
// time-to-event model. survexpr never inspects it; it only stores the
// reference in a Base leaf. The single method is the evaluation contract the
// sibling surveval package consumes.
//
// Implementations must be treated as immutable once shared into a tree.
type Distribution interface {
	// Survival returns S(t) for each requested time, in order.
	Survival(times []float64) ([]float64, error)
}

// CovariateRow maps covariate names to values for one subject or group.
// Values are deliberately open-schema (numbers, factor labels, ...); this
// package performs no column reconciliation — mismatches surface downstream
// when the evaluator binds rows to a leaf.
type CovariateRow map[string]interface{}

// Expr is a node in a composite survival expression tree.
//
// The interface is sealed: only the variants in this file implement it.
type Expr interface {
	// Kind reports the variant tag of this node.
	Kind() Kind

	// exprNode is the sealed-set marker.
	exprNode()
}

// Base is the leaf variant: an opaque external distribution handle.
type Base struct {
	// Dist is the external handle; never inspected here, never nil for a
	// node built via NewBase.
	Dist Distribution
}

// Projection switches from Early to Late at time At: Early is used for
// t < At, Late (re-based to start at At) afterward. Chains built by Join are
// left-nested: the first distribution sits at the deepest Early position.
type Projection struct {
	Early Expr
	Late  Expr

	// At is the cutpoint: finite, ≥ 0, and ascending along a Join chain.
	At float64
}

// Pooled is a flat weighted mixture. Weights pair with Members by index and
// are not required to sum to 1; normalization is the evaluator's concern.
type Pooled struct {
	Members []Expr
	Weights []float64
}

// ProportionalHazards multiplies the hazard of Base by HR.
// Invariant: HR > 0 and HR != 1 for any persisted node (see ApplyHR).
type ProportionalHazards struct {
	Base Expr
	HR   float64
}

// AcceleratedFailureTime rescales event time of Base by AF.
// Invariant: AF > 0 and AF != 1 for any persisted node (see ApplyAF).
type AcceleratedFailureTime struct {
	Base Expr
	AF   float64
}

// ProportionalOdds multiplies the odds of event of Base by OR.
// Invariant: OR > 0 and OR != 1 for any persisted node (see ApplyOR).
type ProportionalOdds struct {
	Base Expr
	OR   float64
}

// Shift moves the time origin of Base by Shift: evaluating at t is
// evaluating Base at t − Shift (a positive shift moves the curve backward).
// Invariant: Shift != 0 for any persisted node (see ApplyShift).
type Shift struct {
	Base  Expr
	Shift float64
}

// AdditiveHazards sums the hazards of Members (independent competing risks).
// A single member is structurally permitted and is NOT collapsed away.
type AdditiveHazards struct {
	Members []Expr
}

// CovariateModel conditions evaluation of Base on one or more covariate
// rows. Row order is meaningful (assignments row first, external rows in
// their original order); rows are never deduplicated.
type CovariateModel struct {
	Base       Expr
	Covariates []CovariateRow
}

func (*Base) Kind() Kind                   { return KindBase }
func (*Projection) Kind() Kind             { return KindProjection }
func (*Pooled) Kind() Kind                 { return KindPooled }
func (*ProportionalHazards) Kind() Kind    { return KindProportionalHazards }
func (*AcceleratedFailureTime) Kind() Kind { return KindAcceleratedFailureTime }
func (*ProportionalOdds) Kind() Kind       { return KindProportionalOdds }
func (*Shift) Kind() Kind                  { return KindShift }
func (*AdditiveHazards) Kind() Kind        { return KindAdditiveHazards }
func (*CovariateModel) Kind() Kind         { return KindCovariateModel }

func (*Base) exprNode()                   {}
func (*Projection) exprNode()             {}
func (*Pooled) exprNode()                 {}
func (*ProportionalHazards) exprNode()    {}
func (*AcceleratedFailureTime) exprNode() {}
func (*ProportionalOdds) exprNode()       {}
func (*Shift) exprNode()                  {}
func (*AdditiveHazards) exprNode()        {}
func (*CovariateModel) exprNode()         {}

// NewBase wraps an external distribution handle as a leaf expression.
//
// Errors:
//   - ErrNilDistribution if dist is nil.
//
// Complexity: O(1).
func NewBase(dist Distribution) (Expr, error) {
	if dist == nil {
		return nil, errf(methodNewBase, "handle is nil", ErrNilDistribution)
	}

	return &Base{Dist: dist}, nil
}

// MustBase is NewBase for call sites with a statically non-nil handle
// (fixtures, examples). Panics on nil — programmer error, not user input.
func MustBase(dist Distribution) Expr {
	x, err := NewBase(dist)
	if err != nil {
		panic(err)
	}

	return x
}
