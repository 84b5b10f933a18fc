package survexpr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/survkit/survexpr"
)

// TestApply_IdentityLaws: applying the identity value returns the SAME
// expression — reference equality, no node built. hr/af/or identity is 1,
// shift identity is 0.
func TestApply_IdentityLaws(t *testing.T) {
	e := leaf(t, "e")

	x, err := survexpr.ApplyHR(e, 1)
	require.NoError(t, err)
	assert.Same(t, e, x, "ApplyHR(e,1) must return e itself")

	x, err = survexpr.ApplyAF(e, 1)
	require.NoError(t, err)
	assert.Same(t, e, x, "ApplyAF(e,1) must return e itself")

	x, err = survexpr.ApplyOR(e, 1)
	require.NoError(t, err)
	assert.Same(t, e, x, "ApplyOR(e,1) must return e itself")

	x, err = survexpr.ApplyShift(e, 0)
	require.NoError(t, err)
	assert.Same(t, e, x, "ApplyShift(e,0) must return e itself")
}

// TestApply_CollapseLaw: same-kind reapplication combines the scalars into a
// single wrapper structurally identical to the one-shot application.
func TestApply_CollapseLaw(t *testing.T) {
	e := leaf(t, "e")

	once, err := survexpr.ApplyHR(e, 6)
	require.NoError(t, err)
	step, err := survexpr.ApplyHR(e, 2)
	require.NoError(t, err)
	twice, err := survexpr.ApplyHR(step, 3)
	require.NoError(t, err)
	assert.Equal(t, once, twice, "ApplyHR(ApplyHR(e,2),3) must equal ApplyHR(e,6)")

	ph, ok := twice.(*survexpr.ProportionalHazards)
	require.True(t, ok)
	assert.Same(t, e, ph.Base, "collapse must share the original base, not rewrap")
	assert.Equal(t, 6.0, ph.HR)

	// additive analogue for shift
	sOnce, err := survexpr.ApplyShift(e, 5)
	require.NoError(t, err)
	sStep, err := survexpr.ApplyShift(e, 2)
	require.NoError(t, err)
	sTwice, err := survexpr.ApplyShift(sStep, 3)
	require.NoError(t, err)
	assert.Equal(t, sOnce, sTwice, "ApplyShift(ApplyShift(e,2),3) must equal ApplyShift(e,5)")
}

// TestApply_CollapseToIdentity: when the combined scalar hits the identity
// the wrapper disappears and the original expression returns.
func TestApply_CollapseToIdentity(t *testing.T) {
	e := leaf(t, "e")

	doubled, err := survexpr.ApplyHR(e, 2)
	require.NoError(t, err)
	back, err := survexpr.ApplyHR(doubled, 0.5)
	require.NoError(t, err)
	assert.Same(t, e, back, "hr 2 then 0.5 must remove the wrapper entirely")

	shifted, err := survexpr.ApplyShift(e, 2)
	require.NoError(t, err)
	back, err = survexpr.ApplyShift(shifted, -2)
	require.NoError(t, err)
	assert.Same(t, e, back, "shift +2 then -2 must remove the wrapper entirely")
}

// TestApply_CollapseNeverMutates: collapse builds a NEW node; a reference to
// the first wrapper held elsewhere keeps its original scalar.
func TestApply_CollapseNeverMutates(t *testing.T) {
	e := leaf(t, "e")

	first, err := survexpr.ApplyHR(e, 2)
	require.NoError(t, err)
	_, err = survexpr.ApplyHR(first, 3)
	require.NoError(t, err)

	assert.Equal(t, 2.0, first.(*survexpr.ProportionalHazards).HR,
		"reapplication must not mutate the node it collapsed over")
}

// TestApply_DifferentKindsNest: only same-kind adjacency collapses; an AF
// over an HR wraps normally.
func TestApply_DifferentKindsNest(t *testing.T) {
	e := leaf(t, "e")

	hr, err := survexpr.ApplyHR(e, 2)
	require.NoError(t, err)
	af, err := survexpr.ApplyAF(hr, 3)
	require.NoError(t, err)

	aft, ok := af.(*survexpr.AcceleratedFailureTime)
	require.True(t, ok, "AF over HR must nest, not collapse")
	assert.Same(t, hr, aft.Base)

	// and an HR over that AF nests again rather than reaching the inner HR
	outer, err := survexpr.ApplyHR(af, 5)
	require.NoError(t, err)
	ph, ok := outer.(*survexpr.ProportionalHazards)
	require.True(t, ok)
	assert.Same(t, af, ph.Base, "collapse never skips across a different kind")
}

// TestApply_ReplicatedControls: a control may arrive replicated and must
// reduce to one distinct value; distinct values are rejected.
func TestApply_ReplicatedControls(t *testing.T) {
	e := leaf(t, "e")

	x, err := survexpr.ApplyOR(e, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x.(*survexpr.ProportionalOdds).OR)

	_, err = survexpr.ApplyOR(e, 2, 3)
	assert.ErrorIs(t, err, survexpr.ErrNonScalar)

	_, err = survexpr.ApplyShift(e)
	assert.ErrorIs(t, err, survexpr.ErrNonScalar, "missing control must fail")
}

// TestApply_DomainErrors: ratios must be finite and strictly positive,
// shifts finite; nil expressions are rejected.
func TestApply_DomainErrors(t *testing.T) {
	e := leaf(t, "e")

	_, err := survexpr.ApplyHR(e, 0)
	assert.ErrorIs(t, err, survexpr.ErrNotPositive)

	_, err = survexpr.ApplyAF(e, -2)
	assert.ErrorIs(t, err, survexpr.ErrNotPositive)

	_, err = survexpr.ApplyHR(e, math.NaN())
	assert.ErrorIs(t, err, survexpr.ErrNotFinite)

	_, err = survexpr.ApplyShift(e, math.Inf(1))
	assert.ErrorIs(t, err, survexpr.ErrNotFinite)

	_, err = survexpr.ApplyHR(nil, 2)
	assert.ErrorIs(t, err, survexpr.ErrNilExpr)
}

// TestApply_LogScale: log variants exponentiate first and accept any finite
// value; log 0 is the identity and returns the input unchanged.
func TestApply_LogScale(t *testing.T) {
	e := leaf(t, "e")

	x, err := survexpr.ApplyLogHR(e, math.Log(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x.(*survexpr.ProportionalHazards).HR, 1e-12)

	x, err = survexpr.ApplyLogAF(e, -1)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), x.(*survexpr.AcceleratedFailureTime).AF, 1e-15,
		"negative log value maps to a ratio below 1, still valid")

	x, err = survexpr.ApplyLogOR(e, 0)
	require.NoError(t, err)
	assert.Same(t, e, x, "log 0 is the multiplicative identity")

	_, err = survexpr.ApplyLogHR(e, math.Inf(1))
	assert.ErrorIs(t, err, survexpr.ErrNotFinite)
}
