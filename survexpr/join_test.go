package survexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/survkit/survexpr"
)

// stubDist is an opaque leaf fixture; the tree layer never evaluates it.
type stubDist struct{ name string }

func (s stubDist) Survival(times []float64) ([]float64, error) {
	out := make([]float64, len(times))
	for i := range out {
		out[i] = 1
	}

	return out, nil
}

func leaf(t *testing.T, name string) survexpr.Expr {
	t.Helper()
	x, err := survexpr.NewBase(stubDist{name: name})
	require.NoError(t, err, "NewBase on a non-nil handle must not error")

	return x
}

// TestJoin_LeftNested verifies the fold shape: Join(d1,10,d2,20,d3) must be
// a Projection whose Late is d3 at 20, wrapping Projection{d1,d2,10} — the
// first distribution deepest, never balanced or right-nested.
func TestJoin_LeftNested(t *testing.T) {
	d1, d2, d3 := leaf(t, "d1"), leaf(t, "d2"), leaf(t, "d3")

	x, err := survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{10, 20})
	require.NoError(t, err)

	outer, ok := x.(*survexpr.Projection)
	require.True(t, ok, "Join must produce a Projection root")
	assert.Equal(t, 20.0, outer.At, "outer cutpoint is the last one")
	assert.Same(t, d3, outer.Late, "last distribution sits at the outer Late")

	inner, ok := outer.Early.(*survexpr.Projection)
	require.True(t, ok, "Early of the outer node is the inner Projection")
	assert.Equal(t, 10.0, inner.At)
	assert.Same(t, d1, inner.Early, "first distribution is deepest")
	assert.Same(t, d2, inner.Late)
}

// TestJoin_TwoMembers checks the minimal chain: one cutpoint, one node.
func TestJoin_TwoMembers(t *testing.T) {
	d1, d2 := leaf(t, "d1"), leaf(t, "d2")

	x, err := survexpr.Join([]survexpr.Expr{d1, d2}, []float64{5})
	require.NoError(t, err)

	p, ok := x.(*survexpr.Projection)
	require.True(t, ok)
	assert.Same(t, d1, p.Early)
	assert.Same(t, d2, p.Late)
	assert.Equal(t, 5.0, p.At)
}

// TestJoin_Validation exercises the documented error priority: member count,
// cutpoint count, per-cutpoint domain, then ordering.
func TestJoin_Validation(t *testing.T) {
	d1, d2, d3 := leaf(t, "d1"), leaf(t, "d2"), leaf(t, "d3")

	_, err := survexpr.Join([]survexpr.Expr{d1}, nil)
	assert.ErrorIs(t, err, survexpr.ErrTooFewMembers, "one distribution is not a projection")

	_, err = survexpr.Join([]survexpr.Expr{d1, nil}, []float64{1})
	assert.ErrorIs(t, err, survexpr.ErrNilExpr, "nil member must be rejected")

	_, err = survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{10})
	assert.ErrorIs(t, err, survexpr.ErrCountMismatch, "3 expressions need exactly 2 cutpoints")

	_, err = survexpr.Join([]survexpr.Expr{d1, d2}, []float64{-5})
	assert.ErrorIs(t, err, survexpr.ErrNegativeValue, "negative cutpoint must be rejected")

	_, err = survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{20, 10})
	assert.ErrorIs(t, err, survexpr.ErrUnsortedCutpoints, "descending cutpoints must be rejected")

	_, err = survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{20, 10})
	assert.NotErrorIs(t, err, survexpr.ErrInvalidArgument, "unsorted is its own class, not InvalidArgument")
}

// TestJoin_TiedCutpoints verifies ties are rejected by default and admitted
// under the explicit AllowTiedCutpoints opt-in.
func TestJoin_TiedCutpoints(t *testing.T) {
	d1, d2, d3 := leaf(t, "d1"), leaf(t, "d2"), leaf(t, "d3")

	_, err := survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{10, 10})
	assert.ErrorIs(t, err, survexpr.ErrUnsortedCutpoints, "ties are rejected by default")

	x, err := survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{10, 10}, survexpr.AllowTiedCutpoints())
	assert.NoError(t, err, "ties pass under the opt-in")
	assert.Equal(t, survexpr.KindProjection, x.Kind())
}

// TestJoinAt_Sugar verifies the interleaved wrapper builds the identical
// structure as the parallel-sequence primary entrypoint.
func TestJoinAt_Sugar(t *testing.T) {
	d1, d2, d3 := leaf(t, "d1"), leaf(t, "d2"), leaf(t, "d3")

	x, err := survexpr.JoinAt(d1,
		survexpr.Breakpoint{At: 10, Dist: d2},
		survexpr.Breakpoint{At: 20, Dist: d3},
	)
	require.NoError(t, err)

	want, err := survexpr.Join([]survexpr.Expr{d1, d2, d3}, []float64{10, 20})
	require.NoError(t, err)
	assert.Equal(t, want, x, "sugar and primary form must agree structurally")

	_, err = survexpr.JoinAt(d1, survexpr.Breakpoint{At: 20, Dist: d2}, survexpr.Breakpoint{At: 10, Dist: d3})
	assert.ErrorIs(t, err, survexpr.ErrUnsortedCutpoints, "sugar delegates every rule to Join")
}

// TestJoin_DoesNotAliasInput verifies mutating the caller's slices after the
// call cannot reach the built tree.
func TestJoin_DoesNotAliasInput(t *testing.T) {
	d1, d2 := leaf(t, "d1"), leaf(t, "d2")
	xs := []survexpr.Expr{d1, d2}
	cuts := []float64{5}

	x, err := survexpr.Join(xs, cuts)
	require.NoError(t, err)

	xs[1] = nil
	cuts[0] = 99

	p := x.(*survexpr.Projection)
	assert.Same(t, d2, p.Late, "tree must not alias the caller's expression slice")
	assert.Equal(t, 5.0, p.At, "tree must not alias the caller's cutpoint slice")
}
