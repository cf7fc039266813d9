package term

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eprover/eprover-sub005/pkg/types"
)

func TestStorePerfectSharing(t *testing.T) {
	st := NewStore()
	tys := types.NewTable()
	i := tys.Sort("i")

	a := st.Insert(1, i)
	b := st.Insert(1, i)
	require.Same(t, a, b, "two insertions of the same constant must be pointer-identical")

	f1 := st.Insert(2, i, a)
	f2 := st.Insert(2, i, b)
	require.Same(t, f1, f2, "children that are themselves shared must make the parent shared too")

	g := st.Insert(3, i, a)
	require.NotSame(t, f1, g, "different f_codes must not be shared")
}

func TestStoreFindMissesOnShapeDifference(t *testing.T) {
	st := NewStore()
	tys := types.NewTable()
	i := tys.Sort("i")
	a := st.Insert(1, i)

	_, ok := st.Find(2, i, []*Cell{a})
	require.False(t, ok)

	f := st.Insert(2, i, a)
	found, ok := st.Find(2, i, []*Cell{a})
	require.True(t, ok)
	require.Same(t, f, found)
}

func TestStoreMarkSweepReclaimsUnreachable(t *testing.T) {
	st := NewStore()
	tys := types.NewTable()
	i := tys.Sort("i")
	a := st.Insert(1, i)
	b := st.Insert(4, i) // unreferenced after sweep
	_ = b

	require.Equal(t, 2, st.Size())
	st.Mark(a)
	reclaimed := st.Sweep()
	require.Equal(t, 1, reclaimed)
	require.Equal(t, 1, st.Size())

	// a must still be findable; its shape was preserved across the sweep.
	found, ok := st.Find(1, i, nil)
	require.True(t, ok)
	require.Same(t, a, found)
}

func TestStoreVariablePanicsOnNonNegativeCode(t *testing.T) {
	st := NewStore()
	tys := types.NewTable()
	i := tys.Sort("i")
	require.Panics(t, func() { st.Variable(0, i) })
	require.Panics(t, func() { st.Variable(3, i) })
	require.NotPanics(t, func() { st.Variable(-1, i) })
}

func TestCellWeight(t *testing.T) {
	st := NewStore()
	tys := types.NewTable()
	i := tys.Sort("i")
	v := st.Variable(-1, i)
	require.Equal(t, int64(DefaultVarWeight), v.Weight())

	a := st.Insert(1, i)
	f := st.Insert(2, i, a, v)
	require.Equal(t, int64(DefaultFunWeight)+a.Weight()+v.Weight(), f.Weight())
}
