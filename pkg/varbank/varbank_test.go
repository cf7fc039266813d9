package varbank

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/types"
)

func TestFreshAndRenameDisjointTracks(t *testing.T) {
	st := term.NewStore()
	i := types.NewTable().Sort("i")
	b := NewBank(st)

	f1 := b.Fresh(i)
	f2 := b.Fresh(i)
	require.NotSame(t, f1, f2)
	require.True(t, f1.FCode%2 == 0)
	require.True(t, f2.FCode%2 == 0)

	r1 := b.RenameDisjoint(i)
	require.True(t, r1.FCode%2 != 0)
	require.True(t, IsFreshCode(f1.FCode))
}

func TestExternalNameRoundTrip(t *testing.T) {
	st := term.NewStore()
	i := types.NewTable().Sort("i")
	b := NewBank(st)
	v := b.Fresh(i)
	b.SetExternalName("X", v)

	found, ok := b.FindByExternalName("X")
	require.True(t, ok)
	require.Same(t, v, found)

	b.ClearExternalNames()
	_, ok = b.FindByExternalName("X")
	require.False(t, ok)
}

func TestBulkPropertyOps(t *testing.T) {
	st := term.NewStore()
	i := types.NewTable().Sort("i")
	b := NewBank(st)
	v1, v2 := b.Fresh(i), b.Fresh(i)

	b.BulkSetProperty([]*term.Cell{v1, v2}, PropUniversal)
	require.True(t, b.HasProperty(v1, PropUniversal))
	require.True(t, b.HasProperty(v2, PropUniversal))
	require.False(t, b.HasProperty(v1, PropProtected))

	b.BulkClearProperty([]*term.Cell{v1}, PropUniversal)
	require.False(t, b.HasProperty(v1, PropUniversal))
	require.True(t, b.HasProperty(v2, PropUniversal))
}
