package bank

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eprover/eprover-sub005/pkg/term"
)

func TestConstAndAppShareStructurallyEqualTerms(t *testing.T) {
	b := New(nil)
	i := b.Types.Sort("i")

	a1 := b.Const("a", i)
	a2 := b.Const("a", i)
	require.Same(t, a1, a2)

	f1 := b.App("f", i, a1)
	f2 := b.App("f", i, a2)
	require.Same(t, f1, f2)
}

func TestGCReclaimsUnreachable(t *testing.T) {
	b := New(nil)
	i := b.Types.Sort("i")

	keep := b.Const("keep", i)
	_ = b.Const("garbage", i)
	require.Equal(t, 2, b.Store.Size())

	reclaimed := b.GC([]*term.Cell{keep})
	require.Equal(t, 1, reclaimed)
	require.Equal(t, 1, b.Store.Size())
}
