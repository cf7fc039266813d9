package ac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/types"
)

func setup(t *testing.T) (*symtab.Signature, *term.Store, *types.Type) {
	t.Helper()
	return symtab.NewSignature(), term.NewStore(), types.NewTable().Sort("i")
}

func TestNormalizeFlattensACChain(t *testing.T) {
	sig, st, i := setup(t)
	plus := sig.InsertOrFind("plus", 2, i)
	plus.SetProp(symtab.PropAssociative)
	plus.SetProp(symtab.PropCommutative)
	a := sig.InsertOrFind("a", 0, i)
	b := sig.InsertOrFind("b", 0, i)
	c := sig.InsertOrFind("c", 0, i)
	aT, bT, cT := st.Insert(a.Code, i), st.Insert(b.Code, i), st.Insert(c.Code, i)

	// plus(plus(a, b), c) and plus(a, plus(b, c)) are AC-equal.
	left := st.Insert(plus.Code, i, st.Insert(plus.Code, i, aT, bT), cT)
	right := st.Insert(plus.Code, i, aT, st.Insert(plus.Code, i, bT, cT))

	n := NewNormalizer(sig, 16)
	nf := n.Normalize(left)
	require.Nil(t, nf.Leaf)
	require.Len(t, nf.Args, 3)

	require.True(t, n.Equal(left, right))
}

func TestEqualFastFailsOnWeightMismatch(t *testing.T) {
	sig, st, i := setup(t)
	f := sig.InsertOrFind("f", 1, i)
	a := sig.InsertOrFind("a", 0, i)
	aT := st.Insert(a.Code, i)
	fA := st.Insert(f.Code, i, aT) // weight 2 against a's weight 1

	n := NewNormalizer(sig, 16)
	require.False(t, n.Equal(aT, fA))
}

func TestCommutativeTwoArgSymbolSortsArgsOnly(t *testing.T) {
	sig, st, i := setup(t)
	eq := sig.InsertOrFind("eq", 2, i)
	eq.SetProp(symtab.PropCommutative)
	a := sig.InsertOrFind("a", 0, i)
	b := sig.InsertOrFind("b", 0, i)
	aT, bT := st.Insert(a.Code, i), st.Insert(b.Code, i)

	ab := st.Insert(eq.Code, i, aT, bT)
	ba := st.Insert(eq.Code, i, bT, aT)

	n := NewNormalizer(sig, 16)
	require.True(t, n.Equal(ab, ba))

	nf := n.Normalize(ab)
	require.Nil(t, nf.Leaf)
	require.Len(t, nf.Args, 2)
}

func TestNonACNonCommutativeDiffersOnArgOrder(t *testing.T) {
	sig, st, i := setup(t)
	f := sig.InsertOrFind("f", 2, i)
	a := sig.InsertOrFind("a", 0, i)
	b := sig.InsertOrFind("b", 0, i)
	aT, bT := st.Insert(a.Code, i), st.Insert(b.Code, i)

	fab := st.Insert(f.Code, i, aT, bT)
	fba := st.Insert(f.Code, i, bT, aT)

	n := NewNormalizer(sig, 16)
	require.False(t, n.Equal(fab, fba))
}

func TestNormalizeCachesByPointer(t *testing.T) {
	sig, st, i := setup(t)
	a := sig.InsertOrFind("a", 0, i)
	aT := st.Insert(a.Code, i)

	n := NewNormalizer(sig, 16)
	nf1 := n.Normalize(aT)
	nf2 := n.Normalize(aT)
	require.Same(t, nf1, nf2)
}
