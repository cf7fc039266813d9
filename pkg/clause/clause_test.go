package clause

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eprover/eprover-sub005/pkg/order"
	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/types"
)

func setup(t *testing.T) (*symtab.Signature, *term.Store, *types.Type) {
	t.Helper()
	sig := symtab.NewSignature()
	st := term.NewStore()
	tys := types.NewTable()
	return sig, st, tys.Sort("i")
}

func TestNewClauseUnitAndHornProps(t *testing.T) {
	sig, st, i := setup(t)
	a := sig.InsertOrFind("a", 0, i)
	b := sig.InsertOrFind("b", 0, i)
	aT, bT := st.Insert(a.Code, i), st.Insert(b.Code, i)

	unit := NewClause(1, NewLiteral(aT, nil, true))
	require.True(t, unit.HasProp(PropUnit))
	require.True(t, unit.HasProp(PropHorn))

	horn := NewClause(2, NewLiteral(aT, nil, false), NewLiteral(bT, nil, true))
	require.False(t, horn.HasProp(PropUnit))
	require.True(t, horn.HasProp(PropHorn))

	nonHorn := NewClause(3, NewLiteral(aT, nil, true), NewLiteral(bT, nil, true))
	require.False(t, nonHorn.HasProp(PropHorn))
}

func TestClauseIsEmptyAndWeight(t *testing.T) {
	empty := NewClause(1)
	require.True(t, empty.IsEmpty())
	require.Equal(t, int64(0), empty.Weight())
}

func TestMarkMaximalSelectsGreaterSide(t *testing.T) {
	sig, st, i := setup(t)
	f := sig.InsertOrFind("f", 1, i)
	a := sig.InsertOrFind("a", 0, i)
	aT := st.Insert(a.Code, i)
	fA := st.Insert(f.Code, i, aT)

	o := order.NewOCB(order.KindLPO, sig)
	o.SetPrecedence(f.Code, 1)

	big := NewLiteral(fA, aT, true)   // f(a) = a, f(a) > a
	small := NewLiteral(aT, nil, false) // ~a
	c := NewClause(1, big, small)
	c.MarkMaximal(o)

	require.True(t, big.HasProp(LitOriented))
	require.True(t, big.HasProp(LitMaximal))
}

func TestSelectLiteralsDefaultStrategy(t *testing.T) {
	sig, st, i := setup(t)
	a := sig.InsertOrFind("a", 0, i)
	b := sig.InsertOrFind("b", 0, i)
	aT, bT := st.Insert(a.Code, i), st.Insert(b.Code, i)

	neg1 := NewLiteral(aT, nil, false)
	neg1.setProp(LitMaximal)
	neg2 := NewLiteral(bT, nil, false)
	neg2.setProp(LitMaximal)
	c := NewClause(1, neg1, neg2)

	c.SelectLiterals(DefaultStrategy)
	selectedCount := 0
	for _, l := range c.Literals {
		if l.HasProp(LitSelected) {
			selectedCount++
		}
	}
	require.Equal(t, 1, selectedCount, "DefaultStrategy caps negative selection at one literal")
}

func TestSelectLiteralsInheritParamodOverridesCaps(t *testing.T) {
	sig, st, i := setup(t)
	a := sig.InsertOrFind("a", 0, i)
	aT := st.Insert(a.Code, i)

	neg := NewLiteral(aT, nil, false)
	neg.setProp(LitInheritParamod)
	c := NewClause(1, neg)
	c.SelectLiterals(SelectionStrategy{MaxNeg: 0})
	require.True(t, neg.HasProp(LitSelected), "inherited-paramod literals bypass the MaxNeg cap")
}

type fakeUnits struct {
	sign  bool
	ok    bool
	match *term.Cell // when set, only this term is reported as matched
}

func (f fakeUnits) FindMatch(t *term.Cell) (bool, bool) {
	if f.match != nil && t != f.match {
		return false, false
	}
	return f.sign, f.ok
}

func TestSimplifyWithUnitsSubsumesOnSameSign(t *testing.T) {
	sig, st, i := setup(t)
	a := sig.InsertOrFind("a", 0, i)
	aT := st.Insert(a.Code, i)
	c := NewClause(1, NewLiteral(aT, nil, true))

	outcome, res := c.SimplifyWithUnits(fakeUnits{sign: true, ok: true}, TopLevel)
	require.Equal(t, Subsumed, outcome)
	require.Nil(t, res)
}

func TestSimplifyWithUnitsDropsOppositeSignLiteral(t *testing.T) {
	sig, st, i := setup(t)
	a := sig.InsertOrFind("a", 0, i)
	b := sig.InsertOrFind("b", 0, i)
	aT, bT := st.Insert(a.Code, i), st.Insert(b.Code, i)
	c := NewClause(1, NewLiteral(aT, nil, true), NewLiteral(bT, nil, true))

	outcome, res := c.SimplifyWithUnits(fakeUnits{sign: false, ok: true, match: aT}, TopLevel)
	require.Equal(t, Simplified, outcome)
	require.Len(t, res.Literals, 1)
}

func TestClauseSetTracksCounts(t *testing.T) {
	sig, st, i := setup(t)
	a := sig.InsertOrFind("a", 0, i)
	aT := st.Insert(a.Code, i)
	unit := NewClause(1, NewLiteral(aT, nil, true))

	set := NewSet()
	e := set.Insert(unit)
	require.Equal(t, 1, set.Len())
	require.Equal(t, 1, set.UnitCount())

	set.Extract(e)
	require.Equal(t, 0, set.Len())
	require.Equal(t, 0, set.UnitCount())
}

