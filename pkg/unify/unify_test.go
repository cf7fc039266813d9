package unify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/types"
)

func setup() (*term.Store, *types.Type) {
	st := term.NewStore()
	tys := types.NewTable()
	return st, tys.Sort("i")
}

func TestMatchBindsPatternVariableOnly(t *testing.T) {
	st, i := setup()
	a := st.Insert(1, i)
	b := st.Insert(2, i)
	v := st.Variable(-2, i)
	f := st.Insert(3, i, v, v) // f(X,X)
	target := st.Insert(3, i, a, a)

	s := subst.New()
	ok := Match(s, f, target)
	require.True(t, ok)
	require.Equal(t, a, v.Binding)

	mismatched := st.Insert(3, i, a, b)
	s2 := subst.New()
	require.False(t, Match(s2, f, mismatched), "repeated pattern variable must force equal arguments")
}

func TestMatchFailsOnWeightOverflow(t *testing.T) {
	st, i := setup()
	a := st.Insert(1, i)
	v := st.Variable(-2, i)
	pattern := st.Insert(2, i, v) // g(X)
	target := st.Insert(1, i)     // a, weight too small for g(_)
	_ = a
	s := subst.New()
	require.False(t, Match(s, pattern, target))
}

func TestMGUOccursCheckFails(t *testing.T) {
	st, i := setup()
	v := st.Variable(-2, i)
	fv := st.Insert(2, i, v) // f(X)
	s := subst.New()
	require.False(t, MGU(s, v, fv), "X = f(X) must fail the occurs check")
}

func TestMGUUnifiesDisjointVariables(t *testing.T) {
	st, i := setup()
	x := st.Variable(-2, i)
	y := st.Variable(-4, i)
	a := st.Insert(1, i)
	left := st.Insert(2, i, x, a)  // f(X, a)
	right := st.Insert(2, i, a, y) // f(a, Y)

	s := subst.New()
	require.True(t, MGU(s, left, right))
	require.Equal(t, a, subst.Deref(x, subst.Always))
	require.Equal(t, a, subst.Deref(y, subst.Always))
}

func TestPartialMatchVarPrefixAndSuffix(t *testing.T) {
	st, i := setup()
	a := st.Insert(1, i)
	b := st.Insert(2, i)
	v := st.Variable(-2, i)

	r := PartialMatchVar(nil, v, []*term.Cell{a, b}, 0)
	require.False(t, r.Failed)
	require.Equal(t, 2, r.RemainingArgs)

	s := subst.New()
	s.Push(v, st.Insert(3, i, a)) // v bound to h(a)
	r2 := PartialMatchVar(s, v, []*term.Cell{a, b}, 1)
	require.False(t, r2.Failed)
	require.Equal(t, 1, r2.RemainingArgs)
	require.True(t, SuffixEqual([]*term.Cell{b}, []*term.Cell{b}))
	require.False(t, SuffixEqual([]*term.Cell{b}, []*term.Cell{a}))
}
