package order

import (
	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// KBOGreater reports whether s > t under the Knuth-Bendix ordering of
// spec.md §4.6.
func KBOGreater(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) bool {
	return KBOCompare(o, s, t, derefS, derefT) == Greater
}

// KBOCompare implements the weight-then-precedence decision procedure
// of spec.md §4.6, enforcing the variable-count condition: for s > t,
// every variable of t must occur at least as often in s.
func KBOCompare(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) Result {
	s = subst.Deref(s, derefS)
	t = subst.Deref(t, derefT)

	if s == t || structEqual(s, t) {
		return Equal
	}

	varsS, varsT := varCounts(s), varCounts(t)
	sDominatesT := dominates(varsS, varsT)
	tDominatesS := dominates(varsT, varsS)

	ws, wt := kboWeight(o, s), kboWeight(o, t)

	if ws > wt && sDominatesT {
		return Greater
	}
	if wt > ws && tDominatesS {
		return Less
	}
	if ws != wt {
		return Uncomparable
	}

	// Equal weight: compare heads by precedence, then lexicographically.
	if s.IsVar() || t.IsVar() {
		return Uncomparable
	}
	switch {
	case o.PrecedenceGreater(s.FCode, t.FCode):
		if sDominatesT {
			return Greater
		}
		return Uncomparable
	case o.PrecedenceGreater(t.FCode, s.FCode):
		if tDominatesS {
			return Less
		}
		return Uncomparable
	}
	if s.FCode != t.FCode || s.Arity() != t.Arity() {
		return Uncomparable
	}
	for i := 0; i < s.Arity(); i++ {
		r := KBOCompare(o, s.Children[i], t.Children[i], derefS, derefT)
		if r == Equal {
			continue
		}
		if r == Greater && sDominatesT {
			return Greater
		}
		if r == Less && tDominatesS {
			return Less
		}
		return Uncomparable
	}
	return Equal
}

func kboWeight(o *OCB, t *term.Cell) int64 {
	if t.IsVar() {
		return o.VarWeight()
	}
	w := o.Weight(t.FCode)
	for _, ch := range t.Children {
		w += kboWeight(o, ch)
	}
	return w
}

func varCounts(t *term.Cell) map[symtab.FCode]int {
	counts := make(map[symtab.FCode]int)
	var walk func(c *term.Cell)
	walk = func(c *term.Cell) {
		if c.IsVar() {
			counts[c.FCode]++
			return
		}
		for _, ch := range c.Children {
			walk(ch)
		}
	}
	walk(t)
	return counts
}

// dominates reports whether every variable count in b is matched or
// exceeded by the corresponding count in a.
func dominates(a, b map[symtab.FCode]int) bool {
	for v, n := range b {
		if a[v] < n {
			return false
		}
	}
	return true
}
