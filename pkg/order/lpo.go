package order

import (
	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// LPOGreater reports whether s > t under the lexicographic path
// ordering of spec.md §4.6, dereferencing each side per its own policy.
func LPOGreater(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) bool {
	return LPOCompare(o, s, t, derefS, derefT) == Greater
}

// LPOCompare implements the six-step decision procedure of spec.md
// §4.6. It never mutates shared term structure. When neither side is a
// variable and s > t does not hold, it reports Less if t > s.
func LPOCompare(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) Result {
	r := lpoCompareOneWay(o, s, t, derefS, derefT)
	if r != Uncomparable || subst.Deref(s, derefS).IsVar() || subst.Deref(t, derefT).IsVar() {
		return r
	}
	if lpoCompareOneWay(o, t, s, derefT, derefS) == Greater {
		return Less
	}
	return Uncomparable
}

// lpoCompareOneWay decides Equal or Greater for s against t, and
// Uncomparable otherwise.
func lpoCompareOneWay(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) Result {
	s = subst.Deref(s, derefS)
	t = subst.Deref(t, derefT)

	if s == t || structEqual(s, t) {
		return Equal
	}
	if s.IsVar() {
		// A variable is never greater than anything but itself.
		return Uncomparable
	}
	if t.IsVar() {
		if occursIn(s, t) {
			return Greater
		}
		return Uncomparable
	}
	switch {
	case o.PrecedenceGreater(s.FCode, t.FCode):
		// clause 1: s > t iff every argument of t is < s.
		for _, ti := range t.Children {
			if LPOCompare(o, s, ti, subst.Never, derefT) != Greater {
				return Uncomparable
			}
		}
		return Greater
	case o.PrecedenceGreater(t.FCode, s.FCode):
		for _, si := range s.Children {
			r := LPOCompare(o, si, t, derefS, subst.Never)
			if r == Greater || r == Equal {
				return Greater
			}
		}
		return Uncomparable
	default:
		if s.FCode != t.FCode || s.Arity() != t.Arity() {
			return Uncomparable
		}
		return lpoLex(o, s, t, derefS, derefT)
	}
}

// lpoLex handles the equal-heads, equal-arity case: lexicographic comparison of
// argument tuples, falling back to "every remaining t-arg < s" /
// "some remaining s-arg >= t" the way LPO clause 1/2 would for an
// unequal-head pair once a differing argument is found.
func lpoLex(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) Result {
	n := s.Arity()
	for i := 0; i < n; i++ {
		si, ti := s.Children[i], t.Children[i]
		r := LPOCompare(o, si, ti, derefS, derefT)
		switch r {
		case Equal:
			continue
		case Greater:
			for j := i + 1; j < n; j++ {
				if LPOCompare(o, s, t.Children[j], subst.Never, derefT) != Greater {
					return Uncomparable
				}
			}
			return Greater
		default:
			for j := i + 1; j < n; j++ {
				rr := LPOCompare(o, s.Children[j], t, derefS, subst.Never)
				if rr == Greater || rr == Equal {
					return Greater
				}
			}
			return Uncomparable
		}
	}
	return Equal
}

func occursIn(s, v *term.Cell) bool {
	if s == v {
		return true
	}
	for _, ch := range s.Children {
		if occursIn(ch, v) {
			return true
		}
	}
	return false
}

func structEqual(a, b *term.Cell) bool {
	if a == b {
		return true
	}
	if a.FCode != b.FCode || a.Type != b.Type || a.Arity() != b.Arity() {
		return false
	}
	for i := range a.Children {
		if !structEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
