// Package clause implements the literal and clause algebra of spec.md
// §3/§4.7: equational literals, clauses, clause sets, and the
// ordering/selection-driven annotations the given-clause loop consults.
package clause

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/eprover/eprover-sub005/pkg/order"
	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// LitProp is a single bit of a literal's transient/annotation state.
type LitProp uint

const (
	LitOriented LitProp = iota
	LitMaximal
	LitSelected
	LitEquational // false => predicate literal, rhs is the distinguished "true"
	LitInheritParamod
)

// Literal is a signed equation lhs = rhs (spec.md §3): for a predicate
// literal, rhs is the distinguished "true" term and LitEquational is
// clear.
type Literal struct {
	LHS, RHS *term.Cell
	Positive bool
	props    bitset.BitSet
}

// NewLiteral returns a new, unannotated literal.
func NewLiteral(lhs, rhs *term.Cell, positive bool) *Literal {
	l := &Literal{LHS: lhs, RHS: rhs, Positive: positive}
	if rhs != nil {
		l.props.Set(uint(LitEquational))
	}
	return l
}

// HasProp reports whether p is set.
func (l *Literal) HasProp(p LitProp) bool { return l.props.Test(uint(p)) }

func (l *Literal) setProp(p LitProp)   { l.props.Set(uint(p)) }
func (l *Literal) clearProp(p LitProp) { l.props.Clear(uint(p)) }

// Orient sets the Oriented flag iff lhs is strictly greater than rhs
// under ocb, clearing it otherwise, per spec.md §4.7. LitMaximal is set
// in every case; when lhs is not greater, Orient does not record whether
// rhs is greater or the sides are uncomparable (sides then treats rhs as
// the major side). A predicate literal (rhs == nil) has only one side
// and is trivially oriented/maximal.
func (l *Literal) Orient(ocb *order.OCB) {
	if l.RHS == nil {
		l.setProp(LitOriented)
		l.setProp(LitMaximal)
		return
	}
	switch order.Compare(ocb, l.LHS, l.RHS, subst.Always, subst.Always) {
	case order.Greater:
		l.setProp(LitOriented)
		l.setProp(LitMaximal)
	case order.Less:
		l.clearProp(LitOriented)
		l.setProp(LitMaximal) // rhs is the maximal side; tracked via swap by caller if needed
	default:
		l.clearProp(LitOriented)
		l.setProp(LitMaximal) // neither side dominates: both count as maximal
	}
}

// weightMultiplier applies the literal-weight multiplier spec.md §4.7
// calls for when judging maximality of negative literals.
func (l *Literal) weightMultiplier() int64 {
	if l.Positive {
		return 1
	}
	return 2
}

// litGreater compares two literals in the multiset extension used by
// Clause.MarkMaximal: compare the greater of (lhs,rhs) for each first,
// falling back to the lesser side. When the term ordering leaves both
// comparisons Equal, the sign-weighted literal weight (negative
// literals count double, spec.md §4.7) breaks the tie.
func litGreater(ocb *order.OCB, a, b *Literal) order.Result {
	aMax, aMin := a.sides()
	bMax, bMin := b.sides()
	r := order.Compare(ocb, aMax, bMax, subst.Always, subst.Always)
	if r != order.Equal {
		return r
	}
	if r2 := order.Compare(ocb, aMin, bMin, subst.Always, subst.Always); r2 != order.Equal {
		return r2
	}
	aw, bw := a.weightMultiplier()*a.weight(), b.weightMultiplier()*b.weight()
	switch {
	case aw > bw:
		return order.Greater
	case aw < bw:
		return order.Less
	default:
		return order.Equal
	}
}

// weight is the literal's unscaled term weight (lhs plus rhs, if any).
func (l *Literal) weight() int64 {
	w := l.LHS.Weight()
	if l.RHS != nil {
		w += l.RHS.Weight()
	}
	return w
}

// sides returns (greater-or-either, lesser-or-either) of l's two sides
// under l's own last Orient call, used as the multiset-comparison key.
// A predicate literal (rhs == nil) has no minor side; both returns are
// its single term.
func (l *Literal) sides() (*term.Cell, *term.Cell) {
	if l.RHS == nil {
		return l.LHS, l.LHS
	}
	if l.HasProp(LitOriented) {
		return l.LHS, l.RHS
	}
	return l.RHS, l.LHS
}
