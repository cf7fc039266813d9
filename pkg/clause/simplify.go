package clause

import (
	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/unify"
)

// SimplifyMode selects how deep Clause.SimplifyWithUnits looks for a
// matching unit inside a literal.
type SimplifyMode int

const (
	// TopLevel tests only the literal's root equation.
	TopLevel SimplifyMode = iota
	// FullTerm additionally descends into proper subterms along
	// matching positions.
	FullTerm
)

// UnitIndex is the collaborator a perfect-discrimination-tree-backed
// unit-clause index (pkg/index) implements, letting pkg/clause simplify
// against it without importing pkg/index (which itself depends on
// pkg/clause for clause positions).
type UnitIndex interface {
	// FindMatch looks for a unit whose equation matches t as a pattern
	// (t is matched against an indexed side of the unit, i.e. the unit's
	// variables get bound). It reports the unit's sign and whether a
	// match was found.
	FindMatch(t *term.Cell) (sign bool, ok bool)
}

// SimplifyOutcome is the first-class result of SimplifyWithUnits —
// logical failure ("no applicable unit") is Unchanged, never an error.
type SimplifyOutcome int

const (
	Unchanged SimplifyOutcome = iota
	Subsumed
	Simplified
)

// SimplifyWithUnits traverses c's literals looking up units in the
// given index (spec.md §4.7). A matching unit of the same sign as a
// literal subsumes the whole clause; a matching unit of the opposite
// sign removes that literal. Only each literal's lhs term is looked up;
// the rhs is not consulted. mode controls whether only that lhs, or
// also its proper subterms, is tried against the index.
func (c *Clause) SimplifyWithUnits(units UnitIndex, mode SimplifyMode) (SimplifyOutcome, *Clause) {
	kept := make([]*Literal, 0, len(c.Literals))
	changed := false
	for _, l := range c.Literals {
		sign, ok := matchLiteral(units, l, mode)
		if !ok {
			kept = append(kept, l)
			continue
		}
		if sign == l.Positive {
			return Subsumed, nil
		}
		changed = true // opposite sign: drop this literal
	}
	if !changed {
		return Unchanged, nil
	}
	return Simplified, NewClause(c.ID, kept...)
}

func matchLiteral(units UnitIndex, l *Literal, mode SimplifyMode) (sign bool, ok bool) {
	if sign, ok := tryMatch(units, l.LHS); ok {
		return sign, true
	}
	if mode == TopLevel {
		return false, false
	}
	return subtermMatch(units, l.LHS)
}

func tryMatch(units UnitIndex, t *term.Cell) (bool, bool) {
	return units.FindMatch(t)
}

// subtermMatch descends into t's proper subterms looking for a unit
// match, implementing FullTerm mode.
func subtermMatch(units UnitIndex, t *term.Cell) (bool, bool) {
	for _, ch := range t.Children {
		if sign, ok := tryMatch(units, ch); ok {
			return sign, true
		}
		if sign, ok := subtermMatch(units, ch); ok {
			return sign, true
		}
	}
	return false, false
}

// MatchRemainingArgsEqual is the HO-build soundness check documented in
// spec.md §4.7/§9: the number of untouched trailing arguments returned
// by matching a partial applied-variable pattern must be identical on
// both equation sides for a simplification step to be sound.
func MatchRemainingArgsEqual(s *subst.Subst, v *term.Cell, lhsArgs, rhsArgs []*term.Cell) bool {
	lr := unify.PartialMatchVar(s, v, lhsArgs, 0)
	rr := unify.PartialMatchVar(s, v, rhsArgs, 0)
	if lr.Failed || rr.Failed {
		return false
	}
	return lr.RemainingArgs == rr.RemainingArgs
}
