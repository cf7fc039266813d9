// Package unify implements the four primitives of spec.md §4.5: one-shot
// match, Robinson unification (MGU), a partial higher-order match for an
// applied pattern variable, and a CSU (complete set of unifiers)
// iterator for the higher-order inference rules.
//
// The match/MGU algorithms are a direct port of the weight-guided,
// occurs-checked, bury-delayed-bindings discipline of
// _examples/original_source/TERMS/cte_match_mgu_1-1.c
// (SubstComputeMatch/SubstComputeMgu), restated over the hash-consed
// term.Cell and subst.Subst of this module instead of the original's
// PStack/PQueue of raw C term pointers.
package unify

import (
	"github.com/eprover/eprover-sub005/internal/container"
	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/term"
)

type job struct{ a, b *term.Cell }

// Match extends s so that applying s to pattern yields target exactly,
// binding only variables of pattern (target is never dereferenced or
// bound). It fails fast once the partially-instantiated pattern's weight
// would exceed target's weight. On failure s is left unchanged; on
// success the caller is responsible for eventually backtracking s past
// the position recorded before calling Match.
func Match(s *subst.Subst, pattern, target *term.Cell) bool {
	patternWeight := pattern.Weight()
	targetWeight := target.Weight()
	if patternWeight > targetWeight {
		return false
	}
	mark := s.Mark()
	jobs := container.NewDeque[job]()
	jobs.Store(job{pattern, target})
	for {
		j, ok := jobs.Pop()
		if !ok {
			return true
		}
		p, t := j.a, j.b
		if p.IsVar() {
			if p.Binding != nil {
				if !structEqual(p.Binding, t) {
					s.Backtrack(mark)
					return false
				}
				continue
			}
			s.Push(p, t)
			patternWeight += t.Weight() - term.DefaultVarWeight
			if patternWeight > targetWeight {
				s.Backtrack(mark)
				return false
			}
			continue
		}
		if p.FCode != t.FCode {
			s.Backtrack(mark)
			return false
		}
		for i := 0; i < p.Arity(); i++ {
			jobs.Store(job{p.Children[i], t.Children[i]})
		}
	}
}

// structEqual reports whether a and b are the same hash-consed cell, or
// (for the unshared-term edge case spec.md §4.5 allows) structurally
// identical term shapes.
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

// occursCheck reports whether var occurs anywhere in super (after
// dereferencing), using an explicit stack rather than recursion to mimic
// occur_check's iterative PStack traversal.
func occursCheck(super, v *term.Cell) bool {
	var stack container.Stack[*term.Cell]
	stack.Push(super)
	for {
		c, ok := stack.Pop()
		if !ok {
			return false
		}
		c = subst.Deref(c, subst.Always)
		if c == v {
			return true
		}
		for _, ch := range c.Children {
			stack.Push(ch)
		}
	}
}

// MGU extends s to a most general unifier of s1 and t1 (which must be
// variable-disjoint — the caller is responsible for renaming one side
// apart first). Job order buries jobs with a variable on either side
// to the back of the queue to maximize structural propagation before an
// occurs-check is needed, mirroring cte_match_mgu_1-1.c's PQueueBuryP
// discipline.
func MGU(s *subst.Subst, s1, t1 *term.Cell) bool {
	mark := s.Mark()
	jobs := container.NewDeque[job]()
	jobs.Store(job{s1, t1})
	for {
		j, ok := jobs.Pop()
		if !ok {
			return true
		}
		a := subst.Deref(j.a, subst.Always)
		b := subst.Deref(j.b, subst.Always)
		if b.IsVar() {
			a, b = b, a
		}
		if a.IsVar() {
			if a == b {
				continue
			}
			if occursCheck(b, a) {
				s.Backtrack(mark)
				return false
			}
			s.Push(a, b)
			continue
		}
		if a.FCode != b.FCode {
			s.Backtrack(mark)
			return false
		}
		for i := 0; i < a.Arity(); i++ {
			ai, bi := a.Children[i], b.Children[i]
			if ai.IsVar() || bi.IsVar() {
				jobs.Bury(job{ai, bi})
			} else {
				jobs.Store(job{ai, bi})
			}
		}
	}
}

// MatchResult is the outcome of PartialMatchVar.
type MatchResult struct {
	// RemainingArgs is the number of target arguments left unconsumed
	// by matching a prefix against an applied pattern variable.
	RemainingArgs int
	// Failed is true if no partial match was possible.
	Failed bool
}

// Failed is the canonical "no partial match" result.
var Failed = MatchResult{Failed: true}

// PartialMatchVar implements the LFHO partial higher-order match of
// spec.md §4.5: a pattern variable v may match a prefix of target's
// applied-spine arguments (args), leaving the trailing suffix for the
// caller to compare. As spec.md §9 documents, the soundness of that
// suffix comparison across type-aware sharing is left unresolved by the
// source; this module follows the documented assumption and compares
// suffixes by pointer equality only.
func PartialMatchVar(s *subst.Subst, v *term.Cell, args []*term.Cell, consumed int) MatchResult {
	if !v.IsVar() || consumed > len(args) {
		return Failed
	}
	if v.Binding != nil {
		if v.Binding.Arity() > consumed {
			return Failed
		}
		prefix := args[:v.Binding.Arity()]
		for i, arg := range prefix {
			if !structEqual(v.Binding.Children[i], arg) {
				return Failed
			}
		}
		return MatchResult{RemainingArgs: len(args) - v.Binding.Arity()}
	}
	return MatchResult{RemainingArgs: len(args) - consumed}
}

// SuffixEqual compares two trailing argument suffixes by pointer
// equality, per the documented assumption in PartialMatchVar.
func SuffixEqual(a, b []*term.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CSU lazily enumerates a complete set of unifiers for s1/t1, used by
// the equality-factoring and extensionality rules in the HO build. The
// first-order specialization yields at most one unifier (the MGU, if
// any); richer enumeration strategies plug in via Next.
type CSU struct {
	s1, t1 *term.Cell
	sub    *subst.Subst
	done   bool
}

// NewCSU returns a CSU iterator for s1/t1 over sub.
func NewCSU(sub *subst.Subst, s1, t1 *term.Cell) *CSU {
	return &CSU{s1: s1, t1: t1, sub: sub}
}

// Next advances the iterator, returning true if it produced (and left
// installed on sub) another unifier. The caller must backtrack sub to
// the position recorded before the first Next call once it is done
// consuming unifiers.
func (c *CSU) Next() bool {
	if c.done {
		return false
	}
	c.done = true
	return MGU(c.sub, c.s1, c.t1)
}
