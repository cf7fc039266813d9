package index

import (
	"github.com/google/btree"

	"github.com/eprover/eprover-sub005/pkg/clause"
	"github.com/eprover/eprover-sub005/pkg/symtab"
)

func posKeyLess(a, b ClausePos) bool {
	if a.ClauseID != b.ClauseID {
		return a.ClauseID < b.ClauseID
	}
	if a.Literal != b.Literal {
		return a.Literal < b.Literal
	}
	return !a.RHS && b.RHS
}

// ExtIndex indexes candidate extensionality clauses of the HO build
// (spec.md §9): unit equations headed by a non-variable functor on both
// sides, which can seed extensionality resolution/unification. From
// indexes by the lhs head symbol, Into by the rhs head symbol, each an
// ordered per-symbol trie (google/btree.BTreeG) so lookups return
// clause positions in a stable, cursor-friendly order.
type ExtIndex struct {
	from map[symtab.FCode]*btree.BTreeG[ClausePos]
	into map[symtab.FCode]*btree.BTreeG[ClausePos]
}

// NewExtIndex returns an empty extensionality index.
func NewExtIndex() *ExtIndex {
	return &ExtIndex{
		from: make(map[symtab.FCode]*btree.BTreeG[ClausePos]),
		into: make(map[symtab.FCode]*btree.BTreeG[ClausePos]),
	}
}

func (e *ExtIndex) treeFor(m map[symtab.FCode]*btree.BTreeG[ClausePos], code symtab.FCode) *btree.BTreeG[ClausePos] {
	t, ok := m[code]
	if !ok {
		t = btree.NewG[ClausePos](16, posKeyLess)
		m[code] = t
	}
	return t
}

// IndexClause records c if it is a unit equation between two
// non-variable applications.
func (e *ExtIndex) IndexClause(c *clause.Clause) {
	if len(c.Literals) != 1 {
		return
	}
	l := c.Literals[0]
	if !l.Positive || l.LHS == nil || l.RHS == nil || l.LHS.IsVar() || l.RHS.IsVar() {
		return
	}
	e.treeFor(e.from, l.LHS.FCode).ReplaceOrInsert(ClausePos{ClauseID: c.ID, Literal: 0})
	e.treeFor(e.into, l.RHS.FCode).ReplaceOrInsert(ClausePos{ClauseID: c.ID, Literal: 0, RHS: true})
}

// CandidatesFrom returns clause positions whose lhs is headed by code.
func (e *ExtIndex) CandidatesFrom(code symtab.FCode) []ClausePos {
	return collect(e.from[code])
}

// CandidatesInto returns clause positions whose rhs is headed by code.
func (e *ExtIndex) CandidatesInto(code symtab.FCode) []ClausePos {
	return collect(e.into[code])
}

func collect(t *btree.BTreeG[ClausePos]) []ClausePos {
	if t == nil {
		return nil
	}
	out := make([]ClausePos, 0, t.Len())
	t.Ascend(func(cp ClausePos) bool {
		out = append(out, cp)
		return true
	})
	return out
}
