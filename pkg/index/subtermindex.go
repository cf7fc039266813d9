package index

import (
	roaring "github.com/RoaringBitmap/roaring/v2"

	"github.com/eprover/eprover-sub005/pkg/clause"
	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// SubtermIndex maps a top symbol to every position in the clause set
// where it occurs as a non-variable subterm, split into full positions
// (legal rewrite/superposition targets) and restricted ones (under an
// oriented positive maximal literal's root, per spec.md §3), so a
// rewrite rule search can skip straight to relevant occurrences instead
// of re-walking every clause.
type SubtermIndex struct {
	full       map[symtab.FCode]*roaring.Bitmap
	restricted map[symtab.FCode]*roaring.Bitmap
	records    []ClausePos
}

// NewSubtermIndex returns an empty subterm index.
func NewSubtermIndex() *SubtermIndex {
	return &SubtermIndex{
		full:       make(map[symtab.FCode]*roaring.Bitmap),
		restricted: make(map[symtab.FCode]*roaring.Bitmap),
	}
}

func (si *SubtermIndex) bitmap(m map[symtab.FCode]*roaring.Bitmap, code symtab.FCode) *roaring.Bitmap {
	b, ok := m[code]
	if !ok {
		b = roaring.New()
		m[code] = b
	}
	return b
}

// IndexClause records every non-variable subterm occurrence in c.
func (si *SubtermIndex) IndexClause(c *clause.Clause) {
	for li, l := range c.Literals {
		si.indexSide(c.ID, li, false, l, l.LHS)
		if l.RHS != nil {
			si.indexSide(c.ID, li, true, l, l.RHS)
		}
	}
}

func (si *SubtermIndex) indexSide(clauseID int64, lit int, rhs bool, l *clause.Literal, t *term.Cell) {
	walk(t, nil, func(pos Pos, c *term.Cell) {
		if c.IsVar() {
			return
		}
		id := uint32(len(si.records))
		si.records = append(si.records, ClausePos{ClauseID: clauseID, Literal: lit, RHS: rhs, At: append(Pos{}, pos...)})
		if canRewriteUnder(l, pos) {
			si.bitmap(si.full, c.FCode).Add(id)
		} else {
			si.bitmap(si.restricted, c.FCode).Add(id)
		}
	})
}

func (si *SubtermIndex) resolve(bm *roaring.Bitmap) []ClausePos {
	if bm == nil {
		return nil
	}
	out := make([]ClausePos, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, si.records[it.Next()])
	}
	return out
}

// CandidatesFull returns every full (unrestricted) occurrence of code.
func (si *SubtermIndex) CandidatesFull(code symtab.FCode) []ClausePos {
	return si.resolve(si.full[code])
}

// CandidatesRestricted returns every restricted occurrence of code.
func (si *SubtermIndex) CandidatesRestricted(code symtab.FCode) []ClausePos {
	return si.resolve(si.restricted[code])
}

// CandidatesAll returns every occurrence of code, full or restricted.
func (si *SubtermIndex) CandidatesAll(code symtab.FCode) []ClausePos {
	full, restricted := si.full[code], si.restricted[code]
	switch {
	case full == nil:
		return si.resolve(restricted)
	case restricted == nil:
		return si.resolve(full)
	default:
		return si.resolve(roaring.Or(full, restricted))
	}
}
