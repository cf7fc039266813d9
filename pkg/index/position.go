// Package index implements the given-clause loop's ancillary indexes of
// spec.md §4.8: a perfect discrimination tree (PDT) over demodulator
// patterns, a fingerprint index (FP-index) over abstracted term
// positions, a subterm index for rewrite-position lookup, and the
// extensionality (EXT) index for the HO build.
//
// google/btree backs the ordered per-child tries (PDT, EXT); roaring
// bitmaps back the compact clause-id candidate sets FP-index and
// subterm-index retrieval return, matching spec.md's "intersects
// candidate sets along positions compatible with a query".
package index

import (
	"github.com/eprover/eprover-sub005/pkg/clause"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// Pos is a path of child indices locating a subterm within a literal's
// side.
type Pos []int

// ClausePos names a rewrite/indexing position: a clause id, which
// literal, which side of the equation, and a path into that side.
type ClausePos struct {
	ClauseID int64
	Literal  int
	RHS      bool // false = lhs, true = rhs
	At       Pos
}

// subtermAt returns the subterm of t located at pos.
func subtermAt(t *term.Cell, pos Pos) *term.Cell {
	for _, i := range pos {
		t = t.Children[i]
	}
	return t
}

// walk calls fn for every subterm of t (including t itself), passing its
// position relative to t.
func walk(t *term.Cell, prefix Pos, fn func(Pos, *term.Cell)) {
	fn(prefix, t)
	for i, ch := range t.Children {
		walk(ch, append(append(Pos{}, prefix...), i), fn)
	}
}

// literalSide returns the term on side rhs of literal l.
func literalSide(l *clause.Literal, rhs bool) *term.Cell {
	if rhs {
		return l.RHS
	}
	return l.LHS
}

// canRewriteUnder reports whether pos is a "full" rewriting position
// (i.e. not forbidden), per spec.md §3: rewriting under an oriented
// positive maximal literal's top is restricted, since such positions
// define the simplification ordering direction and must not be
// destabilized by an unrelated rewrite.
func canRewriteUnder(l *clause.Literal, pos Pos) bool {
	if len(pos) == 0 {
		return true
	}
	return !(l.Positive && l.HasProp(clause.LitOriented) && l.HasProp(clause.LitMaximal))
}

// Resolve turns a ClausePos returned by an index query back into the
// actual subterm it names, for a caller that wants to run a real
// match/rewrite attempt against a candidate the index surfaced.
func Resolve(c *clause.Clause, pos ClausePos) *term.Cell {
	l := c.Literals[pos.Literal]
	return subtermAt(literalSide(l, pos.RHS), pos.At)
}
