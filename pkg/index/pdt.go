package index

import (
	"github.com/google/btree"

	"github.com/eprover/eprover-sub005/pkg/clause"
	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/unify"
)

// wildcardCode is the sentinel edge label standing for "pattern variable
// here", distinct from every real symbol code (which start at 1).
const wildcardCode = symtab.FCode(0)

type pdtEdge struct {
	code symtab.FCode
	node *pdtNode
}

func edgeLess(a, b *pdtEdge) bool { return a.code < b.code }

// pdtNode is one trie node of the perfect discrimination tree: an
// ordered splay-like tree of outgoing edges (google/btree.BTreeG, per
// spec.md §4.8's "per-child splay tree"), plus the leaves reachable
// exactly here.
type pdtNode struct {
	children *btree.BTreeG[*pdtEdge]
	leaves   []pdtLeaf
}

func newPDTNode() *pdtNode {
	return &pdtNode{children: btree.NewG[*pdtEdge](16, edgeLess)}
}

type pdtLeaf struct {
	Pattern *term.Cell
	Pos     ClausePos
	Sign    bool
	RHS     *term.Cell
}

// PDT is a perfect discrimination tree keyed by the linearised symbol
// spelling of indexed patterns (spec.md §4.8): a query traverses
// matching function edges exactly and wildcard edges unconditionally,
// skipping the whole matched subtree under a wildcard.
type PDT struct {
	root *pdtNode
}

// NewPDT returns an empty discrimination tree.
func NewPDT() *PDT { return &PDT{root: newPDTNode()} }

// Insert adds pattern (the lhs of some equation) as a leaf at pos,
// recording sign and the equation's other side.
func (p *PDT) Insert(pattern *term.Cell, pos ClausePos, sign bool, rhs *term.Cell) {
	p.insertRec(p.root, []*term.Cell{pattern}, pdtLeaf{Pattern: pattern, Pos: pos, Sign: sign, RHS: rhs})
}

func (p *PDT) insertRec(node *pdtNode, queue []*term.Cell, leaf pdtLeaf) {
	if len(queue) == 0 {
		node.leaves = append(node.leaves, leaf)
		return
	}
	t := queue[0]
	rest := queue[1:]
	code := wildcardCode
	if !t.IsVar() {
		code = t.FCode
	}
	probe := &pdtEdge{code: code}
	edge, ok := node.children.Get(probe)
	if !ok {
		edge = &pdtEdge{code: code, node: newPDTNode()}
		node.children.ReplaceOrInsert(edge)
	}
	next := rest
	if code != wildcardCode {
		next = append(append([]*term.Cell{}, t.Children...), rest...)
	}
	p.insertRec(edge.node, next, leaf)
}

// Query returns every leaf whose pattern matches t as an instance (t's
// symbols concrete, pattern variables act as wildcards).
func (p *PDT) Query(t *term.Cell) []pdtLeaf {
	return p.matchRec(p.root, []*term.Cell{t})
}

func (p *PDT) matchRec(node *pdtNode, queue []*term.Cell) []pdtLeaf {
	if len(queue) == 0 {
		return node.leaves
	}
	t := queue[0]
	rest := queue[1:]

	var out []pdtLeaf
	if edge, ok := node.children.Get(&pdtEdge{code: t.FCode}); ok && !t.IsVar() {
		next := append(append([]*term.Cell{}, t.Children...), rest...)
		out = append(out, p.matchRec(edge.node, next)...)
	}
	if edge, ok := node.children.Get(&pdtEdge{code: wildcardCode}); ok {
		out = append(out, p.matchRec(edge.node, rest)...)
	}
	return out
}

// UnitPDT indexes unit clauses' oriented equations for
// Clause.SimplifyWithUnits, implementing clause.UnitIndex.
type UnitPDT struct {
	tree *PDT
}

// NewUnitPDT returns an empty unit-clause index.
func NewUnitPDT() *UnitPDT { return &UnitPDT{tree: NewPDT()} }

// IndexUnit inserts c's single literal, oriented lhs as pattern.
func (u *UnitPDT) IndexUnit(c *clause.Clause) {
	if len(c.Literals) != 1 {
		return
	}
	l := c.Literals[0]
	lhs, rhs := l.LHS, l.RHS
	if l.HasProp(clause.LitOriented) {
		u.tree.Insert(lhs, ClausePos{ClauseID: c.ID, Literal: 0}, l.Positive, rhs)
	} else {
		// Unoriented: index both directions so either side can act as
		// the rewrite pattern.
		u.tree.Insert(lhs, ClausePos{ClauseID: c.ID, Literal: 0}, l.Positive, rhs)
		if rhs != nil {
			u.tree.Insert(rhs, ClausePos{ClauseID: c.ID, Literal: 0, RHS: true}, l.Positive, lhs)
		}
	}
}

// FindMatch implements clause.UnitIndex. The trie walk only checks
// symbol shape; candidates are re-verified with a real one-shot match
// so a pattern that repeats a variable is still matched consistently.
func (u *UnitPDT) FindMatch(t *term.Cell) (sign bool, ok bool) {
	for _, leaf := range u.tree.Query(t) {
		s := subst.New()
		mark := s.Mark()
		matched := unify.Match(s, leaf.Pattern, t)
		s.Backtrack(mark)
		if matched {
			return leaf.Sign, true
		}
	}
	return false, false
}
