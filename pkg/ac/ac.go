// Package ac implements the AC (associative-commutative) normalisation
// of spec.md §4.4: flattening nested applications of an AC symbol into a
// sorted multiset, and a commutative-only two-argument sort, used purely
// for equality testing (the term store itself imposes no child order).
//
// Normal forms are cached by the hash-consed *term.Cell pointer in an
// LRU (golang-lru/v2): because perfectly shared terms never change
// shape, a term's AC normal form never needs invalidating short of the
// term being swept from the store entirely, which makes an LRU — rather
// than a map that would leak forever — the right cache shape.
package ac

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// Normal is the canonical AC-flattened form of a term: the top symbol
// together with its normalized arguments (flattened and sorted for an
// AC head, sorted for a commutative two-argument head, in order
// otherwise), or a leaf pointing directly back at a variable or at a
// term whose symbol the signature does not know.
type Normal struct {
	FCode  symtab.FCode
	Weight int64
	Leaf   *term.Cell // non-nil only for a variable or an unknown symbol
	Args   []*Normal
}

// Normalizer flattens and caches AC/C normal forms for terms of a single
// signature.
type Normalizer struct {
	sig   *symtab.Signature
	cache *lru.Cache[*term.Cell, *Normal]
}

// NewNormalizer returns a Normalizer caching up to capacity normal forms.
func NewNormalizer(sig *symtab.Signature, capacity int) *Normalizer {
	cache, err := lru.New[*term.Cell, *Normal](capacity)
	if err != nil {
		panic(err)
	}
	return &Normalizer{sig: sig, cache: cache}
}

// Normalize returns t's AC/C canonical form, computing and caching it on
// first use.
func (n *Normalizer) Normalize(t *term.Cell) *Normal {
	if cached, ok := n.cache.Get(t); ok {
		return cached
	}
	nf := n.normalize(t)
	n.cache.Add(t, nf)
	return nf
}

func (n *Normalizer) normalize(t *term.Cell) *Normal {
	sym := n.sig.Symbol(t.FCode)
	if sym == nil || t.IsVar() {
		return &Normal{FCode: t.FCode, Weight: t.Weight(), Leaf: t}
	}
	if sym.IsAC() {
		return &Normal{FCode: t.FCode, Weight: t.Weight(), Args: n.flattenAC(t, t.FCode)}
	}
	if sym.HasProp(symtab.PropCommutative) && t.Arity() == 2 {
		args := []*Normal{n.Normalize(t.Children[0]), n.Normalize(t.Children[1])}
		sortNormals(args)
		return &Normal{FCode: t.FCode, Weight: t.Weight(), Args: args}
	}
	args := make([]*Normal, t.Arity())
	for i, ch := range t.Children {
		args[i] = n.Normalize(ch)
	}
	return &Normal{FCode: t.FCode, Weight: t.Weight(), Args: args}
}

// flattenAC collects the multiset of arguments of repeated nested
// applications of head, then canonically sorts it.
func (n *Normalizer) flattenAC(t *term.Cell, head symtab.FCode) []*Normal {
	var flat []*Normal
	var walk func(c *term.Cell)
	walk = func(c *term.Cell) {
		if c.FCode == head && c.Arity() == 2 {
			for _, ch := range c.Children {
				walk(ch)
			}
			return
		}
		flat = append(flat, n.Normalize(c))
	}
	walk(t)
	sortNormals(flat)
	return flat
}

// sortNormals orders a multiset lexicographically on (f_code, shape),
// as spec.md §4.4 requires for a canonical AC order.
func sortNormals(args []*Normal) {
	sort.Slice(args, func(i, j int) bool { return normalLess(args[i], args[j]) })
}

func normalLess(a, b *Normal) bool {
	if a.FCode != b.FCode {
		return a.FCode < b.FCode
	}
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	n := len(a.Args)
	if m := len(b.Args); m < n {
		n = m
	}
	for i := 0; i < n; i++ {
		if normalLess(a.Args[i], b.Args[i]) {
			return true
		}
		if normalLess(b.Args[i], a.Args[i]) {
			return false
		}
	}
	return len(a.Args) < len(b.Args)
}

// Equal reports whether s and t are AC-equal, i.e. their normal forms
// compare structurally equal. It fast-fails on a weight mismatch before
// doing any flattening work, per spec.md §4.4.
func (n *Normalizer) Equal(s, t *term.Cell) bool {
	if s.Weight() != t.Weight() {
		return false
	}
	return normalEqual(n.Normalize(s), n.Normalize(t))
}

func normalEqual(a, b *Normal) bool {
	if a.Leaf != nil || b.Leaf != nil {
		return a.Leaf == b.Leaf
	}
	if a.FCode != b.FCode || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !normalEqual(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}
