package term

import (
	"reflect"

	"github.com/google/btree"

	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/types"
)

// ptrID returns a stable, totally-ordered identity for a pointer, used to
// break ties when two cells compare equal on (FCode, Type). This is the
// same trick _examples/kevinawalsh-datalog uses for its DistinctVar/
// DistinctConst identity (reflect.ValueOf(p).Pointer()), generalized to
// order rather than merely distinguish.
func ptrID(c *Cell) uintptr {
	if c == nil {
		return 0
	}
	return reflect.ValueOf(c).Pointer()
}

func typeID(t *types.Type) uintptr {
	return reflect.ValueOf(t).Pointer()
}

// cellLess imposes the lexicographic order on (f_code, type, children)
// that spec.md §4.1 requires of each bucket's splay tree.
func cellLess(a, b *Cell) bool {
	if a.FCode != b.FCode {
		return a.FCode < b.FCode
	}
	if ta, tb := typeID(a.Type), typeID(b.Type); ta != tb {
		return ta < tb
	}
	n := len(a.Children)
	if m := len(b.Children); m < n {
		n = m
	}
	for i := 0; i < n; i++ {
		if pa, pb := ptrID(a.Children[i]), ptrID(b.Children[i]); pa != pb {
			return pa < pb
		}
	}
	return len(a.Children) < len(b.Children)
}

// hashKey selects a bucket from f_code and the first one or two children,
// as described in spec.md §4.1.
func hashKey(fcode symtab.FCode, children []*Cell) uint32 {
	h := uint32(fcode) * 2654435761
	if len(children) > 0 {
		h ^= uint32(ptrID(children[0])) * 2246822519
	}
	if len(children) > 1 {
		h ^= uint32(ptrID(children[1])) * 3266489917
	}
	return h
}

// Store is the hash-consed term bank of spec.md §4.1: a fixed array of
// buckets, each an ordered tree, giving average near-constant-time
// insert-or-find. google/btree.BTreeG substitutes for the reference
// implementation's bucketed splay tree, which the spec explicitly
// allows ("any mapping with average near-constant lookup works").
type Store struct {
	buckets [bucketCount]*btree.BTreeG[*Cell]
	gen     uint64 // current sweep generation
	size    int
}

// NewStore returns an empty term store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) bucket(fcode symtab.FCode, children []*Cell) *btree.BTreeG[*Cell] {
	idx := hashKey(fcode, children) % bucketCount
	b := s.buckets[idx]
	if b == nil {
		b = btree.NewG[*Cell](32, cellLess)
		s.buckets[idx] = b
	}
	return b
}

// Find returns the cell structurally equal to a prospective
// (fcode, typ, children) cell, if the store already holds one.
func (s *Store) Find(fcode symtab.FCode, typ *types.Type, children []*Cell) (*Cell, bool) {
	b := s.bucket(fcode, children)
	probe := &Cell{FCode: fcode, Type: typ, Children: children}
	return b.Get(probe)
}

// Insert returns the shared cell for (fcode, typ, children), creating
// and caching one if this exact shape has never been seen (invariant
// I2: perfect sharing). All children must already be members of s
// (invariant I1); Insert does not recurse into them.
func (s *Store) Insert(fcode symtab.FCode, typ *types.Type, children ...*Cell) *Cell {
	if existing, ok := s.Find(fcode, typ, children); ok {
		return existing
	}
	cell := &Cell{
		FCode:    fcode,
		Type:     typ,
		Children: children,
		weight:   computeWeight(fcode, children),
	}
	s.bucket(fcode, children).ReplaceOrInsert(cell)
	s.size++
	return cell
}

// Variable returns the shared variable cell for (code, typ); code must
// be negative. pkg/varbank is the intended caller.
func (s *Store) Variable(code symtab.FCode, typ *types.Type) *Cell {
	if code >= 0 {
		panic("term: Variable requires a negative f_code")
	}
	return s.Insert(code, typ)
}

// Delete removes a single cell from the store. Callers must ensure no
// live cell references it as a child, since the store never verifies acyclicity
// on delete (invariant I4 is the inserter's responsibility).
func (s *Store) Delete(c *Cell) {
	b := s.bucket(c.FCode, c.Children)
	if _, ok := b.Delete(c); ok {
		s.size--
	}
}

// Mark tags c (and, transitively, its children) as reachable in the
// current sweep generation, so a subsequent Sweep will retain it.
func (s *Store) Mark(c *Cell) {
	if c.garbage == s.gen+1 {
		return
	}
	c.garbage = s.gen + 1
	for _, ch := range c.Children {
		s.Mark(ch)
	}
}

// Sweep advances the sweep generation and removes every cell that was
// not Mark-ed since the previous Sweep, implementing mark-and-sweep
// collection of the whole DAG (spec.md §4.1). It returns the number of
// cells reclaimed.
func (s *Store) Sweep() int {
	target := s.gen + 1
	reclaimed := 0
	for i, b := range s.buckets {
		if b == nil {
			continue
		}
		var dead []*Cell
		b.Ascend(func(c *Cell) bool {
			if c.garbage != target {
				dead = append(dead, c)
			}
			return true
		})
		for _, c := range dead {
			b.Delete(c)
			reclaimed++
		}
		if b.Len() == 0 {
			s.buckets[i] = nil
		}
	}
	s.gen = target
	s.size -= reclaimed
	return reclaimed
}

// Size returns the number of cells currently in the store.
func (s *Store) Size() int { return s.size }
