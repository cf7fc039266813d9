// Package varbank implements the perfectly shared variable bank of
// spec.md §4.2: variables are hash-consed by (f_code, type) just like
// any other term cell, but the bank additionally owns fresh-variable
// dispensing, external-name tracking, and bulk property operations.
package varbank

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/types"
)

// freshVarFloor is the reserved high-magnitude code boundary: codes at
// or below this value are fresh-variable-dispenser territory and must
// never collide with a source-language variable's external code.
const freshVarFloor = symtab.FCode(-1 << 20)

// Bank hash-conses variables into a shared term.Store and tracks the
// fresh/external-name bookkeeping of spec.md §4.2.
type Bank struct {
	store *term.Store

	nextFresh    symtab.FCode // next even code to dispense, counting down
	nextRenamed  symtab.FCode // next odd code for RenameDisjoint, counting down
	externalized map[string]*term.Cell
	propIdx      map[*term.Cell]int
	props        []bitset.BitSet
}

// Property bits for variables (distinct namespace from symtab.Property,
// since a variable cell otherwise carries no metadata of its own).
type Property uint

const (
	PropProtected Property = iota
	PropUniversal
)

// NewBank returns an empty variable bank backed by store.
func NewBank(store *term.Store) *Bank {
	return &Bank{
		store:        store,
		nextFresh:    freshVarFloor,
		nextRenamed:  freshVarFloor - 1,
		externalized: make(map[string]*term.Cell),
		propIdx:      make(map[*term.Cell]int),
	}
}

// Get returns the variable cell for (code, typ) if it has already been
// allocated in store, without creating one.
func (b *Bank) Get(code symtab.FCode, typ *types.Type) (*term.Cell, bool) {
	return b.store.Find(code, typ, nil)
}

// GetOrAlloc returns the shared variable cell for (code, typ), creating
// it if necessary.
func (b *Bank) GetOrAlloc(code symtab.FCode, typ *types.Type) *term.Cell {
	return b.store.Variable(code, typ)
}

// Fresh dispenses a brand-new variable of type typ. Only even negative
// codes are ever dispensed this way, reserving odd codes for
// RenameDisjoint copies (spec.md §4.2/§9).
func (b *Bank) Fresh(typ *types.Type) *term.Cell {
	if b.nextFresh > freshVarFloor { // the int32 counter wrapped around
		panic("varbank: fresh-variable code space exhausted")
	}
	code := b.nextFresh
	b.nextFresh -= 2
	return b.store.Variable(code, typ)
}

// RenameDisjoint dispenses a fresh variable on the odd-code rename
// track, used to make one occurrence of a clause/rule variable-disjoint
// from another without touching the even fresh-variable counter.
func (b *Bank) RenameDisjoint(typ *types.Type) *term.Cell {
	if b.nextRenamed > freshVarFloor { // the int32 counter wrapped around
		panic("varbank: rename code space exhausted")
	}
	code := b.nextRenamed
	b.nextRenamed -= 2
	return b.store.Variable(code, typ)
}

// IsFreshCode reports whether code falls in the dispenser-reserved
// range, i.e. it must never be confused with a source-language
// variable's externally assigned code.
func IsFreshCode(code symtab.FCode) bool {
	return code <= freshVarFloor
}

// FindByExternalName returns the variable previously registered under
// name via SetExternalName.
func (b *Bank) FindByExternalName(name string) (*term.Cell, bool) {
	v, ok := b.externalized[name]
	return v, ok
}

// SetExternalName records that name refers to v, e.g. when a parser maps
// a source-level variable name like "X" onto a bank-allocated cell.
func (b *Bank) SetExternalName(name string, v *term.Cell) {
	b.externalized[name] = v
}

// ClearExternalNames forgets all external-name associations, without
// touching the underlying term store.
func (b *Bank) ClearExternalNames() {
	b.externalized = make(map[string]*term.Cell)
}

func (b *Bank) bitsFor(v *term.Cell) *bitset.BitSet {
	idx, ok := b.propIdx[v]
	if !ok {
		idx = len(b.props)
		b.propIdx[v] = idx
		b.props = append(b.props, *bitset.New(8))
	}
	return &b.props[idx]
}

// BulkSetProperty sets p on every variable in vs.
func (b *Bank) BulkSetProperty(vs []*term.Cell, p Property) {
	for _, v := range vs {
		b.bitsFor(v).Set(uint(p))
	}
}

// BulkClearProperty clears p on every variable in vs.
func (b *Bank) BulkClearProperty(vs []*term.Cell, p Property) {
	for _, v := range vs {
		b.bitsFor(v).Clear(uint(p))
	}
}

// HasProperty reports whether p is set on v.
func (b *Bank) HasProperty(v *term.Cell, p Property) bool {
	idx, ok := b.propIdx[v]
	if !ok {
		return false
	}
	return b.props[idx].Test(uint(p))
}
