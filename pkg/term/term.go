// Package term implements the hash-consed term DAG of spec.md §3/§4.1:
// applied term cells and variable cells perfectly shared in one store, a
// cached standard weight, and the mutable substitution-binding overlay
// used instead of an explicit substitution map (a deliberate performance
// choice documented in spec.md §9).
//
// The store itself is grounded on the Term/Literal double-dispatch shape
// of _examples/kevinawalsh-datalog's datalog.go (chase/unify via pointer
// identity of interned objects) generalized from string-keyed interning
// to the store's own structural hash-cons.
package term

import (
	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/types"
)

// DefaultVarWeight and DefaultFunWeight are the standard weight constants
// used when no per-symbol weight has been configured (spec.md invariant
// I3: weight = Σ child weights + f_weight, v_weight for variables).
const (
	DefaultVarWeight = 1
	DefaultFunWeight = 1
)

// Cell is a single node of the shared term DAG: either a variable (Arity
// == 0, FCode < 0, Children == nil) or an applied term (FCode > 0).
// Children, once inserted into a Store, are themselves Store members
// (invariant I1); two cells with equal (FCode, Type, Children…) are the
// same *Cell (invariant I2, perfect sharing).
type Cell struct {
	FCode    symtab.FCode
	Type     *types.Type
	Children []*Cell

	weight  int64 // cached standard weight (invariant I3)
	garbage uint64 // generation tag set by Store.Mark (reachable); 0 means never marked

	// Binding is the substitution overlay slot (spec.md §4.3/§9): nil
	// unless a pending pkg/subst push targets this (necessarily
	// variable) cell. Only ever touched through pkg/subst, never
	// written directly by other packages.
	Binding *Cell
}

// IsVar reports whether c is a variable cell.
func (c *Cell) IsVar() bool { return c.FCode < 0 }

// Arity returns the number of children (0 for variables and constants).
func (c *Cell) Arity() int { return len(c.Children) }

// Weight returns the cached standard weight (invariant I3).
func (c *Cell) Weight() int64 { return c.weight }

func computeWeight(fcode symtab.FCode, children []*Cell) int64 {
	if fcode < 0 {
		return DefaultVarWeight
	}
	w := int64(DefaultFunWeight)
	for _, ch := range children {
		w += ch.weight
	}
	return w
}

// bucketCount is the fixed 32768-bucket table size of spec.md §4.1.
const bucketCount = 1 << 15
