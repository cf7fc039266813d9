// Package symtab implements the signature of spec.md §3/§4: the mapping
// between symbol names and f_code, and the per-symbol metadata (arity,
// type, and a property bit-set) that every other core package consults.
//
// Name lookup is backed by a hashicorp/go-immutable-radix tree rather
// than a plain map: the signature is built up incrementally while
// parsing and then read heavily and concurrently-iterated (e.g. printing
// a precedence, walking all AC symbols) for the rest of a session, which
// is exactly the persistent/snapshot-friendly access pattern immutable
// radix trees are built for.
package symtab

import (
	"fmt"

	iradix "github.com/hashicorp/go-immutable-radix/v2"

	"github.com/eprover/eprover-sub005/pkg/types"
)

// FCode is the signed integer symbol identifier of spec.md §3. Positive
// values name function/predicate symbols; negative values name
// variables (see pkg/varbank); zero is never assigned.
type FCode int32

// Property is a single bit in a symbol's property set.
type Property uint

const (
	PropAssociative Property = 1 << iota
	PropCommutative
	PropInterpreted
	PropSkolem
	PropPredicate
	PropSpecialConstant
	PropLambdaBound
)

// Symbol holds the per-f_code metadata of spec.md §3: arity, a type
// reference, and a bit-set of properties.
type Symbol struct {
	Code  FCode
	Name  string
	Arity int
	Type  *types.Type
	props uint64
}

// HasProp reports whether p is set on sym.
func (sym *Symbol) HasProp(p Property) bool { return sym.props&uint64(p) != 0 }

// SetProp sets p on sym.
func (sym *Symbol) SetProp(p Property) { sym.props |= uint64(p) }

// ClearProp clears p on sym.
func (sym *Symbol) ClearProp(p Property) { sym.props &^= uint64(p) }

// IsAC reports whether sym is flagged both associative and commutative,
// the predicate pkg/ac uses to decide whether to flatten.
func (sym *Symbol) IsAC() bool {
	return sym.HasProp(PropAssociative) && sym.HasProp(PropCommutative)
}

// Signature owns the symbol name <-> f_code mapping for one session. It
// is not safe for concurrent mutation (the whole core is single-owner
// per spec.md §5); concurrent read-only lookups are fine since the
// radix tree is immutable per snapshot.
type Signature struct {
	names  *iradix.Tree[FCode]
	byCode []*Symbol // index 0 unused, index i holds FCode(i)
	next   FCode
}

// NewSignature returns an empty signature. f_code 0 is never assigned so
// that the zero value of FCode can serve as "no symbol".
func NewSignature() *Signature {
	return &Signature{
		names:  iradix.New[FCode](),
		byCode: make([]*Symbol, 1),
		next:   1,
	}
}

// Find returns the symbol named name, if any.
func (s *Signature) Find(name string) (*Symbol, bool) {
	code, ok := s.names.Get([]byte(name))
	if !ok {
		return nil, false
	}
	return s.byCode[code], true
}

// InsertOrFind returns the existing symbol named name if one was already
// declared with the same arity, or allocates and returns a fresh one
// (panicking on an arity mismatch — symbols are not overloaded).
func (s *Signature) InsertOrFind(name string, arity int, typ *types.Type) *Symbol {
	if sym, ok := s.Find(name); ok {
		if sym.Arity != arity {
			panic(fmt.Sprintf("symtab: %s/%d redeclared with arity %d", name, sym.Arity, arity))
		}
		return sym
	}
	code := s.next
	s.next++
	sym := &Symbol{Code: code, Name: name, Arity: arity, Type: typ}
	s.byCode = append(s.byCode, sym)
	txn := s.names.Txn()
	txn.Insert([]byte(name), code)
	s.names = txn.Commit()
	return sym
}

// Symbol returns the metadata for code, or nil if code is unassigned.
func (s *Signature) Symbol(code FCode) *Symbol {
	if code <= 0 || int(code) >= len(s.byCode) {
		return nil
	}
	return s.byCode[code]
}

// Count returns the number of distinct symbols declared so far.
func (s *Signature) Count() int { return len(s.byCode) - 1 }

// Each calls fn for every declared symbol, in ascending f_code order.
func (s *Signature) Each(fn func(*Symbol)) {
	for _, sym := range s.byCode[1:] {
		fn(sym)
	}
}
