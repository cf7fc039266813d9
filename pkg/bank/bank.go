// Package bank provides the term bank: the single owner of a
// signature, variable bank, and term store a proving session shares,
// mirroring spec.md §4.1's "one store per session" rule.
package bank

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
	"github.com/eprover/eprover-sub005/pkg/types"
	"github.com/eprover/eprover-sub005/pkg/varbank"
)

// Bank owns the signature, type table, hash-consed term store, and
// variable bank for one proof attempt.
type Bank struct {
	ID    uuid.UUID
	Log   hclog.Logger
	Sig   *symtab.Signature
	Types *types.Table
	Store *term.Store
	Vars  *varbank.Bank
}

// New allocates a fresh, empty term bank. log may be nil, in which case
// a discarding logger is used.
func New(log hclog.Logger) *Bank {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	store := term.NewStore()
	return &Bank{
		ID:    uuid.New(),
		Log:   log.Named("bank"),
		Sig:   symtab.NewSignature(),
		Types: types.NewTable(),
		Store: store,
		Vars:  varbank.NewBank(store),
	}
}

// Const inserts (or finds) the 0-arity term for a signature constant.
func (b *Bank) Const(name string, typ *types.Type) *term.Cell {
	sym := b.Sig.InsertOrFind(name, 0, typ)
	return b.Store.Insert(sym.Code, typ)
}

// App inserts (or finds) the term f(args...), looking f up (or
// declaring it) in the signature with the given codomain type.
func (b *Bank) App(name string, cod *types.Type, args ...*term.Cell) *term.Cell {
	dom := make([]*types.Type, len(args))
	for i, a := range args {
		dom[i] = a.Type
	}
	funcType := cod
	for i := len(dom) - 1; i >= 0; i-- {
		funcType = b.Types.Arrow(dom[i], funcType)
	}
	sym := b.Sig.InsertOrFind(name, len(args), funcType)
	return b.Store.Insert(sym.Code, cod, args...)
}

// GC runs mark-and-sweep reachability collection over live, rooted
// terms, returning the number of cells reclaimed.
func (b *Bank) GC(roots []*term.Cell) int {
	for _, r := range roots {
		b.Store.Mark(r)
	}
	n := b.Store.Sweep()
	b.Log.Debug("garbage collected", "reclaimed", n, "live", b.Store.Size())
	return n
}
