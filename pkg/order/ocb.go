// Package order implements the ordering control block and the LPO/KBO
// term orderings of spec.md §3/§4.6: a symbol precedence, a weight
// vector, and the decision procedures that tell a rewriting step whether
// s > t, s < t, s = t, or the two are uncomparable.
package order

import (
	"github.com/mitchellh/mapstructure"

	"github.com/eprover/eprover-sub005/pkg/symtab"
)

// Kind selects which ordering an OCB implements.
type Kind int

const (
	KindLPO Kind = iota
	KindLPOCopy
	KindKBO
	KindKBO6
)

// Result is the outcome of a term comparison: greater, less, equal, or
// uncomparable — a first-class logical-failure outcome, never an error
// (spec.md §7).
type Result int

const (
	Uncomparable Result = iota
	Greater
	Less
	Equal
)

// OCB (ordering control block) bundles the symbol precedence, weight
// vector, and KBO variable-count auxiliary slots that define one
// ordering instance. Precedence ranks symbols by the value given to
// SetPrecedence; symbols of equal rank, including every symbol never
// ranked (rank 0), are not ordered against each other, so the order is
// total only if every symbol gets a distinct rank. KBO additionally
// requires every unary symbol's weight be at least the variable weight
// (checked by Validate).
type OCB struct {
	Kind       Kind
	Sig        *symtab.Signature
	precedence map[symtab.FCode]int
	weights    map[symtab.FCode]int64
	varWeight  int64
}

// Config is the external, name-keyed shape the heuristic/weight
// registry contract of spec.md §6 hands the core; NewOCBFromConfig
// decodes it via mapstructure so that contract is concretely typed
// rather than merely described.
type Config struct {
	Kind       string           `mapstructure:"kind"`
	Precedence []string         `mapstructure:"precedence"` // highest first
	Weights    map[string]int64 `mapstructure:"weights"`
	VarWeight  int64            `mapstructure:"var_weight"`
}

// NewOCB returns an OCB of the given kind over sig, with an empty
// precedence/weight assignment (default minimum weight everywhere).
func NewOCB(kind Kind, sig *symtab.Signature) *OCB {
	return &OCB{
		Kind:       kind,
		Sig:        sig,
		precedence: make(map[symtab.FCode]int),
		weights:    make(map[symtab.FCode]int64),
		varWeight:  1,
	}
}

// NewOCBFromConfig decodes raw (as produced by the external weight
// registry) into an OCB over sig.
func NewOCBFromConfig(sig *symtab.Signature, raw map[string]any) (*OCB, error) {
	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, err
	}
	kind := KindLPO
	switch cfg.Kind {
	case "KBO":
		kind = KindKBO
	case "KBO6":
		kind = KindKBO6
	case "LPOCopy":
		kind = KindLPOCopy
	}
	ocb := NewOCB(kind, sig)
	if cfg.VarWeight > 0 {
		ocb.varWeight = cfg.VarWeight
	}
	for i, name := range cfg.Precedence {
		if sym, ok := sig.Find(name); ok {
			ocb.SetPrecedence(sym.Code, len(cfg.Precedence)-i)
		}
	}
	for name, w := range cfg.Weights {
		if sym, ok := sig.Find(name); ok {
			ocb.SetWeight(sym.Code, w)
		}
	}
	return ocb, nil
}

// SetPrecedence assigns f's precedence rank; larger values precede (are
// "greater than") smaller ones.
func (o *OCB) SetPrecedence(f symtab.FCode, rank int) { o.precedence[f] = rank }

// Precedence returns f's precedence rank (0 if never assigned).
func (o *OCB) Precedence(f symtab.FCode) int { return o.precedence[f] }

// PrecedenceGreater reports whether f1 strictly precedes f2 in the
// total order (f1 ≻ f2).
func (o *OCB) PrecedenceGreater(f1, f2 symtab.FCode) bool {
	return o.precedence[f1] > o.precedence[f2]
}

// SetWeight assigns f's KBO weight.
func (o *OCB) SetWeight(f symtab.FCode, w int64) { o.weights[f] = w }

// Weight returns f's configured weight, or 1 (the default minimum
// weight) if never assigned.
func (o *OCB) Weight(f symtab.FCode) int64 {
	if w, ok := o.weights[f]; ok {
		return w
	}
	return 1
}

// VarWeight returns the configured variable weight (default 1).
func (o *OCB) VarWeight() int64 { return o.varWeight }

// Validate checks the KBO admissibility invariant of spec.md §3: every
// unary symbol's weight must be at least the variable weight.
func (o *OCB) Validate() bool {
	if o.Kind != KindKBO && o.Kind != KindKBO6 {
		return true
	}
	ok := true
	o.Sig.Each(func(sym *symtab.Symbol) {
		if sym.Arity == 1 && o.Weight(sym.Code) < o.varWeight {
			ok = false
		}
	})
	return ok
}
