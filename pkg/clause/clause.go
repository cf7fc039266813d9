package clause

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/eprover/eprover-sub005/pkg/order"
)

// ClauseProp is a single bit of a clause's property set.
type ClauseProp uint

const (
	PropUnit ClauseProp = iota
	PropHorn
	PropInitial
	PropProcessed
	PropSelected
	PropConjecture
	PropProofClause
	PropProtected
)

// Stats tracks the inference bookkeeping of spec.md §3: proof-distance
// and simplify/generate/subsume usage counts, mirroring the six fields
// of the ClauseStats wire format (pkg/pcl).
type Stats struct {
	ProofDistance   int64
	SimplifyUsed    int64
	SimplifyUnused  int64
	GenerateUsed    int64
	GenerateUnused  int64
	Subsumed        int64
}

// Clause is an ordered list of literals plus the counts, properties,
// and proof-reconstruction bookkeeping of spec.md §3. The literal-count
// fields are kept exactly in sync with Literals by every mutator in this
// package (invariant: PosCount+NegCount == len(Literals)).
type Clause struct {
	ID       int64
	Literals []*Literal
	PosCount int
	NegCount int
	props    bitset.BitSet
	Depth    int
	Stats    Stats
	Parents  []int64
}

// NewClause builds a clause from literals, computing PosCount/NegCount
// and the Unit/Horn derived properties.
func NewClause(id int64, literals ...*Literal) *Clause {
	c := &Clause{ID: id, Literals: literals}
	c.recount()
	return c
}

func (c *Clause) recount() {
	c.PosCount, c.NegCount = 0, 0
	for _, l := range c.Literals {
		if l.Positive {
			c.PosCount++
		} else {
			c.NegCount++
		}
	}
	if len(c.Literals) == 1 {
		c.props.Set(uint(PropUnit))
	} else {
		c.props.Clear(uint(PropUnit))
	}
	if c.PosCount <= 1 {
		c.props.Set(uint(PropHorn))
	} else {
		c.props.Clear(uint(PropHorn))
	}
}

// HasProp reports whether p is set on c.
func (c *Clause) HasProp(p ClauseProp) bool { return c.props.Test(uint(p)) }

// SetProp sets p on c.
func (c *Clause) SetProp(p ClauseProp) { c.props.Set(uint(p)) }

// ClearProp clears p on c.
func (c *Clause) ClearProp(p ClauseProp) { c.props.Clear(uint(p)) }

// IsEmpty reports whether c has no literals — the empty clause, which
// is vacuously positive, Horn, a unit-limit case, and weight 0
// (spec.md §8 boundary behaviour).
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Weight returns the sum of each literal's two sides' weights.
func (c *Clause) Weight() int64 {
	var w int64
	for _, l := range c.Literals {
		w += l.LHS.Weight()
		if l.RHS != nil {
			w += l.RHS.Weight()
		}
	}
	return w
}

// MarkMaximal computes, for each literal, whether it is maximal in the
// clause under the multiset extension of ocb's literal ordering
// (spec.md §4.7): a literal is maximal iff no other literal in the
// clause is strictly greater.
func (c *Clause) MarkMaximal(ocb *order.OCB) {
	for _, l := range c.Literals {
		l.Orient(ocb)
	}
	for i, li := range c.Literals {
		maximal := true
		for j, lj := range c.Literals {
			if i == j {
				continue
			}
			if litGreater(ocb, lj, li) == order.Greater {
				maximal = false
				break
			}
		}
		if maximal {
			li.setProp(LitMaximal)
		} else {
			li.clearProp(LitMaximal)
		}
	}
}
