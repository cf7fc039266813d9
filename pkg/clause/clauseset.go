package clause

import "container/list"

// Set is a clause set: a doubly linked list of clauses with an anchor
// sentinel, exactly the shape container/list.List already provides
// internally (a root element threaded into the ring), cached counts,
// and optionally attached demodulator/subterm indexes.
type Set struct {
	l *list.List

	count     int
	unitCount int
	hornCount int

	// Demod and Subterm are attached by the given-clause loop (outside
	// this module's scope) once pkg/index builds them over this set;
	// Set itself only tracks clause membership.
	Demod, Subterm any
}

// NewSet returns an empty clause set.
func NewSet() *Set {
	return &Set{l: list.New()}
}

// Insert adds c to the set and updates cached counts.
func (s *Set) Insert(c *Clause) *list.Element {
	e := s.l.PushBack(c)
	s.count++
	if c.HasProp(PropUnit) {
		s.unitCount++
	}
	if c.HasProp(PropHorn) {
		s.hornCount++
	}
	return e
}

// Extract removes the clause at e from the set.
func (s *Set) Extract(e *list.Element) {
	c := e.Value.(*Clause)
	s.l.Remove(e)
	s.count--
	if c.HasProp(PropUnit) {
		s.unitCount--
	}
	if c.HasProp(PropHorn) {
		s.hornCount--
	}
}

// Len returns the number of clauses currently in the set.
func (s *Set) Len() int { return s.count }

// UnitCount returns the number of unit clauses currently in the set.
func (s *Set) UnitCount() int { return s.unitCount }

// HornCount returns the number of Horn clauses currently in the set.
func (s *Set) HornCount() int { return s.hornCount }

// Each calls fn for every clause in insertion order.
func (s *Set) Each(fn func(*Clause)) {
	for e := s.l.Front(); e != nil; e = e.Next() {
		fn(e.Value.(*Clause))
	}
}
