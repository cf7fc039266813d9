package pcl

import (
	"fmt"
	"io"

	"github.com/google/btree"

	"github.com/eprover/eprover-sub005/pkg/clause"
)

// StepID is the integer clause id a proof step is keyed by.
type StepID int64

// Justification records how a step was derived: either an initial
// (axiom) step, or an inference quoting the prior steps it used.
type Justification struct {
	IsInitial bool
	Quotes    []StepID
	Rule      string
}

// Initial returns the justification for an axiom/initial clause.
func Initial() Justification { return Justification{IsInitial: true} }

// Quote returns the justification for an inference step derived from
// the given prior steps.
func Quote(rule string, ids ...StepID) Justification {
	return Justification{Quotes: ids, Rule: rule}
}

// Step is one clause in the proof log: its derivation, its clause-set
// statistics, and whatever learning annotation was attached to it.
type Step struct {
	ID         StepID
	Clause     *clause.Clause
	Just       Justification
	Stats      ClauseStats
	Annotation *Annotation
	reachable  bool
}

func stepLess(a, b *Step) bool { return a.ID < b.ID }

// Proof is the full step log of one proof search, keyed by integer id
// in an ordered btree.BTreeG so Print can walk it in id order without a
// separate sort.
type Proof struct {
	tree *btree.BTreeG[*Step]
}

// NewProof returns an empty proof log.
func NewProof() *Proof {
	return &Proof{tree: btree.NewG[*Step](32, stepLess)}
}

// Add records a new step.
func (p *Proof) Add(id StepID, c *clause.Clause, just Justification) *Step {
	s := &Step{ID: id, Clause: c, Just: just}
	p.tree.ReplaceOrInsert(s)
	return s
}

// Get returns the step for id, if recorded.
func (p *Proof) Get(id StepID) (*Step, bool) {
	return p.tree.Get(&Step{ID: id})
}

// Len returns the number of recorded steps.
func (p *Proof) Len() int { return p.tree.Len() }

// MarkProofClauses flood-fills backwards from root (normally the empty
// clause's step id) through Justification.Quotes, marking every
// transitively used step reachable. Unreached steps remain unmarked so
// Print(w, true) can omit search detours from the final proof listing.
func (p *Proof) MarkProofClauses(root StepID) {
	visited := make(map[StepID]bool)
	var visit func(StepID)
	visit = func(id StepID) {
		if visited[id] {
			return
		}
		visited[id] = true
		s, ok := p.Get(id)
		if !ok {
			return
		}
		s.reachable = true
		for _, q := range s.Just.Quotes {
			visit(q)
		}
	}
	visit(root)
}

// Reachable reports whether s was reached by the last MarkProofClauses
// flood-fill.
func (s *Step) Reachable() bool { return s.reachable }

// Print writes every step to w in ascending id order. When onlyReachable
// is true (after a MarkProofClauses call), steps never marked reachable
// are skipped.
func (p *Proof) Print(w io.Writer, onlyReachable bool) error {
	var writeErr error
	p.tree.Ascend(func(s *Step) bool {
		if onlyReachable && !s.reachable {
			return true
		}
		if _, err := fmt.Fprintf(w, "%d :: %s :: %s\n", s.ID, formatJust(s.Just), s.Stats); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

func formatJust(j Justification) string {
	if j.IsInitial {
		return "initial"
	}
	quoted := make([]string, len(j.Quotes))
	for i, q := range j.Quotes {
		quoted[i] = fmt.Sprintf("%d", q)
	}
	rule := j.Rule
	if rule == "" {
		rule = "inference"
	}
	return fmt.Sprintf("%s(%s)", rule, joinIDs(quoted))
}

func joinIDs(ids []string) string {
	out := ""
	for i, s := range ids {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}
