package pcl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/btree"
)

// ClauseStats is the six-field, fixed-width-padded clause statistics
// record of spec.md §6: proof distance, and the used/unused counters for
// simplification and generation, plus a subsumption counter.
type ClauseStats struct {
	ProofDistance  int64
	SimplifyUsed   int64
	SimplifyUnused int64
	GenerateUsed   int64
	GenerateUnused int64
	Subsumed       int64
}

// String renders cs in the parenthesized, comma-separated form can_clausestats.c
// prints: "(%2ld,%3ld,%3ld,%3ld,%3ld, %3ld)", e.g. "( 2,  5,  1,  9,  3,   0)".
func (cs ClauseStats) String() string {
	return fmt.Sprintf("(%2d,%3d,%3d,%3d,%3d, %3d)",
		cs.ProofDistance, cs.SimplifyUsed, cs.SimplifyUnused,
		cs.GenerateUsed, cs.GenerateUnused, cs.Subsumed)
}

// ParseClauseStats parses the parenthesized six-field form String produces.
func ParseClauseStats(s string) (ClauseStats, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return ClauseStats{}, newParseError("ClauseStats", 0, "expected '(' ... ')': "+s)
	}
	fields := strings.Split(s[1:len(s)-1], ",")
	if len(fields) != 6 {
		return ClauseStats{}, newParseError("ClauseStats", 0, fmt.Sprintf("expected 6 fields, got %d", len(fields)))
	}
	vals := make([]int64, 6)
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return ClauseStats{}, newParseError("ClauseStats", i, "not an integer: "+f)
		}
		vals[i] = v
	}
	return ClauseStats{
		ProofDistance:  vals[0],
		SimplifyUsed:   vals[1],
		SimplifyUnused: vals[2],
		GenerateUsed:   vals[3],
		GenerateUnused: vals[4],
		Subsumed:       vals[5],
	}, nil
}

type statsEntry struct {
	ID    int64
	Stats ClauseStats
}

func statsEntryLess(a, b statsEntry) bool { return a.ID < b.ID }

// StatsList is a parsed whitespace-separated "<id>:<statsstr> <id>:<statsstr> ..."
// list, stored in an ordered btree.BTreeG keyed by clause id for
// deterministic re-printing.
type StatsList struct {
	tree *btree.BTreeG[statsEntry]
}

// NewStatsList returns an empty stats list.
func NewStatsList() *StatsList {
	return &StatsList{tree: btree.NewG[statsEntry](32, statsEntryLess)}
}

// ParseStatsList parses a whitespace-separated sequence of "<id>:<stats>"
// entries, each stats value itself a parenthesized ClauseStats — so the
// separator between entries cannot just be strings.Fields, since
// ClauseStats's own fixed-width padding embeds spaces inside the parens.
func ParseStatsList(s string) (*StatsList, error) {
	sl := NewStatsList()
	i, n := 0, len(s)
	for i < n {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && s[i] != ':' {
			i++
		}
		if i >= n {
			return nil, newParseError("StatsList", start, "missing ':' in entry")
		}
		idStr := s[start:i]
		i++ // skip ':'
		if i >= n || s[i] != '(' {
			return nil, newParseError("StatsList", start, "missing '(' after id")
		}
		openPos := i
		for i < n && s[i] != ')' {
			i++
		}
		if i >= n {
			return nil, newParseError("StatsList", openPos, "unterminated stats: missing ')'")
		}
		i++ // include ')'
		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err != nil {
			return nil, newParseError("StatsList", start, "bad clause id: "+idStr)
		}
		stats, err := ParseClauseStats(s[openPos:i])
		if err != nil {
			return nil, err
		}
		sl.Set(id, stats)
	}
	return sl, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// Set records stats for clause id.
func (sl *StatsList) Set(id int64, stats ClauseStats) {
	sl.tree.ReplaceOrInsert(statsEntry{ID: id, Stats: stats})
}

// Get returns the stats recorded for id, if any.
func (sl *StatsList) Get(id int64) (ClauseStats, bool) {
	e, ok := sl.tree.Get(statsEntry{ID: id})
	return e.Stats, ok
}

// String renders the list in ascending clause-id order, whitespace
// separated between entries.
func (sl *StatsList) String() string {
	var b strings.Builder
	first := true
	sl.tree.Ascend(func(e statsEntry) bool {
		if !first {
			b.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&b, "%d:%s", e.ID, e.Stats.String())
		return true
	})
	return b.String()
}
