package pcl

import (
	"bytes"
	"testing"

	"github.com/google/go-test/deep"
	"github.com/stretchr/testify/require"
)

func TestClauseStatsRoundTrip(t *testing.T) {
	cs := ClauseStats{ProofDistance: 2, SimplifyUsed: 5, SimplifyUnused: 1, GenerateUsed: 9, GenerateUnused: 3, Subsumed: 0}
	parsed, err := ParseClauseStats(cs.String())
	require.NoError(t, err)
	if diff := deep.Equal(cs, parsed); diff != nil {
		t.Fatalf("round trip mismatch: %v", diff)
	}
}

func TestParseClauseStatsRejectsWrongFieldCount(t *testing.T) {
	_, err := ParseClauseStats("(1,2,3)")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseStatsList(t *testing.T) {
	sl, err := ParseStatsList("1:(  1,  0,  0,  0,  0,   0) 2:(  3,  1,  0,  2,  0,   1)")
	require.NoError(t, err)
	s1, ok := sl.Get(1)
	require.True(t, ok)
	require.Equal(t, int64(1), s1.ProofDistance)
	s2, ok := sl.Get(2)
	require.True(t, ok)
	require.Equal(t, int64(1), s2.Subsumed)
}

func TestAnnotationRoundTrip(t *testing.T) {
	a := Annotation{SourceID: 7, Values: []float64{1, 2.5, -3}}
	parsed, err := ParseAnnotation(a.String(), -1)
	require.NoError(t, err)
	if diff := deep.Equal(a, parsed); diff != nil {
		t.Fatalf("round trip mismatch: %v", diff)
	}
}

func TestAnnotationOverflowIsParseError(t *testing.T) {
	_, err := ParseAnnotation("1:(1,2,3)", 2)
	require.Error(t, err)
}

func TestAnnotationEmptyValuesIsParseError(t *testing.T) {
	_, err := ParseAnnotation("7:()", -1)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestFileVarsSkipsCommentsAndAggregatesErrors(t *testing.T) {
	src := "# a comment\nfoo=1;\nbar = baz;\nbroken line\nqux=3;\n"
	fv, err := ParseFileVars(src)
	require.Error(t, err, "the malformed 'broken line' entry must be reported")
	require.Equal(t, "1", fv.Values["foo"])
	require.Equal(t, "baz", fv.Values["bar"])
	require.Equal(t, "3", fv.Values["qux"])

	n, ok := fv.Int("foo")
	require.True(t, ok)
	require.Equal(t, int64(1), n)
}

func TestAxiomFilterRoundTrip(t *testing.T) {
	af, err := ParseAxiomFilter("GSinE(CountFormulas,0.8,100)")
	require.NoError(t, err)
	require.Equal(t, "GSinE", af.Name)
	require.Equal(t, []string{"CountFormulas", "0.8", "100"}, af.Params)
	require.Equal(t, "GSinE(CountFormulas,0.8,100)", af.String())
}

func TestAxiomFilterEmptyParams(t *testing.T) {
	af, err := ParseAxiomFilter("GSinE()")
	require.NoError(t, err)
	require.Empty(t, af.Params)
}

func TestProofMarkAndPrint(t *testing.T) {
	p := NewProof()
	p.Add(1, nil, Initial())
	p.Add(2, nil, Initial())
	p.Add(3, nil, Quote("resolution", 1, 2))
	p.Add(4, nil, Initial()) // unused detour, never reached from 3

	p.MarkProofClauses(3)

	s1, _ := p.Get(1)
	s4, _ := p.Get(4)
	require.True(t, s1.Reachable())
	require.False(t, s4.Reachable())

	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf, true))
	out := buf.String()
	require.Contains(t, out, "1 ::")
	require.Contains(t, out, "3 ::")
	require.NotContains(t, out, "4 ::")
}
