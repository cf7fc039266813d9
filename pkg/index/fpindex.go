package index

import (
	roaring "github.com/RoaringBitmap/roaring/v2"

	"github.com/eprover/eprover-sub005/pkg/symtab"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// feature summarizes a term at one sampled position, per spec.md §4.8's
// fingerprint abstraction.
type feature int64

const (
	featureAbsent   feature = -1 // position doesn't exist (arity too low)
	featureVariable feature = -2
	featureBelowVar feature = -3 // the path to this position ran through a variable
)

func funFeature(code symtab.FCode) feature { return feature(code) + 1 }

// defaultSamples are the fixed fingerprint positions FPIndex abstracts
// every indexed term over: the root, its first three children, and two
// grandchildren. Six samples keep the discriminating power of spec.md's
// "handful of positions compatible with a query" without growing one
// bucket set per distinct term shape.
var defaultSamples = []Pos{{}, {0}, {1}, {2}, {0, 0}, {1, 0}}

func sampleFeature(t *term.Cell, pos Pos) feature {
	cur := t
	belowVar := false
	for _, i := range pos {
		if cur.IsVar() {
			belowVar = true
			break
		}
		if i >= len(cur.Children) {
			return featureAbsent
		}
		cur = cur.Children[i]
	}
	if belowVar {
		return featureBelowVar
	}
	if cur.IsVar() {
		return featureVariable
	}
	return funFeature(cur.FCode)
}

// FPIndex is a fingerprint index: every indexed position is summarized
// by its feature vector over a fixed sample set, and retrieval
// intersects per-sample candidate bitmaps compatible with the query
// (spec.md §4.8). RoaringBitmap/roaring/v2 backs the compact per-feature
// clause-position id sets.
type FPIndex struct {
	samples []Pos
	buckets []map[feature]*roaring.Bitmap
	records []ClausePos
}

// NewFPIndex returns an empty fingerprint index over the default sample
// positions.
func NewFPIndex() *FPIndex {
	fp := &FPIndex{samples: defaultSamples, buckets: make([]map[feature]*roaring.Bitmap, len(defaultSamples))}
	for i := range fp.buckets {
		fp.buckets[i] = make(map[feature]*roaring.Bitmap)
	}
	return fp
}

func (fp *FPIndex) bucket(sample int, f feature) *roaring.Bitmap {
	b, ok := fp.buckets[sample][f]
	if !ok {
		b = roaring.New()
		fp.buckets[sample][f] = b
	}
	return b
}

// Insert records t at pos.
func (fp *FPIndex) Insert(t *term.Cell, pos ClausePos) {
	id := uint32(len(fp.records))
	fp.records = append(fp.records, pos)
	for i, s := range fp.samples {
		fp.bucket(i, sampleFeature(t, s)).Add(id)
	}
}

// compatible reports whether an indexed feature iv could still unify or
// match with a query feature qv at the same sampled position.
func compatible(iv, qv feature) bool {
	if iv == qv {
		return true
	}
	if iv == featureVariable || iv == featureBelowVar {
		return true
	}
	if qv == featureVariable || qv == featureBelowVar {
		return true
	}
	return false
}

// Candidates returns every indexed position whose fingerprint is
// compatible with query at every sampled position.
func (fp *FPIndex) Candidates(query *term.Cell) []ClausePos {
	var acc *roaring.Bitmap
	for i, s := range fp.samples {
		qf := sampleFeature(query, s)
		var sampleUnion *roaring.Bitmap
		for iv, bm := range fp.buckets[i] {
			if !compatible(iv, qf) {
				continue
			}
			if sampleUnion == nil {
				sampleUnion = bm.Clone()
			} else {
				sampleUnion.Or(bm)
			}
		}
		if sampleUnion == nil {
			return nil
		}
		if acc == nil {
			acc = sampleUnion
		} else {
			acc.And(sampleUnion)
		}
		if acc.IsEmpty() {
			return nil
		}
	}
	if acc == nil {
		return nil
	}
	out := make([]ClausePos, 0, acc.GetCardinality())
	it := acc.Iterator()
	for it.HasNext() {
		out = append(out, fp.records[it.Next()])
	}
	return out
}
