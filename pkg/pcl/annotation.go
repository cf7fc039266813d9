package pcl

import (
	"fmt"
	"strconv"
	"strings"
)

// Annotation is a source-clause reference plus a fixed-length feature
// vector, round-tripping as "<source_id>:(v0,v1,...)" per spec.md §6.
type Annotation struct {
	SourceID int64
	Values   []float64
}

// String renders a in its wire form.
func (a Annotation) String() string {
	parts := make([]string, len(a.Values))
	for i, v := range a.Values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%d:(%s)", a.SourceID, strings.Join(parts, ","))
}

// ParseAnnotation parses the "<source_id>:(v0,v1,...)" form. declaredLen,
// if non-negative, bounds the vector length; a value beyond it is a
// parse error, matching spec.md §6's "overflow beyond declared vector
// length is a parse error".
func ParseAnnotation(s string, declaredLen int) (Annotation, error) {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return Annotation{}, newParseError("Annotation", 0, "missing ':'")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s[:idx]), 10, 64)
	if err != nil {
		return Annotation{}, newParseError("Annotation", 0, "bad source id: "+s[:idx])
	}
	rest := strings.TrimSpace(s[idx+1:])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return Annotation{}, newParseError("Annotation", idx, "expected parenthesized value list")
	}
	inner := rest[1 : len(rest)-1]
	if strings.TrimSpace(inner) == "" {
		return Annotation{}, newParseError("Annotation", idx, "value vector must have at least one value")
	}
	var vals []float64
	for i, f := range strings.Split(inner, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Annotation{}, newParseError("Annotation", idx+i, "not a number: "+f)
		}
		if declaredLen >= 0 && i >= declaredLen {
			return Annotation{}, newParseError("Annotation", idx+i, "value vector exceeds declared length")
		}
		vals = append(vals, v)
	}
	return Annotation{SourceID: id, Values: vals}, nil
}
