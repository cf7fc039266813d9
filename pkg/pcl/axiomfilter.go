package pcl

import "strings"

// AxiomFilter is a parsed "GSinE(param, param, ...)"-shaped premise
// filter specification, per spec.md §6: a name plus an optional list of
// trailing parameters.
type AxiomFilter struct {
	Name   string
	Params []string
}

// String renders af back to its wire form.
func (af AxiomFilter) String() string {
	if len(af.Params) == 0 {
		return af.Name + "()"
	}
	return af.Name + "(" + strings.Join(af.Params, ",") + ")"
}

// ParseAxiomFilter parses the "Name(p1,p2,...)" grammar; trailing
// parameters are optional (an empty parameter list is legal).
func ParseAxiomFilter(s string) (AxiomFilter, error) {
	open := strings.Index(s, "(")
	if open < 0 || !strings.HasSuffix(s, ")") {
		return AxiomFilter{}, newParseError("AxiomFilter", 0, "expected Name(...) form: "+s)
	}
	name := strings.TrimSpace(s[:open])
	if name == "" {
		return AxiomFilter{}, newParseError("AxiomFilter", 0, "empty filter name")
	}
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	if inner == "" {
		return AxiomFilter{Name: name}, nil
	}
	raw := strings.Split(inner, ",")
	params := make([]string, len(raw))
	for i, p := range raw {
		params[i] = strings.TrimSpace(p)
	}
	return AxiomFilter{Name: name, Params: params}, nil
}
