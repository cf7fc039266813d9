package pcl

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// FileVars is a parsed set of "<ident>=<value>;" assignments, with
// "#"-prefixed comment lines skipped, per spec.md §6.
type FileVars struct {
	Values map[string]string
}

// ParseFileVars parses every assignment in src, collecting every
// malformed line's error into a single go-multierror rather than
// stopping at the first one, so a caller sees every recoverable parse
// diagnostic at once.
func ParseFileVars(src string) (*FileVars, error) {
	fv := &FileVars{Values: make(map[string]string)}
	var errs *multierror.Error
	pos := 0
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
		default:
			if err := fv.parseLine(trimmed, pos); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		pos += len(line) + 1
	}
	return fv, errs.ErrorOrNil()
}

func (fv *FileVars) parseLine(line string, pos int) error {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	idx := strings.Index(line, "=")
	if idx < 0 {
		return newParseError("FileVars", pos, "missing '=' in: "+line)
	}
	ident := strings.TrimSpace(line[:idx])
	if ident == "" {
		return newParseError("FileVars", pos, "empty identifier")
	}
	fv.Values[ident] = strings.TrimSpace(line[idx+1:])
	return nil
}

// Int returns the named value parsed as an integer.
func (fv *FileVars) Int(name string) (int64, bool) {
	s, ok := fv.Values[name]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}
