// Package pcl implements the proof-object protocol of spec.md §4.9: a
// justification-linked step log keyed by integer clause id, flood-fill
// proof-clause marking, and the bit-exact auxiliary wire formats of
// spec.md §6 (clause statistics, annotations, file variables, and the
// axiom-filter grammar).
package pcl

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is a position-carrying syntax/semantic error from one of
// this package's format parsers, matching spec.md §7's Syntax/Semantic
// error kind.
type ParseError struct {
	Format string // e.g. "ClauseStats", "Annotation", "FileVars", "AxiomFilter"
	Pos    int    // byte offset into the input; ClauseStats gives the bad field's index, Annotation the ':' offset plus the bad value's index
	Msg    string
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pcl: %s: at byte %d: %s", e.Format, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.cause }

func newParseError(format string, pos int, msg string) error {
	return errors.WithStack(&ParseError{Format: format, Pos: pos, Msg: msg})
}
