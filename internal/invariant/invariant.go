// Package invariant provides the single assertion helper used throughout
// the core. A failed invariant indicates corrupted internal state, not a
// recoverable condition, so it always panics.
package invariant

import "fmt"

// Check panics with msg (formatted with args) if cond is false.
func Check(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+msg, args...))
	}
}
