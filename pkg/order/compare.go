package order

import (
	"github.com/eprover/eprover-sub005/pkg/subst"
	"github.com/eprover/eprover-sub005/pkg/term"
)

// Compare dispatches to the LPO or KBO decision procedure according to
// o.Kind, mirroring the original source's TOCompare symbol dispatch
// (_examples/original_source/ORDERINGS/cto_orderings.c).
func Compare(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) Result {
	switch o.Kind {
	case KindKBO, KindKBO6:
		return KBOCompare(o, s, t, derefS, derefT)
	default:
		return LPOCompare(o, s, t, derefS, derefT)
	}
}

// IsGreater dispatches the boolean form of Compare.
func IsGreater(o *OCB, s, t *term.Cell, derefS, derefT subst.DerefPolicy) bool {
	return Compare(o, s, t, derefS, derefT) == Greater
}
