package clause

// SelectionStrategy bounds which literals Clause.SelectLiterals is
// allowed to pick, per spec.md §4.7: min/max caps on positive, negative,
// and total literal counts, and a clause-weight cap. SelectLiterals
// applies only MaxNeg, MaxPos, MaxTotal and MaxWeight (a negative value
// disables that cap); MinNeg, MinPos and MinTotal are not consulted.
type SelectionStrategy struct {
	MinNeg, MaxNeg       int
	MinPos, MaxPos       int
	MinTotal, MaxTotal   int
	MaxWeight            int64
}

// DefaultStrategy selects at most one negative maximal literal per
// clause, the first one in literal order, and no positive literal.
var DefaultStrategy = SelectionStrategy{MaxNeg: 1, MaxTotal: -1, MaxWeight: -1}

// SelectLiterals applies strategy to c, honouring the inherit-paramod
// override of spec.md §4.7: if any literal carries LitInheritParamod and
// c has at least one negative literal, every such literal is selected
// regardless of strategy caps.
func (c *Clause) SelectLiterals(strategy SelectionStrategy) {
	for _, l := range c.Literals {
		l.clearProp(LitSelected)
	}

	if c.NegCount > 0 {
		inherited := false
		for _, l := range c.Literals {
			if l.HasProp(LitInheritParamod) {
				l.setProp(LitSelected)
				inherited = true
			}
		}
		if inherited {
			c.SetProp(PropSelected)
			return
		}
	}

	if strategy.MaxWeight >= 0 && c.Weight() > strategy.MaxWeight {
		return
	}
	if strategy.MaxTotal >= 0 && len(c.Literals) > strategy.MaxTotal {
		return
	}

	negSelected, posSelected := 0, 0
	for _, l := range c.Literals {
		if !l.Positive && !l.HasProp(LitMaximal) {
			continue
		}
		if l.Positive {
			if strategy.MaxPos >= 0 && posSelected >= strategy.MaxPos {
				continue
			}
			posSelected++
		} else {
			if strategy.MaxNeg >= 0 && negSelected >= strategy.MaxNeg {
				continue
			}
			negSelected++
		}
		l.setProp(LitSelected)
	}
	if negSelected > 0 || posSelected > 0 {
		c.SetProp(PropSelected)
	}
}
