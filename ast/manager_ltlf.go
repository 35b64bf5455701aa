package ast

// LTLfTrueF / LTLfFalseF return this Manager's LTLf singletons.
func (m *Manager) LTLfTrueF() LTLfFormula  { return m.ltlfTrue }
func (m *Manager) LTLfFalseF() LTLfFormula { return m.ltlfFalse }

func (m *Manager) LTLfAtomF(name Symbol) LTLfFormula {
	return m.intern(newLTLfAtom(name)).(LTLfFormula)
}

func (m *Manager) LTLfAnd(args ...LTLfFormula) LTLfFormula {
	if len(args) == 0 {
		panic("ast: LTLfAnd requires at least one operand")
	}
	flat := make([]LTLfFormula, 0, len(args))
	for _, a := range args {
		if and, ok := a.(*LTLfAnd); ok {
			flat = append(flat, and.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	kept := make([]LTLfFormula, 0, len(flat))
	for _, a := range flat {
		if a.Equal(m.ltlfFalse) {
			return m.ltlfFalse
		}
		if a.Equal(m.ltlfTrue) {
			continue
		}
		kept = append(kept, a)
	}
	kept = dedup(kept)
	if len(kept) == 0 {
		return m.ltlfTrue
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortByHash(kept)
	return m.intern(newLTLfAnd(kept)).(LTLfFormula)
}

func (m *Manager) LTLfOr(args ...LTLfFormula) LTLfFormula {
	if len(args) == 0 {
		panic("ast: LTLfOr requires at least one operand")
	}
	flat := make([]LTLfFormula, 0, len(args))
	for _, a := range args {
		if or, ok := a.(*LTLfOr); ok {
			flat = append(flat, or.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	kept := make([]LTLfFormula, 0, len(flat))
	for _, a := range flat {
		if a.Equal(m.ltlfTrue) {
			return m.ltlfTrue
		}
		if a.Equal(m.ltlfFalse) {
			continue
		}
		kept = append(kept, a)
	}
	kept = dedup(kept)
	if len(kept) == 0 {
		return m.ltlfFalse
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortByHash(kept)
	return m.intern(newLTLfOr(kept)).(LTLfFormula)
}

func (m *Manager) LTLfNotF(arg LTLfFormula) LTLfFormula {
	if n, ok := arg.(*LTLfNot); ok {
		return n.Arg()
	}
	if arg.Equal(m.ltlfTrue) {
		return m.ltlfFalse
	}
	if arg.Equal(m.ltlfFalse) {
		return m.ltlfTrue
	}
	return m.intern(newLTLfNot(arg)).(LTLfFormula)
}

func (m *Manager) Next(arg LTLfFormula) LTLfFormula {
	return m.intern(newLTLfUnary(KindLTLfNext, arg)).(LTLfFormula)
}

func (m *Manager) WeakNext(arg LTLfFormula) LTLfFormula {
	return m.intern(newLTLfUnary(KindLTLfWeakNext, arg)).(LTLfFormula)
}

func (m *Manager) Eventually(arg LTLfFormula) LTLfFormula {
	return m.intern(newLTLfUnary(KindLTLfEventually, arg)).(LTLfFormula)
}

func (m *Manager) Always(arg LTLfFormula) LTLfFormula {
	return m.intern(newLTLfUnary(KindLTLfAlways, arg)).(LTLfFormula)
}

func (m *Manager) Until(left, right LTLfFormula) LTLfFormula {
	return m.intern(newLTLfBinary(KindLTLfUntil, left, right)).(LTLfFormula)
}

func (m *Manager) Release(left, right LTLfFormula) LTLfFormula {
	return m.intern(newLTLfBinary(KindLTLfRelease, left, right)).(LTLfFormula)
}
