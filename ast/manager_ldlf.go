package ast

// LTrue and LFalse return this Manager's LDLf singletons.
func (m *Manager) LTrue() LDLfFormula  { return m.ldlfTrue }
func (m *Manager) LFalse() LDLfFormula { return m.ldlfFalse }

func (m *Manager) LAnd(args ...LDLfFormula) LDLfFormula {
	if len(args) == 0 {
		panic("ast: LAnd requires at least one operand")
	}
	flat := make([]LDLfFormula, 0, len(args))
	for _, a := range args {
		if and, ok := a.(*LDLfAnd); ok {
			flat = append(flat, and.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	kept := make([]LDLfFormula, 0, len(flat))
	for _, a := range flat {
		if a.Equal(m.ldlfFalse) {
			return m.ldlfFalse
		}
		if a.Equal(m.ldlfTrue) {
			continue
		}
		kept = append(kept, a)
	}
	kept = dedup(kept)
	if len(kept) == 0 {
		return m.ldlfTrue
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortByHash(kept)
	return m.intern(newLDLfAnd(kept)).(LDLfFormula)
}

func (m *Manager) LOr(args ...LDLfFormula) LDLfFormula {
	if len(args) == 0 {
		panic("ast: LOr requires at least one operand")
	}
	flat := make([]LDLfFormula, 0, len(args))
	for _, a := range args {
		if or, ok := a.(*LDLfOr); ok {
			flat = append(flat, or.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	kept := make([]LDLfFormula, 0, len(flat))
	for _, a := range flat {
		if a.Equal(m.ldlfTrue) {
			return m.ldlfTrue
		}
		if a.Equal(m.ldlfFalse) {
			continue
		}
		kept = append(kept, a)
	}
	kept = dedup(kept)
	if len(kept) == 0 {
		return m.ldlfFalse
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortByHash(kept)
	return m.intern(newLDLfOr(kept)).(LDLfFormula)
}

func (m *Manager) LNot(arg LDLfFormula) LDLfFormula {
	if n, ok := arg.(*LDLfNot); ok {
		return n.Arg()
	}
	if arg.Equal(m.ldlfTrue) {
		return m.ldlfFalse
	}
	if arg.Equal(m.ldlfFalse) {
		return m.ldlfTrue
	}
	return m.intern(newLDLfNot(arg)).(LDLfFormula)
}

// Diamond builds <r>body. <r>False is forced to False: whatever run of r is
// taken, the trailing conjunct can never be satisfied.
func (m *Manager) Diamond(r RegExp, body LDLfFormula) LDLfFormula {
	if body.Equal(m.ldlfFalse) {
		return m.ldlfFalse
	}
	return m.intern(newLDLfDiamond(r, body)).(LDLfFormula)
}

// Box builds [r]body. [r]True is forced to True: every run of r (including
// none) trivially satisfies a trailing True.
func (m *Manager) Box(r RegExp, body LDLfFormula) LDLfFormula {
	if body.Equal(m.ldlfTrue) {
		return m.ldlfTrue
	}
	return m.intern(newLDLfBox(r, body)).(LDLfFormula)
}

// FMark wraps arg with the star-unfolding F-marker (see ldlfF). An argument
// that already carries the F-marker is returned unchanged, so unfolding a
// star whose body is marked does not nest markers.
func (m *Manager) FMark(arg LDLfFormula) LDLfFormula {
	if f, ok := arg.(*LDLfF); ok {
		return f
	}
	return m.intern(newLDLfF(arg)).(LDLfFormula)
}

// TMark wraps arg with the star-unfolding T-marker (see ldlfT). An argument
// that already carries the T-marker is returned unchanged.
func (m *Manager) TMark(arg LDLfFormula) LDLfFormula {
	if t, ok := arg.(*LDLfT); ok {
		return t
	}
	return m.intern(newLDLfT(arg)).(LDLfFormula)
}

// QMark wraps arg with the transparent quoting marker (see ldlfQ).
func (m *Manager) QMark(arg LDLfFormula) LDLfFormula {
	return m.intern(newLDLfQ(arg)).(LDLfFormula)
}
