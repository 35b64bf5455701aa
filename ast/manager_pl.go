package ast

// True and False return this Manager's PL singletons.
func (m *Manager) True() PLFormula  { return m.plTrue }
func (m *Manager) False() PLFormula { return m.plFalse }

// Atom returns the canonical PL atom wrapping name.
func (m *Manager) Atom(name AtomName) PLFormula {
	return m.intern(newPLAtom(name)).(PLFormula)
}

// And builds the conjunction of args with AC-flattening, annihilation
// (any False collapses the whole conjunction to False), absorption (True
// operands are dropped), and singleton simplification (And{x} == x).
// An empty args slice is a programmer error (there is no empty conjunction
// in this grammar) and panics, matching the manager's assert-on-illegal-
// arity contract.
func (m *Manager) And(args ...PLFormula) PLFormula {
	if len(args) == 0 {
		panic("ast: And requires at least one operand")
	}
	flat := make([]PLFormula, 0, len(args))
	for _, a := range args {
		if and, ok := a.(*PLAnd); ok {
			flat = append(flat, and.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	kept := make([]PLFormula, 0, len(flat))
	for _, a := range flat {
		if a.Equal(m.plFalse) {
			return m.plFalse
		}
		if a.Equal(m.plTrue) {
			continue
		}
		kept = append(kept, a)
	}
	kept = dedup(kept)
	if len(kept) == 0 {
		return m.plTrue
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortByHash(kept)
	return m.intern(newPLAnd(kept)).(PLFormula)
}

// Or is the dual of And: True annihilates, False is absorbed.
func (m *Manager) Or(args ...PLFormula) PLFormula {
	if len(args) == 0 {
		panic("ast: Or requires at least one operand")
	}
	flat := make([]PLFormula, 0, len(args))
	for _, a := range args {
		if or, ok := a.(*PLOr); ok {
			flat = append(flat, or.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	kept := make([]PLFormula, 0, len(flat))
	for _, a := range flat {
		if a.Equal(m.plTrue) {
			return m.plTrue
		}
		if a.Equal(m.plFalse) {
			continue
		}
		kept = append(kept, a)
	}
	kept = dedup(kept)
	if len(kept) == 0 {
		return m.plFalse
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortByHash(kept)
	return m.intern(newPLOr(kept)).(PLFormula)
}

// Not builds the negation of arg, forcing double-negation elimination and
// the True/False duals at construction time.
func (m *Manager) Not(arg PLFormula) PLFormula {
	switch a := arg.(type) {
	case *PLNot:
		return a.Arg()
	}
	if arg.Equal(m.plTrue) {
		return m.plFalse
	}
	if arg.Equal(m.plFalse) {
		return m.plTrue
	}
	return m.intern(newPLNot(arg)).(PLFormula)
}
