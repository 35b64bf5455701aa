package ast

// PropRegExp builds the atomic program "take a step satisfying pl".
func (m *Manager) PropRegExp(pl PLFormula) RegExp {
	return m.intern(newRegPropositional(pl)).(RegExp)
}

// TestRegExp builds the test program "f?".
func (m *Manager) TestRegExp(f LDLfFormula) RegExp {
	return m.intern(newRegTest(f)).(RegExp)
}

// Union builds r1+r2+...+rn, flattening nested unions. An empty args slice
// is disallowed per the grammar and panics.
func (m *Manager) Union(args ...RegExp) RegExp {
	if len(args) == 0 {
		panic("ast: Union requires at least one operand")
	}
	flat := make([]RegExp, 0, len(args))
	for _, a := range args {
		if u, ok := a.(*RegUnion); ok {
			flat = append(flat, u.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	flat = dedup(flat)
	if len(flat) == 1 {
		return flat[0]
	}
	sortByHash(flat)
	return m.intern(newRegUnion(flat)).(RegExp)
}

// Sequence builds r1;r2;...;rn, flattening nested sequences. Order matters:
// this is a vector, not a set. An empty args slice is disallowed and panics.
func (m *Manager) Sequence(args ...RegExp) RegExp {
	if len(args) == 0 {
		panic("ast: Sequence requires at least one operand")
	}
	flat := make([]RegExp, 0, len(args))
	for _, a := range args {
		if s, ok := a.(*RegSequence); ok {
			flat = append(flat, s.Args()...)
			continue
		}
		flat = append(flat, a)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return m.intern(newRegSequence(flat)).(RegExp)
}

// Star builds r*.
func (m *Manager) Star(arg RegExp) RegExp {
	return m.intern(newRegStar(arg)).(RegExp)
}
