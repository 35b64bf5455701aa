package normalize

import "github.com/whitemech/lydia-go/ast"

// trueRegExp returns the atomic program "any single step" (propositional
// guard true).
func trueRegExp(m *ast.Manager) ast.RegExp {
	return m.PropRegExp(m.True())
}

// End is the LDLf formula that holds exactly at the end of the trace:
// End ≡ [true]False.
func End(m *ast.Manager) ast.LDLfFormula {
	return m.Box(trueRegExp(m), m.LFalse())
}

// Last holds exactly one step before the end of the trace: Last ≡ ⟨true⟩End.
func Last(m *ast.Manager) ast.LDLfFormula {
	return m.Diamond(trueRegExp(m), End(m))
}

func notLDLf(m *ast.Manager, f ast.LDLfFormula) ast.LDLfFormula {
	return pushLDLfNot(m, f)
}

// ToLDLf reduces an LTLf formula to an equivalent LDLf formula using the
// standard embedding of spec.md 4.3. The formula is first pushed into LTLf
// negation-normal form (finite-trace dualities: ¬X=WX¬, ¬WX=X¬, ¬U=R,
// ¬R=U, ¬F=G, ¬G=F) so that every remaining Not sits directly over an
// atomic proposition, then each construct is rewritten to its LDLf
// equivalent. The result is itself passed through NNFLDLf so callers always
// receive a formula ready for delta expansion.
func ToLDLf(m *ast.Manager, f ast.LTLfFormula) ast.LDLfFormula {
	return NNFLDLf(m, toLDLf(m, NNFLTLf(m, f)))
}

// NNFLTLf pushes negation down to the atoms of an LTLf formula using the
// finite-trace dualities of spec.md 4.2.
func NNFLTLf(m *ast.Manager, f ast.LTLfFormula) ast.LTLfFormula {
	switch n := f.(type) {
	case *ast.LTLfAnd:
		args := make([]ast.LTLfFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = NNFLTLf(m, a)
		}
		return m.LTLfAnd(args...)
	case *ast.LTLfOr:
		args := make([]ast.LTLfFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = NNFLTLf(m, a)
		}
		return m.LTLfOr(args...)
	case *ast.LTLfNot:
		return pushLTLfNot(m, n.Arg())
	case *ast.LTLfUnary:
		child := NNFLTLf(m, n.Arg())
		return rebuildUnary(m, n.Kind(), child)
	case *ast.LTLfBinary:
		return rebuildBinary(m, n.Kind(), NNFLTLf(m, n.Left()), NNFLTLf(m, n.Right()))
	default:
		return f // True, False, Atom
	}
}

func rebuildUnary(m *ast.Manager, kind ast.Kind, arg ast.LTLfFormula) ast.LTLfFormula {
	switch kind {
	case ast.KindLTLfNext:
		return m.Next(arg)
	case ast.KindLTLfWeakNext:
		return m.WeakNext(arg)
	case ast.KindLTLfEventually:
		return m.Eventually(arg)
	case ast.KindLTLfAlways:
		return m.Always(arg)
	default:
		panic("normalize: unreachable LTLf unary kind")
	}
}

func rebuildBinary(m *ast.Manager, kind ast.Kind, left, right ast.LTLfFormula) ast.LTLfFormula {
	switch kind {
	case ast.KindLTLfUntil:
		return m.Until(left, right)
	case ast.KindLTLfRelease:
		return m.Release(left, right)
	default:
		panic("normalize: unreachable LTLf binary kind")
	}
}

// pushLTLfNot computes NNF(Not(arg)) for LTLf.
func pushLTLfNot(m *ast.Manager, arg ast.LTLfFormula) ast.LTLfFormula {
	switch a := arg.(type) {
	case *ast.LTLfAnd:
		args := make([]ast.LTLfFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushLTLfNot(m, x)
		}
		return m.LTLfOr(args...)
	case *ast.LTLfOr:
		args := make([]ast.LTLfFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushLTLfNot(m, x)
		}
		return m.LTLfAnd(args...)
	case *ast.LTLfNot:
		return NNFLTLf(m, a.Arg())
	case *ast.LTLfUnary:
		child := pushLTLfNot(m, a.Arg())
		switch a.Kind() {
		case ast.KindLTLfNext:
			return m.WeakNext(child)
		case ast.KindLTLfWeakNext:
			return m.Next(child)
		case ast.KindLTLfEventually:
			return m.Always(child)
		case ast.KindLTLfAlways:
			return m.Eventually(child)
		default:
			panic("normalize: unreachable LTLf unary kind")
		}
	case *ast.LTLfBinary:
		left, right := pushLTLfNot(m, a.Left()), pushLTLfNot(m, a.Right())
		switch a.Kind() {
		case ast.KindLTLfUntil:
			return m.Release(left, right)
		case ast.KindLTLfRelease:
			return m.Until(left, right)
		default:
			panic("normalize: unreachable LTLf binary kind")
		}
	default:
		return m.LTLfNotF(arg) // Atom stays a literal; True/False forced dual by manager
	}
}

// toLDLf rewrites an LTLf formula that is already in LTLf-NNF (every Not
// directly above an Atom) into LDLf, per the embedding of spec.md 4.3.
func toLDLf(m *ast.Manager, f ast.LTLfFormula) ast.LDLfFormula {
	switch n := f.(type) {
	case *ast.LTLfAtom:
		return m.Diamond(m.PropRegExp(m.Atom(ast.Symbol{Name: n.Name().Name})), m.LTrue())
	case *ast.LTLfNot:
		atom, ok := n.Arg().(*ast.LTLfAtom)
		if !ok {
			panic("normalize: toLDLf expects Not only over Atom in NNF")
		}
		neg := m.PropRegExp(m.Not(m.Atom(ast.Symbol{Name: atom.Name().Name})))
		return m.LOr(m.Diamond(neg, m.LTrue()), End(m))
	case *ast.LTLfAnd:
		args := make([]ast.LDLfFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = toLDLf(m, a)
		}
		return m.LAnd(args...)
	case *ast.LTLfOr:
		args := make([]ast.LDLfFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = toLDLf(m, a)
		}
		return m.LOr(args...)
	case *ast.LTLfUnary:
		child := toLDLf(m, n.Arg())
		switch n.Kind() {
		case ast.KindLTLfNext:
			return m.Diamond(trueRegExp(m), m.LAnd(child, notLDLf(m, End(m))))
		case ast.KindLTLfWeakNext:
			return m.Box(trueRegExp(m), child)
		case ast.KindLTLfEventually:
			return m.Diamond(m.Star(trueRegExp(m)), child)
		case ast.KindLTLfAlways:
			return m.Box(m.Star(trueRegExp(m)), child)
		default:
			panic("normalize: unreachable LTLf unary kind")
		}
	case *ast.LTLfBinary:
		left, right := toLDLf(m, n.Left()), toLDLf(m, n.Right())
		switch n.Kind() {
		case ast.KindLTLfUntil:
			r := m.Star(m.Sequence(m.TestRegExp(left), trueRegExp(m)))
			return m.Diamond(r, right)
		case ast.KindLTLfRelease:
			r := m.Star(m.Sequence(m.TestRegExp(notLDLf(m, left)), trueRegExp(m)))
			return m.Box(r, right)
		default:
			panic("normalize: unreachable LTLf binary kind")
		}
	default:
		if f.Kind() == ast.KindLTLfTrue {
			return m.LTrue()
		}
		return m.LFalse()
	}
}
