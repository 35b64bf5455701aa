package delta

import (
	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/normalize"
)

// Naive computes delta(f, in) by building an explicit ast.PLFormula tree
// over quoted-LDLf atoms, following spec.md 4.4's structural rules. f must
// already be in NNF (normalize.NNFLDLf); Naive panics on a bare LDLfNot,
// which NNF never produces.
func Naive(m *ast.Manager, f ast.LDLfFormula, in Input) ast.PLFormula {
	switch n := f.(type) {
	case *ast.LDLfAnd:
		args := make([]ast.PLFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = Naive(m, a, in)
		}
		return m.And(args...)
	case *ast.LDLfOr:
		args := make([]ast.PLFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = Naive(m, a, in)
		}
		return m.Or(args...)
	case *ast.LDLfF:
		if in.IsEndOfTrace() {
			return m.False()
		}
		return Naive(m, n.Arg(), in)
	case *ast.LDLfT:
		if in.IsEndOfTrace() {
			return m.True()
		}
		return Naive(m, n.Arg(), in)
	case *ast.LDLfQ:
		return Naive(m, n.Arg(), in)
	case *ast.LDLfDiamond:
		return naiveDiamond(m, n.Regex(), n.Body(), in)
	case *ast.LDLfBox:
		return naiveBox(m, n.Regex(), n.Body(), in)
	case *ast.LDLfNot:
		panic("delta: Naive requires NNF input, got a bare LDLfNot")
	default:
		switch f.Kind() {
		case ast.KindLDLfTrue:
			return m.True()
		case ast.KindLDLfFalse:
			return m.False()
		}
		panic("delta: Naive: unhandled LDLf node")
	}
}

// naiveDiamond implements delta(<r>body, in) by structural recursion on r.
func naiveDiamond(m *ast.Manager, r ast.RegExp, body ast.LDLfFormula, in Input) ast.PLFormula {
	switch reg := r.(type) {
	case *ast.RegPropositional:
		if in.IsEndOfTrace() {
			return m.False()
		}
		if in.satisfies(reg.PL()) {
			return m.Atom(ast.QuotedLDLf{F: body})
		}
		return m.False()
	case *ast.RegTest:
		return m.And(Naive(m, reg.LDLf(), in), Naive(m, body, in))
	case *ast.RegUnion:
		args := make([]ast.PLFormula, len(reg.Args()))
		for i, ri := range reg.Args() {
			args[i] = naiveDiamond(m, ri, body, in)
		}
		return m.Or(args...)
	case *ast.RegSequence:
		return Naive(m, chainDiamond(m, reg.Args(), body), in)
	case *ast.RegStar:
		left := Naive(m, body, in)
		again := m.Diamond(reg.Arg(), m.Diamond(m.Star(reg.Arg()), m.FMark(body)))
		right := Naive(m, again, in)
		return m.Or(left, right)
	default:
		panic("delta: naiveDiamond: unhandled RegExp node")
	}
}

// naiveBox implements delta([r]body, in), the universal dual of naiveDiamond.
func naiveBox(m *ast.Manager, r ast.RegExp, body ast.LDLfFormula, in Input) ast.PLFormula {
	switch reg := r.(type) {
	case *ast.RegPropositional:
		if in.IsEndOfTrace() {
			return m.True()
		}
		if in.satisfies(reg.PL()) {
			return m.Atom(ast.QuotedLDLf{F: body})
		}
		return m.True()
	case *ast.RegTest:
		notTest := normalize.NNFLDLf(m, m.LNot(reg.LDLf()))
		return m.Or(Naive(m, notTest, in), Naive(m, body, in))
	case *ast.RegUnion:
		args := make([]ast.PLFormula, len(reg.Args()))
		for i, ri := range reg.Args() {
			args[i] = naiveBox(m, ri, body, in)
		}
		return m.And(args...)
	case *ast.RegSequence:
		return Naive(m, chainBox(m, reg.Args(), body), in)
	case *ast.RegStar:
		left := Naive(m, body, in)
		again := m.Box(reg.Arg(), m.Box(m.Star(reg.Arg()), m.TMark(body)))
		right := Naive(m, again, in)
		return m.And(left, right)
	default:
		panic("delta: naiveBox: unhandled RegExp node")
	}
}

// chainDiamond folds r1;r2;...;rn into <r1><r2>...<rn>body, so naiveDiamond
// can peel the sequence one program at a time via the outer Diamond's
// ordinary structural recursion.
func chainDiamond(m *ast.Manager, args []ast.RegExp, body ast.LDLfFormula) ast.LDLfFormula {
	if len(args) == 1 {
		return m.Diamond(args[0], body)
	}
	return m.Diamond(args[0], chainDiamond(m, args[1:], body))
}

// chainBox is chainDiamond's box dual.
func chainBox(m *ast.Manager, args []ast.RegExp, body ast.LDLfFormula) ast.LDLfFormula {
	if len(args) == 1 {
		return m.Box(args[0], body)
	}
	return m.Box(args[0], chainBox(m, args[1:], body))
}
