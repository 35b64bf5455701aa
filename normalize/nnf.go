package normalize

import (
	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/visitor"
)

// NNFPL returns f rewritten so Not appears only immediately above atoms.
func NNFPL(m *ast.Manager, f ast.PLFormula) ast.PLFormula {
	return visitor.WalkPL(f, plNNF{m: m})
}

type plNNF struct{ m *ast.Manager }

func (v plNNF) VisitPLTrue() ast.PLFormula  { return v.m.True() }
func (v plNNF) VisitPLFalse() ast.PLFormula { return v.m.False() }
func (v plNNF) VisitPLAtom(n *ast.PLAtom) ast.PLFormula { return n }

func (v plNNF) VisitPLAnd(n *ast.PLAnd) ast.PLFormula {
	args := make([]ast.PLFormula, len(n.Args()))
	for i, a := range n.Args() {
		args[i] = NNFPL(v.m, a)
	}
	return v.m.And(args...)
}

func (v plNNF) VisitPLOr(n *ast.PLOr) ast.PLFormula {
	args := make([]ast.PLFormula, len(n.Args()))
	for i, a := range n.Args() {
		args[i] = NNFPL(v.m, a)
	}
	return v.m.Or(args...)
}

func (v plNNF) VisitPLNot(n *ast.PLNot) ast.PLFormula {
	return pushPLNot(v.m, n.Arg())
}

// pushPLNot computes NNF(Not(arg)) by dualizing one level and recursing.
func pushPLNot(m *ast.Manager, arg ast.PLFormula) ast.PLFormula {
	switch a := arg.(type) {
	case *ast.PLAnd:
		args := make([]ast.PLFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushPLNot(m, x)
		}
		return m.Or(args...)
	case *ast.PLOr:
		args := make([]ast.PLFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushPLNot(m, x)
		}
		return m.And(args...)
	case *ast.PLNot:
		return NNFPL(m, a.Arg())
	case *ast.PLAtom:
		return m.Not(a)
	default:
		return m.Not(arg) // True/False: manager forces the dual
	}
}

// NNFLDLf returns f rewritten so Not appears only immediately below a
// Diamond/Box whose body is itself in NNF (LDLf has no bare atoms: <a>tt
// plays that role, so "immediately above an atom" specializes to "pushed
// fully into Diamond/Box duals", per spec.md 4.2's LDLf duality rules).
// Test sub-formulas and propositional guards inside regex programs are
// recursively normalized but never dualized themselves.
func NNFLDLf(m *ast.Manager, f ast.LDLfFormula) ast.LDLfFormula {
	return visitor.WalkLDLf(f, ldlfNNF{m: m})
}

type ldlfNNF struct{ m *ast.Manager }

func (v ldlfNNF) VisitLDLfTrue() ast.LDLfFormula  { return v.m.LTrue() }
func (v ldlfNNF) VisitLDLfFalse() ast.LDLfFormula { return v.m.LFalse() }

func (v ldlfNNF) VisitLDLfAnd(n *ast.LDLfAnd) ast.LDLfFormula {
	args := make([]ast.LDLfFormula, len(n.Args()))
	for i, a := range n.Args() {
		args[i] = NNFLDLf(v.m, a)
	}
	return v.m.LAnd(args...)
}

func (v ldlfNNF) VisitLDLfOr(n *ast.LDLfOr) ast.LDLfFormula {
	args := make([]ast.LDLfFormula, len(n.Args()))
	for i, a := range n.Args() {
		args[i] = NNFLDLf(v.m, a)
	}
	return v.m.LOr(args...)
}

func (v ldlfNNF) VisitLDLfNot(n *ast.LDLfNot) ast.LDLfFormula {
	return pushLDLfNot(v.m, n.Arg())
}

func (v ldlfNNF) VisitLDLfDiamond(n *ast.LDLfDiamond) ast.LDLfFormula {
	return v.m.Diamond(nnfRegExp(v.m, n.Regex()), NNFLDLf(v.m, n.Body()))
}

func (v ldlfNNF) VisitLDLfBox(n *ast.LDLfBox) ast.LDLfFormula {
	return v.m.Box(nnfRegExp(v.m, n.Regex()), NNFLDLf(v.m, n.Body()))
}

func (v ldlfNNF) VisitLDLfF(n *ast.LDLfF) ast.LDLfFormula {
	return v.m.FMark(NNFLDLf(v.m, n.Arg()))
}

func (v ldlfNNF) VisitLDLfT(n *ast.LDLfT) ast.LDLfFormula {
	return v.m.TMark(NNFLDLf(v.m, n.Arg()))
}

func (v ldlfNNF) VisitLDLfQ(n *ast.LDLfQ) ast.LDLfFormula {
	return v.m.QMark(NNFLDLf(v.m, n.Arg()))
}

// pushLDLfNot computes NNF(Not(arg)) for LDLf via the boolean and modal
// dualities of spec.md 4.2: ¬(a∧b)=¬a∨¬b, ¬⟨r⟩φ=[r]¬φ, ¬[r]φ=⟨r⟩¬φ.
func pushLDLfNot(m *ast.Manager, arg ast.LDLfFormula) ast.LDLfFormula {
	switch a := arg.(type) {
	case *ast.LDLfAnd:
		args := make([]ast.LDLfFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushLDLfNot(m, x)
		}
		return m.LOr(args...)
	case *ast.LDLfOr:
		args := make([]ast.LDLfFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushLDLfNot(m, x)
		}
		return m.LAnd(args...)
	case *ast.LDLfNot:
		return NNFLDLf(m, a.Arg())
	case *ast.LDLfDiamond:
		return m.Box(nnfRegExp(m, a.Regex()), pushLDLfNot(m, a.Body()))
	case *ast.LDLfBox:
		return m.Diamond(nnfRegExp(m, a.Regex()), pushLDLfNot(m, a.Body()))
	case *ast.LDLfF:
		return m.FMark(pushLDLfNot(m, a.Arg()))
	case *ast.LDLfT:
		return m.TMark(pushLDLfNot(m, a.Arg()))
	case *ast.LDLfQ:
		return m.QMark(pushLDLfNot(m, a.Arg()))
	default:
		return m.LNot(arg) // True/False: manager forces the dual
	}
}

// nnfRegExp recurses NNF into test sub-formulas and propositional guards of
// a regular-expression program without dualizing the program shape itself.
func nnfRegExp(m *ast.Manager, r ast.RegExp) ast.RegExp {
	return visitor.WalkRegExp(r, regNNF{m: m})
}

type regNNF struct{ m *ast.Manager }

func (v regNNF) VisitRegPropositional(n *ast.RegPropositional) ast.RegExp {
	return v.m.PropRegExp(NNFPL(v.m, n.PL()))
}

func (v regNNF) VisitRegTest(n *ast.RegTest) ast.RegExp {
	return v.m.TestRegExp(NNFLDLf(v.m, n.LDLf()))
}

func (v regNNF) VisitRegUnion(n *ast.RegUnion) ast.RegExp {
	args := make([]ast.RegExp, len(n.Args()))
	for i, a := range n.Args() {
		args[i] = nnfRegExp(v.m, a)
	}
	return v.m.Union(args...)
}

func (v regNNF) VisitRegSequence(n *ast.RegSequence) ast.RegExp {
	args := make([]ast.RegExp, len(n.Args()))
	for i, a := range n.Args() {
		args[i] = nnfRegExp(v.m, a)
	}
	return v.m.Sequence(args...)
}

func (v regNNF) VisitRegStar(n *ast.RegStar) ast.RegExp {
	return v.m.Star(nnfRegExp(v.m, n.Arg()))
}
