package visitor

import "github.com/whitemech/lydia-go/ast"

// PLVisitor handles one case per PL node variant. R is the result type of
// a walk, e.g. bool for evaluation, ast.PLFormula for a rewrite.
type PLVisitor[R any] interface {
	VisitPLTrue() R
	VisitPLFalse() R
	VisitPLAtom(*ast.PLAtom) R
	VisitPLAnd(*ast.PLAnd) R
	VisitPLOr(*ast.PLOr) R
	VisitPLNot(*ast.PLNot) R
}

// WalkPL dispatches f to the matching PLVisitor case.
func WalkPL[R any](f ast.PLFormula, v PLVisitor[R]) R {
	switch n := f.(type) {
	case *ast.PLAtom:
		return v.VisitPLAtom(n)
	case *ast.PLAnd:
		return v.VisitPLAnd(n)
	case *ast.PLOr:
		return v.VisitPLOr(n)
	case *ast.PLNot:
		return v.VisitPLNot(n)
	default:
		if f.Kind() == ast.KindPLTrue {
			return v.VisitPLTrue()
		}
		return v.VisitPLFalse()
	}
}

// LDLfVisitor handles one case per LDLf node variant.
type LDLfVisitor[R any] interface {
	VisitLDLfTrue() R
	VisitLDLfFalse() R
	VisitLDLfAnd(*ast.LDLfAnd) R
	VisitLDLfOr(*ast.LDLfOr) R
	VisitLDLfNot(*ast.LDLfNot) R
	VisitLDLfDiamond(*ast.LDLfDiamond) R
	VisitLDLfBox(*ast.LDLfBox) R
	VisitLDLfF(*ast.LDLfF) R
	VisitLDLfT(*ast.LDLfT) R
	VisitLDLfQ(*ast.LDLfQ) R
}

// WalkLDLf dispatches f to the matching LDLfVisitor case.
func WalkLDLf[R any](f ast.LDLfFormula, v LDLfVisitor[R]) R {
	switch n := f.(type) {
	case *ast.LDLfAnd:
		return v.VisitLDLfAnd(n)
	case *ast.LDLfOr:
		return v.VisitLDLfOr(n)
	case *ast.LDLfNot:
		return v.VisitLDLfNot(n)
	case *ast.LDLfDiamond:
		return v.VisitLDLfDiamond(n)
	case *ast.LDLfBox:
		return v.VisitLDLfBox(n)
	case *ast.LDLfF:
		return v.VisitLDLfF(n)
	case *ast.LDLfT:
		return v.VisitLDLfT(n)
	case *ast.LDLfQ:
		return v.VisitLDLfQ(n)
	default:
		if f.Kind() == ast.KindLDLfTrue {
			return v.VisitLDLfTrue()
		}
		return v.VisitLDLfFalse()
	}
}

// RegExpVisitor handles one case per regular-expression program variant.
type RegExpVisitor[R any] interface {
	VisitRegPropositional(*ast.RegPropositional) R
	VisitRegTest(*ast.RegTest) R
	VisitRegUnion(*ast.RegUnion) R
	VisitRegSequence(*ast.RegSequence) R
	VisitRegStar(*ast.RegStar) R
}

// WalkRegExp dispatches r to the matching RegExpVisitor case.
func WalkRegExp[R any](r ast.RegExp, v RegExpVisitor[R]) R {
	switch n := r.(type) {
	case *ast.RegPropositional:
		return v.VisitRegPropositional(n)
	case *ast.RegTest:
		return v.VisitRegTest(n)
	case *ast.RegUnion:
		return v.VisitRegUnion(n)
	case *ast.RegSequence:
		return v.VisitRegSequence(n)
	case *ast.RegStar:
		return v.VisitRegStar(n)
	default:
		panic("visitor: unreachable RegExp variant")
	}
}

// LTLfVisitor handles one case per LTLf node variant.
type LTLfVisitor[R any] interface {
	VisitLTLfTrue() R
	VisitLTLfFalse() R
	VisitLTLfAtom(*ast.LTLfAtom) R
	VisitLTLfAnd(*ast.LTLfAnd) R
	VisitLTLfOr(*ast.LTLfOr) R
	VisitLTLfNot(*ast.LTLfNot) R
	VisitLTLfUnary(*ast.LTLfUnary) R
	VisitLTLfBinary(*ast.LTLfBinary) R
}

// WalkLTLf dispatches f to the matching LTLfVisitor case.
func WalkLTLf[R any](f ast.LTLfFormula, v LTLfVisitor[R]) R {
	switch n := f.(type) {
	case *ast.LTLfAtom:
		return v.VisitLTLfAtom(n)
	case *ast.LTLfAnd:
		return v.VisitLTLfAnd(n)
	case *ast.LTLfOr:
		return v.VisitLTLfOr(n)
	case *ast.LTLfNot:
		return v.VisitLTLfNot(n)
	case *ast.LTLfUnary:
		return v.VisitLTLfUnary(n)
	case *ast.LTLfBinary:
		return v.VisitLTLfBinary(n)
	default:
		if f.Kind() == ast.KindLTLfTrue {
			return v.VisitLTLfTrue()
		}
		return v.VisitLTLfFalse()
	}
}
