package delta

import (
	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/bdd"
	"github.com/whitemech/lydia-go/normalize"
)

// engine computes delta as a bdd.Node directly, sharing one bdd.Manager and
// VarSpace across the whole recursion. cache is nil for the plain Symbolic
// strategy and non-nil for Compositional, which is the only difference
// between the two: the recursion itself is identical.
type engine struct {
	astManager *ast.Manager
	bm         *bdd.Manager
	vs         *VarSpace
	cache      map[cacheKey]*bdd.Node
}

type cacheKey struct {
	f       ast.LDLfFormula
	epsilon bool
}

func (e *engine) delta(f ast.LDLfFormula, epsilon bool) *bdd.Node {
	if e.cache != nil {
		key := cacheKey{f, epsilon}
		if v, ok := e.cache[key]; ok {
			return v
		}
		res := e.deltaUncached(f, epsilon)
		e.cache[key] = res
		return res
	}
	return e.deltaUncached(f, epsilon)
}

func (e *engine) deltaUncached(f ast.LDLfFormula, epsilon bool) *bdd.Node {
	switch n := f.(type) {
	case *ast.LDLfAnd:
		res := e.bm.One()
		for _, a := range n.Args() {
			res = e.bm.And(res, e.delta(a, epsilon))
		}
		return res
	case *ast.LDLfOr:
		res := e.bm.Zero()
		for _, a := range n.Args() {
			res = e.bm.Or(res, e.delta(a, epsilon))
		}
		return res
	case *ast.LDLfF:
		if epsilon {
			return e.bm.Zero()
		}
		return e.delta(n.Arg(), epsilon)
	case *ast.LDLfT:
		if epsilon {
			return e.bm.One()
		}
		return e.delta(n.Arg(), epsilon)
	case *ast.LDLfQ:
		return e.delta(n.Arg(), epsilon)
	case *ast.LDLfDiamond:
		return e.diamond(n.Regex(), n.Body(), epsilon)
	case *ast.LDLfBox:
		return e.box(n.Regex(), n.Body(), epsilon)
	case *ast.LDLfNot:
		panic("delta: Symbolic requires NNF input, got a bare LDLfNot")
	default:
		switch f.Kind() {
		case ast.KindLDLfTrue:
			return e.bm.One()
		case ast.KindLDLfFalse:
			return e.bm.Zero()
		}
		panic("delta: Symbolic: unhandled LDLf node")
	}
}

func (e *engine) diamond(r ast.RegExp, body ast.LDLfFormula, epsilon bool) *bdd.Node {
	switch reg := r.(type) {
	case *ast.RegPropositional:
		if epsilon {
			return e.bm.Zero()
		}
		guard := e.plToBDD(reg.PL())
		return e.bm.And(guard, e.bm.Var(e.vs.SubVar(body)))
	case *ast.RegTest:
		return e.bm.And(e.delta(reg.LDLf(), epsilon), e.delta(body, epsilon))
	case *ast.RegUnion:
		res := e.bm.Zero()
		for _, ri := range reg.Args() {
			res = e.bm.Or(res, e.diamond(ri, body, epsilon))
		}
		return res
	case *ast.RegSequence:
		return e.delta(chainDiamond(e.m(), reg.Args(), body), epsilon)
	case *ast.RegStar:
		m := e.m()
		left := e.delta(body, epsilon)
		again := m.Diamond(reg.Arg(), m.Diamond(m.Star(reg.Arg()), m.FMark(body)))
		right := e.delta(again, epsilon)
		return e.bm.Or(left, right)
	default:
		panic("delta: Symbolic diamond: unhandled RegExp node")
	}
}

func (e *engine) box(r ast.RegExp, body ast.LDLfFormula, epsilon bool) *bdd.Node {
	switch reg := r.(type) {
	case *ast.RegPropositional:
		if epsilon {
			return e.bm.One()
		}
		guard := e.plToBDD(reg.PL())
		return e.bm.Or(e.bm.Not(guard), e.bm.Var(e.vs.SubVar(body)))
	case *ast.RegTest:
		m := e.m()
		notTest := normalize.NNFLDLf(m, m.LNot(reg.LDLf()))
		return e.bm.Or(e.delta(notTest, epsilon), e.delta(body, epsilon))
	case *ast.RegUnion:
		res := e.bm.One()
		for _, ri := range reg.Args() {
			res = e.bm.And(res, e.box(ri, body, epsilon))
		}
		return res
	case *ast.RegSequence:
		return e.delta(chainBox(e.m(), reg.Args(), body), epsilon)
	case *ast.RegStar:
		m := e.m()
		left := e.delta(body, epsilon)
		again := m.Box(reg.Arg(), m.Box(m.Star(reg.Arg()), m.TMark(body)))
		right := e.delta(again, epsilon)
		return e.bm.And(left, right)
	default:
		panic("delta: Symbolic box: unhandled RegExp node")
	}
}

// plToBDD lowers a propositional guard (an ast.PLFormula over plain Symbol
// atoms, never a quoted one) into the shared BDD variable space.
func (e *engine) plToBDD(f ast.PLFormula) *bdd.Node {
	switch n := f.(type) {
	case *ast.PLAtom:
		sym, ok := n.Name().(ast.Symbol)
		if !ok {
			panic("delta: plToBDD: regex guard contains a quoted atom, which never belongs in a program guard")
		}
		return e.bm.Var(e.vs.AtomVar(sym))
	case *ast.PLAnd:
		res := e.bm.One()
		for _, a := range n.Args() {
			res = e.bm.And(res, e.plToBDD(a))
		}
		return res
	case *ast.PLOr:
		res := e.bm.Zero()
		for _, a := range n.Args() {
			res = e.bm.Or(res, e.plToBDD(a))
		}
		return res
	case *ast.PLNot:
		return e.bm.Not(e.plToBDD(n.Arg()))
	default:
		switch f.Kind() {
		case ast.KindPLTrue:
			return e.bm.One()
		case ast.KindPLFalse:
			return e.bm.Zero()
		}
		panic("delta: plToBDD: unhandled PL node")
	}
}

// m returns the ast.Manager the caller used to build the formula engine is
// walking: the Sequence/Star cases need it to reconstruct unfolded LDLf
// formulas (chainDiamond, FMark, ...) before recursing back into delta.
func (e *engine) m() *ast.Manager { return e.astManager }
