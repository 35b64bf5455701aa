package automaton

import "github.com/whitemech/lydia-go/ast"

// Atoms returns the distinct Symbols occurring in every propositional guard
// reachable from f, in first-occurrence order: the alphabet Explore must
// enumerate letters over.
func Atoms(f ast.LDLfFormula) []ast.Symbol {
	seen := make(map[ast.Symbol]struct{})
	var out []ast.Symbol
	add := func(s ast.Symbol) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	var walkPL func(ast.PLFormula)
	walkPL = func(f ast.PLFormula) {
		switch n := f.(type) {
		case *ast.PLAtom:
			if s, ok := n.Name().(ast.Symbol); ok {
				add(s)
			}
		case *ast.PLAnd:
			for _, a := range n.Args() {
				walkPL(a)
			}
		case *ast.PLOr:
			for _, a := range n.Args() {
				walkPL(a)
			}
		case *ast.PLNot:
			walkPL(n.Arg())
		}
	}
	var walkRegExp func(ast.RegExp)
	var walkLDLf func(ast.LDLfFormula)
	walkRegExp = func(r ast.RegExp) {
		switch n := r.(type) {
		case *ast.RegPropositional:
			walkPL(n.PL())
		case *ast.RegTest:
			walkLDLf(n.LDLf())
		case *ast.RegUnion:
			for _, a := range n.Args() {
				walkRegExp(a)
			}
		case *ast.RegSequence:
			for _, a := range n.Args() {
				walkRegExp(a)
			}
		case *ast.RegStar:
			walkRegExp(n.Arg())
		}
	}
	walkLDLf = func(f ast.LDLfFormula) {
		switch n := f.(type) {
		case *ast.LDLfAnd:
			for _, a := range n.Args() {
				walkLDLf(a)
			}
		case *ast.LDLfOr:
			for _, a := range n.Args() {
				walkLDLf(a)
			}
		case *ast.LDLfNot:
			walkLDLf(n.Arg())
		case *ast.LDLfDiamond:
			walkRegExp(n.Regex())
			walkLDLf(n.Body())
		case *ast.LDLfBox:
			walkRegExp(n.Regex())
			walkLDLf(n.Body())
		case *ast.LDLfF:
			walkLDLf(n.Arg())
		case *ast.LDLfT:
			walkLDLf(n.Arg())
		case *ast.LDLfQ:
			walkLDLf(n.Arg())
		}
	}
	walkLDLf(f)
	return out
}
