package pl

import "github.com/whitemech/lydia-go/ast"

// Atoms returns the distinct AtomName values occurring in f, in a stable
// first-occurrence order. AtomName is comparable (Symbol is a plain string
// wrapper; QuotedLDLf holds a hash-consed pointer), so it can key a map
// directly without a custom equality-aware set.
func Atoms(f ast.PLFormula) []ast.AtomName {
	seen := make(map[ast.AtomName]struct{})
	var out []ast.AtomName
	var walk func(ast.PLFormula)
	walk = func(f ast.PLFormula) {
		switch n := f.(type) {
		case *ast.PLAtom:
			if _, ok := seen[n.Name()]; !ok {
				seen[n.Name()] = struct{}{}
				out = append(out, n.Name())
			}
		case *ast.PLAnd:
			for _, a := range n.Args() {
				walk(a)
			}
		case *ast.PLOr:
			for _, a := range n.Args() {
				walk(a)
			}
		case *ast.PLNot:
			walk(n.Arg())
		}
	}
	walk(f)
	return out
}

// Eval evaluates f under assignment; atoms absent from assignment are
// treated as false.
func Eval(f ast.PLFormula, assignment map[ast.AtomName]bool) bool {
	switch n := f.(type) {
	case *ast.PLAtom:
		return assignment[n.Name()]
	case *ast.PLAnd:
		for _, a := range n.Args() {
			if !Eval(a, assignment) {
				return false
			}
		}
		return true
	case *ast.PLOr:
		for _, a := range n.Args() {
			if Eval(a, assignment) {
				return true
			}
		}
		return false
	case *ast.PLNot:
		return !Eval(n.Arg(), assignment)
	default:
		return f.Kind() == ast.KindPLTrue
	}
}
