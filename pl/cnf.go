package pl

import "github.com/whitemech/lydia-go/ast"

// ToCNF rewrites f into an equivalent conjunctive-normal-form formula: a
// conjunction of disjunctions of literals. The transformation preserves
// semantics but not size (distributing Or over And can blow formula size up
// exponentially); callers with large formulas should prefer the BDD
// strategy (delta.Symbolic) over driving AllModelsSAT off a CNF this
// produces, per spec.md 4.5.
func ToCNF(m *ast.Manager, f ast.PLFormula) ast.PLFormula {
	nnf := nnfPL(m, f)
	return cnfOf(m, nnf)
}

// nnfPL is a local, dependency-free negation-push (pl must not import
// normalize, which itself may grow to depend on pl-level CNF helpers).
func nnfPL(m *ast.Manager, f ast.PLFormula) ast.PLFormula {
	switch n := f.(type) {
	case *ast.PLAnd:
		args := make([]ast.PLFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = nnfPL(m, a)
		}
		return m.And(args...)
	case *ast.PLOr:
		args := make([]ast.PLFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = nnfPL(m, a)
		}
		return m.Or(args...)
	case *ast.PLNot:
		return pushNot(m, n.Arg())
	default:
		return f
	}
}

func pushNot(m *ast.Manager, arg ast.PLFormula) ast.PLFormula {
	switch a := arg.(type) {
	case *ast.PLAnd:
		args := make([]ast.PLFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushNot(m, x)
		}
		return m.Or(args...)
	case *ast.PLOr:
		args := make([]ast.PLFormula, len(a.Args()))
		for i, x := range a.Args() {
			args[i] = pushNot(m, x)
		}
		return m.And(args...)
	case *ast.PLNot:
		return nnfPL(m, a.Arg())
	default:
		return m.Not(arg)
	}
}

func cnfOf(m *ast.Manager, f ast.PLFormula) ast.PLFormula {
	switch n := f.(type) {
	case *ast.PLAnd:
		args := make([]ast.PLFormula, len(n.Args()))
		for i, a := range n.Args() {
			args[i] = cnfOf(m, a)
		}
		return m.And(args...)
	case *ast.PLOr:
		args := n.Args()
		acc := cnfOf(m, args[0])
		for _, a := range args[1:] {
			acc = distribute(m, acc, cnfOf(m, a))
		}
		return acc
	default:
		return f // True, False, Atom, Not(Atom): already a literal
	}
}

// distribute computes the CNF of (a | b) given a and b are already in CNF.
func distribute(m *ast.Manager, a, b ast.PLFormula) ast.PLFormula {
	if and, ok := a.(*ast.PLAnd); ok {
		parts := make([]ast.PLFormula, len(and.Args()))
		for i, x := range and.Args() {
			parts[i] = distribute(m, x, b)
		}
		return m.And(parts...)
	}
	if and, ok := b.(*ast.PLAnd); ok {
		parts := make([]ast.PLFormula, len(and.Args()))
		for i, x := range and.Args() {
			parts[i] = distribute(m, a, x)
		}
		return m.And(parts...)
	}
	return m.Or(a, b)
}
