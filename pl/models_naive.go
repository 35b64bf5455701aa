package pl

import "github.com/whitemech/lydia-go/ast"

// AllModelsNaive enumerates every satisfying assignment of f by brute-force
// powerset of its atom set, per spec.md 4.5. It asserts |atoms| < 64 by
// returning ErrTooManyAtoms instead of enumerating 2^n assignments.
func AllModelsNaive(f ast.PLFormula) ([]map[ast.AtomName]bool, error) {
	atoms := Atoms(f)
	if len(atoms) >= 64 {
		return nil, ErrTooManyAtoms
	}
	n := len(atoms)
	var models []map[ast.AtomName]bool
	for mask := uint64(0); mask < uint64(1)<<uint(n); mask++ {
		assignment := make(map[ast.AtomName]bool, n)
		for i, a := range atoms {
			assignment[a] = mask&(1<<uint(i)) != 0
		}
		if Eval(f, assignment) {
			models = append(models, assignment)
		}
	}
	return models, nil
}
