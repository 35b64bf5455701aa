package pl

import "github.com/whitemech/lydia-go/ast"

// literal is one occurrence of an atom in a CNF clause.
type literal struct {
	atom ast.AtomName
	neg  bool
}

// clause is a disjunction of literals.
type clause []literal

// AllModelsSAT enumerates every satisfying assignment of f by repeatedly
// solving its CNF form with a small DPLL-style search, extracting the
// model, banning it with a blocking clause, and resolving until UNSAT, per
// spec.md 4.5. It is the CapacityExceeded-safe alternative to
// AllModelsNaive for formulas with 64 or more atoms.
func AllModelsSAT(m *ast.Manager, f ast.PLFormula) []map[ast.AtomName]bool {
	if f.Kind() == ast.KindPLFalse {
		return nil
	}
	atoms := Atoms(f)
	if f.Kind() == ast.KindPLTrue {
		return []map[ast.AtomName]bool{{}}
	}

	cnf := ToCNF(m, f)
	clauses := clausesOf(cnf)

	var models []map[ast.AtomName]bool
	for {
		assignment, ok := dpll(clauses, atoms, 0, make(map[ast.AtomName]bool, len(atoms)))
		if !ok {
			break
		}
		found := make(map[ast.AtomName]bool, len(assignment))
		for k, v := range assignment {
			found[k] = v
		}
		models = append(models, found)
		clauses = append(clauses, blockingClause(found))
	}
	return models
}

// blockingClause negates every literal of a found model so it can never be
// satisfied again, forcing the next dpll call to find a different model.
func blockingClause(model map[ast.AtomName]bool) clause {
	c := make(clause, 0, len(model))
	for a, v := range model {
		c = append(c, literal{atom: a, neg: v})
	}
	return c
}

// dpll performs a depth-first backtracking search over atoms[idx:], pruning
// as soon as any clause is fully assigned and falsified.
func dpll(clauses []clause, atoms []ast.AtomName, idx int, assign map[ast.AtomName]bool) (map[ast.AtomName]bool, bool) {
	if idx == len(atoms) {
		if satisfies(clauses, assign) {
			out := make(map[ast.AtomName]bool, len(assign))
			for k, v := range assign {
				out[k] = v
			}
			return out, true
		}
		return nil, false
	}
	a := atoms[idx]
	for _, v := range [...]bool{true, false} {
		assign[a] = v
		if !anyClauseFalsified(clauses, assign) {
			if res, ok := dpll(clauses, atoms, idx+1, assign); ok {
				return res, true
			}
		}
	}
	delete(assign, a)
	return nil, false
}

func anyClauseFalsified(clauses []clause, assign map[ast.AtomName]bool) bool {
	for _, c := range clauses {
		allAssigned := true
		anyTrue := false
		for _, lit := range c {
			v, ok := assign[lit.atom]
			if !ok {
				allAssigned = false
				continue
			}
			if v != lit.neg {
				anyTrue = true
			}
		}
		if allAssigned && !anyTrue {
			return true
		}
	}
	return false
}

func satisfies(clauses []clause, assign map[ast.AtomName]bool) bool {
	for _, c := range clauses {
		ok := false
		for _, lit := range c {
			if assign[lit.atom] != lit.neg {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func clausesOf(f ast.PLFormula) []clause {
	if and, ok := f.(*ast.PLAnd); ok {
		out := make([]clause, len(and.Args()))
		for i, a := range and.Args() {
			out[i] = clauseOf(a)
		}
		return out
	}
	return []clause{clauseOf(f)}
}

func clauseOf(f ast.PLFormula) clause {
	if or, ok := f.(*ast.PLOr); ok {
		out := make(clause, len(or.Args()))
		for i, a := range or.Args() {
			out[i] = literalOf(a)
		}
		return out
	}
	return clause{literalOf(f)}
}

func literalOf(f ast.PLFormula) literal {
	switch n := f.(type) {
	case *ast.PLAtom:
		return literal{atom: n.Name()}
	case *ast.PLNot:
		atom, ok := n.Arg().(*ast.PLAtom)
		if !ok {
			panic("pl: malformed CNF clause: Not over a non-atom")
		}
		return literal{atom: atom.Name(), neg: true}
	default:
		panic("pl: malformed CNF clause: expected a literal")
	}
}
