package automaton

import (
	"errors"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/pl"
)

// ErrCapacityExceeded is returned when the formula's alphabet is too large
// for Explore's brute-force letter powerset, mirroring pl.ErrTooManyAtoms at
// the automaton layer.
var ErrCapacityExceeded = errors.New("automaton: alphabet too large for naive letter enumeration (64)")

// ModelEnumerator enumerates the satisfying assignments of a delta result
// over quoted atoms, each assignment naming one candidate successor
// NFAState. NaiveModels and SATModels are the two strategies pl offers.
type ModelEnumerator func(ast.PLFormula) ([]map[ast.AtomName]bool, error)

// NaiveModels wraps pl.AllModelsNaive as a ModelEnumerator.
func NaiveModels(f ast.PLFormula) ([]map[ast.AtomName]bool, error) {
	return pl.AllModelsNaive(f)
}

// SATModels wraps pl.AllModelsSAT (which needs the ast.Manager to run
// ToCNF) as a ModelEnumerator bound to m.
func SATModels(m *ast.Manager) ModelEnumerator {
	return func(f ast.PLFormula) ([]map[ast.AtomName]bool, error) {
		return pl.AllModelsSAT(m, f), nil
	}
}

// enumerateLetters returns every subset of atoms as a complete boolean
// assignment, asserting the same 64-variable brute-force bound
// pl.AllModelsNaive draws for its own enumeration.
func enumerateLetters(atoms []ast.Symbol) ([]map[ast.Symbol]bool, error) {
	n := len(atoms)
	if n >= 64 {
		return nil, ErrCapacityExceeded
	}
	letters := make([]map[ast.Symbol]bool, 0, 1<<uint(n))
	for mask := uint64(0); mask < uint64(1)<<uint(n); mask++ {
		letter := make(map[ast.Symbol]bool, n)
		for i, a := range atoms {
			letter[a] = mask&(1<<uint(i)) != 0
		}
		letters = append(letters, letter)
	}
	return letters, nil
}
