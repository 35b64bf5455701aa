package automaton

import "github.com/whitemech/lydia-go/ast"

// ExploreSAT runs Explore with the DPLL-based SAT model enumerator instead
// of brute-force powerset, for formulas whose per-letter delta result names
// more quoted atoms than AllModelsNaive's enumeration bound tolerates. This
// is the feature original_source's sat.hpp adds over the distilled
// specification's naive-only exploration.
func ExploreSAT(m *ast.Manager, phi ast.LDLfFormula, opts *ExploreOptions) (*ExploreResult, error) {
	return Explore(m, phi, SATModels(m), opts)
}
