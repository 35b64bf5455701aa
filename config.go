package lydia

import "github.com/whitemech/lydia-go/symbolicdfa"

// Strategy selects which automaton.Explore variant a Session runs.
type Strategy int

const (
	// StrategyNaive enumerates concrete letters and models (automaton.Explore
	// with automaton.NaiveModels), exhaustive via pl.AllModelsNaive's
	// truth-table walk.
	StrategyNaive Strategy = iota
	// StrategySAT enumerates models via pl.AllModelsSAT instead of the plain
	// truth-table walk, same letter enumeration otherwise.
	StrategySAT
	// StrategySymbolic explores via automaton.ExploreSymbolic, compressing
	// concrete letters into BDD cubes.
	StrategySymbolic
)

// Config tunes a Session end to end: which exploration strategy to run,
// whether to minimize the resulting automaton before compiling it into a
// symbolicdfa.DFA, and the symbolic DFA's own bdd.Manager sizing.
type Config struct {
	Strategy Strategy
	Minimize bool
	DFA      symbolicdfa.Config
}

// DefaultConfig runs the naive strategy with minimization enabled, matching
// the default translation pipeline original_source documents.
func DefaultConfig() Config {
	return Config{
		Strategy: StrategyNaive,
		Minimize: true,
		DFA:      symbolicdfa.DefaultConfig(),
	}
}
