package lydia

import (
	"context"
	"errors"
	"fmt"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/automaton"
	"github.com/whitemech/lydia-go/normalize"
	"github.com/whitemech/lydia-go/symbolicdfa"
)

// TranslateLDLf compiles phi into a symbolic DFA accepting exactly the
// finite traces phi accepts.
func (s *Session) TranslateLDLf(phi ast.LDLfFormula) (*symbolicdfa.DFA, error) {
	s.logger.Debug("exploring LDLf formula", "strategy", s.Config.Strategy)

	res, atoms, err := s.explore(phi)
	if err != nil {
		return nil, err
	}

	if s.Config.Minimize {
		before := len(res.States)
		res = symbolicdfa.Minimize(res)
		s.logger.Debug("minimized automaton", "before", before, "after", len(res.States))
	}

	dfa, err := symbolicdfa.Build(s.BDD, res, atoms, s.Config.DFA)
	if err != nil {
		return nil, fmt.Errorf("lydia: %w", err)
	}
	return dfa, nil
}

// TranslateLTLf embeds phi into LDLf (normalize.ToLDLf) and compiles that.
func (s *Session) TranslateLTLf(phi ast.LTLfFormula) (*symbolicdfa.DFA, error) {
	s.logger.Debug("embedding LTLf formula into LDLf")
	embedded := normalize.ToLDLf(s.AST, phi)
	return s.TranslateLDLf(embedded)
}

// explore dispatches to the Explore variant s.Config.Strategy selects,
// returning the discovered automaton together with its alphabet (needed by
// symbolicdfa.Build regardless of which strategy produced the edges).
func (s *Session) explore(phi ast.LDLfFormula) (*automaton.ExploreResult, []ast.Symbol, error) {
	phi = normalize.NNFLDLf(s.AST, phi)
	atoms := automaton.Atoms(phi)

	switch s.Config.Strategy {
	case StrategySAT:
		res, err := automaton.ExploreSAT(s.AST, phi, nil)
		return res, atoms, wrapExploreErr(err)
	case StrategySymbolic:
		res, vs, err := automaton.ExploreSymbolic(s.AST, s.BDD, phi, nil)
		if err == nil {
			s.logger.Debug("symbolic exploration discovered subformula variables", "count", len(vs.SubVars()))
		}
		return res, atoms, wrapExploreErr(err)
	default:
		res, err := automaton.Explore(s.AST, phi, automaton.NaiveModels, nil)
		return res, atoms, wrapExploreErr(err)
	}
}

func wrapExploreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return fmt.Errorf("lydia: %w", err)
}

// Evaluate reports whether trace is accepted by phi's language, without the
// caller needing to build and hold onto a symbolicdfa.DFA itself.
func (s *Session) Evaluate(phi ast.LDLfFormula, trace []map[ast.Symbol]bool) (bool, error) {
	dfa, err := s.TranslateLDLf(phi)
	if err != nil {
		return false, err
	}
	return dfa.Accepts(trace), nil
}

// TranslateBatch compiles every formula in phis independently, continuing
// past individual failures instead of stopping at the first: a caller
// validating a whole set of formulas (e.g. a regression suite) gets every
// failure reported together via joinErrors rather than one at a time.
// dfas[i] is nil wherever phis[i] failed to compile.
func (s *Session) TranslateBatch(phis []ast.LDLfFormula) ([]*symbolicdfa.DFA, error) {
	dfas := make([]*symbolicdfa.DFA, len(phis))
	var errs []error
	for i, phi := range phis {
		dfa, err := s.TranslateLDLf(phi)
		if err != nil {
			errs = append(errs, fmt.Errorf("formula %d: %w", i, err))
			continue
		}
		dfas[i] = dfa
	}
	return dfas, joinErrors(errs...)
}
