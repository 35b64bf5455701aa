package lydia

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/normalize"
)

func newTestSession() *Session {
	return NewSession(DefaultConfig(), nil)
}

func TestTranslateLDLfTrue(t *testing.T) {
	s := newTestSession()
	dfa, err := s.TranslateLDLf(s.AST.LTrue())
	require.NoError(t, err)
	require.True(t, dfa.Accepts(nil))
}

func TestTranslateLDLfFalse(t *testing.T) {
	s := newTestSession()
	dfa, err := s.TranslateLDLf(s.AST.LFalse())
	require.NoError(t, err)
	require.False(t, dfa.Accepts(nil))
}

func TestTranslateLDLfDiamondAtom(t *testing.T) {
	s := newTestSession()
	a := ast.Symbol{Name: "a"}
	phi := s.AST.Diamond(s.AST.PropRegExp(s.AST.Atom(a)), s.AST.LTrue()) // <a>tt

	dfa, err := s.TranslateLDLf(phi)
	require.NoError(t, err)
	require.False(t, dfa.Accepts(nil))
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{a: true}}))
	require.False(t, dfa.Accepts([]map[ast.Symbol]bool{{a: false}}))
}

func TestTranslateLDLfBoxStarTrueEnd(t *testing.T) {
	s := newTestSession()
	trueStar := s.AST.Star(s.AST.PropRegExp(s.AST.True()))
	phi := s.AST.Box(trueStar, normalize.End(s.AST)) // [true*]end

	dfa, err := s.TranslateLDLf(phi)
	require.NoError(t, err)
	require.True(t, dfa.Accepts(nil))
}

func TestTranslateLTLfEventually(t *testing.T) {
	s := newTestSession()
	a := ast.Symbol{Name: "a"}
	phi := s.AST.Eventually(s.AST.LTLfAtomF(a)) // F a

	dfa, err := s.TranslateLTLf(phi)
	require.NoError(t, err)
	require.False(t, dfa.Accepts(nil))
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{a: false}, {a: true}}))
	require.False(t, dfa.Accepts([]map[ast.Symbol]bool{{a: false}, {a: false}}))
}

func TestTranslateLTLfAlways(t *testing.T) {
	s := newTestSession()
	a := ast.Symbol{Name: "a"}
	phi := s.AST.Always(s.AST.LTLfAtomF(a)) // G a

	dfa, err := s.TranslateLTLf(phi)
	require.NoError(t, err)
	require.False(t, dfa.Accepts(nil), "G a rejects the empty trace: a never held")
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{a: true}, {a: true}}))
	require.False(t, dfa.Accepts([]map[ast.Symbol]bool{{a: true}, {a: false}}))
}

func TestTranslateLDLfLast(t *testing.T) {
	s := newTestSession()
	phi := s.AST.Box(s.AST.Star(s.AST.PropRegExp(s.AST.True())), normalize.Last(s.AST)) // [true*]Last

	dfa, err := s.TranslateLDLf(phi)
	require.NoError(t, err)
	require.False(t, dfa.Accepts(nil), "Last cannot hold one step before a trace with no steps at all")
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{}}), "Last holds throughout a trace of exactly one step")
	require.False(t, dfa.Accepts([]map[ast.Symbol]bool{{}, {}}), "Last does not hold at position 0 of a two-step trace")
}

func TestTranslateBatchAggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DFA.MaxStateBits = 0
	s := NewSession(cfg, nil)

	a := ast.Symbol{Name: "a"}
	phi := s.AST.Diamond(s.AST.PropRegExp(s.AST.Atom(a)), s.AST.LTrue())

	dfas, err := s.TranslateBatch([]ast.LDLfFormula{phi, phi})
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	require.Len(t, dfas, 2)
	require.Nil(t, dfas[0])
	require.Nil(t, dfas[1])
}

func TestTranslateLDLfSymbolicStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategySymbolic
	cfg.Minimize = false
	s := NewSession(cfg, nil)

	a := ast.Symbol{Name: "a"}
	phi := s.AST.Diamond(s.AST.PropRegExp(s.AST.Atom(a)), s.AST.LTrue())
	dfa, err := s.TranslateLDLf(phi)
	require.NoError(t, err)
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{a: true}}))
}

func TestTranslateLDLfSATStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = StrategySAT
	s := NewSession(cfg, nil)

	a := ast.Symbol{Name: "a"}
	phi := s.AST.Diamond(s.AST.PropRegExp(s.AST.Atom(a)), s.AST.LTrue())
	dfa, err := s.TranslateLDLf(phi)
	require.NoError(t, err)
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{a: true}}))
}

func TestEvaluateConvenienceMethod(t *testing.T) {
	s := newTestSession()
	a := ast.Symbol{Name: "a"}
	phi := s.AST.Diamond(s.AST.PropRegExp(s.AST.Atom(a)), s.AST.LTrue())

	ok, err := s.Evaluate(phi, []map[ast.Symbol]bool{{a: true}})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestExportDFAWithoutCollaboratorFails(t *testing.T) {
	s := newTestSession()
	dfa, err := s.TranslateLDLf(s.AST.LTrue())
	require.NoError(t, err)

	err = s.ExportDFA(nil, dfa)
	require.ErrorIs(t, err, ErrNoCollaborator)
}
