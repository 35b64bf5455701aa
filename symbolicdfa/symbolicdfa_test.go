package symbolicdfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/automaton"
	"github.com/whitemech/lydia-go/bdd"
)

func TestBuildAcceptsMatchesExploreResult(t *testing.T) {
	m := ast.NewManager(0)
	a := ast.Symbol{Name: "a"}
	phi := m.Diamond(m.PropRegExp(m.Atom(a)), m.LTrue()) // <a>tt

	res, err := automaton.Explore(m, phi, automaton.NaiveModels, nil)
	require.NoError(t, err)

	bm := bdd.NewManager(0)
	dfa, err := Build(bm, res, automaton.Atoms(phi), DefaultConfig())
	require.NoError(t, err)

	require.False(t, dfa.Accepts(nil))
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{a: true}}))
	require.False(t, dfa.Accepts([]map[ast.Symbol]bool{{a: false}}))
}

func TestBuildRejectsOverBudget(t *testing.T) {
	m := ast.NewManager(0)
	a := ast.Symbol{Name: "a"}
	phi := m.Diamond(m.PropRegExp(m.Atom(a)), m.LTrue())
	res, err := automaton.Explore(m, phi, automaton.NaiveModels, nil)
	require.NoError(t, err)

	bm := bdd.NewManager(0)
	cfg := DefaultConfig()
	cfg.MaxStateBits = 0
	_, err = Build(bm, res, automaton.Atoms(phi), cfg)
	require.ErrorIs(t, err, ErrTooManyStates)
}

func TestMinimizePreservesLanguage(t *testing.T) {
	m := ast.NewManager(0)
	a := ast.Symbol{Name: "a"}
	phi := m.Diamond(m.PropRegExp(m.Atom(a)), m.LTrue())

	res, err := automaton.Explore(m, phi, automaton.NaiveModels, nil)
	require.NoError(t, err)
	min := Minimize(res)
	require.LessOrEqual(t, len(min.States), len(res.States))

	bm := bdd.NewManager(0)
	dfa, err := Build(bm, min, automaton.Atoms(phi), DefaultConfig())
	require.NoError(t, err)
	require.True(t, dfa.Accepts([]map[ast.Symbol]bool{{a: true}}))
	require.False(t, dfa.Accepts(nil))
}

func TestFromConfigDecodesOverrides(t *testing.T) {
	cfg, err := FromConfig(map[string]interface{}{"reorder": true, "max_state_bits": 4})
	require.NoError(t, err)
	require.True(t, cfg.Reorder)
	require.Equal(t, 4, cfg.MaxStateBits)
	require.Equal(t, DefaultConfig().CacheSlots, cfg.CacheSlots)
}
