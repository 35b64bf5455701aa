package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/bdd"
)

func TestExploreDiamondTrueAccepts(t *testing.T) {
	m := ast.NewManager(0)
	a := ast.Symbol{Name: "a"}
	phi := m.Diamond(m.PropRegExp(m.Atom(a)), m.LTrue()) // <a>tt

	res, err := Explore(m, phi, NaiveModels, nil)
	require.NoError(t, err)
	require.False(t, res.Final[res.Initial], "<a>tt cannot accept the empty trace")

	var sawAcceptingSucc bool
	for _, e := range res.Edges {
		if e.From == res.Initial && e.Letter[a] && res.Final[e.To] {
			sawAcceptingSucc = true
		}
	}
	require.True(t, sawAcceptingSucc, "taking an a-step from the initial state must reach an accepting state")
}

func TestExploreBoxStarFalseNeverAccepts(t *testing.T) {
	m := ast.NewManager(0)
	a := ast.Symbol{Name: "a"}
	star := m.Star(m.PropRegExp(m.Atom(a)))
	phi := m.Box(star, m.LFalse()) // [a*]ff: the zero-iteration run alone already requires ff.

	res, err := Explore(m, phi, NaiveModels, nil)
	require.NoError(t, err)
	require.False(t, res.Final[res.Initial])
}

func TestExploreSATAgreesWithNaiveOnAcceptance(t *testing.T) {
	m := ast.NewManager(0)
	a := ast.Symbol{Name: "a"}
	b := ast.Symbol{Name: "b"}
	phi := m.LOr(
		m.Diamond(m.PropRegExp(m.Atom(a)), m.LTrue()),
		m.Box(m.PropRegExp(m.Atom(b)), m.LFalse()),
	)

	naive, err := Explore(m, phi, NaiveModels, nil)
	require.NoError(t, err)
	sat, err := ExploreSAT(m, phi, nil)
	require.NoError(t, err)

	require.Equal(t, naive.Final[naive.Initial], sat.Final[sat.Initial])
}

func TestExploreSymbolicAgreesOnInitialAcceptance(t *testing.T) {
	m := ast.NewManager(0)
	a := ast.Symbol{Name: "a"}
	phi := m.Diamond(m.PropRegExp(m.Atom(a)), m.LTrue())

	naive, err := Explore(m, phi, NaiveModels, nil)
	require.NoError(t, err)

	bm := bdd.NewManager(0)
	sym, _, err := ExploreSymbolic(m, bm, phi, nil)
	require.NoError(t, err)

	require.Equal(t, naive.Final[naive.Initial], sym.Final[sym.Initial])
	require.NotEmpty(t, sym.Edges)
}
