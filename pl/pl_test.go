package pl

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/whitemech/lydia-go/ast"
)

func modelKeys(t *testing.T, models []map[ast.AtomName]bool) []string {
	t.Helper()
	var out []string
	for _, m := range models {
		var parts []string
		for k, v := range m {
			if v {
				parts = append(parts, k.String()+"=T;")
			} else {
				parts = append(parts, k.String()+"=F;")
			}
		}
		sort.Strings(parts)
		s := ""
		for _, p := range parts {
			s += p
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func TestEvalBasics(t *testing.T) {
	m := ast.NewManager(0)
	a := m.Atom(ast.Symbol{Name: "a"})
	b := m.Atom(ast.Symbol{Name: "b"})
	f := m.And(a, m.Not(b))

	require.True(t, Eval(f, map[ast.AtomName]bool{ast.Symbol{Name: "a"}: true, ast.Symbol{Name: "b"}: false}))
	require.False(t, Eval(f, map[ast.AtomName]bool{ast.Symbol{Name: "a"}: true, ast.Symbol{Name: "b"}: true}))
}

func TestAllModelsNaiveVsSAT(t *testing.T) {
	m := ast.NewManager(0)
	a := m.Atom(ast.Symbol{Name: "a"})
	b := m.Atom(ast.Symbol{Name: "b"})
	c := m.Atom(ast.Symbol{Name: "c"})
	f := m.Or(m.And(a, b), m.Not(c))

	naive, err := AllModelsNaive(f)
	require.NoError(t, err)
	sat := AllModelsSAT(m, f)

	require.Equal(t, modelKeys(t, naive), modelKeys(t, sat))
	require.NotEmpty(t, naive)
}

func TestAllModelsTrueFalse(t *testing.T) {
	m := ast.NewManager(0)
	trueModels, err := AllModelsNaive(m.True())
	require.NoError(t, err)
	require.Len(t, trueModels, 1)

	falseModels, err := AllModelsNaive(m.False())
	require.NoError(t, err)
	require.Empty(t, falseModels)

	require.Len(t, AllModelsSAT(m, m.True()), 1)
	require.Empty(t, AllModelsSAT(m, m.False()))
}

func TestToCNFIsCNFAndEquivalent(t *testing.T) {
	m := ast.NewManager(0)
	a := m.Atom(ast.Symbol{Name: "a"})
	b := m.Atom(ast.Symbol{Name: "b"})
	c := m.Atom(ast.Symbol{Name: "c"})
	f := m.And(m.Or(a, b), m.Or(m.Not(a), c))

	cnf := ToCNF(m, f)
	// Top level must be an And of Ors of literals (or a single clause).
	if and, ok := cnf.(*ast.PLAnd); ok {
		for _, clause := range and.Args() {
			require.True(t, isClause(clause), "every CNF conjunct must be a clause of literals")
		}
	} else {
		require.True(t, isClause(cnf))
	}

	naive, err := AllModelsNaive(f)
	require.NoError(t, err)
	naiveCNF, err := AllModelsNaive(cnf)
	require.NoError(t, err)
	require.Equal(t, modelKeys(t, naive), modelKeys(t, naiveCNF))
}

func isClause(f ast.PLFormula) bool {
	if or, ok := f.(*ast.PLOr); ok {
		for _, a := range or.Args() {
			if !isLiteral(a) {
				return false
			}
		}
		return true
	}
	return isLiteral(f)
}

func isLiteral(f ast.PLFormula) bool {
	switch n := f.(type) {
	case *ast.PLAtom:
		_ = n
		return true
	case *ast.PLNot:
		_, ok := n.Arg().(*ast.PLAtom)
		return ok
	}
	return false
}
