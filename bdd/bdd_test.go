package bdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicOps(t *testing.T) {
	m := NewManager(0)
	a := m.Var(0)
	b := m.Var(1)

	and := m.And(a, b)
	require.True(t, m.Eval(and, map[int]bool{0: true, 1: true}))
	require.False(t, m.Eval(and, map[int]bool{0: true, 1: false}))

	or := m.Or(a, b)
	require.True(t, m.Eval(or, map[int]bool{0: false, 1: true}))
	require.False(t, m.Eval(or, map[int]bool{0: false, 1: false}))

	require.Same(t, m.Zero(), m.And(a, m.Not(a)))
	require.Same(t, m.One(), m.Or(a, m.Not(a)))
}

func TestUniqueTableCanonicality(t *testing.T) {
	m := NewManager(0)
	a, b := m.Var(0), m.Var(1)
	x := m.And(a, b)
	y := m.And(b, a)
	require.Same(t, x, y, "AND is commutative so both builds must hash-cons to the same node")
}

func TestEnumerateCubes(t *testing.T) {
	m := NewManager(0)
	a, b := m.Var(0), m.Var(1)
	f := m.Or(a, b)
	cubes := m.EnumerateCubes(f)
	for _, c := range cubes {
		require.True(t, m.Eval(f, c))
	}
	require.NotEmpty(t, cubes)
}

func TestCompose(t *testing.T) {
	m := NewManager(0)
	a, b, c := m.Var(0), m.Var(1), m.Var(2)
	f := m.And(a, b)
	g := m.Compose(f, map[int]*Node{0: c})
	require.True(t, m.Eval(g, map[int]bool{1: true, 2: true}))
	require.False(t, m.Eval(g, map[int]bool{1: true, 2: false}))
}
