package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashConsIdentity(t *testing.T) {
	m := NewManager(0)

	a1 := m.Atom(Symbol{Name: "a"})
	a2 := m.Atom(Symbol{Name: "a"})
	require.Same(t, a1, a2, "two atoms built from the same symbol must be the same pointer")

	and1 := m.And(a1, m.Atom(Symbol{Name: "b"}))
	and2 := m.And(m.Atom(Symbol{Name: "b"}), a2)
	require.Same(t, and1, and2, "And operand order must not affect identity (operands are a set)")
}

func TestAndOrSimplifications(t *testing.T) {
	m := NewManager(0)
	a := m.Atom(Symbol{Name: "a"})

	require.Equal(t, a, m.And(a, m.True()), "x & true == x")
	require.Equal(t, m.False(), m.And(a, m.False()), "x & false == false")
	require.Equal(t, m.True(), m.Or(a, m.True()), "x | true == true")
	require.Equal(t, a, m.Or(a, m.False()), "x | false == x")
	require.Equal(t, a, m.And(a), "singleton And collapses to its operand")
}

func TestDoubleNegation(t *testing.T) {
	m := NewManager(0)
	a := m.Atom(Symbol{Name: "a"})
	require.Same(t, a, m.Not(m.Not(a)))
	require.Equal(t, m.False(), m.Not(m.True()))
	require.Equal(t, m.True(), m.Not(m.False()))
}

func TestSequenceFlattening(t *testing.T) {
	m := NewManager(0)
	r1 := m.PropRegExp(m.Atom(Symbol{Name: "a"}))
	r2 := m.PropRegExp(m.Atom(Symbol{Name: "b"}))
	r3 := m.PropRegExp(m.Atom(Symbol{Name: "c"}))

	nested := m.Sequence(m.Sequence(r1, r2), r3)
	flat := m.Sequence(r1, r2, r3)
	require.Same(t, flat, nested, "nested sequences must flatten to the same canonical node")
	require.Len(t, nested.(*RegSequence).Args(), 3)
}

func TestUnionFlatteningAndDedup(t *testing.T) {
	m := NewManager(0)
	r1 := m.PropRegExp(m.Atom(Symbol{Name: "a"}))
	r2 := m.PropRegExp(m.Atom(Symbol{Name: "b"}))

	u := m.Union(m.Union(r1, r2), r1)
	require.Len(t, u.(*RegUnion).Args(), 2, "duplicate union operand must be deduplicated")
}

func TestDiamondFalseCollapses(t *testing.T) {
	m := NewManager(0)
	r := m.PropRegExp(m.Atom(Symbol{Name: "a"}))
	require.Equal(t, m.LFalse(), m.Diamond(r, m.LFalse()))
	require.Equal(t, m.LTrue(), m.Box(r, m.LTrue()))
}

func TestQuotedAtomEquality(t *testing.T) {
	m := NewManager(0)
	phi := m.LAnd(m.Diamond(m.PropRegExp(m.Atom(Symbol{Name: "a"})), m.LTrue()), m.LTrue())

	q1 := m.Atom(QuotedLDLf{F: phi})
	q2 := m.Atom(QuotedLDLf{F: phi})
	require.Same(t, q1, q2, "quoting the same LDLf formula twice must yield the same atom")
}
