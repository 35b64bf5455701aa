package bdd

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

type uniqueKey struct {
	v         int
	low, high *Node
}

type iteKey [3]*Node

// Manager owns one BDD's-worth of unique table and apply cache. Like
// ast.Manager, its node-building operations hold mu, so concurrent calls are
// serialized; each lydia.Session gets its own Manager.
type Manager struct {
	mu       sync.Mutex
	unique   map[uniqueKey]*Node
	iteCache *lru.Cache[iteKey, *Node]
	zero     *Node
	one      *Node
}

// NewManager builds an empty Manager with its Zero/One terminals
// preallocated and an apply-operation cache of cacheSlots entries
// (<= 0 selects a default).
func NewManager(cacheSlots int) *Manager {
	if cacheSlots <= 0 {
		cacheSlots = 8192
	}
	cache, err := lru.New[iteKey, *Node](cacheSlots)
	if err != nil {
		panic("bdd: unreachable lru.New failure: " + err.Error())
	}
	return &Manager{
		unique:   make(map[uniqueKey]*Node),
		iteCache: cache,
		zero:     &Node{terminal: true, value: false},
		one:      &Node{terminal: true, value: true},
	}
}

// Zero is the constant-false BDD.
func (m *Manager) Zero() *Node { return m.zero }

// One is the constant-true BDD.
func (m *Manager) One() *Node { return m.one }

// mk returns the canonical node for (v, low, high), applying the standard
// ROBDD reduction rule: a node whose branches agree is redundant.
func (m *Manager) mk(v int, low, high *Node) *Node {
	if low == high {
		return low
	}
	key := uniqueKey{v, low, high}
	if n, ok := m.unique[key]; ok {
		return n
	}
	n := &Node{variable: v, low: low, high: high}
	m.unique[key] = n
	return n
}

// Var returns the BDD for the single Boolean variable v (mk_var).
func (m *Manager) Var(v int) *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mk(v, m.zero, m.one)
}

// Not computes the negation of a.
func (m *Manager) Not(a *Node) *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ite(a, m.zero, m.one)
}

// And computes the conjunction of a and b.
func (m *Manager) And(a, b *Node) *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ite(a, b, m.zero)
}

// Or computes the disjunction of a and b.
func (m *Manager) Or(a, b *Node) *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ite(a, m.one, b)
}

// ite is the classic if-then-else operator every binary Boolean op reduces
// to: ite(f,g,h) = f ? g : h. It recurses on the topmost variable among
// f, g, h and is memoized per (f,g,h) triple.
func (m *Manager) ite(f, g, h *Node) *Node {
	switch {
	case f == m.one:
		return g
	case f == m.zero:
		return h
	case g == h:
		return g
	case g == m.one && h == m.zero:
		return f
	}
	key := iteKey{f, g, h}
	if cached, ok := m.iteCache.Get(key); ok {
		return cached
	}
	v := topVar(f, g, h)
	fLow, fHigh := restrict(f, v)
	gLow, gHigh := restrict(g, v)
	hLow, hHigh := restrict(h, v)
	low := m.ite(fLow, gLow, hLow)
	high := m.ite(fHigh, gHigh, hHigh)
	res := m.mk(v, low, high)
	m.iteCache.Add(key, res)
	return res
}

func topVar(nodes ...*Node) int {
	best := -1
	for _, n := range nodes {
		if n.terminal {
			continue
		}
		if best == -1 || n.variable < best {
			best = n.variable
		}
	}
	return best
}

func restrict(n *Node, v int) (low, high *Node) {
	if n.terminal || n.variable != v {
		return n, n
	}
	return n.low, n.high
}

// Eval walks n under a total assignment, returning the reached terminal's
// value. Variables absent from assignment are treated as false.
func (m *Manager) Eval(n *Node, assignment map[int]bool) bool {
	cur := n
	for !cur.terminal {
		if assignment[cur.variable] {
			cur = cur.high
		} else {
			cur = cur.low
		}
	}
	return cur.value
}

// Compose substitutes each variable v found in subs with the BDD subs[v]
// inside n, per the sealed collaborator's compose operation.
func (m *Manager) Compose(n *Node, subs map[int]*Node) *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	memo := make(map[*Node]*Node)
	var rec func(*Node) *Node
	rec = func(cur *Node) *Node {
		if cur.terminal {
			return cur
		}
		if r, ok := memo[cur]; ok {
			return r
		}
		low := rec(cur.low)
		high := rec(cur.high)
		var res *Node
		if sub, ok := subs[cur.variable]; ok {
			res = m.ite(sub, high, low)
		} else {
			res = m.mk(cur.variable, low, high)
		}
		memo[cur] = res
		return res
	}
	return rec(n)
}
