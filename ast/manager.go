package ast

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Manager owns the unique table for one translation session. Interning and
// Stats hold mu, so concurrent calls are serialized; each lydia.Session
// gets its own Manager from lydia.NewSession.
type Manager struct {
	mu    sync.Mutex
	table map[uint64][]Node
	cache *lru.Cache[uint64, Node]

	plTrue, plFalse     PLFormula
	ldlfTrue, ldlfFalse LDLfFormula
	ltlfTrue, ltlfFalse LTLfFormula

	stats map[Kind]int
}

// NewManager builds an empty Manager with its True/False singletons
// preallocated for every logic, and a cacheSlots-sized LRU in front of the
// authoritative unique table. cacheSlots <= 0 selects a sane default.
func NewManager(cacheSlots int) *Manager {
	if cacheSlots <= 0 {
		cacheSlots = 4096
	}
	cache, err := lru.New[uint64, Node](cacheSlots)
	if err != nil {
		// Only returns an error for a non-positive size, which we just guarded.
		panic("ast: unreachable lru.New failure: " + err.Error())
	}
	m := &Manager{
		table: make(map[uint64][]Node),
		cache: cache,
		stats: make(map[Kind]int),
	}
	m.plTrue = m.intern(plTrue{}).(PLFormula)
	m.plFalse = m.intern(plFalse{}).(PLFormula)
	m.ldlfTrue = m.intern(ldlfTrue{}).(LDLfFormula)
	m.ldlfFalse = m.intern(ldlfFalse{}).(LDLfFormula)
	m.ltlfTrue = m.intern(ltlfTrue{}).(LTLfFormula)
	m.ltlfFalse = m.intern(ltlfFalse{}).(LTLfFormula)
	return m
}

// intern returns the canonical instance for candidate, inserting it if no
// structurally equal node already exists. This is the single chokepoint
// every MakeXxx factory funnels through.
func (m *Manager) intern(candidate Node) Node {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := candidate.Hash()
	if cached, ok := m.cache.Get(h); ok && cached.Equal(candidate) {
		return cached
	}
	bucket := m.table[h]
	for _, n := range bucket {
		if n.Equal(candidate) {
			m.cache.Add(h, n)
			return n
		}
	}
	m.table[h] = append(bucket, candidate)
	m.cache.Add(h, candidate)
	m.stats[candidate.Kind()]++
	return candidate
}

// Stats reports the number of distinct canonical nodes interned per Kind,
// for diagnostics; nothing in this module logs it.
func (m *Manager) Stats() map[Kind]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[Kind]int, len(m.stats))
	for k, v := range m.stats {
		out[k] = v
	}
	return out
}

// sortByHash orders a slice of nodes by ascending structural hash, used
// purely for deterministic String() output of sets (And/Or/Union); Equal
// never depends on this order.
func sortByHash[T Node](args []T) {
	sort.Slice(args, func(i, j int) bool { return args[i].Hash() < args[j].Hash() })
}

func dedup[T Node](args []T) []T {
	out := make([]T, 0, len(args))
	for _, a := range args {
		dup := false
		for _, b := range out {
			if a.Equal(b) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}
