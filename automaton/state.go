package automaton

import (
	"sort"
	"strings"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/delta"
)

// NFAState is a single conjunctive macro-formula: one particular way the
// automaton's obligations can be satisfied from here on. Formula is always
// built through ast.Manager.LAnd, so two NFAStates over the same member set
// carry the same hash-consed pointer regardless of construction order.
type NFAState struct {
	Formula ast.LDLfFormula
}

func newNFAState(m *ast.Manager, members ...ast.LDLfFormula) NFAState {
	if len(members) == 0 {
		return NFAState{Formula: m.LTrue()}
	}
	return NFAState{Formula: m.LAnd(members...)}
}

// Hash identifies the NFAState's member set.
func (s NFAState) Hash() uint64 { return s.Formula.Hash() }

// Equal reports whether s and o are the same conjunctive macro-formula.
func (s NFAState) Equal(o NFAState) bool { return s.Formula.Equal(o.Formula) }

// Members returns the conjuncts making up s.
func (s NFAState) Members() []ast.LDLfFormula {
	if and, ok := s.Formula.(*ast.LDLfAnd); ok {
		return and.Args()
	}
	return []ast.LDLfFormula{s.Formula}
}

func (s NFAState) String() string { return s.Formula.String() }

// isAccepting reports whether s can be satisfied by stopping here: per
// delta.Naive's contract, delta(f, EndOfTrace()) always collapses to the
// manager's True or False singleton.
func isAccepting(m *ast.Manager, s NFAState) bool {
	return delta.Naive(m, s.Formula, delta.EndOfTrace()).Equal(m.True())
}

// DFAState is the disjunctive set of NFAStates reachable along some path:
// the subset-construction macro-state. States are deduplicated and sorted
// by hash so that Hash is independent of construction order.
type DFAState struct {
	states []NFAState
	hash   uint64
}

func newDFAState(states []NFAState) DFAState {
	dedup := make([]NFAState, 0, len(states))
	for _, s := range states {
		dup := false
		for _, k := range dedup {
			if k.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			dedup = append(dedup, s)
		}
	}
	sort.Slice(dedup, func(i, j int) bool { return dedup[i].Hash() < dedup[j].Hash() })
	var h uint64
	for _, s := range dedup {
		// FNV-ish fold: order-independent already thanks to the sort above,
		// so this just needs to mix hashes without the stdlib's Hash/maphash
		// dependency on map iteration order.
		h = h*1099511628211 ^ s.Hash()
	}
	return DFAState{states: dedup, hash: h}
}

// Hash identifies the DFAState's NFAState set.
func (d DFAState) Hash() uint64 { return d.hash }

// Equal reports whether d and o contain the same NFAState set.
func (d DFAState) Equal(o DFAState) bool {
	if len(d.states) != len(o.states) {
		return false
	}
	for i, s := range d.states {
		if !s.Equal(o.states[i]) {
			return false
		}
	}
	return true
}

// States returns d's member NFAStates, sorted by hash.
func (d DFAState) States() []NFAState { return d.states }

func (d DFAState) String() string {
	parts := make([]string, len(d.states))
	for i, s := range d.states {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, " | ") + "}"
}

// registry hash-conses DFAStates to small integer indices across one
// Explore run, resolving hash collisions the same way ast.Manager's intern
// does: a bucket per hash, resolved by Equal.
type registry struct {
	buckets map[uint64][]int
	states  []DFAState
}

func newRegistry() *registry {
	return &registry{buckets: make(map[uint64][]int)}
}

// intern returns d's stable index, allocating a new one on first sight.
func (r *registry) intern(d DFAState) (idx int, isNew bool) {
	h := d.Hash()
	for _, i := range r.buckets[h] {
		if r.states[i].Equal(d) {
			return i, false
		}
	}
	idx = len(r.states)
	r.states = append(r.states, d)
	r.buckets[h] = append(r.buckets[h], idx)
	return idx, true
}
