package symbolicdfa

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/automaton"
	bddpkg "github.com/whitemech/lydia-go/bdd"
)

// ErrTooManyStates is returned by Build when the source automaton needs
// more state bits than Config.MaxStateBits allows.
var ErrTooManyStates = errors.New("symbolicdfa: state count exceeds MaxStateBits budget")

// DFA is the bit-encoded symbolic automaton: N macro-states over Bits
// boolean variables, Atom2Index fixing the letter-bit layout, and one BDD
// per state bit giving that bit of Successor(state, letter) as a function
// of the state bits followed by the atom bits.
type DFA struct {
	N          int
	Bits       int
	Atoms      []ast.Symbol
	Atom2Index map[ast.Symbol]int
	Initial    int
	Finals     map[int]bool
	bdds       []*bddpkg.Node
	bm         *bddpkg.Manager
}

// Build compiles res (as produced by automaton.Explore, which names one
// Edge per concrete letter) into a bit-encoded DFA sharing bm.
func Build(bm *bddpkg.Manager, res *automaton.ExploreResult, atoms []ast.Symbol, cfg Config) (*DFA, error) {
	n := len(res.States)
	stateBits := bitsFor(n)
	if stateBits > cfg.MaxStateBits {
		return nil, fmt.Errorf("%w: need %d bits, budget is %d", ErrTooManyStates, stateBits, cfg.MaxStateBits)
	}

	atom2idx := make(map[ast.Symbol]int, len(atoms))
	for i, a := range atoms {
		atom2idx[a] = i
	}

	d := &DFA{
		N:          n,
		Bits:       stateBits,
		Atoms:      atoms,
		Atom2Index: atom2idx,
		Initial:    res.Initial,
		Finals:     res.Final,
		bm:         bm,
	}

	d.bdds = make([]*bddpkg.Node, stateBits)
	for bit := 0; bit < stateBits; bit++ {
		acc := bm.Zero()
		for _, e := range res.Edges {
			if !bitAt(e.To, bit) {
				continue
			}
			acc = bm.Or(acc, d.minterm(e))
		}
		d.bdds[bit] = acc
	}
	return d, nil
}

// minterm builds the BDD for "current state is e.From and current letter
// is e.Letter": a conjunction of literals over the state-bit block followed
// by the atom-bit block.
func (d *DFA) minterm(e automaton.Edge) *bddpkg.Node {
	cube := d.bm.One()
	for b := 0; b < d.Bits; b++ {
		v := d.bm.Var(d.stateVar(b))
		if !bitAt(e.From, b) {
			v = d.bm.Not(v)
		}
		cube = d.bm.And(cube, v)
	}
	for _, a := range d.Atoms {
		v := d.bm.Var(d.atomVar(a))
		if !e.Letter[a] {
			v = d.bm.Not(v)
		}
		cube = d.bm.And(cube, v)
	}
	return cube
}

func (d *DFA) stateVar(bit int) int { return bit }
func (d *DFA) atomVar(a ast.Symbol) int { return d.Bits + d.Atom2Index[a] }

// Successor returns the next state index reached from state on letter.
// letter need only name the atoms that hold.
func (d *DFA) Successor(state int, letter map[ast.Symbol]bool) int {
	assignment := make(map[int]bool, d.Bits+len(d.Atoms))
	for b := 0; b < d.Bits; b++ {
		assignment[d.stateVar(b)] = bitAt(state, b)
	}
	for a, idx := range d.Atom2Index {
		assignment[d.Bits+idx] = letter[a]
	}
	next := 0
	for b := 0; b < d.Bits; b++ {
		if d.bm.Eval(d.bdds[b], assignment) {
			next |= 1 << uint(b)
		}
	}
	return next
}

// Accepts runs trace from d.Initial and reports whether the reached state
// is final.
func (d *DFA) Accepts(trace []map[ast.Symbol]bool) bool {
	cur := d.Initial
	for _, letter := range trace {
		cur = d.Successor(cur, letter)
	}
	return d.Finals[cur]
}

func bitAt(n, bit int) bool { return n>>uint(bit)&1 != 0 }

// bitsFor returns ceil(log2(max(n,1))), at least 1 so a one-state automaton
// still has an addressable bit.
func bitsFor(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}
