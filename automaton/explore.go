package automaton

import (
	"context"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/delta"
	"github.com/whitemech/lydia-go/normalize"
)

// Edge is one (state, letter, state) transition discovered during Explore.
type Edge struct {
	From   int
	Letter map[ast.Symbol]bool
	To     int
}

// ExploreOptions configures a subset-construction run. All fields are
// optional.
type ExploreOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context
	// OnStateDiscovered is called the first time idx's DFAState is interned.
	OnStateDiscovered func(idx int, state DFAState)
	// OnTransition is called for every edge as it is discovered.
	OnTransition func(e Edge)
}

// ExploreResult is the automaton discovered by a subset-construction run.
type ExploreResult struct {
	States  []DFAState
	Initial int
	Final   map[int]bool
	Edges   []Edge
}

// Explore performs the naive breadth-first subset construction of phi's
// automaton: one edge per concrete letter of phi's alphabet, with
// successors computed via delta.Naive and enumerate. phi need not already
// be in NNF; Explore normalizes it first.
func Explore(m *ast.Manager, phi ast.LDLfFormula, enumerate ModelEnumerator, opts *ExploreOptions) (*ExploreResult, error) {
	phi = normalize.NNFLDLf(m, phi)
	atoms := Atoms(phi)
	letters, err := enumerateLetters(atoms)
	if err != nil {
		return nil, err
	}

	w := &walker{
		m:         m,
		enumerate: enumerate,
		letters:   letters,
		reg:       newRegistry(),
		res:       &ExploreResult{Final: make(map[int]bool)},
		opts:      opts,
		ctx:       context.Background(),
	}
	if opts != nil && opts.Ctx != nil {
		w.ctx = opts.Ctx
	}

	initIdx, _ := w.reg.intern(newDFAState([]NFAState{{Formula: phi}}))
	w.res.Initial = initIdx
	w.enqueue(initIdx)
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.States = w.reg.states
	return w.res, nil
}

// walker holds the mutable state of one Explore run, mirroring the
// queue-plus-hooks shape of a conventional graph-library BFS walker.
type walker struct {
	m         *ast.Manager
	enumerate ModelEnumerator
	letters   []map[ast.Symbol]bool
	reg       *registry
	res       *ExploreResult
	opts      *ExploreOptions
	ctx       context.Context
	queue     []int
	visited   map[int]bool
}

func (w *walker) enqueue(idx int) {
	if w.visited == nil {
		w.visited = make(map[int]bool)
	}
	if w.visited[idx] {
		return
	}
	w.visited[idx] = true
	w.queue = append(w.queue, idx)
	if w.opts != nil && w.opts.OnStateDiscovered != nil {
		w.opts.OnStateDiscovered(idx, w.reg.states[idx])
	}
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		idx := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(idx); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) visit(idx int) error {
	state := w.reg.states[idx]
	for _, nfa := range state.States() {
		if isAccepting(w.m, nfa) {
			w.res.Final[idx] = true
			break
		}
	}
	for _, letter := range w.letters {
		succ, err := w.step(state, letter)
		if err != nil {
			return err
		}
		succIdx, _ := w.reg.intern(succ)
		edge := Edge{From: idx, Letter: letter, To: succIdx}
		w.res.Edges = append(w.res.Edges, edge)
		if w.opts != nil && w.opts.OnTransition != nil {
			w.opts.OnTransition(edge)
		}
		w.enqueue(succIdx)
	}
	return nil
}

// step computes the successor DFAState of state on letter, per NFAState,
// unioning every model each member's delta admits.
func (w *walker) step(state DFAState, letter map[ast.Symbol]bool) (DFAState, error) {
	var successors []NFAState
	for _, nfa := range state.States() {
		result := delta.Naive(w.m, nfa.Formula, delta.OfLetter(letter))
		switch result.Kind() {
		case ast.KindPLTrue:
			successors = append(successors, newNFAState(w.m))
			continue
		case ast.KindPLFalse:
			continue
		}
		models, err := w.enumerate(result)
		if err != nil {
			return DFAState{}, err
		}
		for _, model := range models {
			var members []ast.LDLfFormula
			for name, held := range model {
				if !held {
					continue
				}
				if q, ok := name.(ast.QuotedLDLf); ok {
					members = append(members, q.F)
				}
			}
			successors = append(successors, newNFAState(w.m, members...))
		}
	}
	if len(successors) == 0 {
		successors = []NFAState{{Formula: w.m.LFalse()}}
	}
	return newDFAState(successors), nil
}
