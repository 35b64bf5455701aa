package automaton

import (
	"context"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/bdd"
	"github.com/whitemech/lydia-go/delta"
	"github.com/whitemech/lydia-go/normalize"
)

// ExploreSymbolic performs the same subset construction as Explore, but
// computes each NFAState's successors once as a bdd.Node (delta.Symbolic)
// instead of once per concrete letter. Enumerating that BDD's cubes yields
// letter GROUPS rather than single letters: a cube that leaves an atom
// variable unassigned is a don't-care, valid for both its values, so one
// cube can stand in for many concrete letters. Cubes from different
// NFAStates of the same DFAState are merged into a group when their atom
// projections agree on every variable both assign — a simple compatible-
// merge pass, not a canonical coarsest partition, so two groups in the
// result may still be splittable; see DESIGN.md.
func ExploreSymbolic(m *ast.Manager, bm *bdd.Manager, phi ast.LDLfFormula, opts *ExploreOptions) (*ExploreResult, *delta.VarSpace, error) {
	phi = normalize.NNFLDLf(m, phi)
	vs := delta.NewVarSpace(Atoms(phi))

	w := &symbolicWalker{
		m:    m,
		bm:   bm,
		vs:   vs,
		reg:  newRegistry(),
		res:  &ExploreResult{Final: make(map[int]bool)},
		opts: opts,
		ctx:  context.Background(),
	}
	if opts != nil && opts.Ctx != nil {
		w.ctx = opts.Ctx
	}

	initIdx, _ := w.reg.intern(newDFAState([]NFAState{{Formula: phi}}))
	w.res.Initial = initIdx
	w.enqueue(initIdx)
	if err := w.loop(); err != nil {
		return nil, nil, err
	}
	w.res.States = w.reg.states
	return w.res, vs, nil
}

type symbolicGroup struct {
	atomProj map[int]bool
	members  []NFAState
}

func compatible(a, b map[int]bool) bool {
	for k, v := range a {
		if bv, ok := b[k]; ok && bv != v {
			return false
		}
	}
	return true
}

type symbolicWalker struct {
	m       *ast.Manager
	bm      *bdd.Manager
	vs      *delta.VarSpace
	reg     *registry
	res     *ExploreResult
	opts    *ExploreOptions
	ctx     context.Context
	queue   []int
	visited map[int]bool
}

func (w *symbolicWalker) enqueue(idx int) {
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

func (w *symbolicWalker) loop() error {
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

func (w *symbolicWalker) visit(idx int) error {
	state := w.reg.states[idx]
	for _, nfa := range state.States() {
		if isAccepting(w.m, nfa) {
			w.res.Final[idx] = true
			break
		}
	}

	var groups []symbolicGroup
	for _, nfa := range state.States() {
		node := delta.Symbolic(w.m, w.bm, w.vs, nfa.Formula, false)
		for _, cube := range w.bm.EnumerateCubes(node) {
			var members []ast.LDLfFormula
			for k, v := range cube {
				if sub, ok := w.vs.Subformula(k); ok && v {
					members = append(members, sub)
				}
			}
			atomProj := bdd.ProjectCubes([]map[int]bool{cube}, w.vs.AtomVars())[0]
			placed := false
			for i := range groups {
				if compatible(groups[i].atomProj, atomProj) {
					for k, v := range atomProj {
						groups[i].atomProj[k] = v
					}
					groups[i].members = append(groups[i].members, newNFAState(w.m, members...))
					placed = true
					break
				}
			}
			if !placed {
				groups = append(groups, symbolicGroup{atomProj: atomProj, members: []NFAState{newNFAState(w.m, members...)}})
			}
		}
	}

	if len(groups) == 0 {
		groups = []symbolicGroup{{atomProj: map[int]bool{}, members: []NFAState{{Formula: w.m.LFalse()}}}}
	}

	for _, g := range groups {
		letter := make(map[ast.Symbol]bool, len(g.atomProj))
		for id, v := range g.atomProj {
			if s, ok := w.vs.AtomSymbol(id); ok {
				letter[s] = v
			}
		}
		succIdx, _ := w.reg.intern(newDFAState(g.members))
		edge := Edge{From: idx, Letter: letter, To: succIdx}
		w.res.Edges = append(w.res.Edges, edge)
		if w.opts != nil && w.opts.OnTransition != nil {
			w.opts.OnTransition(edge)
		}
		w.enqueue(succIdx)
	}
	return nil
}
