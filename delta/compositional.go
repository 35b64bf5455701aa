package delta

import (
	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/bdd"
)

// Compositional is Symbolic's memoized twin: it shares one cache, keyed by
// (formula pointer, epsilon) across every Delta call, so that a quoted
// subformula reached along two different expansion paths of the same
// automaton-construction session is only ever lowered to a BDD once. The
// memoization is sound only because ast.Manager hash-conses: the same
// logical subformula always arrives at Delta as the same Go pointer.
type Compositional struct {
	e *engine
}

// NewCompositional builds a Compositional expander sharing m, bm and vs
// with the rest of a translation session.
func NewCompositional(m *ast.Manager, bm *bdd.Manager, vs *VarSpace) *Compositional {
	return &Compositional{e: &engine{
		astManager: m,
		bm:         bm,
		vs:         vs,
		cache:      make(map[cacheKey]*bdd.Node),
	}}
}

// Delta computes delta(f, epsilon), reusing any previously memoized result
// for this exact (f, epsilon) pair.
func (c *Compositional) Delta(f ast.LDLfFormula, epsilon bool) *bdd.Node {
	return c.e.delta(f, epsilon)
}

// Reset drops every memoized result, e.g. between unrelated translation runs
// sharing the same manager pair.
func (c *Compositional) Reset() {
	c.e.cache = make(map[cacheKey]*bdd.Node)
}
