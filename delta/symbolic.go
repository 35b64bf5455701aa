package delta

import (
	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/bdd"
)

// Symbolic computes delta(f, epsilon) as a bdd.Node over vs's merged
// variable space, symbolic in the atom block: the returned node already
// represents delta for every possible letter, not just one concrete
// interpretation. f must be in NNF, per Naive's contract.
func Symbolic(m *ast.Manager, bm *bdd.Manager, vs *VarSpace, f ast.LDLfFormula, epsilon bool) *bdd.Node {
	e := &engine{astManager: m, bm: bm, vs: vs}
	return e.delta(f, epsilon)
}
