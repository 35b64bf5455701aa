package delta

import (
	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/pl"
)

// Input is the second argument to delta: either the end-of-trace marker
// epsilon, or a propositional interpretation naming which atoms hold at the
// current trace position.
type Input struct {
	epsilon bool
	letter  map[ast.Symbol]bool
}

// EndOfTrace is the epsilon input: delta(f, EndOfTrace()) decides whether f
// can be satisfied by stopping here.
func EndOfTrace() Input { return Input{epsilon: true} }

// OfLetter wraps a propositional interpretation as a non-epsilon input.
// letter need only name the atoms that hold; every other atom is false.
func OfLetter(letter map[ast.Symbol]bool) Input { return Input{letter: letter} }

// IsEndOfTrace reports whether in is the epsilon input.
func (in Input) IsEndOfTrace() bool { return in.epsilon }

func (in Input) satisfies(guard ast.PLFormula) bool {
	assignment := make(map[ast.AtomName]bool, len(in.letter))
	for s, v := range in.letter {
		assignment[s] = v
	}
	return pl.Eval(guard, assignment)
}
