package ast

// Kind tags every node variant across all four logics so that a single
// hash-cons table can hold them without reflection-based type switches on
// the hot path.
type Kind uint8

const (
	KindPLTrue Kind = iota
	KindPLFalse
	KindPLAtom
	KindPLAnd
	KindPLOr
	KindPLNot

	KindLDLfTrue
	KindLDLfFalse
	KindLDLfAnd
	KindLDLfOr
	KindLDLfNot
	KindLDLfDiamond
	KindLDLfBox
	KindLDLfF
	KindLDLfT
	KindLDLfQ

	KindRegPropositional
	KindRegTest
	KindRegUnion
	KindRegSequence
	KindRegStar

	KindLTLfTrue
	KindLTLfFalse
	KindLTLfAtom
	KindLTLfAnd
	KindLTLfOr
	KindLTLfNot
	KindLTLfNext
	KindLTLfWeakNext
	KindLTLfUntil
	KindLTLfRelease
	KindLTLfEventually
	KindLTLfAlways
)

// Node is the closed supertype every AST variant implements. Hash is
// precomputed at construction time (O(1) given already-hash-consed
// children); Equal compares shape, not identity, and is only ever called by
// the Manager to resolve a hash-bucket collision.
type Node interface {
	Kind() Kind
	Hash() uint64
	Equal(other Node) bool
	String() string
}

// PLFormula is the propositional-logic formula family.
type PLFormula interface {
	Node
	isPL()
}

// LDLfFormula is the LDLf formula family.
type LDLfFormula interface {
	Node
	isLDLf()
}

// RegExp is the regular-expression program family ranged over by LDLf
// diamonds and boxes.
type RegExp interface {
	Node
	isRegExp()
}

// LTLfFormula is the LTLf formula family, reduced to LDLf by normalize.ToLDLf
// before it ever reaches delta.
type LTLfFormula interface {
	Node
	isLTLf()
}
