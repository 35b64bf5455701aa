package ast

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Symbol is an atomic proposition name with structural (value) equality.
type Symbol struct {
	Name string
}

func (s Symbol) String() string { return s.Name }

// AtomName is the payload of a PLAtom: either a plain Symbol or a
// QuotedLDLf wrapping an LDLf subformula. Quoting lets delta emit a
// reference to a successor-state conjunct as an ordinary propositional
// variable, per spec.md 4.4.
type AtomName interface {
	Hash() uint64
	Equal(other AtomName) bool
	String() string
	isAtomName()
}

func (Symbol) isAtomName() {}

func (s Symbol) Hash() uint64 {
	h, err := hashstructure.Hash(struct {
		T string
		N string
	}{"sym", s.Name}, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("ast: hashing Symbol: %v", err))
	}
	return h
}

func (s Symbol) Equal(other AtomName) bool {
	o, ok := other.(Symbol)
	return ok && o.Name == s.Name
}

// QuotedLDLf wraps an LDLf subformula so it can appear as a propositional
// atom inside a delta-expansion result.
type QuotedLDLf struct {
	F LDLfFormula
}

func (QuotedLDLf) isAtomName() {}

func (q QuotedLDLf) Hash() uint64 {
	h, err := hashstructure.Hash(struct {
		T string
		H uint64
	}{"quoted", q.F.Hash()}, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("ast: hashing QuotedLDLf: %v", err))
	}
	return h
}

func (q QuotedLDLf) Equal(other AtomName) bool {
	o, ok := other.(QuotedLDLf)
	return ok && o.F.Equal(q.F)
}

func (q QuotedLDLf) String() string { return "«" + q.F.String() + "»" }
