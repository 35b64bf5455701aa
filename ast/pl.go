package ast

import "strings"

type plTrue struct{}

func (plTrue) Kind() Kind            { return KindPLTrue }
func (plTrue) Hash() uint64          { return structHash(KindPLTrue, nil) }
func (plTrue) String() string        { return "true" }
func (plTrue) isPL()                 {}
func (t plTrue) Equal(o Node) bool   { _, ok := o.(plTrue); return ok }

type plFalse struct{}

func (plFalse) Kind() Kind          { return KindPLFalse }
func (plFalse) Hash() uint64        { return structHash(KindPLFalse, nil) }
func (plFalse) String() string      { return "false" }
func (plFalse) isPL()               {}
func (f plFalse) Equal(o Node) bool { _, ok := o.(plFalse); return ok }

type plAtom struct {
	name AtomName
	hash uint64
}

func newPLAtom(name AtomName) *plAtom {
	return &plAtom{name: name, hash: structHash(KindPLAtom, name.Hash())}
}

func (a *plAtom) Kind() Kind     { return KindPLAtom }
func (a *plAtom) Hash() uint64   { return a.hash }
func (a *plAtom) String() string { return a.name.String() }
func (*plAtom) isPL()            {}
func (a *plAtom) Equal(o Node) bool {
	b, ok := o.(*plAtom)
	return ok && a.name.Equal(b.name)
}

// Name exposes the atom's payload (plain symbol or quoted LDLf subformula).
func (a *plAtom) Name() AtomName { return a.name }

type plAnd struct {
	args []PLFormula
	hash uint64
}

func newPLAnd(args []PLFormula) *plAnd {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &plAnd{args: args, hash: structHash(KindPLAnd, sortedHashes(hashes))}
}

func (a *plAnd) Kind() Kind     { return KindPLAnd }
func (a *plAnd) Hash() uint64   { return a.hash }
func (*plAnd) isPL()            {}
func (a *plAnd) Args() []PLFormula { return a.args }
func (a *plAnd) Equal(o Node) bool {
	b, ok := o.(*plAnd)
	return ok && sameSet(a.args, b.args)
}
func (a *plAnd) String() string {
	parts := make([]string, len(a.args))
	for i, x := range a.args {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " & ") + ")"
}

type plOr struct {
	args []PLFormula
	hash uint64
}

func newPLOr(args []PLFormula) *plOr {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &plOr{args: args, hash: structHash(KindPLOr, sortedHashes(hashes))}
}

func (o *plOr) Kind() Kind        { return KindPLOr }
func (o *plOr) Hash() uint64      { return o.hash }
func (*plOr) isPL()               {}
func (o *plOr) Args() []PLFormula { return o.args }
func (o *plOr) Equal(n Node) bool {
	b, ok := n.(*plOr)
	return ok && sameSet(o.args, b.args)
}
func (o *plOr) String() string {
	parts := make([]string, len(o.args))
	for i, x := range o.args {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

type plNot struct {
	arg  PLFormula
	hash uint64
}

func newPLNot(arg PLFormula) *plNot {
	return &plNot{arg: arg, hash: structHash(KindPLNot, arg.Hash())}
}

func (n *plNot) Kind() Kind       { return KindPLNot }
func (n *plNot) Hash() uint64     { return n.hash }
func (*plNot) isPL()              {}
func (n *plNot) Arg() PLFormula   { return n.arg }
func (n *plNot) Equal(o Node) bool {
	b, ok := o.(*plNot)
	return ok && n.arg.Equal(b.arg)
}
func (n *plNot) String() string { return "!" + n.arg.String() }

// PLAnd/PLOr/PLNot/PLAtom are the exported accessor types consumers type-assert
// against; the concrete structs above stay unexported so construction is only
// ever possible through a Manager.
type (
	PLAnd  = plAnd
	PLOr   = plOr
	PLNot  = plNot
	PLAtom = plAtom
)
