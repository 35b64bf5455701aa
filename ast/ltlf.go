package ast

import "strings"

type ltlfTrue struct{}

func (ltlfTrue) Kind() Kind        { return KindLTLfTrue }
func (ltlfTrue) Hash() uint64      { return structHash(KindLTLfTrue, nil) }
func (ltlfTrue) String() string    { return "true" }
func (ltlfTrue) isLTLf()           {}
func (ltlfTrue) Equal(o Node) bool { _, ok := o.(ltlfTrue); return ok }

type ltlfFalse struct{}

func (ltlfFalse) Kind() Kind        { return KindLTLfFalse }
func (ltlfFalse) Hash() uint64      { return structHash(KindLTLfFalse, nil) }
func (ltlfFalse) String() string    { return "false" }
func (ltlfFalse) isLTLf()           {}
func (ltlfFalse) Equal(o Node) bool { _, ok := o.(ltlfFalse); return ok }

type ltlfAtom struct {
	name Symbol
	hash uint64
}

func newLTLfAtom(name Symbol) *ltlfAtom {
	return &ltlfAtom{name: name, hash: structHash(KindLTLfAtom, name.Hash())}
}

func (a *ltlfAtom) Kind() Kind     { return KindLTLfAtom }
func (a *ltlfAtom) Hash() uint64   { return a.hash }
func (*ltlfAtom) isLTLf()          {}
func (a *ltlfAtom) Name() Symbol   { return a.name }
func (a *ltlfAtom) Equal(o Node) bool {
	b, ok := o.(*ltlfAtom)
	return ok && a.name.Equal(b.name)
}
func (a *ltlfAtom) String() string { return a.name.String() }

type ltlfAnd struct {
	args []LTLfFormula
	hash uint64
}

func newLTLfAnd(args []LTLfFormula) *ltlfAnd {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &ltlfAnd{args: args, hash: structHash(KindLTLfAnd, sortedHashes(hashes))}
}

func (a *ltlfAnd) Kind() Kind          { return KindLTLfAnd }
func (a *ltlfAnd) Hash() uint64        { return a.hash }
func (*ltlfAnd) isLTLf()               {}
func (a *ltlfAnd) Args() []LTLfFormula { return a.args }
func (a *ltlfAnd) Equal(o Node) bool {
	b, ok := o.(*ltlfAnd)
	return ok && sameSet(a.args, b.args)
}
func (a *ltlfAnd) String() string {
	parts := make([]string, len(a.args))
	for i, x := range a.args {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " & ") + ")"
}

type ltlfOr struct {
	args []LTLfFormula
	hash uint64
}

func newLTLfOr(args []LTLfFormula) *ltlfOr {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &ltlfOr{args: args, hash: structHash(KindLTLfOr, sortedHashes(hashes))}
}

func (o *ltlfOr) Kind() Kind          { return KindLTLfOr }
func (o *ltlfOr) Hash() uint64        { return o.hash }
func (*ltlfOr) isLTLf()               {}
func (o *ltlfOr) Args() []LTLfFormula { return o.args }
func (o *ltlfOr) Equal(n Node) bool {
	b, ok := n.(*ltlfOr)
	return ok && sameSet(o.args, b.args)
}
func (o *ltlfOr) String() string {
	parts := make([]string, len(o.args))
	for i, x := range o.args {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

type ltlfNot struct {
	arg  LTLfFormula
	hash uint64
}

func newLTLfNot(arg LTLfFormula) *ltlfNot {
	return &ltlfNot{arg: arg, hash: structHash(KindLTLfNot, arg.Hash())}
}

func (n *ltlfNot) Kind() Kind         { return KindLTLfNot }
func (n *ltlfNot) Hash() uint64       { return n.hash }
func (*ltlfNot) isLTLf()              {}
func (n *ltlfNot) Arg() LTLfFormula   { return n.arg }
func (n *ltlfNot) Equal(o Node) bool {
	b, ok := o.(*ltlfNot)
	return ok && n.arg.Equal(b.arg)
}
func (n *ltlfNot) String() string { return "!" + n.arg.String() }

type ltlfUnary struct {
	kind Kind
	arg  LTLfFormula
	hash uint64
}

func newLTLfUnary(kind Kind, arg LTLfFormula) *ltlfUnary {
	return &ltlfUnary{kind: kind, arg: arg, hash: structHash(kind, arg.Hash())}
}

func (u *ltlfUnary) Kind() Kind        { return u.kind }
func (u *ltlfUnary) Hash() uint64      { return u.hash }
func (*ltlfUnary) isLTLf()             {}
func (u *ltlfUnary) Arg() LTLfFormula  { return u.arg }
func (u *ltlfUnary) Equal(o Node) bool {
	b, ok := o.(*ltlfUnary)
	return ok && u.kind == b.kind && u.arg.Equal(b.arg)
}
func (u *ltlfUnary) String() string {
	sym := map[Kind]string{
		KindLTLfNext:       "X",
		KindLTLfWeakNext:   "WX",
		KindLTLfEventually: "F",
		KindLTLfAlways:     "G",
	}[u.kind]
	return sym + "(" + u.arg.String() + ")"
}

type ltlfBinary struct {
	kind        Kind
	left, right LTLfFormula
	hash        uint64
}

func newLTLfBinary(kind Kind, left, right LTLfFormula) *ltlfBinary {
	return &ltlfBinary{kind: kind, left: left, right: right, hash: structHash(kind, [2]uint64{left.Hash(), right.Hash()})}
}

func (b *ltlfBinary) Kind() Kind         { return b.kind }
func (b *ltlfBinary) Hash() uint64       { return b.hash }
func (*ltlfBinary) isLTLf()              {}
func (b *ltlfBinary) Left() LTLfFormula  { return b.left }
func (b *ltlfBinary) Right() LTLfFormula { return b.right }
func (b *ltlfBinary) Equal(o Node) bool {
	c, ok := o.(*ltlfBinary)
	return ok && b.kind == c.kind && b.left.Equal(c.left) && b.right.Equal(c.right)
}
func (b *ltlfBinary) String() string {
	sym := map[Kind]string{KindLTLfUntil: "U", KindLTLfRelease: "R"}[b.kind]
	return "(" + b.left.String() + " " + sym + " " + b.right.String() + ")"
}

type (
	LTLfAnd    = ltlfAnd
	LTLfOr     = ltlfOr
	LTLfNot    = ltlfNot
	LTLfUnary  = ltlfUnary
	LTLfBinary = ltlfBinary
	LTLfAtom   = ltlfAtom
)
