package ast

import "strings"

type ldlfTrue struct{}

func (ldlfTrue) Kind() Kind        { return KindLDLfTrue }
func (ldlfTrue) Hash() uint64      { return structHash(KindLDLfTrue, nil) }
func (ldlfTrue) String() string    { return "tt" }
func (ldlfTrue) isLDLf()           {}
func (ldlfTrue) Equal(o Node) bool { _, ok := o.(ldlfTrue); return ok }

type ldlfFalse struct{}

func (ldlfFalse) Kind() Kind        { return KindLDLfFalse }
func (ldlfFalse) Hash() uint64      { return structHash(KindLDLfFalse, nil) }
func (ldlfFalse) String() string    { return "ff" }
func (ldlfFalse) isLDLf()           {}
func (ldlfFalse) Equal(o Node) bool { _, ok := o.(ldlfFalse); return ok }

type ldlfAnd struct {
	args []LDLfFormula
	hash uint64
}

func newLDLfAnd(args []LDLfFormula) *ldlfAnd {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &ldlfAnd{args: args, hash: structHash(KindLDLfAnd, sortedHashes(hashes))}
}

func (a *ldlfAnd) Kind() Kind          { return KindLDLfAnd }
func (a *ldlfAnd) Hash() uint64        { return a.hash }
func (*ldlfAnd) isLDLf()               {}
func (a *ldlfAnd) Args() []LDLfFormula { return a.args }
func (a *ldlfAnd) Equal(o Node) bool {
	b, ok := o.(*ldlfAnd)
	return ok && sameSet(a.args, b.args)
}
func (a *ldlfAnd) String() string {
	parts := make([]string, len(a.args))
	for i, x := range a.args {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " & ") + ")"
}

type ldlfOr struct {
	args []LDLfFormula
	hash uint64
}

func newLDLfOr(args []LDLfFormula) *ldlfOr {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &ldlfOr{args: args, hash: structHash(KindLDLfOr, sortedHashes(hashes))}
}

func (o *ldlfOr) Kind() Kind          { return KindLDLfOr }
func (o *ldlfOr) Hash() uint64        { return o.hash }
func (*ldlfOr) isLDLf()               {}
func (o *ldlfOr) Args() []LDLfFormula { return o.args }
func (o *ldlfOr) Equal(n Node) bool {
	b, ok := n.(*ldlfOr)
	return ok && sameSet(o.args, b.args)
}
func (o *ldlfOr) String() string {
	parts := make([]string, len(o.args))
	for i, x := range o.args {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

type ldlfNot struct {
	arg  LDLfFormula
	hash uint64
}

func newLDLfNot(arg LDLfFormula) *ldlfNot {
	return &ldlfNot{arg: arg, hash: structHash(KindLDLfNot, arg.Hash())}
}

func (n *ldlfNot) Kind() Kind        { return KindLDLfNot }
func (n *ldlfNot) Hash() uint64      { return n.hash }
func (*ldlfNot) isLDLf()             {}
func (n *ldlfNot) Arg() LDLfFormula  { return n.arg }
func (n *ldlfNot) Equal(o Node) bool {
	b, ok := o.(*ldlfNot)
	return ok && n.arg.Equal(b.arg)
}
func (n *ldlfNot) String() string { return "!" + n.arg.String() }

// ldlfDiamond is <r>body: body holds immediately after some r-run.
type ldlfDiamond struct {
	r    RegExp
	body LDLfFormula
	hash uint64
}

func newLDLfDiamond(r RegExp, body LDLfFormula) *ldlfDiamond {
	return &ldlfDiamond{r: r, body: body, hash: structHash(KindLDLfDiamond, [2]uint64{r.Hash(), body.Hash()})}
}

func (d *ldlfDiamond) Kind() Kind         { return KindLDLfDiamond }
func (d *ldlfDiamond) Hash() uint64       { return d.hash }
func (*ldlfDiamond) isLDLf()              {}
func (d *ldlfDiamond) Regex() RegExp      { return d.r }
func (d *ldlfDiamond) Body() LDLfFormula  { return d.body }
func (d *ldlfDiamond) Equal(o Node) bool {
	b, ok := o.(*ldlfDiamond)
	return ok && d.r.Equal(b.r) && d.body.Equal(b.body)
}
func (d *ldlfDiamond) String() string { return "<" + d.r.String() + ">" + d.body.String() }

// ldlfBox is [r]body: body holds after every r-run.
type ldlfBox struct {
	r    RegExp
	body LDLfFormula
	hash uint64
}

func newLDLfBox(r RegExp, body LDLfFormula) *ldlfBox {
	return &ldlfBox{r: r, body: body, hash: structHash(KindLDLfBox, [2]uint64{r.Hash(), body.Hash()})}
}

func (b *ldlfBox) Kind() Kind        { return KindLDLfBox }
func (b *ldlfBox) Hash() uint64      { return b.hash }
func (*ldlfBox) isLDLf()             {}
func (b *ldlfBox) Regex() RegExp     { return b.r }
func (b *ldlfBox) Body() LDLfFormula { return b.body }
func (b *ldlfBox) Equal(o Node) bool {
	c, ok := o.(*ldlfBox)
	return ok && b.r.Equal(c.r) && b.body.Equal(c.body)
}
func (b *ldlfBox) String() string { return "[" + b.r.String() + "]" + b.body.String() }

// ldlfF is the F-marker pushed under a diamond-star unfolding: it forbids
// re-entering the star without having consumed a letter. delta of an
// F-marked formula under epsilon is always False.
type ldlfF struct {
	arg  LDLfFormula
	hash uint64
}

func newLDLfF(arg LDLfFormula) *ldlfF {
	return &ldlfF{arg: arg, hash: structHash(KindLDLfF, arg.Hash())}
}

func (f *ldlfF) Kind() Kind        { return KindLDLfF }
func (f *ldlfF) Hash() uint64      { return f.hash }
func (*ldlfF) isLDLf()             {}
func (f *ldlfF) Arg() LDLfFormula  { return f.arg }
func (f *ldlfF) Equal(o Node) bool {
	b, ok := o.(*ldlfF)
	return ok && f.arg.Equal(b.arg)
}
func (f *ldlfF) String() string { return "F(" + f.arg.String() + ")" }

// ldlfT is the dual T-marker pushed under a box-star unfolding: delta under
// epsilon is always True.
type ldlfT struct {
	arg  LDLfFormula
	hash uint64
}

func newLDLfT(arg LDLfFormula) *ldlfT {
	return &ldlfT{arg: arg, hash: structHash(KindLDLfT, arg.Hash())}
}

func (t *ldlfT) Kind() Kind        { return KindLDLfT }
func (t *ldlfT) Hash() uint64      { return t.hash }
func (*ldlfT) isLDLf()             {}
func (t *ldlfT) Arg() LDLfFormula  { return t.arg }
func (t *ldlfT) Equal(o Node) bool {
	b, ok := o.(*ldlfT)
	return ok && t.arg.Equal(b.arg)
}
func (t *ldlfT) String() string { return "T(" + t.arg.String() + ")" }

// ldlfQ is a transparent quoting marker: delta(Q(phi), x) = delta(phi, x)
// under both a letter and epsilon. It exists so the compositional delta
// strategy (delta.Compositional) can memoize a quoted occurrence of a
// subformula distinctly from a bare occurrence of the same subformula,
// mirroring the marker bookkeeping in the original dfa_state/translate
// machinery without collapsing the two call sites onto one cache key.
type ldlfQ struct {
	arg  LDLfFormula
	hash uint64
}

func newLDLfQ(arg LDLfFormula) *ldlfQ {
	return &ldlfQ{arg: arg, hash: structHash(KindLDLfQ, arg.Hash())}
}

func (q *ldlfQ) Kind() Kind        { return KindLDLfQ }
func (q *ldlfQ) Hash() uint64      { return q.hash }
func (*ldlfQ) isLDLf()             {}
func (q *ldlfQ) Arg() LDLfFormula  { return q.arg }
func (q *ldlfQ) Equal(o Node) bool {
	b, ok := o.(*ldlfQ)
	return ok && q.arg.Equal(b.arg)
}
func (q *ldlfQ) String() string { return "Q(" + q.arg.String() + ")" }

type (
	LDLfAnd     = ldlfAnd
	LDLfOr      = ldlfOr
	LDLfNot     = ldlfNot
	LDLfDiamond = ldlfDiamond
	LDLfBox     = ldlfBox
	LDLfF       = ldlfF
	LDLfT       = ldlfT
	LDLfQ       = ldlfQ
)
