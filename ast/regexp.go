package ast

import "strings"

// regPropositional is a propositional-guard atomic program: "take a step
// satisfying pl".
type regPropositional struct {
	pl   PLFormula
	hash uint64
}

func newRegPropositional(pl PLFormula) *regPropositional {
	return &regPropositional{pl: pl, hash: structHash(KindRegPropositional, pl.Hash())}
}

func (r *regPropositional) Kind() Kind       { return KindRegPropositional }
func (r *regPropositional) Hash() uint64     { return r.hash }
func (*regPropositional) isRegExp()          {}
func (r *regPropositional) PL() PLFormula    { return r.pl }
func (r *regPropositional) Equal(o Node) bool {
	b, ok := o.(*regPropositional)
	return ok && r.pl.Equal(b.pl)
}
func (r *regPropositional) String() string { return r.pl.String() }

// regTest is an LDLf test program "ldlf?": passable with no input consumed
// iff ldlf holds at the current position.
type regTest struct {
	ldlf LDLfFormula
	hash uint64
}

func newRegTest(f LDLfFormula) *regTest {
	return &regTest{ldlf: f, hash: structHash(KindRegTest, f.Hash())}
}

func (t *regTest) Kind() Kind          { return KindRegTest }
func (t *regTest) Hash() uint64        { return t.hash }
func (*regTest) isRegExp()             {}
func (t *regTest) LDLf() LDLfFormula   { return t.ldlf }
func (t *regTest) Equal(o Node) bool {
	b, ok := o.(*regTest)
	return ok && t.ldlf.Equal(b.ldlf)
}
func (t *regTest) String() string { return t.ldlf.String() + "?" }

// regUnion is r1 + r2 + ... (set of alternative programs).
type regUnion struct {
	args []RegExp
	hash uint64
}

func newRegUnion(args []RegExp) *regUnion {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &regUnion{args: args, hash: structHash(KindRegUnion, sortedHashes(hashes))}
}

func (u *regUnion) Kind() Kind      { return KindRegUnion }
func (u *regUnion) Hash() uint64    { return u.hash }
func (*regUnion) isRegExp()         {}
func (u *regUnion) Args() []RegExp { return u.args }
func (u *regUnion) Equal(o Node) bool {
	b, ok := o.(*regUnion)
	return ok && sameSet(u.args, b.args)
}
func (u *regUnion) String() string {
	parts := make([]string, len(u.args))
	for i, x := range u.args {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

// regSequence is r1;r2;...;rn (order matters, a vector not a set).
type regSequence struct {
	args []RegExp
	hash uint64
}

func newRegSequence(args []RegExp) *regSequence {
	hashes := make([]uint64, len(args))
	for i, a := range args {
		hashes[i] = a.Hash()
	}
	return &regSequence{args: args, hash: structHash(KindRegSequence, hashes)}
}

func (s *regSequence) Kind() Kind      { return KindRegSequence }
func (s *regSequence) Hash() uint64    { return s.hash }
func (*regSequence) isRegExp()         {}
func (s *regSequence) Args() []RegExp { return s.args }
func (s *regSequence) Equal(o Node) bool {
	b, ok := o.(*regSequence)
	return ok && sameSeq(s.args, b.args)
}
func (s *regSequence) String() string {
	parts := make([]string, len(s.args))
	for i, x := range s.args {
		parts[i] = x.String()
	}
	return strings.Join(parts, ";")
}

// regStar is r* (Kleene star, zero or more repetitions of r).
type regStar struct {
	arg  RegExp
	hash uint64
}

func newRegStar(arg RegExp) *regStar {
	return &regStar{arg: arg, hash: structHash(KindRegStar, arg.Hash())}
}

func (s *regStar) Kind() Kind      { return KindRegStar }
func (s *regStar) Hash() uint64    { return s.hash }
func (*regStar) isRegExp()         {}
func (s *regStar) Arg() RegExp     { return s.arg }
func (s *regStar) Equal(o Node) bool {
	b, ok := o.(*regStar)
	return ok && s.arg.Equal(b.arg)
}
func (s *regStar) String() string { return s.arg.String() + "*" }

type (
	RegPropositional = regPropositional
	RegTest          = regTest
	RegUnion         = regUnion
	RegSequence      = regSequence
	RegStar          = regStar
)
