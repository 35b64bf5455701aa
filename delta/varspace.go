package delta

import "github.com/whitemech/lydia-go/ast"

// VarSpace assigns stable BDD variable indices to the two blocks the
// symbolic and compositional strategies share a BDD manager over: the
// fixed block of propositional atoms (known up front, one per letter
// position), and a block of quoted-subformula variables that grows lazily
// as delta discovers new successor-state conjuncts. Keeping both blocks in
// one VarSpace is what lets a single bdd.Manager represent delta's result
// as a function of "the current letter" rather than one BDD per concrete
// interpretation.
type VarSpace struct {
	atom2id map[ast.Symbol]int
	sub2id  map[ast.LDLfFormula]int
	next    int
}

// NewVarSpace reserves the first len(atoms) variable indices for atoms, in
// the given order, so callers can predict the atom block's layout.
func NewVarSpace(atoms []ast.Symbol) *VarSpace {
	vs := &VarSpace{
		atom2id: make(map[ast.Symbol]int, len(atoms)),
		sub2id:  make(map[ast.LDLfFormula]int),
	}
	for _, a := range atoms {
		vs.atom2id[a] = vs.next
		vs.next++
	}
	return vs
}

// AtomVar returns s's variable index, assigning one if s was not part of
// the construction-time atom list.
func (vs *VarSpace) AtomVar(s ast.Symbol) int {
	if id, ok := vs.atom2id[s]; ok {
		return id
	}
	id := vs.next
	vs.next++
	vs.atom2id[s] = id
	return id
}

// SubVar returns f's quoted-subformula variable index, assigning the next
// free index the first time f is seen. Safe across calls because f is
// always a hash-consed ast.Manager pointer: the same logical subformula
// always arrives as the same Go pointer.
func (vs *VarSpace) SubVar(f ast.LDLfFormula) int {
	if id, ok := vs.sub2id[f]; ok {
		return id
	}
	id := vs.next
	vs.next++
	vs.sub2id[f] = id
	return id
}

// AtomSymbol reverse-looks-up the Symbol assigned to variable id, the atom
// counterpart of Subformula.
func (vs *VarSpace) AtomSymbol(id int) (ast.Symbol, bool) {
	for s, v := range vs.atom2id {
		if v == id {
			return s, true
		}
	}
	return ast.Symbol{}, false
}

// Subformula reverse-looks-up the LDLf formula quoted at variable id, used
// to read a successor NFA state's members off an enumerated cube. ok is
// false for a variable that indexes an atom rather than a subformula.
func (vs *VarSpace) Subformula(id int) (f ast.LDLfFormula, ok bool) {
	for k, v := range vs.sub2id {
		if v == id {
			return k, true
		}
	}
	return nil, false
}

// AtomVars returns the set of variable indices reserved for atoms, useful
// as the "relevant" set passed to bdd.ProjectCubes when a caller wants to
// read off only the interpretation half of a cube.
func (vs *VarSpace) AtomVars() map[int]struct{} {
	out := make(map[int]struct{}, len(vs.atom2id))
	for _, id := range vs.atom2id {
		out[id] = struct{}{}
	}
	return out
}

// SubVars returns the set of variable indices currently assigned to quoted
// subformulas, the dual of AtomVars.
func (vs *VarSpace) SubVars() map[int]struct{} {
	out := make(map[int]struct{}, len(vs.sub2id))
	for _, id := range vs.sub2id {
		out[id] = struct{}{}
	}
	return out
}
