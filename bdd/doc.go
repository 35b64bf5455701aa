// Package bdd implements a minimal reduced-ordered Binary Decision Diagram
// manager: the sealed collaborator described in spec.md 9 behind the
// mk_var/mk_one/mk_zero/and/or/not/eval/enumerate_cubes/enumerate_primes/
// compose interface. No third-party BDD package appears anywhere in the
// example corpus (see DESIGN.md for the standard-library justification), so
// this is an in-module ITE-based implementation with an apply-operation
// cache backed by hashicorp/golang-lru/v2, the same caching library
// ast.Manager puts in front of its unique table.
//
// Variables are plain non-negative ints; callers (symbolicdfa, delta) own
// the meaning of each index. delta.VarSpace numbers atom bits from 0 and
// then lazily-grown quoted-subformula bits, with no state bits; symbolicdfa
// numbers state bits from 0 and then atom bits. The two layouts are separate
// and no single variable space holds state, atom and subformula bits
// together. The manager only knows variable ordering (lower index nearer the
// root).
package bdd
