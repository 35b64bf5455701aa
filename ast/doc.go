// Package ast defines the hash-consed, immutable abstract syntax for
// propositional logic (PL), Linear Dynamic Logic on finite traces (LDLf),
// Linear Temporal Logic on finite traces (LTLf), and the regular-expression
// programs (RegExp) that LDLf diamonds and boxes range over.
//
// Every node is produced by a Manager and is globally unique by structural
// shape within that Manager: two calls that build the same shape return the
// same pointer, so pointer equality implies semantic equality. Callers never
// construct node structs directly — all construction goes through
// Manager.MakeXxx factories, which apply the algebraic simplifications
// described on each factory (AC-flattening of And/Or, absorption,
// annihilation, double-negation elimination, Sequence/Union flattening).
//
// Node identity is maintained with a hash-cons table: each node precomputes
// a structural hash (mitchellh/hashstructure/v2 over its kind tag and its
// children's own hashes, not a full subtree walk) and the Manager interns
// nodes by hash bucket plus an Equal check to resolve collisions. A bounded
// LRU sits in front of the authoritative map so repeated construction of the
// same shape during delta expansion's AST churn skips the slow path; a cache
// miss always falls through to the authoritative table before inserting, so
// eviction from the LRU never breaks uniqueness.
package ast
