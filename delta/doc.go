// Package delta implements the one-step expansion function δ described in
// spec.md 4.4: given an LDLf formula and either a propositional
// interpretation or the end-of-trace marker epsilon, it produces the
// propositional formula over quoted LDLf subformulas whose models name the
// NFA states reachable in one step. Three strategies share the same
// contract: Naive builds an explicit ast.PLFormula tree consumed by the pl
// package's model enumeration; Symbolic builds the same function directly
// as a bdd.Node over a merged variable space; Compositional builds BDDs
// bottom-up with memoization keyed by AST handle pointer, safe only because
// ast.Manager hash-conses (pointer identity implies semantic identity).
package delta
