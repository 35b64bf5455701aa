// Package pl implements propositional semantics over ast.PLFormula: atom
// extraction, evaluation under an interpretation, conjunctive normal form,
// and two model-enumeration strategies (naive powerset, and a small
// in-module DPLL-style backtracking solver without clause learning) that
// agree on all_models(f) per
// spec.md 8's Model-enumeration equivalence property.
package pl
