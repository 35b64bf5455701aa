// Package normalize implements the semantic-preserving rewrites that put a
// formula into a canonical shape before delta expansion: negation normal
// form (NNF) for both PL and LDLf, the LTLf-to-LDLf embedding, and (via the
// pl package) conjunctive normal form for the propositional fragment.
package normalize
