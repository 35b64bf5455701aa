// Package symbolicdfa builds the final bit-encoded symbolic DFA from an
// automaton.ExploreResult: states are numbered 0..N-1 and represented as
// ceil(log2(N)) boolean bits, and each bit of the successor function is one
// bdd.Node over the merged (state-bit, atom-bit) variable space, per
// spec.md 5. Config carries the tunables a sealed BDD collaborator exposes
// (reordering, cache/unique-table sizing, a state-bit budget), decoded via
// mapstructure the way the rest of this module decodes configuration.
// Minimize implements the supplemented DFA-minimization operation
// original_source's automaton layer performs before emitting a final
// automaton.
package symbolicdfa
