// Package lydia compiles LDLf/LTLf formulas into symbolic finite-state
// automata.
//
// A Session pairs an ast.Manager with a bdd.Manager and exposes the two
// operations a caller needs: TranslateLDLf and TranslateLTLf. Both run the
// same pipeline underneath — normalize to NNF (LTLf is additionally
// embedded into LDLf first), explore the formula's reachable NFA/DFA
// states via automaton.Explore (naive, SAT-backed, or symbolic), optionally
// minimize the result, and build a bit-encoded symbolicdfa.DFA from it.
//
// Parsing concrete LDLf/LTLf syntax into ast formulas, DOT/Graphviz export
// of the resulting automaton, and MONA binary interop are out of scope:
// ExportDFA and MonaCodec in collaborators.go are the seams a caller wires
// a concrete implementation into instead.
package lydia
