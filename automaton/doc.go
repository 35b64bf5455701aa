// Package automaton builds the nondeterministic-then-deterministic
// automaton that sits between an LDLf formula and its symbolic DFA. An
// NFAState is a single conjunctive macro-formula; a DFAState is the
// disjunctive set of NFAStates reachable along some path, the standard
// subset-construction state for formula-to-automaton translation. Explore
// performs the naive breadth-first subset construction (one edge per
// concrete letter, consuming delta.Naive and a pl model enumerator);
// ExploreSymbolic performs the same construction compressed over letter
// groups via delta.Symbolic and bdd cube enumeration; ExploreSAT is Explore
// parameterized with the DPLL-based model enumerator for formulas whose
// per-letter delta result has too many quoted atoms for brute-force
// enumeration.
package automaton
