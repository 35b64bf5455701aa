package lydia

import (
	"io"

	"github.com/whitemech/lydia-go/symbolicdfa"
)

// DFAWriter renders a compiled DFA to w in some caller-chosen concrete
// format (DOT/Graphviz, for instance). lydia itself has no renderer; a
// caller that needs one implements DFAWriter and passes it to
// Session.WithCollaborators, then calls Session.ExportDFA.
type DFAWriter interface {
	WriteDFA(w io.Writer, dfa *symbolicdfa.DFA) error
}

// MonaCodec encodes/decodes a DFA in MONA's binary automaton format. lydia
// does not speak MONA's wire format directly; a caller that needs
// interop with the MONA tool implements MonaCodec.
type MonaCodec interface {
	EncodeMona(w io.Writer, dfa *symbolicdfa.DFA) error
}

// ExportDFA renders dfa via the Session's configured DFAWriter.
func (s *Session) ExportDFA(w io.Writer, dfa *symbolicdfa.DFA) error {
	if s.dfaWriter == nil {
		return ErrNoCollaborator
	}
	return s.dfaWriter.WriteDFA(w, dfa)
}

// ExportMona encodes dfa via the Session's configured MonaCodec.
func (s *Session) ExportMona(w io.Writer, dfa *symbolicdfa.DFA) error {
	if s.monaCodec == nil {
		return ErrNoCollaborator
	}
	return s.monaCodec.EncodeMona(w, dfa)
}
