package lydia

import (
	"github.com/hashicorp/go-hclog"

	"github.com/whitemech/lydia-go/ast"
	"github.com/whitemech/lydia-go/bdd"
)

// Session owns the hash-consing managers a translation needs and the
// configuration/logger that govern it. A Session is not safe for
// concurrent TranslateLDLf/TranslateLTLf calls that build distinct
// formulas on the same managers; the managers themselves (ast.Manager,
// bdd.Manager) are internally locked.
type Session struct {
	AST    *ast.Manager
	BDD    *bdd.Manager
	Config Config
	logger hclog.Logger

	dfaWriter DFAWriter
	monaCodec MonaCodec
}

// NewSession creates a Session with fresh ast/bdd managers (the ast.Manager
// with its default cache size, the bdd.Manager sized by cfg.DFA.CacheSlots),
// and logger defaulting to a no-op logger when nil.
func NewSession(cfg Config, logger hclog.Logger) *Session {
	if logger == nil {
		logger = defaultLogger()
	}
	return &Session{
		AST:    ast.NewManager(0),
		BDD:    bdd.NewManager(cfg.DFA.CacheSlots),
		Config: cfg,
		logger: logger,
	}
}

// Logger returns the Session's logger.
func (s *Session) Logger() hclog.Logger { return s.logger }

// WithCollaborators attaches the optional DFAWriter/MonaCodec seams used by
// ExportDFA/ExportMona. Either may be nil.
func (s *Session) WithCollaborators(w DFAWriter, c MonaCodec) *Session {
	s.dfaWriter = w
	s.monaCodec = c
	return s
}
