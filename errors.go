package lydia

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// ErrUnsupportedConstruct names the unsupported-construct error kind. No
// function in this module returns it: the delta and normalize stages panic
// when they meet a node shape none of their cases recognizes.
var ErrUnsupportedConstruct = errors.New("lydia: unsupported construct")

// ErrCancelled wraps a context cancellation or deadline surfaced from the
// automaton.Explore variants (see wrapExploreErr).
var ErrCancelled = errors.New("lydia: translation cancelled")

// ErrNoCollaborator is returned by the ExportDFA/ExportMona convenience
// methods when a Session has no DFAWriter/MonaCodec configured.
var ErrNoCollaborator = errors.New("lydia: no collaborator configured")

// joinErrors aggregates non-nil errors with go-multierror, returning nil if
// none are non-nil. Used by callers that fan out several independent checks
// (e.g. validating a batch of formulas) and want every failure reported at
// once rather than stopping at the first.
func joinErrors(errs ...error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
