package pl

import "errors"

// ErrTooManyAtoms is returned by AllModelsNaive when the formula's atom set
// is too large for powerset enumeration (spec.md 4.5's |atoms| < 64 assert,
// surfaced here as a recoverable error instead of a hard assert so callers
// can retry with AllModelsSAT or delta.Symbolic).
var ErrTooManyAtoms = errors.New("pl: atom count exceeds naive enumeration limit (64)")
