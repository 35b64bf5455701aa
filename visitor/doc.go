// Package visitor provides generic double-dispatch helpers over the closed
// ast node variants. Go has neither virtual methods keyed on a second
// argument's dynamic type nor sum types, so "double dispatch" here is a
// single exhaustive type switch per logic family wrapped in a generic Walk
// function; callers supply a struct implementing the small per-family
// interface instead of hand-rolling a switch at every call site. There is no
// extensibility requirement beyond the grammar in the AST package, so a
// closed type switch is the right tool — see the design note on replacing
// visitor double dispatch with a pattern match.
package visitor
