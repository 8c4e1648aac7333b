// Package errors implements the Rust-style diagnostic reporter shared by
// the CLI and the LSP server. Grounded on the teacher's internal/errors
// package (codes.go, reporter.go); the banded numbering convention is the
// teacher's own.
package errors

// Error code ranges:
// E01xx: parse errors (spec.md §7 ParseError)
// E02xx: semantic warnings (SemanticWarning)
// E03xx: unrecognized cost pattern / unsolvable recurrence
// E04xx: resource ceilings exceeded (ResourceExceeded)
const (
	CodeParseError           = "E0100"
	CodeSemanticWarning      = "E0200"
	CodeUnrecognizedPattern  = "E0300"
	CodeUnsolvableRecurrence = "E0301"
	CodeResourceExceeded     = "E0400"
)
