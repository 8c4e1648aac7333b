// Package semantic implements the single traversal that fills AST
// defaults and flags surface-level issues before cost analysis, mirroring
// the teacher's internal/semantic.Analyzer: collect issues as values,
// never panic, thread an explicit context instead of touching package
// globals (spec.md §4.2, §9 "no global state").
package semantic

import "bigoh/internal/ast"

// Severity mirrors the teacher's errors.Level so a SemanticIssue can feed
// the same Reporter as a ParseError.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Issue is a single semantic-pass finding (spec.md §4.2 "issues").
type Issue struct {
	Severity Severity
	Message  string
	Pos      ast.Position
}
