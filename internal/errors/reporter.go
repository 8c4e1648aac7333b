package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a diagnostic (teacher: internal/errors.ErrorLevel).
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
)

// Diagnostic is a structured, position-carrying message. It is the shared
// shape behind ParseError, SemanticIssue and analyzer notes so one
// Reporter can render all three.
type Diagnostic struct {
	Level   Level
	Code    string
	Message string
	Line    int
	Column  int
}

// Reporter renders Diagnostics as Rust-style caret diagnostics, exactly as
// the teacher's ErrorReporter does for its own parse errors.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

func (r *Reporter) levelColor(l Level) *color.Color {
	switch l {
	case Error:
		return color.New(color.FgRed, color.Bold)
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

// Format renders one diagnostic as a multi-line caret-style string.
func (r *Reporter) Format(d Diagnostic) string {
	var b strings.Builder
	lc := r.levelColor(d.Level)
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", lc.Sprint(string(d.Level)), d.Code, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", lc.Sprint(string(d.Level)), d.Message)
	}

	fmt.Fprintf(&b, " %s %s:%d:%d\n", dim("-->"), r.filename, d.Line, d.Column)
	fmt.Fprintf(&b, " %s\n", dim("│"))

	if d.Line >= 1 && d.Line <= len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%d", d.Line)), dim("│"), r.lines[d.Line-1])
		caret := strings.Repeat(" ", max(d.Column-1, 0)) + "^"
		fmt.Fprintf(&b, " %s %s\n", dim("│"), lc.Sprint(caret))
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FormatAll renders a batch of diagnostics, one block each.
func (r *Reporter) FormatAll(ds []Diagnostic) string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(r.Format(d))
		b.WriteString("\n")
	}
	return b.String()
}
