package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bigoh/internal/analysis"
	"bigoh/internal/lexer"
	"bigoh/internal/parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics,
// exactly mirroring the teacher's ConvertParseErrors (see DESIGN.md).
func ConvertParseErrors(errs []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for _, e := range errs {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(max0(e.Line - 1)), Character: uint32(max0(e.Column - 1))},
				End:   protocol.Position{Line: uint32(max0(e.Line - 1)), Character: uint32(max0(e.Column + 5))},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("bigoh-parser"),
			Message:  e.Message,
		})
	}
	return diagnostics
}

// ConvertScanErrors transforms lexical errors into LSP diagnostics,
// exactly mirroring the teacher's ConvertScanErrors (see DESIGN.md).
func ConvertScanErrors(errs []lexer.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for _, e := range errs {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(max0(e.Line - 1)), Character: uint32(max0(e.Column - 1))},
				End:   protocol.Position{Line: uint32(max0(e.Line - 1)), Character: uint32(max0(e.Column + 3))},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("bigoh-scanner"),
			Message:  e.Message,
		})
	}
	return diagnostics
}

// ConvertSemanticIssues turns semantic-pass findings into diagnostics at
// Warning or Information severity — they never block analysis (spec.md
// §7 SemanticWarning "non-fatal").
func ConvertSemanticIssues(issues []analysis.SemanticIssue) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for _, iss := range issues {
		sev := protocol.DiagnosticSeverityWarning
		if iss.Severity == "note" {
			sev = protocol.DiagnosticSeverityInformation
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(max0(iss.Pos.Line - 1)), Character: uint32(max0(iss.Pos.Column - 1))},
				End:   protocol.Position{Line: uint32(max0(iss.Pos.Line - 1)), Character: uint32(max0(iss.Pos.Column + 3))},
			},
			Severity: ptrSeverity(sev),
			Source:   ptrString("bigoh-semantic"),
			Message:  iss.Message,
		})
	}
	return diagnostics
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
