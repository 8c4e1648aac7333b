package parser

import (
	"strings"

	"bigoh/internal/ast"
	"bigoh/internal/lexer"
)

// ParseSource lexes and parses a complete source file, then checks the
// dialect's structural line invariants: every 'begin' and 'end' must
// occupy its own line (spec.md §3 "Lifecycle" / §4.1 layout rules). Errors
// from every stage are collected rather than raised so callers always get
// a best-effort Program alongside the full diagnostic list.
func ParseSource(filename, source string) (*ast.Program, []ParseError, []lexer.ScanError) {
	scanner := lexer.NewScanner(source)
	tokens := scanner.ScanTokens()

	p := NewParser(filename, tokens)
	prog := p.ParseProgram()

	errs := append([]ParseError{}, p.Errors()...)
	errs = append(errs, checkBlockLayout(filename, source, tokens)...)

	return prog, errs, scanner.Errors()
}

// checkBlockLayout verifies that every BEGIN/END token is alone on its
// source line, aside from surrounding whitespace.
func checkBlockLayout(filename, source string, tokens []lexer.Token) []ParseError {
	lines := strings.Split(source, "\n")
	var errs []ParseError

	for _, tok := range tokens {
		if tok.Type != lexer.BEGIN && tok.Type != lexer.END {
			continue
		}
		if tok.Line < 1 || tok.Line > len(lines) {
			continue
		}
		line := lines[tok.Line-1]
		// Comments are dropped lexically, so they don't count against the
		// one-token-per-line rule.
		if i := strings.IndexRune(line, '►'); i >= 0 {
			line = line[:i]
		}
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != tok.Lexeme {
			errs = append(errs, ParseError{
				Message: "'" + tok.Lexeme + "' must occupy its own line",
				Line:    tok.Line,
				Column:  tok.Column,
			})
		}
	}
	return errs
}
