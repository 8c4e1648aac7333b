// Package main implements bigoh-cli: read a pseudocode file, run the
// complexity analyzer, and print the result. Grounded on
// cmd/kanso-cli/main.go's control flow (read file → parse → report-or-print
// → colored final status line) — see DESIGN.md.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"bigoh/internal/analysis"
	"bigoh/internal/ast"
	"bigoh/internal/errors"
	"bigoh/internal/lexer"
	"bigoh/internal/parser"
	"bigoh/internal/repl"
)

func main() {
	fmtFlag := flag.Bool("fmt", false, "print the canonicalized pseudocode instead of the analysis JSON")
	replFlag := flag.Bool("repl", false, "read programs interactively from stdin instead of a file")
	objective := flag.String("objective", "worst", "which bound to headline: worst, best, or avg (mirrors the orchestrator collaborator's objective parameter)")
	flag.Parse()

	if *replFlag {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: bigoh-cli [-fmt] [-repl] [-objective worst|best|avg] <file.pseudo>")
		os.Exit(1)
	}

	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		os.Exit(1)
	}
	text := string(source)

	if *fmtFlag {
		prog, perrs, serrs := analysis.Parse(path, text)
		if len(perrs) > 0 || len(serrs) > 0 {
			reportErrors(path, text, perrs, serrs)
			os.Exit(1)
		}
		fmt.Print(ast.Print(prog))
		return
	}

	result, perrs, serrs := analysis.AnalyzeFull(path, text, analysis.DefaultOptions())
	if len(perrs) > 0 || len(serrs) > 0 {
		reportErrors(path, text, perrs, serrs)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		color.Red("failed to marshal analysis result: %s", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	headline := result.BigO
	switch *objective {
	case "best":
		headline = result.BigOmega
	case "avg":
		if result.Theta != "" {
			headline = result.Theta
		}
	}

	color.Green("✅ Analyzed %s (%s): %s-case is O(%s)", path, result.AlgorithmKind, *objective, headline)
}

// reportErrors prints caret-style diagnostics for every parse/scan error
// collected, using the same Rust-style Reporter internal/errors provides
// (see SPEC_FULL.md "4.6 Diagnostics reporter").
func reportErrors(path, source string, perrs []parser.ParseError, serrs []lexer.ScanError) {
	reporter := errors.NewReporter(path, source)
	for _, e := range serrs {
		fmt.Print(reporter.Format(errors.Diagnostic{
			Level: errors.Error, Code: errors.CodeParseError,
			Message: e.Message, Line: e.Line, Column: e.Column,
		}))
	}
	for _, e := range perrs {
		fmt.Print(reporter.Format(errors.Diagnostic{
			Level: errors.Error, Code: errors.CodeParseError,
			Message: e.Message, Line: e.Line, Column: e.Column,
		}))
	}
	color.Red("❌ failed to analyze %s", path)
}
