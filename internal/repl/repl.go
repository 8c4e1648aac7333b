// Package repl implements a line-oriented REPL for the pseudocode
// complexity analyzer. Grounded on the teacher's repl/repl.go buffered
// stdin loop; adapted to accumulate a whole program before parsing, since
// this grammar requires `begin`/`end` to each own a line — a single
// pasted line is never a complete program (see DESIGN.md).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bigoh/internal/analysis"
)

// Prompt is printed before each accumulation round, exactly as the
// teacher's PROMPT constant.
const Prompt = ">> "

// maxTraceStepsShown caps how many execution-trace rows the REPL echoes,
// keeping the interactive session readable for larger simulated n.
const maxTraceStepsShown = 8

// Start runs the REPL loop against in, writing to out. Each round
// accumulates pasted source lines until a blank line signals "run it",
// then analyzes the buffered program and prints a summary.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder

	fmt.Fprint(out, Prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if buf.Len() > 0 {
				runOne(out, buf.String())
				buf.Reset()
			}
			fmt.Fprint(out, Prompt)
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	if buf.Len() > 0 {
		runOne(out, buf.String())
	}
}

func runOne(out io.Writer, source string) {
	result, perrs, serrs := analysis.AnalyzeFull("<repl>", source, analysis.DefaultOptions())
	if len(perrs) > 0 || len(serrs) > 0 {
		for _, e := range serrs {
			fmt.Fprintf(out, "scan error %d:%d: %s\n", e.Line, e.Column, e.Message)
		}
		for _, e := range perrs {
			fmt.Fprintf(out, "parse error %d:%d: %s\n", e.Line, e.Column, e.Message)
		}
		return
	}

	fmt.Fprintf(out, "algorithm kind : %s\n", result.AlgorithmKind)
	fmt.Fprintf(out, "big-O          : O(%s)\n", result.BigO)
	fmt.Fprintf(out, "big-Omega      : Ω(%s)\n", result.BigOmega)
	if result.Theta != "" {
		fmt.Fprintf(out, "theta          : Θ(%s)\n", result.Theta)
	}
	fmt.Fprintf(out, "method used    : %s\n", result.MethodUsed)
	if result.RecurrenceEquation != "" {
		fmt.Fprintf(out, "recurrence     : %s\n", result.RecurrenceEquation)
	}

	if result.ExecutionTrace != nil {
		fmt.Fprintln(out, "execution trace:")
		steps := result.ExecutionTrace.Steps
		shown := steps
		truncated := false
		if len(shown) > maxTraceStepsShown {
			shown = shown[:maxTraceStepsShown]
			truncated = true
		}
		for _, s := range shown {
			fmt.Fprintf(out, "  step %2d  line %2d  %-12s cost=%s cumulative=%s\n",
				s.Step, s.Line, s.Kind, s.Cost, s.CumulativeCost)
		}
		if truncated {
			fmt.Fprintf(out, "  ... %d more steps\n", len(steps)-maxTraceStepsShown)
		}
	}

	for _, note := range result.Notes {
		fmt.Fprintf(out, "note: %s\n", note)
	}
}
