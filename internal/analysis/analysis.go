// Package analysis implements spec.md §6's four core entry points
// (Parse, Semantic, Analyze, AnalyzeFull) and the AnalysisResult JSON
// contract they produce. It is the seam every external collaborator
// (HTTP transport, orchestrator, LSP server, CLI, REPL) calls through —
// none of them reach into internal/parser, internal/semantic,
// internal/iterative, or internal/recursive directly.
package analysis

import (
	"fmt"

	"bigoh/internal/ast"
	"bigoh/internal/costir"
	"bigoh/internal/errors"
	"bigoh/internal/iterative"
	"bigoh/internal/lexer"
	"bigoh/internal/parser"
	"bigoh/internal/recursive"
	"bigoh/internal/semantic"
)

// SemanticIssue is the public name for a semantic-pass finding (spec.md
// §4.2 "issues"); it is exactly internal/semantic.Issue; analysis never
// reshapes it because its consumers (AnalyzeFull's note formatting and the
// LSP diagnostics converter) read the same Severity/Message/Pos fields.
type SemanticIssue = semantic.Issue

// Options carries every tunable the engine needs, explicitly, rather than
// through package globals (spec.md §9 "no global state"). Zero value is
// meaningful: DefaultOptions fills in the spec's stated ceilings.
type Options struct {
	// MaxASTDepth rejects programs whose control-flow nesting exceeds this
	// depth (spec.md §5 "AST depth ≤ 64, reject deeper, as a safety bound").
	MaxASTDepth int
	// MaxSimplifySteps bounds the cost-IR size used as a proxy for
	// simplification work (spec.md §5 "IR simplification steps ≤ 10,000").
	MaxSimplifySteps int
}

// DefaultOptions returns the ceilings spec.md §5 names.
func DefaultOptions() Options {
	return Options{MaxASTDepth: 64, MaxSimplifySteps: 10000}
}

func (o Options) withDefaults() Options {
	if o.MaxASTDepth <= 0 {
		o.MaxASTDepth = 64
	}
	if o.MaxSimplifySteps <= 0 {
		o.MaxSimplifySteps = 10000
	}
	return o
}

// LineResult is one entry of Result.Lines (spec.md §6 "lines").
type LineResult struct {
	Line         int            `json:"line"`
	Kind         string         `json:"kind"`
	Multiplier   map[string]any `json:"multiplier"`
	MultiplierAS string         `json:"multiplier_ascii"`
	CostWorst    map[string]any `json:"cost_worst"`
	CostBest     map[string]any `json:"cost_best"`
	CostAvg      map[string]any `json:"cost_avg"`
	CostWorstAS  string         `json:"cost_worst_ascii"`
	CostBestAS   string         `json:"cost_best_ascii"`
	CostAvgAS    string         `json:"cost_avg_ascii"`
}

// SummationPair is the LaTeX/text pair spec.md §6 attaches to each of
// worst/best/avg.
type SummationPair struct {
	LaTeX string `json:"latex"`
	Text  string `json:"text"`
}

// StrongBoundsResult mirrors internal/iterative.StrongBounds for JSON
// output (spec.md §6 "strong_bounds").
type StrongBoundsResult struct {
	Formula      string               `json:"formula"`
	Terms        []iterative.TermInfo `json:"terms"`
	DominantTerm string               `json:"dominant_term"`
	Constant     string               `json:"constant"`
}

// ExecutionTraceResult mirrors internal/iterative.ExecutionTrace for JSON
// output (spec.md §6 "execution_trace").
type ExecutionTraceResult struct {
	Steps             []iterative.TraceStep `json:"steps"`
	TotalIterations   int                   `json:"total_iterations"`
	MaxDepth          int                   `json:"max_depth"`
	VariablesTracked  []string              `json:"variables_tracked"`
	ComplexityFormula string                `json:"complexity_formula"`
	Description       string                `json:"description"`
}

// Result is spec.md §6's AnalysisResult shape.
type Result struct {
	NormalizedCode     string                `json:"normalized_code"`
	AlgorithmKind      string                `json:"algorithm_kind"`
	BigO               string                `json:"big_o"`
	BigOmega           string                `json:"big_omega"`
	Theta              string                `json:"theta,omitempty"`
	MethodUsed         string                `json:"method_used"`
	IRWorst            map[string]any        `json:"ir_worst,omitempty"`
	IRBest             map[string]any        `json:"ir_best,omitempty"`
	IRAvg              map[string]any        `json:"ir_avg,omitempty"`
	Lines              []LineResult          `json:"lines,omitempty"`
	Summations         *SummationsResult     `json:"summations,omitempty"`
	StrongBounds       *StrongBoundsResult   `json:"strong_bounds,omitempty"`
	RecurrenceEquation string                `json:"recurrence_equation,omitempty"`
	ExecutionTrace     *ExecutionTraceResult `json:"execution_trace,omitempty"`
	Notes              []string              `json:"notes"`
}

// SummationsResult is spec.md §6's "summations" object.
type SummationsResult struct {
	Worst SummationPair `json:"worst"`
	Best  SummationPair `json:"best"`
	Avg   SummationPair `json:"avg"`
}

// Parse lexes and parses pseudocode text (spec.md §6 "parse(text)").
func Parse(filename, text string) (*ast.Program, []parser.ParseError, []lexer.ScanError) {
	return parser.ParseSource(filename, text)
}

// Semantic runs the single semantic-normalization traversal (spec.md §6
// "semantic(ast)").
func Semantic(prog *ast.Program) (*ast.Program, []SemanticIssue) {
	return semantic.Analyze(prog)
}

// Analyze dispatches between the recursive and iterative engines and
// assembles the shared Result contract (spec.md §6 "analyze(ast)",
// §4.5 "not recursive → let the iterative analyzer handle it").
func Analyze(prog *ast.Program, opts Options) (*Result, error) {
	if prog == nil {
		return nil, fmt.Errorf("analysis: nil program")
	}
	opts = opts.withDefaults()

	res := &Result{NormalizedCode: ast.Print(prog), Notes: []string{}}

	if depth := ast.Depth(prog); depth > opts.MaxASTDepth {
		res.BigO, res.BigOmega = "unknown", "unknown"
		res.AlgorithmKind = "iterative"
		res.Notes = append(res.Notes, fmt.Sprintf(
			"%s: AST nesting depth %d exceeds the %d-level ceiling; analysis aborted",
			errors.CodeResourceExceeded, depth, opts.MaxASTDepth))
		return res, nil
	}

	// Fill grammar defaults (For.Step) before costing; Analyze must behave
	// the same whether or not the caller already ran Semantic.
	prog, issues := semantic.Analyze(prog)

	if rec, ok := recursive.AnalyzeProgram(prog); ok {
		fillRecursive(res, rec)
	} else {
		fillIterative(res, iterative.AnalyzeProgram(prog), opts)
	}

	for _, iss := range issues {
		res.Notes = append(res.Notes, fmt.Sprintf("%s:%d: %s", iss.Severity, iss.Pos.Line, iss.Message))
	}

	return res, nil
}

// AnalyzeFull is the convenience chain spec.md §6 names: parse → semantic
// → analyze, in one call. Parse errors short-circuit the chain (spec.md
// §4.1 "the engine never partially parses" — no cost analysis is
// attempted over a program that failed to parse).
func AnalyzeFull(filename, text string, opts Options) (*Result, []parser.ParseError, []lexer.ScanError) {
	prog, perrs, serrs := Parse(filename, text)
	if len(perrs) > 0 || len(serrs) > 0 || prog == nil {
		return nil, perrs, serrs
	}

	prog, issues := Semantic(prog)
	res, err := Analyze(prog, opts)
	if err != nil {
		return nil, []parser.ParseError{{Message: err.Error()}}, nil
	}
	for _, iss := range issues {
		note := fmt.Sprintf("%s:%d: %s", iss.Severity, iss.Pos.Line, iss.Message)
		if !containsString(res.Notes, note) {
			res.Notes = append(res.Notes, note)
		}
	}
	return res, nil, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func fillRecursive(res *Result, rec *recursive.Result) {
	res.AlgorithmKind = "recursive"
	res.BigO = rec.BigO
	res.BigOmega = rec.BigOmega
	res.Theta = rec.Theta
	res.MethodUsed = string(rec.MethodUsed)
	res.RecurrenceEquation = rec.RecurrenceEquation
	res.Notes = append(res.Notes, rec.Notes...)
}

func fillIterative(res *Result, pc *iterative.ProgramCost, opts Options) {
	res.AlgorithmKind = "iterative"
	res.BigO = pc.BigO
	res.BigOmega = pc.BigOmega
	res.Theta = pc.Theta
	res.MethodUsed = "summation"
	res.IRWorst = costir.JSON(pc.IRWorst)
	res.IRBest = costir.JSON(pc.IRBest)
	res.IRAvg = costir.JSON(pc.IRAvg)
	res.Notes = append(res.Notes, pc.Notes...)

	if costir.Size(pc.IRWorst) > opts.MaxSimplifySteps {
		res.Notes = append(res.Notes, fmt.Sprintf(
			"%s: simplified cost expression size exceeds the %d-node ceiling; result may be partial",
			errors.CodeResourceExceeded, opts.MaxSimplifySteps))
	}

	res.Lines = make([]LineResult, len(pc.Lines))
	for i, l := range pc.Lines {
		res.Lines[i] = LineResult{
			Line: l.Line, Kind: l.Kind,
			Multiplier:   costir.JSON(l.Multiplier),
			MultiplierAS: costir.ASCII(l.Multiplier),
			CostWorst:    costir.JSON(l.Worst),
			CostBest:     costir.JSON(l.Best),
			CostAvg:      costir.JSON(l.Avg),
			CostWorstAS:  costir.ASCII(l.Worst),
			CostBestAS:   costir.ASCII(l.Best),
			CostAvgAS:    costir.ASCII(l.Avg),
		}
	}

	res.Summations = &SummationsResult{
		Worst: SummationPair{LaTeX: pc.SummationWorst.LaTeX, Text: pc.SummationWorst.Text},
		Best:  SummationPair{LaTeX: pc.SummationBest.LaTeX, Text: pc.SummationBest.Text},
		Avg:   SummationPair{LaTeX: pc.SummationAvg.LaTeX, Text: pc.SummationAvg.Text},
	}

	if pc.StrongBounds != nil {
		res.StrongBounds = &StrongBoundsResult{
			Formula: pc.StrongBounds.Formula, Terms: pc.StrongBounds.Terms,
			DominantTerm: pc.StrongBounds.DominantTerm, Constant: pc.StrongBounds.Constant,
		}
	}

	if pc.ExecutionTrace != nil {
		et := pc.ExecutionTrace
		res.ExecutionTrace = &ExecutionTraceResult{
			Steps: et.Steps, TotalIterations: et.TotalIterations, MaxDepth: et.MaxDepth,
			VariablesTracked: et.VariablesTracked, ComplexityFormula: et.ComplexityFormula,
			Description: et.Description,
		}
	}
}
