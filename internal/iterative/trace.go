package iterative

import (
	"fmt"
	"math"
	"math/big"

	"bigoh/internal/ast"
)

// defaultLinearN and defaultHalvingN are the concrete input sizes the
// execution trace simulates with when a program never pins one down
// (spec.md §4.4 "Execution trace" — "default 5 for linear and nested
// patterns, 16 for binary-search-like logarithmic patterns").
const (
	defaultLinearN  = 5
	defaultHalvingN = 16
)

// TraceStep is one row of a simulated concrete run (spec.md §4.4).
type TraceStep struct {
	Step           int            `json:"step"`
	Line           int            `json:"line"`
	Kind           string         `json:"kind"`
	Condition      string         `json:"condition,omitempty"`
	Variables      map[string]int `json:"variables,omitempty"`
	Operation      string         `json:"operation"`
	Cost           string         `json:"cost"`
	CumulativeCost string         `json:"cumulative_cost"`
}

// ExecutionTrace is the concrete-run simulation spec.md §4.4 and §6 attach
// to an iterative program's analysis result.
type ExecutionTrace struct {
	Steps             []TraceStep
	TotalIterations   int
	MaxDepth          int
	VariablesTracked  []string
	ComplexityFormula string
	Description       string
}

// BuildExecutionTrace recognizes the three patterns spec.md §4.4 names
// (simple loop, nested loop, halving loop) among body's top-level
// statements and simulates a small concrete run; unrecognized shapes get a
// one-step fallback trace rather than a failure (spec.md §7
// UnrecognizedPattern is non-fatal).
func BuildExecutionTrace(body *ast.Block) *ExecutionTrace {
	if body == nil || len(body.Stmts) == 0 {
		return nil
	}

	if outer, inner, ok := findNestedFor(body.Stmts); ok {
		return nestedLoopTrace(outer, inner)
	}
	if f, ok := findFor(body.Stmts); ok {
		return simpleLoopTrace(f)
	}
	if w, ok := findWhile(body.Stmts); ok {
		if name, okName := governingVar(w.Cond); okName {
			if assign := findAssignTo(w.Body, name); assign != nil {
				if k, okHalf := detectHalving(assign.Value, name); okHalf {
					return halvingLoopTrace(w.Pos.Line, bodyLine(w.Body, w.Pos.Line), name, k)
				}
			}
		}
	}
	if r, ok := findRepeat(body.Stmts); ok {
		block := &ast.Block{Stmts: r.Stmts}
		if name, okName := governingVar(r.Until); okName {
			if assign := findAssignTo(block, name); assign != nil {
				if k, okHalf := detectHalving(assign.Value, name); okHalf {
					return halvingLoopTrace(r.Pos.Line, bodyLine(block, r.Pos.Line), name, k)
				}
			}
		}
	}

	return fallbackTrace(body.Stmts[0].NodePos().Line)
}

func bodyLine(b *ast.Block, fallback int) int {
	if b != nil && len(b.Stmts) > 0 {
		return b.Stmts[0].NodePos().Line
	}
	return fallback
}

func findFor(stmts []ast.Stmt) (*ast.For, bool) {
	for _, s := range stmts {
		if f, ok := s.(*ast.For); ok {
			return f, true
		}
	}
	return nil, false
}

func findNestedFor(stmts []ast.Stmt) (outer, inner *ast.For, ok bool) {
	outer, ok = findFor(stmts)
	if !ok || outer.Body == nil {
		return nil, nil, false
	}
	inner, ok = findFor(outer.Body.Stmts)
	return outer, inner, ok
}

func findWhile(stmts []ast.Stmt) (*ast.While, bool) {
	for _, s := range stmts {
		if w, ok := s.(*ast.While); ok {
			return w, true
		}
	}
	return nil, false
}

func findRepeat(stmts []ast.Stmt) (*ast.Repeat, bool) {
	for _, s := range stmts {
		if r, ok := s.(*ast.Repeat); ok {
			return r, true
		}
	}
	return nil, false
}

func simpleLoopTrace(f *ast.For) *ExecutionTrace {
	n := defaultLinearN
	steps := []TraceStep{{
		Step: 1, Line: f.Pos.Line, Kind: "init",
		Variables: map[string]int{"n": n},
		Operation: "initialize loop bound n=" + itoa(n),
		Cost:      "0", CumulativeCost: "0",
	}}
	cumulative := 0
	line := bodyLine(f.Body, f.Pos.Line)
	for i := 1; i <= n; i++ {
		cumulative++
		steps = append(steps, TraceStep{
			Step: i + 1, Line: line, Kind: "iteration",
			Condition: fmt.Sprintf("%s <= %d", f.Var, n),
			Variables: map[string]int{"n": n, f.Var: i},
			Operation: "execute loop body",
			Cost:      "1", CumulativeCost: itoa(cumulative),
		})
	}
	return &ExecutionTrace{
		Steps: steps, TotalIterations: n, MaxDepth: 1,
		VariablesTracked:  []string{"n", f.Var},
		ComplexityFormula: "n",
		Description:       fmt.Sprintf("single loop over %s=1..%d, one operation per iteration", f.Var, n),
	}
}

func nestedLoopTrace(outer, inner *ast.For) *ExecutionTrace {
	n := defaultLinearN
	var steps []TraceStep
	step := 1
	cumulative := 0
	steps = append(steps, TraceStep{
		Step: step, Line: outer.Pos.Line, Kind: "init",
		Variables: map[string]int{"n": n},
		Operation: "initialize outer loop bound n=" + itoa(n),
		Cost:      "0", CumulativeCost: "0",
	})
	step++
	for i := 1; i <= n; i++ {
		steps = append(steps, TraceStep{
			Step: step, Line: outer.Pos.Line, Kind: "outer_header",
			Condition: fmt.Sprintf("%s <= %d", outer.Var, n),
			Variables: map[string]int{"n": n, outer.Var: i},
			Operation: "enter outer iteration",
			Cost:      "0", CumulativeCost: itoa(cumulative),
		})
		step++
		for j := 1; j <= n; j++ {
			cumulative++
			steps = append(steps, TraceStep{
				Step: step, Line: inner.Pos.Line, Kind: "inner_operation",
				Condition: fmt.Sprintf("%s <= %d", inner.Var, n),
				Variables: map[string]int{"n": n, outer.Var: i, inner.Var: j},
				Operation: "execute inner body",
				Cost:      "1", CumulativeCost: itoa(cumulative),
			})
			step++
		}
	}
	return &ExecutionTrace{
		Steps: steps, TotalIterations: n * n, MaxDepth: 2,
		VariablesTracked:  []string{"n", outer.Var, inner.Var},
		ComplexityFormula: "n^2",
		Description:       fmt.Sprintf("nested loop, %s and %s each ranging 1..%d", outer.Var, inner.Var, n),
	}
}

func halvingLoopTrace(headerLine, bodyLine int, name string, k *big.Rat) *ExecutionTrace {
	n := float64(defaultHalvingN)
	kf, _ := k.Float64()

	steps := []TraceStep{{
		Step: 1, Line: headerLine, Kind: "init",
		Variables: map[string]int{"n": defaultHalvingN, name: defaultHalvingN},
		Operation: "initialize " + name + "=" + itoa(defaultHalvingN),
		Cost:      "0", CumulativeCost: "0",
	}}

	val := n
	iter := 0
	cumulative := 0
	for val > 1 {
		iter++
		cumulative++
		next := math.Floor(val / kf)
		steps = append(steps, TraceStep{
			Step: iter + 1, Line: bodyLine, Kind: "iteration",
			Condition: fmt.Sprintf("%s > 1", name),
			Variables: map[string]int{name: int(val)},
			Operation: fmt.Sprintf("%s <- %s div %d", name, name, int(kf)),
			Cost:      "1", CumulativeCost: itoa(cumulative),
		})
		val = next
	}

	total := int(math.Ceil(math.Log(n) / math.Log(kf)))
	return &ExecutionTrace{
		Steps: steps, TotalIterations: total, MaxDepth: 1,
		VariablesTracked:  []string{name},
		ComplexityFormula: "log(n)",
		Description:       fmt.Sprintf("halving loop on '%s', base %d, simulated from n=%d", name, int(kf), defaultHalvingN),
	}
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }

func fallbackTrace(line int) *ExecutionTrace {
	return &ExecutionTrace{
		Steps: []TraceStep{{
			Step: 1, Line: line, Kind: "note",
			Operation: "no recognized iterative execution pattern; trace omitted",
			Cost:      "?", CumulativeCost: "?",
		}},
		TotalIterations:   0,
		MaxDepth:          0,
		ComplexityFormula: "unknown",
		Description:       "fallback: execution pattern not recognized",
	}
}
