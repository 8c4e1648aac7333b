package iterative

import (
	"bigoh/internal/ast"
	"bigoh/internal/costir"
)

// ProgramCost is the full per-program analysis product spec.md §4.4 and §6
// describe for an iterative program: per-line costs, the three summation
// strings, the dominant asymptotic classes, an optional strong-bounds
// polynomial, and a simulated execution trace.
type ProgramCost struct {
	BigO, BigOmega, Theta                       string
	IRWorst, IRBest, IRAvg                      costir.Value
	Lines                                       []LineCost
	SummationWorst, SummationBest, SummationAvg Summation
	StrongBounds                                *StrongBounds
	ExecutionTrace                              *ExecutionTrace
	Notes                                       []string
}

// CostOfBlock runs just the cost walk (no summations, no trace) — the
// lightweight entry point internal/recursive uses to fold a called
// non-recursive procedure's own cost into a recurrence's f(n).
func CostOfBlock(body *ast.Block) (worst, best, avg costir.Value) {
	w := &walker{}
	worst, best, avg = w.costBlock(body, nil, map[string]string{})
	return costir.Simplify(worst), costir.Simplify(best), costir.Simplify(avg)
}

// AnalyzeBlock is the full iterative-analysis entry point (spec.md §4.4,
// §6 analyze()) for a single block: the top-level statement list of a
// program, or a non-recursive procedure's body.
func AnalyzeBlock(body *ast.Block) *ProgramCost {
	w := &walker{}
	worst, best, avg := w.costBlock(body, nil, map[string]string{})
	worst = costir.Simplify(worst)
	best = costir.Simplify(best)
	avg = costir.Simplify(avg)

	sw, sb, sa := BuildBlockSummations(body)

	bigO := costir.BigO(worst)
	bigOmega := costir.BigO(best)
	theta := ""
	if costir.Compare(worst, best) == costir.CmpEqual {
		theta = bigO
	}

	return &ProgramCost{
		BigO: bigO, BigOmega: bigOmega, Theta: theta,
		IRWorst: worst, IRBest: best, IRAvg: avg,
		Lines:          w.lines,
		SummationWorst: sw, SummationBest: sb, SummationAvg: sa,
		StrongBounds:   ComputeStrongBounds(worst),
		ExecutionTrace: BuildExecutionTrace(body),
		Notes:          w.notes,
	}
}

// SubjectBlock picks the statement list an iterative analysis runs over:
// the program's top-level statements when present (spec.md §4.1 "implicit
// main program"), else the first non-recursive procedure's body.
func SubjectBlock(prog *ast.Program) *ast.Block {
	if stmts := prog.MainStatements(); len(stmts) > 0 {
		return &ast.Block{Stmts: stmts}
	}
	for _, proc := range prog.Procs() {
		if !proc.CallsSelf() {
			return proc.Body
		}
	}
	return &ast.Block{}
}

// AnalyzeProgram is AnalyzeBlock over a Program's natural subject block.
func AnalyzeProgram(prog *ast.Program) *ProgramCost {
	return AnalyzeBlock(SubjectBlock(prog))
}
