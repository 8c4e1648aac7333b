// Package recursive implements spec.md §4.5's recurrence analyzer: given a
// procedure whose body calls itself, extract a recurrence equation and
// resolve it with the Master Theorem, the characteristic-equation method
// (linear two-term recurrences like Fibonacci), or iteration unrolling,
// falling back to a recursion-tree estimate when no closed form applies.
// Grounded on internal/iterative's dispatch-by-NodeType cost walk and
// multiplier-stack style (see DESIGN.md); the recurrence classification and
// resolution rules are new domain logic with no teacher precedent.
package recursive

import (
	"math/big"

	"bigoh/internal/ast"
	"bigoh/internal/iterative"
)

// Method names the resolution technique used (spec.md §4.5 "method_used").
type Method string

const (
	MethodMaster         Method = "master_theorem"
	MethodCharacteristic Method = "characteristic_equation"
	MethodIteration      Method = "iteration_method"
	MethodRecursionTree  Method = "recursion_tree"
)

// Result is the recurrence analyzer's output (spec.md §4.5 "Output",
// §6 "recurrence_equation").
type Result struct {
	RecurrenceEquation string
	MethodUsed         Method
	BigO               string
	BigOmega           string
	Theta              string
	Notes              []string
}

type callSite struct {
	Args []ast.Expr
}

// AnalyzeProgram finds the first self-calling Proc in prog and resolves its
// recurrence. ok is false when no Proc calls itself, so the caller can fall
// back to the iterative analyzer.
func AnalyzeProgram(prog *ast.Program) (*Result, bool) {
	procs := map[string]*ast.Proc{}
	for _, p := range prog.Procs() {
		procs[p.Name] = p
	}
	for _, p := range prog.Procs() {
		if p.CallsSelf() {
			return analyzeProc(p, procs), true
		}
	}
	return nil, false
}

func analyzeProc(proc *ast.Proc, procs map[string]*ast.Proc) *Result {
	calls := collectSelfCalls(proc)

	sizeSymbol, synthetic, ok := detectSizeSymbol(proc, calls)
	if !ok {
		return &Result{
			BigO: "unknown",
			Notes: []string{
				"could not identify a recursion size symbol for " + proc.Name + "; bound left unresolved",
			},
		}
	}

	divideCounts := map[int64]int{}
	decrementCounts := map[string]int{}
	decrementVals := map[string]*big.Rat{}

	if synthetic {
		divideCounts[2] = len(calls)
	} else {
		idx := paramIndex(proc, sizeSymbol)
		for _, c := range calls {
			if idx < 0 || idx >= len(c.Args) {
				continue
			}
			arg := c.Args[idx]
			if b, okHalf := detectHalvingArg(arg, sizeSymbol); okHalf {
				divideCounts[b.Num().Int64()]++
				continue
			}
			if d, okDec := detectDecrementArg(arg, sizeSymbol); okDec {
				key := d.RatString()
				decrementCounts[key]++
				decrementVals[key] = d
			}
		}
	}

	fn := nonRecursiveCost(proc.Body, proc.Name, sizeSymbol, procs)

	switch {
	case len(divideCounts) == 1 && len(decrementCounts) == 0:
		var b int64
		var a int
		for k, v := range divideCounts {
			b, a = k, v
		}
		return resolveMaster(sizeSymbol, a, b, fn)
	case len(decrementCounts) == 2 && len(divideCounts) == 0:
		return resolveCharacteristic(sizeSymbol, decrementCounts, decrementVals, fn)
	case len(decrementCounts) == 1 && len(divideCounts) == 0:
		var key string
		for k := range decrementCounts {
			key = k
		}
		return resolveDecrement(sizeSymbol, decrementCounts[key], decrementVals[key], fn)
	default:
		return resolveRecursionTree(sizeSymbol, divideCounts, decrementCounts, decrementVals, fn)
	}
}

func collectSelfCalls(proc *ast.Proc) []callSite {
	var sites []callSite
	ast.Walk(proc.Body, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.CallStmt:
			if v.Name == proc.Name {
				sites = append(sites, callSite{Args: v.Args})
			}
		case *ast.CallExpr:
			if v.Name == proc.Name {
				sites = append(sites, callSite{Args: v.Args})
			}
		}
		return true
	})
	return sites
}

func paramIndex(proc *ast.Proc, name string) int {
	for i, p := range proc.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// detectSizeSymbol implements spec.md §4.5's "identify the size symbol"
// step. It returns synthetic=true for the lo/hi-plus-midpoint
// divide-and-conquer shape (e.g. merge sort), where no single parameter
// names the size directly — see DESIGN.md for why that shape gets its own
// branch instead of a per-parameter scan.
func detectSizeSymbol(proc *ast.Proc, calls []callSite) (symbol string, synthetic bool, ok bool) {
	for _, p := range proc.Params {
		if p.Name == "n" {
			return "n", false, true
		}
	}
	if mid := findMidpointVar(proc.Body); mid != "" && midpointCallsMatch(calls, mid) {
		return "n", true, true
	}
	for _, p := range proc.Params {
		for _, c := range calls {
			for _, arg := range c.Args {
				if _, okHalf := detectHalvingArg(arg, p.Name); okHalf {
					return p.Name, false, true
				}
				if _, okDec := detectDecrementArg(arg, p.Name); okDec {
					return p.Name, false, true
				}
			}
		}
	}
	return "", false, false
}

func findMidpointVar(b *ast.Block) string {
	name := ""
	ast.Walk(b, func(n ast.Node) bool {
		if name != "" {
			return false
		}
		if a, ok := n.(*ast.Assign); ok {
			if v, ok := a.Target.(*ast.VarExpr); ok && isHalfOfSum(a.Value) {
				name = v.Name
				return false
			}
		}
		return true
	})
	return name
}

func isHalfOfSum(e ast.Expr) bool {
	bin, ok := e.(*ast.BinExpr)
	if !ok || (bin.Op != "/" && bin.Op != "div") {
		return false
	}
	if !isNumConst(bin.Right, 2) {
		return false
	}
	_, isSum := bin.Left.(*ast.BinExpr)
	return isSum
}

func isNumConst(e ast.Expr, v int64) bool {
	n, ok := e.(*ast.NumExpr)
	return ok && n.Value.Cmp(big.NewRat(v, 1)) == 0
}

func isVarPlusConst(e ast.Expr, name string, c int64) bool {
	bin, ok := e.(*ast.BinExpr)
	if !ok || bin.Op != "+" {
		return false
	}
	v, ok := bin.Left.(*ast.VarExpr)
	if !ok || v.Name != name {
		return false
	}
	return isNumConst(bin.Right, c)
}

// midpointCallsMatch checks that self-calls partition the range into a
// lower half (ending at mid) and an upper half (starting at mid+1) — the
// shape a merge-sort-style divide step takes.
func midpointCallsMatch(calls []callSite, mid string) bool {
	usesLower, usesUpper := false, false
	for _, c := range calls {
		for _, a := range c.Args {
			if v, ok := a.(*ast.VarExpr); ok && v.Name == mid {
				usesLower = true
			}
			if isVarPlusConst(a, mid, 1) {
				usesUpper = true
			}
		}
	}
	return usesLower && usesUpper
}

// detectHalvingArg and detectDecrementArg delegate to internal/iterative's
// pattern matchers (exported there for exactly this reuse) rather than
// duplicating the argument-shape recognition here.
func detectHalvingArg(e ast.Expr, name string) (*big.Rat, bool) {
	return iterative.DetectHalvingArg(e, name)
}

func detectDecrementArg(e ast.Expr, name string) (*big.Rat, bool) {
	return iterative.DetectDecrementArg(e, name)
}
