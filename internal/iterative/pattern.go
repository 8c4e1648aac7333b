package iterative

import (
	"math/big"

	"bigoh/internal/ast"
	"bigoh/internal/costir"
)

// tripCountResult is the trip-count triple a While/Repeat contributes,
// plus an optional note when the engine had to fall back to a
// conservative bound (spec.md §4.4, §7 UnrecognizedPattern).
type tripCountResult struct {
	Worst, Best, Avg costir.Value
	Note             string
}

// governingVar extracts the loop variable a condition tests, the simplest
// surface-syntactic heuristic available without a type checker: the first
// bare variable reference appearing in a comparison.
func governingVar(cond ast.Expr) (string, bool) {
	switch c := cond.(type) {
	case *ast.VarExpr:
		return c.Name, true
	case *ast.BinExpr:
		if v, ok := c.Left.(*ast.VarExpr); ok {
			return v.Name, true
		}
		if v, ok := c.Right.(*ast.VarExpr); ok {
			return v.Name, true
		}
	case *ast.UnaryExpr:
		return governingVar(c.Value)
	}
	return "", false
}

func findAssignTo(b *ast.Block, name string) *ast.Assign {
	for _, s := range b.Stmts {
		if a, ok := s.(*ast.Assign); ok {
			if v, ok := a.Target.(*ast.VarExpr); ok && v.Name == name {
				return a
			}
		}
	}
	return nil
}

func constRat(e ast.Expr) (*big.Rat, bool) {
	if num, ok := e.(*ast.NumExpr); ok {
		return num.Value, true
	}
	return nil, false
}

// detectHalving recognizes `var <- var/K`, `var <- var div K`, or
// `var <- floor(var/K)` for a constant K ≥ 2 (spec.md §4.4 "halving
// pattern").
func detectHalving(value ast.Expr, name string) (*big.Rat, bool) {
	if fl, ok := value.(*ast.FloorExpr); ok {
		return detectHalving(fl.Value, name)
	}
	bin, ok := value.(*ast.BinExpr)
	if !ok || (bin.Op != "/" && bin.Op != "div") {
		return nil, false
	}
	v, ok := bin.Left.(*ast.VarExpr)
	if !ok || v.Name != name {
		return nil, false
	}
	k, ok := constRat(bin.Right)
	if !ok || k.Cmp(big.NewRat(2, 1)) < 0 {
		return nil, false
	}
	return k, true
}

// detectDecrement recognizes `var <- var - c` for a constant c (spec.md
// §4.4 "linear-decrement pattern").
func detectDecrement(value ast.Expr, name string) (*big.Rat, bool) {
	bin, ok := value.(*ast.BinExpr)
	if !ok || bin.Op != "-" {
		return nil, false
	}
	v, ok := bin.Left.(*ast.VarExpr)
	if !ok || v.Name != name {
		return nil, false
	}
	return constRat(bin.Right)
}

// DetectHalvingArg is the exported form of detectHalving, used by
// internal/recursive to classify a self-call argument like `n/2` against a
// size symbol.
func DetectHalvingArg(e ast.Expr, name string) (*big.Rat, bool) {
	return detectHalving(e, name)
}

// DetectDecrementArg is the exported form of detectDecrement, used by
// internal/recursive to classify a self-call argument like `n-1`.
func DetectDecrementArg(e ast.Expr, name string) (*big.Rat, bool) {
	return detectDecrement(e, name)
}

// resolveOrigin follows a chain of simple alias assignments (`i<-n`) back
// to the symbol a governing variable was seeded from, so a trip count
// reads in terms of the caller's size parameter rather than the loop's
// own local variable. origin may be nil, in which case name is returned
// unchanged.
func resolveOrigin(origin map[string]string, name string) string {
	seen := map[string]bool{}
	for {
		src, ok := origin[name]
		if !ok || seen[name] {
			return name
		}
		seen[name] = true
		name = src
	}
}

// tripCountWhileLike implements the While/Repeat trip-count rule of
// spec.md §4.4: recognize halving or linear-decrement on the governing
// variable, else fall back to the symbol itself for worst/avg and a
// constant for best, recording a note. origin resolves the governing
// variable back through any preceding alias assignment (see
// resolveOrigin); pass nil when no such context is tracked.
func tripCountWhileLike(cond ast.Expr, body *ast.Block, origin map[string]string) tripCountResult {
	name, ok := governingVar(cond)
	if !ok {
		return tripCountResult{
			Worst: costir.Sym{Name: "n"}, Best: costir.One(), Avg: costir.Sym{Name: "n"},
			Note: "while-loop condition has no recognizable governing variable; falling back to symbolic trip count n",
		}
	}
	symName := resolveOrigin(origin, name)
	if assign := findAssignTo(body, name); assign != nil {
		if k, ok := detectHalving(assign.Value, name); ok {
			n := costir.Log{Base: k, Arg: costir.Sym{Name: symName}}
			return tripCountResult{Worst: n, Best: n, Avg: n}
		}
		if k, ok := detectDecrement(assign.Value, name); ok {
			n := costir.Div(costir.Sym{Name: symName}, costir.K{R: k})
			return tripCountResult{Worst: n, Best: n, Avg: n}
		}
	}
	return tripCountResult{
		Worst: costir.Sym{Name: symName}, Best: costir.One(), Avg: costir.Sym{Name: symName},
		Note: "while-loop body has no recognizable halving or decrement pattern on '" + name + "'; falling back to symbolic trip count",
	}
}

// tripCountRepeat is the While rule with a minimum of one guaranteed
// iteration (spec.md §4.4).
func tripCountRepeat(until ast.Expr, stmts []ast.Stmt, origin map[string]string) tripCountResult {
	body := &ast.Block{Stmts: stmts}
	r := tripCountWhileLike(until, body, origin)
	r.Worst = costir.Max{Alts: []costir.Value{r.Worst, costir.One()}}
	r.Best = costir.Max{Alts: []costir.Value{r.Best, costir.One()}}
	r.Avg = costir.Max{Alts: []costir.Value{r.Avg, costir.One()}}
	return r
}

// ForTripCount computes the IR trip count of a For statement (spec.md §4.4's
// "N = (end-start)/step + [1 if inclusive]"), exported so internal/recursive
// can reuse it when walking loops inside a recursive procedure's body. A nil
// Step (semantic pass not yet run) counts as the grammar's default step of 1.
func ForTripCount(f *ast.For) costir.Value {
	start := ExprToValue(f.Start)
	end := ExprToValue(f.End)
	step := costir.Value(costir.One())
	if f.Step != nil {
		step = ExprToValue(f.Step)
	}
	n := costir.Div(costir.Sub(end, start), step)
	if f.Inclusive {
		n = costir.Add(n, costir.One())
	}
	return costir.Simplify(n)
}

// TripCountWhileLike is the exported form of tripCountWhileLike. origin
// may be nil; internal/recursive passes nil since a recursive procedure's
// loop variables are analyzed in isolation from any caller-side aliasing.
func TripCountWhileLike(cond ast.Expr, body *ast.Block, origin map[string]string) (worst, best, avg costir.Value, note string) {
	r := tripCountWhileLike(cond, body, origin)
	return r.Worst, r.Best, r.Avg, r.Note
}

// TripCountRepeat is the exported form of tripCountRepeat.
func TripCountRepeat(until ast.Expr, stmts []ast.Stmt, origin map[string]string) (worst, best, avg costir.Value, note string) {
	r := tripCountRepeat(until, stmts, origin)
	return r.Worst, r.Best, r.Avg, r.Note
}
