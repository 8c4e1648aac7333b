package recursive

import (
	"math/big"
	"strconv"
	"strings"

	"bigoh/internal/ast"
	"bigoh/internal/costir"
	"bigoh/internal/iterative"
)

// nonRecursiveCost computes f(n): the cost of body with self-calls zeroed
// out (spec.md §4.5 "treat self-calls as cost K(0)"). Calls to other,
// already-parsed procedures are folded in at their own asymptotic class,
// reshaped onto sizeSymbol — see calleeCost and DESIGN.md.
func nonRecursiveCost(body *ast.Block, selfName, sizeSymbol string, procs map[string]*ast.Proc) costir.Value {
	cost := costir.Zero()
	if body == nil {
		return cost
	}
	var total costir.Value = cost
	for _, s := range body.Stmts {
		total = costir.Add(total, nonRecursiveStmtCost(s, selfName, sizeSymbol, procs))
	}
	return costir.Simplify(total)
}

func nonRecursiveStmtCost(s ast.Stmt, selfName, sizeSymbol string, procs map[string]*ast.Proc) costir.Value {
	switch v := s.(type) {
	case *ast.Assign, *ast.Return:
		return costir.One()
	case *ast.CallStmt:
		if v.Name == selfName {
			return costir.Zero()
		}
		if callee, ok := procs[v.Name]; ok {
			return calleeCost(callee, sizeSymbol)
		}
		return costir.One()
	case *ast.ExprStmt, *ast.ObjectDecl:
		return costir.Zero()
	case *ast.If:
		thenCost := nonRecursiveCost(v.Then, selfName, sizeSymbol, procs)
		var elseCost costir.Value = costir.Zero()
		if v.Else != nil {
			elseCost = nonRecursiveCost(v.Else, selfName, sizeSymbol, procs)
		}
		return costir.Add(costir.One(), costir.Max{Alts: []costir.Value{thenCost, elseCost}})
	case *ast.For:
		n := iterative.ForTripCount(v)
		body := nonRecursiveCost(v.Body, selfName, sizeSymbol, procs)
		return costir.Add(costir.One(), costir.Mul(n, body))
	case *ast.While:
		worst, _, _, _ := iterative.TripCountWhileLike(v.Cond, v.Body, nil)
		body := nonRecursiveCost(v.Body, selfName, sizeSymbol, procs)
		return costir.Add(costir.One(), costir.Mul(worst, body))
	case *ast.Repeat:
		worst, _, _, _ := iterative.TripCountRepeat(v.Until, v.Stmts, nil)
		block := &ast.Block{Stmts: v.Stmts}
		body := nonRecursiveCost(block, selfName, sizeSymbol, procs)
		return costir.Add(costir.One(), costir.Mul(worst, body))
	default:
		return costir.Zero()
	}
}

// calleeCost runs the iterative cost walk on an already-parsed helper
// procedure (e.g. Merge inside MergeSort) and reshapes its own asymptotic
// class onto the caller's size symbol.
func calleeCost(proc *ast.Proc, sizeSymbol string) costir.Value {
	worst, _, _ := iterative.CostOfBlock(proc.Body)
	return remapBigOToSymbol(costir.BigO(worst), sizeSymbol)
}

// remapBigOToSymbol rebuilds a callee's own big-O class as an expression in
// sizeSymbol. This is a deliberate simplification (see DESIGN.md): it
// doesn't attempt to symbolically unify the callee's own parameter names
// (e.g. a helper indexed by lo/hi) with the caller's size symbol, only its
// growth shape.
func remapBigOToSymbol(bigO, sizeSymbol string) costir.Value {
	switch bigO {
	case "1":
		return costir.One()
	case "log(n)":
		return costir.Log{Base: big.NewRat(2, 1), Arg: costir.Sym{Name: sizeSymbol}}
	case "n":
		return costir.Sym{Name: sizeSymbol}
	case "n*log(n)":
		return costir.Prod{Factors: []costir.Value{
			costir.Sym{Name: sizeSymbol},
			costir.Log{Base: big.NewRat(2, 1), Arg: costir.Sym{Name: sizeSymbol}},
		}}
	default:
		if strings.HasPrefix(bigO, "n^") {
			if k, err := strconv.Atoi(strings.TrimPrefix(bigO, "n^")); err == nil {
				return costir.Pow{Base: costir.Sym{Name: sizeSymbol}, Exp: costir.KInt(int64(k))}
			}
		}
		return costir.Sym{Name: sizeSymbol}
	}
}
