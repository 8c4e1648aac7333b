// Package iterative implements the cost walk over iterative programs: a
// recursive descent that emits a LineCost per statement and aggregates
// worst/best/avg costs through the multiplier-stack technique of spec.md
// §4.4. Grounded on the teacher's internal/semantic.Analyzer traversal
// style (recursion-carried context, no package-level mutable state) and
// internal/ir's per-node dispatch switch (see DESIGN.md); the cost rules
// themselves are new domain logic with no teacher precedent.
package iterative

import (
	"math/big"

	"bigoh/internal/ast"
	"bigoh/internal/costir"
)

// ExprToValue is the exported form of exprToValue, used by internal/recursive
// to convert argument expressions into cost-IR values when building f(n).
func ExprToValue(e ast.Expr) costir.Value {
	return exprToValue(e)
}

// exprToValue converts a surface expression into a cost-IR value so it can
// participate in trip-count and cost arithmetic. Constructs outside the
// arithmetic subset (comparisons, calls, indexing) fall back to a named
// symbol chosen by renderExprName, which keeps the walk total without ever
// panicking on an unexpected shape.
func exprToValue(e ast.Expr) costir.Value {
	switch t := e.(type) {
	case *ast.NumExpr:
		return costir.K{R: new(big.Rat).Set(t.Value)}
	case *ast.VarExpr:
		return costir.Sym{Name: t.Name}
	case *ast.UnaryExpr:
		if t.Op == "-" {
			return costir.Sub(costir.Zero(), exprToValue(t.Value))
		}
		return costir.Sym{Name: renderExprName(t.Value)} // "not" has no arithmetic reading
	case *ast.BinExpr:
		l, r := exprToValue(t.Left), exprToValue(t.Right)
		switch t.Op {
		case "+":
			return costir.Add(l, r)
		case "-":
			return costir.Sub(l, r)
		case "*":
			return costir.Mul(l, r)
		case "/", "div":
			return costir.Div(l, r)
		default:
			return costir.Sym{Name: renderExprName(e)}
		}
	default:
		return costir.Sym{Name: renderExprName(e)}
	}
}

// renderExprName gives a stable symbolic name to expressions the cost
// arithmetic doesn't model directly (calls, indices, comparisons used in
// an arithmetic position), so trip-count formulas stay total rather than
// requiring a fallback error path.
func renderExprName(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.VarExpr:
		return t.Name
	case *ast.IndexExpr:
		return renderExprName(t.Base)
	case *ast.MemberExpr:
		return renderExprName(t.Base) + "_" + t.Field
	case *ast.CallExpr:
		return t.Name
	default:
		return "n"
	}
}
