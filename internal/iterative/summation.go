package iterative

import (
	"fmt"
	"regexp"
	"strings"

	"bigoh/internal/ast"
)

// Selector picks which of the three cost cases a summation is built for.
type Selector int

const (
	SelWorst Selector = iota
	SelBest
	SelAvg
)

// Summation is the LaTeX/text pair spec.md §4.4 calls for: the total cost
// expressed as a sum of summations (one per loop nesting) plus constants,
// kept distinct from the fully-simplified IR so a reader can see the
// un-collapsed shape the cost walk produced.
type Summation struct {
	LaTeX string
	Text  string
}

// BuildBlockSummations renders the worst/best/avg summations for a single
// block rather than a whole Program — the shape internal/analysis needs
// when the subject of analysis is the top-level statement list or a single
// non-recursive procedure's body.
func BuildBlockSummations(body *ast.Block) (worst, best, avg Summation) {
	wl, wt := blockSummation(body, SelWorst)
	bl, bt := blockSummation(body, SelBest)
	al, at := blockSummation(body, SelAvg)
	return Summation{LaTeX: wl, Text: wt}, Summation{LaTeX: bl, Text: bt}, Summation{LaTeX: al, Text: at}
}

func blockSummation(b *ast.Block, sel Selector) (latex, text string) {
	var l, t []string
	if b != nil {
		for _, s := range b.Stmts {
			sl, st := stmtSummation(s, sel)
			if st == "" {
				continue
			}
			l = append(l, sl)
			t = append(t, st)
		}
	}
	if len(l) == 0 {
		return "0", "0"
	}
	return strings.Join(l, " + "), strings.Join(t, " + ")
}

func stmtSummation(s ast.Stmt, sel Selector) (latex, text string) {
	switch v := s.(type) {
	case *ast.Assign, *ast.CallStmt, *ast.Return:
		return "1", "1"
	case *ast.ExprStmt, *ast.ObjectDecl:
		return "", ""
	case *ast.If:
		thenL, thenT := blockSummation(v.Then, sel)
		elseL, elseT := "0", "0"
		if v.Else != nil {
			elseL, elseT = blockSummation(v.Else, sel)
		}
		switch sel {
		case SelWorst:
			return fmt.Sprintf("1 + \\max(%s, %s)", thenL, elseL), fmt.Sprintf("1 + max(%s, %s)", thenT, elseT)
		case SelBest:
			return fmt.Sprintf("1 + \\min(%s, %s)", thenL, elseL), fmt.Sprintf("1 + min(%s, %s)", thenT, elseT)
		default:
			return fmt.Sprintf("1 + \\frac{%s + %s}{2}", thenL, elseL), fmt.Sprintf("1 + (%s + %s)/2", thenT, elseT)
		}
	case *ast.For:
		bodyL, bodyT := blockSummation(v.Body, sel)
		start := exprSummationText(v.Start)
		end := exprSummationText(v.End)
		if containsVar(bodyT, v.Var) {
			return fmt.Sprintf("\\sum_{%s=%s}^{%s} %s", v.Var, start, end, bodyL),
				fmt.Sprintf("sum_{%s=%s}^{%s} %s", v.Var, start, end, bodyT)
		}
		return fmt.Sprintf("(%s - %s + 1) \\cdot %s", end, start, bodyL),
			fmt.Sprintf("(%s - %s + 1) * %s", end, start, bodyT)
	case *ast.While:
		bodyL, bodyT := blockSummation(v.Body, sel)
		return fmt.Sprintf("\\sum %s", bodyL), fmt.Sprintf("sum %s", bodyT)
	case *ast.Repeat:
		body := &ast.Block{Stmts: v.Stmts}
		bodyL, bodyT := blockSummation(body, sel)
		return fmt.Sprintf("\\sum %s", bodyL), fmt.Sprintf("sum %s", bodyT)
	default:
		return "", ""
	}
}

func exprSummationText(e ast.Expr) string {
	return strings.TrimSpace(ast.ExprString(e))
}

func containsVar(text, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return re.MatchString(text)
}
