package ast

import (
	"fmt"
	"strings"
)

// Print renders a Program back to canonical pseudocode text. It is used
// both as a debugging aid (teacher: internal/ast/printer.go's String()
// dispatch) and to check the round-trip property from spec.md §8
// ("pretty(parse(text)) ≅ text modulo whitespace and comments").
func Print(p *Program) string {
	var b strings.Builder
	for i, item := range p.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		printItem(&b, item, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func printItem(b *strings.Builder, item Item, depth int) {
	switch v := item.(type) {
	case *Class:
		indent(b, depth)
		fmt.Fprintf(b, "%s(%s)\n", v.Name, strings.Join(v.Attributes, ", "))
	case *Proc:
		indent(b, depth)
		fmt.Fprintf(b, "%s(%s)\n", v.Name, printParams(v.Params))
		printBlock(b, v.Body, depth)
	case Stmt:
		printStmt(b, v, depth)
	}
}

func printParams(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.HasSlice {
			parts[i] = fmt.Sprintf("%s[%s..%s]", p.Name, printExpr(p.Lo), printExpr(p.Hi))
		} else {
			parts[i] = p.Name
		}
	}
	return strings.Join(parts, ", ")
}

func printBlock(b *strings.Builder, blk *Block, depth int) {
	indent(b, depth)
	b.WriteString("begin\n")
	for _, s := range blk.Stmts {
		printStmt(b, s, depth+1)
	}
	indent(b, depth)
	b.WriteString("end\n")
}

func printStmt(b *strings.Builder, s Stmt, depth int) {
	switch v := s.(type) {
	case *Assign:
		indent(b, depth)
		fmt.Fprintf(b, "%s <- %s\n", printExpr(v.Target), printExpr(v.Value))
	case *For:
		indent(b, depth)
		step := ""
		if v.HasExplicitStep {
			step = fmt.Sprintf(" step %s", printExpr(v.Step))
		}
		fmt.Fprintf(b, "for %s <- %s to %s%s do\n", v.Var, printExpr(v.Start), printExpr(v.End), step)
		printBlock(b, v.Body, depth)
	case *While:
		indent(b, depth)
		fmt.Fprintf(b, "while (%s) do\n", printExpr(v.Cond))
		printBlock(b, v.Body, depth)
	case *Repeat:
		indent(b, depth)
		b.WriteString("repeat\n")
		for _, st := range v.Stmts {
			printStmt(b, st, depth+1)
		}
		indent(b, depth)
		fmt.Fprintf(b, "until (%s)\n", printExpr(v.Until))
	case *If:
		indent(b, depth)
		fmt.Fprintf(b, "if (%s) then\n", printExpr(v.Cond))
		printBlock(b, v.Then, depth)
		if v.Else != nil {
			indent(b, depth)
			b.WriteString("else\n")
			printBlock(b, v.Else, depth)
		}
	case *CallStmt:
		indent(b, depth)
		fmt.Fprintf(b, "CALL %s(%s)\n", v.Name, printExprList(v.Args))
	case *Return:
		indent(b, depth)
		if v.Value != nil {
			fmt.Fprintf(b, "return %s\n", printExpr(v.Value))
		} else {
			b.WriteString("return\n")
		}
	case *ExprStmt:
		indent(b, depth)
		fmt.Fprintf(b, "%s\n", printExpr(v.Value))
	case *ObjectDecl:
		indent(b, depth)
		fmt.Fprintf(b, "%s %s\n", v.ClassName, v.VarName)
	}
}

// ExprString renders a single expression in the same canonical form Print
// uses, for callers that need expression text outside a whole-program dump
// (e.g. summation bounds).
func ExprString(e Expr) string {
	return printExpr(e)
}

func printExprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = printExpr(e)
	}
	return strings.Join(parts, ", ")
}

func printExpr(e Expr) string {
	if e == nil {
		return ""
	}
	switch v := e.(type) {
	case *NumExpr:
		return v.Text
	case *BoolExpr:
		if v.Value {
			return "T"
		}
		return "F"
	case *VarExpr:
		return v.Name
	case *IndexExpr:
		idx := make([]string, len(v.Indices))
		for i, x := range v.Indices {
			idx[i] = printExpr(x)
		}
		return fmt.Sprintf("%s[%s]", printExpr(v.Base), strings.Join(idx, ", "))
	case *SliceExpr:
		return fmt.Sprintf("%s[%s..%s]", printExpr(v.Base), printExpr(v.Lo), printExpr(v.Hi))
	case *MemberExpr:
		return fmt.Sprintf("%s.%s", printExpr(v.Base), v.Field)
	case *UnaryExpr:
		if v.Op == "not" {
			return fmt.Sprintf("not %s", printOperand(v.Value))
		}
		return fmt.Sprintf("%s%s", v.Op, printOperand(v.Value))
	case *BinExpr:
		return fmt.Sprintf("%s %s %s", printOperand(v.Left), v.Op, printOperand(v.Right))
	case *CallExpr:
		return fmt.Sprintf("%s(%s)", v.Name, printExprList(v.Args))
	case *CeilExpr:
		return fmt.Sprintf("ceil(%s)", printExpr(v.Value))
	case *FloorExpr:
		return fmt.Sprintf("floor(%s)", printExpr(v.Value))
	default:
		return "?"
	}
}

// printOperand renders an operand of a unary or binary operator, wrapping a
// nested binary expression in parentheses so the printed text parses back
// to the same tree.
func printOperand(e Expr) string {
	if _, ok := e.(*BinExpr); ok {
		return "(" + printExpr(e) + ")"
	}
	return printExpr(e)
}
