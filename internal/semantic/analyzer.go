package semantic

import (
	"math/big"

	"bigoh/internal/ast"
)

// Analyzer runs the single semantic traversal over a parsed Program. It
// carries no package-level state (teacher: internal/semantic.Context is an
// explicit argument, never a global), so concurrent analyses of different
// programs never interfere.
type Analyzer struct {
	issues []Issue
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze fills defaults on the AST and returns the issues collected along
// the way. It never mutates program semantics, only the defaults spec.md
// §4.2 names: For.Step when absent (inclusivity is a grammar invariant the
// parser already canonicalizes, since this dialect has no exclusive-range
// syntax).
func Analyze(prog *ast.Program) (*ast.Program, []Issue) {
	a := NewAnalyzer()
	for _, item := range prog.Items {
		a.analyzeItem(item)
	}
	return prog, a.issues
}

func (a *Analyzer) note(sev Severity, pos ast.Position, msg string) {
	a.issues = append(a.issues, Issue{Severity: sev, Message: msg, Pos: pos})
}

func (a *Analyzer) analyzeItem(item ast.Item) {
	switch node := item.(type) {
	case *ast.Proc:
		a.analyzeBlock(node.Body)
	case *ast.Class:
		// Declarative only; nothing to fill or check.
	case ast.Stmt:
		a.analyzeStmt(node)
	}
}

func (a *Analyzer) analyzeBlock(b *ast.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		a.analyzeStmt(s)
	}
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.For:
		a.fillForStep(s)
		if len(s.Body.Stmts) == 0 {
			a.note(SeverityWarning, s.Pos, "for-loop body is empty")
		}
		a.analyzeBlock(s.Body)
	case *ast.While:
		a.checkBoolean(s.Cond, "while")
		a.analyzeBlock(s.Body)
	case *ast.Repeat:
		a.checkBoolean(s.Until, "until")
		for _, inner := range s.Stmts {
			a.analyzeStmt(inner)
		}
	case *ast.If:
		a.checkBoolean(s.Cond, "if")
		a.note(SeverityNote, s.Pos,
			"average-case cost for this branch is the arithmetic mean of its arms, with no branch-probability model")
		a.analyzeBlock(s.Then)
		a.analyzeBlock(s.Else)
	}
}

// fillForStep assigns the literal step 1 the grammar implies when no
// explicit `step` clause was written (spec.md §4.2(a)).
func (a *Analyzer) fillForStep(f *ast.For) {
	if f.HasExplicitStep {
		return
	}
	f.Step = &ast.NumExpr{Pos: f.Pos, EndPos: f.Pos, Value: big.NewRat(1, 1), Text: "1"}
}

// surface-level boolean forms a condition may take without a type checker:
// a boolean literal, a relational/logical binary op, or a `not` unary.
var relationalOps = map[string]bool{
	"=": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"and": true, "or": true,
}

func (a *Analyzer) checkBoolean(cond ast.Expr, context string) {
	if isSurfaceBoolean(cond) {
		return
	}
	a.note(SeverityWarning, cond.NodePos(), context+" condition is not surface-level boolean")
}

func isSurfaceBoolean(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.BoolExpr:
		return true
	case *ast.BinExpr:
		return relationalOps[v.Op]
	case *ast.UnaryExpr:
		return v.Op == "not"
	default:
		return false
	}
}
