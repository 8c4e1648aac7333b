package ast

// Assign is `target <- expr`.
type Assign struct {
	Pos    Position
	EndPos Position
	Target LValue
	Value  Expr
}

func (a *Assign) NodePos() Position    { return a.Pos }
func (a *Assign) NodeEndPos() Position { return a.EndPos }
func (*Assign) NodeType() NodeType     { return NODE_ASSIGN }
func (*Assign) isItem()                {}
func (*Assign) isStmt()                {}

// For is `for var <- start to end [step step] do body`. Step defaults to
// numeric 1 when absent from source text; the semantic pass
// (internal/semantic) is what fills it in — the parser leaves Step nil
// until then so the "semantic pass fills defaults, parser does not"
// lifecycle rule (spec.md §3 "Lifecycle") is checkable. The loop is always
// inclusive in this grammar, so the parser sets Inclusive to true itself.
type For struct {
	Pos             Position
	EndPos          Position
	Var             string
	Start           Expr
	End             Expr
	Step            Expr
	Inclusive       bool
	HasExplicitStep bool
	Body            *Block
}

func (f *For) NodePos() Position    { return f.Pos }
func (f *For) NodeEndPos() Position { return f.EndPos }
func (*For) NodeType() NodeType     { return NODE_FOR }
func (*For) isItem()                {}
func (*For) isStmt()                {}

// While is `while (cond) do body`.
type While struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   *Block
}

func (w *While) NodePos() Position    { return w.Pos }
func (w *While) NodeEndPos() Position { return w.EndPos }
func (*While) NodeType() NodeType     { return NODE_WHILE }
func (*While) isItem()                {}
func (*While) isStmt()                {}

// Repeat is `repeat stmt+ until (cond)`; no begin/end wraps the body.
type Repeat struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
	Until  Expr
}

func (r *Repeat) NodePos() Position    { return r.Pos }
func (r *Repeat) NodeEndPos() Position { return r.EndPos }
func (*Repeat) NodeType() NodeType     { return NODE_REPEAT }
func (*Repeat) isItem()                {}
func (*Repeat) isStmt()                {}

// If is `if (cond) then block [else block]`.
type If struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   *Block
	Else   *Block
}

func (i *If) NodePos() Position    { return i.Pos }
func (i *If) NodeEndPos() Position { return i.EndPos }
func (*If) NodeType() NodeType     { return NODE_IF }
func (*If) isItem()                {}
func (*If) isStmt()                {}

// CallStmt is `CALL name(args)` used as a statement.
type CallStmt struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []Expr
}

func (c *CallStmt) NodePos() Position    { return c.Pos }
func (c *CallStmt) NodeEndPos() Position { return c.EndPos }
func (*CallStmt) NodeType() NodeType     { return NODE_CALL_STMT }
func (*CallStmt) isItem()                {}
func (*CallStmt) isStmt()                {}

// Return is `return [expr]`.
type Return struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

func (r *Return) NodePos() Position    { return r.Pos }
func (r *Return) NodeEndPos() Position { return r.EndPos }
func (*Return) NodeType() NodeType     { return NODE_RETURN }
func (*Return) isItem()                {}
func (*Return) isStmt()                {}

// ExprStmt is a bare expression statement (used for array declarations
// like `A[1..n]`); it never contributes cost (spec.md §4.4).
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return NODE_EXPR_STMT }
func (*ExprStmt) isItem()                {}
func (*ExprStmt) isStmt()                {}

// ObjectDecl is a class-instance declaration; ignored for cost.
type ObjectDecl struct {
	Pos       Position
	EndPos    Position
	ClassName string
	VarName   string
}

func (o *ObjectDecl) NodePos() Position    { return o.Pos }
func (o *ObjectDecl) NodeEndPos() Position { return o.EndPos }
func (*ObjectDecl) NodeType() NodeType     { return NODE_OBJECT_DECL }
func (*ObjectDecl) isItem()                {}
func (*ObjectDecl) isStmt()                {}
