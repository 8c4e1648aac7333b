package ast

// Program is the root node: an ordered sequence of classes, procedures,
// and top-level statements (spec.md §3 "Program").
type Program struct {
	Pos    Position
	EndPos Position
	Items  []Item
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return NODE_PROGRAM }

// Procs returns the procedures declared at the top level, in order.
func (p *Program) Procs() []*Proc {
	var out []*Proc
	for _, it := range p.Items {
		if proc, ok := it.(*Proc); ok {
			out = append(out, proc)
		}
	}
	return out
}

// MainStatements returns the top-level statements that are not inside any
// Proc — the implicit main program (spec.md §4.1).
func (p *Program) MainStatements() []Stmt {
	var out []Stmt
	for _, it := range p.Items {
		if stmt, ok := it.(Stmt); ok {
			out = append(out, stmt)
		}
	}
	return out
}

// Class is a declarative-only attribute bag (spec.md §3 "Class").
type Class struct {
	Pos        Position
	EndPos     Position
	Name       string
	Attributes []string
}

func (c *Class) NodePos() Position    { return c.Pos }
func (c *Class) NodeEndPos() Position { return c.EndPos }
func (*Class) NodeType() NodeType     { return NODE_CLASS }
func (*Class) isItem()                {}

// Param is a procedure parameter: a bare name, or a name with slice
// bounds `[lo..hi]` (spec.md §3 "Proc").
type Param struct {
	Pos      Position
	EndPos   Position
	Name     string
	HasSlice bool
	Lo, Hi   Expr
}

// Proc is a named procedure with parameters and a body block.
type Proc struct {
	Pos    Position
	EndPos Position
	Name   string
	Params []*Param
	Body   *Block
}

func (p *Proc) NodePos() Position    { return p.Pos }
func (p *Proc) NodeEndPos() Position { return p.EndPos }
func (*Proc) NodeType() NodeType     { return NODE_PROC }
func (*Proc) isItem()                {}

// CallsSelf reports whether the procedure body contains a Call to its own
// name anywhere in its statement tree (spec.md §4.5 recursion trigger).
func (p *Proc) CallsSelf() bool {
	found := false
	Walk(p.Body, func(n Node) bool {
		if call, ok := n.(*CallStmt); ok && call.Name == p.Name {
			found = true
			return false
		}
		if call, ok := n.(*CallExpr); ok && call.Name == p.Name {
			found = true
			return false
		}
		return true
	})
	return found
}

// Block is a begin…end body: an ordered sequence of statements.
type Block struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return NODE_BLOCK }
