package ast

import "math/big"

// NumExpr is a numeric literal. Value is an exact rational so it feeds
// directly into the cost IR's K(r) constants without a float round-trip.
type NumExpr struct {
	Pos    Position
	EndPos Position
	Value  *big.Rat
	Text   string // original source spelling, for round-trip printing
}

func (n *NumExpr) NodePos() Position    { return n.Pos }
func (n *NumExpr) NodeEndPos() Position { return n.EndPos }
func (*NumExpr) NodeType() NodeType     { return NODE_NUM }
func (*NumExpr) isExpr()                {}

// BoolExpr is the literal T or F (uppercase-only, spec.md §3 invariant).
type BoolExpr struct {
	Pos    Position
	EndPos Position
	Value  bool
}

func (b *BoolExpr) NodePos() Position    { return b.Pos }
func (b *BoolExpr) NodeEndPos() Position { return b.EndPos }
func (*BoolExpr) NodeType() NodeType     { return NODE_BOOL }
func (*BoolExpr) isExpr()                {}

// VarExpr is a bare identifier reference.
type VarExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

func (v *VarExpr) NodePos() Position    { return v.Pos }
func (v *VarExpr) NodeEndPos() Position { return v.EndPos }
func (*VarExpr) NodeType() NodeType     { return NODE_VAR_EXPR }
func (*VarExpr) isExpr()                {}

// IndexExpr is `base[i, j, ...]`.
type IndexExpr struct {
	Pos     Position
	EndPos  Position
	Base    Expr
	Indices []Expr
}

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return NODE_INDEX_EXPR }
func (*IndexExpr) isExpr()                {}

// SliceExpr is `base[lo..hi]`, used in array declarations.
type SliceExpr struct {
	Pos, EndPos Position
	Base        Expr
	Lo, Hi      Expr
}

func (s *SliceExpr) NodePos() Position    { return s.Pos }
func (s *SliceExpr) NodeEndPos() Position { return s.EndPos }
func (*SliceExpr) NodeType() NodeType     { return NODE_SLICE_EXPR }
func (*SliceExpr) isExpr()                {}

// MemberExpr is `base.field`.
type MemberExpr struct {
	Pos, EndPos Position
	Base        Expr
	Field       string
}

func (m *MemberExpr) NodePos() Position    { return m.Pos }
func (m *MemberExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberExpr) NodeType() NodeType     { return NODE_MEMBER_EXPR }
func (*MemberExpr) isExpr()                {}

// UnaryExpr is a prefix operator: "-", "not".
type UnaryExpr struct {
	Pos, EndPos Position
	Op          string
	Value       Expr
}

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return NODE_UNARY }
func (*UnaryExpr) isExpr()                {}

// BinExpr is a binary operator application. Op is the canonical ASCII
// spelling even when the source used a Unicode glyph (e.g. "<=" for "≤"),
// so downstream code need only match one spelling.
type BinExpr struct {
	Pos, EndPos Position
	Op          string
	Left, Right Expr
}

func (b *BinExpr) NodePos() Position    { return b.Pos }
func (b *BinExpr) NodeEndPos() Position { return b.EndPos }
func (*BinExpr) NodeType() NodeType     { return NODE_BIN }
func (*BinExpr) isExpr()                {}

// CallExpr is `name(args)` used as an expression (e.g. `n*Fact(n-1)`).
type CallExpr struct {
	Pos, EndPos Position
	Name        string
	Args        []Expr
}

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return NODE_CALL_EXPR }
func (*CallExpr) isExpr()                {}

// CeilExpr is `⌈e⌉`.
type CeilExpr struct {
	Pos, EndPos Position
	Value       Expr
}

func (c *CeilExpr) NodePos() Position    { return c.Pos }
func (c *CeilExpr) NodeEndPos() Position { return c.EndPos }
func (*CeilExpr) NodeType() NodeType     { return NODE_CEIL }
func (*CeilExpr) isExpr()                {}

// FloorExpr is `⌊e⌋`.
type FloorExpr struct {
	Pos, EndPos Position
	Value       Expr
}

func (f *FloorExpr) NodePos() Position    { return f.Pos }
func (f *FloorExpr) NodeEndPos() Position { return f.EndPos }
func (*FloorExpr) NodeType() NodeType     { return NODE_FLOOR }
func (*FloorExpr) isExpr()                {}
