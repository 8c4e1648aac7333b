package ast

// Node is implemented by every AST node (spec.md §3: "every statement
// carries an optional source location"). Grounded on the teacher's
// internal/ast.Node interface, minus the debug-metadata hooks the teacher
// carries for its DAP/LSP source-mapping tooling — nothing in this
// repository needs bytecode<->source mapping.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
}

// Item is a top-level element of a Program: a Class, a Proc, or a bare
// Stmt (top-level statements form the implicit main program, spec.md §4.1).
type Item interface {
	Node
	isItem()
}

// Stmt is any statement node. Every Stmt is also a valid top-level Item.
type Stmt interface {
	Item
	isStmt()
}

// Expr is any expression node. LValue reuses the same set (Var/Index/
// Member expressions may appear as assignment targets) rather than
// duplicating a parallel node hierarchy, since they are structurally
// identical in this dialect.
type Expr interface {
	Node
	isExpr()
}

// LValue is an Expr known to be valid as an assignment target: *VarExpr,
// *IndexExpr, or *MemberExpr.
type LValue = Expr
