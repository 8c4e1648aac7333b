package ast

// Walk visits n and every descendant in source order, calling visit on
// each node. If visit returns false, Walk stops descending into that
// node's children (it does not stop the whole traversal unless the
// caller also tracks that itself, as Proc.CallsSelf in program.go does).
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	switch v := n.(type) {
	case *Program:
		for _, it := range v.Items {
			Walk(it, visit)
		}
	case *Proc:
		for _, p := range v.Params {
			if p.Lo != nil {
				Walk(p.Lo, visit)
			}
			if p.Hi != nil {
				Walk(p.Hi, visit)
			}
		}
		Walk(v.Body, visit)
	case *Block:
		for _, s := range v.Stmts {
			Walk(s, visit)
		}
	case *Assign:
		Walk(v.Target, visit)
		Walk(v.Value, visit)
	case *For:
		Walk(v.Start, visit)
		Walk(v.End, visit)
		if v.Step != nil {
			Walk(v.Step, visit)
		}
		Walk(v.Body, visit)
	case *While:
		Walk(v.Cond, visit)
		Walk(v.Body, visit)
	case *Repeat:
		for _, s := range v.Stmts {
			Walk(s, visit)
		}
		Walk(v.Until, visit)
	case *If:
		Walk(v.Cond, visit)
		Walk(v.Then, visit)
		if v.Else != nil {
			Walk(v.Else, visit)
		}
	case *CallStmt:
		for _, a := range v.Args {
			Walk(a, visit)
		}
	case *Return:
		if v.Value != nil {
			Walk(v.Value, visit)
		}
	case *ExprStmt:
		Walk(v.Value, visit)
	case *IndexExpr:
		Walk(v.Base, visit)
		for _, idx := range v.Indices {
			Walk(idx, visit)
		}
	case *SliceExpr:
		Walk(v.Base, visit)
		Walk(v.Lo, visit)
		Walk(v.Hi, visit)
	case *MemberExpr:
		Walk(v.Base, visit)
	case *UnaryExpr:
		Walk(v.Value, visit)
	case *BinExpr:
		Walk(v.Left, visit)
		Walk(v.Right, visit)
	case *CallExpr:
		for _, a := range v.Args {
			Walk(a, visit)
		}
	case *CeilExpr:
		Walk(v.Value, visit)
	case *FloorExpr:
		Walk(v.Value, visit)
	}
}
