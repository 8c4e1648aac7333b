package ast

// Depth computes the maximum statement-nesting depth under n (spec.md §5's
// resource ceiling of 64), counting each For, While, Repeat, and If level
// as one step of depth. Blocks, procedures and program wrappers do not add
// depth on their own — only the control-flow nesting inside them does.
func Depth(n Node) int {
	switch v := n.(type) {
	case *Program:
		max := 0
		for _, it := range v.Items {
			if d := Depth(it); d > max {
				max = d
			}
		}
		return max
	case *Proc:
		return Depth(v.Body)
	case *Block:
		max := 0
		for _, s := range v.Stmts {
			if d := Depth(s); d > max {
				max = d
			}
		}
		return max
	case *For:
		return 1 + Depth(v.Body)
	case *While:
		return 1 + Depth(v.Body)
	case *Repeat:
		max := 0
		for _, s := range v.Stmts {
			if d := Depth(s); d > max {
				max = d
			}
		}
		return 1 + max
	case *If:
		thenDepth := Depth(v.Then)
		elseDepth := 0
		if v.Else != nil {
			elseDepth = Depth(v.Else)
		}
		max := thenDepth
		if elseDepth > max {
			max = elseDepth
		}
		return 1 + max
	default:
		return 0
	}
}
