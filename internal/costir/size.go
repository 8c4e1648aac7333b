package costir

// Size counts the nodes in v's expression tree, used as a cheap proxy for
// simplification-step cost (spec.md §5/§7's 10,000-step ceiling): rather
// than instrument Simplify's internal rewrite loop directly, a caller can
// reject inputs whose Size already implies an intractable number of
// rewrite passes before simplification is attempted.
func Size(v Value) int {
	switch t := v.(type) {
	case K, Sym:
		return 1
	case Sum:
		n := 1
		for _, term := range t.Terms {
			n += Size(term)
		}
		return n
	case Prod:
		n := 1
		for _, f := range t.Factors {
			n += Size(f)
		}
		return n
	case Pow:
		return 1 + Size(t.Base) + Size(t.Exp)
	case Log:
		return 1 + Size(t.Arg)
	case Max:
		n := 1
		for _, a := range t.Alts {
			n += Size(a)
		}
		return n
	case Min:
		n := 1
		for _, a := range t.Alts {
			n += Size(a)
		}
		return n
	case Piecewise:
		n := 1 + Size(t.Default)
		for _, c := range t.Cases {
			n += Size(c.Value)
		}
		return n
	default:
		return 1
	}
}
