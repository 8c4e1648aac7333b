package costir

// JSON renders v as a tagged map suitable for encoding/json (spec.md §6's
// result payload embeds the IR alongside the printed forms). Each node
// carries a "kind" discriminator ("const", "symbol", "sum", "product",
// "power", "log", "max", "min", "piecewise"), plus its own fields
// recursively rendered the same way.
func JSON(v Value) map[string]any {
	switch t := v.(type) {
	case K:
		return map[string]any{"kind": "const", "value": t.R.RatString()}
	case Sym:
		return map[string]any{"kind": "symbol", "name": t.Name}
	case Sum:
		return map[string]any{"kind": "sum", "terms": jsonList(t.Terms)}
	case Prod:
		return map[string]any{"kind": "product", "factors": jsonList(t.Factors)}
	case Pow:
		return map[string]any{"kind": "power", "base": JSON(t.Base), "exponent": JSON(t.Exp)}
	case Log:
		base := "2"
		if t.Base != nil {
			base = t.Base.RatString()
		}
		return map[string]any{"kind": "log", "base": base, "arg": JSON(t.Arg)}
	case Max:
		return map[string]any{"kind": "max", "alternatives": jsonList(t.Alts)}
	case Min:
		return map[string]any{"kind": "min", "alternatives": jsonList(t.Alts)}
	case Piecewise:
		cases := make([]map[string]any, len(t.Cases))
		for i, c := range t.Cases {
			cases[i] = map[string]any{"cond": c.Cond, "value": JSON(c.Value)}
		}
		out := map[string]any{"kind": "piecewise", "cases": cases}
		if t.Default != nil {
			out["default"] = JSON(t.Default)
		}
		return out
	default:
		return map[string]any{"kind": "unknown"}
	}
}

func jsonList(vs []Value) []map[string]any {
	out := make([]map[string]any, len(vs))
	for i, v := range vs {
		out[i] = JSON(v)
	}
	return out
}
