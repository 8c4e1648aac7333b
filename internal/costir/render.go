package costir

import (
	"fmt"
	"sort"
	"strings"
)

// renderKey produces a canonical string for a Value, used both to group
// like terms during simplification and as the final lexicographic
// tiebreaker when sorting (spec.md §4.3 "sort... then lexicographic").
// Sub-lists are sorted before rendering so Prod{a,b} and Prod{b,a} produce
// the same key.
func renderKey(v Value) string {
	switch t := v.(type) {
	case K:
		return "K(" + t.R.RatString() + ")"
	case Sym:
		return "S(" + t.Name + ")"
	case Pow:
		return "Pow(" + renderKey(t.Base) + "," + renderKey(t.Exp) + ")"
	case Log:
		base := "?"
		if t.Base != nil {
			base = t.Base.RatString()
		}
		return "Log(" + base + "," + renderKey(t.Arg) + ")"
	case Prod:
		keys := make([]string, len(t.Factors))
		for i, f := range t.Factors {
			keys[i] = renderKey(f)
		}
		sort.Strings(keys)
		return "Prod(" + strings.Join(keys, "*") + ")"
	case Sum:
		keys := make([]string, len(t.Terms))
		for i, term := range t.Terms {
			keys[i] = renderKey(term)
		}
		sort.Strings(keys)
		return "Sum(" + strings.Join(keys, "+") + ")"
	case Max:
		return renderExtremeKey("Max", t.Alts)
	case Min:
		return renderExtremeKey("Min", t.Alts)
	case Piecewise:
		return "Piecewise(...)"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func renderExtremeKey(name string, alts []Value) string {
	keys := make([]string, len(alts))
	for i, a := range alts {
		keys[i] = renderKey(a)
	}
	sort.Strings(keys)
	return name + "(" + strings.Join(keys, ",") + ")"
}

// lessTerm orders two already-simplified Values for deterministic display:
// by symbol/degree profile (higher degree first), then by log power, then
// lexicographically by canonical key (spec.md §4.3).
func lessTerm(a, b Value) bool {
	pa, pb := profileOf(a), profileOf(b)
	switch compareProfiles(pa, pb) {
	case CmpGreater:
		return true
	case CmpLess:
		return false
	}
	return renderKey(a) < renderKey(b)
}
