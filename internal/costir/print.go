package costir

import (
	"fmt"
	"math/big"
	"strings"
)

var two = big.NewRat(2, 1)

// ASCII renders a simplified Value as the plain-text form used in big_o
// strings ("n*log(n)", "n^2") and line-cost dumps (spec.md §4.3).
func ASCII(v Value) string {
	return asciiPrec(Simplify(v), 0)
}

// asciiPrec renders with minimal parenthesization: prec is the binding
// power of the surrounding context (0 sum, 1 product, 2 power).
func asciiPrec(v Value, prec int) string {
	switch t := v.(type) {
	case K:
		return t.R.RatString()
	case Sym:
		return t.Name
	case Sum:
		parts := make([]string, len(t.Terms))
		for i, term := range t.Terms {
			parts[i] = asciiPrec(term, 0)
		}
		s := strings.Join(parts, " + ")
		if prec > 0 {
			return "(" + s + ")"
		}
		return s
	case Prod:
		parts := make([]string, len(t.Factors))
		for i, f := range t.Factors {
			parts[i] = asciiPrec(f, 1)
		}
		s := strings.Join(parts, "*")
		if prec > 1 {
			return "(" + s + ")"
		}
		return s
	case Pow:
		return asciiPrec(t.Base, 2) + "^" + asciiPrec(t.Exp, 2)
	case Log:
		if t.Base == nil || t.Base.Cmp(two) == 0 {
			return fmt.Sprintf("log(%s)", asciiPrec(t.Arg, 0))
		}
		return fmt.Sprintf("log_%s(%s)", t.Base.RatString(), asciiPrec(t.Arg, 0))
	case Max:
		return "max(" + joinAscii(t.Alts) + ")"
	case Min:
		return "min(" + joinAscii(t.Alts) + ")"
	case Piecewise:
		var b strings.Builder
		b.WriteString("piecewise(")
		for i, c := range t.Cases {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s -> %s", c.Cond, asciiPrec(c.Value, 0))
		}
		if t.Default != nil {
			fmt.Fprintf(&b, ", default -> %s", asciiPrec(t.Default, 0))
		}
		b.WriteString(")")
		return b.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinAscii(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = asciiPrec(v, 0)
	}
	return strings.Join(parts, ", ")
}

// LaTeX renders a simplified Value as a LaTeX math fragment, used by the
// iterative analyzer's summation strings (spec.md §4.4).
func LaTeX(v Value) string {
	return latexPrec(Simplify(v), 0)
}

func latexPrec(v Value, prec int) string {
	switch t := v.(type) {
	case K:
		if t.R.IsInt() {
			return t.R.RatString()
		}
		return fmt.Sprintf("\\frac{%s}{%s}", t.R.Num().String(), t.R.Denom().String())
	case Sym:
		return t.Name
	case Sum:
		parts := make([]string, len(t.Terms))
		for i, term := range t.Terms {
			parts[i] = latexPrec(term, 0)
		}
		s := strings.Join(parts, " + ")
		if prec > 0 {
			return "(" + s + ")"
		}
		return s
	case Prod:
		parts := make([]string, len(t.Factors))
		for i, f := range t.Factors {
			parts[i] = latexPrec(f, 1)
		}
		s := strings.Join(parts, " \\cdot ")
		if prec > 1 {
			return "(" + s + ")"
		}
		return s
	case Pow:
		return fmt.Sprintf("%s^{%s}", latexPrec(t.Base, 2), latexPrec(t.Exp, 0))
	case Log:
		base := "2"
		if t.Base != nil {
			base = t.Base.RatString()
		}
		return fmt.Sprintf("\\log_{%s}(%s)", base, latexPrec(t.Arg, 0))
	case Max:
		return "\\max(" + joinLatex(t.Alts) + ")"
	case Min:
		return "\\min(" + joinLatex(t.Alts) + ")"
	default:
		return asciiPrec(v, prec)
	}
}

func joinLatex(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = latexPrec(v, 0)
	}
	return strings.Join(parts, ", ")
}
