package costir

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// PolyForm is the "polynomial-with-constants" extraction of spec.md §4.3:
// an IR value that reduces to a single-symbol polynomial with known
// rational coefficients, ordered from the highest degree to the constant
// term.
type PolyForm struct {
	Symbol       string
	Coefficients []*big.Rat // index 0 is the highest degree present
	Degrees      []int      // parallel to Coefficients
	Dominant     Value
	Formula      string
}

// AsPolynomial attempts to express v as a polynomial in a single symbol.
// It returns false if v mixes more than one symbol, carries a log or
// exponential factor, or has a non-integer/negative exponent anywhere.
func AsPolynomial(v Value) (PolyForm, bool) {
	s := Simplify(v)
	terms := []Value{s}
	if sum, ok := s.(Sum); ok {
		terms = sum.Terms
	}

	symbol := ""
	byDegree := map[int]*big.Rat{}
	for _, term := range terms {
		coeff, deg, sym, ok := monomialDegree(term)
		if !ok {
			return PolyForm{}, false
		}
		if sym != "" {
			if symbol == "" {
				symbol = sym
			} else if symbol != sym {
				return PolyForm{}, false
			}
		}
		cur, exists := byDegree[deg]
		if !exists {
			cur = big.NewRat(0, 1)
			byDegree[deg] = cur
		}
		cur.Add(cur, coeff)
	}
	if symbol == "" {
		symbol = "n"
	}

	var degrees []int
	for d := range byDegree {
		degrees = append(degrees, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	coeffs := make([]*big.Rat, 0, len(degrees))
	for _, d := range degrees {
		coeffs = append(coeffs, byDegree[d])
	}

	pf := PolyForm{Symbol: symbol, Coefficients: coeffs, Degrees: degrees}
	if len(degrees) > 0 {
		pf.Dominant = monomialFor(symbol, coeffs[0], degrees[0])
	} else {
		pf.Dominant = Zero()
	}
	pf.Formula = pf.renderFormula()
	return pf, true
}

// monomialDegree extracts (coefficient, degree, symbol) from a single
// simplified monomial, failing on logs, exponentials, or non-integer
// exponents that don't fit the polynomial form.
func monomialDegree(v Value) (coeff *big.Rat, degree int, symbol string, ok bool) {
	coeffRat, rest := splitCoefficient(v)
	switch t := rest.(type) {
	case K:
		return coeffRat, 0, "", true
	case Sym:
		return coeffRat, 1, t.Name, true
	case Pow:
		sym, ok := t.Base.(Sym)
		if !ok {
			return nil, 0, "", false
		}
		expK, ok := t.Exp.(K)
		if !ok || !expK.R.IsInt() || expK.R.Sign() < 0 {
			return nil, 0, "", false
		}
		return coeffRat, int(expK.R.Num().Int64()), sym.Name, true
	default:
		return nil, 0, "", false
	}
}

func monomialFor(symbol string, coeff *big.Rat, degree int) Value {
	var base Value
	switch degree {
	case 0:
		return K{R: coeff}
	case 1:
		base = Sym{Name: symbol}
	default:
		base = Pow{Base: Sym{Name: symbol}, Exp: KInt(int64(degree))}
	}
	if coeff.Cmp(big.NewRat(1, 1)) == 0 {
		return base
	}
	return Prod{Factors: []Value{K{R: coeff}, base}}
}

func (pf PolyForm) renderFormula() string {
	if len(pf.Coefficients) == 0 {
		return "0"
	}
	var parts []string
	for i, c := range pf.Coefficients {
		parts = append(parts, ASCII(monomialFor(pf.Symbol, c, pf.Degrees[i])))
	}
	return strings.Join(parts, " + ")
}

// TermAt rebuilds the i-th monomial (coefficient and symbol power) as a
// Value, for callers that want to render individual terms.
func (pf PolyForm) TermAt(i int) Value {
	return monomialFor(pf.Symbol, pf.Coefficients[i], pf.Degrees[i])
}

// Constant returns the degree-0 coefficient, or zero if absent.
func (pf PolyForm) Constant() *big.Rat {
	for i, d := range pf.Degrees {
		if d == 0 {
			return pf.Coefficients[i]
		}
	}
	return big.NewRat(0, 1)
}

func (pf PolyForm) String() string {
	return fmt.Sprintf("PolyForm(%s)", pf.Formula)
}
