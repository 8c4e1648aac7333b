package iterative

import "bigoh/internal/costir"

// TermInfo is one monomial of a strong-bounds polynomial.
type TermInfo struct {
	Expr   string `json:"expr"`
	Degree int    `json:"degree"`
}

// StrongBounds is the closed-form polynomial bound spec.md §4.4/§6 report
// when the final cost is a determinable-coefficient polynomial in a single
// symbol.
type StrongBounds struct {
	Formula      string
	Terms        []TermInfo
	DominantTerm string
	Constant     string
}

// ComputeStrongBounds extracts spec.md §4.4's strong_bounds from a
// simplified worst-case cost, returning nil when the cost isn't a
// single-symbol polynomial with known rational coefficients.
func ComputeStrongBounds(worst costir.Value) *StrongBounds {
	pf, ok := costir.AsPolynomial(worst)
	if !ok {
		return nil
	}
	terms := make([]TermInfo, len(pf.Degrees))
	for i, d := range pf.Degrees {
		terms[i] = TermInfo{Expr: costir.ASCII(pf.TermAt(i)), Degree: d}
	}
	return &StrongBounds{
		Formula:      pf.Formula,
		Terms:        terms,
		DominantTerm: costir.ASCII(pf.Dominant),
		Constant:     pf.Constant().RatString(),
	}
}
