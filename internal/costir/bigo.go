package costir

// BigO renders the asymptotic class of a (possibly un-simplified) cost
// value: the ASCII form of its dominant term with the constant factor
// dropped, since Big-O notation tracks growth class, not the coefficient.
// Single-symbol shapes come out in the acceptance-set form of spec.md §8
// ("1", "log(n)", "n", "n*log(n)", "n^k", "2^n"); other dominant terms
// (several symbols, co-dominant sums, Max/Min) are returned as their ASCII
// rendering.
func BigO(v Value) string {
	dominant := DominantTerm(v)
	if _, ok := dominant.(K); ok {
		return "1"
	}
	_, rest := splitCoefficient(dominant)
	if isOne(rest) {
		return "1"
	}
	return ASCII(rest)
}
