package costir

import "math/big"

// CmpResult is the result of an asymptotic comparison between two cost IR
// values (spec.md §4.3 "Asymptotic compare").
type CmpResult int

const (
	CmpLess CmpResult = iota
	CmpEqual
	CmpGreater
	CmpIncomparable
)

// profile summarizes a single monomial's asymptotic growth: its polynomial
// degree per symbol, whether it also grows exponentially in some symbol,
// and how many logarithmic factors it carries (used only to break ties
// between equal polynomial degrees, per spec.md §4.3's dominance rule).
type profile struct {
	degrees     map[string]*big.Rat
	exponential bool
	expBase     *big.Rat
	logPower    *big.Rat
}

func newProfile() profile {
	return profile{degrees: map[string]*big.Rat{}, logPower: big.NewRat(0, 1)}
}

func (p profile) addDegree(sym string, amount *big.Rat) {
	cur, ok := p.degrees[sym]
	if !ok {
		cur = big.NewRat(0, 1)
		p.degrees[sym] = cur
	}
	cur.Add(cur, amount)
}

func mergeProfiles(a, b profile) profile {
	out := newProfile()
	for sym, deg := range a.degrees {
		out.addDegree(sym, deg)
	}
	for sym, deg := range b.degrees {
		out.addDegree(sym, deg)
	}
	out.logPower.Add(a.logPower, b.logPower)
	out.exponential = a.exponential || b.exponential
	switch {
	case a.exponential:
		out.expBase = a.expBase
	case b.exponential:
		out.expBase = b.expBase
	}
	return out
}

func scaleProfile(p profile, factor *big.Rat) profile {
	out := newProfile()
	for sym, deg := range p.degrees {
		scaled := new(big.Rat).Mul(deg, factor)
		out.degrees[sym] = scaled
	}
	out.logPower.Mul(p.logPower, factor)
	out.exponential = p.exponential
	out.expBase = p.expBase
	return out
}

// profileOf computes the growth profile of a single (already simplified)
// monomial. Nested Sum/Max/Min are reduced to their own dominant
// representative first.
func profileOf(v Value) profile {
	switch t := v.(type) {
	case K:
		return newProfile()
	case Sym:
		p := newProfile()
		p.addDegree(t.Name, big.NewRat(1, 1))
		return p
	case Pow:
		return profileOfPow(t)
	case Log:
		out := newProfile()
		out.logPower.Add(out.logPower, big.NewRat(1, 1))
		return out
	case Prod:
		p := newProfile()
		for _, f := range t.Factors {
			p = mergeProfiles(p, profileOf(f))
		}
		return p
	case Sum:
		return profileOf(DominantTerm(t))
	case Max:
		if len(t.Alts) == 0 {
			return newProfile()
		}
		return profileOf(t.Alts[0])
	case Min:
		if len(t.Alts) == 0 {
			return newProfile()
		}
		return profileOf(t.Alts[0])
	case Piecewise:
		if t.Default != nil {
			return profileOf(t.Default)
		}
		if len(t.Cases) > 0 {
			return profileOf(t.Cases[0].Value)
		}
		return newProfile()
	default:
		return newProfile()
	}
}

func profileOfPow(p Pow) profile {
	if baseK, ok := p.Base.(K); ok {
		if _, ok := p.Exp.(K); !ok {
			// c^sym: exponential in whatever symbol the exponent names.
			out := newProfile()
			out.exponential = true
			out.expBase = baseK.R
			return out
		}
	}
	if expK, ok := p.Exp.(K); ok {
		base := profileOf(p.Base)
		return scaleProfile(base, expK.R)
	}
	// Symbolic exponent over a non-constant base (rare in this dialect):
	// treat as exponential so it always dominates polynomial terms.
	out := newProfile()
	out.exponential = true
	out.expBase = big.NewRat(2, 1)
	return out
}

// Compare implements spec.md §4.3's asymptotic ordering: exponential beats
// polynomial; among polynomials, per-symbol degree dominance decides, with
// logarithmic factor count breaking ties at equal degree; incomparable
// symbol sets (neither side dominates the other) return CmpIncomparable.
func Compare(a, b Value) CmpResult {
	pa := profileOf(dominantMonomial(Simplify(a)))
	pb := profileOf(dominantMonomial(Simplify(b)))
	return compareProfiles(pa, pb)
}

func compareProfiles(pa, pb profile) CmpResult {
	if pa.exponential != pb.exponential {
		if pa.exponential {
			return CmpGreater
		}
		return CmpLess
	}
	if pa.exponential && pb.exponential {
		switch pa.expBase.Cmp(pb.expBase) {
		case 1:
			return CmpGreater
		case -1:
			return CmpLess
		default:
			return CmpEqual
		}
	}

	symbols := map[string]bool{}
	for s := range pa.degrees {
		symbols[s] = true
	}
	for s := range pb.degrees {
		symbols[s] = true
	}

	aWinsAny, bWinsAny := false, false
	for s := range symbols {
		da := degreeOf(pa, s)
		db := degreeOf(pb, s)
		switch da.Cmp(db) {
		case 1:
			aWinsAny = true
		case -1:
			bWinsAny = true
		}
	}
	switch {
	case aWinsAny && bWinsAny:
		return CmpIncomparable
	case aWinsAny:
		return CmpGreater
	case bWinsAny:
		return CmpLess
	}

	switch pa.logPower.Cmp(pb.logPower) {
	case 1:
		return CmpGreater
	case -1:
		return CmpLess
	default:
		return CmpEqual
	}
}

func degreeOf(p profile, sym string) *big.Rat {
	if d, ok := p.degrees[sym]; ok {
		return d
	}
	return big.NewRat(0, 1)
}

// dominantMonomial reduces a Sum to the single term with the greatest
// profile, used as the representative when comparing a compound
// expression against another value.
func dominantMonomial(v Value) Value {
	sum, ok := v.(Sum)
	if !ok {
		return v
	}
	if len(sum.Terms) == 0 {
		return Zero()
	}
	best := sum.Terms[0]
	bestP := profileOf(best)
	for _, t := range sum.Terms[1:] {
		tp := profileOf(t)
		if compareProfiles(tp, bestP) == CmpGreater {
			best, bestP = t, tp
		}
	}
	return best
}

// DominantTerm returns the asymptotically maximal term(s) of a Sum: a
// single Value when one term strictly dominates, or a canonical Sum of the
// co-dominant (equal or mutually incomparable-but-undominated) terms
// otherwise (spec.md §4.3).
func DominantTerm(v Value) Value {
	s := Simplify(v)
	sum, ok := s.(Sum)
	if !ok {
		return s
	}
	terms := sum.Terms
	if len(terms) == 0 {
		return Zero()
	}
	if len(terms) == 1 {
		return terms[0]
	}

	var maximal []Value
	for i, t := range terms {
		dominated := false
		for j, u := range terms {
			if i == j {
				continue
			}
			if Compare(u, t) == CmpGreater {
				dominated = true
				break
			}
		}
		if !dominated {
			maximal = append(maximal, t)
		}
	}
	if len(maximal) == 1 {
		return maximal[0]
	}
	return simplifySum(Sum{Terms: maximal})
}
