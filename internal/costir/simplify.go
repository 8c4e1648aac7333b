package costir

import (
	"math/big"
	"sort"
)

// Simplify rewrites a Value into canonical form: nested Sum/Prod are
// flattened, like terms are collected, identity rules fire, and children
// are sorted deterministically (spec.md §4.3). It always returns a fresh
// Value; inputs are never mutated.
func Simplify(v Value) Value {
	switch t := v.(type) {
	case K:
		return K{R: new(big.Rat).Set(t.R)}
	case Sym:
		return t
	case Sum:
		return simplifySum(t)
	case Prod:
		return simplifyProd(t)
	case Pow:
		return simplifyPow(t)
	case Log:
		return simplifyLog(t)
	case Max:
		return simplifyExtreme(t.Alts, true)
	case Min:
		return simplifyExtreme(t.Alts, false)
	case Piecewise:
		cases := make([]PiecewiseCase, len(t.Cases))
		for i, c := range t.Cases {
			cases[i] = PiecewiseCase{Cond: c.Cond, Value: Simplify(c.Value)}
		}
		var def Value
		if t.Default != nil {
			def = Simplify(t.Default)
		}
		return Piecewise{Cases: cases, Default: def}
	default:
		return v
	}
}

// flattenSum simplifies each child and splices nested Sums in place.
func flattenSum(terms []Value) []Value {
	var out []Value
	for _, t := range terms {
		s := Simplify(t)
		if inner, ok := s.(Sum); ok {
			out = append(out, inner.Terms...)
		} else {
			out = append(out, s)
		}
	}
	return out
}

func simplifySum(s Sum) Value {
	flat := flattenSum(s.Terms)

	constant := big.NewRat(0, 1)
	type bucket struct {
		rest  Value
		coeff *big.Rat
		key   string
	}
	var order []string
	buckets := map[string]*bucket{}

	for _, term := range flat {
		coeff, rest := splitCoefficient(term)
		if isOne(rest) {
			constant.Add(constant, coeff)
			continue
		}
		key := renderKey(rest)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{rest: rest, coeff: big.NewRat(0, 1), key: key}
			buckets[key] = b
			order = append(order, key)
		}
		b.coeff.Add(b.coeff, coeff)
	}

	var out []Value
	for _, key := range order {
		b := buckets[key]
		if b.coeff.Sign() == 0 {
			continue
		}
		out = append(out, reattachCoefficient(b.coeff, b.rest))
	}
	if constant.Sign() != 0 || len(out) == 0 {
		out = append(out, K{R: constant})
	}

	sort.SliceStable(out, func(i, j int) bool { return lessTerm(out[i], out[j]) })

	if len(out) == 1 {
		return out[0]
	}
	return Sum{Terms: out}
}

// flattenProd simplifies each child and splices nested Prods in place.
func flattenProd(factors []Value) []Value {
	var out []Value
	for _, f := range factors {
		s := Simplify(f)
		if inner, ok := s.(Prod); ok {
			out = append(out, inner.Factors...)
		} else {
			out = append(out, s)
		}
	}
	return out
}

func simplifyProd(p Prod) Value {
	flat := flattenProd(p.Factors)

	// Distribute over any Sum factor so polynomial costs normalize to a
	// flat sum of monomials; AsPolynomial and the like-term collection in
	// simplifySum both depend on this normal form.
	for i, f := range flat {
		if sum, ok := f.(Sum); ok {
			rest := append(append([]Value{}, flat[:i]...), flat[i+1:]...)
			terms := make([]Value, 0, len(sum.Terms))
			for _, t := range sum.Terms {
				terms = append(terms, Prod{Factors: append(append([]Value{}, rest...), t)})
			}
			return simplifySum(Sum{Terms: terms})
		}
	}

	coeff := big.NewRat(1, 1)
	var rest []Value
	for _, f := range flat {
		if k, ok := f.(K); ok {
			coeff.Mul(coeff, k.R)
			continue
		}
		rest = append(rest, f)
	}
	if coeff.Sign() == 0 {
		return Zero()
	}

	// Combine like bases: x * x^2 -> x^3, collected via a base->exponent map
	// keyed on the base's canonical rendering.
	type powBucket struct {
		base Value
		exp  *big.Rat
		key  string
	}
	var order []string
	buckets := map[string]*powBucket{}
	var nonPoly []Value // exponents that are themselves Sym (e.g. 2^n): kept unmerged

	for _, f := range rest {
		base, exp, ok := asPower(f)
		if !ok {
			nonPoly = append(nonPoly, f)
			continue
		}
		key := renderKey(base)
		b, exists := buckets[key]
		if !exists {
			b = &powBucket{base: base, exp: big.NewRat(0, 1), key: key}
			buckets[key] = b
			order = append(order, key)
		}
		b.exp.Add(b.exp, exp)
	}

	var factors []Value
	for _, key := range order {
		b := buckets[key]
		switch {
		case b.exp.Sign() == 0:
			continue
		case b.exp.Cmp(big.NewRat(1, 1)) == 0:
			factors = append(factors, b.base)
		default:
			factors = append(factors, Pow{Base: b.base, Exp: K{R: b.exp}})
		}
	}
	factors = append(factors, nonPoly...)
	sort.SliceStable(factors, func(i, j int) bool { return lessTerm(factors[i], factors[j]) })

	if coeff.Cmp(big.NewRat(1, 1)) != 0 {
		factors = append([]Value{K{R: coeff}}, factors...)
	}

	if len(factors) == 0 {
		return One()
	}
	if len(factors) == 1 {
		return factors[0]
	}
	return Prod{Factors: factors}
}

// asPower reports whether v is a base raised to a rational exponent,
// normalizing bare values to exponent 1.
func asPower(v Value) (Value, *big.Rat, bool) {
	if p, ok := v.(Pow); ok {
		if k, ok := p.Exp.(K); ok {
			return p.Base, k.R, true
		}
		return nil, nil, false
	}
	return v, big.NewRat(1, 1), true
}

func simplifyPow(p Pow) Value {
	base := Simplify(p.Base)
	exp := Simplify(p.Exp)

	if k, ok := exp.(K); ok {
		if k.R.Sign() == 0 {
			return One()
		}
		if k.R.Cmp(big.NewRat(1, 1)) == 0 {
			return base
		}
		if bk, ok := base.(K); ok && k.R.IsInt() {
			return K{R: ratPow(bk.R, k.R)}
		}
	}
	return Pow{Base: base, Exp: exp}
}

// ratPow raises an exact rational to an integer power; non-integer
// exponents on a constant base are left unevaluated (returns base
// unchanged is never reached since callers only call this for integer k).
func ratPow(base *big.Rat, exp *big.Rat) *big.Rat {
	if !exp.IsInt() {
		return base // degenerate: fractional constant powers aren't simplified further
	}
	n := exp.Num().Int64()
	out := big.NewRat(1, 1)
	neg := n < 0
	if neg {
		n = -n
	}
	for i := int64(0); i < n; i++ {
		out.Mul(out, base)
	}
	if neg {
		out.Inv(out)
	}
	return out
}

func simplifyLog(l Log) Value {
	arg := Simplify(l.Arg)
	if k, ok := arg.(K); ok && k.R.Cmp(big.NewRat(1, 1)) == 0 {
		return Zero()
	}
	if p, ok := arg.(Pow); ok {
		if base, ok := p.Base.(K); ok && l.Base != nil && base.R.Cmp(l.Base) == 0 {
			return p.Exp
		}
	}
	return Log{Base: l.Base, Arg: arg}
}

// simplifyExtreme canonicalizes Max/Min alternatives in two passes:
// alternatives sharing the same symbolic monomial (constants included)
// collapse to the numerically larger/smaller coefficient, then any
// alternative strictly dominated under asymptotic compare is dropped.
// Only genuinely incomparable or co-dominant alternatives keep the
// Max/Min wrapper.
func simplifyExtreme(alts []Value, isMax bool) Value {
	type bucket struct {
		rest  Value
		coeff *big.Rat
	}
	var order []string
	buckets := map[string]*bucket{}
	for _, a := range alts {
		coeff, rest := splitCoefficient(Simplify(a))
		key := renderKey(rest)
		b, ok := buckets[key]
		if !ok {
			buckets[key] = &bucket{rest: rest, coeff: coeff}
			order = append(order, key)
			continue
		}
		cmp := coeff.Cmp(b.coeff)
		if (isMax && cmp > 0) || (!isMax && cmp < 0) {
			b.coeff = coeff
		}
	}
	if len(order) == 0 {
		return Zero()
	}

	merged := make([]Value, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		merged = append(merged, Simplify(reattachCoefficient(b.coeff, b.rest)))
	}

	var kept []Value
	for i, a := range merged {
		dominated := false
		for j, other := range merged {
			if i == j {
				continue
			}
			cmp := Compare(other, a)
			if (isMax && cmp == CmpGreater) || (!isMax && cmp == CmpLess) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, a)
		}
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sort.SliceStable(kept, func(i, j int) bool { return lessTerm(kept[i], kept[j]) })
	if isMax {
		return Max{Alts: kept}
	}
	return Min{Alts: kept}
}

// splitCoefficient separates a rational scalar coefficient from the
// remaining symbolic factor, so `K(2)*n` and `n*K(2)` group as the same
// monomial in simplifySum.
func splitCoefficient(v Value) (*big.Rat, Value) {
	if k, ok := v.(K); ok {
		return new(big.Rat).Set(k.R), One()
	}
	if p, ok := v.(Prod); ok {
		coeff := big.NewRat(1, 1)
		var rest []Value
		for _, f := range p.Factors {
			if k, ok := f.(K); ok {
				coeff.Mul(coeff, k.R)
			} else {
				rest = append(rest, f)
			}
		}
		if len(rest) == 0 {
			return coeff, One()
		}
		if len(rest) == 1 {
			return coeff, rest[0]
		}
		return coeff, Prod{Factors: rest}
	}
	return big.NewRat(1, 1), v
}

func reattachCoefficient(coeff *big.Rat, rest Value) Value {
	if coeff.Cmp(big.NewRat(1, 1)) == 0 {
		return rest
	}
	return Prod{Factors: []Value{K{R: coeff}, rest}}
}

func isOne(v Value) bool {
	k, ok := v.(K)
	return ok && k.R.Cmp(big.NewRat(1, 1)) == 0
}
