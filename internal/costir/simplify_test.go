package costir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func n() Value { return Sym{Name: "n"} }

func TestSimplifyCollectsLikeTerms(t *testing.T) {
	// n + n -> 2*n
	v := Simplify(Sum{Terms: []Value{n(), n()}})
	require.Equal(t, "2*n", ASCII(v))
}

func TestSimplifyIdentities(t *testing.T) {
	require.Equal(t, "n", ASCII(Simplify(Sum{Terms: []Value{Zero(), n()}})))
	require.Equal(t, "n", ASCII(Simplify(Prod{Factors: []Value{One(), n()}})))
	require.Equal(t, "0", ASCII(Simplify(Prod{Factors: []Value{Zero(), n()}})))
	require.Equal(t, "1", ASCII(Simplify(Pow{Base: n(), Exp: Zero()})))
	require.Equal(t, "n", ASCII(Simplify(Pow{Base: n(), Exp: One()})))
}

func TestSimplifyLogIdentities(t *testing.T) {
	two := big.NewRat(2, 1)
	require.Equal(t, "0", ASCII(Simplify(Log{Base: two, Arg: One()})))
	v := Simplify(Log{Base: two, Arg: Pow{Base: K{R: two}, Exp: n()}})
	require.Equal(t, "n", ASCII(v))
}

func TestSimplifyFlattensNestedSums(t *testing.T) {
	nested := Sum{Terms: []Value{Sum{Terms: []Value{n(), KInt(1)}}, n()}}
	v := Simplify(nested)
	require.Equal(t, "2*n + 1", ASCII(v))
}

func TestComparePolynomialDegree(t *testing.T) {
	nSquared := Pow{Base: n(), Exp: KInt(2)}
	require.Equal(t, CmpGreater, Compare(nSquared, n()))
	require.Equal(t, CmpLess, Compare(n(), nSquared))
	require.Equal(t, CmpEqual, Compare(n(), n()))
}

func TestCompareExponentialBeatsPolynomial(t *testing.T) {
	expo := Pow{Base: KInt(2), Exp: n()}
	nSquared := Pow{Base: n(), Exp: KInt(2)}
	require.Equal(t, CmpGreater, Compare(expo, nSquared))
}

func TestCompareIncomparableAcrossSymbols(t *testing.T) {
	m := Sym{Name: "m"}
	require.Equal(t, CmpIncomparable, Compare(n(), m))
}

func TestDominantTermPicksHighestDegree(t *testing.T) {
	sum := Sum{Terms: []Value{n(), Pow{Base: n(), Exp: KInt(2)}, KInt(3)}}
	d := DominantTerm(sum)
	require.Equal(t, "n^2", ASCII(d))
}

func TestDominantTermGroupsCoDominantTerms(t *testing.T) {
	m := Sym{Name: "m"}
	sum := Sum{Terms: []Value{n(), m}}
	d := DominantTerm(sum)
	_, isSum := d.(Sum)
	require.True(t, isSum)
}

func TestAsPolynomial(t *testing.T) {
	sum := Sum{Terms: []Value{Pow{Base: n(), Exp: KInt(2)}, n(), KInt(5)}}
	pf, ok := AsPolynomial(sum)
	require.True(t, ok)
	require.Equal(t, "n", pf.Symbol)
	require.Equal(t, []int{2, 1, 0}, pf.Degrees)
	require.Equal(t, "n^2", ASCII(pf.Dominant))
}

func TestAsPolynomialRejectsLogarithms(t *testing.T) {
	v := Sum{Terms: []Value{Log{Base: big.NewRat(2, 1), Arg: n()}}}
	_, ok := AsPolynomial(v)
	require.False(t, ok)
}
