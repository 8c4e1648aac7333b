// Package costir implements the symbolic cost algebra: a small closed set
// of tagged-variant nodes (K, Sym, Sum, Prod, Pow, Log, Max, Min,
// Piecewise) with a simplifier, an asymptotic comparator, and pretty
// printers. Grounded on the teacher's internal/ir package for its
// closed-node-set / NodeType-dispatch design (see DESIGN.md); the algebra
// itself is new domain logic with no teacher precedent.
package costir

import "math/big"

// Value is any cost-IR node. The set is closed: callers type-switch on the
// concrete type rather than adding new kinds at the call site.
type Value interface {
	isValue()
}

// K is an exact rational constant.
type K struct {
	R *big.Rat
}

func (K) isValue() {}

// KInt builds a K from a plain integer, the common case.
func KInt(n int64) K { return K{R: big.NewRat(n, 1)} }

// Zero and One are used pervasively enough by the simplifier to name.
func Zero() K { return KInt(0) }
func One() K  { return KInt(1) }

// Sym is a size parameter such as "n" or "m".
type Sym struct {
	Name string
}

func (Sym) isValue() {}

// Sum is the sum of zero or more terms; an empty Sum denotes zero.
type Sum struct {
	Terms []Value
}

func (Sum) isValue() {}

// Prod is the product of zero or more factors; an empty Prod denotes one.
type Prod struct {
	Factors []Value
}

func (Prod) isValue() {}

// Pow is base^exponent. Exponent is either a K or a Sym (e.g. 2^n).
type Pow struct {
	Base Value
	Exp  Value
}

func (Pow) isValue() {}

// Log is log_base(arg); base is a positive-integer rational (usually 2).
type Log struct {
	Base *big.Rat
	Arg  Value
}

func (Log) isValue() {}

// Max is used for worst-case combination of if-branches.
type Max struct {
	Alts []Value
}

func (Max) isValue() {}

// Min is used for best-case combination of if-branches.
type Min struct {
	Alts []Value
}

func (Min) isValue() {}

// PiecewiseCase is one guarded arm of a Piecewise value. Cond is kept as a
// free-form description string since the cost IR has no boolean sub-algebra
// of its own; Piecewise is an optional closed-form-bounds aid, never
// required by the core analyzers.
type PiecewiseCase struct {
	Cond  string
	Value Value
}

type Piecewise struct {
	Cases   []PiecewiseCase
	Default Value
}

func (Piecewise) isValue() {}

// Div is sugar for Prod{a, Pow{b, K(-1)}}, used by callers that want exact
// rational division without constructing the Pow manually.
func Div(a, b Value) Value {
	return Prod{Factors: []Value{a, Pow{Base: b, Exp: K{R: big.NewRat(-1, 1)}}}}
}

// Add and Mul are convenience constructors that build a 2-term Sum/Prod;
// Simplify flattens and canonicalizes them same as any other Sum/Prod.
func Add(a, b Value) Value { return Sum{Terms: []Value{a, b}} }
func Mul(a, b Value) Value { return Prod{Factors: []Value{a, b}} }

// Sub is sugar for a + (-1)*b.
func Sub(a, b Value) Value {
	return Sum{Terms: []Value{a, Prod{Factors: []Value{K{R: big.NewRat(-1, 1)}, b}}}}
}
