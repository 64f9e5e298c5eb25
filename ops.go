package calc

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Op is an operator symbol.
type Op int8

const (
	OpNone Op = iota
	OpAdd     // +
	OpSub     // -
	OpMul     // *
	OpDiv     // /
	OpPow     // ^

	numOps
)

// Operators contains the runes which are considered to be operators, in the
// same order as the Op constants starting from OpAdd.
const Operators = "+-*/^"

func (op Op) String() string {
	if !op.valid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-1 : op]
}

func (op Op) valid() bool {
	return OpNone < op && op < numOps
}

// opFor gets the operator for a rune, or OpNone if r is not an operator.
func opFor(r rune) Op {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '^':
		return OpPow
	default:
		return OpNone
	}
}

// OperatorSpec describes the binary form of an operator.
type OperatorSpec struct {
	// Prec is the precedence. Higher is more binding.
	Prec int
	// Right indicates right-associativity.
	Right bool
	// Apply computes a op b.
	Apply func(a, b float64) (float64, error)
}

// UnaryPrec is the precedence given to unary operators when ordering the
// operator stack. It is more binding than any binary operator.
const UnaryPrec = 4

var opspecs = [numOps]OperatorSpec{
	OpAdd: {1, false, func(a, b float64) (float64, error) { return a + b, nil }},
	OpSub: {1, false, func(a, b float64) (float64, error) { return a - b, nil }},
	OpMul: {2, false, func(a, b float64) (float64, error) { return a * b, nil }},
	OpDiv: {2, false, div},
	OpPow: {3, true, pow},
}

// Spec returns the binary operator description for op. The second result is
// false if op is not an operator.
func (op Op) Spec() (OperatorSpec, bool) {
	if !op.valid() {
		return OperatorSpec{}, false
	}
	return opspecs[op], true
}

// yields reports whether an operator with precedence prec already on the
// stack must be output before p is pushed.
func (p OperatorSpec) yields(prec int) bool {
	if prec != p.Prec {
		return prec > p.Prec
	}
	return !p.Right
}

func div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &DivisionByZeroError{}
	}
	return a / b, nil
}

// powPrec is the precision in bits used for fractional powers.
const powPrec = 128

// pow computes a^b. A positive base with a fractional exponent is computed
// at powPrec bits and rounded once, so e.g. 2^0.5 is the float64 nearest to
// the square root of 2. Everything else follows math.Pow, including NaN for
// a negative base with a fractional exponent.
func pow(a, b float64) (float64, error) {
	r := math.Pow(a, b)
	if a <= 0 || math.IsInf(a, 0) || math.IsInf(b, 0) || b == math.Trunc(b) {
		return r, nil
	}
	if r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		// Out of float64 range either way.
		return r, nil
	}
	x := new(big.Float).SetPrec(powPrec).SetFloat64(a)
	y := new(big.Float).SetPrec(powPrec).SetFloat64(b)
	// Pow does not always store its result in its receiver.
	f, _ := bigfloat.Pow(new(big.Float).SetPrec(powPrec), x, y).Float64()
	return f, nil
}
