package calc

import "math"

// operator describes a binary operator. The table of operators is built once
// and never modified.
type operator struct {
	// prec is the precedence value. Higher is more binding. Every operator
	// is left-associative.
	prec int8
	// apply computes l op r. A nonzero Kind reports a domain error.
	apply func(l, r float64) (float64, Kind)
}

var operators = [...]operator{
	TokenAdd: {1, add},
	TokenSub: {1, sub},
	TokenMul: {2, mul},
	TokenDiv: {2, div},
	TokenPow: {3, pow},
}

// opFor returns the operator for a token kind. The second result is false if
// the kind is not an operator.
func opFor(k TokenKind) (operator, bool) {
	if k < 0 || int(k) >= len(operators) || operators[k].apply == nil {
		return operator{}, false
	}
	return operators[k], true
}

// Precedence returns the precedence of an operator kind. Add and Sub are 1,
// Mul and Div are 2, and Pow is 3. Kinds that are not operators have
// precedence 0.
func Precedence(k TokenKind) int {
	op, _ := opFor(k)
	return int(op.prec)
}

func add(l, r float64) (float64, Kind) { return l + r, kindNone }
func sub(l, r float64) (float64, Kind) { return l - r, kindNone }
func mul(l, r float64) (float64, Kind) { return l * r, kindNone }

func div(l, r float64) (float64, Kind) {
	if r == 0 {
		return 0, DivisionByZero
	}
	return l / r, kindNone
}

func pow(l, r float64) (float64, Kind) {
	// Real powers of negative bases exist only for integer exponents.
	if l < 0 && r != math.Trunc(r) {
		return 0, ImpossibleExponentiation
	}
	return math.Pow(l, r), kindNone
}
