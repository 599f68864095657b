package calc

import (
	"math"
	"strconv"
)

// Eval evaluates an expression. The result is rounded to five decimal places.
// If evaluation fails, the error is an *Error describing why.
//
// Eval normalizes the text, lexes it, rejects it if any rune begins no token,
// converts it to postfix, and reduces it.
func Eval(text string) (float64, error) {
	if text == "" {
		return 0, &Error{Kind: EmptyInput, Col: 1}
	}
	tokens := Tokenize(Normalize(text))
	for _, tok := range tokens {
		if tok.Kind == TokenInvalid {
			return 0, &Error{Kind: InvalidCharacters, Col: tok.Pos, Text: tok.Text}
		}
	}
	return EvalPostfix(Postfix(tokens))
}

// EvalPostfix reduces a postfix token sequence to a single value rounded to
// five decimal places. Each operator pops its right operand and then its left
// operand. An operator with fewer than two operands available is an
// IncompleteExpression; more than one value left at the end is an
// InvalidExpression. A NaN result is CalculationFailed and an infinite one is
// RangeExceeded; infinities in intermediate values are not errors.
//
// postfix must not contain TokenInvalid; EvalPostfix panics if it does.
func EvalPostfix(postfix []Token) (float64, error) {
	if len(postfix) == 0 {
		return 0, &Error{Kind: EmptyInput, Col: 1}
	}
	m := machine{stack: make([]operand, 0, len(postfix)/2+1)}
	for _, tok := range postfix {
		if tok.Kind == TokenNumber {
			m.push(operand{v: tok.Value, pos: tok.Pos})
			continue
		}
		op, ok := opFor(tok.Kind)
		if !ok {
			panic("calc: cannot evaluate " + tok.String())
		}
		if len(m.stack) < 2 {
			return 0, &Error{Kind: IncompleteExpression, Col: tok.Pos, Text: tok.Text}
		}
		r := m.pop()
		l := m.top()
		v, k := op.apply(l.v, r.v)
		if k != kindNone {
			return 0, &Error{Kind: k, Col: tok.Pos, Text: tok.Text}
		}
		l.v = v
	}
	switch len(m.stack) {
	case 0:
		panic("calc: empty stack after " + strconv.Itoa(len(postfix)) + " tokens")
	case 1: // ok
	default:
		extra := m.stack[1]
		return 0, &Error{Kind: InvalidExpression, Col: extra.pos}
	}
	res := m.stack[0]
	switch {
	case math.IsNaN(res.v):
		return 0, &Error{Kind: CalculationFailed, Col: res.pos}
	case math.IsInf(res.v, 0):
		return 0, &Error{Kind: RangeExceeded, Col: res.pos}
	}
	return round(res.v), nil
}

// operand is a value on the evaluation stack. pos is the column of the token
// that began the subexpression producing it.
type operand struct {
	v   float64
	pos int
}

// machine is the value stack used by EvalPostfix.
type machine struct {
	stack []operand
}

func (m *machine) push(x operand) {
	m.stack = append(m.stack, x)
}

// pop removes the top from the stack and returns it.
func (m *machine) pop() operand {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// top returns a pointer to the top of the stack so that an operator can
// replace its left operand with the result in place.
func (m *machine) top() *operand {
	return &m.stack[len(m.stack)-1]
}

// scale is 10^(decimal places kept by round).
const scale = 1e5

// round rounds v to five decimal places, hiding binary representation noise
// like 0.1+0.2. Halfway cases round toward positive infinity, so -0.000005
// becomes 0 while 0.000005 becomes 0.00001. Values too large to scale are
// already far coarser than the rounding and are returned unchanged. Negative
// zero becomes zero.
func round(v float64) float64 {
	s := v * scale
	if math.IsInf(s, 0) {
		return v
	}
	// s-f is exact for |s| < 2^52, and larger s are integers.
	f := math.Floor(s)
	if s-f >= 0.5 {
		f++
	}
	r := f / scale
	if r == 0 {
		return 0
	}
	return r
}
