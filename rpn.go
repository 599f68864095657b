package calc

// Postfix reorders tokens from infix to postfix order using the
// shunting-yard algorithm. Numbers go straight to the output. An operator
// first moves every stacked operator of equal or higher precedence to the
// output, which makes all operators left-associative. Whatever remains on the
// operator stack at the end is output last-in first-out.
//
// Postfix never fails. Operator arity is checked during evaluation instead.
// tokens must not contain TokenInvalid; Postfix panics if it does.
func Postfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		if tok.Kind == TokenNumber {
			out = append(out, tok)
			continue
		}
		op, ok := opFor(tok.Kind)
		if !ok {
			panic("calc: cannot convert " + tok.String() + " to postfix")
		}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if operators[top.Kind].prec < op.prec {
				break
			}
			out = append(out, top)
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, tok)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, stack[i])
	}
	return out
}
