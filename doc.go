// Package calc evaluates short arithmetic expressions of the kind people type
// into a calculator: numbers, "+ - * / ^", spaces, a comma or period as the
// decimal separator, and scientific notation like "2e3".
//
// Evaluation is a straight pipeline. Text is normalized, lexed into tokens,
// reordered into postfix with the shunting-yard algorithm, and reduced on a
// value stack. The result is rounded to five decimal places. Every operator,
// including "^", is left-associative, so "2^3^2" is 64. A minus sign that
// cannot be a subtraction is folded into the number after it, which is how
// "-3", "2^-3", and "-2^3" work without a unary operator.
//
// Failures are reported as *Error values carrying a Kind. Message maps a Kind
// to the sentence a user should see.
//
// Everything in the package is safe for concurrent use.
package calc
