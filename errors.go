package calc

import (
	"errors"
	"strconv"
)

// Kind classifies a failed evaluation.
type Kind int8

const (
	kindNone Kind = iota
	// EmptyInput means there was nothing to evaluate.
	EmptyInput
	// InvalidCharacters means the input contains a rune that begins no
	// token.
	InvalidCharacters
	// IncompleteExpression means an operator lacks an operand.
	IncompleteExpression
	// InvalidExpression means operands remain with no operator to combine
	// them, e.g. "2 3".
	InvalidExpression
	// DivisionByZero means a divisor was exactly zero.
	DivisionByZero
	// ImpossibleExponentiation means a negative base was raised to a
	// non-integer power.
	ImpossibleExponentiation
	// CalculationFailed means the result was NaN.
	CalculationFailed
	// RangeExceeded means the result was infinite.
	RangeExceeded
)

var kindNames = [...]string{
	kindNone:                 "None",
	EmptyInput:               "EmptyInput",
	InvalidCharacters:        "InvalidCharacters",
	IncompleteExpression:     "IncompleteExpression",
	InvalidExpression:        "InvalidExpression",
	DivisionByZero:           "DivisionByZero",
	ImpossibleExponentiation: "ImpossibleExponentiation",
	CalculationFailed:        "CalculationFailed",
	RangeExceeded:            "RangeExceeded",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

var kindDetails = [...]string{
	kindNone:                 "no error",
	EmptyInput:               "no expression",
	InvalidCharacters:        "invalid character",
	IncompleteExpression:     "missing operand for",
	InvalidExpression:        "no operator for operand",
	DivisionByZero:           "division by zero",
	ImpossibleExponentiation: "non-integer power of negative base",
	CalculationFailed:        "result is not a number",
	RangeExceeded:            "result out of range",
}

// Error is a failed evaluation. It implements InputError.
type Error struct {
	// Kind is the class of failure.
	Kind Kind
	// Col is the 1-based rune column of the token that caused the failure.
	Col int
	// Text is the token that caused the failure, if there is one in
	// particular.
	Text string
}

func (err *Error) Error() string {
	msg := "unknown error"
	if err.Kind >= 0 && int(err.Kind) < len(kindDetails) {
		msg = kindDetails[err.Kind]
	}
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *Error) Pos() int {
	return err.Col
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, &Error{Kind: DivisionByZero}) matches regardless of
// position.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or the zero Kind
// if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return kindNone
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused it.
	Pos() int
}

var _ InputError = (*Error)(nil)
