package calc

import (
	"math"
	"strconv"
)

var messages = [...]string{
	kindNone:                 "Unexpected error",
	EmptyInput:               "Enter expression to calculate",
	InvalidCharacters:        "Remove invalid characters",
	IncompleteExpression:     "Incomplete expression",
	InvalidExpression:        "Invalid expression",
	DivisionByZero:           "Division by zero is not possible",
	ImpossibleExponentiation: "Fractional power of a negative base is not possible",
	CalculationFailed:        "Sorry, failed to calculate",
	RangeExceeded:            "Range exceeded",
}

// Message returns the sentence to show a user for a kind of failure.
func Message(k Kind) string {
	if k < 0 || int(k) >= len(messages) {
		return messages[kindNone]
	}
	return messages[k]
}

// Describe returns the text to show a user for the results of Eval.
func Describe(v float64, err error) string {
	if err != nil {
		return Message(KindOf(err))
	}
	if math.IsNaN(v) {
		return messages[kindNone]
	}
	return "Result is: " + FormatValue(v)
}

// FormatValue formats a result in plain decimal notation, switching to
// exponent notation only for magnitudes of 1e21 and above.
func FormatValue(v float64) string {
	if math.Abs(v) < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
