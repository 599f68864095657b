package calc

import "strings"

// Normalize rewrites user text into the canonical form that Tokenize expects.
// Commas become periods. Exponentiation is left alone; the lexer reads both
// ^ and **.
//
// Normalize preserves rune positions, so columns in tokens and errors refer
// to the original text. Normalizing canonical text returns it unchanged.
func Normalize(text string) string {
	return strings.ReplaceAll(text, ",", ".")
}
