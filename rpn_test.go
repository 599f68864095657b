package calc

import (
	"strings"
	"testing"
)

// texts gives the texts of tokens joined by spaces, for compact comparison.
func texts(toks []Token) string {
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.Text
	}
	return strings.Join(s, " ")
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"1 + 2", "1 2 +"},
		{"1 + 2 * 3", "1 2 3 * +"},
		{"1 * 2 + 3", "1 2 * 3 +"},
		{"1 - 2 + 3", "1 2 - 3 +"},
		{"1 / 2 * 3", "1 2 / 3 *"},
		{"2 * 2 ^ 3", "2 2 3 ^ *"},
		{"2 ^ 3 ^ 2", "2 3 ^ 2 ^"},
		{"2 ** 3", "2 3 **"},
		{"3-4*2/4^2+1.5", "3 4 2 * 4 2 ^ / - 1.5 +"},
		{"-2 ^ -3", "-2 -3 ^"},
		{"1 + 2 ^ 3 * 4", "1 2 3 ^ 4 * +"},
		// malformed arity passes through unchanged in meaning
		{"2 +", "2 +"},
		{"+", "+"},
		{"2 3", "2 3"},
		{"* 2 3 +", "2 3 * +"},
	}
	for _, c := range cases {
		got := texts(Postfix(Tokenize(c.src)))
		if got != c.want {
			t.Errorf("postfix of %q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestPostfixInvalid(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Error("no panic converting an invalid token")
		}
		if s, _ := r.(string); !strings.HasPrefix(s, "calc:") {
			t.Errorf("wrong panic: %v", r)
		}
	}()
	Postfix(Tokenize("1 + a"))
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		k    TokenKind
		want int
	}{
		{TokenAdd, 1},
		{TokenSub, 1},
		{TokenMul, 2},
		{TokenDiv, 2},
		{TokenPow, 3},
		{TokenNumber, 0},
		{TokenInvalid, 0},
		{tokenNone, 0},
		{TokenKind(-1), 0},
	}
	for _, c := range cases {
		if got := Precedence(c.k); got != c.want {
			t.Errorf("precedence of %v: want %d, got %d", c.k, c.want, got)
		}
	}
}
