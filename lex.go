package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a lexed piece of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the token as it appeared in the input. For a number with a
	// folded sign, it is the sign followed by the literal.
	Text string
	// Value is the parsed value of a TokenNumber and zero otherwise.
	Value float64
	// Pos is the 1-based rune column of the token's first rune.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a numeric literal, possibly with a folded minus sign.
	TokenNumber
	// TokenAdd is +.
	TokenAdd
	// TokenSub is - as a binary operator.
	TokenSub
	// TokenMul is * or ×.
	TokenMul
	// TokenDiv is / or ÷.
	TokenDiv
	// TokenPow is ^ or **.
	TokenPow
	// TokenInvalid is a single rune that does not begin any other token.
	TokenInvalid
)

var tokenKindNames = [...]string{
	tokenNone:    "None",
	TokenNumber:  "Number",
	TokenAdd:     "Add",
	TokenSub:     "Sub",
	TokenMul:     "Mul",
	TokenDiv:     "Div",
	TokenPow:     "Pow",
	TokenInvalid: "Invalid",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which begin operators. A doubled * is also
// exponentiation.
const Operators = "+-*/^×÷"

// Tokenize lexes canonical text into tokens in source order. Whitespace
// produces no tokens. Runes that cannot begin a token each produce a
// TokenInvalid. A minus that cannot be a subtraction because there is no
// number before it is folded into the number following it, if any.
//
// Tokenize does not normalize its input; see Normalize.
func Tokenize(text string) []Token {
	l := lexer{src: text, col: 1}
	var toks []Token
	for {
		tok, ok := l.next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return foldSigns(toks)
}

// Join reconstructs text from tokens by joining their texts with single
// spaces. Tokenizing the result gives the same tokens, up to positions.
func Join(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// col is the column of the next rune.
	col int
	buf strings.Builder
}

// peek returns the rune k runes after the next one without consuming
// anything. At the end of the input, the result is utf8.RuneError with ok
// false.
func (l *lexer) peek(k int) (r rune, ok bool) {
	off := l.off
	for {
		if off >= len(l.src) {
			return utf8.RuneError, false
		}
		r, sz := utf8.DecodeRuneInString(l.src[off:])
		if k == 0 {
			return r, true
		}
		off += sz
		k--
	}
}

// readRune consumes the next rune.
func (l *lexer) readRune() rune {
	r, sz := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.col++
	return r
}

// take consumes the next rune into the token buffer.
func (l *lexer) take() {
	l.buf.WriteRune(l.readRune())
}

// next scans the next token. The second result is false at the end of the
// input.
func (l *lexer) next() (Token, bool) {
	defer l.buf.Reset()
	for {
		r, ok := l.peek(0)
		if !ok {
			return Token{}, false
		}
		if !unicode.IsSpace(r) {
			break
		}
		l.readRune()
	}
	tok := Token{Pos: l.col}
	if l.scanNum() {
		tok.Kind = TokenNumber
		tok.Text = l.buf.String()
		tok.Value = parseNum(tok.Text)
		return tok, true
	}
	r := l.readRune()
	switch r {
	case '+':
		tok.Kind, tok.Text = TokenAdd, "+"
	case '-':
		tok.Kind, tok.Text = TokenSub, "-"
	case '*':
		if n, _ := l.peek(0); n == '*' {
			l.readRune()
			tok.Kind, tok.Text = TokenPow, "**"
			break
		}
		tok.Kind, tok.Text = TokenMul, "*"
	case '×':
		tok.Kind, tok.Text = TokenMul, "×"
	case '/':
		tok.Kind, tok.Text = TokenDiv, "/"
	case '÷':
		tok.Kind, tok.Text = TokenDiv, "÷"
	case '^':
		tok.Kind, tok.Text = TokenPow, "^"
	default:
		tok.Kind, tok.Text = TokenInvalid, string(r)
	}
	return tok, true
}

// scanNum scans a numeric literal into the token buffer if one begins at the
// current position. A literal is digits with an optional fraction, or a
// fraction alone, followed by an optional exponent. An exponent marker that
// is not followed by digits is not part of the literal.
func (l *lexer) scanNum() bool {
	r, _ := l.peek(0)
	switch {
	case isDigit(r):
		l.digits()
		if r, _ := l.peek(0); r == '.' {
			l.take()
			l.digits()
		}
	case r == '.':
		if d, _ := l.peek(1); !isDigit(d) {
			return false
		}
		l.take()
		l.digits()
	default:
		return false
	}
	if r, _ := l.peek(0); r != 'e' {
		return true
	}
	switch s, _ := l.peek(1); {
	case isDigit(s):
		l.take()
	case s == '+' || s == '-':
		if d, _ := l.peek(2); !isDigit(d) {
			return true
		}
		l.take()
		l.take()
	default:
		return true
	}
	l.digits()
	return true
}

func (l *lexer) digits() {
	for {
		r, ok := l.peek(0)
		if !ok || !isDigit(r) {
			return
		}
		l.take()
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// parseNum parses a literal accepted by scanNum. Literals out of the range of
// float64 become infinities or zero.
func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calc: lexed invalid number " + strconv.Quote(s) + " (" + err.Error() + ")")
	}
	return v
}

// foldSigns merges each minus that has no number before it with the number
// after it. The fold reuses the storage of toks.
func foldSigns(toks []Token) []Token {
	out := toks[:0]
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Kind == TokenSub && i+1 < len(toks) && toks[i+1].Kind == TokenNumber {
			if len(out) == 0 || out[len(out)-1].Kind != TokenNumber {
				num := toks[i+1]
				tok = Token{
					Kind:  TokenNumber,
					Text:  "-" + num.Text,
					Value: -num.Value,
					Pos:   tok.Pos,
				}
				i++
			}
		}
		out = append(out, tok)
	}
	return out
}
