package calc_test

import (
	"errors"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("2 + 1")
	f.Add("-2^-3")
	f.Add("0,1 + 0,2")
	f.Add("1e400 - 1e400")
	f.Add("1 ÷ 4 × 2 ** 3")
	f.Add("2 + ")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.Eval(s)
		if err != nil {
			if calc.KindOf(err) == 0 {
				t.Errorf("%q: error without a kind: %v", s, err)
			}
			var ie calc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: %v is not an InputError", s, err)
			}
			if p := ie.Pos(); p < 1 || p > utf8.RuneCountInString(s)+1 {
				t.Errorf("%q: error position %d out of range", s, p)
			}
			return
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Errorf("%q: non-finite result %g", s, r)
		}
		// Results are multiples of 1e-5, up to representation.
		x := r * 1e5
		if !math.IsInf(x, 0) && math.Abs(x-math.Round(x)) > 1e-6*math.Max(1, math.Abs(x)) {
			t.Errorf("%q: result %g is not rounded", s, r)
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("3-4*2/4^2+1.5")
	f.Add("--3")
	f.Add("1..2e+")
	f.Add("a$×÷**")
	f.Fuzz(func(t *testing.T, s string) {
		s = calc.Normalize(s)
		if calc.Normalize(s) != s {
			t.Fatalf("%q: normalizing is not idempotent", s)
		}
		first := calc.Tokenize(s)
		second := calc.Tokenize(calc.Join(first))
		if len(first) != len(second) {
			t.Fatalf("%q: retokenized %v as %v", s, first, second)
		}
		for i := range first {
			a, b := first[i], second[i]
			if a.Kind != b.Kind || a.Text != b.Text || !sameFloat(a.Value, b.Value) {
				t.Errorf("%q: token %d changed from %v to %v", s, i, a, b)
			}
		}
	})
}

func sameFloat(a, b float64) bool {
	return a == b || math.IsNaN(a) && math.IsNaN(b)
}
