package calc_test

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/bigfloat"
	"github.com/zephyrtronium/calc"
)

// refPrec is the precision of reference calculations.
const refPrec = 200

// reference evaluates a chain of positive integers and binary operators at
// high precision, reducing ^ first, then * and /, then + and -, left to right
// within each level. The second result is the largest magnitude of any
// intermediate value, which bounds the error of a float64 evaluation.
func reference(nums []int64, ops []byte) (r, mag *big.Float) {
	vals := make([]*big.Float, len(nums))
	mag = new(big.Float).SetPrec(refPrec)
	for i, n := range nums {
		vals[i] = new(big.Float).SetPrec(refPrec).SetInt64(n)
		if vals[i].Cmp(mag) > 0 {
			mag.Set(vals[i])
		}
	}
	for _, level := range []string{"^", "*/", "+-"} {
		nv := []*big.Float{vals[0]}
		var no []byte
		for i, o := range ops {
			if !strings.ContainsRune(level, rune(o)) {
				nv = append(nv, vals[i+1])
				no = append(no, o)
				continue
			}
			l, r := nv[len(nv)-1], vals[i+1]
			z := new(big.Float).SetPrec(refPrec)
			switch o {
			case '^':
				bigfloat.Pow(z, l, r)
			case '*':
				z.Mul(l, r)
			case '/':
				z.Quo(l, r)
			case '+':
				z.Add(l, r)
			case '-':
				z.Sub(l, r)
			}
			if a := new(big.Float).Abs(z); a.Cmp(mag) > 0 {
				mag.Set(a)
			}
			nv[len(nv)-1] = z
		}
		vals, ops = nv, no
	}
	return vals[0], mag
}

func TestEvalMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const opchars = "+-*/^"
	for k := 0; k < 2000; k++ {
		n := 1 + rng.Intn(6)
		nums := []int64{1 + rng.Int63n(9)}
		ops := make([]byte, 0, n)
		var b strings.Builder
		b.WriteString(strconv.FormatInt(nums[0], 10))
		for i := 0; i < n; i++ {
			o := opchars[rng.Intn(len(opchars))]
			x := 1 + rng.Int63n(9)
			if o == '^' {
				// Keep powers small enough that every intermediate value
				// is an exact float64 when it is an integer.
				x = 1 + rng.Int63n(2)
			}
			ops = append(ops, o)
			nums = append(nums, x)
			b.WriteString(" ")
			b.WriteByte(o)
			b.WriteString(" ")
			b.WriteString(strconv.FormatInt(x, 10))
		}
		src := b.String()
		got, err := calc.Eval(src)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		want, mag := reference(nums, ops)
		w, _ := want.Float64()
		m, _ := mag.Float64()
		if math.IsInf(m, 0) {
			continue
		}
		if d := math.Abs(got - w); d > 1e-5+1e-12*m {
			t.Errorf("%q: want %.10g, got %.10g", src, w, got)
		}
	}
}
