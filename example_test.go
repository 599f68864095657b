package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEval() {
	for _, src := range []string{"2 * 2 ^ 3", "0,1 + 0,2", "2^3^2", "-2^3", "5 / 0", "2 + "} {
		fmt.Printf("%-10s %s\n", src, calc.Describe(calc.Eval(src)))
	}

	// Output:
	// 2 * 2 ^ 3  Result is: 16
	// 0,1 + 0,2  Result is: 0.3
	// 2^3^2      Result is: 64
	// -2^3       Result is: -8
	// 5 / 0      Division by zero is not possible
	// 2 +        Incomplete expression
}

func ExampleTokenize() {
	toks := calc.Tokenize("2^-3 × 4")
	for _, tok := range toks {
		fmt.Println(tok)
	}
	fmt.Println(calc.Join(calc.Postfix(toks)))

	// Output:
	// Number:2@1
	// Pow:^@2
	// Number:-3@3
	// Mul:×@6
	// Number:4@8
	// 2 -3 ^ 4 ×
}
