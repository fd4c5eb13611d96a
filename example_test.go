package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleCalculate() {
	fmt.Println(calc.Calculate("2 + 3*4"))
	fmt.Println(calc.Calculate("2^3^2"))
	fmt.Println(calc.Calculate("0.1 + 0.2"))
	fmt.Println(calc.Calculate("1/0"))

	// Output:
	// 14
	// 512
	// 0.3
	// NaN
}

func ExampleEval() {
	_, err := calc.Eval("(1+2")
	fmt.Println(err)
	fmt.Println(calc.KindOf(err))

	// Output:
	// 1: open bracket ( with no close bracket
	// Unbalanced
}
