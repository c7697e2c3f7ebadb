package recognize_test

import (
	"fmt"

	"github.com/wildfunctions/function_families/pkg/recognize"
)

func ExampleRecognize() {
	f, err := recognize.Recognize("2*|x + 1| - 3")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.Name(), f.Coefficients())
	fmt.Println(f)
	fmt.Println(f.Evaluate(2))
	// Output:
	// Modulus [1 -3 1 2]
	// 2*|x + 1| - 3
	// 3
}

func ExampleRecognizeAs() {
	f, _ := recognize.RecognizeAs("polynomial", "x^2 - 3x + 1")
	fmt.Println(f.Coefficients())
	fmt.Println(f)
	// Output:
	// [1 -3 1]
	// x^2 - 3*x + 1
}

func ExampleRecognize_fractionBase() {
	f, _ := recognize.Recognize("log_(1/2)(x)")
	fmt.Println(f.Coefficients())
	fmt.Println(f.LaTeX())
	// Output:
	// [1 0.5 1 0 0]
	// \log_{0.5}{(x)}
}
