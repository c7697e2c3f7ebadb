package function

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	cases := []struct {
		fn   Function
		want string
	}{
		{NewPolynomial(), "0"},
		{NewPolynomial(3), "3"},
		{NewPolynomial(-0.5), "-0.5"},
		{NewPolynomial(1, -3, 1), "x^2 - 3*x + 1"},
		{NewPolynomial(-1, 0, 1), "x^2 - 1"},
		{NewPolynomial(2, -1), "-x + 2"},
		{NewPolynomial(0, 0, 0), "0*x^2"},
		{NewPolynomial(0, 0, 0, 2.5), "2.5*x^3"},

		{NewTrigonometric(Sin), "sin(x)"},
		{NewTrigonometric(Cos, 4, -2.5, -3, -0.5), "-2.5*cos(-3*x - 0.5) + 4"},
		{NewTrigonometric(Cot, 1, -1, -1, 0), "-cot(-x) + 1"},
		{NewTrigonometric(Tan, 0, 0.5, 2, 3), "0.5*tan(2*x + 3)"},

		{NewExponential(), "exp(x)"},
		{NewExponential(4, 2, -3, 1), "2*exp(-3*x + 1) + 4"},

		{NewLogarithmic(), "log(x)"},
		{NewLogarithmic(1, math.E, 1, 0, 0), "ln(x)"},
		{NewLogarithmic(-2, 3, 2, -1, 5), "-2*log_3(2*x - 1) + 5"},
		{NewLogarithmic(1, math.E, 0, 5, 0), "ln(5)"},
		{NewLogarithmic(0.5, 0.5, 1, 0, 0), "0.5*log_0.5(x)"},

		{NewModulus(), "|x|"},
		{NewModulus(1, -3, 1, 2), "2*|x + 1| - 3"},
		{NewModulus(0, 0, -1, 1), "|-x|"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.fn.String(), "%s %v", tc.fn.Name(), tc.fn.Coefficients())
	}
}

func TestLaTeX(t *testing.T) {
	cases := []struct {
		fn   Function
		want string
	}{
		{NewPolynomial(0, 0, 0), "0"},
		{NewPolynomial(1, -3, 1), "x^{2} - 3x + 1"},
		{NewTrigonometric(Sin), `\sin{(x)}`},
		{NewTrigonometric(Cos, 4, -2.5, -3, -0.5), `-2.5 \cdot \cos{(-3x - 0.5)} + 4`},
		{NewExponential(0, 2, -3, 1), `2 \cdot e^{-3x + 1}`},
		{NewLogarithmic(1, 2, 1, 0, 0), `\log_{2}{(x)}`},
		{NewLogarithmic(1, math.E, 1, 0, 0), `\ln{(x)}`},
		{NewModulus(1, -3, 1, 2), `2 \cdot \left|x + 1\right| - 3`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.fn.LaTeX(), "%s %v", tc.fn.Name(), tc.fn.Coefficients())
	}
}
