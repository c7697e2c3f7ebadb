package recognize

import (
	"regexp"

	"github.com/wildfunctions/function_families/pkg/function"
)

func init() {
	Register(function.FamilyTrigonometric.String(), func() Recognizer { return TrigonometricRecognizer{} })
}

const (
	trigHead   = `(?P<fn>(?i:sin|cos|tan|cot))`
	trigArg    = `\((?P<b>[+-]?` + numPat + `\*?|\+)?[xX](?P<c>` + offsetPat + `)?\)`
	trigNegArg = `\(-[xX](?P<c>` + offsetPat + `)?\)`
	trigTail   = `(?P<d>` + offsetPat + `)?$`
)

type trigPattern struct {
	re     *regexp.Regexp
	negArg bool
}

// trigPatterns are tried in order; the first match wins.
var trigPatterns = []trigPattern{
	// 2.5*sin(3x+1)-4
	{re: regexp.MustCompile(`^(?P<a>[+-]?` + numPat + `)\*?` + trigHead + trigArg + trigTail)},
	// -cos(2x)
	{re: regexp.MustCompile(`^(?P<a>[+-])?` + trigHead + trigArg + trigTail)},
	// 3*tan(-x)+1
	{re: regexp.MustCompile(`^(?P<a>[+-]?` + numPat + `)\*?` + trigHead + trigNegArg + trigTail), negArg: true},
	// -cot(-x)
	{re: regexp.MustCompile(`^(?P<a>[+-])?` + trigHead + trigNegArg + trigTail), negArg: true},
}

// TrigonometricRecognizer reads a*fn(b*x+c)+d for fn in sin, cos, tan, cot.
type TrigonometricRecognizer struct{}

func (TrigonometricRecognizer) Family() function.Family { return function.FamilyTrigonometric }

// Recognize returns a *function.Trigonometric with vector [d, a, b, c].
func (TrigonometricRecognizer) Recognize(input string) (function.Function, error) {
	s := normalize(input)

	var g map[string]string
	var negArg bool
	for _, p := range trigPatterns {
		if g = groups(p.re, s); g != nil {
			negArg = p.negArg
			break
		}
	}
	if g == nil {
		return fail(function.FamilyTrigonometric, input, ErrNoRecognizedTerm)
	}

	kind, ok := function.ParseTrigType(g["fn"])
	if !ok {
		return fail(function.FamilyTrigonometric, input, ErrNoRecognizedTerm)
	}
	a, err := coefficient(g["a"])
	if err != nil {
		return fail(function.FamilyTrigonometric, input, ErrNoRecognizedTerm)
	}

	b := -1.0
	if !negArg {
		if b, err = coefficient(g["b"]); err != nil {
			return fail(function.FamilyTrigonometric, input, ErrNoRecognizedTerm)
		}
	}
	c, err := additive(g["c"])
	if err != nil {
		return fail(function.FamilyTrigonometric, input, ErrNoRecognizedTerm)
	}
	d, err := additive(g["d"])
	if err != nil {
		return fail(function.FamilyTrigonometric, input, ErrNoRecognizedTerm)
	}

	return function.NewTrigonometric(kind, d, a, b, c), nil
}
