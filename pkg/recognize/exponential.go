package recognize

import (
	"regexp"

	"github.com/wildfunctions/function_families/pkg/function"
)

func init() {
	Register(function.FamilyExponential.String(), func() Recognizer { return ExponentialRecognizer{} })
}

const (
	expArg  = `(?i:exp)\((?P<b>[+-]?(?:` + numPat + `\*?)?)[xX](?P<c>` + offsetPat + `)?\)`
	expTail = `(?P<d>` + offsetPat + `)?$`
)

// expPatterns are tried in order; the first match wins.
var expPatterns = []*regexp.Regexp{
	// 2*exp(-3x+1)+4
	regexp.MustCompile(`^(?P<a>[+-]?` + numPat + `)\*?` + expArg + expTail),
	// -exp(x)
	regexp.MustCompile(`^(?P<a>[+-])?` + expArg + expTail),
}

// ExponentialRecognizer reads a*exp(b*x+c)+d.
type ExponentialRecognizer struct{}

func (ExponentialRecognizer) Family() function.Family { return function.FamilyExponential }

// Recognize returns a *function.Exponential with vector [d, a, b, c].
func (ExponentialRecognizer) Recognize(input string) (function.Function, error) {
	s := normalize(input)

	var g map[string]string
	for _, re := range expPatterns {
		if g = groups(re, s); g != nil {
			break
		}
	}
	if g == nil {
		return fail(function.FamilyExponential, input, ErrNoRecognizedTerm)
	}

	a, errA := coefficient(g["a"])
	b, errB := coefficient(g["b"])
	c, errC := additive(g["c"])
	d, errD := additive(g["d"])
	if errA != nil || errB != nil || errC != nil || errD != nil {
		return fail(function.FamilyExponential, input, ErrNoRecognizedTerm)
	}
	return function.NewExponential(d, a, b, c), nil
}
