package recognize

import (
	"regexp"

	"github.com/wildfunctions/function_families/pkg/function"
)

func init() {
	Register(function.FamilyModulus.String(), func() Recognizer { return ModulusRecognizer{} })
}

var (
	modulusOffset = regexp.MustCompile(`(?P<d>` + offsetPat + `)$`)
	modulusScale  = regexp.MustCompile(`^(?P<c>[+-]?(?:` + numPat + `\*?)?)\|`)
	modulusBody   = regexp.MustCompile(`^\|(?P<a>[+-]?(?:` + numPat + `\*?)?)[xX](?P<b>` + offsetPat + `)?\|$`)
)

// ModulusRecognizer reads c*|a*x+b|+d.
type ModulusRecognizer struct{}

func (ModulusRecognizer) Family() function.Family { return function.FamilyModulus }

// Recognize strips the trailing offset, then the leading multiplier, then
// matches what remains against |a*x+b|. The result is a *function.Modulus
// with vector [b, d, a, c].
func (ModulusRecognizer) Recognize(input string) (function.Function, error) {
	s := normalize(input)

	d := 0.0
	if g := groups(modulusOffset, s); g != nil {
		v, err := additive(g["d"])
		if err != nil {
			return fail(function.FamilyModulus, input, ErrNoRecognizedTerm)
		}
		d = v
		s = s[:len(s)-len(g[""])]
	}

	c := 1.0
	if g := groups(modulusScale, s); g != nil {
		v, err := coefficient(g["c"])
		if err != nil {
			return fail(function.FamilyModulus, input, ErrNoRecognizedTerm)
		}
		c = v
		s = s[len(g[""])-1:]
	}

	var a, b float64
	if g := groups(modulusBody, s); g != nil {
		var errA, errB error
		a, errA = coefficient(g["a"])
		b, errB = additive(g["b"])
		if errA != nil || errB != nil {
			return fail(function.FamilyModulus, input, ErrNoRecognizedTerm)
		}
	} else {
		switch s {
		case "|x|", "|X|":
			a = 1
		case "|-x|", "|-X|":
			a = -1
		default:
			return fail(function.FamilyModulus, input, ErrNoRecognizedTerm)
		}
	}
	return function.NewModulus(b, d, a, c), nil
}
