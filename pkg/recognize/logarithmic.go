package recognize

import (
	"math"
	"regexp"

	"github.com/wildfunctions/function_families/pkg/function"
)

func init() {
	Register(function.FamilyLogarithmic.String(), func() Recognizer { return LogarithmicRecognizer{} })
}

// malformedBase replaces a base fraction that cannot be evaluated, such as
// (1/0). Unlike polynomial coefficients this is not a recognition failure.
const malformedBase = 1.0

const (
	logAmp  = `^(?P<a>[+-]?(?:` + numPat + `\*?)?)`
	logBody = `\((?P<inner>[^()]*)\)(?P<e>` + offsetPat + `)?$`
)

type logPattern struct {
	re   *regexp.Regexp
	base float64 // used when the pattern has no base group
}

// logPatterns are tried in order; the first match wins.
var logPatterns = []logPattern{
	{re: regexp.MustCompile(logAmp + `(?i:log)_(?P<base>` + numPat + `)` + logBody)},
	{re: regexp.MustCompile(logAmp + `(?i:ln)` + logBody), base: math.E},
	{re: regexp.MustCompile(logAmp + `(?i:log)` + logBody), base: 10},
}

// logInner matches c*x+d, or a lone constant d.
var logInner = regexp.MustCompile(`^(?:(?P<c>[+-]?(?:` + numPat + `\*?)?)(?P<x>[xX])(?P<d>` + offsetPat + `)?|(?P<k>[+-]?` + numPat + `))$`)

// LogarithmicRecognizer reads a*log_base(c*x+d)+e, a*ln(...)+e and
// a*log(...)+e.
type LogarithmicRecognizer struct{}

func (LogarithmicRecognizer) Family() function.Family { return function.FamilyLogarithmic }

// Recognize returns a *function.Logarithmic with vector [a, base, c, d, e].
// Parenthesized fractions are replaced by their decimal value first, so
// log_(1/2)(x) has base 0.5. Only the base falls back to malformedBase; any
// other fraction that cannot be evaluated is ErrMalformedFraction.
func (LogarithmicRecognizer) Recognize(input string) (function.Function, error) {
	s, err := replaceFractions(replaceBaseFraction(normalize(input), malformedBase))
	if err != nil {
		return fail(function.FamilyLogarithmic, input, err)
	}

	var g map[string]string
	var p logPattern
	for _, p = range logPatterns {
		if g = groups(p.re, s); g != nil {
			break
		}
	}
	if g == nil {
		return fail(function.FamilyLogarithmic, input, ErrNoRecognizedTerm)
	}

	base := p.base
	if text, ok := g["base"]; ok {
		v, err := additive(text)
		if err != nil {
			return fail(function.FamilyLogarithmic, input, ErrNoRecognizedTerm)
		}
		base = v
	}

	in := groups(logInner, g["inner"])
	if in == nil {
		return fail(function.FamilyLogarithmic, input, ErrNoRecognizedTerm)
	}
	var c, d float64
	var errC, errD error
	if in["x"] != "" {
		c, errC = coefficient(in["c"])
		d, errD = additive(in["d"])
	} else {
		d, errD = additive(in["k"])
	}

	a, errA := coefficient(g["a"])
	e, errE := additive(g["e"])
	if errA != nil || errC != nil || errD != nil || errE != nil {
		return fail(function.FamilyLogarithmic, input, ErrNoRecognizedTerm)
	}
	return function.NewLogarithmic(a, base, c, d, e), nil
}
