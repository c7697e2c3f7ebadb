package recognize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// Pattern fragments shared by the recognizers.
const (
	numPat    = `(?:\d+\.?\d*|\.\d+)`
	offsetPat = `[+-]` + numPat
)

// coefficient reads a multiplier written before x or a function head.
// Empty and "+" mean 1, "-" means -1. A trailing '*' is ignored.
func coefficient(s string) (float64, error) {
	s = strings.TrimSuffix(s, "*")
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseFloat(s, 64)
}

// additive reads an optional signed term; empty means 0.
func additive(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// evalFraction evaluates a numerator/denominator literal such as "3/4".
func evalFraction(lit string) (float64, error) {
	expr, err := govaluate.NewEvaluableExpression(lit)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedFraction, err)
	}
	v, err := expr.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedFraction, err)
	}
	f, ok := v.(float64)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s", ErrMalformedFraction, lit)
	}
	return f, nil
}

var (
	parenFraction = regexp.MustCompile(`\(([+-]?\d+(?:\.\d+)?)/(\d+(?:\.\d+)?)\)`)
	baseFraction  = regexp.MustCompile(`(?i:log)_\(([+-]?\d+(?:\.\d+)?/\d+(?:\.\d+)?)\)`)
)

// replaceFractions rewrites every "(p/q)" in s as its decimal value. The
// first fraction that cannot be evaluated is returned as the error.
func replaceFractions(s string) (string, error) {
	var firstErr error
	out := parenFraction.ReplaceAllStringFunc(s, func(m string) string {
		v, err := evalFraction(m[1 : len(m)-1])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return m
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	})
	return out, firstErr
}

// replaceBaseFraction rewrites a logarithm base written as log_(p/q) into
// decimal form. A base that cannot be evaluated becomes fallback.
func replaceBaseFraction(s string, fallback float64) string {
	return baseFraction.ReplaceAllStringFunc(s, func(m string) string {
		open := strings.IndexByte(m, '(')
		v, err := evalFraction(m[open+1 : len(m)-1])
		if err != nil {
			v = fallback
		}
		return m[:open] + strconv.FormatFloat(v, 'f', -1, 64)
	})
}

// groups returns the named submatches of re in s, or nil when s does not
// match.
func groups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	out[""] = m[0]
	return out
}
