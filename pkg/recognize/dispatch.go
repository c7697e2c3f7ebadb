package recognize

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/wildfunctions/function_families/pkg/function"
)

var (
	trigKeywords = []string{"sin", "cos", "tan", "cot"}
	logKeywords  = []string{"log_", "ln", "log"}
)

func containsAny(s string, keywords []string) bool {
	return slices.ContainsFunc(keywords, func(k string) bool {
		return strings.Contains(s, k)
	})
}

// Dispatch picks a recognizer from substring cues, in priority order:
// trigonometric names, exp, logarithm heads, '|', and polynomial otherwise.
// Whitespace is ignored. It never fails; a mismatch surfaces from the
// recognizer.
func Dispatch(input string) Recognizer {
	s := strings.ToLower(normalize(input))
	switch {
	case containsAny(s, trigKeywords):
		return TrigonometricRecognizer{}
	case strings.Contains(s, "exp"):
		return ExponentialRecognizer{}
	case containsAny(s, logKeywords):
		return LogarithmicRecognizer{}
	case strings.Contains(s, "|"):
		return ModulusRecognizer{}
	default:
		return PolynomialRecognizer{}
	}
}

// Recognize dispatches input to a family and parses it.
func Recognize(input string) (function.Function, error) {
	return Dispatch(input).Recognize(input)
}
