// Package recognize turns free-form expression text into a canonical
// function.Function. One Recognizer exists per family; Dispatch picks the
// family from lexical cues in the text.
package recognize

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/wildfunctions/function_families/pkg/function"
)

var (
	// ErrInvalidCharacterSet indicates polynomial input with characters
	// outside digits, x, X, + - * / ^ and '.'.
	ErrInvalidCharacterSet = errors.New("recognize: invalid character set")

	// ErrNoRecognizedTerm indicates that no pattern of the family matched.
	ErrNoRecognizedTerm = errors.New("recognize: no recognized term")

	// ErrMalformedTerm indicates a polynomial token with neither coefficient
	// nor x, a dangling '*' or '^', or two terms not separated by a sign.
	ErrMalformedTerm = errors.New("recognize: malformed term")

	// ErrMalformedFraction indicates a numerator/denominator literal whose
	// denominator is zero or missing.
	ErrMalformedFraction = errors.New("recognize: malformed fraction")

	// ErrUnknownFamily indicates a family name with no registered recognizer.
	ErrUnknownFamily = errors.New("recognize: unknown family")
)

// ParseError reports a failed recognition. Err is one of the sentinel errors
// above, possibly wrapped.
type ParseError struct {
	Family function.Family
	Input  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Family, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Recognizer extracts one family's coefficient vector from text.
type Recognizer interface {
	Family() function.Family
	Recognize(input string) (function.Function, error)
}

var registry = map[string]func() Recognizer{}

// Register adds a recognizer constructor under a family name.
func Register(name string, constructor func() Recognizer) {
	registry[name] = constructor
}

// Get returns the recognizer registered under name.
func Get(name string) (Recognizer, error) {
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
	}
	return ctor(), nil
}

// Names returns all registered family names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// RecognizeAs parses input with the recognizer registered under family,
// skipping dispatch.
func RecognizeAs(family, input string) (function.Function, error) {
	r, err := Get(family)
	if err != nil {
		return nil, err
	}
	return r.Recognize(input)
}

// normalize removes every whitespace character.
func normalize(input string) string {
	return strings.Join(strings.Fields(input), "")
}

func fail(family function.Family, input string, err error) (function.Function, error) {
	return nil, &ParseError{Family: family, Input: input, Err: err}
}
