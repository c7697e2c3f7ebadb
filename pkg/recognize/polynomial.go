package recognize

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/wildfunctions/function_families/pkg/function"
)

func init() {
	Register(function.FamilyPolynomial.String(), func() Recognizer { return PolynomialRecognizer{} })
}

// MaxPolynomialDegree bounds the power accepted after x^.
const MaxPolynomialDegree = 1000

var polynomialCharset = regexp.MustCompile(`^[0-9xX+\-*/^.]+$`)

// PolynomialRecognizer reads sums of monomials [sign][coef|p/q][*][x[^n]].
type PolynomialRecognizer struct{}

func (PolynomialRecognizer) Family() function.Family { return function.FamilyPolynomial }

// Recognize sums like powers, so "x+x" yields [0, 2]. The result has length
// maxDegree+1 with absent degrees at zero.
func (PolynomialRecognizer) Recognize(input string) (function.Function, error) {
	s := normalize(input)
	if s == "" {
		return fail(function.FamilyPolynomial, input, ErrNoRecognizedTerm)
	}
	if !polynomialCharset.MatchString(s) {
		return fail(function.FamilyPolynomial, input, ErrInvalidCharacterSet)
	}

	sc := &monomialScanner{s: s}
	var terms []monomialTerm
	maxDegree := 0
	for !sc.done() {
		t, err := sc.next()
		if err != nil {
			return fail(function.FamilyPolynomial, input, err)
		}
		if t.power > maxDegree {
			maxDegree = t.power
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return fail(function.FamilyPolynomial, input, ErrNoRecognizedTerm)
	}

	coeffs := make([]float64, maxDegree+1)
	for _, t := range terms {
		coeffs[t.power] += t.coef
	}
	return function.NewPolynomial(coeffs...), nil
}

type monomialTerm struct {
	coef  float64
	power int
}

// monomialScanner walks a whitespace-free polynomial left to right.
type monomialScanner struct {
	s   string
	pos int
}

func (sc *monomialScanner) done() bool { return sc.pos >= len(sc.s) }

func (sc *monomialScanner) peek(chars string) bool {
	if sc.done() {
		return false
	}
	for i := 0; i < len(chars); i++ {
		if sc.s[sc.pos] == chars[i] {
			return true
		}
	}
	return false
}

func (sc *monomialScanner) digits() string {
	start := sc.pos
	for !sc.done() && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// number consumes digits[.digits] or .digits and returns "" when no digit
// is present.
func (sc *monomialScanner) number() string {
	start := sc.pos
	intPart := sc.digits()
	fracPart := ""
	if sc.peek(".") {
		sc.pos++
		fracPart = sc.digits()
	}
	if intPart == "" && fracPart == "" {
		sc.pos = start
		return ""
	}
	return sc.s[start:sc.pos]
}

func (sc *monomialScanner) next() (monomialTerm, error) {
	start := sc.pos
	sign := 1.0
	switch {
	case sc.peek("+-"):
		if sc.s[sc.pos] == '-' {
			sign = -1
		}
		sc.pos++
	case start != 0:
		return monomialTerm{}, fmt.Errorf("%w at offset %d", ErrMalformedTerm, start)
	}

	coef := 1.0
	coefText := sc.number()
	hasCoef := coefText != ""
	if hasCoef {
		if sc.peek("/") {
			sc.pos++
			den := sc.number()
			if den == "" {
				return monomialTerm{}, fmt.Errorf("%w: %s/", ErrMalformedFraction, coefText)
			}
			v, err := evalFraction(coefText + "/" + den)
			if err != nil {
				return monomialTerm{}, err
			}
			coef = v
		} else {
			v, err := strconv.ParseFloat(coefText, 64)
			if err != nil {
				return monomialTerm{}, fmt.Errorf("%w: %v", ErrMalformedTerm, err)
			}
			coef = v
		}
	}

	star := false
	if sc.peek("*") {
		star = true
		sc.pos++
	}

	hasX := false
	power := 0
	if sc.peek("xX") {
		hasX = true
		power = 1
		sc.pos++
		if sc.peek("^") {
			sc.pos++
			p := sc.digits()
			if p == "" {
				return monomialTerm{}, fmt.Errorf("%w: missing power at offset %d", ErrMalformedTerm, sc.pos)
			}
			n, err := strconv.Atoi(p)
			if err != nil || n > MaxPolynomialDegree {
				return monomialTerm{}, fmt.Errorf("%w: power %s", ErrMalformedTerm, p)
			}
			power = n
		}
	}

	if !hasCoef && !hasX {
		return monomialTerm{}, fmt.Errorf("%w at offset %d", ErrMalformedTerm, start)
	}
	if star && (!hasCoef || !hasX) {
		return monomialTerm{}, fmt.Errorf("%w: dangling '*' at offset %d", ErrMalformedTerm, start)
	}
	return monomialTerm{coef: sign * coef, power: power}, nil
}
