// Package function holds the canonical numeric model of the five supported
// function families. Each family stores a fixed-layout coefficient vector and
// evaluates it without side effects.
package function

import (
	"fmt"
	"strings"
)

// Function is the capability set shared by every family. The set of
// implementations is closed: only the types in this package satisfy it.
type Function interface {
	Evaluate(x float64) float64
	SetCoefficients(v []float64)
	Coefficients() []float64
	Name() string
	Family() Family
	String() string
	LaTeX() string
	Clone() Function

	sealed()
}

// Family identifies one of the supported function shapes.
type Family int

const (
	FamilyPolynomial Family = iota
	FamilyTrigonometric
	FamilyExponential
	FamilyLogarithmic
	FamilyModulus
)

var familyNames = map[Family]string{
	FamilyPolynomial:    "polynomial",
	FamilyTrigonometric: "trigonometric",
	FamilyExponential:   "exponential",
	FamilyLogarithmic:   "logarithmic",
	FamilyModulus:       "modulus",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{
		FamilyPolynomial,
		FamilyTrigonometric,
		FamilyExponential,
		FamilyLogarithmic,
		FamilyModulus,
	}
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily maps a lower-case family name back to its Family.
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown family: %s", name)
}

// TrigType selects the trigonometric function applied by a Trigonometric.
type TrigType int

const (
	Sin TrigType = iota
	Cos
	Tan
	Cot
)

var trigNames = map[TrigType]string{
	Sin: "sin",
	Cos: "cos",
	Tan: "tan",
	Cot: "cot",
}

func (t TrigType) String() string {
	if name, ok := trigNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TrigType(%d)", int(t))
}

// ParseTrigType matches sin, cos, tan or cot in any letter case.
func ParseTrigType(name string) (TrigType, bool) {
	name = strings.ToLower(name)
	for t, n := range trigNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Vector lengths of the fixed-layout families.
const (
	TrigonometricLen = 4
	ExponentialLen   = 4
	LogarithmicLen   = 5
	ModulusLen       = 4
)

// Default vectors, also used position by position to pad short input.
var (
	trigonometricDefaults = [TrigonometricLen]float64{0, 1, 1, 0} // d, a, b, c
	exponentialDefaults   = [ExponentialLen]float64{0, 1, 1, 0}   // d, a, b, c
	logarithmicDefaults   = [LogarithmicLen]float64{1, 10, 1, 0, 0}
	modulusDefaults       = [ModulusLen]float64{0, 0, 1, 1} // b, d, a, c
)

// Polynomial is c0 + c1*x + c2*x^2 + ... with no minimum length.
type Polynomial struct {
	coeffs []float64
}

// Trigonometric is d + a*trig(b*x + c), stored as [d, a, b, c].
type Trigonometric struct {
	kind   TrigType
	coeffs [TrigonometricLen]float64
}

// Exponential is d + a*exp(b*x + c), stored as [d, a, b, c].
type Exponential struct {
	coeffs [ExponentialLen]float64
}

// Logarithmic is e + a*log_base(c*x + d), stored as [a, base, c, d, e].
type Logarithmic struct {
	coeffs [LogarithmicLen]float64
}

// Modulus is d + c*|a*x + b|, stored as [b, d, a, c].
type Modulus struct {
	coeffs [ModulusLen]float64
}

// NewPolynomial returns a polynomial with coefficients in ascending degree.
func NewPolynomial(coeffs ...float64) *Polynomial {
	p := &Polynomial{}
	p.SetCoefficients(coeffs)
	return p
}

// NewTrigonometric returns kind with coefficients [d, a, b, c]; missing
// positions take the defaults 0, 1, 1, 0.
func NewTrigonometric(kind TrigType, coeffs ...float64) *Trigonometric {
	t := &Trigonometric{kind: kind, coeffs: trigonometricDefaults}
	t.SetCoefficients(coeffs)
	return t
}

// NewExponential returns an exponential with coefficients [d, a, b, c].
func NewExponential(coeffs ...float64) *Exponential {
	e := &Exponential{coeffs: exponentialDefaults}
	e.SetCoefficients(coeffs)
	return e
}

// NewLogarithmic returns a logarithm with coefficients [a, base, c, d, e];
// missing positions take the defaults 1, 10, 1, 0, 0.
func NewLogarithmic(coeffs ...float64) *Logarithmic {
	l := &Logarithmic{coeffs: logarithmicDefaults}
	l.SetCoefficients(coeffs)
	return l
}

// NewModulus returns a modulus with coefficients [b, d, a, c].
func NewModulus(coeffs ...float64) *Modulus {
	m := &Modulus{coeffs: modulusDefaults}
	m.SetCoefficients(coeffs)
	return m
}

// New builds a fresh Function of the given family. Trigonometric functions
// start as Sin; use NewTrigonometric to choose another kind.
func New(family Family, coeffs []float64) (Function, error) {
	switch family {
	case FamilyPolynomial:
		return NewPolynomial(coeffs...), nil
	case FamilyTrigonometric:
		return NewTrigonometric(Sin, coeffs...), nil
	case FamilyExponential:
		return NewExponential(coeffs...), nil
	case FamilyLogarithmic:
		return NewLogarithmic(coeffs...), nil
	case FamilyModulus:
		return NewModulus(coeffs...), nil
	default:
		return nil, fmt.Errorf("unknown family: %v", family)
	}
}

// Type reports which trigonometric function is applied.
func (t *Trigonometric) Type() TrigType { return t.kind }

// SetType changes the trigonometric function, keeping the coefficients.
func (t *Trigonometric) SetType(kind TrigType) { t.kind = kind }

func (p *Polynomial) Family() Family    { return FamilyPolynomial }
func (t *Trigonometric) Family() Family { return FamilyTrigonometric }
func (e *Exponential) Family() Family   { return FamilyExponential }
func (l *Logarithmic) Family() Family   { return FamilyLogarithmic }
func (m *Modulus) Family() Family       { return FamilyModulus }

func (p *Polynomial) Name() string { return "Polynomial" }

// Name returns the capitalized trig kind: Sin, Cos, Tan or Cot.
func (t *Trigonometric) Name() string {
	s := t.kind.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func (e *Exponential) Name() string { return "Exponential" }
func (l *Logarithmic) Name() string { return "Logarithmic" }
func (m *Modulus) Name() string     { return "Modulus" }

func (p *Polynomial) sealed()    {}
func (t *Trigonometric) sealed() {}
func (e *Exponential) sealed()   {}
func (l *Logarithmic) sealed()   {}
func (m *Modulus) sealed()       {}
