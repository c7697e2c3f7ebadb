package function

import "math"

const (
	// LogSentinel is the magnitude a Logarithmic returns where its argument
	// is non-positive or too close to zero. The sign is opposite to the
	// leading coefficient so the curve heads toward the asymptote.
	LogSentinel = 1e10

	nearZero = 1e-10
)

// Evaluate accumulates powers of x term by term.
func (p *Polynomial) Evaluate(x float64) float64 {
	result := 0.0
	power := 1.0
	for _, c := range p.coeffs {
		result += c * power
		power *= x
	}
	return result
}

// Evaluate returns d for Cot wherever tan(b*x + c) is exactly zero.
func (t *Trigonometric) Evaluate(x float64) float64 {
	d, a, b, c := t.coeffs[0], t.coeffs[1], t.coeffs[2], t.coeffs[3]
	val := b*x + c

	switch t.kind {
	case Sin:
		return d + a*math.Sin(val)
	case Cos:
		return d + a*math.Cos(val)
	case Tan:
		return d + a*math.Tan(val)
	case Cot:
		tv := math.Tan(val)
		if tv == 0 {
			return d
		}
		return d + a/tv
	default:
		return d
	}
}

func (e *Exponential) Evaluate(x float64) float64 {
	d, a, b, c := e.coeffs[0], e.coeffs[1], e.coeffs[2], e.coeffs[3]
	return d + a*math.Exp(b*x+c)
}

// Evaluate returns -LogSentinel (a > 0) or +LogSentinel (otherwise) outside
// the domain. A base that is not positive or equals 1 is treated the same way.
func (l *Logarithmic) Evaluate(x float64) float64 {
	a, base, c, d, e := l.coeffs[0], l.coeffs[1], l.coeffs[2], l.coeffs[3], l.coeffs[4]

	if !l.InDomain(x) {
		if a > 0 {
			return -LogSentinel
		}
		return LogSentinel
	}
	return e + a*(math.Log(c*x+d)/math.Log(base))
}

// InDomain reports whether Evaluate returns a real logarithm at x rather
// than the LogSentinel guard.
func (l *Logarithmic) InDomain(x float64) bool {
	base, c, d := l.coeffs[1], l.coeffs[2], l.coeffs[3]
	arg := c*x + d
	return arg > nearZero && base > 0 && base != 1
}

func (m *Modulus) Evaluate(x float64) float64 {
	b, d, a, c := m.coeffs[0], m.coeffs[1], m.coeffs[2], m.coeffs[3]
	return d + c*math.Abs(a*x+b)
}
