package function

// fill overlays v onto defaults position by position. Extra entries in v are
// dropped.
func fill(dst, defaults, v []float64) {
	copy(dst, defaults)
	copy(dst, v)
}

func (p *Polynomial) SetCoefficients(v []float64) {
	p.coeffs = append([]float64(nil), v...)
}

func (p *Polynomial) Coefficients() []float64 {
	return append([]float64(nil), p.coeffs...)
}

// Degree returns the index of the highest stored coefficient, or -1 when the
// polynomial is empty.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

func (t *Trigonometric) SetCoefficients(v []float64) {
	fill(t.coeffs[:], trigonometricDefaults[:], v)
}

func (t *Trigonometric) Coefficients() []float64 {
	return append([]float64(nil), t.coeffs[:]...)
}

func (e *Exponential) SetCoefficients(v []float64) {
	fill(e.coeffs[:], exponentialDefaults[:], v)
}

func (e *Exponential) Coefficients() []float64 {
	return append([]float64(nil), e.coeffs[:]...)
}

func (l *Logarithmic) SetCoefficients(v []float64) {
	fill(l.coeffs[:], logarithmicDefaults[:], v)
}

func (l *Logarithmic) Coefficients() []float64 {
	return append([]float64(nil), l.coeffs[:]...)
}

// Asymptote returns the x where the logarithm's argument c*x + d reaches zero.
// ok is false when c is zero and the argument does not depend on x.
func (l *Logarithmic) Asymptote() (x float64, ok bool) {
	c, d := l.coeffs[2], l.coeffs[3]
	if c == 0 {
		return 0, false
	}
	return -d / c, true
}

func (m *Modulus) SetCoefficients(v []float64) {
	fill(m.coeffs[:], modulusDefaults[:], v)
}

func (m *Modulus) Coefficients() []float64 {
	return append([]float64(nil), m.coeffs[:]...)
}
