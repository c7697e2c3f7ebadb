package function

func (p *Polynomial) Clone() Function {
	return &Polynomial{coeffs: p.Coefficients()}
}

func (t *Trigonometric) Clone() Function {
	return &Trigonometric{kind: t.kind, coeffs: t.coeffs}
}

func (e *Exponential) Clone() Function {
	return &Exponential{coeffs: e.coeffs}
}

func (l *Logarithmic) Clone() Function {
	return &Logarithmic{coeffs: l.coeffs}
}

func (m *Modulus) Clone() Function {
	return &Modulus{coeffs: m.coeffs}
}
