package function

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// num formats v in plain decimal notation with the fewest digits that
// read back to the same float64.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// scaled writes coef applied to body: "x", "-x", "2.5*x". An empty body
// yields the bare number.
func scaled(coef float64, body string) string {
	switch {
	case body == "":
		return num(coef)
	case coef == 1:
		return body
	case coef == -1:
		return "-" + body
	default:
		return num(coef) + "*" + body
	}
}

// offset writes " + v" or " - |v|", or nothing for zero.
func offset(v float64) string {
	switch {
	case v == 0:
		return ""
	case v < 0:
		return " - " + num(-v)
	default:
		return " + " + num(v)
	}
}

// linear writes k*x + m.
func linear(k, m float64) string {
	return scaled(k, "x") + offset(m)
}

// amplitude writes the prefix applied before a function head.
func amplitude(a float64) string {
	switch a {
	case 1:
		return ""
	case -1:
		return "-"
	default:
		return num(a) + "*"
	}
}

func monomial(deg int) string {
	switch deg {
	case 0:
		return ""
	case 1:
		return "x"
	default:
		return fmt.Sprintf("x^%d", deg)
	}
}

// String methods

// String lists terms from the highest degree down. Zero terms are omitted
// except the leading one, so the printed degree matches the vector length.
func (p *Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	top := len(p.coeffs) - 1
	for deg := top; deg >= 0; deg-- {
		c := p.coeffs[deg]
		if c == 0 && deg != top {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(scaled(c, monomial(deg)))
			continue
		}
		if c < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		sb.WriteString(scaled(math.Abs(c), monomial(deg)))
	}
	return sb.String()
}

func (t *Trigonometric) String() string {
	d, a, b, c := t.coeffs[0], t.coeffs[1], t.coeffs[2], t.coeffs[3]
	return fmt.Sprintf("%s%s(%s)%s", amplitude(a), t.kind, linear(b, c), offset(d))
}

func (e *Exponential) String() string {
	d, a, b, c := e.coeffs[0], e.coeffs[1], e.coeffs[2], e.coeffs[3]
	return fmt.Sprintf("%sexp(%s)%s", amplitude(a), linear(b, c), offset(d))
}

func (l *Logarithmic) String() string {
	a, base, c, d, e := l.coeffs[0], l.coeffs[1], l.coeffs[2], l.coeffs[3], l.coeffs[4]
	inner := num(d)
	if c != 0 {
		inner = linear(c, d)
	}
	return fmt.Sprintf("%s%s(%s)%s", amplitude(a), logHead(base), inner, offset(e))
}

func logHead(base float64) string {
	switch base {
	case 10:
		return "log"
	case math.E:
		return "ln"
	default:
		return "log_" + num(base)
	}
}

func (m *Modulus) String() string {
	b, d, a, c := m.coeffs[0], m.coeffs[1], m.coeffs[2], m.coeffs[3]
	return fmt.Sprintf("%s|%s|%s", amplitude(c), linear(a, b), offset(d))
}

// LaTeX methods

func latexScaled(coef float64, body string) string {
	switch {
	case body == "":
		return num(coef)
	case coef == 1:
		return body
	case coef == -1:
		return "-" + body
	default:
		return num(coef) + body
	}
}

func latexLinear(k, m float64) string {
	return latexScaled(k, "x") + offset(m)
}

func latexAmplitude(a float64) string {
	switch a {
	case 1:
		return ""
	case -1:
		return "-"
	default:
		return num(a) + " \\cdot "
	}
}

func (p *Polynomial) LaTeX() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var sb strings.Builder
	for deg := len(p.coeffs) - 1; deg >= 0; deg-- {
		c := p.coeffs[deg]
		if c == 0 {
			continue
		}
		body := ""
		switch deg {
		case 0:
		case 1:
			body = "x"
		default:
			body = fmt.Sprintf("x^{%d}", deg)
		}
		switch {
		case sb.Len() == 0:
			sb.WriteString(latexScaled(c, body))
		case c < 0:
			sb.WriteString(" - " + latexScaled(-c, body))
		default:
			sb.WriteString(" + " + latexScaled(c, body))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

func (t *Trigonometric) LaTeX() string {
	d, a, b, c := t.coeffs[0], t.coeffs[1], t.coeffs[2], t.coeffs[3]
	return fmt.Sprintf("%s\\%s{(%s)}%s", latexAmplitude(a), t.kind, latexLinear(b, c), offset(d))
}

func (e *Exponential) LaTeX() string {
	d, a, b, c := e.coeffs[0], e.coeffs[1], e.coeffs[2], e.coeffs[3]
	return fmt.Sprintf("%se^{%s}%s", latexAmplitude(a), latexLinear(b, c), offset(d))
}

func (l *Logarithmic) LaTeX() string {
	a, base, c, d, e := l.coeffs[0], l.coeffs[1], l.coeffs[2], l.coeffs[3], l.coeffs[4]
	inner := num(d)
	if c != 0 {
		inner = latexLinear(c, d)
	}
	head := fmt.Sprintf("\\log_{%s}", num(base))
	switch base {
	case 10:
		head = "\\log"
	case math.E:
		head = "\\ln"
	}
	return fmt.Sprintf("%s%s{(%s)}%s", latexAmplitude(a), head, inner, offset(e))
}

func (m *Modulus) LaTeX() string {
	b, d, a, c := m.coeffs[0], m.coeffs[1], m.coeffs[2], m.coeffs[3]
	return fmt.Sprintf("%s\\left|%s\\right|%s", latexAmplitude(c), latexLinear(a, b), offset(d))
}
