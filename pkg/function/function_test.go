package function

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomialEvaluate_MatchesPowerSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		coeffs := make([]float64, rng.Intn(7)+1)
		for i := range coeffs {
			coeffs[i] = rng.Float64()*20 - 10
		}
		p := NewPolynomial(coeffs...)

		x := rng.Float64()*6 - 3
		want := 0.0
		for i, c := range coeffs {
			want += c * math.Pow(x, float64(i))
		}
		got := p.Evaluate(x)
		tol := math.Max(math.Abs(want)*1e-12, 1e-12)
		require.InDelta(t, want, got, tol, "coeffs=%v x=%v", coeffs, x)
	}
}

func TestPolynomialEvaluate_Empty(t *testing.T) {
	p := NewPolynomial()
	assert.Equal(t, 0.0, p.Evaluate(3))
	assert.Equal(t, -1, p.Degree())
}

func TestTrigonometricEvaluate(t *testing.T) {
	cases := []struct {
		name string
		kind TrigType
		v    []float64 // d, a, b, c
		x    float64
		want float64
	}{
		{"sin", Sin, []float64{0, 1, 1, 0}, math.Pi / 2, 1},
		{"2sin(x+1)-3", Sin, []float64{-3, 2, 1, 1}, 0.5, -3 + 2*math.Sin(1.5)},
		{"cos", Cos, []float64{1, 2, 3, 0}, 0, 3},
		{"tan", Tan, []float64{0, 1, 2, 0}, 0.25, math.Tan(0.5)},
		{"cot", Cot, []float64{0, 1, 1, 0}, 1, 1 / math.Tan(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewTrigonometric(tc.kind, tc.v...)
			assert.InDelta(t, tc.want, f.Evaluate(tc.x), 1e-12)
		})
	}
}

func TestCotangent_ZeroTangentYieldsOffset(t *testing.T) {
	f := NewTrigonometric(Cot, 2, 3, 1, 0)
	assert.Equal(t, 2.0, f.Evaluate(0))
	assert.False(t, math.IsInf(f.Evaluate(0), 0))
}

func TestExponentialEvaluate(t *testing.T) {
	f := NewExponential(4, 2, -3, 1)
	assert.InDelta(t, 4+2*math.Exp(-3*0.5+1), f.Evaluate(0.5), 1e-12)
	assert.InDelta(t, 1.0, NewExponential().Evaluate(0), 0)
}

func TestLogarithmicEvaluate(t *testing.T) {
	f := NewLogarithmic(2, 10, 1, 0, 1)
	assert.InDelta(t, 1+2*2.0, f.Evaluate(100), 1e-12)

	ln := NewLogarithmic(1, math.E, 2, -1, 0)
	assert.InDelta(t, math.Log(3), ln.Evaluate(2), 1e-12)
}

func TestLogarithmicEvaluate_DomainGuard(t *testing.T) {
	pos := NewLogarithmic(2, 10, 1, 0, 0)
	neg := NewLogarithmic(-2, 10, 1, 0, 0)
	zero := NewLogarithmic(0, 10, 1, 0, 0)

	for _, x := range []float64{-5, 0, 1e-11, 1e-10} {
		assert.Equal(t, -LogSentinel, pos.Evaluate(x), "a>0 x=%v", x)
		assert.Equal(t, LogSentinel, neg.Evaluate(x), "a<0 x=%v", x)
		assert.Equal(t, LogSentinel, zero.Evaluate(x), "a=0 x=%v", x)
	}

	// Just above the threshold the logarithm is real again.
	assert.NotEqual(t, -LogSentinel, pos.Evaluate(2e-10))
	assert.Equal(t, -LogSentinel, pos.Evaluate(math.NaN()))
}

func TestLogarithmicEvaluate_DegenerateBase(t *testing.T) {
	for _, base := range []float64{1, 0, -2} {
		f := NewLogarithmic(1, base, 1, 0, 0)
		assert.Equal(t, -LogSentinel, f.Evaluate(5), "base=%v", base)
	}
}

func TestModulusEvaluate(t *testing.T) {
	f := NewModulus(1, -3, 1, 2) // 2*|x+1| - 3
	assert.Equal(t, -3.0, f.Evaluate(-1))
	assert.Equal(t, 3.0, f.Evaluate(2))
	assert.Equal(t, 3.0, f.Evaluate(-4))
}

func TestSetCoefficients_PadsWithDefaults(t *testing.T) {
	cases := []struct {
		name string
		fn   Function
		in   []float64
		want []float64
	}{
		{"trig empty", NewTrigonometric(Cos), nil, []float64{0, 1, 1, 0}},
		{"trig short", NewTrigonometric(Sin), []float64{5}, []float64{5, 1, 1, 0}},
		{"exp short", NewExponential(), []float64{1, 2}, []float64{1, 2, 1, 0}},
		{"log two", NewLogarithmic(), []float64{3, 2}, []float64{3, 2, 1, 0, 0}},
		{"log empty", NewLogarithmic(), nil, []float64{1, 10, 1, 0, 0}},
		{"modulus short", NewModulus(), []float64{1, 2}, []float64{1, 2, 1, 1}},
		{"trig long", NewTrigonometric(Tan), []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4}},
		{"polynomial keeps length", NewPolynomial(), []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn.SetCoefficients(tc.in)
			assert.Equal(t, tc.want, tc.fn.Coefficients())
		})
	}
}

func TestCoefficients_ReturnsCopy(t *testing.T) {
	for _, f := range []Function{
		NewPolynomial(1, 2),
		NewTrigonometric(Sin),
		NewExponential(),
		NewLogarithmic(),
		NewModulus(),
	} {
		v := f.Coefficients()
		v[0] = 99
		assert.NotEqual(t, 99.0, f.Coefficients()[0], f.Name())

		in := []float64{7, 7}
		f.SetCoefficients(in)
		in[0] = -1
		assert.Equal(t, 7.0, f.Coefficients()[0], f.Name())
	}
}

func TestNameAndFamily(t *testing.T) {
	cases := []struct {
		fn     Function
		name   string
		family Family
	}{
		{NewPolynomial(1), "Polynomial", FamilyPolynomial},
		{NewTrigonometric(Sin), "Sin", FamilyTrigonometric},
		{NewTrigonometric(Cos), "Cos", FamilyTrigonometric},
		{NewTrigonometric(Tan), "Tan", FamilyTrigonometric},
		{NewTrigonometric(Cot), "Cot", FamilyTrigonometric},
		{NewExponential(), "Exponential", FamilyExponential},
		{NewLogarithmic(), "Logarithmic", FamilyLogarithmic},
		{NewModulus(), "Modulus", FamilyModulus},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.fn.Name())
		assert.Equal(t, tc.family, tc.fn.Family())
	}
}

func TestSetType(t *testing.T) {
	f := NewTrigonometric(Sin, 0, 1, 1, 0)
	f.SetType(Cos)
	assert.Equal(t, Cos, f.Type())
	assert.InDelta(t, 1.0, f.Evaluate(0), 0)
}

func TestNew(t *testing.T) {
	for _, fam := range Families() {
		f, err := New(fam, nil)
		require.NoError(t, err)
		assert.Equal(t, fam, f.Family())
	}
	_, err := New(Family(42), nil)
	assert.Error(t, err)
}

func TestParseFamily(t *testing.T) {
	for _, fam := range Families() {
		got, err := ParseFamily(" " + fam.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, fam, got)
	}
	_, err := ParseFamily("rational")
	assert.Error(t, err)
	assert.Equal(t, "Family(9)", Family(9).String())
}

func TestParseTrigType(t *testing.T) {
	kind, ok := ParseTrigType("COT")
	require.True(t, ok)
	assert.Equal(t, Cot, kind)

	_, ok = ParseTrigType("sec")
	assert.False(t, ok)
}

func TestClone_IsIndependent(t *testing.T) {
	orig := NewTrigonometric(Tan, 1, 2, 3, 4)
	c := orig.Clone()
	c.SetCoefficients([]float64{9, 9, 9, 9})
	c.(*Trigonometric).SetType(Sin)

	assert.Equal(t, []float64{1, 2, 3, 4}, orig.Coefficients())
	assert.Equal(t, Tan, orig.Type())

	p := NewPolynomial(1, 2, 3)
	pc := p.Clone()
	pc.SetCoefficients([]float64{0})
	assert.Equal(t, []float64{1, 2, 3}, p.Coefficients())
}

func TestAsymptote(t *testing.T) {
	x, ok := NewLogarithmic(1, 10, 2, -4, 0).Asymptote()
	require.True(t, ok)
	assert.Equal(t, 2.0, x)

	_, ok = NewLogarithmic(1, 10, 0, 5, 0).Asymptote()
	assert.False(t, ok)
}

func TestInDomain(t *testing.T) {
	l := NewLogarithmic(1, 10, 2, -4, 0) // argument 2x - 4
	assert.True(t, l.InDomain(3))
	assert.False(t, l.InDomain(2))
	assert.False(t, l.InDomain(1))
	assert.False(t, l.InDomain(math.NaN()))

	assert.False(t, NewLogarithmic(1, 1, 1, 0, 0).InDomain(5))
	assert.False(t, NewLogarithmic(1, -3, 1, 0, 0).InDomain(5))
}
