// Package sample turns a function.Function into point sequences over an axis
// range. It does no drawing; callers map the points to whatever surface they
// render on.
package sample

import (
	"cmp"
	"encoding/json"
	"errors"
	"math"

	"golang.org/x/exp/slices"

	"github.com/wildfunctions/function_families/pkg/function"
)

// DefaultPoints is the number of grid intervals used when none is given.
const DefaultPoints = 1000

// ErrEmptyRange indicates a range whose upper bound does not exceed its lower
// bound on some axis.
var ErrEmptyRange = errors.New("sample: empty range")

// Range is the visible window on both axes.
type Range struct {
	XMin float64 `json:"x_min" yaml:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
}

// Symmetric returns [-x, x] x [-y, y].
func Symmetric(x, y float64) Range {
	x, y = math.Abs(x), math.Abs(y)
	return Range{XMin: -x, XMax: x, YMin: -y, YMax: y}
}

// DefaultRange is [-10, 10] on both axes.
func DefaultRange() Range {
	return Symmetric(10, 10)
}

// Validate reports ErrEmptyRange for a degenerate or NaN window.
func (r Range) Validate() error {
	if !(r.XMax > r.XMin) || !(r.YMax > r.YMin) {
		return ErrEmptyRange
	}
	return nil
}

// Point is one sample of a curve. OutOfDomain marks a Y that is the
// logarithm's domain guard rather than a value of the curve.
type Point struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	OutOfDomain bool    `json:"-"`
}

// At evaluates fn at x.
func At(fn function.Function, x float64) Point {
	p := Point{X: x, Y: fn.Evaluate(x)}
	if l, ok := fn.(*function.Logarithmic); ok {
		p.OutOfDomain = !l.InDomain(x)
	}
	return p
}

// Defined reports whether Y is a finite value of the curve.
func (p Point) Defined() bool {
	return !p.OutOfDomain && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// MarshalJSON writes an undefined Y as null; encoding/json would reject a
// non-finite one.
func (p Point) MarshalJSON() ([]byte, error) {
	var y *float64
	if p.Defined() {
		y = &p.Y
	}
	return json.Marshal(struct {
		X float64  `json:"x"`
		Y *float64 `json:"y"`
	}{X: p.X, Y: y})
}

// Sample evaluates fn at points+1 evenly spaced x over [r.XMin, r.XMax].
// For a logarithm whose vertical asymptote falls inside the window, grid
// points within two steps of it add one extra sample ten steps to each side.
// The result is sorted by x.
func Sample(fn function.Function, r Range, points int) []Point {
	if points <= 0 {
		points = DefaultPoints
	}
	step := (r.XMax - r.XMin) / float64(points)

	asymptote, hasAsymptote := math.Inf(1), false
	if l, ok := fn.(*function.Logarithmic); ok {
		asymptote, hasAsymptote = l.Asymptote()
	}

	out := make([]Point, 0, points+1)
	for i := 0; i <= points; i++ {
		x := r.XMin + float64(i)*step
		if hasAsymptote && math.Abs(x-asymptote) < 2*step {
			for _, ax := range []float64{asymptote - 10*step, asymptote + 10*step} {
				out = append(out, At(fn, ax))
			}
		}
		out = append(out, At(fn, x))
	}

	slices.SortStableFunc(out, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// Clip keeps the defined points whose y lies inside [r.YMin, r.YMax].
func Clip(points []Point, r Range) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Defined() && p.Y >= r.YMin && p.Y <= r.YMax {
			out = append(out, p)
		}
	}
	return out
}

// Segments splits points into runs of consecutive defined points, so a
// renderer can draw each run as one polyline without bridging an asymptote.
func Segments(points []Point) [][]Point {
	var segs [][]Point
	var cur []Point
	for _, p := range points {
		if !p.Defined() {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}
