package glint

import "sort"

// GradientMode selects how a Gradient interpolates between keys.
type GradientMode uint8

const (
	GradientBlend GradientMode = iota // linear interpolation between keys
	GradientFixed                     // hold each key's value until the next key
)

// ColorKey places an RGB color at a normalized time. Its alpha is ignored.
type ColorKey struct {
	Time  float64
	Color Color
}

// AlphaKey places an alpha value at a normalized time.
type AlphaKey struct {
	Time  float64
	Alpha float64
}

// Gradient maps a normalized time to a color. RGB and alpha are keyed
// independently.
type Gradient struct {
	Mode   GradientMode
	colors []ColorKey
	alphas []AlphaKey
}

// NewGradient creates a gradient from color and alpha keys. Keys are copied
// and sorted by time. With no alpha keys the gradient is fully opaque.
func NewGradient(colors []ColorKey, alphas []AlphaKey) Gradient {
	c := make([]ColorKey, len(colors))
	copy(c, colors)
	sort.SliceStable(c, func(i, j int) bool { return c[i].Time < c[j].Time })

	a := make([]AlphaKey, len(alphas))
	copy(a, alphas)
	sort.SliceStable(a, func(i, j int) bool { return a[i].Time < a[j].Time })

	return Gradient{colors: c, alphas: a}
}

// DefaultGradient returns the opaque black to white gradient.
func DefaultGradient() Gradient {
	return NewGradient(
		[]ColorKey{{Time: 0, Color: Color{0, 0, 0, 1}}, {Time: 1, Color: ColorWhite}},
		[]AlphaKey{{Time: 0, Alpha: 1}, {Time: 1, Alpha: 1}},
	)
}

// SolidGradient returns a gradient that evaluates to c everywhere.
func SolidGradient(c Color) Gradient {
	return NewGradient([]ColorKey{{Time: 0, Color: c}}, []AlphaKey{{Time: 0, Alpha: c.A}})
}

// ColorKeys returns the gradient's color keys. The returned slice MUST NOT be mutated.
func (g Gradient) ColorKeys() []ColorKey { return g.colors }

// AlphaKeys returns the gradient's alpha keys. The returned slice MUST NOT be mutated.
func (g Gradient) AlphaKeys() []AlphaKey { return g.alphas }

// Evaluate returns the gradient color at t.
func (g Gradient) Evaluate(t float64) Color {
	out := Color{A: 1}
	if n := len(g.colors); n > 0 {
		i, f := g.segment(n, func(i int) float64 { return g.colors[i].Time }, t)
		c0 := g.colors[i].Color
		c1 := g.colors[min(i+1, n-1)].Color
		out.R = c0.R + (c1.R-c0.R)*f
		out.G = c0.G + (c1.G-c0.G)*f
		out.B = c0.B + (c1.B-c0.B)*f
	}
	if n := len(g.alphas); n > 0 {
		i, f := g.segment(n, func(i int) float64 { return g.alphas[i].Time }, t)
		a0 := g.alphas[i].Alpha
		a1 := g.alphas[min(i+1, n-1)].Alpha
		out.A = a0 + (a1-a0)*f
	}
	return out
}

// segment locates t among n sorted key times and returns the index of the
// segment's first key and the interpolation factor inside the segment.
func (g Gradient) segment(n int, timeAt func(int) float64, t float64) (int, float64) {
	if t <= timeAt(0) {
		return 0, 0
	}
	if t >= timeAt(n-1) {
		return n - 1, 0
	}
	if g.Mode == GradientFixed {
		// Fixed gradients show the first key at or after t.
		return sort.Search(n, func(i int) bool { return timeAt(i) >= t }), 0
	}
	i := sort.Search(n, func(i int) bool { return timeAt(i) > t }) - 1
	span := timeAt(i+1) - timeAt(i)
	if span <= 0 {
		return i + 1, 0
	}
	return i, (t - timeAt(i)) / span
}
