package glint

import "testing"

func TestGradientBlend(t *testing.T) {
	g := NewGradient(
		[]ColorKey{{Time: 0, Color: Color{1, 0, 0, 1}}, {Time: 1, Color: Color{0, 0, 1, 1}}},
		[]AlphaKey{{Time: 0, Alpha: 1}, {Time: 1, Alpha: 0}},
	)
	got := g.Evaluate(0.25)
	want := Color{0.75, 0, 0.25, 0.75}
	if !approxColor(got, want) {
		t.Errorf("Evaluate(0.25) = %+v, want %+v", got, want)
	}
}

func TestGradientIndependentAlphaKeys(t *testing.T) {
	g := NewGradient(
		[]ColorKey{{Time: 0, Color: ColorWhite}},
		[]AlphaKey{{Time: 0.5, Alpha: 0}, {Time: 1, Alpha: 1}},
	)
	if got := g.Evaluate(0.75); !approxColor(got, Color{1, 1, 1, 0.5}) {
		t.Errorf("Evaluate(0.75) = %+v", got)
	}
	if got := g.Evaluate(0.1); !approxColor(got, Color{1, 1, 1, 0}) {
		t.Errorf("Evaluate(0.1) = %+v, want alpha clamped to first key", got)
	}
}

func TestGradientFixed(t *testing.T) {
	g := NewGradient(
		[]ColorKey{
			{Time: 0, Color: Color{1, 0, 0, 1}},
			{Time: 0.5, Color: Color{0, 1, 0, 1}},
			{Time: 1, Color: Color{0, 0, 1, 1}},
		},
		nil,
	)
	g.Mode = GradientFixed
	if got := g.Evaluate(0.25); got != (Color{0, 1, 0, 1}) {
		t.Errorf("Evaluate(0.25) = %+v, want next key green", got)
	}
	if got := g.Evaluate(0.75); got != (Color{0, 0, 1, 1}) {
		t.Errorf("Evaluate(0.75) = %+v, want blue", got)
	}
	if got := g.Evaluate(0.5); got != (Color{0, 1, 0, 1}) {
		t.Errorf("Evaluate(0.5) = %+v, want the key at 0.5 (green)", got)
	}
	if got := g.Evaluate(0.5000001); got != (Color{0, 0, 1, 1}) {
		t.Errorf("Evaluate just past 0.5 = %+v, want blue", got)
	}
}

func TestGradientHDRAndDefaults(t *testing.T) {
	g := SolidGradient(Color{4, 2, 0, 1})
	if got := g.Evaluate(0.3); got != (Color{4, 2, 0, 1}) {
		t.Errorf("HDR color clamped: %+v", got)
	}
	var empty Gradient
	if got := empty.Evaluate(0.5); got != (Color{0, 0, 0, 1}) {
		t.Errorf("empty gradient = %+v, want opaque black", got)
	}
	if got := DefaultGradient().Evaluate(1); got != ColorWhite {
		t.Errorf("default gradient end = %+v", got)
	}
}
