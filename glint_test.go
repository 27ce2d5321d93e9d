package glint

import "testing"

func TestColorOps(t *testing.T) {
	c := Color{0.5, 1, 2, 1}
	if got := c.Add(Color{0.25, 0, -1, 0}); got != (Color{0.75, 1, 1, 1}) {
		t.Errorf("Add = %+v", got)
	}
	if got := c.Mul(Color{2, 0.5, 0.5, 0}); got != (Color{1, 0.5, 1, 0}) {
		t.Errorf("Mul = %+v", got)
	}
	if c.Mul(ColorWhite) != c || c.Add(ColorClear) != c {
		t.Error("identities do not hold")
	}
}

func TestVec2Ops(t *testing.T) {
	v := Vec2{2, -1}
	if got := v.Add(Vec2{1, 1}); got != (Vec2{3, 0}) {
		t.Errorf("Add = %+v", got)
	}
	if got := v.Mul(Vec2{0.5, 3}); got != (Vec2{1, -3}) {
		t.Errorf("Mul = %+v", got)
	}
}

func TestLerpClamps(t *testing.T) {
	a, b := Vec2{0, 10}, Vec2{4, 20}
	tests := []struct {
		t    float64
		want Vec2
	}{
		{-1, a},
		{0, a},
		{0.25, Vec2{1, 12.5}},
		{1, b},
		{3, b},
	}
	for _, tt := range tests {
		if got := Lerp(a, b, tt.t); !approxVec(got, tt.want) {
			t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}
