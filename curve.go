package glint

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Keyframe is one point on a Curve. Ease shapes the segment that starts at
// this key; nil means linear.
type Keyframe struct {
	Time  float64
	Value float64
	Ease  ease.TweenFunc
}

// Curve maps a normalized time to a scalar value through a sequence of
// keyframes. Outside the key range the curve holds its first or last value.
type Curve struct {
	keys []Keyframe
}

// NewCurve creates a curve from keys. Keys are copied and sorted by time.
func NewCurve(keys ...Keyframe) Curve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return Curve{keys: sorted}
}

// LinearCurve returns a two-key linear curve from (t0, v0) to (t1, v1).
func LinearCurve(t0, v0, t1, v1 float64) Curve {
	return NewCurve(Keyframe{Time: t0, Value: v0}, Keyframe{Time: t1, Value: v1})
}

// DefaultCurve is the linear ramp from (0, 0) to (1, 1).
func DefaultCurve() Curve {
	return LinearCurve(0, 0, 1, 1)
}

// Keys returns the curve's keyframes. The returned slice MUST NOT be mutated.
func (c Curve) Keys() []Keyframe {
	return c.keys
}

// Evaluate returns the curve value at t. An empty curve evaluates to 0.
func (c Curve) Evaluate(t float64) float64 {
	n := len(c.keys)
	if n == 0 {
		return 0
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if t >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}
	// First key strictly after t; the segment is [i-1, i].
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t })
	k0, k1 := c.keys[i-1], c.keys[i]
	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Value
	}
	fn := k0.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(t-k0.Time), float32(k0.Value), float32(k1.Value-k0.Value), float32(span)))
}
