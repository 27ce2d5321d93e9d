package glint

import "math"

// Sample is one setting's contribution to a property this frame.
type Sample struct {
	Setting *Setting
	// Ratio is the normalized playback time used to sample the setting's
	// gradient, curve or start/end pair.
	Ratio float64
}

// BlendColor folds the color samples over origin. Samples that are not color
// settings are ignored. With no samples the result is origin.
func BlendColor(origin Color, samples []Sample) Color {
	alpha := 1.0
	setVal := ColorWhite
	hasSet := false
	add := ColorClear
	mul := ColorWhite

	for _, s := range samples {
		b, ok := s.Setting.Blend.(ColorBlend)
		if !ok {
			continue
		}
		src := b.Gradient.Evaluate(s.Ratio)
		switch b.Mode {
		case ColorAlphaSet:
			alpha *= src.A
		case ColorSet:
			setVal = setVal.Mul(src)
			hasSet = true
		case ColorAdditive:
			add = add.Add(src)
		case ColorMultiply:
			mul = mul.Mul(src)
		}
	}

	base := origin
	if hasSet {
		base = setVal
	}
	return base.Add(add).Mul(mul).Mul(Color{1, 1, 1, alpha})
}

// BlendScalar folds the scalar samples over origin. asInt reports whether the
// first sample uses an Int mode, in which case value has already been
// truncated toward zero. Samples that are not scalar settings are ignored.
func BlendScalar(origin float64, samples []Sample) (value float64, asInt bool) {
	var acc accumulator
	acc.reset()

	for _, s := range samples {
		b, ok := s.Setting.Blend.(ScalarBlend)
		if !ok {
			continue
		}
		src := b.Curve.Evaluate(s.Ratio)
		if b.Mode.IsInt() {
			src = math.RoundToEven(src)
		}
		switch b.Mode {
		case IntSet, FloatSet:
			acc.set(src)
		case IntAdditive, FloatAdditive:
			acc.add += src
		case IntMultiply, FloatMultiply:
			acc.mul *= src
		}
	}

	value = acc.result(origin)
	if len(samples) > 0 {
		if b, ok := samples[0].Setting.Blend.(ScalarBlend); ok && b.Mode.IsInt() {
			return math.Trunc(value), true
		}
	}
	return value, false
}

// BlendTexture folds the texture samples over the origin offset and scale.
// Offset and scale accumulate independently. Samples that are not texture
// settings are ignored.
func BlendTexture(offset, scale Vec2, samples []Sample) (Vec2, Vec2) {
	var ox, oy, sx, sy accumulator
	ox.reset()
	oy.reset()
	sx.reset()
	sy.reset()

	for _, s := range samples {
		b, ok := s.Setting.Blend.(TextureBlend)
		if !ok {
			continue
		}
		src := Lerp(b.Start, b.End, s.Ratio)
		switch b.Mode {
		case OffsetSet:
			ox.set(src.X)
			oy.set(src.Y)
		case OffsetAdditive:
			ox.add += src.X
			oy.add += src.Y
		case OffsetMultiply:
			ox.mul *= src.X
			oy.mul *= src.Y
		case ScaleSet:
			sx.set(src.X)
			sy.set(src.Y)
		case ScaleAdditive:
			sx.add += src.X
			sy.add += src.Y
		case ScaleMultiply:
			sx.mul *= src.X
			sy.mul *= src.Y
		}
	}

	return Vec2{ox.result(offset.X), oy.result(offset.Y)},
		Vec2{sx.result(scale.X), sy.result(scale.Y)}
}

// accumulator holds the set/additive/multiply state for one scalar channel.
// A later set overwrites an earlier one.
type accumulator struct {
	setVal float64
	hasSet bool
	add    float64
	mul    float64
}

func (a *accumulator) reset() {
	*a = accumulator{mul: 1}
}

func (a *accumulator) set(v float64) {
	a.setVal = v
	a.hasSet = true
}

func (a *accumulator) result(origin float64) float64 {
	base := origin
	if a.hasSet {
		base = a.setVal
	}
	return (base + a.add) * a.mul
}
