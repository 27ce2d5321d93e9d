package glint

// Kind identifies which family of blend settings a Setting belongs to.
type Kind uint8

const (
	KindColor   Kind = iota // color property driven by a Gradient
	KindScalar              // int or float property driven by a Curve
	KindTexture             // texture offset or scale driven by a start/end pair
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindScalar:
		return "scalar"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// ColorMode selects how a color sample combines with the others.
type ColorMode uint8

const (
	ColorAlphaSet ColorMode = iota // multiply the result by the sampled alpha only
	ColorSet                       // replace the origin; multiple sets multiply together
	ColorAdditive                  // add the sampled color
	ColorMultiply                  // multiply by the sampled color
)

// ScalarMode selects how a scalar sample combines with the others. Int modes
// round the sampled value to the nearest integer first.
type ScalarMode uint8

const (
	IntSet ScalarMode = iota
	IntAdditive
	IntMultiply
	FloatSet
	FloatAdditive
	FloatMultiply
)

// IsInt reports whether m is one of the Int modes.
func (m ScalarMode) IsInt() bool {
	return m <= IntMultiply
}

// TextureMode selects whether a texture sample drives the offset or the scale
// and how it combines.
type TextureMode uint8

const (
	OffsetSet TextureMode = iota
	OffsetAdditive
	OffsetMultiply
	ScaleSet
	ScaleAdditive
	ScaleMultiply
)

// Blend is the value source and blend mode of a Setting. It is one of
// ColorBlend, ScalarBlend or TextureBlend.
type Blend interface {
	Kind() Kind
	blend()
}

// ColorBlend samples a Gradient.
type ColorBlend struct {
	Mode     ColorMode
	Gradient Gradient
}

// ScalarBlend samples a Curve.
type ScalarBlend struct {
	Mode  ScalarMode
	Curve Curve
}

// TextureBlend interpolates linearly from Start to End.
type TextureBlend struct {
	Mode       TextureMode
	Start, End Vec2
}

func (ColorBlend) Kind() Kind   { return KindColor }
func (ScalarBlend) Kind() Kind  { return KindScalar }
func (TextureBlend) Kind() Kind { return KindTexture }

func (ColorBlend) blend()   {}
func (ScalarBlend) blend()  {}
func (TextureBlend) blend() {}

// Setting describes one transition: which property it targets, when it
// starts, how long it runs, and how its value blends with other transitions.
//
// Settings are referenced by pointer. The pointer is the setting's identity:
// replaying the same *Setting supersedes its previous run.
type Setting struct {
	Name string
	// Properties lists candidate property names in priority order. The first
	// one the material's shader exposes is used.
	Properties []string
	// Delay in seconds before the transition starts.
	Delay float64
	// Duration in seconds. Zero completes immediately with the final value.
	Duration float64
	Blend    Blend

	resolver PropertyResolver
}

// NewColorSetting creates a color transition.
func NewColorSetting(name string, properties []string, mode ColorMode, g Gradient) *Setting {
	return &Setting{Name: name, Properties: properties, Blend: ColorBlend{Mode: mode, Gradient: g}}
}

// NewScalarSetting creates an int or float parameter transition.
func NewScalarSetting(name string, properties []string, mode ScalarMode, c Curve) *Setting {
	return &Setting{Name: name, Properties: properties, Blend: ScalarBlend{Mode: mode, Curve: c}}
}

// NewTextureSetting creates a texture offset or scale transition.
func NewTextureSetting(name string, properties []string, mode TextureMode, start, end Vec2) *Setting {
	return &Setting{Name: name, Properties: properties, Blend: TextureBlend{Mode: mode, Start: start, End: end}}
}

// ResolveProperty returns the first candidate property exposed by m's shader,
// or "" if none is. Results are cached per shader name.
func (s *Setting) ResolveProperty(m Material) string {
	if m == nil {
		return ""
	}
	return s.resolver.Resolve(m.ShaderName(), s.Properties, m.HasProperty)
}

// InvalidateProperties clears the setting's property cache. Call it after
// changing Properties or the shaders it may be applied to.
func (s *Setting) InvalidateProperties() {
	s.resolver.InvalidateAll()
}
