package glint

// Color represents an RGBA color. Components are nominally in [0, 1] but HDR
// values above 1 are allowed and never clamped.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the multiplicative identity.
var ColorWhite = Color{1, 1, 1, 1}

// ColorClear is the additive identity.
var ColorClear = Color{}

// Add returns the componentwise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Mul returns the componentwise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Vec2 is a 2D vector used for texture offsets and scales.
type Vec2 struct {
	X, Y float64
}

// Vec2Zero and Vec2One are the additive and multiplicative identities.
var (
	Vec2Zero = Vec2{}
	Vec2One  = Vec2{1, 1}
)

// Add returns the componentwise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mul returns the componentwise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Lerp interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b Vec2, t float64) Vec2 {
	t = clamp01(t)
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Material is the host's per-slot shader parameter container. Implementations
// are usually pointers so they can be compared and cloned cheaply.
type Material interface {
	// ShaderName identifies the shader the material is built on. Property
	// resolution is cached per shader name.
	ShaderName() string
	// HasProperty reports whether the shader exposes the named property.
	HasProperty(name string) bool

	Color(name string) Color
	SetColor(name string, c Color)
	// Float reads a scalar property. Int properties are read through Float as well.
	Float(name string) float64
	SetFloat(name string, v float64)
	Int(name string) int
	SetInt(name string, v int)
	TextureOffset(name string) Vec2
	SetTextureOffset(name string, v Vec2)
	TextureScale(name string) Vec2
	SetTextureScale(name string, v Vec2)

	// Clone returns a private copy that can be mutated without touching the
	// receiver.
	Clone() Material
	// Destroy releases a material created by Clone.
	Destroy()
}

// Renderer is a renderable object owning an ordered sequence of material
// slots. Slots may be nil. Renderers are compared with ==, so implementations
// must be comparable; pointer types are the usual choice.
type Renderer interface {
	SharedMaterials() []Material
	SetSharedMaterials(materials []Material)
}

// Owner is the object hosting a Player. A nil Owner is always active and has
// no default renderers.
type Owner interface {
	// Active reports whether the owner is enabled. Play requests made while
	// the owner is inactive are dropped.
	Active() bool
	// Renderers returns the default renderer set used when none is configured.
	Renderers() []Renderer
}
