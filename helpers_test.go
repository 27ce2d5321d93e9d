package glint

import "math"

// fakeMaterial is an in-memory Material. Properties listed at construction
// exist on its shader; values default to zero.
type fakeMaterial struct {
	shader    string
	props     map[string]bool
	colors    map[string]Color
	floats    map[string]float64
	ints      map[string]int
	offsets   map[string]Vec2
	scales    map[string]Vec2
	probes    int
	clones    int
	destroyed bool
	origin    *fakeMaterial
}

func newFakeMaterial(shader string, props ...string) *fakeMaterial {
	m := &fakeMaterial{
		shader:  shader,
		props:   make(map[string]bool),
		colors:  make(map[string]Color),
		floats:  make(map[string]float64),
		ints:    make(map[string]int),
		offsets: make(map[string]Vec2),
		scales:  make(map[string]Vec2),
	}
	for _, p := range props {
		m.props[p] = true
	}
	return m
}

func (m *fakeMaterial) ShaderName() string { return m.shader }

func (m *fakeMaterial) HasProperty(name string) bool {
	m.probes++
	return m.props[name]
}

func (m *fakeMaterial) Color(name string) Color              { return m.colors[name] }
func (m *fakeMaterial) SetColor(name string, c Color)        { m.colors[name] = c }
func (m *fakeMaterial) Float(name string) float64            { return m.floats[name] }
func (m *fakeMaterial) SetFloat(name string, v float64)      { m.floats[name] = v }
func (m *fakeMaterial) Int(name string) int                  { return m.ints[name] }
func (m *fakeMaterial) SetInt(name string, v int)            { m.ints[name] = v }
func (m *fakeMaterial) TextureOffset(name string) Vec2       { return m.offsets[name] }
func (m *fakeMaterial) SetTextureOffset(name string, v Vec2) { m.offsets[name] = v }
func (m *fakeMaterial) TextureScale(name string) Vec2        { return m.scales[name] }
func (m *fakeMaterial) SetTextureScale(name string, v Vec2)  { m.scales[name] = v }

func (m *fakeMaterial) Clone() Material {
	m.clones++
	c := newFakeMaterial(m.shader)
	for k, v := range m.props {
		c.props[k] = v
	}
	for k, v := range m.colors {
		c.colors[k] = v
	}
	for k, v := range m.floats {
		c.floats[k] = v
	}
	for k, v := range m.ints {
		c.ints[k] = v
	}
	for k, v := range m.offsets {
		c.offsets[k] = v
	}
	for k, v := range m.scales {
		c.scales[k] = v
	}
	c.origin = m
	return c
}

func (m *fakeMaterial) Destroy() { m.destroyed = true }

// fakeRenderer holds material slots and counts reassignments.
type fakeRenderer struct {
	materials []Material
	sets      int
}

func newFakeRenderer(mats ...*fakeMaterial) *fakeRenderer {
	r := &fakeRenderer{materials: make([]Material, len(mats))}
	for i, m := range mats {
		if m != nil {
			r.materials[i] = m
		}
	}
	return r
}

func (r *fakeRenderer) SharedMaterials() []Material { return r.materials }

func (r *fakeRenderer) SetSharedMaterials(mats []Material) {
	r.materials = mats
	r.sets++
}

// slot returns the fake material currently installed in slot i.
func (r *fakeRenderer) slot(i int) *fakeMaterial {
	m, _ := r.materials[i].(*fakeMaterial)
	return m
}

// fakeOwner is an Owner with a switchable active flag.
type fakeOwner struct {
	active    bool
	renderers []Renderer
}

func (o *fakeOwner) Active() bool          { return o.active }
func (o *fakeOwner) Renderers() []Renderer { return o.renderers }

// recorder collects emitted ratios from a Playback.
type recorder struct {
	ratios []float64
}

func (r *recorder) emit(ratio float64) { r.ratios = append(r.ratios, ratio) }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func approxColor(a, b Color) bool {
	return approx(a.R, b.R) && approx(a.G, b.G) && approx(a.B, b.B) && approx(a.A, b.A)
}

func approxVec(a, b Vec2) bool { return approx(a.X, b.X) && approx(a.Y, b.Y) }

// constColor returns a color setting whose gradient is c everywhere.
func constColor(name string, mode ColorMode, c Color) *Setting {
	s := NewColorSetting(name, []string{"Tint"}, mode, SolidGradient(c))
	s.Duration = 1
	return s
}

// constScalar returns a scalar setting whose curve is v everywhere.
func constScalar(name string, mode ScalarMode, v float64) *Setting {
	s := NewScalarSetting(name, []string{"Amount"}, mode, LinearCurve(0, v, 1, v))
	s.Duration = 1
	return s
}
