package kage

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/glint"
)

// Texture properties map onto a pair of vec2 uniforms with these suffixes.
const (
	offsetSuffix = "Offset"
	scaleSuffix  = "Scale"
)

// Material is a Kage shader plus its uniform values. It implements
// glint.Material and can be drawn as one shader pass.
type Material struct {
	shader   *Shader
	uniforms map[string]any
	// Images[1] and Images[2] are extra textures for the shader. Images[0] is
	// filled with the pass source on every draw.
	Images [3]*ebiten.Image

	destroyed bool
	shaderOp  ebiten.DrawRectShaderOptions
}

// NewMaterial creates a material for shader with no uniforms set.
func NewMaterial(shader *Shader) *Material {
	return &Material{shader: shader, uniforms: make(map[string]any)}
}

// Shader returns the material's shader.
func (m *Material) Shader() *Shader { return m.shader }

// Uniforms returns the uniform map passed to Ebitengine. It MUST NOT be mutated.
func (m *Material) Uniforms() map[string]any { return m.uniforms }

// Destroyed reports whether Destroy has been called.
func (m *Material) Destroyed() bool { return m.destroyed }

func (m *Material) ShaderName() string { return m.shader.name }

// HasProperty reports whether the shader declares a uniform called name, or a
// pair of vec2 uniforms name+"Offset" and name+"Scale".
func (m *Material) HasProperty(name string) bool {
	if _, ok := m.shader.uniforms[name]; ok {
		return true
	}
	off, okOff := m.shader.uniforms[name+offsetSuffix]
	sc, okSc := m.shader.uniforms[name+scaleSuffix]
	return okOff && okSc && off == UniformVec2 && sc == UniformVec2
}

func (m *Material) Color(name string) glint.Color {
	v, ok := m.uniforms[name].([]float32)
	if !ok || len(v) < 4 {
		return glint.Color{}
	}
	return glint.Color{R: float64(v[0]), G: float64(v[1]), B: float64(v[2]), A: float64(v[3])}
}

func (m *Material) SetColor(name string, c glint.Color) {
	m.setFloats(name, 4, c.R, c.G, c.B, c.A)
}

func (m *Material) Float(name string) float64 {
	switch v := m.uniforms[name].(type) {
	case float32:
		return float64(v)
	case int32:
		return float64(v)
	}
	return 0
}

func (m *Material) SetFloat(name string, v float64) {
	if m.destroyed {
		return
	}
	m.uniforms[name] = float32(v)
}

func (m *Material) Int(name string) int {
	switch v := m.uniforms[name].(type) {
	case int32:
		return int(v)
	case float32:
		return int(v)
	}
	return 0
}

func (m *Material) SetInt(name string, v int) {
	if m.destroyed {
		return
	}
	m.uniforms[name] = int32(v)
}

func (m *Material) TextureOffset(name string) glint.Vec2 {
	return m.vec2(name+offsetSuffix, glint.Vec2Zero)
}

func (m *Material) SetTextureOffset(name string, v glint.Vec2) {
	m.setFloats(name+offsetSuffix, 2, v.X, v.Y)
}

// TextureScale returns the scale uniform, or (1, 1) if it was never set.
func (m *Material) TextureScale(name string) glint.Vec2 {
	return m.vec2(name+scaleSuffix, glint.Vec2One)
}

func (m *Material) SetTextureScale(name string, v glint.Vec2) {
	m.setFloats(name+scaleSuffix, 2, v.X, v.Y)
}

// Clone returns a material on the same shader with a deep copy of the
// uniforms and the same extra images.
func (m *Material) Clone() glint.Material {
	c := &Material{
		shader:   m.shader,
		uniforms: make(map[string]any, len(m.uniforms)),
		Images:   m.Images,
	}
	for k, v := range m.uniforms {
		if s, ok := v.([]float32); ok {
			v = append([]float32(nil), s...)
		}
		c.uniforms[k] = v
	}
	return c
}

// Destroy drops the uniforms. Later writes are ignored. The shader is shared
// and stays alive.
func (m *Material) Destroy() {
	m.destroyed = true
	m.uniforms = map[string]any{}
	m.Images = [3]*ebiten.Image{}
}

// Apply draws src into dst through the material's shader.
func (m *Material) Apply(src, dst *ebiten.Image) error {
	shader, err := m.shader.Compile()
	if err != nil {
		return err
	}
	bounds := src.Bounds()
	m.shaderOp.Images[0] = src
	m.shaderOp.Images[1] = m.Images[1]
	m.shaderOp.Images[2] = m.Images[2]
	m.shaderOp.Uniforms = m.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &m.shaderOp)
	return nil
}

func (m *Material) vec2(name string, def glint.Vec2) glint.Vec2 {
	v, ok := m.uniforms[name].([]float32)
	if !ok || len(v) < 2 {
		return def
	}
	return glint.Vec2{X: float64(v[0]), Y: float64(v[1])}
}

// setFloats writes a float vector uniform, reusing the existing slice so the
// per-frame write path does not allocate.
func (m *Material) setFloats(name string, n int, vals ...float64) {
	if m.destroyed {
		return
	}
	v, ok := m.uniforms[name].([]float32)
	if !ok || len(v) != n {
		v = make([]float32, n)
		m.uniforms[name] = v
	}
	for i := range v {
		v[i] = float32(vals[i])
	}
}
