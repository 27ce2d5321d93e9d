package glint

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownBlendMode is returned for a blend name that does not match the
	// setting's kind.
	ErrUnknownBlendMode = errors.New("glint: unknown blend mode")
	// ErrUnknownEase is returned for a curve key naming an unknown easing.
	ErrUnknownEase = errors.New("glint: unknown ease")
	// ErrInvalidColor is returned for a color that is neither hex, a known
	// color name, nor a list of 3 or 4 numbers.
	ErrInvalidColor = errors.New("glint: invalid color")
	// ErrNoProperties is returned for a setting without property candidates.
	ErrNoProperties = errors.New("glint: setting has no properties")
)

var colorModeNames = map[string]ColorMode{
	"color_alpha_set": ColorAlphaSet,
	"color_set":       ColorSet,
	"color_additive":  ColorAdditive,
	"color_multiply":  ColorMultiply,
}

var scalarModeNames = map[string]ScalarMode{
	"int_set":        IntSet,
	"int_additive":   IntAdditive,
	"int_multiply":   IntMultiply,
	"float_set":      FloatSet,
	"float_additive": FloatAdditive,
	"float_multiply": FloatMultiply,
}

var textureModeNames = map[string]TextureMode{
	"offset_set":      OffsetSet,
	"offset_additive": OffsetAdditive,
	"offset_multiply": OffsetMultiply,
	"scale_set":       ScaleSet,
	"scale_additive":  ScaleAdditive,
	"scale_multiply":  ScaleMultiply,
}

var easeNames = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_quart":       ease.InQuart,
	"out_quart":      ease.OutQuart,
	"in_out_quart":   ease.InOutQuart,
	"in_quint":       ease.InQuint,
	"out_quint":      ease.OutQuint,
	"in_out_quint":   ease.InOutQuint,
	"in_sine":        ease.InSine,
	"out_sine":       ease.OutSine,
	"in_out_sine":    ease.InOutSine,
	"in_expo":        ease.InExpo,
	"out_expo":       ease.OutExpo,
	"in_out_expo":    ease.InOutExpo,
	"in_circ":        ease.InCirc,
	"out_circ":       ease.OutCirc,
	"in_out_circ":    ease.InOutCirc,
	"in_elastic":     ease.InElastic,
	"out_elastic":    ease.OutElastic,
	"in_out_elastic": ease.InOutElastic,
	"in_back":        ease.InBack,
	"out_back":       ease.OutBack,
	"in_out_back":    ease.InOutBack,
	"in_bounce":      ease.InBounce,
	"out_bounce":     ease.OutBounce,
	"in_out_bounce":  ease.InOutBounce,
}

// SettingSet is a named collection of authored settings, grouped by kind.
type SettingSet struct {
	Colors     []*Setting
	Parameters []*Setting
	Textures   []*Setting

	byName map[string]*Setting
}

// Get returns the setting called name, or nil.
func (s *SettingSet) Get(name string) *Setting {
	return s.byName[name]
}

// All returns every setting: colors, then parameters, then textures.
func (s *SettingSet) All() []*Setting {
	all := make([]*Setting, 0, len(s.Colors)+len(s.Parameters)+len(s.Textures))
	all = append(all, s.Colors...)
	all = append(all, s.Parameters...)
	return append(all, s.Textures...)
}

// InvalidateProperties clears the property cache of every setting.
func (s *SettingSet) InvalidateProperties() {
	for _, st := range s.All() {
		st.InvalidateProperties()
	}
}

// Merge updates s from other. Settings with a name already in s are
// updated in place so running playbacks and tokens keep referring to them;
// their property caches are cleared. New names are added. Settings absent
// from other are kept.
func (s *SettingSet) Merge(other *SettingSet) {
	if s.byName == nil {
		s.byName = make(map[string]*Setting)
	}
	for _, src := range other.All() {
		dst, ok := s.byName[src.Name]
		if !ok {
			s.add(src)
			continue
		}
		oldKind := dst.Blend.Kind()
		dst.Properties = src.Properties
		dst.Delay = src.Delay
		dst.Duration = src.Duration
		dst.Blend = src.Blend
		dst.InvalidateProperties()
		if oldKind != dst.Blend.Kind() {
			s.remove(dst, oldKind)
			s.add(dst)
		}
	}
}

func (s *SettingSet) add(st *Setting) {
	switch st.Blend.Kind() {
	case KindColor:
		s.Colors = append(s.Colors, st)
	case KindScalar:
		s.Parameters = append(s.Parameters, st)
	case KindTexture:
		s.Textures = append(s.Textures, st)
	}
	s.byName[st.Name] = st
}

func (s *SettingSet) remove(st *Setting, kind Kind) {
	list := &s.Colors
	switch kind {
	case KindScalar:
		list = &s.Parameters
	case KindTexture:
		list = &s.Textures
	}
	for i, v := range *list {
		if v == st {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

// LoadSettingsFile reads and parses a YAML settings file.
func LoadSettingsFile(path string) (*SettingSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glint: load %s: %w", path, err)
	}
	set, err := LoadSettings(data)
	if err != nil {
		return nil, fmt.Errorf("glint: load %s: %w", path, err)
	}
	return set, nil
}

// LoadSettings parses YAML settings:
//
//	colors:
//	  - name: hit_flash
//	    properties: [Tint, BaseColor]
//	    duration: 0.2
//	    blend: color_multiply
//	    gradient:
//	      mode: blend
//	      colors: [{time: 0, color: "#ff4040"}, {time: 1, color: white}]
//	      alphas: [{time: 0, alpha: 1}]
//	parameters:
//	  - name: dissolve
//	    properties: [Dissolve]
//	    delay: 0.5
//	    duration: 1
//	    blend: float_set
//	    curve: [{time: 0, value: 0, ease: out_cubic}, {time: 1, value: 1}]
//	textures:
//	  - name: scroll
//	    properties: [Main]
//	    blend: offset_additive
//	    start: [0, 0]
//	    end: [1, 0]
//
// Omitted blend modes default to color_multiply, float_multiply and
// offset_additive. Omitted gradients, curves and start/end pairs take the
// defaults of DefaultGradient, DefaultCurve and (0,0)-(1,1). Negative delays and
// durations are clamped to zero.
func LoadSettings(data []byte) (*SettingSet, error) {
	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("glint: unmarshal settings: %w", err)
	}

	set := &SettingSet{byName: make(map[string]*Setting)}
	for i, entry := range file.Colors {
		st, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("glint: colors[%d]: %w", i, err)
		}
		set.add(named(st, "colors", i))
	}
	for i, entry := range file.Parameters {
		st, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("glint: parameters[%d]: %w", i, err)
		}
		set.add(named(st, "parameters", i))
	}
	for i, entry := range file.Textures {
		st, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("glint: textures[%d]: %w", i, err)
		}
		set.add(named(st, "textures", i))
	}
	return set, nil
}

func named(st *Setting, list string, i int) *Setting {
	if st.Name == "" {
		st.Name = list + "[" + strconv.Itoa(i) + "]"
	}
	return st
}

type settingsFile struct {
	Colors     []colorEntry     `yaml:"colors"`
	Parameters []parameterEntry `yaml:"parameters"`
	Textures   []textureEntry   `yaml:"textures"`
}

type commonEntry struct {
	Name       string   `yaml:"name"`
	Properties []string `yaml:"properties"`
	Delay      float64  `yaml:"delay"`
	Duration   float64  `yaml:"duration"`
	Blend      string   `yaml:"blend"`
}

func (c commonEntry) setting(b Blend) (*Setting, error) {
	if len(c.Properties) == 0 {
		return nil, ErrNoProperties
	}
	return &Setting{
		Name:       c.Name,
		Properties: c.Properties,
		Delay:      max(c.Delay, 0),
		Duration:   max(c.Duration, 0),
		Blend:      b,
	}, nil
}

type colorEntry struct {
	commonEntry `yaml:",inline"`
	Gradient    *gradientEntry `yaml:"gradient"`
}

func (c colorEntry) build() (*Setting, error) {
	mode := ColorMultiply
	if c.Blend != "" {
		m, ok := colorModeNames[c.Blend]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBlendMode, c.Blend)
		}
		mode = m
	}
	g := DefaultGradient()
	if c.Gradient != nil {
		var err error
		if g, err = c.Gradient.build(); err != nil {
			return nil, err
		}
	}
	return c.setting(ColorBlend{Mode: mode, Gradient: g})
}

type gradientEntry struct {
	Mode   string `yaml:"mode"`
	Colors []struct {
		Time  float64   `yaml:"time"`
		Color yamlColor `yaml:"color"`
	} `yaml:"colors"`
	Alphas []struct {
		Time  float64 `yaml:"time"`
		Alpha float64 `yaml:"alpha"`
	} `yaml:"alphas"`
}

func (g gradientEntry) build() (Gradient, error) {
	colors := make([]ColorKey, len(g.Colors))
	for i, k := range g.Colors {
		colors[i] = ColorKey{Time: k.Time, Color: k.Color.Color}
	}
	alphas := make([]AlphaKey, len(g.Alphas))
	for i, k := range g.Alphas {
		alphas[i] = AlphaKey{Time: k.Time, Alpha: k.Alpha}
	}
	out := NewGradient(colors, alphas)
	switch g.Mode {
	case "", "blend":
		out.Mode = GradientBlend
	case "fixed":
		out.Mode = GradientFixed
	default:
		return Gradient{}, fmt.Errorf("glint: unknown gradient mode %q", g.Mode)
	}
	return out, nil
}

type parameterEntry struct {
	commonEntry `yaml:",inline"`
	Curve       []struct {
		Time  float64 `yaml:"time"`
		Value float64 `yaml:"value"`
		Ease  string  `yaml:"ease"`
	} `yaml:"curve"`
}

func (p parameterEntry) build() (*Setting, error) {
	mode := FloatMultiply
	if p.Blend != "" {
		m, ok := scalarModeNames[p.Blend]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBlendMode, p.Blend)
		}
		mode = m
	}
	c := DefaultCurve()
	if len(p.Curve) > 0 {
		keys := make([]Keyframe, len(p.Curve))
		for i, k := range p.Curve {
			keys[i] = Keyframe{Time: k.Time, Value: k.Value}
			if k.Ease != "" {
				fn, ok := easeNames[k.Ease]
				if !ok {
					return nil, fmt.Errorf("%w %q", ErrUnknownEase, k.Ease)
				}
				keys[i].Ease = fn
			}
		}
		c = NewCurve(keys...)
	}
	return p.setting(ScalarBlend{Mode: mode, Curve: c})
}

type textureEntry struct {
	commonEntry `yaml:",inline"`
	Start       *[2]float64 `yaml:"start"`
	End         *[2]float64 `yaml:"end"`
}

func (t textureEntry) build() (*Setting, error) {
	mode := OffsetAdditive
	if t.Blend != "" {
		m, ok := textureModeNames[t.Blend]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBlendMode, t.Blend)
		}
		mode = m
	}
	start, end := Vec2Zero, Vec2One
	if t.Start != nil {
		start = Vec2{t.Start[0], t.Start[1]}
	}
	if t.End != nil {
		end = Vec2{t.End[0], t.End[1]}
	}
	return t.setting(TextureBlend{Mode: mode, Start: start, End: end})
}

// yamlColor accepts "#rrggbb", "#rrggbbaa", a CSS color name, or a list of
// 3 or 4 numbers for HDR colors.
type yamlColor struct {
	Color
}

func (c *yamlColor) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var v []float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		if len(v) != 3 && len(v) != 4 {
			return fmt.Errorf("%w: want 3 or 4 components, got %d", ErrInvalidColor, len(v))
		}
		c.Color = Color{R: v[0], G: v[1], B: v[2], A: 1}
		if len(v) == 4 {
			c.Color.A = v[3]
		}
		return nil
	case yaml.ScalarNode:
	default:
		return fmt.Errorf("%w: must be a string or a list", ErrInvalidColor)
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = fromRGBA(named)
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("%w: %q", ErrInvalidColor, value.Value)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, value.Value)
	}
	c.Color = fromRGBA(color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)})
	return nil
}

func fromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
