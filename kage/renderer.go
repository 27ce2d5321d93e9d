package kage

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/glint"
)

// Renderer is a drawable with an ordered list of material slots. Each
// non-nil *Material slot is one shader pass, applied in slot order.
type Renderer struct {
	Name      string
	materials []glint.Material

	scratch [2]*ebiten.Image
}

// NewRenderer creates a renderer with the given material slots.
func NewRenderer(name string, materials ...*Material) *Renderer {
	r := &Renderer{Name: name, materials: make([]glint.Material, len(materials))}
	for i, m := range materials {
		if m != nil {
			r.materials[i] = m
		}
	}
	return r
}

func (r *Renderer) SharedMaterials() []glint.Material { return r.materials }

func (r *Renderer) SetSharedMaterials(materials []glint.Material) {
	r.materials = materials
}

// Material returns the *Material in slot i, or nil.
func (r *Renderer) Material(i int) *Material {
	if i < 0 || i >= len(r.materials) {
		return nil
	}
	m, _ := r.materials[i].(*Material)
	return m
}

// Draw runs src through every material pass and draws the result onto dst.
// Passes ping-pong between two scratch images sized to src.
func (r *Renderer) Draw(dst, src *ebiten.Image) error {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	current := src
	for _, gm := range r.materials {
		m, ok := gm.(*Material)
		if !ok || m == nil {
			continue
		}
		next := r.scratchFor(current, w, h)
		next.Clear()
		if err := m.Apply(current, next); err != nil {
			return err
		}
		current = next
	}

	dst.DrawImage(current, nil)
	return nil
}

// scratchFor returns a scratch image of size w x h that is not current.
func (r *Renderer) scratchFor(current *ebiten.Image, w, h int) *ebiten.Image {
	for i, img := range r.scratch {
		if img == current {
			continue
		}
		if img == nil || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			if img != nil {
				img.Deallocate()
			}
			img = ebiten.NewImage(w, h)
			r.scratch[i] = img
		}
		return img
	}
	return nil
}

// Owner groups renderers under one enable switch. It implements glint.Owner.
type Owner struct {
	Enabled  bool
	Children []*Renderer
}

// NewOwner creates an enabled owner over renderers.
func NewOwner(renderers ...*Renderer) *Owner {
	return &Owner{Enabled: true, Children: renderers}
}

func (o *Owner) Active() bool { return o.Enabled }

func (o *Owner) Renderers() []glint.Renderer {
	out := make([]glint.Renderer, 0, len(o.Children))
	for _, r := range o.Children {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
