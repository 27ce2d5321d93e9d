package glint

import "log/slog"

// rendererState is one renderer's slot in a Player's renderer arena. The
// arena index is the renderer's id in sample groups.
type rendererState struct {
	renderer Renderer
	// origin is the renderer's material list before any transition touched
	// it. Captured at most once and never mutated.
	origin []Material
	// instance holds the private clones that receive every write. nil until
	// the first sample for this renderer.
	instance []Material
}

// instanceManager owns origin capture and instance lifetime for every
// renderer configured on a Player.
type instanceManager struct {
	renderers []rendererState
}

func (m *instanceManager) reset(renderers []Renderer) {
	m.renderers = m.renderers[:0]
	for _, r := range renderers {
		if r == nil || m.index(r) >= 0 {
			continue
		}
		m.renderers = append(m.renderers, rendererState{renderer: r})
	}
}

// index returns the arena id of r, or -1. A renderer appears in the arena at
// most once so its origin is never captured from its own instance.
func (m *instanceManager) index(r Renderer) int {
	for i := range m.renderers {
		if m.renderers[i].renderer == r {
			return i
		}
	}
	return -1
}

// ensureInstance captures the renderer's origin materials if it has not been
// captured yet and installs private clones as its live materials. Later
// calls return the cached instance.
func (m *instanceManager) ensureInstance(id int) []Material {
	st := &m.renderers[id]
	if st.instance != nil {
		return st.instance
	}

	shared := st.renderer.SharedMaterials()
	if st.origin == nil {
		st.origin = append(make([]Material, 0, len(shared)), shared...)
	}

	inst := make([]Material, len(st.origin))
	for i, mat := range st.origin {
		if mat != nil {
			inst[i] = mat.Clone()
		}
	}
	st.instance = inst
	st.renderer.SetSharedMaterials(inst)

	Logger().Debug("glint: instanced renderer materials",
		slog.Int("renderer", id), slog.Int("slots", len(inst)))
	return inst
}

// resetToOrigin puts the captured origin back on the renderer and destroys
// its instance. The origin record is kept.
func (m *instanceManager) resetToOrigin(id int) {
	st := &m.renderers[id]
	if st.instance == nil {
		return
	}
	if st.origin != nil {
		st.renderer.SetSharedMaterials(st.origin)
	}
	m.destroyInstance(id)
}

// destroyAll releases every instance without touching the renderers.
func (m *instanceManager) destroyAll() {
	for id := range m.renderers {
		m.destroyInstance(id)
	}
}

func (m *instanceManager) destroyInstance(id int) {
	st := &m.renderers[id]
	if st.instance == nil {
		return
	}
	for _, mat := range st.instance {
		if mat != nil {
			mat.Destroy()
		}
	}
	st.instance = nil
	Logger().Debug("glint: destroyed renderer instance", slog.Int("renderer", id))
}

func (m *instanceManager) instanced() int {
	n := 0
	for i := range m.renderers {
		if m.renderers[i].instance != nil {
			n++
		}
	}
	return n
}

// originAt returns the origin material for a slot, or nil if the renderer has
// no origin record, the slot is out of range, or the slot was empty.
func (m *instanceManager) originAt(id, slot int) Material {
	if id < 0 || id >= len(m.renderers) {
		return nil
	}
	origin := m.renderers[id].origin
	if slot < 0 || slot >= len(origin) {
		return nil
	}
	return origin[slot]
}

// instanceAt returns the private clone for a slot, or nil if the renderer is
// not instanced or the slot was empty. Blended values are only ever written
// here, never to whatever the renderer currently holds.
func (m *instanceManager) instanceAt(id, slot int) Material {
	if id < 0 || id >= len(m.renderers) {
		return nil
	}
	inst := m.renderers[id].instance
	if slot < 0 || slot >= len(inst) {
		return nil
	}
	return inst[slot]
}
