package glint

import "log/slog"

// noProperty marks a shader that was probed and exposes none of the
// candidates, as opposed to a shader that was never probed.
const noProperty = "\x00"

// PropertyResolver caches, per shader, which candidate property name is valid.
// The zero value is ready to use.
type PropertyResolver struct {
	cache map[string]string
}

// Resolve returns the first name in candidates for which has reports true.
// The result, including the absence of any match, is cached under shader;
// later calls for the same shader return it without probing.
func (r *PropertyResolver) Resolve(shader string, candidates []string, has func(name string) bool) string {
	if name, ok := r.cache[shader]; ok {
		if name == noProperty {
			return ""
		}
		return name
	}

	found := noProperty
	for _, name := range candidates {
		if has(name) {
			found = name
			break
		}
	}
	if r.cache == nil {
		r.cache = make(map[string]string)
	}
	r.cache[shader] = found

	if found == noProperty {
		Logger().Debug("glint: no candidate property on shader",
			slog.String("shader", shader), slog.Any("candidates", candidates))
		return ""
	}
	return found
}

// Cached reports the cached result for shader. probed is false if the shader
// was never resolved.
func (r *PropertyResolver) Cached(shader string) (name string, probed bool) {
	name, probed = r.cache[shader]
	if name == noProperty {
		name = ""
	}
	return name, probed
}

// Invalidate drops the cached result for shader.
func (r *PropertyResolver) Invalidate(shader string) {
	delete(r.cache, shader)
}

// InvalidateAll drops every cached result.
func (r *PropertyResolver) InvalidateAll() {
	clear(r.cache)
}
