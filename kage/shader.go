package kage

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/glint"
)

// UniformType is the declared type of a Kage uniform.
type UniformType uint8

const (
	UniformOther UniformType = iota // arrays, matrices and anything else
	UniformFloat
	UniformInt
	UniformVec2
	UniformVec4
)

// Shader is Kage source together with the uniforms it declares. The source
// is compiled on first draw.
type Shader struct {
	name     string
	src      []byte
	uniforms map[string]UniformType

	compiled *ebiten.Shader
	err      error
}

// NewShader parses src and records its uniform declarations. name identifies
// the shader for property resolution caching; materials on shaders with the
// same name are assumed to expose the same properties.
func NewShader(name string, src []byte) (*Shader, error) {
	uniforms, err := parseUniforms(name, src)
	if err != nil {
		return nil, err
	}
	return &Shader{name: name, src: src, uniforms: uniforms}, nil
}

// Name returns the shader's name.
func (s *Shader) Name() string { return s.name }

// Uniform returns the declared type of a uniform.
func (s *Shader) Uniform(name string) (UniformType, bool) {
	t, ok := s.uniforms[name]
	return t, ok
}

// Uniforms returns the declared uniform names in sorted order.
func (s *Shader) Uniforms() []string {
	names := make([]string, 0, len(s.uniforms))
	for name := range s.uniforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile returns the compiled Ebitengine shader, compiling it on first use.
// A compile failure is remembered and returned on every later call.
func (s *Shader) Compile() (*ebiten.Shader, error) {
	if s.compiled == nil && s.err == nil {
		s.compiled, s.err = ebiten.NewShader(s.src)
		if s.err != nil {
			s.err = fmt.Errorf("kage: compile %s: %w", s.name, s.err)
			glint.Logger().Warn("kage: shader compile failed", slog.String("shader", s.name), slog.Any("err", s.err))
		}
	}
	return s.compiled, s.err
}

// parseUniforms collects the package-level var declarations of a Kage
// program. Kage shares Go's syntax, so the Go parser reads it as is.
func parseUniforms(name string, src []byte) (map[string]UniformType, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name+".kage", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("kage: parse %s: %w", name, err)
	}

	uniforms := make(map[string]UniformType)
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			t := uniformType(vs.Type)
			for _, id := range vs.Names {
				// Kage only binds exported package variables as uniforms.
				if id.IsExported() {
					uniforms[id.Name] = t
				}
			}
		}
	}
	return uniforms, nil
}

func uniformType(expr ast.Expr) UniformType {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return UniformOther
	}
	switch id.Name {
	case "float":
		return UniformFloat
	case "int":
		return UniformInt
	case "vec2":
		return UniformVec2
	case "vec4":
		return UniformVec4
	default:
		return UniformOther
	}
}
