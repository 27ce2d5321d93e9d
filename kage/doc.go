// Package kage implements glint's host interfaces on Ebitengine Kage shaders.
//
// A [Shader] wraps Kage source and the table of uniforms declared in it. A
// [Material] is a shader plus a uniform map and can be drawn as a single
// shader pass. A [Renderer] owns an ordered list of material slots and draws
// them as a chain of passes.
//
// Property kinds map onto uniforms as follows:
//
//	color            vec4 uniform with the property name
//	float, int       float or int uniform with the property name
//	texture offset   vec2 uniform named <property>Offset
//	texture scale    vec2 uniform named <property>Scale
package kage
