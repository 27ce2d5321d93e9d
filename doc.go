// Package glint drives time-based transitions of shader material properties
// (colors, scalar parameters, texture offsets and scales) on renderers.
//
// Any number of transitions may play at once against the same property.
// Every frame their samples are merged into one value per
// (renderer, slot, property) and written into a private instance of the
// renderer's materials, leaving the shared originals untouched until
// [Player.ResetToOrigin] puts them back.
//
// # Quick start
//
//	player := glint.NewPlayer(owner)
//	player.SetRenderers(nil) // owner's default renderers
//
//	flash := glint.NewColorSetting("hit", []string{"Tint", "BaseColor"},
//		glint.ColorMultiply, glint.NewGradient(...))
//	flash.Duration = 0.2
//	player.Play(flash, func() { log.Println("done") })
//
//	// once per frame, after game logic:
//	player.Update(dt)
//
// [Player.Update] is [Player.Tick] (advance every playback and collect
// samples) followed by [Player.Apply] (blend and write). Hosts that need
// to run other systems between the two phases can call them separately.
//
// # Blending
//
// Samples targeting one property are folded by blend mode. Additive modes
// sum, multiply modes multiply, set modes replace the origin value. The final
// value is ((set or origin) + additive) * multiply, and for colors the result
// is additionally scaled by the product of every [ColorAlphaSet] alpha.
// The first sample of a group decides which kind of value is written; samples
// of another kind on the same property are ignored.
//
// # Host integration
//
// The host rendering system is reached only through [Material], [Renderer]
// and [Owner]. Package glint/kage implements them on top of Ebitengine Kage
// shaders and package glint/ecs plugs players into a Donburi world.
//
// Authored settings can be loaded from YAML with [LoadSettings] and reloaded
// from disk with [WatchSettings].
package glint
