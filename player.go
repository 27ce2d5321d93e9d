package glint

import "log/slog"

// Player plays transitions on a set of renderers and writes the blended
// result into per-renderer material instances.
//
// A Player is single-threaded: every method must be called from the frame
// loop. Call [Player.Update] once per frame after game logic.
type Player struct {
	owner      Owner
	configured []Renderer
	mats       instanceManager

	playbacks []activePlayback
	finished  []*Playback
	tokens    map[*Setting]Token
	nextToken Token
	pending   *sampleBuffer

	paused bool
	speed  float64

	debug bool
	stats FrameStats
}

// activePlayback pairs a playback with its sample sink so ticking allocates
// nothing.
type activePlayback struct {
	pb   *Playback
	emit func(ratio float64)
}

// NewPlayer creates a player for owner. owner may be nil.
func NewPlayer(owner Owner) *Player {
	return &Player{
		owner:   owner,
		tokens:  make(map[*Setting]Token),
		pending: newSampleBuffer(),
		speed:   1,
	}
}

// SetRenderers configures the renderers transitions apply to. A nil list
// keeps the current configuration, or uses the owner's default renderers if
// none is configured yet. If any renderer has been instanced, in-flight
// playback is reset and the original materials are restored first. Origin
// and instance records are cleared.
func (p *Player) SetRenderers(renderers []Renderer) {
	if p.mats.instanced() > 0 {
		p.ResetPlay()
		p.ResetToOrigin()
	}
	if renderers == nil {
		if len(p.configured) == 0 && p.owner != nil {
			p.configured = append(p.configured, p.owner.Renderers()...)
		}
	} else {
		p.configured = append(p.configured[:0], renderers...)
	}
	p.mats.reset(p.configured)
}

// Renderers returns the configured renderers. The returned slice MUST NOT be mutated.
func (p *Player) Renderers() []Renderer {
	return p.configured
}

// Play starts s, superseding any earlier run of the same setting. done, if
// non-nil, is called once when this run completes. It is never called if the
// run is superseded or reset. Requests for a nil setting or while the owner
// is inactive are dropped.
func (p *Player) Play(s *Setting, done func()) {
	if s == nil {
		return
	}
	if p.owner != nil && !p.owner.Active() {
		Logger().Debug("glint: play dropped, owner inactive", slog.String("setting", s.Name))
		return
	}

	p.nextToken++
	tok := p.nextToken
	if _, ok := p.tokens[s]; ok {
		Logger().Debug("glint: superseding playback", slog.String("setting", s.Name))
	}
	p.tokens[s] = tok

	pb := NewPlayback(s, tok)
	pb.done = done
	emit := func(ratio float64) { p.SetMaterial(s, ratio) }

	Logger().Debug("glint: play",
		slog.String("setting", s.Name),
		slog.Float64("delay", s.Delay),
		slog.Float64("duration", s.Duration))

	if pb.Start(emit) == StepCompleted {
		p.complete(pb)
		return
	}
	p.playbacks = append(p.playbacks, activePlayback{pb: pb, emit: emit})
}

// PlayAll plays every setting independently. done, if non-nil, is called once
// after every non-nil setting in the list has completed. If any of them is
// superseded, reset or dropped, done never fires; an empty list never fires.
func (p *Player) PlayAll(settings []*Setting, done func()) {
	if done == nil {
		for _, s := range settings {
			p.Play(s, nil)
		}
		return
	}

	remaining := 0
	for _, s := range settings {
		if s != nil {
			remaining++
		}
	}
	if remaining == 0 {
		return
	}
	part := func() {
		remaining--
		if remaining == 0 {
			done()
		}
	}
	for _, s := range settings {
		if s != nil {
			p.Play(s, part)
		}
	}
}

// Start plays every color and parameter setting in set on the owner's
// default renderers. Texture settings are left for explicit Play calls.
func (p *Player) Start(set *SettingSet) {
	p.SetRenderers(nil)
	if set == nil {
		return
	}
	for _, s := range set.Colors {
		p.Play(s, nil)
	}
	for _, s := range set.Parameters {
		p.Play(s, nil)
	}
}

// SetSpeed sets the multiplier applied to dt for every playback.
func (p *Player) SetSpeed(speed float64) { p.speed = speed }

// Speed returns the playback speed multiplier.
func (p *Player) Speed() float64 { return p.speed }

// Pause freezes or resumes every playback. Paused playbacks keep
// contributing their current value and still notice being superseded.
func (p *Player) Pause(pause bool) { p.paused = pause }

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.paused }

// Active returns the number of playbacks still delaying or playing, including
// superseded ones that have not ticked since.
func (p *Player) Active() int { return len(p.playbacks) }

// IsCurrent reports whether tok is the current token for s.
func (p *Player) IsCurrent(s *Setting, tok Token) bool {
	cur, ok := p.tokens[s]
	return ok && cur == tok
}

// ResetPlay abandons every in-flight playback and drops this frame's pending
// samples. Playbacks stop on their next tick; instance materials keep their
// last written values until ResetToOrigin.
func (p *Player) ResetPlay() {
	clear(p.tokens)
	p.pending.clear()
}

// ResetToOrigin restores every instanced renderer's original materials and
// destroys the instances.
func (p *Player) ResetToOrigin() {
	for id := range p.mats.renderers {
		p.mats.resetToOrigin(id)
	}
}

// Destroy releases every instance material and abandons all playback. The
// renderers are not restored; call ResetToOrigin first for that. Safe to call
// more than once.
func (p *Player) Destroy() {
	p.ResetPlay()
	p.mats.destroyAll()
	clear(p.playbacks)
	p.playbacks = p.playbacks[:0]
}

// SetMaterial submits a sample of s at ratio for every configured renderer
// slot whose shader exposes one of s's properties. The renderer is instanced
// on its first sample. Samples are written on the next Apply.
func (p *Player) SetMaterial(s *Setting, ratio float64) {
	if s == nil {
		return
	}
	for id := range p.mats.renderers {
		mats := p.mats.renderers[id].renderer.SharedMaterials()
		for slot, m := range mats {
			if m == nil {
				continue
			}
			prop := s.ResolveProperty(m)
			if prop == "" {
				continue
			}
			p.mats.ensureInstance(id)
			p.pending.add(groupKey{renderer: id, slot: slot, property: prop}, s, ratio)
		}
	}
}

// Update runs Tick followed by Apply.
func (p *Player) Update(dt float64) {
	p.Tick(dt)
	p.Apply()
}

// Tick advances every playback by dt (scaled by speed, or zero while paused)
// and collects their samples. Completion callbacks run after all playbacks
// have advanced.
func (p *Player) Tick(dt float64) {
	step := dt * p.speed
	if p.paused {
		step = 0
	}

	n := 0
	for _, a := range p.playbacks {
		live := p.IsCurrent(a.pb.Setting, a.pb.Token)
		switch a.pb.Advance(step, live, a.emit) {
		case StepContinue:
			p.playbacks[n] = a
			n++
		case StepCompleted:
			p.finished = append(p.finished, a.pb)
		case StepAbandoned:
			Logger().Debug("glint: playback abandoned", slog.String("setting", a.pb.Setting.Name))
		}
	}
	clear(p.playbacks[n:])
	p.playbacks = p.playbacks[:n]

	p.stats.Playbacks = n

	for i, pb := range p.finished {
		p.finished[i] = nil
		p.complete(pb)
	}
	p.finished = p.finished[:0]
}

func (p *Player) complete(pb *Playback) {
	Logger().Debug("glint: playback completed", slog.String("setting", pb.Setting.Name))
	if pb.done != nil {
		pb.done()
	}
}

// Apply blends every pending group once and writes the result into the
// renderer's live instance material, then clears the pending samples. Groups
// without a usable origin material are skipped.
func (p *Player) Apply() {
	p.stats.Samples = p.pending.count
	p.stats.Groups = 0
	p.stats.Skipped = 0

	for i := range p.pending.groups {
		g := &p.pending.groups[i]
		if p.applyGroup(g) {
			p.stats.Groups++
		} else {
			p.stats.Skipped++
		}
	}
	p.pending.clear()

	if p.debug {
		p.debugLog()
	}
}

func (p *Player) applyGroup(g *sampleGroup) bool {
	if len(g.samples) == 0 {
		return false
	}
	origin := p.mats.originAt(g.key.renderer, g.key.slot)
	target := p.mats.instanceAt(g.key.renderer, g.key.slot)
	if origin == nil || target == nil {
		Logger().Debug("glint: skipping slot without origin or instance",
			slog.Int("renderer", g.key.renderer),
			slog.Int("slot", g.key.slot),
			slog.String("property", g.key.property))
		return false
	}

	prop := g.key.property
	switch g.samples[0].Setting.Blend.(type) {
	case ColorBlend:
		target.SetColor(prop, BlendColor(origin.Color(prop), g.samples))
	case ScalarBlend:
		v, asInt := BlendScalar(origin.Float(prop), g.samples)
		if asInt {
			target.SetInt(prop, int(v))
		} else {
			target.SetFloat(prop, v)
		}
	case TextureBlend:
		offset, scale := BlendTexture(origin.TextureOffset(prop), origin.TextureScale(prop), g.samples)
		target.SetTextureOffset(prop, offset)
		target.SetTextureScale(prop, scale)
	default:
		return false
	}
	return true
}

// pendingGroups returns the number of groups waiting for Apply.
func (p *Player) pendingGroups() int {
	return p.pending.len()
}
