package glint

// PlaybackState is the lifecycle stage of a Playback.
type PlaybackState uint8

const (
	StateIdle      PlaybackState = iota // created, not started
	StateDelaying                       // counting down Setting.Delay
	StatePlaying                        // emitting samples
	StateCompleted                      // finished normally; terminal
	StateAbandoned                      // superseded or reset; terminal
)

func (s PlaybackState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDelaying:
		return "delaying"
	case StatePlaying:
		return "playing"
	case StateCompleted:
		return "completed"
	case StateAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Step is the outcome of starting or advancing a Playback.
type Step uint8

const (
	StepContinue  Step = iota // still delaying or playing
	StepCompleted             // reached the end this step; the final sample was emitted
	StepAbandoned             // the playback's token is no longer current; nothing was emitted
)

// Token identifies one play request. At most one token is current per setting.
type Token uint64

// Playback drives one run of a Setting. It holds no reference to renderers;
// samples are handed to the emit callback passed to Start and Advance.
type Playback struct {
	Setting *Setting
	Token   Token

	state   PlaybackState
	elapsed float64
	done    func()
}

// NewPlayback creates an idle playback for s under token.
func NewPlayback(s *Setting, token Token) *Playback {
	return &Playback{Setting: s, Token: token}
}

// State returns the playback's current lifecycle stage.
func (p *Playback) State() PlaybackState { return p.state }

// Elapsed returns the time spent in the current stage.
func (p *Playback) Elapsed() float64 { return p.elapsed }

// Start leaves the idle state. Without a delay the playback begins playing
// immediately and emits its first sample.
func (p *Playback) Start(emit func(ratio float64)) Step {
	if p.state != StateIdle {
		return p.terminalStep()
	}
	p.elapsed = 0
	if p.Setting.Delay > 0 {
		p.state = StateDelaying
		return StepContinue
	}
	return p.begin(emit)
}

// Advance moves the playback forward by dt seconds. live reports whether the
// playback's token is still current; a stale playback is abandoned without
// emitting. A dt of zero re-emits the current ratio while playing, which is
// how paused playbacks keep their contribution alive.
func (p *Playback) Advance(dt float64, live bool, emit func(ratio float64)) Step {
	switch p.state {
	case StateDelaying, StatePlaying:
	default:
		return p.terminalStep()
	}
	if !live {
		p.state = StateAbandoned
		return StepAbandoned
	}

	p.elapsed += dt
	if p.state == StateDelaying {
		if p.elapsed < p.Setting.Delay {
			return StepContinue
		}
		p.elapsed = 0
		return p.begin(emit)
	}

	if p.elapsed <= p.Setting.Duration {
		emit(p.elapsed / p.Setting.Duration)
		return StepContinue
	}
	emit(1)
	p.state = StateCompleted
	return StepCompleted
}

func (p *Playback) begin(emit func(ratio float64)) Step {
	if p.Setting.Duration <= 0 {
		emit(1)
		p.state = StateCompleted
		return StepCompleted
	}
	p.state = StatePlaying
	emit(0)
	return StepContinue
}

func (p *Playback) terminalStep() Step {
	switch p.state {
	case StateAbandoned:
		return StepAbandoned
	case StateCompleted:
		return StepCompleted
	default:
		return StepContinue
	}
}
