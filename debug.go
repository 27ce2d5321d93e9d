package glint

import "log/slog"

// FrameStats holds the counters of the most recent frame.
type FrameStats struct {
	Playbacks int // playbacks still delaying or playing after Tick
	Samples   int // distinct (setting, property slot) samples submitted
	Groups    int // property slots written by Apply
	Skipped   int // property slots skipped for lack of an origin or instance material
}

// Stats returns the counters recorded by the most recent Tick and Apply.
func (p *Player) Stats() FrameStats {
	return p.stats
}

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (p *Player) SetDebugMode(enabled bool) {
	p.debug = enabled
}

func (p *Player) debugLog() {
	Logger().Debug("glint: frame",
		slog.Int("playbacks", p.stats.Playbacks),
		slog.Int("samples", p.stats.Samples),
		slog.Int("groups", p.stats.Groups),
		slog.Int("skipped", p.stats.Skipped),
		slog.Int("instanced", p.mats.instanced()))
}
