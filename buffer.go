package glint

// groupKey identifies one property slot: a renderer from the Player's arena,
// a material slot on it, and the resolved property name.
type groupKey struct {
	renderer int
	slot     int
	property string
}

// sampleGroup collects this frame's samples for one property slot in
// submission order.
type sampleGroup struct {
	key     groupKey
	samples []Sample
}

// sampleBuffer is the per-frame pending sample table. Groups are kept in a
// slice in first-submission order so aggregation is deterministic; index
// maps a key to its position.
type sampleBuffer struct {
	index  map[groupKey]int
	groups []sampleGroup
	count  int
}

func newSampleBuffer() *sampleBuffer {
	return &sampleBuffer{index: make(map[groupKey]int)}
}

// add records ratio for setting in the group for key. A setting already
// present in the group has its ratio overwritten in place.
func (b *sampleBuffer) add(key groupKey, s *Setting, ratio float64) {
	gi, ok := b.index[key]
	if !ok {
		gi = len(b.groups)
		if gi < cap(b.groups) {
			// Reuse the sample storage left behind by the last clear.
			b.groups = b.groups[:gi+1]
			b.groups[gi].key = key
			b.groups[gi].samples = b.groups[gi].samples[:0]
		} else {
			b.groups = append(b.groups, sampleGroup{key: key})
		}
		b.index[key] = gi
	}

	g := &b.groups[gi]
	for i := range g.samples {
		if g.samples[i].Setting == s {
			g.samples[i].Ratio = ratio
			return
		}
	}
	g.samples = append(g.samples, Sample{Setting: s, Ratio: ratio})
	b.count++
}

func (b *sampleBuffer) len() int { return len(b.groups) }

// clear empties the buffer, keeping allocated storage for the next frame.
func (b *sampleBuffer) clear() {
	for i := range b.groups {
		samples := b.groups[i].samples
		for j := range samples {
			samples[j].Setting = nil
		}
	}
	b.groups = b.groups[:0]
	b.count = 0
	clear(b.index)
}
