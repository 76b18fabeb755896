package wave

// MaxSources is the fixed capacity of the ripple registry.
const MaxSources = 25

// Source is a single ripple disturbance.
type Source struct {
	X, Y      float32
	CreatedAt float32
	Intensity float32
	// Strength is the decay factor in [0, 1] from the most recent Compute.
	Strength float32
}

// Registry holds up to MaxSources ripples. Once full, new ripples overwrite
// slots in insertion order through a ring cursor regardless of how much life
// the overwritten ripple had left.
type Registry struct {
	items  [MaxSources]Source
	count  int
	cursor int
}

// Add registers a ripple with full strength.
func (r *Registry) Add(x, y, time, intensity float32) {
	idx := r.count
	if r.count < MaxSources {
		r.count++
	} else {
		idx = r.cursor
		r.cursor = (r.cursor + 1) % MaxSources
	}
	r.items[idx] = Source{X: x, Y: y, CreatedAt: time, Intensity: intensity, Strength: 1}
}

// Len reports the number of active ripples.
func (r *Registry) Len() int { return r.count }

// Active exposes the live ripples. The slice aliases registry storage and is
// only valid until the next Add or Compute.
func (r *Registry) Active() []Source { return r.items[:r.count] }

// Reset drops every ripple and rewinds the ring cursor.
func (r *Registry) Reset() {
	r.count = 0
	r.cursor = 0
}

// removeAt swaps the last active ripple into slot i and shrinks the set.
func (r *Registry) removeAt(i int) {
	last := r.count - 1
	if i != last {
		r.items[i] = r.items[last]
	}
	r.count = last
}

// lifetime holds the linger parameters derived from Config.
type lifetime struct {
	invNormalizer float32
	minLinger     float32
	lingerRange   float32
}

// strength returns the eased decay factor for a ripple at time now, and false
// once the ripple has outlived its linger window.
func (l lifetime) strength(s *Source, now float32) (float32, bool) {
	ratio := s.Intensity * l.invNormalizer
	if ratio > 1 {
		ratio = 1
	}
	linger := l.minLinger + l.lingerRange*ratio
	age := now - s.CreatedAt
	if age >= linger {
		return 0, false
	}
	inv := 1 - age/linger
	return inv * inv, true
}
