package responses

import (
	"math/rand"
	"sync"
	"time"
)

// Picker draws uniformly random entries from a bank. The randomness
// source is injected via the seed so tests can pin bank selection.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker builds a picker from the given seed; a zero seed picks a
// time-based one.
func NewPicker(seed int64) *Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns one uniformly random entry. Empty banks yield "".
func (p *Picker) Pick(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return entries[p.rng.Intn(len(entries))]
}

// Intn exposes the locked source for callers that need an index draw.
func (p *Picker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}
