package combat

import "math/rand"

// RNG is the single seedable randomness stream shared by one encounter.
// Every draw made during a battle goes through one RNG instance, in a fixed
// order, so two runs with the same seed replay bit for bit. Components never
// create their own stream mid-battle; the encounter passes its RNG explicitly
// into every operation that needs randomness.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns a deterministic stream for the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Bool returns true with probability p (0 <= p <= 1). Degenerate
// probabilities short-circuit without consuming a draw; callers that depend
// on draw-count stability must pass probabilities strictly inside (0, 1).
// The clamped [5,95] chance curves guarantee that for hit and crit rolls.
func (g *RNG) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

// Float64 returns a uniform value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}
