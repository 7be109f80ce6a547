package game

import (
	"math/rand"
	"time"
)

// Config holds game configuration options.
type Config struct {
	// Seed for food placement. Every new round derives its generator from it,
	// so a fixed seed replays the same food sequence.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// rngSource returns a constructor handing out a fresh generator per call.
func (c Config) rngSource() func() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var n int64
	return func() *rand.Rand {
		r := rand.New(rand.NewSource(seed + n))
		n++
		return r
	}
}
