package garden

import (
	"math/rand"
	"time"
)

// Source is the randomness the spawner draws from.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64 // Uniform in [0, 1)
	Intn(n int) int   // Uniform in [0, n)
}

// NewSource returns a seeded *rand.Rand. A zero seed uses the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
