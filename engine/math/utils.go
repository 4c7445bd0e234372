package math

import (
	"sync"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
// If low > high the result is unspecified.
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

var (
	randMu  sync.Mutex
	randSrc *rand.Rand
)

// SeedRandom resets the package random source, making RandomInRange reproducible.
func SeedRandom(seed uint64) {
	randMu.Lock()
	defer randMu.Unlock()
	randSrc = rand.New(rand.NewSource(seed))
}

// RandomInRange returns a uniformly distributed float in [min, max).
func RandomInRange(min, max float32) float32 {
	randMu.Lock()
	defer randMu.Unlock()
	if randSrc == nil {
		randSrc = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return min + randSrc.Float32()*(max-min)
}
