package signals

import "math/rand"

// RandomProvider abstracts the random source consumed by the environmental
// sampler and the insight generator, so tests can force each branch.
type RandomProvider interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

type systemRandom struct{}

func (systemRandom) Float64() float64 { return rand.Float64() }

// SystemRandom is the production random provider.
func SystemRandom() RandomProvider { return systemRandom{} }
