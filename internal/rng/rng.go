// Package rng implements ports.RNGPort with a deterministic,
// hash-composed seed derivation so concurrent calibration samples
// never share or race over a single rand.Source.
package rng

import (
	"math/rand"

	"guildscore/domain/plant"
)

// Adapter is the default RNGPort implementation.
type Adapter struct{}

// New returns a ready-to-use Adapter.
func New() *Adapter { return &Adapter{} }

// Stream derives an independent RNG for one (seed, tier, sampleIndex)
// triple by adding the tier name's djb2 hash and the sample index times
// a multiplicative constant to the base seed, then seeding a fresh
// source. Each sample therefore gets
// its own private stream regardless of draw order.
func (a *Adapter) Stream(seed int64, tier plant.Tier, sampleIndex int) *rand.Rand {
	s := seed
	s += int64(hashString(string(tier)))
	s += int64(sampleIndex) * 2654435761 // Knuth multiplicative constant, spreads close indices apart
	return rand.New(rand.NewSource(s))
}

func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c)
	}
	return hash
}
