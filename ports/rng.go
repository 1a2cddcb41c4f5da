package ports

import (
	"math/rand"

	"guildscore/domain/plant"
)

// RNGPort provides seeded, reproducible random sampling for the
// calibration pipeline. The same (seed, tier, sampleIndex) triple must
// always yield the same stream, independent of how many other samples
// are drawn concurrently, so that a calibration run is bit-reproducible
// regardless of goroutine scheduling.
type RNGPort interface {
	// Stream returns the deterministic RNG for one calibration sample:
	// the sampleIndex-th guild drawn from tier's eligible plant pool
	// under the given base seed.
	Stream(seed int64, tier plant.Tier, sampleIndex int) *rand.Rand
}
