// Package calibration holds the types describing a percentile
// calibration artifact: the fixed anchor set, per-tier/per-metric
// percentile tables, and the top-level artifact envelope persisted by
// a calibration store.
package calibration

import (
	"github.com/montanaflynn/stats"

	"guildscore/domain/core"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

// Anchors is the fixed set of 13 percentiles every metric's table is
// built from. p1 and p99 bound the clamp range used at score time.
var Anchors = []float64{1, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99}

// PercentileIndex implements the source's positional percentile rule:
// index = round(p/100 * (n-1)), clamped into [0, n-1]. Rounding goes
// through stats.Round rather than math.Round so the positional rule
// matches the same rounding convention the calibration pipeline's
// summary statistics use.
func PercentileIndex(p float64, n int) int {
	if n <= 1 {
		return 0
	}
	rounded, err := stats.Round(p/100*float64(n-1), 0)
	if err != nil {
		rounded = p / 100 * float64(n-1)
	}
	idx := int(rounded)
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// Percentiles maps an anchor value (member of Anchors) to the raw
// metric value observed at that percentile within one tier's sample.
type Percentiles map[float64]float64

// MetricTable holds one metric's percentile table for one tier, plus
// the sample size it was built from (for diagnostics).
type MetricTable struct {
	Percentiles Percentiles
	SampleSize  int
}

// TierTable holds every metric's percentile table for one climate
// tier.
type TierTable struct {
	Tier    plant.Tier
	Metrics map[guild.MetricKey]MetricTable
}

// Artifact is the complete, persistable calibration result: one
// TierTable per tier that met the minimum sample threshold, plus the
// run metadata needed to reproduce or audit it.
type Artifact struct {
	RunID       core.CalibrationRunID
	Seed        int64
	SampleSize  int
	GuildSizePair int
	GuildSizeFull int
	Tiers       map[plant.Tier]TierTable
	// Skipped records tiers that had too few eligible plants to reach
	// GuildSizePair-sized samples, with the reason.
	Skipped map[plant.Tier]string
}

// HasTier reports whether a is usable for scoring requests in tier t.
func (a Artifact) HasTier(t plant.Tier) bool {
	_, ok := a.Tiers[t]
	return ok
}
