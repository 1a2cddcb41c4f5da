package calibration

import (
	"fmt"

	"guildscore/domain/calibration"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

// Verify checks a calibration artifact's structural integrity, the
// way the original's standalone verify_phase7_integrity binary did:
// every climate tier must be covered (or explicitly recorded as
// skipped), every tier's metric set must be complete under the
// canonical key names, and every percentile table must be
// monotonically non-decreasing across the fixed anchor sequence.
// Legacy key names are not checked here; calibstore.VerifyDualNaming
// checks them on the raw document. It
// returns one message per problem found; a nil/empty result means the
// artifact is sound.
func Verify(a calibration.Artifact) []string {
	var problems []string

	for _, tier := range plant.AllTiers {
		table, ok := a.Tiers[tier]
		if !ok {
			if _, skipped := a.Skipped[tier]; !skipped {
				problems = append(problems, fmt.Sprintf("tier %s is neither calibrated nor recorded as skipped", tier))
			}
			continue
		}

		for _, key := range guild.MetricOrder {
			mt, ok := table.Metrics[key]
			if !ok {
				problems = append(problems, fmt.Sprintf("tier %s: missing metric table for %s", tier, key))
				continue
			}
			if msg := checkMonotonic(tier, key, mt); msg != "" {
				problems = append(problems, msg)
			}
		}
	}

	return problems
}

func checkMonotonic(tier plant.Tier, key guild.MetricKey, mt calibration.MetricTable) string {
	var prev float64
	for i, anchor := range calibration.Anchors {
		v, ok := mt.Percentiles[anchor]
		if !ok {
			return fmt.Sprintf("tier %s metric %s: missing percentile anchor p%g", tier, key, anchor)
		}
		if i > 0 && v < prev {
			return fmt.Sprintf("tier %s metric %s: percentile table not monotonic at p%g (%v < %v)", tier, key, anchor, v, prev)
		}
		prev = v
	}
	return ""
}
