// Package normalize implements the percentile interpolation layer
// (C9): converting a raw metric value into a 0-100 display score
// against a tier's calibration table, plus the degenerate identity
// normalizer calibration sampling runs under.
package normalize

import (
	"sort"

	"guildscore/domain/calibration"
	"guildscore/domain/core"
	"guildscore/domain/guild"
)

// Percentile is the production NormalizePort: it locates raw within
// the tier's percentile table for metric, linearly interpolating
// between the two enclosing anchors and clamping outside [p1, p99].
type Percentile struct{}

// New returns a ready-to-use Percentile normalizer.
func New() Percentile { return Percentile{} }

// Normalize implements ports.NormalizePort.
func (Percentile) Normalize(table calibration.TierTable, metric guild.MetricKey, raw float64) (float64, error) {
	mt, ok := table.Metrics[metric]
	if !ok {
		return 0, core.NewInsufficientCalibrationError(string(table.Tier))
	}
	return interpolate(mt.Percentiles, raw), nil
}

// interpolate walks the fixed anchor list in ascending order and
// linearly interpolates raw between the two anchors it falls between,
// clamping to the p1/p99 boundary values outside the sampled range.
func interpolate(p calibration.Percentiles, raw float64) float64 {
	anchors := append([]float64(nil), calibration.Anchors...)
	sort.Float64s(anchors)

	lowAnchor, highAnchor := anchors[0], anchors[len(anchors)-1]
	lowVal, highVal := p[lowAnchor], p[highAnchor]

	if raw <= lowVal {
		return lowAnchor
	}
	if raw >= highVal {
		return highAnchor
	}

	for i := 0; i < len(anchors)-1; i++ {
		a0, a1 := anchors[i], anchors[i+1]
		v0, v1 := p[a0], p[a1]
		if raw >= v0 && raw <= v1 {
			if v1 == v0 {
				return a0
			}
			frac := (raw - v0) / (v1 - v0)
			return a0 + frac*(a1-a0)
		}
	}
	return highAnchor
}

// Identity is the calibration-mode NormalizePort: it returns raw
// unchanged so the calibration pipeline can reuse the exact production
// metric code path while collecting raw samples.
type Identity struct{}

func (Identity) Normalize(_ calibration.TierTable, _ guild.MetricKey, raw float64) (float64, error) {
	return raw, nil
}
