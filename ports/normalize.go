package ports

import (
	"guildscore/domain/calibration"
	"guildscore/domain/guild"
)

// NormalizePort converts a raw metric value into a 0-100 display
// score using a tier's calibration table.
type NormalizePort interface {
	// Normalize interpolates raw within the percentile table for
	// (tier, metric), clamping to the p1/p99 anchors outside the
	// sampled range, and returns a 0-100 score. Direction (low-is-good
	// vs high-is-good) is the caller's concern, applied after this
	// call.
	Normalize(table calibration.TierTable, metric guild.MetricKey, raw float64) (float64, error)
}

// CalibrationStorePort persists and retrieves calibration artifacts.
type CalibrationStorePort interface {
	Save(a calibration.Artifact) error
	Load() (calibration.Artifact, error)
}
