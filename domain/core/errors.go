package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions for the five error kinds
// the scorer surfaces to callers.
var (
	// ErrMissingPlant: a requested plant id is absent from the reference table.
	ErrMissingPlant = errors.New("plant not found in reference corpus")

	// ErrNoClimateOverlap: the guild's climate-tier flags share no tier.
	ErrNoClimateOverlap = errors.New("no overlapping climate zones")

	// ErrMalformedData: an expected column is absent or has an unexpected shape.
	ErrMalformedData = errors.New("malformed reference data")

	// ErrInsufficientCalibration: no percentile table for the requested tier.
	ErrInsufficientCalibration = errors.New("insufficient calibration data for tier")

	// ErrMetricInternal: a numeric edge case inside a metric kernel that
	// correct inputs should never trigger.
	ErrMetricInternal = errors.New("metric internal error")
)

// NewMissingPlantError names the offending plant id.
func NewMissingPlantError(plantID string) error {
	return fmt.Errorf("%w: %s", ErrMissingPlant, plantID)
}

// NewMalformedDataError names the offending column/table.
func NewMalformedDataError(source, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedData, source, reason)
}

// NewInsufficientCalibrationError names the offending tier.
func NewInsufficientCalibrationError(tier string) error {
	return fmt.Errorf("%w: tier %q", ErrInsufficientCalibration, tier)
}

// NewMetricInternalError wraps an unexpected numeric failure from a metric kernel.
func NewMetricInternalError(metric string, cause error) error {
	return fmt.Errorf("%w: metric %s: %v", ErrMetricInternal, metric, cause)
}

func IsMissingPlant(err error) bool { return errors.Is(err, ErrMissingPlant) }

func IsNoClimateOverlap(err error) bool { return errors.Is(err, ErrNoClimateOverlap) }

func IsMalformedData(err error) bool { return errors.Is(err, ErrMalformedData) }

func IsInsufficientCalibration(err error) bool { return errors.Is(err, ErrInsufficientCalibration) }

func IsMetricInternal(err error) bool { return errors.Is(err, ErrMetricInternal) }
