package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID is a generic unique identifier, time-ordered via UUID v7.
type ID string

// NewID mints a new time-ordered identifier, falling back to a random
// v4 UUID on the rare occasion v7 generation fails.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

func (id ID) String() string { return string(id) }

func (id ID) IsEmpty() bool { return id == "" }

// Domain-specific ID types.
type (
	// PlantID is the opaque stable identifier of a reference-corpus plant
	// record (the source's "wfo_taxon_id").
	PlantID string
	// GuildID identifies one scoring request.
	GuildID ID
	// CalibrationRunID identifies one run of the calibration pipeline.
	CalibrationRunID ID
)

func (id PlantID) String() string          { return string(id) }
func (id GuildID) String() string          { return ID(id).String() }
func (id CalibrationRunID) String() string { return ID(id).String() }

// NewGuildID mints an identifier for a scoring request.
func NewGuildID() GuildID { return GuildID(NewID()) }

// NewCalibrationRunID mints an identifier for a calibration run.
func NewCalibrationRunID() CalibrationRunID { return CalibrationRunID(NewID()) }

// ParsePlantID validates a raw string as a non-empty plant identifier.
func ParsePlantID(s string) (PlantID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("plant id cannot be empty")
	}
	return PlantID(s), nil
}
