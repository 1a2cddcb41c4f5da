// Package calibstore implements ports.CalibrationStorePort. JSONStore
// is the primary, required backend (spec.md's single calibration.json
// document); the postgres subpackage offers a queryable alternative
// home for the same artifact, adapted from the teacher's
// adapters/postgres/*_repository.go sqlx pattern.
package calibstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"guildscore/domain/calibration"
	"guildscore/domain/core"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

// JSONStore persists a calibration.Artifact to a single JSON file.
type JSONStore struct {
	Path string
}

// document is the on-disk shape: every tier's metric table is keyed
// by both its canonical MetricKey and the legacy short codes the
// reference corpus historically used, so a consumer built against
// either naming scheme resolves the same percentile table (spec.md
// §9's dual-naming note).
type document struct {
	RunID         string                         `json:"run_id"`
	Seed          int64                          `json:"seed"`
	SampleSize    int                            `json:"sample_size"`
	GuildSizePair int                             `json:"guild_size_pair"`
	GuildSizeFull int                             `json:"guild_size_full"`
	Tiers         map[string]tierDocument        `json:"tiers"`
	Skipped       map[string]string              `json:"skipped,omitempty"`
}

type tierDocument struct {
	Metrics map[string]metricDocument `json:"metrics"`
}

type metricDocument struct {
	Percentiles map[string]float64 `json:"percentiles"`
	SampleSize  int                `json:"sample_size"`
}

// Marshal renders an artifact into its dual-naming JSON document
// form. Percentiles is keyed by float64 anchor, which encoding/json
// cannot marshal directly as a map key, so every store backend goes
// through this conversion rather than marshaling calibration.Artifact
// itself.
func Marshal(a calibration.Artifact) ([]byte, error) {
	data, err := json.MarshalIndent(toDocument(a), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal calibration artifact: %w", err)
	}
	return data, nil
}

// Unmarshal is Marshal's inverse, resolving legacy short codes back
// onto their canonical guild.MetricKey via guild.LegacyAlias.
func Unmarshal(data []byte) (calibration.Artifact, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return calibration.Artifact{}, fmt.Errorf("unmarshal calibration artifact: %w", err)
	}
	return fromDocument(doc), nil
}

// Save atomically writes a through a temp file and rename, so a
// crash mid-write never leaves a half-written artifact in place.
func (s JSONStore) Save(a calibration.Artifact) error {
	data, err := Marshal(a)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".calibration-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp calibration file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write calibration artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close calibration artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("rename calibration artifact into place: %w", err)
	}
	return nil
}

// Load reads and reconstitutes the artifact, resolving legacy short
// codes back onto their canonical MetricKey via guild.LegacyAlias when
// a document entry was written under the old naming.
func (s JSONStore) Load() (calibration.Artifact, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return calibration.Artifact{}, fmt.Errorf("read calibration artifact: %w", err)
	}
	return Unmarshal(data)
}

func toDocument(a calibration.Artifact) document {
	doc := document{
		RunID:         a.RunID.String(),
		Seed:          a.Seed,
		SampleSize:    a.SampleSize,
		GuildSizePair: a.GuildSizePair,
		GuildSizeFull: a.GuildSizeFull,
		Tiers:         make(map[string]tierDocument, len(a.Tiers)),
		Skipped:       make(map[string]string, len(a.Skipped)),
	}

	legacyFor := invertLegacyAlias()

	for tier, table := range a.Tiers {
		td := tierDocument{Metrics: make(map[string]metricDocument, len(table.Metrics)*2)}
		for key, mt := range table.Metrics {
			md := metricDocument{Percentiles: percentilesToStringKeys(mt.Percentiles), SampleSize: mt.SampleSize}
			td.Metrics[string(key)] = md
			if legacy, ok := legacyFor[key]; ok {
				td.Metrics[legacy] = md
			}
		}
		doc.Tiers[string(tier)] = td
	}
	for tier, reason := range a.Skipped {
		doc.Skipped[string(tier)] = reason
	}
	return doc
}

func fromDocument(doc document) calibration.Artifact {
	a := calibration.Artifact{
		RunID:         core.CalibrationRunID(doc.RunID),
		Seed:          doc.Seed,
		SampleSize:    doc.SampleSize,
		GuildSizePair: doc.GuildSizePair,
		GuildSizeFull: doc.GuildSizeFull,
		Tiers:         make(map[plant.Tier]calibration.TierTable, len(doc.Tiers)),
		Skipped:       make(map[plant.Tier]string, len(doc.Skipped)),
	}

	for tierName, td := range doc.Tiers {
		tier := plant.Tier(tierName)
		table := calibration.TierTable{Tier: tier, Metrics: make(map[guild.MetricKey]calibration.MetricTable, len(guild.MetricOrder))}
		for keyName, md := range td.Metrics {
			key := guild.MetricKey(keyName)
			if canonical, ok := guild.LegacyAlias[keyName]; ok {
				key = canonical
			}
			table.Metrics[key] = calibration.MetricTable{
				Percentiles: percentilesFromStringKeys(md.Percentiles),
				SampleSize:  md.SampleSize,
			}
		}
		a.Tiers[tier] = table
	}
	for tierName, reason := range doc.Skipped {
		a.Skipped[plant.Tier(tierName)] = reason
	}
	return a
}

// VerifyDualNaming checks that every metric table in a saved document
// is addressable under both its canonical MetricKey and its legacy
// short code, the dual-naming contract spec.md §9 requires. It
// operates on the raw document rather than a reconstituted Artifact,
// since Unmarshal already collapses both names onto the canonical key.
func VerifyDualNaming(data []byte) ([]string, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal calibration document: %w", err)
	}

	var problems []string
	for tierName, td := range doc.Tiers {
		for legacy, canonical := range guild.LegacyAlias {
			if _, ok := td.Metrics[string(canonical)]; !ok {
				problems = append(problems, fmt.Sprintf("tier %s: missing canonical key %s", tierName, canonical))
				continue
			}
			if _, ok := td.Metrics[legacy]; !ok {
				problems = append(problems, fmt.Sprintf("tier %s: missing legacy alias %s for %s", tierName, legacy, canonical))
			}
		}
	}
	return problems, nil
}

func invertLegacyAlias() map[guild.MetricKey]string {
	out := make(map[guild.MetricKey]string, len(guild.LegacyAlias))
	for legacy, canonical := range guild.LegacyAlias {
		out[canonical] = legacy
	}
	return out
}

func percentilesToStringKeys(p calibration.Percentiles) map[string]float64 {
	out := make(map[string]float64, len(p))
	for anchor, v := range p {
		out[fmt.Sprintf("p%g", anchor)] = v
	}
	return out
}

func percentilesFromStringKeys(m map[string]float64) calibration.Percentiles {
	out := make(calibration.Percentiles, len(m))
	for _, anchor := range calibration.Anchors {
		if v, ok := m[fmt.Sprintf("p%g", anchor)]; ok {
			out[anchor] = v
		}
	}
	return out
}
