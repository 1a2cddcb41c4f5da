package calibstore

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"guildscore/domain/calibration"
	"guildscore/domain/core"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

func sampleArtifact() calibration.Artifact {
	percentiles := calibration.Percentiles{}
	for i, p := range calibration.Anchors {
		percentiles[p] = float64(i)
	}
	return calibration.Artifact{
		RunID:         core.NewCalibrationRunID(),
		Seed:          7,
		SampleSize:    1000,
		GuildSizePair: 2,
		GuildSizeFull: 7,
		Tiers: map[plant.Tier]calibration.TierTable{
			plant.TierHumidTemperate: {
				Tier: plant.TierHumidTemperate,
				Metrics: map[guild.MetricKey]calibration.MetricTable{
					guild.MetricBiocontrol: {Percentiles: percentiles, SampleSize: 1000},
				},
			},
		},
		Skipped: map[plant.Tier]string{plant.TierArid: "insufficient eligible plants"},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.json")
	store := JSONStore{Path: path}

	a := sampleArtifact()
	if err := store.Save(a); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}

	table, ok := got.Tiers[plant.TierHumidTemperate]
	if !ok {
		t.Fatal("expected humid_temperate tier to round-trip")
	}
	mt, ok := table.Metrics[guild.MetricBiocontrol]
	if !ok {
		t.Fatal("expected biocontrol metric to round-trip under its canonical key")
	}
	if mt.SampleSize != 1000 {
		t.Errorf("sample size = %d, want 1000", mt.SampleSize)
	}
	if _, skipped := got.Skipped[plant.TierArid]; !skipped {
		t.Error("expected arid tier to round-trip as skipped")
	}
}

func TestJSONStoreWritesLegacyAliasKeys(t *testing.T) {
	a := sampleArtifact()
	data, err := Marshal(a)
	if err != nil {
		t.Fatal(err)
	}

	// p1 is the legacy short code for MetricBiocontrol.
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.Tiers[string(plant.TierHumidTemperate)].Metrics["p1"]; !ok {
		t.Fatal("expected the document to carry the legacy alias p1 for biocontrol")
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Tiers[plant.TierHumidTemperate].Metrics[guild.MetricBiocontrol]; !ok {
		t.Fatal("expected legacy alias p1 to resolve back to MetricBiocontrol")
	}
}
