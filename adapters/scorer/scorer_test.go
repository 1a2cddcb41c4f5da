package scorer

import (
	"testing"

	"guildscore/adapters/normalize"
	"guildscore/domain/calibration"
	"guildscore/domain/core"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

type stubCorpus struct {
	plants map[string]plant.Record
}

func (c stubCorpus) Plant(id string) (plant.Record, bool) { p, ok := c.plants[id]; return p, ok }
func (stubCorpus) Organisms(id string) (plant.OrganismRecord, bool) { return plant.OrganismRecord{}, false }
func (stubCorpus) Fungi(id string) (plant.FungiRecord, bool)        { return plant.FungiRecord{}, false }
func (stubCorpus) AllPlantIDs() []string                           { return nil }
func (stubCorpus) PlantIDsInTier(t plant.Tier) []string            { return nil }
func (stubCorpus) Lookup(name string) (map[string]string, bool)    { return nil, false }
func (stubCorpus) MultiLookup(name string) (map[string][]string, bool) { return nil, false }

type constMetric struct {
	key guild.MetricKey
	val float64
}

func (m constMetric) Key() guild.MetricKey { return m.key }
func (m constMetric) Compute(plants []plant.Record, _ ports.CorpusPort) (guild.MetricResult, error) {
	return guild.MetricResult{Raw: m.val}, nil
}

func TestResolveFailsOnMissingPlant(t *testing.T) {
	corpus := stubCorpus{plants: map[string]plant.Record{}}
	_, err := Resolve(guild.Request{PlantIDs: []string{"missing"}}, corpus)
	if !core.IsMissingPlant(err) {
		t.Errorf("expected missing-plant error, got %v", err)
	}
}

func TestResolveFailsOnNoClimateOverlap(t *testing.T) {
	corpus := stubCorpus{plants: map[string]plant.Record{
		"a": {ID: "a", Tiers: map[plant.Tier]bool{plant.TierTropical: true}},
		"b": {ID: "b", Tiers: map[plant.Tier]bool{plant.TierArid: true}},
	}}
	_, err := Resolve(guild.Request{PlantIDs: []string{"a", "b"}}, corpus)
	if !core.IsNoClimateOverlap(err) {
		t.Errorf("expected no-climate-overlap error, got %v", err)
	}
}

func TestScoreComposesFixedOrderRegardlessOfMetricSet(t *testing.T) {
	corpus := stubCorpus{plants: map[string]plant.Record{
		"a": {ID: "a", Tiers: map[plant.Tier]bool{plant.TierTropical: true}},
	}}
	g, err := Resolve(guild.Request{PlantIDs: []string{"a"}}, corpus)
	if err != nil {
		t.Fatal(err)
	}

	table := calibration.TierTable{Tier: plant.TierTropical, Metrics: map[guild.MetricKey]calibration.MetricTable{}}
	for _, key := range guild.MetricOrder {
		table.Metrics[key] = calibration.MetricTable{Percentiles: calibration.Percentiles{1: 0, 99: 100}}
	}
	artifact := calibration.Artifact{Tiers: map[plant.Tier]calibration.TierTable{plant.TierTropical: table}}

	metrics := make([]ports.MetricPort, len(guild.MetricOrder))
	for i, key := range guild.MetricOrder {
		metrics[i] = constMetric{key: key, val: 50}
	}

	s := Scorer{Corpus: corpus, Metrics: metrics, Normalize: normalize.Identity{}}
	score, err := s.Score(g, artifact)
	if err != nil {
		t.Fatal(err)
	}
	if len(score.Display) != len(guild.MetricOrder) {
		t.Errorf("expected a display value for every metric, got %d", len(score.Display))
	}
}
