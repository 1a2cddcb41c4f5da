package calibration

import (
	"math/rand"
	"testing"

	"guildscore/adapters/metrics"
	"guildscore/adapters/normalize"
	"guildscore/domain/core"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

// fakeCorpus is a tiny in-memory corpus for pipeline tests: enough
// plants in one tier to draw pair and full guild samples from, with
// no organism or fungal interactions (M3-M5/M7 degrade to zero, which
// still exercises the full sampling and percentile-reduction path).
type fakeCorpus struct {
	plants map[string]plant.Record
	tier   plant.Tier
}

func newFakeCorpus(tier plant.Tier, n int) *fakeCorpus {
	c := &fakeCorpus{plants: map[string]plant.Record{}, tier: tier}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		c.plants[id] = plant.Record{
			ID:         core.PlantID(id),
			Scientific: id,
			GrowthForm: "herb",
			HeightM:    1.0 + float64(i)*0.3,
			R:          5.0,
			CSR:        plant.CSR{C: 30, S: 30, R: 40},
			Tiers:      map[plant.Tier]bool{tier: true},
		}
	}
	return c
}

func (c *fakeCorpus) Plant(id string) (plant.Record, bool) { p, ok := c.plants[id]; return p, ok }
func (c *fakeCorpus) Organisms(id string) (plant.OrganismRecord, bool) {
	return plant.OrganismRecord{}, false
}
func (c *fakeCorpus) Fungi(id string) (plant.FungiRecord, bool) { return plant.FungiRecord{}, false }
func (c *fakeCorpus) AllPlantIDs() []string {
	out := make([]string, 0, len(c.plants))
	for id := range c.plants {
		out = append(out, id)
	}
	return out
}
func (c *fakeCorpus) PlantIDsInTier(t plant.Tier) []string {
	if t != c.tier {
		return nil
	}
	return c.AllPlantIDs()
}
func (c *fakeCorpus) Lookup(name string) (map[string]string, bool)      { return nil, false }
func (c *fakeCorpus) MultiLookup(name string) (map[string][]string, bool) { return nil, false }

type fakePhylo struct{}

func (fakePhylo) PD(names []string) (float64, error) { return float64(len(names)) * 0.5, nil }
func (fakePhylo) Coverage(names []string) int        { return len(names) }

type fakeRNG struct{}

func (fakeRNG) Stream(seed int64, tier plant.Tier, sampleIndex int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(sampleIndex)))
}

func TestPipelineRunProducesMonotonicPercentileTable(t *testing.T) {
	corpus := newFakeCorpus(plant.TierHumidTemperate, 10)
	csr := normalize.CSRGlobal{
		C: normalize.BuildCSRTable([]float64{10, 20, 30, 40, 50}),
		S: normalize.BuildCSRTable([]float64{10, 20, 30, 40, 50}),
		R: normalize.BuildCSRTable([]float64{10, 20, 30, 40, 50}),
	}
	pipeline := Pipeline{
		Corpus:         corpus,
		RNG:            fakeRNG{},
		Metrics:        metrics.All(fakePhylo{}, csr),
		MaxConcurrency: 4,
	}

	artifact, err := pipeline.Run(1, 200, 2, 7)
	if err != nil {
		t.Fatal(err)
	}

	table, ok := artifact.Tiers[plant.TierHumidTemperate]
	if !ok {
		t.Fatal("expected tier to be calibrated, not skipped")
	}
	for _, key := range guild.MetricOrder {
		mt, ok := table.Metrics[key]
		if !ok {
			t.Fatalf("missing metric table for %s", key)
		}
		if mt.SampleSize != 200 {
			t.Errorf("metric %s: sample size = %d, want 200", key, mt.SampleSize)
		}
		var prev float64
		for i, p := range calibrationAnchorsSorted() {
			v := mt.Percentiles[p]
			if i > 0 && v < prev {
				t.Errorf("metric %s: percentile table not monotonic at p%v (%v < %v)", key, p, v, prev)
			}
			prev = v
		}
	}
}

func TestPipelineSkipsTierWithoutEligiblePlants(t *testing.T) {
	corpus := newFakeCorpus(plant.TierHumidTemperate, 2)
	csr := normalize.CSRGlobal{}
	pipeline := Pipeline{
		Corpus:  corpus,
		RNG:     fakeRNG{},
		Metrics: metrics.All(fakePhylo{}, csr),
	}

	artifact, err := pipeline.Run(1, 50, 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	for _, tier := range plant.AllTiers {
		if tier == plant.TierHumidTemperate {
			if _, skipped := artifact.Skipped[tier]; skipped {
				t.Errorf("tier %s should not be skipped: only needs the 2-plant pair minimum", tier)
			}
			continue
		}
		if _, skipped := artifact.Skipped[tier]; !skipped {
			t.Errorf("tier %s: expected to be skipped, had no eligible plants", tier)
		}
	}
}

func calibrationAnchorsSorted() []float64 {
	return []float64{1, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99}
}

var _ ports.CorpusPort = (*fakeCorpus)(nil)
var _ ports.PhyloPort = fakePhylo{}
var _ ports.RNGPort = fakeRNG{}
