package metrics

import (
	"testing"

	"guildscore/adapters/normalize"
	"guildscore/domain/plant"
)

func uniformCSRGlobal() normalize.CSRGlobal {
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = float64(i)
	}
	table := normalize.BuildCSRTable(samples)
	return normalize.CSRGlobal{C: table, S: table, R: table}
}

func TestGrowthConflictVineClimbingTreeDiscounted(t *testing.T) {
	m := GrowthConflict{CSR: uniformCSRGlobal()}
	corpus := newFakeCorpus()

	vineTree := []plant.Record{
		{ID: "vine", GrowthForm: "vine", CSR: plant.CSR{C: 95}, HeightM: 2},
		{ID: "tree", GrowthForm: "tree", CSR: plant.CSR{C: 95}, HeightM: 20},
	}
	herbTree := []plant.Record{
		{ID: "herb", GrowthForm: "herb", CSR: plant.CSR{C: 95}, HeightM: 1},
		{ID: "tree", GrowthForm: "tree", CSR: plant.CSR{C: 95}, HeightM: 20},
	}

	vineResult, err := m.Compute(vineTree, corpus)
	if err != nil {
		t.Fatal(err)
	}
	herbResult, err := m.Compute(herbTree, corpus)
	if err != nil {
		t.Fatal(err)
	}

	if vineResult.Raw >= herbResult.Raw {
		t.Errorf("vine-tree conflict (0.2x) should be lower than tree-herb conflict (0.4x): %v vs %v", vineResult.Raw, herbResult.Raw)
	}
}

func TestGrowthConflictSingletonGuildHasZeroDensity(t *testing.T) {
	m := GrowthConflict{CSR: uniformCSRGlobal()}
	corpus := newFakeCorpus()
	plants := []plant.Record{{ID: "p1", CSR: plant.CSR{C: 50}}}
	result, err := m.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw != 0 {
		t.Errorf("expected raw 0 for a single plant (no pairs), got %v", result.Raw)
	}
}
