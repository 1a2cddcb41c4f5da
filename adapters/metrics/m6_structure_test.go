package metrics

import (
	"testing"

	"guildscore/domain/plant"
)

func TestStructuralDiversitySunLovingBeneathCanopyPenalized(t *testing.T) {
	corpus := newFakeCorpus()

	without := []plant.Record{
		{ID: "canopy", HeightM: 20, GrowthForm: "tree", L: 5},
		{ID: "sun", HeightM: 2, GrowthForm: "herb", L: 5},
	}
	withResult, err := StructuralDiversity{}.Compute(without, corpus)
	if err != nil {
		t.Fatal(err)
	}

	violating := []plant.Record{
		{ID: "canopy", HeightM: 20, GrowthForm: "tree", L: 5},
		{ID: "sun", HeightM: 2, GrowthForm: "herb", L: 9},
	}
	violatingResult, err := StructuralDiversity{}.Compute(violating, corpus)
	if err != nil {
		t.Fatal(err)
	}

	if violatingResult.Raw >= withResult.Raw {
		t.Errorf("placing a sun-loving plant beneath taller canopy should strictly reduce stratification quality: %v vs %v", violatingResult.Raw, withResult.Raw)
	}
}

func TestStructuralDiversitySunLovingBeneathSameBucketPenalized(t *testing.T) {
	corpus := newFakeCorpus()

	without := []plant.Record{
		{ID: "tall", HeightM: 10, GrowthForm: "tree", L: 5},
		{ID: "sun", HeightM: 6, GrowthForm: "herb", L: 5},
	}
	withResult, err := StructuralDiversity{}.Compute(without, corpus)
	if err != nil {
		t.Fatal(err)
	}

	violating := []plant.Record{
		{ID: "tall", HeightM: 10, GrowthForm: "tree", L: 5},
		{ID: "sun", HeightM: 6, GrowthForm: "herb", L: 9},
	}
	violatingResult, err := StructuralDiversity{}.Compute(violating, corpus)
	if err != nil {
		t.Fatal(err)
	}

	if violatingResult.Raw >= withResult.Raw {
		t.Errorf("placing a sun-loving plant strictly below a taller plant in the same layer bucket should strictly reduce stratification quality: %v vs %v", violatingResult.Raw, withResult.Raw)
	}
}

func TestStructuralDiversitySinglePlant(t *testing.T) {
	corpus := newFakeCorpus()
	plants := []plant.Record{{ID: "p1", HeightM: 3, GrowthForm: "shrub", L: 5}}
	result, err := StructuralDiversity{}.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw < 0 {
		t.Errorf("raw should never be negative, got %v", result.Raw)
	}
}
