package metrics

import (
	"testing"

	"guildscore/domain/explanation"
	"guildscore/domain/plant"
)

func TestBeneficialFungiSharedFungusRaisesScore(t *testing.T) {
	corpus := newFakeCorpus()
	corpus.fungi["p1"] = plant.FungiRecord{Arbuscular: []string{"Glomus fasciculatum"}}
	corpus.fungi["p2"] = plant.FungiRecord{Arbuscular: []string{"Glomus fasciculatum"}}
	corpus.fungi["p3"] = plant.FungiRecord{}

	plants := []plant.Record{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	result, err := BeneficialFungi{}.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	frag := result.Fragment.(explanation.BeneficialFungiFragment)
	if frag.SharedFungiCount != 1 {
		t.Errorf("expected 1 shared fungus, got %d", frag.SharedFungiCount)
	}
	if result.Raw <= 0 {
		t.Errorf("expected positive raw score, got %v", result.Raw)
	}
}

func TestBeneficialFungiUnsharedFungusInvariant(t *testing.T) {
	corpus := newFakeCorpus()
	corpus.fungi["p1"] = plant.FungiRecord{Arbuscular: []string{"Glomus fasciculatum"}, Saprotrophic: []string{"Solo fungus"}}
	corpus.fungi["p2"] = plant.FungiRecord{Arbuscular: []string{"Glomus fasciculatum"}}

	plants := []plant.Record{{ID: "p1"}, {ID: "p2"}}

	withUnshared, err := BeneficialFungi{}.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}

	corpus.fungi["p1"] = plant.FungiRecord{Arbuscular: []string{"Glomus fasciculatum"}}
	withoutUnshared, err := BeneficialFungi{}.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}

	if withUnshared.Raw != withoutUnshared.Raw {
		t.Errorf("removing a fungus present on only one plant should not change raw M5: %v vs %v", withUnshared.Raw, withoutUnshared.Raw)
	}
}

func TestBeneficialFungiNoFungiYieldsZero(t *testing.T) {
	corpus := newFakeCorpus()
	plants := []plant.Record{{ID: "p1"}, {ID: "p2"}}
	result, err := BeneficialFungi{}.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw != 0 {
		t.Errorf("expected raw 0 with no fungi records, got %v", result.Raw)
	}
}
