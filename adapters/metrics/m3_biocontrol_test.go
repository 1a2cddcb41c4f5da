package metrics

import (
	"testing"

	"guildscore/domain/plant"
)

func TestBiocontrolMatchedPredatorRaisesScore(t *testing.T) {
	corpus := newFakeCorpus()
	corpus.multi["herbivore_predators"] = map[string][]string{"aphid": {"ladybird"}}
	corpus.organisms["vulnerable"] = plant.OrganismRecord{Herbivores: []string{"aphid"}}
	corpus.organisms["protective"] = plant.OrganismRecord{PredatorsHasHost: []string{"ladybird"}}

	plants := []plant.Record{{ID: "vulnerable"}, {ID: "protective"}}

	m := Biocontrol{HerbivorePredators: "herbivore_predators", HerbivoreEntomopathogens: "herbivore_entomopathogens"}
	result, err := m.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw <= 0 {
		t.Errorf("expected positive raw score from matched predator, got %v", result.Raw)
	}
}

func TestBiocontrolEmptyGuildPairYieldsZero(t *testing.T) {
	corpus := newFakeCorpus()
	corpus.organisms["p1"] = plant.OrganismRecord{}
	corpus.organisms["p2"] = plant.OrganismRecord{}
	plants := []plant.Record{{ID: "p1"}, {ID: "p2"}}

	m := Biocontrol{HerbivorePredators: "herbivore_predators", HerbivoreEntomopathogens: "herbivore_entomopathogens"}
	result, err := m.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw != 0 {
		t.Errorf("expected raw 0 for empty interaction lists, got %v", result.Raw)
	}
}
