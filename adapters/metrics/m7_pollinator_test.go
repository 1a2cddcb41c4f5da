package metrics

import (
	"testing"

	"guildscore/domain/explanation"
	"guildscore/domain/plant"
)

func TestPollinatorSupportSharedPollinatorRaisesScore(t *testing.T) {
	corpus := newFakeCorpus()
	corpus.organisms["p1"] = plant.OrganismRecord{Pollinators: []string{"Bombus terrestris"}}
	corpus.organisms["p2"] = plant.OrganismRecord{Pollinators: []string{"Bombus terrestris"}}
	corpus.organisms["p3"] = plant.OrganismRecord{}

	plants := []plant.Record{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	result, err := PollinatorSupport{}.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	frag := result.Fragment.(explanation.PollinatorFragment)
	if frag.PollinatorCoverage["Bombus terrestris"] != 2 {
		t.Errorf("expected coverage 2, got %d", frag.PollinatorCoverage["Bombus terrestris"])
	}
	if result.Raw <= 0 {
		t.Errorf("expected positive raw score, got %v", result.Raw)
	}
}

func TestPollinatorSupportNoPollinatorsYieldsZero(t *testing.T) {
	corpus := newFakeCorpus()
	plants := []plant.Record{{ID: "p1"}, {ID: "p2"}}
	result, err := PollinatorSupport{}.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw != 0 {
		t.Errorf("expected raw 0, got %v", result.Raw)
	}
}

func TestCategorizeGenusLookupBeforeFallback(t *testing.T) {
	genusCategory := map[string]string{"Xylocopa": "SolitaryBees"}
	if got := categorize("Xylocopa violacea", genusCategory); got != "SolitaryBees" {
		t.Errorf("expected genus lookup to win, got %s", got)
	}
	if got := categorize("Some hoverfly species", nil); got != "Hoverflies" {
		t.Errorf("expected hoverfly substring match, got %s", got)
	}
	if got := categorize("Unknown critter", nil); got != "Other" {
		t.Errorf("expected fallback to Other, got %s", got)
	}
}
