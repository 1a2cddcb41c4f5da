package metrics

import (
	"testing"

	"guildscore/domain/plant"
)

func TestDiseaseSuppressionMatchedAntagonistRaisesScore(t *testing.T) {
	corpus := newFakeCorpus()
	corpus.multi["pathogen_antagonists"] = map[string][]string{"fusarium": {"trichoderma"}}
	corpus.fungi["vulnerable"] = plant.FungiRecord{Pathogenic: []string{"fusarium"}}
	corpus.fungi["protective"] = plant.FungiRecord{Mycoparasitic: []string{"trichoderma"}}

	plants := []plant.Record{{ID: "vulnerable"}, {ID: "protective"}}

	m := DiseaseSuppression{PathogenAntagonists: "pathogen_antagonists"}
	result, err := m.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw <= 0 {
		t.Errorf("expected positive raw score from matched antagonist, got %v", result.Raw)
	}
}

func TestDiseaseSuppressionNoInteractionsYieldsZero(t *testing.T) {
	corpus := newFakeCorpus()
	corpus.fungi["p1"] = plant.FungiRecord{}
	corpus.fungi["p2"] = plant.FungiRecord{}
	plants := []plant.Record{{ID: "p1"}, {ID: "p2"}}

	m := DiseaseSuppression{PathogenAntagonists: "pathogen_antagonists"}
	result, err := m.Compute(plants, corpus)
	if err != nil {
		t.Fatal(err)
	}
	if result.Raw != 0 {
		t.Errorf("expected raw 0 for empty interaction lists, got %v", result.Raw)
	}
}
