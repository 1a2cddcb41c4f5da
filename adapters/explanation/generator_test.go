package explanation

import (
	"fmt"
	"testing"

	"guildscore/domain/core"
	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

func TestStarsAndLabelBands(t *testing.T) {
	cases := []struct {
		score float64
		stars string
		label string
	}{
		{92.5, "★★★★★", "Exceptional"},
		{85.0, "★★★★☆", "Excellent"},
		{72.0, "★★★☆☆", "Good"},
		{61.0, "★★☆☆☆", "Fair"},
		{55.0, "★☆☆☆☆", "Poor"},
		{10.0, "☆☆☆☆☆", "Unsuitable"},
	}
	for _, c := range cases {
		stars, label := starsAndLabel(c.score)
		if stars != c.stars || label != c.label {
			t.Errorf("starsAndLabel(%v) = (%q, %q), want (%q, %q)", c.score, stars, label, c.stars, c.label)
		}
	}
}

func TestExplainNoBenefitCardsWhenNoInteractions(t *testing.T) {
	plants := []plant.Record{
		{ID: "a", R: 5, Tiers: map[plant.Tier]bool{plant.TierHumidTemperate: true}},
		{ID: "b", R: 5, Tiers: map[plant.Tier]bool{plant.TierHumidTemperate: true}},
	}
	g := guild.Guild{ID: core.NewGuildID(), Plants: plants, Tier: plant.TierHumidTemperate}

	score := guild.Score{
		Tier:    plant.TierHumidTemperate,
		Raw:     map[guild.MetricKey]float64{guild.MetricBiocontrol: 0, guild.MetricDiseaseSuppression: 0, guild.MetricBeneficialFungi: 0, guild.MetricPollinatorSupport: 0},
		Display: map[guild.MetricKey]float64{},
		Fragments: map[guild.MetricKey]interface{}{
			guild.MetricBiocontrol:          explanation.BiocontrolFragment{},
			guild.MetricDiseaseSuppression:  explanation.DiseaseSuppressionFragment{},
			guild.MetricBeneficialFungi:     explanation.BeneficialFungiFragment{},
			guild.MetricPollinatorSupport:   explanation.PollinatorFragment{},
		},
	}

	exp, err := New().Explain(score, g)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range exp.Benefits {
		if b.Title == title(metricInfos[guild.MetricBiocontrol], "Natural pest control network") ||
			b.Title == title(metricInfos[guild.MetricDiseaseSuppression], "Disease suppression network") ||
			b.Title == title(metricInfos[guild.MetricBeneficialFungi], "Shared beneficial fungi network") ||
			b.Title == title(metricInfos[guild.MetricPollinatorSupport], "Shared pollinator base") {
			t.Errorf("unexpected benefit card for interaction-free guild: %v", b)
		}
	}
}

func TestNitrogenExcessWarning(t *testing.T) {
	plants := make([]plant.Record, 7)
	for i := range plants {
		plants[i] = plant.Record{ID: core.PlantID(fmt.Sprintf("p%d", i)), R: 5}
	}
	for i := 0; i < 3; i++ {
		plants[i].Family = "Fabaceae"
	}
	w := nitrogenExcessWarning(plants)
	if w == nil {
		t.Fatal("expected nitrogen excess warning")
	}
}

func TestPHIncompatibilityWarningHighSeverity(t *testing.T) {
	plants := []plant.Record{
		{ID: "a", R: 2.5},
		{ID: "b", R: 7.8},
		{ID: "c", R: 5.2},
		{ID: "d", R: 6.0},
	}
	w := phIncompatibilityWarning(plants)
	if w == nil {
		t.Fatal("expected pH warning")
	}
	if w.Severity != explanation.SeverityHigh {
		t.Errorf("expected High severity, got %v", w.Severity)
	}
}
