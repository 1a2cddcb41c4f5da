// Package explanation implements the explanation generator (C8): it
// converts a completed guild.Score and its per-metric fragments into
// the structured Explanation value domain/explanation describes -
// overall/climate cards, benefit/warning/risk cards, network-hub
// summaries, and the metrics display table.
package explanation

import (
	"fmt"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

// metricInfo names and labels a metric for display.
type metricInfo struct {
	code string
	name string
}

var metricInfos = map[guild.MetricKey]metricInfo{
	guild.MetricPhyloIndependence:   {"M1", "Phylogenetic Pest Independence"},
	guild.MetricGrowthConflict:      {"M2", "Growth Compatibility"},
	guild.MetricBiocontrol:          {"M3", "Biocontrol Network"},
	guild.MetricDiseaseSuppression:  {"M4", "Disease Suppression"},
	guild.MetricBeneficialFungi:     {"M5", "Beneficial Fungi Network"},
	guild.MetricStructuralDiversity: {"M6", "Structural Diversity"},
	guild.MetricPollinatorSupport:   {"M7", "Pollinator Support"},
}

// Generator implements ports.ExplanationPort.
type Generator struct{}

// New returns a ready-to-use Generator.
func New() Generator { return Generator{} }

// Explain implements ports.ExplanationPort.
func (Generator) Explain(s guild.Score, g guild.Guild) (explanation.Explanation, error) {
	exp := explanation.Explanation{
		OverallCard: overallCard(s.Overall),
		ClimateCard: climateCard(g.Tier),
	}

	for _, key := range guild.MetricOrder {
		info := metricInfos[key]
		exp.Metrics = append(exp.Metrics, explanation.MetricRow{
			Metric:  key,
			Raw:     s.Raw[key],
			Display: s.Display[key],
		})

		frag := s.Fragments[key]
		if frag == nil {
			continue
		}

		benefit, warning, risk := cardsFor(key, info, frag)
		if benefit != nil {
			exp.Benefits = append(exp.Benefits, *benefit)
		}
		if warning != nil {
			exp.Warnings = append(exp.Warnings, *warning)
		}
		if risk != nil {
			exp.Risks = append(exp.Risks, *risk)
		}

		if profile := networkProfileFor(key, frag, g.Plants); profile != nil {
			exp.NetworkProfiles = append(exp.NetworkProfiles, *profile)
		}
	}

	if w := nitrogenExcessWarning(g.Plants); w != nil {
		exp.Warnings = append(exp.Warnings, *w)
	}
	if w := phIncompatibilityWarning(g.Plants); w != nil {
		exp.Warnings = append(exp.Warnings, *w)
	}

	return exp, nil
}

// overallCard implements spec.md 4.7's star-rating bands.
func overallCard(overall float64) explanation.Card {
	stars, label := starsAndLabel(overall)
	return explanation.Card{
		Title: fmt.Sprintf("%s - %s", stars, label),
		Body:  fmt.Sprintf("Overall guild compatibility: %.1f/100", overall),
	}
}

func starsAndLabel(score float64) (string, string) {
	switch {
	case score >= 90:
		return "★★★★★", "Exceptional"
	case score >= 80:
		return "★★★★☆", "Excellent"
	case score >= 70:
		return "★★★☆☆", "Good"
	case score >= 60:
		return "★★☆☆☆", "Fair"
	case score >= 50:
		return "★☆☆☆☆", "Poor"
	default:
		return "☆☆☆☆☆", "Unsuitable"
	}
}

var tierDisplay = map[plant.Tier]string{
	plant.TierTropical:       "Tropical",
	plant.TierMediterranean:  "Mediterranean",
	plant.TierHumidTemperate: "Humid Temperate",
	plant.TierContinental:    "Continental",
	plant.TierBorealPolar:    "Boreal/Polar",
	plant.TierArid:           "Arid",
}

func climateCard(t plant.Tier) explanation.Card {
	display := tierDisplay[t]
	if display == "" {
		display = string(t)
	}
	return explanation.Card{
		Title: display,
		Body:  fmt.Sprintf("All plants compatible with %s", display),
	}
}
