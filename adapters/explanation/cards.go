package explanation

import (
	"fmt"
	"sort"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
)

// cardsFor dispatches a metric's raw diagnostic fragment to its
// benefit/warning/risk card builder. Content is deterministic in the
// fragment's fields; a nil return for any slot means that metric
// found nothing worth surfacing for this guild.
func cardsFor(key guild.MetricKey, info metricInfo, frag interface{}) (benefit, warning, risk *explanation.Card) {
	switch key {
	case guild.MetricPhyloIndependence:
		return phyloCards(info, frag.(explanation.PhyloFragment))
	case guild.MetricGrowthConflict:
		return conflictCards(info, frag.(explanation.ConflictFragment))
	case guild.MetricBiocontrol:
		return biocontrolCards(info, frag.(explanation.BiocontrolFragment))
	case guild.MetricDiseaseSuppression:
		return diseaseCards(info, frag.(explanation.DiseaseSuppressionFragment))
	case guild.MetricBeneficialFungi:
		return fungiCards(info, frag.(explanation.BeneficialFungiFragment))
	case guild.MetricStructuralDiversity:
		return structureCards(info, frag.(explanation.StructuralDiversityFragment))
	case guild.MetricPollinatorSupport:
		return pollinatorCards(info, frag.(explanation.PollinatorFragment))
	}
	return nil, nil, nil
}

func title(info metricInfo, text string) string {
	return fmt.Sprintf("%s [%s]", text, info.code)
}

func phyloCards(info metricInfo, f explanation.PhyloFragment) (benefit, warning, risk *explanation.Card) {
	if f.PD > 0 {
		benefit = &explanation.Card{
			Title: title(info, "Phylogenetically diverse guild"),
			Body:  fmt.Sprintf("Faith's PD across the guild is %.2f, spreading shared-pest risk across distantly related lineages.", f.PD),
		}
	}
	if f.LeavesTotal > 0 && f.LeavesFound < f.LeavesTotal {
		risk = &explanation.Card{
			Title:    title(info, "Incomplete phylogenetic coverage"),
			Body:     fmt.Sprintf("%d of %d guild plants could not be placed on the reference tree; PD may understate true diversity.", f.LeavesTotal-f.LeavesFound, f.LeavesTotal),
			Severity: explanation.SeverityLow,
		}
	}
	return
}

func conflictCards(info metricInfo, f explanation.ConflictFragment) (benefit, warning, risk *explanation.Card) {
	if f.ConflictDensity > 0.35 {
		warning = &explanation.Card{
			Title:    title(info, "Elevated growth-form conflict"),
			Body:     fmt.Sprintf("Conflict density %.2f: %d competitive, %d stress-tolerant, %d ruderal plants may crowd each other out.", f.ConflictDensity, len(f.HighC), len(f.HighS), len(f.HighR)),
			Severity: severityFor(f.ConflictDensity),
		}
		return
	}
	benefit = &explanation.Card{
		Title: title(info, "Compatible growth strategies"),
		Body:  fmt.Sprintf("Conflict density is low (%.2f); competitive, stress-tolerant, and ruderal plants are unlikely to crowd each other out.", f.ConflictDensity),
	}
	return
}

func severityFor(density float64) explanation.Severity {
	switch {
	case density > 0.7:
		return explanation.SeverityHigh
	case density > 0.5:
		return explanation.SeverityMedium
	default:
		return explanation.SeverityLow
	}
}

func biocontrolCards(info metricInfo, f explanation.BiocontrolFragment) (benefit, warning, risk *explanation.Card) {
	total := len(f.MatchedPredatorPairs) + len(f.MatchedEntomopathogenPairs)
	if total == 0 {
		return
	}
	benefit = &explanation.Card{
		Title: title(info, "Natural pest control network"),
		Body: fmt.Sprintf(
			"%d herbivore-predator matches and %d herbivore-entomopathogen matches found across %d predator taxa and %d entomopathogenic fungi.",
			len(f.MatchedPredatorPairs), len(f.MatchedEntomopathogenPairs), len(f.PredatorCoverage), len(f.EntomopathogenCoverage),
		),
	}
	return
}

func diseaseCards(info metricInfo, f explanation.DiseaseSuppressionFragment) (benefit, warning, risk *explanation.Card) {
	if len(f.MatchedAntagonistPairs) == 0 && len(f.MycoparasiteCoverage) == 0 {
		return
	}
	benefit = &explanation.Card{
		Title: title(info, "Disease suppression network"),
		Body: fmt.Sprintf(
			"%d pathogen-mycoparasite matches found; %d mycoparasite taxa and %d fungivore taxa present in the guild.",
			len(f.MatchedAntagonistPairs), len(f.MycoparasiteCoverage), len(f.FungivoreCoverage),
		),
	}
	return
}

func fungiCards(info metricInfo, f explanation.BeneficialFungiFragment) (benefit, warning, risk *explanation.Card) {
	if f.SharedFungiCount == 0 {
		return
	}
	benefit = &explanation.Card{
		Title: title(info, "Shared beneficial fungi network"),
		Body:  fmt.Sprintf("%d fungi are shared by 2+ plants, covering %.0f%% of the guild.", f.SharedFungiCount, f.PlantCoverage*100),
	}
	return
}

func structureCards(info metricInfo, f explanation.StructuralDiversityFragment) (benefit, warning, risk *explanation.Card) {
	if len(f.Violations) > 0 {
		ids := append([]string(nil), f.Violations...)
		sort.Strings(ids)
		warning = &explanation.Card{
			Title:    title(info, "Sun-loving plants shaded out"),
			Body:     fmt.Sprintf("%d sun-loving plant(s) are placed beneath a taller canopy member: %v.", len(ids), ids),
			Severity: explanation.SeverityMedium,
		}
	}
	if f.StratificationQuality >= 0.6 {
		benefit = &explanation.Card{
			Title: title(info, "Well-layered canopy"),
			Body:  fmt.Sprintf("Height range %.1fm across %d growth forms, with stratification quality %.2f.", f.HeightRange, f.FormDiversity, f.StratificationQuality),
		}
	}
	return
}

func pollinatorCards(info metricInfo, f explanation.PollinatorFragment) (benefit, warning, risk *explanation.Card) {
	shared := 0
	for _, count := range f.PollinatorCoverage {
		if count >= 2 {
			shared++
		}
	}
	if shared == 0 {
		return
	}
	benefit = &explanation.Card{
		Title: title(info, "Shared pollinator base"),
		Body:  fmt.Sprintf("%d pollinators visit 2 or more guild plants, sustaining visitation across bloom gaps.", shared),
	}
	return
}
