package explanation

import (
	"fmt"
	"sort"

	"guildscore/domain/explanation"
	"guildscore/domain/plant"
)

// nitrogenFixingFamily is the family the reference corpus uses to flag
// nitrogen-fixing plants (legumes partnering with rhizobia).
const nitrogenFixingFamily = "Fabaceae"

// nitrogenExcessWarning implements spec.md 4.7's nitrogen check: warn
// when more than a third of the guild fixes nitrogen, since excess
// nitrogen favors fast-growing weeds over the guild's intended plants.
func nitrogenExcessWarning(plants []plant.Record) *explanation.Card {
	n := len(plants)
	if n == 0 {
		return nil
	}
	var fixers []string
	for _, p := range plants {
		if p.Family == nitrogenFixingFamily {
			fixers = append(fixers, string(p.ID))
		}
	}
	if float64(len(fixers)) <= float64(n)/3.0 {
		return nil
	}
	sort.Strings(fixers)
	return &explanation.Card{
		Title:    "Nitrogen-fixing excess",
		Body:     fmt.Sprintf("%d of %d guild plants fix nitrogen (%v); excess nitrogen can favor fast-growing weeds over the intended guild.", len(fixers), n, fixers),
		Severity: explanation.SeverityLow,
	}
}

// phBin is one of the six ordinal EIVE-R soil pH categories, following
// SPEC_FULL.md's bin edges on the R indicator.
type phBin struct {
	lower, upper float64
	label        string
}

var phBins = []phBin{
	{1, 2.5, "Strongly Acidic"},
	{2.5, 4, "Acidic"},
	{4, 5.5, "Slightly Acidic"},
	{5.5, 7, "Neutral"},
	{7, 8.5, "Alkaline"},
	{8.5, 10, "Strongly Alkaline"},
}

func phCategory(r float64) string {
	for _, b := range phBins {
		if r >= b.lower && r < b.upper {
			return b.label
		}
	}
	return phBins[len(phBins)-1].label
}

// phIncompatibilityWarning implements spec.md 4.7's pH check: bin each
// plant's R indicator and warn when the guild's R range exceeds one
// unit, with severity graded by how far it exceeds it.
func phIncompatibilityWarning(plants []plant.Record) *explanation.Card {
	if len(plants) == 0 {
		return nil
	}
	minR, maxR := plants[0].R, plants[0].R
	for _, p := range plants[1:] {
		if p.R < minR {
			minR = p.R
		}
		if p.R > maxR {
			maxR = p.R
		}
	}
	rRange := maxR - minR
	if rRange <= 1.0 {
		return nil
	}

	var severity explanation.Severity
	switch {
	case rRange > 3.0:
		severity = explanation.SeverityHigh
	case rRange > 2.0:
		severity = explanation.SeverityMedium
	default:
		severity = explanation.SeverityLow
	}

	categories := make([]string, 0, len(plants))
	for _, p := range plants {
		categories = append(categories, fmt.Sprintf("%s: %s (R=%.1f)", p.ID, phCategory(p.R), p.R))
	}
	sort.Strings(categories)

	return &explanation.Card{
		Title:    "Soil pH incompatibility",
		Body:     fmt.Sprintf("EIVE R range %.1f-%.1f (difference %.1f units): %v", minR, maxR, rRange, categories),
		Severity: severity,
	}
}
