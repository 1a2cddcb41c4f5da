package metrics

import (
	"sort"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

const sunLovingLight = 7.47

// StructuralDiversity is M6: rewards guilds that fill distinct vertical
// strata with distinct growth forms, penalizing sun-loving plants
// shaded out beneath a taller canopy member.
type StructuralDiversity struct{}

func (StructuralDiversity) Key() guild.MetricKey { return guild.MetricStructuralDiversity }

func (StructuralDiversity) Compute(plants []plant.Record, _ ports.CorpusPort) (guild.MetricResult, error) {
	n := len(plants)
	if n == 0 {
		return guild.MetricResult{Raw: 0, Fragment: explanation.StructuralDiversityFragment{}}, nil
	}

	minH, maxH := plants[0].HeightM, plants[0].HeightM
	forms := map[string]bool{}
	for _, p := range plants {
		if p.HeightM < minH {
			minH = p.HeightM
		}
		if p.HeightM > maxH {
			maxH = p.HeightM
		}
		if p.GrowthForm != "" {
			forms[p.GrowthForm] = true
		}
	}
	heightRange := maxH - minH
	formDiversity := len(forms)

	var violations []string
	for _, sun := range plants {
		if sun.LightPreference() <= sunLovingLight {
			continue
		}
		for _, other := range plants {
			if sun.ID == other.ID {
				continue
			}
			if other.HeightM > sun.HeightM {
				violations = append(violations, string(sun.ID))
				break
			}
		}
	}
	sort.Strings(violations)

	stratificationQuality := 1.0
	if n > 1 {
		stratificationQuality = 1.0 - float64(len(violations))/float64(n)
		if stratificationQuality < 0 {
			stratificationQuality = 0
		}
	}

	normalizedHeightRange := heightRange / 30.0
	if normalizedHeightRange > 1.0 {
		normalizedHeightRange = 1.0
	}
	normalizedFormDiversity := float64(formDiversity) / 5.0
	if normalizedFormDiversity > 1.0 {
		normalizedFormDiversity = 1.0
	}

	raw := 0.3*normalizedHeightRange + 0.3*normalizedFormDiversity + 0.4*stratificationQuality

	return guild.MetricResult{
		Raw: raw,
		Fragment: explanation.StructuralDiversityFragment{
			HeightRange:           heightRange,
			FormDiversity:         formDiversity,
			StratificationQuality: stratificationQuality,
			Violations:            violations,
		},
	}, nil
}
