package metrics

import (
	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

// DiseaseSuppression is M4: scores disease control from mycoparasitic
// fungi and fungivorous animals via pairwise vulnerable/protective
// analysis, mirroring M3's structure with different role columns.
type DiseaseSuppression struct {
	// PathogenAntagonists maps a pathogen to its known mycoparasite
	// antagonists.
	PathogenAntagonists string
}

func (DiseaseSuppression) Key() guild.MetricKey { return guild.MetricDiseaseSuppression }

func (m DiseaseSuppression) Compute(plants []plant.Record, corpus ports.CorpusPort) (guild.MetricResult, error) {
	n := len(plants)

	pathogenAntagonists, _ := corpus.MultiLookup(m.PathogenAntagonists)

	fungiByPlant := make(map[string]plant.FungiRecord, n)
	organismsByPlant := make(map[string]plant.OrganismRecord, n)
	for _, p := range plants {
		if fg, ok := corpus.Fungi(string(p.ID)); ok {
			fungiByPlant[string(p.ID)] = fg
		}
		if o, ok := corpus.Organisms(string(p.ID)); ok {
			organismsByPlant[string(p.ID)] = o
		}
	}

	mycoparasiteCoverage := tallyCoverage(plants, func(id string) []string { return fungiByPlant[id].Mycoparasitic })
	fungivoreCoverage := tallyCoverage(plants, func(id string) []string { return organismsByPlant[id].Fungivores })
	pathogenCoverage := tallyCoverage(plants, func(id string) []string { return fungiByPlant[id].Pathogenic })

	var total float64
	var matchedAntagonistPairs []explanation.MatchedPair
	plantAgentCounts := map[string]int{}

	for _, a := range plants {
		pathogensA := fungiByPlant[string(a.ID)].Pathogenic
		if len(pathogensA) == 0 {
			continue
		}
		for _, b := range plants {
			if a.ID == b.ID {
				continue
			}
			mycoparasitesB := fungiByPlant[string(b.ID)].Mycoparasitic
			if len(mycoparasitesB) == 0 {
				continue
			}

			for _, pth := range pathogensA {
				if known, ok := pathogenAntagonists[pth]; ok {
					matched := intersect(mycoparasitesB, known)
					if len(matched) > 0 {
						total += float64(len(matched)) * 1.0
						plantAgentCounts[string(b.ID)] += len(matched)
						for _, ant := range matched {
							matchedAntagonistPairs = append(matchedAntagonistPairs, explanation.MatchedPair{From: pth, To: ant})
						}
					}
				}
			}

			total += float64(len(mycoparasitesB)) * 1.0
			plantAgentCounts[string(b.ID)] += len(mycoparasitesB)
		}

		for _, b := range plants {
			if a.ID == b.ID {
				continue
			}
			fungivoresB := organismsByPlant[string(b.ID)].Fungivores
			if len(fungivoresB) == 0 {
				continue
			}
			total += float64(len(fungivoresB)) * 0.2
			plantAgentCounts[string(b.ID)] += len(fungivoresB)
		}
	}

	maxPairs := 0.0
	if n > 1 {
		maxPairs = float64(n * (n - 1))
	}
	var raw float64
	if maxPairs > 0 {
		raw = total / maxPairs * 10.0
	}

	dedupPairs(&matchedAntagonistPairs)

	return guild.MetricResult{
		Raw: raw,
		Fragment: explanation.DiseaseSuppressionFragment{
			MycoparasiteCoverage:   mycoparasiteCoverage,
			MatchedAntagonistPairs: matchedAntagonistPairs,
			FungivoreCoverage:      fungivoreCoverage,
			PathogenCoverage:       pathogenCoverage,
			PlantAgentCounts:       plantAgentCounts,
		},
	}, nil
}

func tallyCoverage(plants []plant.Record, roleOf func(id string) []string) map[string]int {
	out := map[string]int{}
	for _, p := range plants {
		seen := map[string]bool{}
		for _, name := range roleOf(string(p.ID)) {
			if !seen[name] {
				out[name]++
				seen[name] = true
			}
		}
	}
	return out
}
