package metrics

import (
	"sort"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

// Biocontrol is M3: scores natural pest control from predators and
// entomopathogenic fungi via pairwise vulnerable/protective analysis.
type Biocontrol struct {
	// HerbivorePredators maps a herbivore to its known predators.
	HerbivorePredators string
	// HerbivoreEntomopathogens maps a herbivore to its known
	// insect-parasitic fungi.
	HerbivoreEntomopathogens string
}

func (Biocontrol) Key() guild.MetricKey { return guild.MetricBiocontrol }

func (m Biocontrol) Compute(plants []plant.Record, corpus ports.CorpusPort) (guild.MetricResult, error) {
	n := len(plants)

	herbivorePredators, _ := corpus.MultiLookup(m.HerbivorePredators)
	herbivoreParasites, _ := corpus.MultiLookup(m.HerbivoreEntomopathogens)

	organisms := make(map[string]plant.OrganismRecord, n)
	fungi := make(map[string]plant.FungiRecord, n)
	for _, p := range plants {
		if o, ok := corpus.Organisms(string(p.ID)); ok {
			organisms[string(p.ID)] = o
		}
		if fg, ok := corpus.Fungi(string(p.ID)); ok {
			fungi[string(p.ID)] = fg
		}
	}

	knownPredators := flattenValues(herbivorePredators)
	knownEntomopathogens := flattenValues(herbivoreParasites)

	predatorCoverage := map[string]int{}
	entomoCoverage := map[string]int{}
	for _, p := range plants {
		seenPred := map[string]bool{}
		for _, pr := range organisms[string(p.ID)].AllPredators() {
			if knownPredators[pr] && !seenPred[pr] {
				predatorCoverage[pr]++
				seenPred[pr] = true
			}
		}
		seenFungi := map[string]bool{}
		for _, fg := range fungi[string(p.ID)].Entomopathogenic {
			if knownEntomopathogens[fg] && !seenFungi[fg] {
				entomoCoverage[fg]++
				seenFungi[fg] = true
			}
		}
	}

	var total float64
	var matchedPredatorPairs, matchedFungiPairs []explanation.MatchedPair
	plantAgentCounts := map[string]int{}

	for _, a := range plants {
		herbivoresA := organisms[string(a.ID)].Herbivores
		if len(herbivoresA) == 0 {
			continue
		}
		for _, b := range plants {
			if a.ID == b.ID {
				continue
			}
			predatorsB := organisms[string(b.ID)].AllPredators()
			entomoB := fungi[string(b.ID)].Entomopathogenic

			for _, h := range herbivoresA {
				if known, ok := herbivorePredators[h]; ok {
					matched := intersect(predatorsB, known)
					if len(matched) > 0 {
						total += float64(len(matched)) * 1.0
						plantAgentCounts[string(b.ID)] += len(matched)
						for _, pr := range matched {
							matchedPredatorPairs = append(matchedPredatorPairs, explanation.MatchedPair{From: h, To: pr})
						}
					}
				}
			}

			if len(entomoB) > 0 {
				for _, h := range herbivoresA {
					if known, ok := herbivoreParasites[h]; ok {
						matched := intersect(entomoB, known)
						if len(matched) > 0 {
							total += float64(len(matched)) * 1.0
							plantAgentCounts[string(b.ID)] += len(matched)
							for _, fg := range matched {
								matchedFungiPairs = append(matchedFungiPairs, explanation.MatchedPair{From: h, To: fg})
							}
						}
					}
				}
				total += float64(len(entomoB)) * 0.2
				plantAgentCounts[string(b.ID)] += len(entomoB)
			}
		}
	}

	maxPairs := 0.0
	if n > 1 {
		maxPairs = float64(n * (n - 1))
	}
	var raw float64
	if maxPairs > 0 {
		raw = total / maxPairs * 20.0
	}

	dedupPairs(&matchedPredatorPairs)
	dedupPairs(&matchedFungiPairs)

	return guild.MetricResult{
		Raw: raw,
		Fragment: explanation.BiocontrolFragment{
			PredatorCoverage:            predatorCoverage,
			EntomopathogenCoverage:      entomoCoverage,
			MatchedPredatorPairs:        matchedPredatorPairs,
			MatchedEntomopathogenPairs:  matchedFungiPairs,
			PlantAgentCounts:            plantAgentCounts,
		},
	}, nil
}

func flattenValues(m map[string][]string) map[string]bool {
	out := map[string]bool{}
	for _, vs := range m {
		for _, v := range vs {
			out[v] = true
		}
	}
	return out
}

func intersect(a []string, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []string
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func dedupPairs(pairs *[]explanation.MatchedPair) {
	if len(*pairs) == 0 {
		return
	}
	sort.Slice(*pairs, func(i, j int) bool {
		if (*pairs)[i].From != (*pairs)[j].From {
			return (*pairs)[i].From < (*pairs)[j].From
		}
		return (*pairs)[i].To < (*pairs)[j].To
	})
	out := (*pairs)[:1]
	for _, p := range (*pairs)[1:] {
		last := out[len(out)-1]
		if p != last {
			out = append(out, p)
		}
	}
	*pairs = out
}
