package metrics

import (
	"sort"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

// BeneficialFungi is M5: scores the shared-mycorrhizal/endophytic/
// saprotrophic network across the guild by how many fungi are hosted
// by more than one plant and how much of the guild shares in them.
type BeneficialFungi struct{}

func (BeneficialFungi) Key() guild.MetricKey { return guild.MetricBeneficialFungi }

func (BeneficialFungi) Compute(plants []plant.Record, corpus ports.CorpusPort) (guild.MetricResult, error) {
	n := len(plants)

	fungusPlants := map[string]map[string]bool{}
	fungusCategory := map[string]string{}
	categoryTally := map[string]int{}

	record := func(plantID, name, category string) {
		if name == "" {
			return
		}
		if fungusPlants[name] == nil {
			fungusPlants[name] = map[string]bool{}
		}
		fungusPlants[name][plantID] = true
		if _, ok := fungusCategory[name]; !ok {
			fungusCategory[name] = category
		}
	}

	for _, p := range plants {
		fg, ok := corpus.Fungi(string(p.ID))
		if !ok {
			continue
		}
		for _, name := range fg.Arbuscular {
			record(string(p.ID), name, "AMF")
		}
		for _, name := range fg.Ectomycorrhizal {
			record(string(p.ID), name, "EMF")
		}
		for _, name := range fg.Endophytic {
			record(string(p.ID), name, "endophytic")
		}
		for _, name := range fg.Saprotrophic {
			record(string(p.ID), name, "saprotrophic")
		}
	}

	sharedPlants := map[string]bool{}
	plantAgentCounts := map[string]int{}
	var sharedFungi []explanation.TaxonCount
	sharedCount := 0
	for name, hosts := range fungusPlants {
		if len(hosts) < 2 {
			continue
		}
		sharedCount++
		categoryTally[fungusCategory[name]]++
		for id := range hosts {
			sharedPlants[id] = true
			plantAgentCounts[id]++
		}
		sharedFungi = append(sharedFungi, explanation.TaxonCount{Name: name, Count: len(hosts)})
	}

	s := float64(len(sharedFungi))
	w := float64(len(sharedPlants))
	var c float64
	if n > 0 {
		c = w / float64(n)
	}

	saturatedS := s / 20.0
	if saturatedS > 1.0 {
		saturatedS = 1.0
	}
	raw := 0.6*saturatedS + 0.4*c

	sort.Slice(sharedFungi, func(i, j int) bool {
		if sharedFungi[i].Count != sharedFungi[j].Count {
			return sharedFungi[i].Count > sharedFungi[j].Count
		}
		return sharedFungi[i].Name < sharedFungi[j].Name
	})
	if len(sharedFungi) > 10 {
		sharedFungi = sharedFungi[:10]
	}

	return guild.MetricResult{
		Raw: raw,
		Fragment: explanation.BeneficialFungiFragment{
			SharedFungiCount: sharedCount,
			PlantCoverage:    c,
			PerCategoryTally: categoryTally,
			TopSharedFungi:   sharedFungi,
			PlantAgentCounts: plantAgentCounts,
		},
	}, nil
}
