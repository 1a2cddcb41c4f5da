package explanation

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

const topTaxaLimit = 5

// networkProfileFor builds the network-hub summary for the four
// network-shaped metrics (biocontrol, disease suppression, beneficial
// fungi, pollinator support); the other three metrics have no network
// shape and return nil.
func networkProfileFor(key guild.MetricKey, frag interface{}, plants []plant.Record) *explanation.NetworkProfile {
	switch key {
	case guild.MetricBiocontrol:
		f := frag.(explanation.BiocontrolFragment)
		merged := mergeCoverage(f.PredatorCoverage, f.EntomopathogenCoverage)
		return buildProfile(key, merged, f.PlantAgentCounts, plants)
	case guild.MetricDiseaseSuppression:
		f := frag.(explanation.DiseaseSuppressionFragment)
		merged := mergeCoverage(f.MycoparasiteCoverage, f.FungivoreCoverage)
		return buildProfile(key, merged, f.PlantAgentCounts, plants)
	case guild.MetricBeneficialFungi:
		f := frag.(explanation.BeneficialFungiFragment)
		coverage := map[string]int{}
		for _, t := range f.TopSharedFungi {
			coverage[t.Name] = t.Count
		}
		return buildProfile(key, coverage, f.PlantAgentCounts, plants)
	case guild.MetricPollinatorSupport:
		f := frag.(explanation.PollinatorFragment)
		return buildProfile(key, f.PollinatorCoverage, pollinatorPlantTotals(f.CategoryBreakdown), plants)
	default:
		return nil
	}
}

func mergeCoverage(maps ...map[string]int) map[string]int {
	out := map[string]int{}
	for _, m := range maps {
		for k, v := range m {
			out[k] += v
		}
	}
	return out
}

func pollinatorPlantTotals(breakdown map[string]map[string]int) map[string]int {
	out := make(map[string]int, len(breakdown))
	for plantID, byCategory := range breakdown {
		total := 0
		for _, n := range byCategory {
			total += n
		}
		out[plantID] = total
	}
	return out
}

func buildProfile(key guild.MetricKey, coverage map[string]int, plantAgentCounts map[string]int, plants []plant.Record) *explanation.NetworkProfile {
	if len(coverage) == 0 && len(plantAgentCounts) == 0 {
		return nil
	}
	return &explanation.NetworkProfile{
		Metric:    key,
		TopTaxa:   topTaxa(coverage),
		HubPlants: hubPlants(plantAgentCounts, plants),
	}
}

func topTaxa(coverage map[string]int) []explanation.TaxonCount {
	out := make([]explanation.TaxonCount, 0, len(coverage))
	for name, count := range coverage {
		out = append(out, explanation.TaxonCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topTaxaLimit {
		out = out[:topTaxaLimit]
	}
	return out
}

// hubPlants flags plants whose agent count sits more than one standard
// deviation above the guild mean, per SPEC_FULL.md's hub-detection
// heuristic (grounded in the original's network-analysis modules).
func hubPlants(plantAgentCounts map[string]int, plants []plant.Record) []explanation.HubPlant {
	if len(plantAgentCounts) < 2 {
		return nil
	}
	values := make([]float64, 0, len(plantAgentCounts))
	for _, c := range plantAgentCounts {
		values = append(values, float64(c))
	}
	mean, stdDev := stat.MeanStdDev(values, nil)
	if stdDev == 0 {
		return nil
	}
	threshold := mean + stdDev

	scientific := make(map[string]string, len(plants))
	for _, p := range plants {
		scientific[string(p.ID)] = p.Scientific
	}

	var hubs []explanation.HubPlant
	for id, count := range plantAgentCounts {
		if float64(count) > threshold {
			hubs = append(hubs, explanation.HubPlant{PlantID: id, Scientific: scientific[id], Connections: count})
		}
	}
	sort.Slice(hubs, func(i, j int) bool {
		if hubs[i].Connections != hubs[j].Connections {
			return hubs[i].Connections > hubs[j].Connections
		}
		return hubs[i].PlantID < hubs[j].PlantID
	})
	return hubs
}
