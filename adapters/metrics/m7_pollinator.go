package metrics

import (
	"strings"

	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

const pollinatorGenusCategoryTable = "pollinator_genus_category"

// categoryPattern is one substring rule in the ordered fallback list
// used when a pollinator name has no genus-table entry. Order matters:
// more specific terms (hoverfly) must be checked before broader ones
// (fly).
type categoryPattern struct {
	substr   string
	category string
}

var pollinatorPatterns = []categoryPattern{
	{"bumblebee", "Bumblebees"},
	{"bombus", "Bumblebees"},
	{"honeybee", "HoneyBees"},
	{"honey bee", "HoneyBees"},
	{"apis", "HoneyBees"},
	{"solitary bee", "SolitaryBees"},
	{"mason bee", "SolitaryBees"},
	{"beetle", "Beetles"},
	{"bee", "SolitaryBees"},
	{"hoverfly", "Hoverflies"},
	{"hover fly", "Hoverflies"},
	{"syrphid", "Hoverflies"},
	{"butterfly", "Butterflies"},
	{"moth", "Moths"},
	{"wasp", "Wasps"},
	{"fly", "Flies"},
	{"bird", "Birds"},
	{"hummingbird", "Birds"},
	{"bat", "Bats"},
}

func categorize(name string, genusCategory map[string]string) string {
	genus := strings.SplitN(name, " ", 2)[0]
	if cat, ok := genusCategory[genus]; ok && cat != "" {
		return cat
	}
	lower := strings.ToLower(name)
	for _, pat := range pollinatorPatterns {
		if strings.Contains(lower, pat.substr) {
			return pat.category
		}
	}
	return "Other"
}

// PollinatorSupport is M7: rewards guilds whose plants share
// pollinators, since a broader shared pollinator base sustains
// visitation across bloom gaps.
type PollinatorSupport struct{}

func (PollinatorSupport) Key() guild.MetricKey { return guild.MetricPollinatorSupport }

func (PollinatorSupport) Compute(plants []plant.Record, corpus ports.CorpusPort) (guild.MetricResult, error) {
	n := len(plants)

	genusCategory, _ := corpus.Lookup(pollinatorGenusCategoryTable)

	pollinatorPlants := map[string]map[string]bool{}
	categoryBreakdown := map[string]map[string]int{}

	for _, p := range plants {
		o, ok := corpus.Organisms(string(p.ID))
		if !ok {
			continue
		}
		plantID := string(p.ID)
		breakdown := map[string]int{}
		seen := map[string]bool{}
		for _, name := range o.Pollinators {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			if pollinatorPlants[name] == nil {
				pollinatorPlants[name] = map[string]bool{}
			}
			pollinatorPlants[name][plantID] = true
			breakdown[categorize(name, genusCategory)]++
		}
		if len(breakdown) > 0 {
			categoryBreakdown[plantID] = breakdown
		}
	}

	coverage := map[string]int{}
	sharedCount := 0
	for name, hosts := range pollinatorPlants {
		coverage[name] = len(hosts)
		if len(hosts) >= 2 {
			sharedCount++
		}
	}

	s := float64(sharedCount)
	var raw float64
	if n > 0 {
		ratio := s / float64(n)
		if ratio > 1.0 {
			ratio = 1.0
		}
		raw = ratio * ratio * 10.0
	}

	return guild.MetricResult{
		Raw: raw,
		Fragment: explanation.PollinatorFragment{
			PollinatorCoverage: coverage,
			CategoryBreakdown:  categoryBreakdown,
		},
	}, nil
}
