package metrics

import (
	"math"
	"strings"

	"guildscore/adapters/normalize"
	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

const csrPercentileThreshold = 75.0

// GrowthConflict is M2: classifies each plant on Grime's CSR triangle
// and scores the guild's growth-form conflict density. Lower is
// better; inverted at composition time.
type GrowthConflict struct {
	CSR normalize.CSRGlobal
}

func (GrowthConflict) Key() guild.MetricKey { return guild.MetricGrowthConflict }

func (m GrowthConflict) Compute(plants []plant.Record, _ ports.CorpusPort) (guild.MetricResult, error) {
	n := len(plants)

	var highC, highS, highR []plant.Record
	for _, p := range plants {
		if m.CSR.C.Percentile(p.CSR.C) > csrPercentileThreshold {
			highC = append(highC, p)
		}
		if m.CSR.S.Percentile(p.CSR.S) > csrPercentileThreshold {
			highS = append(highS, p)
		}
		if m.CSR.R.Percentile(p.CSR.R) > csrPercentileThreshold {
			highR = append(highR, p)
		}
	}

	var total float64
	for i := 0; i < len(highC); i++ {
		for j := i + 1; j < len(highC); j++ {
			total += ccConflict(highC[i], highC[j])
		}
	}
	for _, c := range highC {
		for _, s := range highS {
			if c.ID != s.ID {
				total += csConflict(c, s)
			}
		}
	}
	for _, c := range highC {
		for _, r := range highR {
			if c.ID != r.ID {
				total += crConflict(c, r)
			}
		}
	}
	for i := 0; i < len(highR); i++ {
		for j := i + 1; j < len(highR); j++ {
			total += 0.3
		}
	}

	maxPairs := 1.0
	if n > 1 {
		maxPairs = float64(n * (n - 1))
	}
	density := total / maxPairs

	return guild.MetricResult{
		Raw: density,
		Fragment: explanation.ConflictFragment{
			ConflictDensity: density,
			HighC:           idsOf(highC),
			HighS:           idsOf(highS),
			HighR:           idsOf(highR),
		},
	}, nil
}

func idsOf(ps []plant.Record) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p.ID)
	}
	return out
}

func ccConflict(a, b plant.Record) float64 {
	fa, fb := strings.ToLower(a.GrowthForm), strings.ToLower(b.GrowthForm)
	isVine := func(f string) bool { return strings.Contains(f, "vine") || strings.Contains(f, "liana") }
	isTree := func(f string) bool { return strings.Contains(f, "tree") }
	isHerb := func(f string) bool { return strings.Contains(f, "herb") }

	switch {
	case (isVine(fa) && isTree(fb)) || (isVine(fb) && isTree(fa)):
		return 1.0 * 0.2
	case (isTree(fa) && isHerb(fb)) || (isTree(fb) && isHerb(fa)):
		return 1.0 * 0.4
	default:
		diff := math.Abs(a.HeightM - b.HeightM)
		switch {
		case diff < 2.0:
			return 1.0
		case diff < 5.0:
			return 0.6
		default:
			return 0.3
		}
	}
}

func csConflict(c, s plant.Record) float64 {
	sLight := s.LightPreference()
	switch {
	case sLight < 3.2:
		return 0.0
	case sLight > 7.47:
		return 0.9
	default:
		conflict := 0.6
		if math.Abs(c.HeightM-s.HeightM) > 8.0 {
			conflict *= 0.3
		}
		return conflict
	}
}

func crConflict(c, r plant.Record) float64 {
	conflict := 0.8
	if math.Abs(c.HeightM-r.HeightM) > 5.0 {
		conflict *= 0.3
	}
	return conflict
}
