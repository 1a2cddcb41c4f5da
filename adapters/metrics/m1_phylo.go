// Package metrics implements the seven independent metric kernels
// (M1-M7). Each kernel is a small struct implementing ports.MetricPort
// so the scorer can dispatch a fixed slice of them uniformly, per the
// "variants, not subclasses" design the reference favors.
package metrics

import (
	"guildscore/domain/explanation"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

// PhyloIndependence is M1: higher Faith's PD across the guild implies
// lower shared-pest risk, since closely related plants tend to share
// pests and pathogens.
type PhyloIndependence struct {
	Phylo ports.PhyloPort
}

func (PhyloIndependence) Key() guild.MetricKey { return guild.MetricPhyloIndependence }

func (m PhyloIndependence) Compute(plants []plant.Record, _ ports.CorpusPort) (guild.MetricResult, error) {
	names := make([]string, len(plants))
	for i, p := range plants {
		names[i] = p.Scientific
	}
	pd, err := m.Phylo.PD(names)
	if err != nil {
		return guild.MetricResult{}, err
	}

	return guild.MetricResult{
		Raw: pd,
		Fragment: explanation.PhyloFragment{
			PD:          pd,
			LeavesFound: m.Phylo.Coverage(names),
			LeavesTotal: len(names),
		},
	}, nil
}
