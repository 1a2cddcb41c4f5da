package metrics

import (
	"guildscore/adapters/normalize"
	"guildscore/ports"
)

// Lookup table names the reference corpus stores the M3/M4 pairwise
// interaction tables under.
const (
	LookupHerbivorePredators      = "herbivore_predators"
	LookupHerbivoreEntomopathogens = "herbivore_entomopathogens"
	LookupPathogenAntagonists     = "pathogen_antagonists"
)

// All assembles the seven metric kernels in guild.MetricOrder, wired
// with the phylogenetic engine and global CSR table every scoring and
// calibration run needs. Both the production scorer and the C7
// calibration pipeline build their metric slice this way so a
// calibration sample always exercises the exact kernels a live score
// does.
func All(phylo ports.PhyloPort, csr normalize.CSRGlobal) []ports.MetricPort {
	return []ports.MetricPort{
		PhyloIndependence{Phylo: phylo},
		GrowthConflict{CSR: csr},
		Biocontrol{
			HerbivorePredators:      LookupHerbivorePredators,
			HerbivoreEntomopathogens: LookupHerbivoreEntomopathogens,
		},
		DiseaseSuppression{PathogenAntagonists: LookupPathogenAntagonists},
		BeneficialFungi{},
		StructuralDiversity{},
		PollinatorSupport{},
	}
}

// PairwiseKeys names the MetricKeys whose raw formula is
// density-normalized over plant pairs, and so is meaningfully
// calibrated from small, cheap guild-size-2 samples (stage-1 pair
// calibration). The remaining metrics need the fuller guild context
// (phylogenetic coverage, stratification, shared pollinator/fungal
// breadth) and are calibrated from guild-size-7 samples (stage-2
// guild calibration); every other key in guild.MetricOrder
// samples; every other key in guild.MetricOrder is calibrated from
// stage-2 (full guild) samples. See adapters/calibration.Pipeline.
var PairwiseKeys = map[string]bool{
	"conflict":            true,
	"biocontrol":          true,
	"pathogen_control":    true,
}
