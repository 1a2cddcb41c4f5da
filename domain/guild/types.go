// Package guild holds the types describing a scoring request and its
// resulting score vector.
package guild

import (
	"guildscore/domain/core"
	"guildscore/domain/plant"
)

// MetricKey names one of the seven independent metric kernels.
type MetricKey string

const (
	MetricPhyloIndependence MetricKey = "phylo_pd"
	MetricGrowthConflict    MetricKey = "conflict"
	MetricBiocontrol        MetricKey = "biocontrol"
	MetricDiseaseSuppression MetricKey = "pathogen_control"
	MetricBeneficialFungi   MetricKey = "beneficial_fungi"
	MetricStructuralDiversity MetricKey = "stratification"
	MetricPollinatorSupport MetricKey = "pollinator"
)

// MetricOrder is the fixed, stable index order every score vector
// uses, regardless of which goroutine finished first.
var MetricOrder = []MetricKey{
	MetricPhyloIndependence,
	MetricGrowthConflict,
	MetricBiocontrol,
	MetricDiseaseSuppression,
	MetricBeneficialFungi,
	MetricStructuralDiversity,
	MetricPollinatorSupport,
}

// Inverted marks the metrics whose raw value runs "lower is better",
// so the display transform 100-normalized applies only to these. M1
// (phylogenetic independence) is higher-is-better — high Faith's PD
// means low shared-pest risk — so its display score is the normalized
// percentile directly; only M2 (growth conflict) needs the flip.
var Inverted = map[MetricKey]bool{
	MetricGrowthConflict: true,
}

// LegacyAlias maps the reference corpus's historical metric short
// codes onto the canonical keys above. Resolved once when a
// calibration table is loaded.
var LegacyAlias = map[string]MetricKey{
	"m1": MetricPhyloIndependence,
	"n4": MetricGrowthConflict,
	"p1": MetricBiocontrol,
	"p2": MetricDiseaseSuppression,
	"p3": MetricBeneficialFungi,
	"p5": MetricStructuralDiversity,
	"p6": MetricPollinatorSupport,
	// p4 has no canonical home in the per-metric vector; the legacy
	// corpus reserved it for a retired metric.
}

// Request is an incoming scoring request: a set of plant ids to be
// evaluated together as a guild.
type Request struct {
	ID       core.GuildID
	PlantIDs []string
}

// Guild is a request resolved against the reference corpus: every
// plant id has been looked up and the shared climate tier computed.
type Guild struct {
	ID     core.GuildID
	Plants []plant.Record
	Tier   plant.Tier
}

// Hash fingerprints the guild's plant membership, independent of
// input order.
func (g Guild) Hash() core.Hash {
	ids := make([]string, len(g.Plants))
	for i, p := range g.Plants {
		ids[i] = string(p.ID)
	}
	return core.ComputeGuildHash(ids)
}

// MetricResult is one metric kernel's output: its raw value plus an
// opaque diagnostic fragment for the explanation generator. Kernels
// fill in Fragment on every call; calibration sampling discards it and
// keeps only Raw.
type MetricResult struct {
	Raw      float64
	Fragment interface{}
}

// RawScores holds one un-normalized value per metric, indexed by the
// fixed MetricOrder, produced either during live scoring or while
// sampling for calibration.
type RawScores struct {
	Values map[MetricKey]float64
}

// Score is the fully composed result of scoring one guild: per-metric
// display values (0-100, direction already applied), their overall
// mean, and the optional ecosystem-service composite.
type Score struct {
	GuildID        core.GuildID
	Tier           plant.Tier
	Raw            map[MetricKey]float64
	Display        map[MetricKey]float64 // 0-100, direction-corrected
	Overall        float64                // mean of Display
	EcosystemScore *EcosystemComposite
	// Fragments carries each metric's opaque diagnostic payload,
	// keyed by MetricKey, for the explanation generator. Nil during
	// calibration sampling, where only Raw is collected.
	Fragments map[MetricKey]interface{}
}

// EcosystemComposite is the C5 aggregate over the ten categorical
// ecosystem-service ratings.
type EcosystemComposite struct {
	PerService map[plant.EcosystemServiceKey]float64 // community mean ordinal, pre-round
	Overall    float64
	OverallRating plant.EcosystemServiceRating
}
