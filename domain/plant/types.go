// Package plant holds the typed, per-request-immutable records that
// make up the reference corpus: plant traits, organism interactions,
// and fungal guilds. These are the typed views the design notes call
// for in place of the source's dynamic column lookups — every
// component downstream consumes these structs, never raw column
// names.
package plant

import "guildscore/domain/core"

// Tier is one of the six Köppen-derived climate groupings used to
// stratify calibration and to gate guild compatibility.
type Tier string

const (
	TierTropical      Tier = "tropical"
	TierMediterranean Tier = "mediterranean"
	TierHumidTemperate Tier = "humid_temperate"
	TierContinental   Tier = "continental"
	TierBorealPolar   Tier = "boreal_polar"
	TierArid          Tier = "arid"
)

// AllTiers lists the six tiers in their canonical, stable order.
var AllTiers = []Tier{
	TierTropical,
	TierMediterranean,
	TierHumidTemperate,
	TierContinental,
	TierBorealPolar,
	TierArid,
}

// CSR is Grime's competitive/stress-tolerant/ruderal life-history
// triple, each component on a 0-100 scale, summing to roughly 100.
type CSR struct {
	C float64
	S float64
	R float64
}

// EcosystemServiceRating is one of the ten categorical ecosystem
// service ratings, mapped to an ordinal 1-5 scale for aggregation.
type EcosystemServiceRating string

const (
	RatingVeryLow  EcosystemServiceRating = "Very Low"
	RatingLow      EcosystemServiceRating = "Low"
	RatingModerate EcosystemServiceRating = "Moderate"
	RatingHigh     EcosystemServiceRating = "High"
	RatingVeryHigh EcosystemServiceRating = "Very High"
)

var ratingOrdinal = map[EcosystemServiceRating]int{
	RatingVeryLow:  1,
	RatingLow:      2,
	RatingModerate: 3,
	RatingHigh:     4,
	RatingVeryHigh: 5,
}

var ordinalRating = map[int]EcosystemServiceRating{
	1: RatingVeryLow,
	2: RatingLow,
	3: RatingModerate,
	4: RatingHigh,
	5: RatingVeryHigh,
}

// Ordinal returns the 1-5 ordinal value of a rating, or 0 if unknown.
func (r EcosystemServiceRating) Ordinal() int { return ratingOrdinal[r] }

// RatingFromOrdinal maps a rounded 1-5 ordinal back to a categorical rating.
func RatingFromOrdinal(v int) EcosystemServiceRating {
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return ordinalRating[v]
}

// EcosystemServiceKey names one of the ten pre-computed ecosystem
// service ratings carried by each plant record.
type EcosystemServiceKey string

const (
	ServiceNitrogenFixation  EcosystemServiceKey = "nitrogen_fixation"
	ServicePollination       EcosystemServiceKey = "pollination"
	ServicePestRegulation    EcosystemServiceKey = "pest_regulation"
	ServiceErosionControl    EcosystemServiceKey = "erosion_control"
	ServiceCarbonSequestration EcosystemServiceKey = "carbon_sequestration"
	ServiceWaterRegulation   EcosystemServiceKey = "water_regulation"
	ServiceSoilFormation     EcosystemServiceKey = "soil_formation"
	ServiceWildlifeHabitat   EcosystemServiceKey = "wildlife_habitat"
	ServiceAestheticValue    EcosystemServiceKey = "aesthetic_value"
	// ServiceNutrientLoss is the one rating where lower is interpreted
	// as better; it is still averaged on the same 1-5 scale as the rest.
	ServiceNutrientLoss EcosystemServiceKey = "nutrient_loss"
)

// AllEcosystemServices lists the ten rating keys in a stable order.
var AllEcosystemServices = []EcosystemServiceKey{
	ServiceNitrogenFixation, ServicePollination, ServicePestRegulation,
	ServiceErosionControl, ServiceCarbonSequestration, ServiceWaterRegulation,
	ServiceSoilFormation, ServiceWildlifeHabitat, ServiceAestheticValue,
	ServiceNutrientLoss,
}

// InvertedServices are interpreted as "lower is better" for display,
// though they are still averaged arithmetically on the 1-5 scale.
var InvertedServices = map[EcosystemServiceKey]bool{
	ServiceNutrientLoss: true,
}

// Record is a single plant's typed reference-corpus row.
type Record struct {
	ID         core.PlantID
	Scientific string
	Family     string
	Genus      string
	GrowthForm string
	Woodiness  string
	Phenology  string
	HeightM    float64
	LeafArea   float64
	LogSeedMass float64
	CSR        CSR

	// EIVE indicator values (1-10 ordinal). "_complete" overrides, when
	// present in the source, have already been applied at ingestion.
	L, M, T, R, N float64

	Tiers map[Tier]bool

	EcosystemServices map[EcosystemServiceKey]EcosystemServiceRating

	VernacularNames []string
}

// HasTier reports whether the plant is flagged as native to tier t.
func (r Record) HasTier(t Tier) bool { return r.Tiers[t] }

// LightPreference resolves the light-preference value under the
// several possible source column names, following the precedence the
// ingestion layer establishes (L over any alias); the plant's L field
// is always the resolved value by the time it reaches a metric.
func (r Record) LightPreference() float64 { return r.L }

// OrganismRecord lists the organism roles observed interacting with
// one plant. Every field is a canonicalized list of opaque taxon
// names; the source's list-vs-delimited-string duality and
// singular/plural column variants are resolved before this struct is
// constructed (see adapters/tabular).
type OrganismRecord struct {
	PlantID core.PlantID

	Herbivores      []string
	FlowerVisitors  []string
	PredatorsHasHost        []string
	PredatorsInteractsWith  []string
	PredatorsAdjacentTo     []string
	Fungivores      []string
	Pollinators     []string
	Other           []string
}

// AllPredators returns the union of flower visitors and the three
// predator relationship columns: flower-visiting insects are themselves
// frequently predatory, so M3 treats them as part of the same
// protective pool regardless of which relationship kind connected them
// to a herbivore.
func (o OrganismRecord) AllPredators() []string {
	out := make([]string, 0, len(o.FlowerVisitors)+len(o.PredatorsHasHost)+len(o.PredatorsInteractsWith)+len(o.PredatorsAdjacentTo))
	out = append(out, o.FlowerVisitors...)
	out = append(out, o.PredatorsHasHost...)
	out = append(out, o.PredatorsInteractsWith...)
	out = append(out, o.PredatorsAdjacentTo...)
	return out
}

// FungiRecord lists the fungal guild roles observed on one plant.
type FungiRecord struct {
	PlantID core.PlantID

	Arbuscular     []string // arbuscular mycorrhizal
	Ectomycorrhizal []string
	Endophytic     []string
	Saprotrophic   []string
	Mycoparasitic  []string
	Entomopathogenic []string
	Pathogenic     []string
}
