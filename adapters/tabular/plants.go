package tabular

import (
	"strconv"
	"strings"

	"guildscore/domain/core"
	"guildscore/domain/plant"
)

// tierColumns maps each of the six tier flags to its source column
// name.
var tierColumns = map[plant.Tier]string{
	plant.TierTropical:       "tier_1_tropical",
	plant.TierMediterranean:  "tier_2_mediterranean",
	plant.TierHumidTemperate: "tier_3_humid_temperate",
	plant.TierContinental:    "tier_4_continental",
	plant.TierBorealPolar:    "tier_5_boreal_polar",
	plant.TierArid:           "tier_6_arid",
}

// serviceColumns maps each ecosystem-service key to its source column.
var serviceColumns = map[plant.EcosystemServiceKey]string{
	plant.ServiceNitrogenFixation:     "service_nitrogen_fixation",
	plant.ServicePollination:          "service_pollination",
	plant.ServicePestRegulation:       "service_pest_regulation",
	plant.ServiceErosionControl:       "service_erosion_control",
	plant.ServiceCarbonSequestration:  "service_carbon_sequestration",
	plant.ServiceWaterRegulation:      "service_water_regulation",
	plant.ServiceSoilFormation:        "service_soil_formation",
	plant.ServiceWildlifeHabitat:      "service_wildlife_habitat",
	plant.ServiceAestheticValue:       "service_aesthetic_value",
	plant.ServiceNutrientLoss:         "service_nutrient_loss",
}

// LoadPlants reads the plants table into a map keyed by plant id.
func LoadPlants(path string) (map[core.PlantID]plant.Record, error) {
	rows, err := readSheet1(path)
	if err != nil {
		return nil, err
	}

	out := make(map[core.PlantID]plant.Record, len(rows))
	for _, r := range rows {
		id := r.col("wfo_taxon_id")
		if id == "" {
			continue
		}
		rec := plant.Record{
			ID:          core.PlantID(id),
			Scientific:  r.col("wfo_scientific_name"),
			Family:      r.col("family"),
			Genus:       r.col("genus"),
			GrowthForm:  r.col("try_growth_form"),
			Woodiness:   r.col("try_woodiness"),
			Phenology:   r.col("try_leaf_phenology"),
			HeightM:     f(r, "height_m"),
			LeafArea:    f(r, "LA"),
			LogSeedMass: f(r, "logSM"),
			CSR: plant.CSR{
				C: f(r, "CSR_C"),
				S: f(r, "CSR_S"),
				R: f(r, "CSR_R"),
			},
			L: firstFloat(r, "L_complete", "EIVEres_L", "L"),
			M: firstFloat(r, "M_complete", "EIVEres_M", "M"),
			T: firstFloat(r, "T_complete", "EIVEres_T", "T"),
			R: firstFloat(r, "R_complete", "EIVEres_R", "R"),
			N: firstFloat(r, "N_complete", "EIVEres_N", "N"),

			Tiers:             make(map[plant.Tier]bool, len(tierColumns)),
			EcosystemServices: make(map[plant.EcosystemServiceKey]plant.EcosystemServiceRating, len(serviceColumns)),
		}
		for tier, col := range tierColumns {
			rec.Tiers[tier] = isTruthy(r.col(col))
		}
		for key, col := range serviceColumns {
			if v := r.col(col); v != "" {
				rec.EcosystemServices[key] = plant.EcosystemServiceRating(v)
			}
		}
		if names := r.list("vernacular_names", "vernacular_name"); len(names) > 0 {
			rec.VernacularNames = names
		}
		out[rec.ID] = rec
	}
	return out, nil
}

func f(r rawRow, name string) float64 {
	v, _ := strconv.ParseFloat(r.col(name), 64)
	return v
}

// firstFloat tries each candidate column in order, returning the
// first one present, honoring the "_complete" override precedence
// described for the light/EIVE indicator columns.
func firstFloat(r rawRow, names ...string) float64 {
	for _, n := range names {
		if v := r.col(n); v != "" {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "t":
		return true
	default:
		return false
	}
}
