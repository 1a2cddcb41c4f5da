package tabular

import (
	"guildscore/domain/core"
	"guildscore/domain/plant"
)

// LoadOrganisms reads the organism interaction table, keyed by plant
// id. Every role column is accepted under both its singular and
// plural source variants (the corpus is inconsistent about which it
// uses) and canonicalized to a list regardless of whether the source
// cell held a delimited string or an already-split nested list.
func LoadOrganisms(path string) (map[core.PlantID]plant.OrganismRecord, error) {
	rows, err := readSheet1(path)
	if err != nil {
		return nil, err
	}

	out := make(map[core.PlantID]plant.OrganismRecord, len(rows))
	for _, r := range rows {
		id := r.col("plant_wfo_id")
		if id == "" {
			continue
		}
		out[core.PlantID(id)] = plant.OrganismRecord{
			PlantID:                core.PlantID(id),
			Herbivores:             r.list("herbivores", "herbivore"),
			FlowerVisitors:         r.list("flower_visitors", "flower_visitor"),
			PredatorsHasHost:       r.list("predators_hasHost", "predator_hasHost"),
			PredatorsInteractsWith: r.list("predators_interactsWith", "predator_interactsWith"),
			PredatorsAdjacentTo:    r.list("predators_adjacentTo", "predator_adjacentTo"),
			Fungivores:             r.list("fungivores", "fungivore"),
			Pollinators:            r.list("pollinators", "pollinator"),
			Other:                  r.list("other", "other_roles"),
		}
	}
	return out, nil
}
