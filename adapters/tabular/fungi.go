package tabular

import (
	"guildscore/domain/core"
	"guildscore/domain/plant"
)

// LoadFungi reads the fungal guild table, keyed by plant id, with the
// same singular/plural and list-vs-delimited-string tolerance as
// LoadOrganisms.
func LoadFungi(path string) (map[core.PlantID]plant.FungiRecord, error) {
	rows, err := readSheet1(path)
	if err != nil {
		return nil, err
	}

	out := make(map[core.PlantID]plant.FungiRecord, len(rows))
	for _, r := range rows {
		id := r.col("plant_wfo_id")
		if id == "" {
			continue
		}
		out[core.PlantID(id)] = plant.FungiRecord{
			PlantID:          core.PlantID(id),
			Arbuscular:       r.list("arbuscular_mycorrhizal", "arbuscular_mycorrhizal_fungi"),
			Ectomycorrhizal:  r.list("ectomycorrhizal", "ectomycorrhizal_fungi"),
			Endophytic:       r.list("endophytic", "endophytic_fungi"),
			Saprotrophic:     r.list("saprotrophic", "saprotrophic_fungi"),
			Mycoparasitic:    r.list("mycoparasitic", "mycoparasitic_fungi"),
			Entomopathogenic: r.list("entomopathogenic_fungi", "entomopathogenic"),
			Pathogenic:       r.list("pathogenic", "pathogenic_fungi"),
		}
	}
	return out, nil
}
