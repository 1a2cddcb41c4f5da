// Package ecoservices implements the community-weighted aggregation
// of the ten categorical ecosystem-service ratings carried on each
// plant record.
package ecoservices

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

// Aggregator implements ports.EcoServicesPort.
type Aggregator struct{}

func (Aggregator) Aggregate(plants []plant.Record) guild.EcosystemComposite {
	perService := make(map[plant.EcosystemServiceKey]float64, len(plant.AllEcosystemServices))

	var means []float64

	for _, key := range plant.AllEcosystemServices {
		var ordinals []float64
		for _, p := range plants {
			rating, ok := p.EcosystemServices[key]
			if !ok {
				continue
			}
			ordinal := rating.Ordinal()
			if ordinal == 0 {
				continue
			}
			ordinals = append(ordinals, float64(ordinal))
		}
		if len(ordinals) == 0 {
			continue
		}
		mean := stat.Mean(ordinals, nil)
		perService[key] = mean
		means = append(means, mean)
	}

	var overall float64
	if len(means) > 0 {
		overall = stat.Mean(means, nil)
	}

	return guild.EcosystemComposite{
		PerService:    perService,
		Overall:       overall,
		OverallRating: plant.RatingFromOrdinal(int(math.Round(overall))),
	}
}
