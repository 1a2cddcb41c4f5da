package ecoservices

import (
	"testing"

	"guildscore/domain/plant"
)

func TestAggregateRoundsToNearestCategoricalRating(t *testing.T) {
	plants := []plant.Record{
		{EcosystemServices: map[plant.EcosystemServiceKey]plant.EcosystemServiceRating{
			plant.ServicePollination: plant.RatingHigh, // 4
		}},
		{EcosystemServices: map[plant.EcosystemServiceKey]plant.EcosystemServiceRating{
			plant.ServicePollination: plant.RatingVeryHigh, // 5
		}},
	}

	composite := Aggregator{}.Aggregate(plants)

	mean := composite.PerService[plant.ServicePollination]
	if mean != 4.5 {
		t.Errorf("expected pre-round mean 4.5, got %v", mean)
	}
	if composite.OverallRating != plant.RatingVeryHigh {
		t.Errorf("expected overall rating rounded to Very High, got %v", composite.OverallRating)
	}
}

func TestAggregateSkipsUnratedPlants(t *testing.T) {
	plants := []plant.Record{
		{EcosystemServices: map[plant.EcosystemServiceKey]plant.EcosystemServiceRating{}},
	}
	composite := Aggregator{}.Aggregate(plants)
	if len(composite.PerService) != 0 {
		t.Errorf("expected no per-service entries when no plant carries the rating, got %v", composite.PerService)
	}
}
