package ports

import (
	"guildscore/domain/guild"
	"guildscore/domain/plant"
)

// MetricPort computes one raw metric value for a resolved guild. Each
// of the seven kernels (M1-M7) implements this interface so the
// scorer can fan them out uniformly. The returned fragment is opaque
// to the scorer and carries whatever diagnostic data the explanation
// generator needs for that specific metric (matched pairs, hub
// counts, and the like); it holds no reference back into shared
// corpus state so it can outlive the scoring request.
type MetricPort interface {
	Key() guild.MetricKey
	Compute(plants []plant.Record, corpus CorpusPort) (guild.MetricResult, error)
}

// EcoServicesPort aggregates the ten categorical ecosystem-service
// ratings carried on each plant record into a community composite.
type EcoServicesPort interface {
	Aggregate(plants []plant.Record) guild.EcosystemComposite
}
