// Package scorer implements the parallel guild scorer (C6): it
// resolves a raw scoring request against the reference corpus, checks
// climate compatibility, fans the seven metric kernels out
// concurrently, and composes their results into a fixed-order display
// vector so the result is identical regardless of which kernel
// finishes first.
package scorer

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"guildscore/domain/calibration"
	"guildscore/domain/core"
	"guildscore/domain/guild"
	"guildscore/domain/plant"
	"guildscore/ports"
)

// Scorer implements ports.ScorerPort.
type Scorer struct {
	Corpus     ports.CorpusPort
	Metrics    []ports.MetricPort
	Normalize  ports.NormalizePort
	EcoServices ports.EcoServicesPort
	// RunEcoServices controls whether C5 runs alongside the metric
	// fan-out; callers sampling for calibration set this false.
	RunEcoServices bool
}

// Resolve turns a raw plant id list into a guild: every id must exist
// in the reference corpus, and the plants' climate-tier flags must
// share at least one tier.
func Resolve(req guild.Request, corpus ports.CorpusPort) (guild.Guild, error) {
	plants := make([]plant.Record, 0, len(req.PlantIDs))
	for _, id := range req.PlantIDs {
		p, ok := corpus.Plant(id)
		if !ok {
			return guild.Guild{}, core.NewMissingPlantError(id)
		}
		plants = append(plants, p)
	}

	tier, ok := sharedTier(plants)
	if !ok {
		return guild.Guild{}, core.ErrNoClimateOverlap
	}

	return guild.Guild{ID: core.NewGuildID(), Plants: plants, Tier: tier}, nil
}

func sharedTier(plants []plant.Record) (plant.Tier, bool) {
	if len(plants) == 0 {
		return "", false
	}
	for _, t := range plant.AllTiers {
		shared := true
		for _, p := range plants {
			if !p.HasTier(t) {
				shared = false
				break
			}
		}
		if shared {
			return t, true
		}
	}
	return "", false
}

// RawScores fans the given metric kernels out concurrently over a
// plant set and collects their raw values and diagnostic fragments
// keyed by MetricKey. Both the production scorer and the calibration
// sampler (adapters/calibration) share this path so a calibration run
// exercises exactly the same kernel code a live score does.
func RawScores(plants []plant.Record, corpus ports.CorpusPort, metrics []ports.MetricPort) (map[guild.MetricKey]float64, map[guild.MetricKey]interface{}, error) {
	var mu sync.Mutex
	raw := make(map[guild.MetricKey]float64, len(metrics))
	fragments := make(map[guild.MetricKey]interface{}, len(metrics))

	var eg errgroup.Group
	for _, m := range metrics {
		m := m
		eg.Go(func() error {
			result, err := m.Compute(plants, corpus)
			if err != nil {
				return core.NewMetricInternalError(string(m.Key()), err)
			}
			mu.Lock()
			raw[m.Key()] = result.Raw
			if result.Fragment != nil {
				fragments[m.Key()] = result.Fragment
			}
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return raw, fragments, nil
}

// Score implements ports.ScorerPort. Metric kernels run concurrently;
// their results are written into a raw-value map keyed by MetricKey,
// then reduced into the display vector by iterating guild.MetricOrder
// so the composed result never depends on completion order.
func (s Scorer) Score(g guild.Guild, artifact calibration.Artifact) (guild.Score, error) {
	table, hasTier := artifact.Tiers[g.Tier]
	if !hasTier {
		return guild.Score{}, core.NewInsufficientCalibrationError(string(g.Tier))
	}

	raw, fragments, err := RawScores(g.Plants, s.Corpus, s.Metrics)
	if err != nil {
		return guild.Score{}, err
	}

	display := make(map[guild.MetricKey]float64, len(guild.MetricOrder))
	var sum float64
	for _, key := range guild.MetricOrder {
		rawVal := raw[key]
		normalized, err := s.Normalize.Normalize(table, key, rawVal)
		if err != nil {
			return guild.Score{}, err
		}
		value := normalized
		if guild.Inverted[key] {
			value = 100 - normalized
		}
		display[key] = value
		sum += value
	}

	score := guild.Score{
		GuildID:   g.ID,
		Tier:      g.Tier,
		Raw:       raw,
		Display:   display,
		Overall:   sum / float64(len(guild.MetricOrder)),
		Fragments: fragments,
	}

	if s.RunEcoServices && s.EcoServices != nil {
		composite := s.EcoServices.Aggregate(g.Plants)
		score.EcosystemScore = &composite
	}

	return score, nil
}
