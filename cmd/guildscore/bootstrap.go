package main

import (
	"fmt"

	"guildscore/adapters/calibration"
	"guildscore/adapters/calibstore"
	"guildscore/adapters/calibstore/postgres"
	"guildscore/adapters/ecoservices"
	"guildscore/adapters/explanation"
	"guildscore/adapters/formatters"
	"guildscore/adapters/metrics"
	"guildscore/adapters/normalize"
	"guildscore/adapters/phylo"
	"guildscore/adapters/scorer"
	"guildscore/adapters/tabular"
	"guildscore/internal/config"
	"guildscore/internal/rng"
	"guildscore/ports"
)

// app wires every adapter named in the runtime config into the port
// set the CLI commands operate against. It is assembled once per
// invocation; a long-running service would instead build this once
// at startup and reuse it across requests.
type app struct {
	cfg *config.Config

	corpus   *tabular.Corpus
	phylo    ports.PhyloPort
	csr      normalize.CSRGlobal
	metrics  []ports.MetricPort
	scorer   scorer.Scorer
	explain  ports.ExplanationPort
	store    ports.CalibrationStorePort
	pipeline ports.CalibrationPort
}

func newApp(cfg *config.Config) (*app, error) {
	corpus, err := tabular.Load(tabular.Config{
		PlantsPath:    cfg.Data.PlantsPath,
		OrganismsPath: cfg.Data.OrganismsPath,
		FungiPath:     cfg.Data.FungiPath,
		LookupDir:     cfg.Data.LookupDir,
		MultiLookupFiles: map[string]string{
			metrics.LookupHerbivorePredators:       "herbivore_predators.csv",
			metrics.LookupHerbivoreEntomopathogens: "herbivore_entomopathogens.csv",
			metrics.LookupPathogenAntagonists:      "pathogen_antagonists.csv",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load reference corpus: %w", err)
	}

	phyloEngine, err := phylo.Load(cfg.Data.TreePath)
	if err != nil {
		return nil, fmt.Errorf("load phylogenetic tree: %w", err)
	}

	csrGlobal := normalize.BuildCSRGlobal(corpus)
	metricSet := metrics.All(phyloEngine, csrGlobal)

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		corpus:  corpus,
		phylo:   phyloEngine,
		csr:     csrGlobal,
		metrics: metricSet,
		scorer: scorer.Scorer{
			Corpus:         corpus,
			Metrics:        metricSet,
			Normalize:      normalize.New(),
			EcoServices:    ecoservices.Aggregator{},
			RunEcoServices: true,
		},
		explain: explanation.New(),
		store:   store,
		pipeline: calibration.Pipeline{
			Corpus:         corpus,
			RNG:            rng.New(),
			Metrics:        metricSet,
			MaxConcurrency: cfg.Calibration.MaxConcurrency,
		},
	}
	return a, nil
}

// newStore prefers a Postgres-backed calibration store when a DSN is
// configured, falling back to the single-file JSON store spec.md
// requires as the baseline format.
func newStore(cfg *config.Config) (ports.CalibrationStorePort, error) {
	if cfg.Store.PostgresDSN == "" {
		return calibstore.JSONStore{Path: cfg.Calibration.ArtifactPath}, nil
	}
	store, err := postgres.New(cfg.Store.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("connect calibration store: %w", err)
	}
	return store, nil
}

func formatterFor(name string) (ports.FormatterPort, error) {
	switch name {
	case "markdown", "md", "":
		return formatters.Markdown{}, nil
	case "json":
		return formatters.JSON{}, nil
	case "html":
		return formatters.HTML{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want markdown, json, or html)", name)
	}
}
