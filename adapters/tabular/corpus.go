package tabular

import (
	"fmt"

	"guildscore/domain/core"
	"guildscore/domain/plant"
)

// Corpus is the in-memory, read-only reference corpus assembled at
// startup. It implements ports.CorpusPort; nothing in the system may
// mutate it after Load returns.
type Corpus struct {
	plants    map[core.PlantID]plant.Record
	organisms map[core.PlantID]plant.OrganismRecord
	fungi     map[core.PlantID]plant.FungiRecord

	single map[string]map[string]string
	multi  map[string]map[string][]string

	tierIndex map[plant.Tier][]string
}

// Config names the paths Load reads from.
type Config struct {
	PlantsPath    string
	OrganismsPath string
	FungiPath     string
	LookupDir     string
	// MultiLookupFiles maps a lookup table name to the file within
	// LookupDir holding its one-to-many entries (the role-matching
	// tables M3/M4 consult); every other file in LookupDir is treated
	// as single-valued.
	MultiLookupFiles map[string]string
}

// Load reads the plants, organisms, fungi, and lookup tables into a
// ready-to-use Corpus.
func Load(cfg Config) (*Corpus, error) {
	plants, err := LoadPlants(cfg.PlantsPath)
	if err != nil {
		return nil, fmt.Errorf("load plants: %w", err)
	}
	organisms, err := LoadOrganisms(cfg.OrganismsPath)
	if err != nil {
		return nil, fmt.Errorf("load organisms: %w", err)
	}
	fungi, err := LoadFungi(cfg.FungiPath)
	if err != nil {
		return nil, fmt.Errorf("load fungi: %w", err)
	}

	c := &Corpus{
		plants:    plants,
		organisms: organisms,
		fungi:     fungi,
		single:    make(map[string]map[string]string),
		multi:     make(map[string]map[string][]string),
		tierIndex: make(map[plant.Tier][]string, len(plant.AllTiers)),
	}

	if cfg.LookupDir != "" {
		multiFiles := make(map[string]bool, len(cfg.MultiLookupFiles))
		for name, file := range cfg.MultiLookupFiles {
			table, err := LoadMultiLookup(fmt.Sprintf("%s/%s", cfg.LookupDir, file))
			if err != nil {
				return nil, fmt.Errorf("load multi-lookup %s: %w", name, err)
			}
			c.multi[name] = table
			multiFiles[file] = true
		}

		singles, err := LoadLookups(cfg.LookupDir)
		if err != nil {
			return nil, fmt.Errorf("load lookups: %w", err)
		}
		for name, table := range singles {
			if _, isMulti := c.multi[name]; isMulti {
				continue
			}
			c.single[name] = table
		}
	}

	for id, p := range plants {
		for _, tier := range plant.AllTiers {
			if p.HasTier(tier) {
				c.tierIndex[tier] = append(c.tierIndex[tier], string(id))
			}
		}
	}

	return c, nil
}

func (c *Corpus) Plant(id string) (plant.Record, bool) {
	p, ok := c.plants[core.PlantID(id)]
	return p, ok
}

func (c *Corpus) Organisms(id string) (plant.OrganismRecord, bool) {
	o, ok := c.organisms[core.PlantID(id)]
	return o, ok
}

func (c *Corpus) Fungi(id string) (plant.FungiRecord, bool) {
	fg, ok := c.fungi[core.PlantID(id)]
	return fg, ok
}

func (c *Corpus) AllPlantIDs() []string {
	out := make([]string, 0, len(c.plants))
	for id := range c.plants {
		out = append(out, string(id))
	}
	return out
}

func (c *Corpus) PlantIDsInTier(t plant.Tier) []string {
	return c.tierIndex[t]
}

func (c *Corpus) Lookup(name string) (map[string]string, bool) {
	t, ok := c.single[name]
	return t, ok
}

func (c *Corpus) MultiLookup(name string) (map[string][]string, bool) {
	t, ok := c.multi[name]
	return t, ok
}
