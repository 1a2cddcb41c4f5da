package metrics

import (
	"guildscore/domain/plant"
)

// fakeCorpus is a minimal in-memory ports.CorpusPort for metric kernel
// tests; only the methods metrics actually call are exercised.
type fakeCorpus struct {
	organisms map[string]plant.OrganismRecord
	fungi     map[string]plant.FungiRecord
	lookups   map[string]map[string]string
	multi     map[string]map[string][]string
}

func newFakeCorpus() *fakeCorpus {
	return &fakeCorpus{
		organisms: map[string]plant.OrganismRecord{},
		fungi:     map[string]plant.FungiRecord{},
		lookups:   map[string]map[string]string{},
		multi:     map[string]map[string][]string{},
	}
}

func (f *fakeCorpus) Plant(id string) (plant.Record, bool) { return plant.Record{}, false }

func (f *fakeCorpus) Organisms(id string) (plant.OrganismRecord, bool) {
	o, ok := f.organisms[id]
	return o, ok
}

func (f *fakeCorpus) Fungi(id string) (plant.FungiRecord, bool) {
	fg, ok := f.fungi[id]
	return fg, ok
}

func (f *fakeCorpus) AllPlantIDs() []string { return nil }

func (f *fakeCorpus) PlantIDsInTier(t plant.Tier) []string { return nil }

func (f *fakeCorpus) Lookup(name string) (map[string]string, bool) {
	l, ok := f.lookups[name]
	return l, ok
}

func (f *fakeCorpus) MultiLookup(name string) (map[string][]string, bool) {
	m, ok := f.multi[name]
	return m, ok
}
