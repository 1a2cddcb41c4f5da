package normalize

import (
	"sort"

	"guildscore/domain/calibration"
	"guildscore/ports"
)

// CSRTable is the global (non-tier-stratified) percentile table for a
// single CSR component, used by M2 to classify a plant as high-C,
// high-S, or high-R.
type CSRTable struct {
	Percentiles map[float64]float64 // anchor -> raw value at that percentile
}

// Percentile converts a raw CSR component value to its percentile via
// the same interpolation C9 uses for tier metrics.
func (t CSRTable) Percentile(raw float64) float64 {
	return interpolate(t.Percentiles, raw)
}

// CSRGlobal holds the three independent global CSR percentile tables.
type CSRGlobal struct {
	C, S, R CSRTable
}

// BuildCSRGlobal derives the three global CSR percentile tables
// directly from every plant in the reference corpus: unlike the
// tier-stratified metric tables, CSR classification is global, so it
// is built once at startup from the whole population rather than
// through the C7 random-sampling pipeline.
func BuildCSRGlobal(corpus ports.CorpusPort) CSRGlobal {
	var c, s, r []float64
	for _, id := range corpus.AllPlantIDs() {
		p, ok := corpus.Plant(id)
		if !ok {
			continue
		}
		c = append(c, p.CSR.C)
		s = append(s, p.CSR.S)
		r = append(r, p.CSR.R)
	}
	return CSRGlobal{C: BuildCSRTable(c), S: BuildCSRTable(s), R: BuildCSRTable(r)}
}

// BuildCSRTable derives a CSR component's percentile table from a
// sample of raw values, using the same positional rule C7 uses for
// metric tables: index = round(p/100 * (n-1)).
func BuildCSRTable(samples []float64) CSRTable {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	out := CSRTable{Percentiles: make(map[float64]float64, len(calibration.Anchors))}
	if len(sorted) == 0 {
		for _, a := range calibration.Anchors {
			out.Percentiles[a] = 50
		}
		return out
	}
	for _, p := range calibration.Anchors {
		out.Percentiles[p] = sorted[calibration.PercentileIndex(p, len(sorted))]
	}
	return out
}
