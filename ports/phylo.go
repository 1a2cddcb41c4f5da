package ports

// PhyloPort computes Faith's Phylogenetic Diversity over the loaded
// rooted tree for an arbitrary subset of taxon names.
type PhyloPort interface {
	// PD returns the total branch length spanning the minimal subtree
	// connecting names to their most recent common ancestor; branches
	// above that ancestor are not counted. Names absent from the tree are
	// ignored; PD of fewer than two resolvable names is 0.
	PD(names []string) (float64, error)

	// Coverage reports how many of names resolve to a known leaf, so
	// callers can detect and surface coverage gaps.
	Coverage(names []string) int
}
