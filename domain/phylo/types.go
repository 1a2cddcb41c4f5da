// Package phylo holds the domain-level description of the rooted
// phylogenetic tree used to compute Faith's Phylogenetic Diversity.
// The tree itself is loaded and walked by adapters/phylo; this
// package only defines the shape callers reason about.
package phylo

// NodeID is an index into a Tree's flat node arrays.
type NodeID int32

// Tree is a rooted tree stored as parent-pointer arrays: Parent[i] is
// the index of node i's parent, BranchLength[i] is the length of the
// edge above node i, and Leaf maps a plant's scientific/taxon name to
// its leaf node index. The root has Parent[root] == root.
type Tree struct {
	Parent       []NodeID
	BranchLength []float64
	Leaf         map[string]NodeID
	Root         NodeID
}

// NumNodes reports the tree's total node count.
func (t *Tree) NumNodes() int { return len(t.Parent) }

// LeafFor resolves a taxon name to its leaf node, reporting whether it
// was found.
func (t *Tree) LeafFor(name string) (NodeID, bool) {
	id, ok := t.Leaf[name]
	return id, ok
}
