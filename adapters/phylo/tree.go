// Package phylo loads the compact rooted phylogenetic tree and
// computes Faith's Phylogenetic Diversity over arbitrary leaf subsets.
// The tree is read once at startup and is safe for unlimited
// concurrent PD calls afterward — no lock is needed because nothing
// ever mutates it again.
package phylo

import (
	"encoding/gob"
	"fmt"
	"os"

	domphylo "guildscore/domain/phylo"
)

// Engine wraps a loaded tree and answers PD queries against it. depth
// is precomputed once so MRCA lookups are O(depth) per leaf pair
// instead of requiring a fresh root walk.
type Engine struct {
	tree  *domphylo.Tree
	depth []int32
}

// treeFile is the on-disk gob encoding of a compact rooted tree: plain
// parallel arrays, no pointers, so it round-trips without custom
// GobEncode/Decode methods.
type treeFile struct {
	Parent       []int32
	BranchLength []float64
	LeafNames    []string
	LeafIndex    []int32
	Root         int32
}

// Load reads a gob-encoded tree from path and builds an Engine.
func Load(path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phylogenetic tree: %w", err)
	}
	defer f.Close()

	var tf treeFile
	if err := gob.NewDecoder(f).Decode(&tf); err != nil {
		return nil, fmt.Errorf("decode phylogenetic tree: %w", err)
	}
	return newEngine(tf), nil
}

func newEngine(tf treeFile) *Engine {
	t := &domphylo.Tree{
		Parent:       make([]domphylo.NodeID, len(tf.Parent)),
		BranchLength: tf.BranchLength,
		Leaf:         make(map[string]domphylo.NodeID, len(tf.LeafNames)),
		Root:         domphylo.NodeID(tf.Root),
	}
	for i, p := range tf.Parent {
		t.Parent[i] = domphylo.NodeID(p)
	}
	for i, name := range tf.LeafNames {
		t.Leaf[name] = domphylo.NodeID(tf.LeafIndex[i])
	}

	e := &Engine{tree: t, depth: make([]int32, len(tf.Parent))}
	e.depth[t.Root] = 0
	// Parent indices always precede their children in the encoding, so
	// a single forward pass computes every depth.
	for i := range t.Parent {
		n := domphylo.NodeID(i)
		if n == t.Root {
			continue
		}
		e.depth[i] = e.depth[t.Parent[n]] + 1
	}
	return e
}

// Coverage reports how many of names resolve to a known leaf.
func (e *Engine) Coverage(names []string) int {
	n := 0
	for _, name := range names {
		if _, ok := e.tree.LeafFor(name); ok {
			n++
		}
	}
	return n
}

// PD computes Faith's Phylogenetic Diversity: the sum of branch
// lengths on the union of root-paths of the resolvable names,
// excluding any branch above the most recent common ancestor of the
// resolved leaf set. Unresolvable names are ignored silently; fewer
// than two resolvable leaves yields PD 0.
func (e *Engine) PD(names []string) (float64, error) {
	var leaves []domphylo.NodeID
	for _, name := range names {
		if id, ok := e.tree.LeafFor(name); ok {
			leaves = append(leaves, id)
		}
	}
	if len(leaves) < 2 {
		return 0, nil
	}

	mrca := leaves[0]
	for _, l := range leaves[1:] {
		mrca = e.lca(mrca, l)
	}

	marked := make(map[domphylo.NodeID]bool)
	for _, leaf := range leaves {
		for n := leaf; n != mrca; n = e.tree.Parent[n] {
			marked[n] = true
		}
	}

	var sum float64
	for n := range marked {
		sum += e.tree.BranchLength[n]
	}
	return sum, nil
}

// lca returns the most recent common ancestor of a and b by walking
// both up to the same depth, then together until they meet.
func (e *Engine) lca(a, b domphylo.NodeID) domphylo.NodeID {
	for e.depth[a] > e.depth[b] {
		a = e.tree.Parent[a]
	}
	for e.depth[b] > e.depth[a] {
		b = e.tree.Parent[b]
	}
	for a != b {
		a = e.tree.Parent[a]
		b = e.tree.Parent[b]
	}
	return a
}
