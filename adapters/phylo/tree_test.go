package phylo

import (
	"testing"

	domphylo "guildscore/domain/phylo"
)

// buildTestTree constructs:
//
//	root(0)
//	 ├─ a(1, bl=1)
//	 │   ├─ leafX(3, bl=2)
//	 │   └─ leafY(4, bl=3)
//	 └─ leafZ(2, bl=5)
func buildTestTree() *Engine {
	tf := treeFile{
		Parent:       []int32{0, 0, 0, 1, 1},
		BranchLength: []float64{0, 1, 5, 2, 3},
		LeafNames:    []string{"X", "Y", "Z"},
		LeafIndex:    []int32{3, 4, 2},
		Root:         0,
	}
	return newEngine(tf)
}

func TestPDTwoSiblingLeaves(t *testing.T) {
	e := buildTestTree()
	pd, err := e.PD([]string{"X", "Y"})
	if err != nil {
		t.Fatal(err)
	}
	if pd != 5 { // branch X (2) + branch Y (3), MRCA is node 1
		t.Errorf("expected PD 5, got %v", pd)
	}
}

func TestPDAllThreeLeaves(t *testing.T) {
	e := buildTestTree()
	pd, err := e.PD([]string{"X", "Y", "Z"})
	if err != nil {
		t.Fatal(err)
	}
	// MRCA is root; marked edges: X(2), Y(3), a(1), Z(5) = 11
	if pd != 11 {
		t.Errorf("expected PD 11, got %v", pd)
	}
}

func TestPDSubsetMonotonicity(t *testing.T) {
	e := buildTestTree()
	pdSmall, _ := e.PD([]string{"X", "Y"})
	pdLarge, _ := e.PD([]string{"X", "Y", "Z"})
	if pdLarge < pdSmall {
		t.Errorf("PD of superset %v should be >= PD of subset %v", pdLarge, pdSmall)
	}
}

func TestPDFewerThanTwoLeaves(t *testing.T) {
	e := buildTestTree()
	pd, err := e.PD([]string{"X"})
	if err != nil {
		t.Fatal(err)
	}
	if pd != 0 {
		t.Errorf("expected PD 0 for a single leaf, got %v", pd)
	}
}

func TestPDUnresolvableNamesIgnored(t *testing.T) {
	e := buildTestTree()
	pd, err := e.PD([]string{"X", "Y", "nonexistent"})
	if err != nil {
		t.Fatal(err)
	}
	if pd != 5 {
		t.Errorf("expected unresolvable name to be ignored, got %v", pd)
	}
}

func TestLCADepthBased(t *testing.T) {
	e := buildTestTree()
	lca := e.lca(domphylo.NodeID(3), domphylo.NodeID(2))
	if lca != 0 {
		t.Errorf("expected root as LCA of X and Z, got %v", lca)
	}
}
