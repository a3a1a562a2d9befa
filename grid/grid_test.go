package grid

import "testing"

func TestTreeEdgesSpanning(t *testing.T) {
	const rows, cols = 8, 11
	edges := TreeEdges(rows, cols)
	if len(edges) != rows*cols-1 {
		t.Fatalf("got %d edges, want %d", len(edges), rows*cols-1)
	}
	// Every edge connects adjacent cells.
	for _, e := range edges {
		dr := e.A.Row - e.B.Row
		dc := e.A.Col - e.B.Col
		if dr*dr+dc*dc != 1 {
			t.Errorf("edge %v connects non-adjacent cells", e)
		}
	}
	// n-1 acyclic edges over n cells span the grid; check connectivity
	// via a union-find pass.
	parent := make([]int, rows*cols)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for _, e := range edges {
		a := find(e.A.Row*cols + e.A.Col)
		b := find(e.B.Row*cols + e.B.Col)
		if a == b {
			t.Fatalf("edge %v creates a cycle", e)
		}
		parent[a] = b
	}
}

func TestTreeNeighborsSymmetric(t *testing.T) {
	const rows, cols = 6, 6
	x := TreeNeighbors(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c < cols-1 && x[r][c][Right] != x[r][c+1][Left] {
				t.Errorf("asymmetric connection at (%d, %d)", r, c)
			}
			if r < rows-1 && x[r][c][Up] != x[r+1][c][Down] {
				t.Errorf("asymmetric connection at (%d, %d)", r, c)
			}
		}
	}
	if x[0][0][Down] || x[0][0][Left] {
		t.Error("corner cell connects outside the grid")
	}
}

func TestTreeDists(t *testing.T) {
	dists := TreeDists(10, 10)
	if dists[0][0] != 0 {
		t.Errorf("origin distance = %d", dists[0][0])
	}
	for r := range dists {
		for c := range dists[r] {
			if dists[r][c] < 0 {
				t.Fatalf("cell (%d, %d) unreachable", r, c)
			}
		}
	}
	// Tree distance is at least Manhattan distance.
	if dists[9][9] < 18 {
		t.Errorf("distance to far corner = %d, want >= 18", dists[9][9])
	}
}
