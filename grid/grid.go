// Package grid generates random spanning trees over rectangular
// grids, the skeleton behind maze patterns and billowing textures.
package grid

import "math/rand"

// Cell is a (row, column) grid coordinate.
type Cell struct {
	Row, Col int
}

// Edge connects two adjacent grid cells.
type Edge struct {
	A, B Cell
}

// Directions of the third index of TreeNeighbors.
const (
	Down = iota
	Right
	Up
	Left
)

// TreeEdges generates the edges of a random spanning tree connecting
// adjacent cells of a rows x cols grid, by running Kruskal's algorithm
// over the grid edges in random order.
func TreeEdges(rows, cols int) []Edge {
	var edges []Edge
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			edges = append(edges, Edge{Cell{r, c}, Cell{r, c + 1}})
		}
	}
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			edges = append(edges, Edge{Cell{r, c}, Cell{r + 1, c}})
		}
	}
	rand.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

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
	id := func(c Cell) int { return c.Row*cols + c.Col }

	tree := make([]Edge, 0, rows*cols-1)
	for _, e := range edges {
		ra, rb := find(id(e.A)), find(id(e.B))
		if ra != rb {
			parent[ra] = rb
			tree = append(tree, e)
			if len(tree) == rows*cols-1 {
				break
			}
		}
	}
	return tree
}

// TreeNeighbors generates a random spanning tree and returns its
// connectivity as a [rows][cols][4] array: whether each cell shares a
// tree edge with the cell below, right, above and left of it.
func TreeNeighbors(rows, cols int) [][][4]bool {
	connected := make(map[Edge]bool)
	for _, e := range TreeEdges(rows, cols) {
		connected[e] = true
		connected[Edge{e.B, e.A}] = true
	}
	x := make([][][4]bool, rows)
	for r := range x {
		x[r] = make([][4]bool, cols)
		for c := range x[r] {
			cell := Cell{r, c}
			x[r][c][Down] = r > 0 && connected[Edge{cell, Cell{r - 1, c}}]
			x[r][c][Right] = c < cols-1 && connected[Edge{cell, Cell{r, c + 1}}]
			x[r][c][Up] = r < rows-1 && connected[Edge{cell, Cell{r + 1, c}}]
			x[r][c][Left] = c > 0 && connected[Edge{cell, Cell{r, c - 1}}]
		}
	}
	return x
}

// TreeDists generates a random spanning tree and returns each cell's
// distance from cell (0, 0) along the tree. Mapped onto a cyclical
// color gradient this produces a billowing effect.
func TreeDists(rows, cols int) [][]int {
	adj := make(map[Cell][]Cell)
	for _, e := range TreeEdges(rows, cols) {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	dists := make([][]int, rows)
	for r := range dists {
		dists[r] = make([]int, cols)
		for c := range dists[r] {
			dists[r][c] = -1
		}
	}
	dists[0][0] = 0
	queue := []Cell{{0, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if dists[n.Row][n.Col] == -1 {
				dists[n.Row][n.Col] = dists[cur.Row][cur.Col] + 1
				queue = append(queue, n)
			}
		}
	}
	return dists
}
