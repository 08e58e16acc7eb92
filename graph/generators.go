package graph

import "strconv"

// Star returns a star graph with n leaves and n+1 vertices; vertex 0
// is the hub.
func Star(n int) *Graph {
	g := NewIntegerNamed()
	g.AddVertex("", nil)
	for i := 1; i <= n; i++ {
		g.AddVertex("", nil)
		g.AddEdge("0", strconv.Itoa(i))
	}
	return g
}

// Cycle returns a cycle graph with n vertices.
func Cycle(n int) *Graph {
	g := NewIntegerNamed()
	for i := 0; i < n; i++ {
		g.AddVertex("", nil)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n))
	}
	return g
}

// Complete returns the complete graph on n vertices.
func Complete(n int) *Graph {
	g := NewIntegerNamed()
	for i := 0; i < n; i++ {
		g.AddVertex("", nil)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(strconv.Itoa(i), strconv.Itoa(j))
		}
	}
	return g
}

// Mesh returns an m x n grid graph.
func Mesh(m, n int) *Graph {
	g := NewIntegerNamed()
	for i := 0; i < m*n; i++ {
		g.AddVertex("", nil)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if i > 0 {
				g.AddEdge(strconv.Itoa((i-1)*n+j), strconv.Itoa(i*n+j))
			}
			if j > 0 {
				g.AddEdge(strconv.Itoa(i*n+j-1), strconv.Itoa(i*n+j))
			}
		}
	}
	return g
}

// KingGraph returns an m x n king graph: the mesh plus both diagonal
// moves.
func KingGraph(m, n int) *Graph {
	g := NewIntegerNamed()
	for i := 0; i < m*n; i++ {
		g.AddVertex("", nil)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if i > 0 {
				g.AddEdge(strconv.Itoa((i-1)*n+j), strconv.Itoa(i*n+j))
			}
			if j > 0 {
				g.AddEdge(strconv.Itoa(i*n+j-1), strconv.Itoa(i*n+j))
			}
			if i > 0 && j > 0 {
				g.AddEdge(strconv.Itoa((i-1)*n+j-1), strconv.Itoa(i*n+j))
			}
			if i > 0 && j < n-1 {
				g.AddEdge(strconv.Itoa((i-1)*n+j+1), strconv.Itoa(i*n+j))
			}
		}
	}
	return g
}
