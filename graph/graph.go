// Package graph implements a small graph-theory toolkit: named
// vertices, optionally weighted or directed edges, adjacency-matrix
// conversion and a few classic graph generators.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNotFound reports a vertex or edge that is not in the graph.
var ErrNotFound = errors.New("graph: not found")

// Vertex is a named node with an optional payload.
type Vertex struct {
	Name  string
	Value any
}

func (v *Vertex) String() string {
	if v.Value == nil {
		return v.Name
	}
	return fmt.Sprintf("%s (%v)", v.Name, v.Value)
}

// Edge connects two vertices. For a directed edge V1 is the source.
type Edge struct {
	V1, V2   *Vertex
	Weight   float64
	Weighted bool
	Directed bool
}

func (e *Edge) String() string {
	connector := "--"
	if e.Directed {
		connector = "->"
	}
	if !e.Weighted {
		return fmt.Sprintf("%s %s %s", e.V1.Name, connector, e.V2.Name)
	}
	return fmt.Sprintf("%s %s %s (%g)", e.V1.Name, connector, e.V2.Name, e.Weight)
}

// sameEndpoints reports whether two edges join the same vertices,
// symmetric for undirected edges.
func (e *Edge) sameEndpoints(o *Edge) bool {
	if e.Directed {
		return e.V1.Name == o.V1.Name && e.V2.Name == o.V2.Name
	}
	return (e.V1.Name == o.V1.Name && e.V2.Name == o.V2.Name) ||
		(e.V1.Name == o.V2.Name && e.V2.Name == o.V1.Name)
}

// Graph is a collection of vertices and edges, both kept sorted by
// vertex name. IntegerNames selects numeric name ordering, which the
// generators and .mat import use.
type Graph struct {
	V            []*Vertex
	E            []*Edge
	IntegerNames bool
}

// New creates an empty graph with lexical name ordering.
func New() *Graph {
	return &Graph{}
}

// NewIntegerNamed creates an empty graph whose vertex names sort
// numerically.
func NewIntegerNamed() *Graph {
	return &Graph{IntegerNames: true}
}

func (g *Graph) nameKey(name string) (int, string) {
	if g.IntegerNames {
		if n, err := strconv.Atoi(name); err == nil {
			return n, ""
		}
	}
	return 0, name
}

func (g *Graph) sortVertices() {
	sort.Slice(g.V, func(i, j int) bool {
		ni, si := g.nameKey(g.V[i].Name)
		nj, sj := g.nameKey(g.V[j].Name)
		if si == "" && sj == "" {
			return ni < nj
		}
		return g.V[i].Name < g.V[j].Name
	})
}

func (g *Graph) sortEdges() {
	sort.Slice(g.E, func(i, j int) bool {
		a, b := g.E[i], g.E[j]
		n1, s1 := g.nameKey(a.V1.Name)
		n2, s2 := g.nameKey(b.V1.Name)
		if s1 == "" && s2 == "" {
			if n1 != n2 {
				return n1 < n2
			}
			m1, _ := g.nameKey(a.V2.Name)
			m2, _ := g.nameKey(b.V2.Name)
			return m1 < m2
		}
		if a.V1.Name != b.V1.Name {
			return a.V1.Name < b.V1.Name
		}
		return a.V2.Name < b.V2.Name
	})
}

// AddVertex adds a vertex. An empty name auto-assigns the next index.
// Duplicate names are rejected.
func (g *Graph) AddVertex(name string, value any) error {
	if name == "" {
		name = strconv.Itoa(len(g.V))
	} else {
		for _, v := range g.V {
			if v.Name == name {
				return fmt.Errorf("graph: vertex %s already exists", name)
			}
		}
	}
	g.V = append(g.V, &Vertex{Name: name, Value: value})
	g.sortVertices()
	return nil
}

// InsertVertex adds an existing vertex object unless one with the same
// name is already present.
func (g *Graph) InsertVertex(v *Vertex) {
	for _, have := range g.V {
		if have.Name == v.Name {
			return
		}
	}
	g.V = append(g.V, v)
	g.sortVertices()
}

// GetVertex looks a vertex up by name.
func (g *Graph) GetVertex(name string) (*Vertex, error) {
	for _, v := range g.V {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: vertex %s", ErrNotFound, name)
}

// ContainsVertex reports whether a vertex with the name exists.
func (g *Graph) ContainsVertex(name string) bool {
	_, err := g.GetVertex(name)
	return err == nil
}

// RemoveVertex deletes a vertex and every edge incident to it.
func (g *Graph) RemoveVertex(name string) error {
	v, err := g.GetVertex(name)
	if err != nil {
		return err
	}
	keep := g.V[:0]
	for _, have := range g.V {
		if have != v {
			keep = append(keep, have)
		}
	}
	g.V = keep
	edges := g.E[:0]
	for _, e := range g.E {
		if e.V1 != v && e.V2 != v {
			edges = append(edges, e)
		}
	}
	g.E = edges
	return nil
}

func (g *Graph) addEdge(v1, v2 string, weight float64, weighted, directed bool) error {
	a, err := g.GetVertex(v1)
	if err != nil {
		return err
	}
	b, err := g.GetVertex(v2)
	if err != nil {
		return err
	}
	e := &Edge{V1: a, V2: b, Weight: weight, Weighted: weighted, Directed: directed}
	if g.ContainsEdge(e) {
		return nil
	}
	g.E = append(g.E, e)
	g.sortEdges()
	return nil
}

// AddEdge adds an undirected, unweighted edge between two named
// vertices. Duplicate edges are ignored.
func (g *Graph) AddEdge(v1, v2 string) error {
	return g.addEdge(v1, v2, 0, false, false)
}

// AddWeightedEdge adds an undirected edge with a weight.
func (g *Graph) AddWeightedEdge(v1, v2 string, weight float64) error {
	return g.addEdge(v1, v2, weight, true, false)
}

// AddDirectedEdge adds a directed edge from v1 to v2.
func (g *Graph) AddDirectedEdge(v1, v2 string) error {
	return g.addEdge(v1, v2, 0, false, true)
}

// ContainsEdge reports whether an edge with the same endpoints exists.
func (g *Graph) ContainsEdge(e *Edge) bool {
	for _, have := range g.E {
		if have.sameEndpoints(e) {
			return true
		}
	}
	return false
}

// GetEdge finds the edge joining two named vertices.
func (g *Graph) GetEdge(v1, v2 string) (*Edge, error) {
	a, err := g.GetVertex(v1)
	if err != nil {
		return nil, err
	}
	b, err := g.GetVertex(v2)
	if err != nil {
		return nil, err
	}
	probe := &Edge{V1: a, V2: b}
	for _, e := range g.E {
		if e.sameEndpoints(probe) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: edge %s -- %s", ErrNotFound, v1, v2)
}

// RemoveEdge deletes the edge joining two named vertices.
func (g *Graph) RemoveEdge(v1, v2 string) error {
	e, err := g.GetEdge(v1, v2)
	if err != nil {
		return err
	}
	keep := g.E[:0]
	for _, have := range g.E {
		if have != e {
			keep = append(keep, have)
		}
	}
	g.E = keep
	return nil
}

// Neighbors returns every vertex adjacent to the named one.
func (g *Graph) Neighbors(name string) ([]*Vertex, error) {
	v, err := g.GetVertex(name)
	if err != nil {
		return nil, err
	}
	var out []*Vertex
	for _, e := range g.E {
		switch v {
		case e.V1:
			out = append(out, e.V2)
		case e.V2:
			out = append(out, e.V1)
		}
	}
	return out, nil
}

// Neighborhood returns the subgraph induced by the neighbors of the
// named vertex. With closed set, the vertex itself is included.
func (g *Graph) Neighborhood(name string, closed bool) (*Graph, error) {
	v, err := g.GetVertex(name)
	if err != nil {
		return nil, err
	}
	sub := &Graph{IntegerNames: g.IntegerNames}
	if closed {
		sub.InsertVertex(v)
	}
	for _, e := range g.E {
		switch v {
		case e.V1:
			sub.InsertVertex(e.V2)
		case e.V2:
			sub.InsertVertex(e.V1)
		}
	}
	for _, e := range g.E {
		if sub.ContainsVertex(e.V1.Name) && sub.ContainsVertex(e.V2.Name) {
			sub.addEdge(e.V1.Name, e.V2.Name, e.Weight, e.Weighted, e.Directed)
		}
	}
	return sub, nil
}

// AdjMatrix builds the adjacency matrix in sorted vertex order.
// Unweighted edges contribute 1.
func (g *Graph) AdjMatrix() [][]float64 {
	index := make(map[*Vertex]int, len(g.V))
	for i, v := range g.V {
		index[v] = i
	}
	adj := make([][]float64, len(g.V))
	for i := range adj {
		adj[i] = make([]float64, len(g.V))
	}
	for _, e := range g.E {
		i, j := index[e.V1], index[e.V2]
		val := 1.0
		if e.Weighted {
			val = e.Weight
		}
		adj[i][j] = val
		if !e.Directed {
			adj[j][i] = val
		}
	}
	return adj
}

// ImportAdjMatrix replaces the graph contents with the vertices and
// edges described by a square adjacency matrix.
func (g *Graph) ImportAdjMatrix(adj [][]float64, weighted bool) error {
	n := len(adj)
	for i, row := range adj {
		if len(row) != n {
			return fmt.Errorf("graph: adjacency row %d has %d entries, want %d", i, len(row), n)
		}
	}
	g.V = nil
	g.E = nil
	g.IntegerNames = true
	for i := 0; i < n; i++ {
		g.V = append(g.V, &Vertex{Name: strconv.Itoa(i)})
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] == 0 {
				continue
			}
			if weighted {
				g.AddWeightedEdge(strconv.Itoa(i), strconv.Itoa(j), adj[i][j])
			} else {
				g.AddEdge(strconv.Itoa(i), strconv.Itoa(j))
			}
		}
	}
	return nil
}

func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph with %d vertices and %d edges\n\n", len(g.V), len(g.E))
	b.WriteString("Vertices:\n")
	for _, v := range g.V {
		fmt.Fprintf(&b, "%s\n", v)
	}
	b.WriteString("\nEdges:\n")
	for _, e := range g.E {
		fmt.Fprintf(&b, "%s\n", e)
	}
	return b.String()
}
