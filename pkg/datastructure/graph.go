package datastructure

import (
	"fmt"
	"math"

	"lintang/roadgraph/pkg/geo"
)

// Edge road segment berarah dari node From ke node To. Length dalam km, selalu >= 0.
type Edge struct {
	EdgeIDx    int32
	From       int32
	To         int32
	StreetName string
	RoadClass  string
	Length     float64
}

// Node intersection. cuma topology, state search (distance, predicted distance) disimpan per search di routingalgorithm.SearchState.
type Node struct {
	Location geo.Point
	IDx      int32
	OutEdges []int32
}

// Graph road network. paling banyak 1 node untuk setiap point, setiap edge ada di OutEdges milik node From-nya saja.
// Graph tidak boleh dimutasi selama ada search yang sedang berjalan.
type Graph struct {
	nodes   []Node
	edges   []Edge
	nodeIdx map[geo.Point]int32
}

func NewGraph() *Graph {
	return &Graph{
		nodes:   make([]Node, 0),
		edges:   make([]Edge, 0),
		nodeIdx: make(map[geo.Point]int32),
	}
}

// AddVertex tambah node untuk point kalau belum ada. return false kalau point sudah ada atau point tidak valid.
func (g *Graph) AddVertex(p geo.Point) bool {
	if !p.IsValid() {
		return false
	}
	if _, ok := g.nodeIdx[p]; ok {
		return false
	}
	idx := int32(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		Location: p,
		IDx:      idx,
		OutEdges: make([]int32, 0),
	})
	g.nodeIdx[p] = idx
	return true
}

// AddEdge tambah directed edge from->to. kedua endpoint harus sudah di AddVertex.
// kalau gagal graph tidak berubah.
func (g *Graph) AddEdge(from, to geo.Point, streetName, roadClass string, length float64) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("addEdge %v -> %v: invalid point: %w", from, to, ErrInvalidArgument)
	}
	fromIDx, ok := g.nodeIdx[from]
	if !ok {
		return fmt.Errorf("addEdge: from %v is not in graph: %w", from, ErrInvalidArgument)
	}
	toIDx, ok := g.nodeIdx[to]
	if !ok {
		return fmt.Errorf("addEdge: to %v is not in graph: %w", to, ErrInvalidArgument)
	}
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return fmt.Errorf("addEdge %v -> %v: length %v must be >= 0: %w", from, to, length, ErrInvalidArgument)
	}

	edgeIDx := int32(len(g.edges))
	g.edges = append(g.edges, Edge{
		EdgeIDx:    edgeIDx,
		From:       fromIDx,
		To:         toIDx,
		StreetName: streetName,
		RoadClass:  roadClass,
		Length:     length,
	})
	g.nodes[fromIDx].OutEdges = append(g.nodes[fromIDx].OutEdges, edgeIDx)
	return nil
}

// Neighbors node-node yang bisa dicapai lewat out edges dari nodeIDx. O(out-degree).
func (g *Graph) Neighbors(nodeIDx int32) []int32 {
	outEdges := g.nodes[nodeIDx].OutEdges
	neighbors := make([]int32, 0, len(outEdges))
	seen := make(map[int32]struct{}, len(outEdges))
	for _, e := range outEdges {
		to := g.edges[e].To
		if _, ok := seen[to]; ok {
			continue
		}
		seen[to] = struct{}{}
		neighbors = append(neighbors, to)
	}
	return neighbors
}

func (g *Graph) GetNodeIdx(p geo.Point) (int32, bool) {
	idx, ok := g.nodeIdx[p]
	return idx, ok
}

func (g *Graph) GetNode(nodeIDx int32) Node {
	return g.nodes[nodeIDx]
}

func (g *Graph) GetEdge(edgeIDx int32) Edge {
	return g.edges[edgeIDx]
}

func (g *Graph) GetOutEdges(nodeIDx int32) []int32 {
	return g.nodes[nodeIDx].OutEdges
}

func (g *Graph) GetNumNodes() int {
	return len(g.nodes)
}

func (g *Graph) GetNumEdges() int {
	return len(g.edges)
}

// GetVertices semua lokasi intersection, urut sesuai index node.
func (g *Graph) GetVertices() []geo.Point {
	vertices := make([]geo.Point, len(g.nodes))
	for i, n := range g.nodes {
		vertices[i] = n.Location
	}
	return vertices
}

func (g *Graph) GetEdges() []Edge {
	return g.edges
}
