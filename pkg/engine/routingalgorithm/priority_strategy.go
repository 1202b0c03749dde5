package routingalgorithm

import (
	"math"

	"lintang/roadgraph/pkg/datastructure"
)

// Frontier node yang sudah ditemukan tapi belum di settle. boleh berisi entry basi untuk node yang sama,
// engine yang skip node yang sudah visited.
type Frontier interface {
	Push(nodeIDx int32, key float64)
	Pop() (int32, bool)
	Size() int
}

// PriorityStrategy yang membedakan BFS, Dijkstra, dan A*.
//
// Reset membersihkan field search di semua node, SeedStart cuma inisialisasi start node,
// Relax return true kalau key frontier neighbor (edge.To) membaik sehingga neighbor harus (re)admit ke frontier,
// Key adalah key frontier node saat ini.
type PriorityStrategy interface {
	Algorithm() Algorithm
	Reset(state *SearchState)
	SeedStart(state *SearchState, start int32)
	Relax(state *SearchState, start, goal, curr int32, edge datastructure.Edge) bool
	Key(state *SearchState, nodeIDx int32) float64
	NewFrontier() Frontier
}

func NewPriorityStrategy(alg Algorithm, g Graph) (PriorityStrategy, error) {
	switch alg {
	case AlgorithmBFS:
		return NewBFSStrategy(), nil
	case AlgorithmDijkstra:
		return NewDijkstraStrategy(), nil
	case AlgorithmAStar:
		return NewAStarStrategy(g), nil
	default:
		return ParsePriorityStrategy(string(alg), g)
	}
}

// ParsePriorityStrategy strategy dari nama algoritma (lihat ParseAlgorithm)
func ParsePriorityStrategy(name string, g Graph) (PriorityStrategy, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return NewPriorityStrategy(alg, g)
}

type fifoFrontier struct {
	q *datastructure.Queue[int32]
}

func (f *fifoFrontier) Push(nodeIDx int32, _ float64) {
	f.q.Enqueue(nodeIDx)
}

func (f *fifoFrontier) Pop() (int32, bool) {
	return f.q.Dequeue()
}

func (f *fifoFrontier) Size() int {
	return f.q.Size()
}

// minKeyFrontier urut ascending key, key sama -> urutan insert
type minKeyFrontier struct {
	h *datastructure.MinHeap[int32]
}

func (f *minKeyFrontier) Push(nodeIDx int32, key float64) {
	f.h.Insert(nodeIDx, key)
}

func (f *minKeyFrontier) Pop() (int32, bool) {
	item, err := f.h.ExtractMin()
	if err != nil {
		return -1, false
	}
	return item.Item, true
}

func (f *minKeyFrontier) Size() int {
	return f.h.Size()
}

// BFSStrategy unweighted. frontier FIFO, neighbor cuma di admit saat pertama kali ditemukan.
// dist tetap diisi cost along the BFS tree, cuma buat reporting.
type BFSStrategy struct{}

func NewBFSStrategy() *BFSStrategy {
	return &BFSStrategy{}
}

func (b *BFSStrategy) Algorithm() Algorithm {
	return AlgorithmBFS
}

func (b *BFSStrategy) Reset(state *SearchState) {
	state.ResetDistances()
}

func (b *BFSStrategy) SeedStart(state *SearchState, start int32) {
	state.dist[start] = 0
	state.writer[start] = AlgorithmBFS
}

func (b *BFSStrategy) Relax(state *SearchState, start, goal, curr int32, edge datastructure.Edge) bool {
	if !math.IsInf(state.dist[edge.To], 1) {
		// sudah ditemukan sebelumnya
		return false
	}
	state.dist[edge.To] = state.dist[curr] + edge.Length
	state.writer[edge.To] = AlgorithmBFS
	return true
}

func (b *BFSStrategy) Key(state *SearchState, nodeIDx int32) float64 {
	return 0
}

func (b *BFSStrategy) NewFrontier() Frontier {
	return &fifoFrontier{q: datastructure.NewQueue[int32]()}
}

// DijkstraStrategy frontier ascending distance
type DijkstraStrategy struct{}

func NewDijkstraStrategy() *DijkstraStrategy {
	return &DijkstraStrategy{}
}

func (d *DijkstraStrategy) Algorithm() Algorithm {
	return AlgorithmDijkstra
}

func (d *DijkstraStrategy) Reset(state *SearchState) {
	state.ResetDistances()
}

func (d *DijkstraStrategy) SeedStart(state *SearchState, start int32) {
	state.dist[start] = 0
	state.writer[start] = AlgorithmDijkstra
}

func (d *DijkstraStrategy) Relax(state *SearchState, start, goal, curr int32, edge datastructure.Edge) bool {
	newCost := state.dist[curr] + edge.Length
	if newCost < state.dist[edge.To] {
		state.dist[edge.To] = newCost
		state.writer[edge.To] = AlgorithmDijkstra
		return true
	}
	return false
}

func (d *DijkstraStrategy) Key(state *SearchState, nodeIDx int32) float64 {
	return state.dist[nodeIDx]
}

func (d *DijkstraStrategy) NewFrontier() Frontier {
	return &minKeyFrontier{h: datastructure.NewMinHeap[int32]()}
}

// AStarStrategy frontier ascending f = g + h, h = straight-line (great-circle) distance ke goal.
// optimal selama setiap edge length >= jarak great-circle antara kedua endpoint-nya (heuristic admissible & consistent).
type AStarStrategy struct {
	g Graph
}

func NewAStarStrategy(g Graph) *AStarStrategy {
	return &AStarStrategy{g: g}
}

func (a *AStarStrategy) Algorithm() Algorithm {
	return AlgorithmAStar
}

func (a *AStarStrategy) Reset(state *SearchState) {
	state.ResetDistances()
}

func (a *AStarStrategy) SeedStart(state *SearchState, start int32) {
	state.dist[start] = 0
	state.predicted[start] = 0
	state.writer[start] = AlgorithmAStar
}

func (a *AStarStrategy) Relax(state *SearchState, start, goal, curr int32, edge datastructure.Edge) bool {
	g := state.dist[curr] + edge.Length
	h := a.g.GetNode(edge.To).Location.Distance(a.g.GetNode(goal).Location)
	f := g + h
	if f < state.predicted[edge.To] {
		state.dist[edge.To] = g
		state.predicted[edge.To] = f
		state.writer[edge.To] = AlgorithmAStar
		return true
	}
	return false
}

func (a *AStarStrategy) Key(state *SearchState, nodeIDx int32) float64 {
	return state.predicted[nodeIDx]
}

func (a *AStarStrategy) NewFrontier() Frontier {
	return &minKeyFrontier{h: datastructure.NewMinHeap[int32]()}
}
