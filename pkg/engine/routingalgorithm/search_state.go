package routingalgorithm

import "math"

// SearchState state mutable milik satu kali search, diindex pakai node index (arena + index).
// dibuat baru tiap search, jadi search yang berulang atau paralel di graph yang sama tidak saling menimpa.
type SearchState struct {
	dist       []float64   // cost so far
	predicted  []float64   // f = g + h, cuma dipakai A*
	writer     []Algorithm // strategy yang terakhir menulis dist/predicted, buat diagnostics
	visited    []bool
	parentEdge []int32
}

func NewSearchState(numNodes int) *SearchState {
	s := &SearchState{
		dist:       make([]float64, numNodes),
		predicted:  make([]float64, numNodes),
		writer:     make([]Algorithm, numNodes),
		visited:    make([]bool, numNodes),
		parentEdge: make([]int32, numNodes),
	}
	for i := range s.parentEdge {
		s.parentEdge[i] = -1
	}
	s.ResetDistances()
	return s
}

// ResetDistances set distance & predicted distance semua node ke +Inf
func (s *SearchState) ResetDistances() {
	for i := range s.dist {
		s.dist[i] = math.Inf(1)
		s.predicted[i] = math.Inf(1)
		s.writer[i] = ""
	}
}

func (s *SearchState) Distance(nodeIDx int32) float64 {
	return s.dist[nodeIDx]
}

func (s *SearchState) PredictedDistance(nodeIDx int32) float64 {
	return s.predicted[nodeIDx]
}

func (s *SearchState) LastWriter(nodeIDx int32) Algorithm {
	return s.writer[nodeIDx]
}

func (s *SearchState) IsVisited(nodeIDx int32) bool {
	return s.visited[nodeIDx]
}

// ParentEdge edge yang dipakai untuk mencapai nodeIDx, -1 kalau belum ada.
func (s *SearchState) ParentEdge(nodeIDx int32) int32 {
	return s.parentEdge[nodeIDx]
}
