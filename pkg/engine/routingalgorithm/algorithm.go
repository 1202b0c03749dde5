package routingalgorithm

import (
	"fmt"
	"strings"

	"lintang/roadgraph/pkg/datastructure"
)

type Algorithm string

const (
	AlgorithmBFS      Algorithm = "bfs"
	AlgorithmDijkstra Algorithm = "dijkstra"
	AlgorithmAStar    Algorithm = "astar"
)

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm case-insensitive. "a*" & "a_star" juga diterima untuk astar.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return AlgorithmBFS, nil
	case "dijkstra":
		return AlgorithmDijkstra, nil
	case "astar", "a*", "a_star":
		return AlgorithmAStar, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q: %w", s, datastructure.ErrInvalidArgument)
	}
}
