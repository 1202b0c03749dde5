package routingalgorithm

import (
	"fmt"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/util"

	"golang.org/x/exp/slog"
)

type Graph interface {
	GetNodeIdx(p geo.Point) (int32, bool)
	GetNode(nodeIDx int32) datastructure.Node
	GetEdge(edgeIDx int32) datastructure.Edge
	GetOutEdges(nodeIDx int32) []int32
	GetNumNodes() int
}

// Road satu road segment di path hasil search
type Road struct {
	From       geo.Point `json:"from"`
	To         geo.Point `json:"to"`
	StreetName string    `json:"street_name"`
	RoadClass  string    `json:"road_class"`
	Length     float64   `json:"length"`
}

// Result hasil search. Found false berarti goal tidak reachable dari start (bukan error).
type Result struct {
	Algorithm Algorithm
	Path      []geo.Point // start..goal inclusive
	Roads     []Road
	Cost      float64 // total length roads di path
	Visited   int     // jumlah pop dari frontier, termasuk entry basi
	Settled   int     // jumlah node unik yang di settle
	Found     bool
}

// Hops jumlah edge di path
func (r Result) Hops() int {
	return len(r.Roads)
}

// VisitFunc dipanggil sekali untuk setiap node yang di pop dari frontier, sinkron di goroutine pemanggil.
// tidak boleh memutasi graph.
type VisitFunc func(location geo.Point)

type RouteAlgorithm struct {
	g Graph
}

func NewRouteAlgorithm(g Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

// ShortestPath search dari start ke goal pakai algoritma alg. onVisit boleh nil.
func (rt *RouteAlgorithm) ShortestPath(start, goal geo.Point, alg Algorithm, onVisit VisitFunc) (Result, error) {
	strategy, err := NewPriorityStrategy(alg, rt.g)
	if err != nil {
		return Result{}, err
	}
	return rt.Search(start, goal, strategy, onVisit)
}

// BFS path dengan jumlah edge paling sedikit, length edge diabaikan.
func (rt *RouteAlgorithm) BFS(start, goal geo.Point, onVisit VisitFunc) (Result, error) {
	return rt.Search(start, goal, NewBFSStrategy(), onVisit)
}

func (rt *RouteAlgorithm) Dijkstra(start, goal geo.Point, onVisit VisitFunc) (Result, error) {
	return rt.Search(start, goal, NewDijkstraStrategy(), onVisit)
}

func (rt *RouteAlgorithm) AStar(start, goal geo.Point, onVisit VisitFunc) (Result, error) {
	return rt.Search(start, goal, NewAStarStrategy(rt.g), onVisit)
}

/*
Search best-first traversal generic, urutan frontier & relax ditentukan strategy.

	initialized -> seeded -> exploring -> found | exhausted

node yang sudah visited di skip saat di pop (entry basi dari relax sebelumnya) dan tidak di relax lagi.
exhausted (goal tidak reachable) return Result{Found: false} dengan error nil.
*/
func (rt *RouteAlgorithm) Search(start, goal geo.Point, strategy PriorityStrategy, onVisit VisitFunc) (Result, error) {
	startIDx, err := rt.resolve(start, "start")
	if err != nil {
		return Result{}, err
	}
	goalIDx, err := rt.resolve(goal, "goal")
	if err != nil {
		return Result{}, err
	}

	state := NewSearchState(rt.g.GetNumNodes())
	strategy.Reset(state)
	strategy.SeedStart(state, startIDx)

	frontier := strategy.NewFrontier()
	frontier.Push(startIDx, strategy.Key(state, startIDx))

	res := Result{Algorithm: strategy.Algorithm()}
	for frontier.Size() > 0 {
		curr, _ := frontier.Pop()
		res.Visited++

		if onVisit != nil {
			onVisit(rt.g.GetNode(curr).Location)
		}

		if state.IsVisited(curr) {
			continue
		}
		state.visited[curr] = true
		res.Settled++

		if curr == goalIDx {
			res.Found = true
			break
		}

		for _, edgeIDx := range rt.g.GetOutEdges(curr) {
			edge := rt.g.GetEdge(edgeIDx)
			if state.IsVisited(edge.To) {
				continue
			}
			if strategy.Relax(state, startIDx, goalIDx, curr, edge) {
				state.parentEdge[edge.To] = edge.EdgeIDx
				frontier.Push(edge.To, strategy.Key(state, edge.To))
			}
		}
	}

	slog.Debug("nodes visited in search", "algorithm", res.Algorithm.String(), "visited", res.Visited, "settled", res.Settled)

	if !res.Found {
		slog.Info("no path found", "algorithm", res.Algorithm.String(), "start", start.String(), "goal", goal.String())
		return res, nil
	}

	res.Path, res.Roads = rt.reconstructPath(state, startIDx, goalIDx)
	for _, r := range res.Roads {
		res.Cost += r.Length
	}
	return res, nil
}

func (rt *RouteAlgorithm) resolve(p geo.Point, role string) (int32, error) {
	if !p.IsValid() {
		return -1, fmt.Errorf("%s %v is not a valid point: %w", role, p, datastructure.ErrInvalidArgument)
	}
	idx, ok := rt.g.GetNodeIdx(p)
	if !ok {
		return -1, fmt.Errorf("%s %v: %w", role, p, datastructure.ErrVertexNotFound)
	}
	return idx, nil
}

// reconstructPath jalan mundur dari goal ke start lewat parent edge. cuma boleh dipanggil kalau goal found.
func (rt *RouteAlgorithm) reconstructPath(state *SearchState, start, goal int32) ([]geo.Point, []Road) {
	roads := []Road{}
	curr := goal
	for curr != start {
		edge := rt.g.GetEdge(state.ParentEdge(curr))
		roads = append(roads, Road{
			From:       rt.g.GetNode(edge.From).Location,
			To:         rt.g.GetNode(edge.To).Location,
			StreetName: edge.StreetName,
			RoadClass:  edge.RoadClass,
			Length:     edge.Length,
		})
		curr = edge.From
	}
	util.ReverseG(roads)

	path := make([]geo.Point, 0, len(roads)+1)
	path = append(path, rt.g.GetNode(start).Location)
	for _, r := range roads {
		path = append(path, r.To)
	}
	return path, roads
}
