package routingalgorithm_test

import (
	"math"
	"testing"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/engine/routingalgorithm"
	"lintang/roadgraph/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var algorithms = []routingalgorithm.Algorithm{
	routingalgorithm.AlgorithmBFS,
	routingalgorithm.AlgorithmDijkstra,
	routingalgorithm.AlgorithmAStar,
}

type testEdge struct {
	from, to int
	length   float64
}

// titik-titik di sekitar (0,0) dengan jarak 0.001 derajat (~0.111 km)
func linePoints(n int) []geo.Point {
	points := make([]geo.Point, n)
	for i := range points {
		points[i] = geo.NewPoint(0, float64(i)*0.001)
	}
	return points
}

func buildGraph(t *testing.T, points []geo.Point, edges []testEdge) *datastructure.Graph {
	t.Helper()
	g := datastructure.NewGraph()
	for _, p := range points {
		g.AddVertex(p)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(points[e.from], points[e.to], "", "residential", e.length))
	}
	return g
}

func TestChainScenario(t *testing.T) {
	p := linePoints(4) // A B C D
	g := buildGraph(t, p, []testEdge{
		{0, 1, 1}, {1, 0, 1},
		{1, 2, 1}, {2, 1, 1},
		{2, 3, 1}, {3, 2, 1},
	})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			res, err := rt.ShortestPath(p[0], p[3], alg, nil)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, p, res.Path)
			assert.InDelta(t, 3.0, res.Cost, 1e-12)
			assert.Equal(t, 3, res.Hops())
			assert.Equal(t, alg, res.Algorithm)
		})
	}
}

func TestTwoRoutesScenario(t *testing.T) {
	p := linePoints(4) // A B C D
	g := buildGraph(t, p, []testEdge{
		{0, 3, 10},
		{0, 1, 1}, {1, 2, 0.5}, {2, 3, 0.5},
	})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	t.Run("dijkstra and astar take the cheaper route", func(t *testing.T) {
		for _, alg := range []routingalgorithm.Algorithm{routingalgorithm.AlgorithmDijkstra, routingalgorithm.AlgorithmAStar} {
			res, err := rt.ShortestPath(p[0], p[3], alg, nil)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, p, res.Path, alg)
			assert.InDelta(t, 2.0, res.Cost, 1e-12, alg)
		}
	})

	t.Run("bfs takes the route with fewer hops", func(t *testing.T) {
		res, err := rt.BFS(p[0], p[3], nil)
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, []geo.Point{p[0], p[3]}, res.Path)
		assert.Equal(t, 1, res.Hops())
		assert.InDelta(t, 10.0, res.Cost, 1e-12)
	})
}

func TestRoadsAlongPath(t *testing.T) {
	p := linePoints(3)
	g := datastructure.NewGraph()
	for _, pt := range p {
		g.AddVertex(pt)
	}
	require.NoError(t, g.AddEdge(p[0], p[1], "Jalan Slamet Riyadi", "primary", 0.5))
	require.NoError(t, g.AddEdge(p[1], p[2], "Jalan Veteran", "secondary", 0.25))

	res, err := routingalgorithm.NewRouteAlgorithm(g).Dijkstra(p[0], p[2], nil)
	require.NoError(t, err)
	assert.Equal(t, []routingalgorithm.Road{
		{From: p[0], To: p[1], StreetName: "Jalan Slamet Riyadi", RoadClass: "primary", Length: 0.5},
		{From: p[1], To: p[2], StreetName: "Jalan Veteran", RoadClass: "secondary", Length: 0.25},
	}, res.Roads)
}

func TestNoPath(t *testing.T) {
	p := linePoints(4)
	g := buildGraph(t, p, []testEdge{
		{0, 1, 1}, {1, 0, 1},
		{2, 3, 1}, {3, 2, 1},
		{3, 1, 1}, // directed, tidak ada jalan balik dari {0,1} ke {2,3}
	})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			visited := []geo.Point{}
			res, err := rt.ShortestPath(p[0], p[3], alg, func(loc geo.Point) {
				visited = append(visited, loc)
			})
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.ElementsMatch(t, []geo.Point{p[0], p[1]}, visited)
			assert.Equal(t, 4, g.GetNumNodes())
			assert.Equal(t, 5, g.GetNumEdges())
		})
	}
}

func TestInvalidEndpoints(t *testing.T) {
	p := linePoints(2)
	g := buildGraph(t, p, []testEdge{{0, 1, 1}})
	rt := routingalgorithm.NewRouteAlgorithm(g)
	unknown := geo.NewPoint(10, 10)

	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			_, err := rt.ShortestPath(unknown, p[1], alg, nil)
			assert.ErrorIs(t, err, datastructure.ErrVertexNotFound)

			_, err = rt.ShortestPath(p[0], unknown, alg, nil)
			assert.ErrorIs(t, err, datastructure.ErrVertexNotFound)

			_, err = rt.ShortestPath(geo.NewPoint(math.NaN(), 0), p[1], alg, nil)
			assert.ErrorIs(t, err, datastructure.ErrInvalidArgument)

			_, err = rt.ShortestPath(p[0], geo.NewPoint(0, 200), alg, nil)
			assert.ErrorIs(t, err, datastructure.ErrInvalidArgument)
		})
	}

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := rt.ShortestPath(p[0], p[1], routingalgorithm.Algorithm("greedy"), nil)
		assert.ErrorIs(t, err, datastructure.ErrInvalidArgument)
	})
}

func TestStartEqualsGoal(t *testing.T) {
	p := linePoints(2)
	g := buildGraph(t, p, []testEdge{{0, 1, 1}})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	for _, alg := range algorithms {
		res, err := rt.ShortestPath(p[1], p[1], alg, nil)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, []geo.Point{p[1]}, res.Path)
		assert.Equal(t, 0.0, res.Cost)
		assert.Equal(t, 1, res.Visited)
	}
}

func TestVisitCallback(t *testing.T) {
	// star: 0 -> 1,2,3 ; 1 -> 4
	p := linePoints(5)
	g := buildGraph(t, p, []testEdge{
		{0, 1, 3}, {0, 2, 1}, {0, 3, 2}, {1, 4, 1},
	})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	t.Run("bfs visits in discovery order", func(t *testing.T) {
		visited := []geo.Point{}
		res, err := rt.BFS(p[0], p[4], func(loc geo.Point) { visited = append(visited, loc) })
		require.NoError(t, err)
		assert.Equal(t, []geo.Point{p[0], p[1], p[2], p[3], p[4]}, visited)
		assert.Equal(t, len(visited), res.Visited)
	})

	t.Run("dijkstra visits in distance order", func(t *testing.T) {
		visited := []geo.Point{}
		res, err := rt.Dijkstra(p[0], p[4], func(loc geo.Point) { visited = append(visited, loc) })
		require.NoError(t, err)
		assert.Equal(t, []geo.Point{p[0], p[2], p[3], p[1], p[4]}, visited)
		assert.InDelta(t, 4.0, res.Cost, 1e-12)
	})
}

func TestStaleFrontierEntriesAreSkipped(t *testing.T) {
	// node 2 masuk frontier dua kali: lewat 0->2 (5) lalu lewat 0->1->2 (2)
	p := linePoints(4)
	g := buildGraph(t, p, []testEdge{
		{0, 2, 5}, {0, 1, 1}, {1, 2, 1}, {2, 3, 10},
	})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	visited := []geo.Point{}
	res, err := rt.Dijkstra(p[0], p[3], func(loc geo.Point) { visited = append(visited, loc) })
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []geo.Point{p[0], p[1], p[2], p[3]}, res.Path)
	assert.InDelta(t, 12.0, res.Cost, 1e-12)
	assert.Equal(t, 4, res.Settled)
	assert.Equal(t, res.Visited, len(visited))
}

func TestRepeatedSearchesAreIndependent(t *testing.T) {
	p := linePoints(4)
	g := buildGraph(t, p, []testEdge{
		{0, 3, 10}, {0, 1, 1}, {1, 2, 0.5}, {2, 3, 0.5}, {3, 0, 1},
	})
	rt := routingalgorithm.NewRouteAlgorithm(g)

	first, err := rt.Dijkstra(p[0], p[3], nil)
	require.NoError(t, err)
	_, err = rt.AStar(p[3], p[1], nil)
	require.NoError(t, err)
	_, err = rt.BFS(p[0], p[3], nil)
	require.NoError(t, err)
	again, err := rt.Dijkstra(p[0], p[3], nil)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// grid rows x cols, edge 4-arah dengan length = jarak great-circle antar titik
func gridGraph(t *testing.T, rows, cols int) (*datastructure.Graph, func(r, c int) geo.Point) {
	t.Helper()
	at := func(r, c int) geo.Point {
		return geo.NewPoint(-7.55+float64(r)*0.001, 110.8+float64(c)*0.001)
	}
	g := datastructure.NewGraph()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddVertex(at(r, c))
		}
	}
	link := func(a, b geo.Point) {
		require.NoError(t, g.AddEdge(a, b, "", "", a.Distance(b)))
		require.NoError(t, g.AddEdge(b, a, "", "", a.Distance(b)))
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r+1 < rows {
				link(at(r, c), at(r+1, c))
			}
			if c+1 < cols {
				link(at(r, c), at(r, c+1))
			}
		}
	}
	return g, at
}

func TestAStarPrunesSearchSpace(t *testing.T) {
	g, at := gridGraph(t, 15, 15)
	rt := routingalgorithm.NewRouteAlgorithm(g)

	dijkstraVisits, astarVisits := 0, 0
	dRes, err := rt.Dijkstra(at(7, 0), at(7, 14), func(geo.Point) { dijkstraVisits++ })
	require.NoError(t, err)
	aRes, err := rt.AStar(at(7, 0), at(7, 14), func(geo.Point) { astarVisits++ })
	require.NoError(t, err)

	require.True(t, dRes.Found)
	require.True(t, aRes.Found)
	assert.InDelta(t, dRes.Cost, aRes.Cost, 1e-9)
	assert.Less(t, aRes.Settled, dRes.Settled)
	assert.LessOrEqual(t, astarVisits, dijkstraVisits)
	assert.Equal(t, 15, len(aRes.Path))
}

type bruteForce struct {
	adj      [][]testEdge
	bestCost float64
	bestHops int
	onPath   []bool
}

func (b *bruteForce) dfs(curr, goal int, cost float64, hops int) {
	if curr == goal {
		b.bestCost = math.Min(b.bestCost, cost)
		if hops < b.bestHops {
			b.bestHops = hops
		}
		return
	}
	b.onPath[curr] = true
	for _, e := range b.adj[curr] {
		if !b.onPath[e.to] {
			b.dfs(e.to, goal, cost+e.length, hops+1)
		}
	}
	b.onPath[curr] = false
}

func TestOptimalityAgainstBruteForce(t *testing.T) {
	const numGraphs = 40
	const n = 7

	for seed := 1; seed <= numGraphs; seed++ {
		r := rand.New(rand.NewSource(uint64(seed)))

		points := make([]geo.Point, n)
		for i := range points {
			points[i] = geo.NewPoint(r.Float64()*0.01, r.Float64()*0.01)
		}
		edges := []testEdge{}
		adj := make([][]testEdge, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || r.Float64() > 0.35 {
					continue
				}
				// length >= jarak great-circle supaya heuristic A* admissible
				e := testEdge{i, j, points[i].Distance(points[j]) * (1 + r.Float64()*2)}
				edges = append(edges, e)
				adj[i] = append(adj[i], e)
			}
		}
		g := buildGraph(t, points, edges)
		rt := routingalgorithm.NewRouteAlgorithm(g)

		for s := 0; s < n; s++ {
			for d := 0; d < n; d++ {
				bf := &bruteForce{adj: adj, bestCost: math.Inf(1), bestHops: math.MaxInt, onPath: make([]bool, n)}
				bf.dfs(s, d, 0, 0)
				reachable := !math.IsInf(bf.bestCost, 1)

				dRes, err := rt.Dijkstra(points[s], points[d], nil)
				require.NoError(t, err)
				aRes, err := rt.AStar(points[s], points[d], nil)
				require.NoError(t, err)
				bRes, err := rt.BFS(points[s], points[d], nil)
				require.NoError(t, err)

				require.Equal(t, reachable, dRes.Found, "seed %d %d->%d", seed, s, d)
				require.Equal(t, reachable, aRes.Found, "seed %d %d->%d", seed, s, d)
				require.Equal(t, reachable, bRes.Found, "seed %d %d->%d", seed, s, d)
				if !reachable {
					continue
				}
				assert.InDelta(t, bf.bestCost, dRes.Cost, 1e-9, "dijkstra seed %d %d->%d", seed, s, d)
				assert.InDelta(t, dRes.Cost, aRes.Cost, 1e-9, "astar seed %d %d->%d", seed, s, d)
				assert.Equal(t, bf.bestHops, bRes.Hops(), "bfs seed %d %d->%d", seed, s, d)

				for _, res := range []routingalgorithm.Result{dRes, aRes, bRes} {
					assert.Equal(t, points[s], res.Path[0])
					assert.Equal(t, points[d], res.Path[len(res.Path)-1])
					assert.Equal(t, res.Hops()+1, len(res.Path))
				}
			}
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]routingalgorithm.Algorithm{
		"bfs":      routingalgorithm.AlgorithmBFS,
		"Dijkstra": routingalgorithm.AlgorithmDijkstra,
		"astar":    routingalgorithm.AlgorithmAStar,
		"A*":       routingalgorithm.AlgorithmAStar,
		" a_star ": routingalgorithm.AlgorithmAStar,
	}
	for in, want := range cases {
		got, err := routingalgorithm.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := routingalgorithm.ParseAlgorithm("dfs")
	assert.ErrorIs(t, err, datastructure.ErrInvalidArgument)
}
