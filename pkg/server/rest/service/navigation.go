package service

import (
	"context"
	"errors"
	"math"
	"sort"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/engine/routingalgorithm"
	"lintang/roadgraph/pkg/geo"
	"lintang/roadgraph/pkg/kv"
	"lintang/roadgraph/pkg/server"
)

const (
	snapCandidates        = 5
	defaultNearestLimit   = 10
	defaultSnapRadiusKm   = 1.0
	msgLocationNotCovered = "sorry!! the location you entered is not covered on my map :(, please use diferrent opensteetmap pbf file"
)

type Graph interface {
	GetNodeIdx(p geo.Point) (int32, bool)
	GetNode(nodeIDx int32) datastructure.Node
	GetEdge(edgeIDx int32) datastructure.Edge
	GetOutEdges(nodeIDx int32) []int32
	GetNumNodes() int
	GetNumEdges() int
}

type RoutingAlgorithm interface {
	ShortestPath(start, goal geo.Point, alg routingalgorithm.Algorithm, onVisit routingalgorithm.VisitFunc) (routingalgorithm.Result, error)
}

type SpatialIndex interface {
	NearestVertices(p geo.Point, k int) []int32
}

type KVDB interface {
	GetNearestStreetsFromPointCoord(lat, lon float64) ([]kv.Street, error)
}

type NavigationService struct {
	graph        Graph
	routing      RoutingAlgorithm
	spatial      SpatialIndex
	KV           KVDB
	snapRadiusKm float64
}

func NewNavigationService(g Graph, routing RoutingAlgorithm, spatial SpatialIndex, kvDB KVDB, snapRadiusKm float64) *NavigationService {
	if snapRadiusKm <= 0 {
		snapRadiusKm = defaultSnapRadiusKm
	}
	return &NavigationService{graph: g, routing: routing, spatial: spatial, KV: kvDB, snapRadiusKm: snapRadiusKm}
}

type ShortestPathResult struct {
	routingalgorithm.Result
	Source       geo.Point
	Destination  geo.Point
	VisitedOrder []geo.Point
}

// ShortestPath snap src & dst ke vertex graph terdekat lalu search pakai alg.
// goal yang tidak reachable bukan error, Found false.
func (uc *NavigationService) ShortestPath(ctx context.Context, src, dst geo.Point, alg routingalgorithm.Algorithm,
	withVisited bool) (ShortestPathResult, error) {
	from, err := uc.SnapLocToStreetNode(src)
	if err != nil {
		return ShortestPathResult{}, err
	}
	to, err := uc.SnapLocToStreetNode(dst)
	if err != nil {
		return ShortestPathResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return ShortestPathResult{}, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled")
	}

	res := ShortestPathResult{Source: from, Destination: to}
	var onVisit routingalgorithm.VisitFunc
	if withVisited {
		res.VisitedOrder = []geo.Point{}
		onVisit = func(loc geo.Point) {
			res.VisitedOrder = append(res.VisitedOrder, loc)
		}
	}

	res.Result, err = uc.routing.ShortestPath(from, to, alg, onVisit)
	if err != nil {
		return ShortestPathResult{}, wrapRoutingError(err)
	}
	return res, nil
}

func wrapRoutingError(err error) error {
	switch {
	case errors.Is(err, datastructure.ErrInvalidArgument):
		return server.WrapErrorf(err, server.ErrBadParamInput, "%v", err)
	case errors.Is(err, datastructure.ErrVertexNotFound):
		return server.WrapErrorf(err, server.ErrNotFound, "%v", err)
	default:
		return server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
}

/*
SnapLocToStreetNode snap lokasi ke vertex graph. lokasi yang tepat di vertex langsung dipakai.
selain itu ambil beberapa vertex terdekat dari rtree, project lokasi ke setiap road segment yang keluar dari vertex tsb,
road segment dengan hasil projection paling dekat menang lalu ambil endpoint segment yang paling dekat dengan projection.
*/
func (uc *NavigationService) SnapLocToStreetNode(p geo.Point) (geo.Point, error) {
	if !p.IsValid() {
		return geo.Point{}, server.WrapErrorf(datastructure.ErrInvalidArgument, server.ErrBadParamInput, "invalid coordinate %s", p.String())
	}
	if _, ok := uc.graph.GetNodeIdx(p); ok {
		return p, nil
	}

	best := math.Inf(1)
	var snapped geo.Point
	for _, nodeIDx := range uc.spatial.NearestVertices(p, snapCandidates) {
		v := uc.graph.GetNode(nodeIDx).Location
		if d := p.Distance(v); d < best {
			best = d
			snapped = v
		}

		for _, edgeIDx := range uc.graph.GetOutEdges(nodeIDx) {
			w := uc.graph.GetNode(uc.graph.GetEdge(edgeIDx).To).Location
			projection := geo.ProjectToSegment(p, v, w)
			d := p.Distance(projection)
			if d >= best {
				continue
			}
			best = d
			if projection.Distance(v) <= projection.Distance(w) {
				snapped = v
			} else {
				snapped = w
			}
		}
	}

	if math.IsInf(best, 1) || best > uc.snapRadiusKm {
		return geo.Point{}, server.WrapErrorf(datastructure.ErrVertexNotFound, server.ErrNotFound, msgLocationNotCovered)
	}
	return snapped, nil
}

type NearbyStreet struct {
	StreetName string    `json:"street_name"`
	RoadClass  string    `json:"road_class"`
	From       geo.Point `json:"from"`
	To         geo.Point `json:"to"`
	Distance   float64   `json:"distance"` // km dari lokasi query ke road segment
}

// NearestStreets road segment di sekitar p dari street index, urut dari yang paling dekat.
func (uc *NavigationService) NearestStreets(ctx context.Context, p geo.Point, limit int) ([]NearbyStreet, error) {
	if !p.IsValid() {
		return nil, server.WrapErrorf(datastructure.ErrInvalidArgument, server.ErrBadParamInput, "invalid coordinate %s", p.String())
	}
	if limit <= 0 {
		limit = defaultNearestLimit
	}

	streets, err := uc.KV.GetNearestStreetsFromPointCoord(p.Lat, p.Lon)
	if errors.Is(err, kv.ErrNoStreetNearby) {
		return nil, server.WrapErrorf(err, server.ErrNotFound, msgLocationNotCovered)
	}
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}

	nearby := make([]NearbyStreet, 0, len(streets))
	for _, st := range streets {
		edge := uc.graph.GetEdge(st.EdgeIDx)
		from := uc.graph.GetNode(edge.From).Location
		to := uc.graph.GetNode(edge.To).Location
		nearby = append(nearby, NearbyStreet{
			StreetName: st.StreetName,
			RoadClass:  st.RoadClass,
			From:       from,
			To:         to,
			Distance:   p.Distance(geo.ProjectToSegment(p, from, to)),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

type GraphInfo struct {
	NumVertices int `json:"num_vertices"`
	NumEdges    int `json:"num_edges"`
}

func (uc *NavigationService) GraphInfo(ctx context.Context) GraphInfo {
	return GraphInfo{
		NumVertices: uc.graph.GetNumNodes(),
		NumEdges:    uc.graph.GetNumEdges(),
	}
}
