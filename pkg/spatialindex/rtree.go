package spatialindex

import (
	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

var tol = 0.0001

type Graph interface {
	GetNumNodes() int
	GetNode(nodeIDx int32) datastructure.Node
}

// VertexRect vertex graph di rtree, rect dengan sisi 2 * tol yang center nya di lokasi vertex
type VertexRect struct {
	Location rtreego.Point
	NodeIDx  int32
}

func (v *VertexRect) Bounds() rtreego.Rect {
	return v.Location.ToRect(tol)
}

type Rtree struct {
	tree *rtreego.Rtree
}

// NewRtree bulk load semua vertex graph. graph tidak boleh dimutasi setelah ini.
func NewRtree(g Graph) *Rtree {
	objs := make([]rtreego.Spatial, 0, g.GetNumNodes())
	for i := 0; i < g.GetNumNodes(); i++ {
		node := g.GetNode(int32(i))
		objs = append(objs, &VertexRect{
			Location: rtreego.Point{node.Location.Lat, node.Location.Lon},
			NodeIDx:  node.IDx,
		})
	}
	return &Rtree{
		tree: rtreego.NewTree(2, 25, 50, objs...), // 2 dimension, 25 min entries dan 50 max entries
	}
}

// NearestVertices k vertex terdekat dari p, urut dari yang paling dekat (jarak planar lat/lon).
func (rt *Rtree) NearestVertices(p geo.Point, k int) []int32 {
	neighbors := rt.tree.NearestNeighbors(k, rtreego.Point{p.Lat, p.Lon})
	nodes := make([]int32, 0, len(neighbors))
	for _, n := range neighbors {
		if n == nil {
			continue
		}
		nodes = append(nodes, n.(*VertexRect).NodeIDx)
	}
	return nodes
}

func (rt *Rtree) Size() int {
	return rt.tree.Size()
}
