package osmparser

import (
	"testing"

	"lintang/roadgraph/pkg/geo"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wayNode(id int64, lat, lon float64) osm.WayNode {
	return osm.WayNode{ID: osm.NodeID(id), Lat: lat, Lon: lon}
}

func newWay(id int64, nodes osm.WayNodes, tags ...string) *osm.Way {
	way := &osm.Way{ID: osm.WayID(id), Nodes: nodes}
	for i := 0; i+1 < len(tags); i += 2 {
		way.Tags = append(way.Tags, osm.Tag{Key: tags[i], Value: tags[i+1]})
	}
	return way
}

func TestBuildGraph(t *testing.T) {
	n1 := wayNode(1, -7.5660, 110.8200)
	n2 := wayNode(2, -7.5660, 110.8210) // shape point
	n3 := wayNode(3, -7.5660, 110.8220) // intersection
	n4 := wayNode(4, -7.5660, 110.8230)
	n5 := wayNode(5, -7.5670, 110.8220)
	n6 := wayNode(6, -7.5680, 110.8220)

	ways := []*osm.Way{
		newWay(10, osm.WayNodes{n1, n2, n3, n4}, "highway", "primary", "name", "Jalan Slamet Riyadi"),
		newWay(11, osm.WayNodes{n3, n5}, "highway", "residential", "oneway", "yes", "name", "Jalan Kebangkitan"),
		newWay(12, osm.WayNodes{n6, n5}, "highway", "residential", "oneway", "-1"),
		newWay(13, osm.WayNodes{n1, n6}, "highway", "footway"),
		newWay(14, osm.WayNodes{n4, n6}, "highway", "service", "access", "private"),
	}

	g, stats := BuildGraph(ways)
	assert.Equal(t, 3, stats.Ways)

	p := func(n osm.WayNode) geo.Point { return geo.NewPoint(n.Lat, n.Lon) }

	t.Run("only intersections and way ends become vertices", func(t *testing.T) {
		assert.Equal(t, 5, stats.Vertices)
		for _, n := range []osm.WayNode{n1, n3, n4, n5, n6} {
			_, ok := g.GetNodeIdx(p(n))
			assert.True(t, ok, n.ID)
		}
		_, ok := g.GetNodeIdx(p(n2))
		assert.False(t, ok)
	})

	t.Run("shape points are merged into edge length", func(t *testing.T) {
		from, _ := g.GetNodeIdx(p(n1))
		to, _ := g.GetNodeIdx(p(n3))
		found := false
		for _, e := range g.GetOutEdges(from) {
			edge := g.GetEdge(e)
			if edge.To == to {
				found = true
				want := p(n1).Distance(p(n2)) + p(n2).Distance(p(n3))
				assert.InDelta(t, want, edge.Length, 1e-12)
				assert.Equal(t, "Jalan Slamet Riyadi", edge.StreetName)
				assert.Equal(t, "primary", edge.RoadClass)
			}
		}
		assert.True(t, found)
	})

	t.Run("oneway handling", func(t *testing.T) {
		n3Idx, _ := g.GetNodeIdx(p(n3))
		n5Idx, _ := g.GetNodeIdx(p(n5))
		n6Idx, _ := g.GetNodeIdx(p(n6))

		assert.Contains(t, g.Neighbors(n3Idx), n5Idx)
		assert.NotContains(t, g.Neighbors(n5Idx), n3Idx)

		// oneway=-1 berlawanan arah dengan urutan node way
		assert.Contains(t, g.Neighbors(n5Idx), n6Idx)
		assert.NotContains(t, g.Neighbors(n6Idx), n5Idx)
	})

	// 2 arah primary (n1-n3, n3-n4) + 1 + 1
	assert.Equal(t, 6, stats.Edges)
}

func TestIsOsmWayUsedByCars(t *testing.T) {
	cases := []struct {
		tags map[string]string
		want bool
	}{
		{map[string]string{"highway": "residential"}, true},
		{map[string]string{"highway": "footway"}, false},
		{map[string]string{"highway": "track"}, false},
		{map[string]string{"building": "yes"}, false},
		{map[string]string{"highway": "primary", "motorcar": "no"}, false},
		{map[string]string{"highway": "primary", "motor_vehicle": "no"}, false},
		{map[string]string{"highway": "service", "access": "private"}, false},
		{map[string]string{"highway": "service", "access": "destination"}, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, isOsmWayUsedByCars(c.tags), c.tags)
	}
}

func TestClosedWayWithoutIntersection(t *testing.T) {
	a := wayNode(1, 0, 0)
	b := wayNode(2, 0, 0.001)
	c := wayNode(3, 0.001, 0.001)
	g, stats := BuildGraph([]*osm.Way{
		newWay(1, osm.WayNodes{a, b, c, a}, "highway", "residential"),
	})
	require.Equal(t, 1, stats.Ways)
	assert.Equal(t, 1, g.GetNumNodes())
	assert.Equal(t, 0, g.GetNumEdges())
}
