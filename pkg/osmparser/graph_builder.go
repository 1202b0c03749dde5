package osmparser

import (
	"fmt"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"

	"github.com/paulmach/osm"
	"golang.org/x/exp/slog"
)

var ValidRoadType = map[string]bool{
	"motorway":       true,
	"trunk":          true,
	"primary":        true,
	"secondary":      true,
	"tertiary":       true,
	"unclassified":   true,
	"residential":    true,
	"motorway_link":  true,
	"trunk_link":     true,
	"primary_link":   true,
	"secondary_link": true,
	"tertiary_link":  true,
	"living_street":  true,
	"road":           true,
	"service":        true,
}

type BuildStats struct {
	Ways     int
	Vertices int
	Edges    int
}

type wayInfo struct {
	streetName     string
	roadClass      string
	isOneWay       bool
	reversedOneWay bool
}

func getWayInfo(way *osm.Way) wayInfo {
	tags := way.TagMap()
	info := wayInfo{
		streetName: tags["name"],
		roadClass:  tags["highway"],
	}
	switch tags["oneway"] {
	case "yes", "true", "1":
		info.isOneWay = true
	case "-1", "reverse":
		info.isOneWay = true
		info.reversedOneWay = true
	case "no", "false", "0":
	default:
		if tags["junction"] == "roundabout" || tags["highway"] == "motorway" {
			info.isOneWay = true
		}
	}
	return info
}

/*
BuildGraph bangun road graph dari way osm yang lat lon node-nya sudah terisi.

vertex graph hanya node intersection (dipakai >= 2 kali oleh way) dan node ujung way.
node di antara 2 vertex digabung jadi satu edge dengan length = total jarak haversine (km) sepanjang way.
*/
func BuildGraph(ways []*osm.Way) (*datastructure.Graph, BuildStats) {
	usedInRoad := make(map[osm.NodeID]int)
	carWays := make([]*osm.Way, 0, len(ways))
	for _, way := range ways {
		if !isOsmWayUsedByCars(way.TagMap()) || len(way.Nodes) < 2 {
			continue
		}
		carWays = append(carWays, way)
		for _, n := range way.Nodes {
			usedInRoad[n.ID]++
		}
	}

	bar := newProgressBar(len(carWays), "[cyan][2/3][reset] membuat road graph dari openstreetmap way...")
	g := datastructure.NewGraph()
	for _, way := range carWays {
		addWay(g, way, usedInRoad)
		bar.Add(1)
	}
	fmt.Println("")

	return g, BuildStats{
		Ways:     len(carWays),
		Vertices: g.GetNumNodes(),
		Edges:    g.GetNumEdges(),
	}
}

func addWay(g *datastructure.Graph, way *osm.Way, usedInRoad map[osm.NodeID]int) {
	info := getWayInfo(way)
	last := len(way.Nodes) - 1

	from := wayNodePoint(way.Nodes[0])
	g.AddVertex(from)

	length := 0.0
	prev := from
	for i := 1; i <= last; i++ {
		curr := wayNodePoint(way.Nodes[i])
		length += prev.Distance(curr)
		prev = curr

		if i != last && usedInRoad[way.Nodes[i].ID] < 2 {
			continue
		}
		if curr == from {
			// loop tertutup tanpa intersection di tengah
			length = 0
			continue
		}

		g.AddVertex(curr)
		if !info.isOneWay || !info.reversedOneWay {
			addEdge(g, from, curr, info, length)
		}
		if !info.isOneWay || info.reversedOneWay {
			addEdge(g, curr, from, info, length)
		}
		from = curr
		length = 0
	}
}

func addEdge(g *datastructure.Graph, from, to geo.Point, info wayInfo, length float64) {
	if err := g.AddEdge(from, to, info.streetName, info.roadClass, length); err != nil {
		slog.Debug("skip osm segment", "from", from.String(), "to", to.String(), "error", err)
	}
}

func wayNodePoint(n osm.WayNode) geo.Point {
	return geo.NewPoint(n.Lat, n.Lon)
}

func isOsmWayUsedByCars(tagMap map[string]string) bool {
	highway, okHW := tagMap["highway"]
	if !okHW {
		return false
	}

	if motorcar, ok := tagMap["motorcar"]; ok && motorcar == "no" {
		return false
	}
	if motorVehicle, ok := tagMap["motor_vehicle"]; ok && motorVehicle == "no" {
		return false
	}

	if access, ok := tagMap["access"]; ok {
		if !(access == "yes" || access == "permissive" || access == "designated" || access == "delivery" || access == "destination") {
			return false
		}
	}

	return ValidRoadType[highway]
}
