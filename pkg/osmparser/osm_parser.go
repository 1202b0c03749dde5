package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"lintang/roadgraph/pkg/datastructure"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slog"
)

func newProgressBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()), //you should install "github.com/k0kubun/go-ansi"
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// LoadGraph baca file .osm.pbf lalu bangun road graph dari way yang bisa dilewati mobil.
func LoadGraph(ctx context.Context, mapFile string) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, fmt.Errorf("open map file %s: %w", mapFile, err)
	}
	defer f.Close()

	ways, err := ScanWays(ctx, f)
	if err != nil {
		return nil, err
	}
	g, stats := BuildGraph(ways)
	slog.Info("road graph loaded", "ways", stats.Ways, "vertices", stats.Vertices, "edges", stats.Edges)
	return g, nil
}

// ScanWays 2 kali scan: pertama ambil way yang dipakai mobil, kedua isi lat lon node-node way tersebut.
func ScanWays(ctx context.Context, r io.ReadSeeker) ([]*osm.Way, error) {
	scanner := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	bar := newProgressBar(-1, "[cyan][1/3][reset] memproses openstreetmap way...")
	ways := []*osm.Way{}
	wayNodes := make(map[osm.NodeID]struct{})
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || !isOsmWayUsedByCars(way.TagMap()) {
			continue
		}
		ways = append(ways, way)
		for _, n := range way.Nodes {
			wayNodes[n.ID] = struct{}{}
		}
		bar.Add(1)
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("scan osm ways: %w", err)
	}
	scanner.Close()
	fmt.Println("")

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	scanner = osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	nodeLoc := make(map[osm.NodeID][2]float64, len(wayNodes))
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, used := wayNodes[node.ID]; used {
			nodeLoc[node.ID] = [2]float64{node.Lat, node.Lon}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan osm nodes: %w", err)
	}

	complete := ways[:0]
	for _, way := range ways {
		missing := false
		for i := range way.Nodes {
			loc, ok := nodeLoc[way.Nodes[i].ID]
			if !ok {
				missing = true
				break
			}
			way.Nodes[i].Lat = loc[0]
			way.Nodes[i].Lon = loc[1]
		}
		if missing {
			// extract region bisa memotong way di batas wilayah
			slog.Debug("skip way with missing nodes", "way_id", int64(way.ID))
			continue
		}
		complete = append(complete, way)
	}
	return complete, nil
}
