package kv

import (
	"errors"
	"fmt"
	"math"

	"lintang/roadgraph/pkg/concurrent"
	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/geo"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/uber/h3-go/v4"
	"golang.org/x/exp/slog"
)

var ErrNoStreetNearby = errors.New("tidak ada jalan di sekitar lokasi")

const (
	defaultH3Resolution = 9
	searchRadiusKm      = 0.7
	maxGridDiskLevel    = 10
	numSaveWorkers      = 4
)

type Graph interface {
	GetNumEdges() int
	GetEdge(edgeIDx int32) datastructure.Edge
	GetNode(nodeIDx int32) datastructure.Node
}

type KVDB struct {
	db           *pebble.DB
	h3Resolution int
}

// OpenInMemory pebble db di atas in-memory vfs. street index dibangun ulang tiap start dari graph.
func OpenInMemory() (*pebble.DB, error) {
	return pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
}

func NewKVDB(db *pebble.DB, h3Resolution int) *KVDB {
	if h3Resolution <= 0 || h3Resolution > 15 {
		h3Resolution = defaultH3Resolution
	}
	return &KVDB{db: db, h3Resolution: h3Resolution}
}

func newProgressBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
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

// CreateStreetKV index setiap edge graph ke h3 cell dari titik tengah edge, lalu simpan per cell ke pebble.
func (k *KVDB) CreateStreetKV(g Graph) error {
	bar := newProgressBar(g.GetNumEdges(), "[cyan][2/3][reset] Membuat h3 index untuk street...")

	kv := make(map[string][]Street)
	for i := 0; i < g.GetNumEdges(); i++ {
		edge := g.GetEdge(int32(i))
		mid := geo.MidPoint(g.GetNode(edge.From).Location, g.GetNode(edge.To).Location)
		cell := h3.LatLngToCell(h3.NewLatLng(mid.Lat, mid.Lon), k.h3Resolution)

		kv[cell.String()] = append(kv[cell.String()], Street{
			EdgeIDx:    edge.EdgeIDx,
			MidPoint:   []float64{mid.Lat, mid.Lon},
			StreetName: edge.StreetName,
			RoadClass:  edge.RoadClass,
		})
		bar.Add(1)
	}
	fmt.Println("")

	bar = newProgressBar(len(kv), "[cyan][3/3][reset] saving h3 indexed street to pebble db...")

	workers := concurrent.NewWorkerPool[concurrent.SaveStreetJobItem, error](numSaveWorkers, len(kv))
	for keyStr, valArr := range kv {
		bb, err := Encode(valArr)
		if err != nil {
			return fmt.Errorf("encode streets cell %s: %w", keyStr, err)
		}
		workers.AddJob(concurrent.SaveStreetJobItem{KeyStr: keyStr, Val: bb})
	}
	workers.Close()

	workers.Start(k.SaveStreets)
	workers.Wait()

	var errs []error
	for err := range workers.CollectResults() {
		bar.Add(1)
		if err != nil {
			errs = append(errs, err)
		}
	}
	fmt.Println("")

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	slog.Info("street index created", "cells", len(kv), "streets", g.GetNumEdges())
	return nil
}

// SaveStreets compress lalu simpan value satu cell
func (k *KVDB) SaveStreets(item concurrent.SaveStreetJobItem) error {
	val, err := Compress(item.Val)
	if err != nil {
		return fmt.Errorf("compress streets cell %s: %w", item.KeyStr, err)
	}
	if err := k.db.Set([]byte(item.KeyStr), val, pebble.Sync); err != nil {
		return fmt.Errorf("save streets cell %s: %w", item.KeyStr, err)
	}
	return nil
}

func (k *KVDB) getCellStreets(cell h3.Cell) ([]Street, error) {
	val, closer, err := k.db.Get([]byte(cell.String()))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return LoadStreets(val)
}

// GetNearestStreetsFromPointCoord street di cell lat,lon dan cell tetangga dalam radius searchRadiusKm.
// kalau kosong (misal di bandara, hutan, dll) cari dari neighbor h3 cell yang lebih jauh sampai maxGridDiskLevel.
func (k *KVDB) GetNearestStreetsFromPointCoord(lat, lon float64) ([]Street, error) {
	streets := []Street{}

	for _, cell := range k.kRingIndexesArea(lat, lon, searchRadiusKm) {
		cellStreets, err := k.getCellStreets(cell)
		if err != nil {
			return []Street{}, err
		}
		streets = append(streets, cellStreets...)
	}

	origin := h3.LatLngToCell(h3.NewLatLng(lat, lon), k.h3Resolution)
	for lev := 1; lev <= maxGridDiskLevel && len(streets) == 0; lev++ {
		for _, cell := range h3.GridDisk(origin, lev) {
			cellStreets, err := k.getCellStreets(cell)
			if err != nil {
				return []Street{}, err
			}
			streets = append(streets, cellStreets...)
		}
	}

	if len(streets) == 0 {
		return []Street{}, ErrNoStreetNearby
	}
	return streets, nil
}

/*
*
  - https://observablehq.com/@nrabinowitz/h3-radius-lookup?collection=@nrabinowitz/h3
    search cell neighbor dari cell dari lat,lon  yang radius nya = searchRadiusKm
*/
func (k *KVDB) kRingIndexesArea(lat, lon, searchRadiusKm float64) []h3.Cell {
	origin := h3.LatLngToCell(h3.NewLatLng(lat, lon), k.h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea
	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}

	return h3.GridDisk(origin, radius)
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
