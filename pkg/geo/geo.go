package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusKM = 6371.0

// Point titik lat/lon dalam derajat. Dibandingkan by value, jadi bisa dipakai sebagai key map.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewPoint(lat, lon float64) Point {
	return Point{Lat: lat, Lon: lon}
}

// IsValid false untuk NaN/Inf atau koordinat di luar range lat/lon.
func (p Point) IsValid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Distance great-circle distance in km. symmetric, non-negative and satisfies the triangle inequality.
func (p Point) Distance(other Point) float64 {
	return HaversineDistance(NewLocation(p.Lat, p.Lon), NewLocation(other.Lat, other.Lon))
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat, p.Lon)
}

// Location lat/lon in radian
type Location struct {
	Latitude  float64
	Longitude float64
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

func NewLocation(latDegree float64, lonDegree float64) Location {
	return Location{
		Latitude:  degreeToRadians(latDegree),
		Longitude: degreeToRadians(lonDegree),
	}
}

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func havFormula(one Location, two Location) float64 {
	latDiff := one.Latitude - two.Latitude
	lonDiff := one.Longitude - two.Longitude

	return havFunction(latDiff) + math.Cos(one.Latitude)*math.Cos(two.Latitude)*havFunction(lonDiff)
}

func archaversine(havAngle float64) float64 {
	// rounding bisa bikin havAngle sedikit > 1
	return 2.0 * math.Asin(math.Sqrt(math.Min(1, math.Max(0, havAngle))))
}

func HaversineDistance(one Location, two Location) float64 {
	return earthRadiusKM * archaversine(havFormula(one, two))
}

// MidPoint https://www.movable-type.co.uk/scripts/latlong.html
func MidPoint(a, b Point) Point {
	p1LatRad := degreeToRadians(a.Lat)
	p2LatRad := degreeToRadians(b.Lat)

	diffLon := degreeToRadians(b.Lon - a.Lon)

	bx := math.Cos(p2LatRad) * math.Cos(diffLon)
	by := math.Cos(p2LatRad) * math.Sin(diffLon)

	newLon := degreeToRadians(a.Lon) + math.Atan2(by, math.Cos(p1LatRad)+bx)
	newLat := math.Atan2(math.Sin(p1LatRad)+math.Sin(p2LatRad), math.Sqrt((math.Cos(p1LatRad)+bx)*(math.Cos(p1LatRad)+bx)+by*by))

	return Point{Lat: radToDeg(newLat), Lon: radToDeg(newLon)}
}

// ProjectToSegment proyeksi p ke segment (a,b) di permukaan bola. hasilnya titik di segment yang paling dekat dengan p.
func ProjectToSegment(p, a, b Point) Point {
	if a == b {
		return a
	}
	pS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))

	projection := s2.LatLngFromPoint(s2.Project(pS2, aS2, bS2))
	return Point{Lat: projection.Lat.Degrees(), Lon: projection.Lng.Degrees()}
}
