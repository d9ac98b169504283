package geo

import (
	"github.com/paulmach/orb"
)

//*******************************************
// geometry primitives
//*******************************************

// Coordinate in WGS84 decimal degrees, stored as [lon, lat].
type Coord [2]float32

func NewCoord(lon, lat float64) Coord {
	return Coord{float32(lon), float32(lat)}
}

func (self Coord) Lon() float64 {
	return float64(self[0])
}
func (self Coord) Lat() float64 {
	return float64(self[1])
}
func (self Coord) Point() orb.Point {
	return orb.Point{self.Lon(), self.Lat()}
}

type CoordArray []Coord

func (self CoordArray) LineString() orb.LineString {
	line := make(orb.LineString, len(self))
	for i, c := range self {
		line[i] = c.Point()
	}
	return line
}

// IsValid reports whether the coordinate lies inside the WGS84 domain.
// NaN compares false on both bounds checks.
func (self Coord) IsValid() bool {
	lon := self.Lon()
	lat := self.Lat()
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}
