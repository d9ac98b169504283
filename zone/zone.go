package zone

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/safewalk/go-safewalk/geo"
)

// DefaultZone is returned by Classify when no configured zone contains the point.
const DefaultZone = "default"

//*******************************************
// zone table
//*******************************************

type Zone struct {
	Name       string
	Boundary   orb.Ring
	Multiplier float64
}

func NewZone(name string, boundary []geo.Coord, multiplier float64) Zone {
	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, c := range boundary {
		ring = append(ring, c.Point())
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return Zone{
		Name:       name,
		Boundary:   ring,
		Multiplier: multiplier,
	}
}

// Table holds the static zone configuration.
// Zones are checked in configured order, overlaps resolve to the first match.
type Table struct {
	zones              []Zone
	default_multiplier float64
}

func NewTable(zones []Zone, default_multiplier float64) *Table {
	if default_multiplier <= 0 {
		default_multiplier = 1.0
	}
	return &Table{
		zones:              zones,
		default_multiplier: default_multiplier,
	}
}

func (self *Table) ZoneCount() int {
	return len(self.zones)
}

// Classify maps a coordinate to the name of the first zone containing it.
func (self *Table) Classify(lat, lon float64) string {
	point := orb.Point{lon, lat}
	for _, z := range self.zones {
		if planar.RingContains(z.Boundary, point) {
			return z.Name
		}
	}
	return DefaultZone
}

// Multiplier returns the risk multiplier for a zone name.
func (self *Table) Multiplier(name string) float64 {
	for _, z := range self.zones {
		if z.Name == name {
			return z.Multiplier
		}
	}
	return self.default_multiplier
}
