package geo

import (
	"math"
)

// EarthRadiusKm is the mean earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

const deg_to_rad = math.Pi / 180.0

//*******************************************
// spherical geometry
//*******************************************

// HaversineDist returns the great-circle distance between two points in km.
func HaversineDist(a, b Coord) float64 {
	lat_a := a.Lat() * deg_to_rad
	lat_b := b.Lat() * deg_to_rad
	d_lat := (b.Lat() - a.Lat()) * deg_to_rad
	d_lon := (b.Lon() - a.Lon()) * deg_to_rad

	h := math.Sin(d_lat/2)*math.Sin(d_lat/2) +
		math.Cos(lat_a)*math.Cos(lat_b)*math.Sin(d_lon/2)*math.Sin(d_lon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Midpoint returns the arithmetic midpoint of two coordinates.
// Segments are short enough that spherical interpolation is not worth it.
func Midpoint(a, b Coord) Coord {
	return NewCoord((a.Lon()+b.Lon())/2, (a.Lat()+b.Lat())/2)
}
