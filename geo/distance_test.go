package geo

import (
	"math"
	"testing"
)

func TestHaversineDist(t *testing.T) {
	// one degree of latitude is ~111.19 km on a 6371 km sphere
	a := NewCoord(-72.93, 41.0)
	b := NewCoord(-72.93, 42.0)
	dist := HaversineDist(a, b)
	if math.Abs(dist-111.19) > 0.1 {
		t.Errorf("HaversineDist = %v km, want ~111.19", dist)
	}
}

func TestHaversineDistZero(t *testing.T) {
	a := NewCoord(-72.93, 41.31)
	if dist := HaversineDist(a, a); dist != 0 {
		t.Errorf("distance to self = %v, want 0", dist)
	}
}

func TestHaversineDistSymmetric(t *testing.T) {
	a := NewCoord(-72.93, 41.31)
	b := NewCoord(-72.92, 41.30)
	d1 := HaversineDist(a, b)
	d2 := HaversineDist(b, a)
	if math.Abs(d1-d2) > 1e-12 {
		t.Errorf("distance not symmetric: %v != %v", d1, d2)
	}
}

func TestMidpoint(t *testing.T) {
	a := NewCoord(-72.0, 41.0)
	b := NewCoord(-73.0, 42.0)
	mid := Midpoint(a, b)
	if math.Abs(mid.Lon()+72.5) > 1e-5 || math.Abs(mid.Lat()-41.5) > 1e-5 {
		t.Errorf("Midpoint = %v", mid)
	}
}

func TestCoordIsValid(t *testing.T) {
	cases := []struct {
		coord Coord
		want  bool
	}{
		{NewCoord(-72.93, 41.31), true},
		{NewCoord(-181, 0), false},
		{NewCoord(0, 91), false},
		{NewCoord(math.NaN(), 41.31), false},
		{NewCoord(-72.93, math.NaN()), false},
	}
	for _, c := range cases {
		if got := c.coord.IsValid(); got != c.want {
			t.Errorf("IsValid(%v) = %v, want %v", c.coord, got, c.want)
		}
	}
}
