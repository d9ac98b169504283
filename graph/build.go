package graph

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/safewalk/go-safewalk/geo"
	. "github.com/safewalk/go-safewalk/util"
	"github.com/safewalk/go-safewalk/zone"
)

// DistanceScale converts edge length (km) into weight units, making a 10 m
// length increment roughly comparable to one risk point. Tunable.
const DistanceScale = 100.0

// UnnamedStreet is the display name given to ways without one.
const UnnamedStreet = "Unnamed Street"

//*******************************************
// raw input
//*******************************************

// RawPoint is one coordinate of a source way. Valid is false when the source
// data could not resolve the point (missing node ref in the extract).
type RawPoint struct {
	ID    int64
	Lon   float64
	Lat   float64
	Valid bool
}

func (self RawPoint) Coord() geo.Coord {
	return geo.NewCoord(self.Lon, self.Lat)
}

// RawWay is one named street segment sequence as delivered by a street data
// source. Consumed entirely during graph construction.
type RawWay struct {
	ID     int64
	Name   string
	Points []RawPoint
}

//*******************************************
// graph builder
//*******************************************

// Builder converts raw ways into a routing graph, scoring every segment from
// its midpoint. Builds are deterministic, identical input yields an identical
// graph.
type Builder struct {
	table          *zone.Table
	scorer         *zone.Scorer
	distance_scale float64
}

func NewBuilder(table *zone.Table, scorer *zone.Scorer) *Builder {
	return &Builder{
		table:          table,
		scorer:         scorer,
		distance_scale: DistanceScale,
	}
}

func (self *Builder) SetDistanceScale(scale float64) {
	if scale > 0 {
		self.distance_scale = scale
	}
}

// Build constructs a new graph from the given ways. Ways with fewer than two
// points contribute nothing, segments with invalid endpoints are dropped
// locally, an empty input yields an empty graph.
func (self *Builder) Build(ways []RawWay) *Graph {
	nodes := NewList[Node](1000)
	edges := NewList[Edge](1000)
	index_mapping := NewDict[int64, int32](1000)
	dropped := 0

	for _, way := range ways {
		if len(way.Points) < 2 {
			continue
		}
		// nodes first, dedup by source id in first-seen order
		for _, point := range way.Points {
			if !_UsablePoint(point) {
				continue
			}
			if index_mapping.ContainsKey(point.ID) {
				continue
			}
			index_mapping.Set(point.ID, int32(nodes.Length()))
			nodes.Add(Node{Loc: point.Coord()})
		}
		name := way.Name
		if name == "" {
			name = UnnamedStreet
		}
		for i := 1; i < len(way.Points); i++ {
			point_a := way.Points[i-1]
			point_b := way.Points[i]
			if !_UsablePoint(point_a) || !_UsablePoint(point_b) {
				dropped += 1
				continue
			}
			node_a := index_mapping.Get(point_a.ID)
			node_b := index_mapping.Get(point_b.ID)
			if node_a == node_b {
				dropped += 1
				continue
			}
			coord_a := point_a.Coord()
			coord_b := point_b.Coord()
			mid := geo.Midpoint(coord_a, coord_b)
			risk := self.scorer.Score(mid.Lat(), mid.Lon())
			length := geo.HaversineDist(coord_a, coord_b)
			weight := float64(risk) + length*self.distance_scale
			edges.Add(Edge{
				NodeA:  node_a,
				NodeB:  node_b,
				Risk:   risk,
				Length: float32(length),
				Weight: float32(weight),
				WayID:  way.ID,
				Name:   name,
				Zone:   self.table.Classify(mid.Lat(), mid.Lon()),
			})
		}
	}

	if dropped > 0 {
		slog.Debug(fmt.Sprintf("dropped %v unusable segments during build", dropped))
	}
	return NewGraph(Array[Node](nodes), Array[Edge](edges))
}

func _UsablePoint(point RawPoint) bool {
	return point.Valid && point.Coord().IsValid()
}
