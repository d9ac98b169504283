package parser

import (
	"context"

	"github.com/safewalk/go-safewalk/graph"
	. "github.com/safewalk/go-safewalk/util"
)

//*******************************************
// street data sources
//*******************************************

// IWaySource supplies raw street segments for graph construction. A fetch
// blocks until it returns the full way set or fails, there are no partial
// results.
type IWaySource interface {
	FetchWays(ctx context.Context) ([]graph.RawWay, error)
}

// walkable_types are the highway classes a pedestrian can use.
var walkable_types = Dict[string, bool]{
	"footway": true, "path": true, "pedestrian": true, "steps": true,
	"living_street": true, "residential": true, "service": true,
	"unclassified": true, "tertiary": true, "tertiary_link": true,
	"secondary": true, "secondary_link": true, "primary": true,
	"primary_link": true, "track": true, "cycleway": true, "road": true,
}

func IsWalkableHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !walkable_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	if tags.Get("foot") == "no" || tags.Get("access") == "private" {
		return false
	}
	return true
}
