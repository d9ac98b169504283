package routing

import (
	"github.com/safewalk/go-safewalk/graph"
	"github.com/safewalk/go-safewalk/zone"
)

// KmToMiles is the display-unit conversion applied to route totals.
const KmToMiles = 0.621371

//*******************************************
// route aggregation
//*******************************************

type RouteSummary struct {
	TotalMiles float64          `json:"total_miles"`
	TotalRisk  int32            `json:"total_risk"`
	Segments   int              `json:"segments"`
	MeanRisk   float64          `json:"mean_risk"`
	Safety     zone.SafetyLevel `json:"safety"`
}

// Summarize walks the path edge by edge and derives the route totals and the
// safety classification from the mean risk per segment.
func Summarize(g *graph.Graph, path Path) (RouteSummary, error) {
	edges, ok := path.GetEdges(g)
	if !ok {
		return RouteSummary{}, ErrNoPath
	}
	total_risk := int32(0)
	total_km := 0.0
	for _, edge_id := range edges {
		edge := g.GetEdge(edge_id)
		total_risk += edge.Risk
		total_km += float64(edge.Length)
	}
	segments := edges.Length()
	mean_risk := float64(total_risk) / float64(segments)
	return RouteSummary{
		TotalMiles: total_km * KmToMiles,
		TotalRisk:  total_risk,
		Segments:   segments,
		MeanRisk:   mean_risk,
		Safety:     zone.ClassifyRisk(mean_risk),
	}, nil
}
