package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"golang.org/x/exp/slog"

	"github.com/safewalk/go-safewalk/geo"
	"github.com/safewalk/go-safewalk/geocode"
	"github.com/safewalk/go-safewalk/graph"
	"github.com/safewalk/go-safewalk/routing"
	"github.com/safewalk/go-safewalk/zone"
)

//**********************************************************
// routing requests and responses
//**********************************************************

// Locations are either a [lat, lng] pair or a free-form address resolved
// through the geocoder. A coordinate pair wins when both are set.
type RouteRequest struct {
	Start        []float64 `json:"start"`
	End          []float64 `json:"end"`
	StartAddress string    `json:"start_address"`
	EndAddress   string    `json:"end_address"`
}

type RouteResponse struct {
	Type     string               `json:"type"`
	Features []*geojson.Feature   `json:"features"`
	Summary  routing.RouteSummary `json:"summary"`
}

func NewRouteResponse(g *graph.Graph, path routing.Path, summary routing.RouteSummary) RouteResponse {
	edges, _ := path.GetEdges(g)
	features := make([]*geojson.Feature, 0, edges.Length())
	for i, edge_id := range edges {
		edge := g.GetEdge(edge_id)
		line := geo.CoordArray{
			g.GetNodeGeom(path.Nodes[i]),
			g.GetNodeGeom(path.Nodes[i+1]),
		}
		level := zone.ClassifyRisk(float64(edge.Risk))
		features = append(features, geo.NewLineFeature(line, map[string]any{
			"name":   edge.Name,
			"risk":   edge.Risk,
			"zone":   edge.Zone,
			"safety": level.String(),
			"color":  level.Color(),
			"weight": level.LineWeight(),
		}))
	}
	return RouteResponse{
		Type:     "FeatureCollection",
		Features: features,
		Summary:  summary,
	}
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRouteRequest(req RouteRequest) Result {
	ctx := context.Background()
	start, err := _ResolveLocation(ctx, req.Start, req.StartAddress)
	if err != nil {
		return BadRequest("invalid start location: " + err.Error())
	}
	end, err := _ResolveLocation(ctx, req.End, req.EndAddress)
	if err != nil {
		return BadRequest("invalid end location: " + err.Error())
	}

	g := MANAGER.GetGraph()
	start_node, ok := g.GetClosestNode(start)
	if !ok {
		return BadRequest("no street data loaded")
	}
	end_node, _ := g.GetClosestNode(end)

	slog.Debug(fmt.Sprintf("routing from node %v to node %v", start_node, end_node))
	path, err := routing.ShortestPath(g, start_node, end_node)
	if errors.Is(err, routing.ErrNoPath) {
		return NotFound("no path found")
	}
	if err != nil {
		return BadRequest(err.Error())
	}
	summary, err := routing.Summarize(g, path)
	if err != nil {
		return ServerError(err.Error())
	}
	return OK(NewRouteResponse(g, path, summary))
}

func _ResolveLocation(ctx context.Context, coords []float64, address string) (geo.Coord, error) {
	if len(coords) == 2 {
		c := geo.NewCoord(coords[1], coords[0])
		if !c.IsValid() {
			return geo.Coord{}, errors.New("coordinate out of range")
		}
		return c, nil
	}
	if address != "" {
		place, err := MANAGER.GetGeocoder().Search(ctx, address)
		if err != nil {
			return geo.Coord{}, err
		}
		return geo.NewCoord(place.Lon, place.Lat), nil
	}
	return geo.Coord{}, errors.New("need a [lat, lng] pair or an address")
}

//**********************************************************
// geocoding handlers
//**********************************************************

type GeocodeRequest struct {
	Query string `json:"query"`
}

func HandleGeocodeRequest(req GeocodeRequest) Result {
	if req.Query == "" {
		return BadRequest("query must not be empty")
	}
	place, err := MANAGER.GetGeocoder().Search(context.Background(), req.Query)
	if errors.Is(err, geocode.ErrNotFound) {
		return NotFound("address not found")
	}
	if err != nil {
		return ServerError(err.Error())
	}
	return OK(place)
}

type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func HandleReverseGeocodeRequest(req ReverseGeocodeRequest) Result {
	place, err := MANAGER.GetGeocoder().Reverse(context.Background(), req.Lat, req.Lng)
	if errors.Is(err, geocode.ErrNotFound) {
		return NotFound("nothing known at this location")
	}
	if err != nil {
		return ServerError(err.Error())
	}
	return OK(place)
}

//**********************************************************
// rebuild handler
//**********************************************************

type RebuildRequest struct {
	Force bool `json:"force"`
}

type RebuildResponse struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

func HandleRebuildRequest(req RebuildRequest) Result {
	if err := MANAGER.Rebuild(context.Background(), req.Force); err != nil {
		return ServerError(err.Error())
	}
	g := MANAGER.GetGraph()
	return OK(RebuildResponse{
		Nodes: g.NodeCount(),
		Edges: g.EdgeCount(),
	})
}
