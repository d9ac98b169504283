package parser

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/serjvanilla/go-overpass"
	"golang.org/x/exp/slog"

	"github.com/safewalk/go-safewalk/graph"
	. "github.com/safewalk/go-safewalk/util"
)

//*******************************************
// overpass source
//*******************************************

// OverpassSource fetches walkable ways inside a bounding box from an
// Overpass API endpoint. bbox is "south,west,north,east" in decimal degrees.
type OverpassSource struct {
	client  *overpass.Client
	bbox    string
	timeout time.Duration
}

func NewOverpassSource(endpoint, bbox string, timeout time.Duration) *OverpassSource {
	http_client := &http.Client{
		Timeout: timeout,
	}
	client := overpass.NewWithSettings(endpoint, 1, http_client)
	return &OverpassSource{
		client:  &client,
		bbox:    bbox,
		timeout: timeout,
	}
}

func (self *OverpassSource) FetchWays(ctx context.Context) ([]graph.RawWay, error) {
	// the client has no context hook, the http timeout bounds the query
	query := fmt.Sprintf(`
		[out:json][timeout:%v];
		(
			way["highway"](%s);
		);
		out body;
		>;
		out skel qt;
	`, int(self.timeout.Seconds()), self.bbox)

	result, err := self.client.Query(query)
	if err != nil {
		return nil, fmt.Errorf("overpass query failed: %w", err)
	}
	ways := ConvertOverpassWays(&result)
	slog.Info(fmt.Sprintf("fetched %v walkable ways from overpass", len(ways)))
	return ways, nil
}

// ConvertOverpassWays turns an overpass result into raw ways, in ascending
// way-id order so node assignment stays deterministic across fetches.
// Unresolved way members come through as invalid points.
func ConvertOverpassWays(result *overpass.Result) []graph.RawWay {
	ids := make([]int64, 0, len(result.Ways))
	for id := range result.Ways {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ways := make([]graph.RawWay, 0, len(ids))
	for _, id := range ids {
		way := result.Ways[id]
		tags := Dict[string, string](way.Tags)
		if !IsWalkableHighway(tags) {
			continue
		}
		points := make([]graph.RawPoint, len(way.Nodes))
		for i, node := range way.Nodes {
			if node == nil {
				points[i] = graph.RawPoint{}
				continue
			}
			points[i] = graph.RawPoint{
				ID:    node.ID,
				Lon:   node.Lon,
				Lat:   node.Lat,
				Valid: true,
			}
		}
		ways = append(ways, graph.RawWay{
			ID:     id,
			Name:   tags.Get("name"),
			Points: points,
		})
	}
	return ways
}
