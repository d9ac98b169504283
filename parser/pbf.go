package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slog"

	"github.com/safewalk/go-safewalk/graph"
	. "github.com/safewalk/go-safewalk/util"
)

//*******************************************
// pbf source
//*******************************************

// PBFSource reads walkable ways from an OSM pbf extract.
type PBFSource struct {
	file string
}

func NewPBFSource(file string) *PBFSource {
	return &PBFSource{
		file: file,
	}
}

func (self *PBFSource) FetchWays(ctx context.Context) ([]graph.RawWay, error) {
	file, err := os.Open(self.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open pbf file: %w", err)
	}
	defer file.Close()

	ways := NewList[_TempWay](10000)
	point_refs := NewDict[int64, _TempPoint](10000)

	scanner := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	_ScanWays(scanner, &ways, &point_refs)
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("failed to scan ways: %w", err)
	}
	scanner.Close()

	file.Seek(0, 0)
	scanner = osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	_ScanNodes(scanner, &point_refs)
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("failed to scan nodes: %w", err)
	}
	scanner.Close()

	raw_ways := make([]graph.RawWay, 0, ways.Length())
	for _, way := range ways {
		points := make([]graph.RawPoint, len(way.refs))
		for i, ref := range way.refs {
			point := point_refs.Get(ref)
			points[i] = graph.RawPoint{
				ID:    ref,
				Lon:   point.lon,
				Lat:   point.lat,
				Valid: point.found,
			}
		}
		raw_ways = append(raw_ways, graph.RawWay{
			ID:     way.id,
			Name:   way.name,
			Points: points,
		})
	}
	slog.Info(fmt.Sprintf("parsed %v walkable ways from %v", len(raw_ways), self.file))
	return raw_ways, nil
}

type _TempWay struct {
	id   int64
	name string
	refs []int64
}

type _TempPoint struct {
	lon   float64
	lat   float64
	found bool
}

func _ScanWays(scanner *osmpbf.Scanner, ways *List[_TempWay], point_refs *Dict[int64, _TempPoint]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !IsWalkableHighway(tags) {
				continue
			}
			node_ids := object.Nodes.NodeIDs()
			refs := make([]int64, len(node_ids))
			for i, id := range node_ids {
				ref := id.FeatureID().Ref()
				refs[i] = ref
				if !point_refs.ContainsKey(ref) {
					point_refs.Set(ref, _TempPoint{})
				}
			}
			ways.Add(_TempWay{
				id:   object.FeatureID().Ref(),
				name: tags.Get("name"),
				refs: refs,
			})
		default:
			continue
		}
	}
}

func _ScanNodes(scanner *osmpbf.Scanner, point_refs *Dict[int64, _TempPoint]) {
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !point_refs.ContainsKey(id) {
				continue
			}
			point_refs.Set(id, _TempPoint{
				lon:   object.Lon,
				lat:   object.Lat,
				found: true,
			})
		default:
			continue
		}
	}
}
