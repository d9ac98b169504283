package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slog"

	"github.com/safewalk/go-safewalk/geocode"
	"github.com/safewalk/go-safewalk/graph"
	"github.com/safewalk/go-safewalk/parser"
	"github.com/safewalk/go-safewalk/store"
	. "github.com/safewalk/go-safewalk/util"
	"github.com/safewalk/go-safewalk/zone"
)

//**********************************************************
// route manager
//**********************************************************

// RouteManager owns the current routing graph and everything needed to
// rebuild it. Rebuilds construct a fresh graph and swap it in atomically, so
// concurrent readers never observe a partially built graph.
type RouteManager struct {
	config   Config
	table    *zone.Table
	scorer   *zone.Scorer
	builder  *graph.Builder
	source   parser.IWaySource
	cache    Optional[*store.WayStore]
	geocoder *geocode.Client
	graph    atomic.Pointer[graph.Graph]
}

func NewRouteManager(config Config) (*RouteManager, error) {
	table := config.Zones.BuildTable()
	scorer := zone.NewScorerWith(table, config.Risk.Base, config.Risk.Max)
	builder := graph.NewBuilder(table, scorer)
	builder.SetDistanceScale(config.Risk.DistanceScale)

	source, err := _BuildSource(config)
	if err != nil {
		return nil, err
	}

	cache := None[*store.WayStore]()
	if config.Cache.Postgres != "" {
		way_store, err := store.NewWayStore(config.Cache.Postgres)
		if err != nil {
			slog.Warn("way cache unavailable, rebuilds will always fetch: " + err.Error())
		} else if err := way_store.EnsureSchema(context.Background()); err != nil {
			slog.Warn("way cache unusable: " + err.Error())
			way_store.Close()
		} else {
			cache = Some(way_store)
		}
	}

	manager := &RouteManager{
		config:   config,
		table:    table,
		scorer:   scorer,
		builder:  builder,
		source:   source,
		cache:    cache,
		geocoder: geocode.NewClient(config.Geocoder.URL),
	}
	manager.graph.Store(builder.Build(nil))
	return manager, nil
}

func _BuildSource(config Config) (parser.IWaySource, error) {
	if config.Source.Value == nil {
		return nil, errors.New("no street data source configured")
	}
	switch options := config.Source.Value.(type) {
	case PBFSourceOptions:
		return parser.NewPBFSource(options.File), nil
	case OverpassSourceOptions:
		endpoint := options.Endpoint
		if endpoint == "" {
			endpoint = "https://overpass-api.de/api/interpreter"
		}
		timeout := time.Duration(options.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		return parser.NewOverpassSource(endpoint, options.BBox, timeout), nil
	default:
		return nil, errors.New("unknown street data source")
	}
}

// GetGraph returns the current graph value. Callers hold on to the returned
// pointer for the whole query so a concurrent swap cannot affect them.
func (self *RouteManager) GetGraph() *graph.Graph {
	return self.graph.Load()
}

func (self *RouteManager) GetGeocoder() *geocode.Client {
	return self.geocoder
}

// Rebuild replaces the routing graph wholesale. With force set the way cache
// is bypassed and refreshed from the live source.
func (self *RouteManager) Rebuild(ctx context.Context, force bool) error {
	ways, err := self._LoadWays(ctx, force)
	if err != nil {
		return err
	}
	g := self.builder.Build(ways)
	self.graph.Store(g)
	slog.Info(fmt.Sprintf("graph rebuilt: %v nodes, %v edges from %v ways",
		g.NodeCount(), g.EdgeCount(), len(ways)))
	return nil
}

func (self *RouteManager) _LoadWays(ctx context.Context, force bool) ([]graph.RawWay, error) {
	if !force && self.cache.HasValue() {
		ways, err := self.cache.Value.LoadWays(ctx)
		if err != nil {
			slog.Warn("failed to read way cache: " + err.Error())
		} else if len(ways) > 0 {
			slog.Info(fmt.Sprintf("loaded %v ways from cache", len(ways)))
			return ways, nil
		}
	}
	ways, err := self.source.FetchWays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch street data: %w", err)
	}
	if self.cache.HasValue() {
		// best effort, a stale or empty cache only costs a re-fetch
		if err := self.cache.Value.SaveWays(ctx, ways); err != nil {
			slog.Warn("failed to update way cache: " + err.Error())
		}
	}
	return ways, nil
}
