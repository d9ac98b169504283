package main

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

var MANAGER *RouteManager

func main() {
	InitLogging(slog.LevelInfo)

	config := ReadConfig("./config.yaml")
	manager, err := NewRouteManager(config)
	if err != nil {
		slog.Error("failed to start: " + err.Error())
		os.Exit(1)
	}
	MANAGER = manager

	if err := manager.Rebuild(context.Background(), false); err != nil {
		// the service still comes up, /v0/rebuild can retry the fetch
		slog.Error("initial graph build failed: " + err.Error())
	}

	app := http.DefaultServeMux
	MapPost(app, "/v0/route", HandleRouteRequest)
	MapGet(app, "/v0/geocode", HandleGeocodeRequest)
	MapGet(app, "/v0/geocode/reverse", HandleReverseGeocodeRequest)
	MapPost(app, "/v0/rebuild", HandleRebuildRequest)

	slog.Info("listening on " + config.Server.Addr)
	if err := http.ListenAndServe(config.Server.Addr, nil); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
