package main

import (
	"testing"
)

func TestNewRouteManager(t *testing.T) {
	config := ReadConfig("./testdata/config.yaml")
	manager, err := NewRouteManager(config)
	if err != nil {
		t.Fatalf("NewRouteManager: %v", err)
	}
	g := manager.GetGraph()
	if g == nil {
		t.Fatalf("manager must expose a graph before the first rebuild")
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("initial graph = (%v, %v), want empty", g.NodeCount(), g.EdgeCount())
	}
	if manager.GetGeocoder() == nil {
		t.Errorf("geocoder not wired")
	}
}

func TestNewRouteManagerNoSource(t *testing.T) {
	config := Config{}
	config.ApplyDefaults()
	if _, err := NewRouteManager(config); err == nil {
		t.Errorf("expected error without a street data source")
	}
}
