package main

import (
	"testing"

	"github.com/safewalk/go-safewalk/zone"
)

func TestReadConfig(t *testing.T) {
	config := ReadConfig("./testdata/config.yaml")

	if config.Server.Addr != ":7002" {
		t.Errorf("Server.Addr = %v, want :7002", config.Server.Addr)
	}
	if config.Source.Value == nil {
		t.Fatalf("source not parsed")
	}
	if config.Source.Value.Type() != SOURCE_PBF {
		t.Errorf("source type = %v, want pbf", config.Source.Value.Type())
	}
	pbf, ok := config.Source.Value.(PBFSourceOptions)
	if !ok || pbf.File != "./data/new-haven.pbf" {
		t.Errorf("pbf options = %+v", config.Source.Value)
	}
	if config.Risk.DistanceScale != 50 {
		t.Errorf("DistanceScale = %v, want 50", config.Risk.DistanceScale)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	config := ReadConfig("./testdata/config.yaml")

	// unset values fall back to package defaults
	if config.Risk.Base != zone.RiskBase {
		t.Errorf("Risk.Base = %v, want %v", config.Risk.Base, zone.RiskBase)
	}
	if config.Risk.Max != zone.RiskMax {
		t.Errorf("Risk.Max = %v, want %v", config.Risk.Max, zone.RiskMax)
	}
	if config.Geocoder.URL == "" {
		t.Errorf("Geocoder.URL should default to the public nominatim endpoint")
	}
}

func TestBuildZoneTable(t *testing.T) {
	config := ReadConfig("./testdata/config.yaml")
	table := config.Zones.BuildTable()

	if table.ZoneCount() != 1 {
		t.Fatalf("ZoneCount = %v, want 1", table.ZoneCount())
	}
	if name := table.Classify(41.31, -72.927); name != "Yale Campus" {
		t.Errorf("Classify inside boundary = %v, want Yale Campus", name)
	}
	if name := table.Classify(41.35, -72.99); name != zone.DefaultZone {
		t.Errorf("Classify outside boundary = %v, want default", name)
	}
	if m := table.Multiplier("Yale Campus"); m != 0.25 {
		t.Errorf("Multiplier = %v, want 0.25", m)
	}
}

func TestSourceTypeRoundTrip(t *testing.T) {
	for _, typ := range []SourceType{SOURCE_PBF, SOURCE_OVERPASS} {
		parsed, err := SourceTypeFromString(typ.String())
		if err != nil || parsed != typ {
			t.Errorf("round trip %v -> (%v, %v)", typ, parsed, err)
		}
	}
	if _, err := SourceTypeFromString("carrier-pigeon"); err == nil {
		t.Errorf("expected error for unknown source type")
	}
}
