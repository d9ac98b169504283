package main

import (
	"encoding/json"
	"errors"
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/safewalk/go-safewalk/geo"
	"github.com/safewalk/go-safewalk/graph"
	"github.com/safewalk/go-safewalk/zone"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	config.ApplyDefaults()
	return config
}

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Source SourceOptions `yaml:"source"`
	Cache  struct {
		Postgres string `yaml:"postgres"`
	} `yaml:"cache"`
	Geocoder struct {
		URL string `yaml:"url"`
	} `yaml:"geocoder"`
	Risk  RiskOptions `yaml:"risk"`
	Zones ZoneOptions `yaml:"zones"`
}

func (self *Config) ApplyDefaults() {
	if self.Server.Addr == "" {
		self.Server.Addr = ":5002"
	}
	if self.Geocoder.URL == "" {
		self.Geocoder.URL = "https://nominatim.openstreetmap.org"
	}
	if self.Risk.Base <= 0 {
		self.Risk.Base = zone.RiskBase
	}
	if self.Risk.Max <= 0 {
		self.Risk.Max = zone.RiskMax
	}
	if self.Risk.DistanceScale <= 0 {
		self.Risk.DistanceScale = graph.DistanceScale
	}
	if self.Zones.DefaultMultiplier <= 0 {
		self.Zones.DefaultMultiplier = 1.0
	}
}

//**********************************************************
// risk options
//**********************************************************

// RiskOptions overrides the scoring constants. Zero values fall back to the
// package defaults.
type RiskOptions struct {
	Base          float64 `yaml:"base"`
	Max           int32   `yaml:"max"`
	DistanceScale float64 `yaml:"distance-scale"`
}

//**********************************************************
// zone options
//**********************************************************

type ZoneOptions struct {
	DefaultMultiplier float64     `yaml:"default-multiplier"`
	Zones             []ZoneEntry `yaml:"zones"`
}

type ZoneEntry struct {
	Name       string       `yaml:"name"`
	Multiplier float64      `yaml:"multiplier"`
	Boundary   [][2]float64 `yaml:"boundary"` // [lat, lng] pairs, closed or open ring
}

// BuildTable converts the configured zone list into the static lookup table.
// List order is significant, overlaps resolve to the first entry.
func (self ZoneOptions) BuildTable() *zone.Table {
	zones := make([]zone.Zone, 0, len(self.Zones))
	for _, entry := range self.Zones {
		boundary := make([]geo.Coord, 0, len(entry.Boundary))
		for _, pair := range entry.Boundary {
			boundary = append(boundary, geo.NewCoord(pair[1], pair[0]))
		}
		zones = append(zones, zone.NewZone(entry.Name, boundary, entry.Multiplier))
	}
	return zone.NewTable(zones, self.DefaultMultiplier)
}

//**********************************************************
// source options
//**********************************************************

type SourceOptions struct {
	Value ISourceOptions
}

func (self *SourceOptions) UnmarshalYAML(value *yaml.Node) error {
	m := map[string]interface{}{}
	if err := value.Decode(&m); err != nil {
		return err
	}
	raw, ok := m["type"].(string)
	if !ok {
		return errors.New("source requires a type")
	}
	typ, err := SourceTypeFromString(raw)
	if err != nil {
		return err
	}
	switch typ {
	case SOURCE_PBF:
		val := PBFSourceOptions{}
		value.Decode(&val)
		self.Value = val
	case SOURCE_OVERPASS:
		val := OverpassSourceOptions{}
		value.Decode(&val)
		self.Value = val
	default:
		self.Value = nil
	}
	return nil
}

type ISourceOptions interface {
	Type() SourceType
}

type PBFSourceOptions struct {
	File string `yaml:"file"`
}

func (self PBFSourceOptions) Type() SourceType {
	return SOURCE_PBF
}

type OverpassSourceOptions struct {
	Endpoint       string `yaml:"endpoint"`
	BBox           string `yaml:"bbox"`
	TimeoutSeconds int    `yaml:"timeout-seconds"`
}

func (self OverpassSourceOptions) Type() SourceType {
	return SOURCE_OVERPASS
}

//**********************************************************
// enums
//**********************************************************

type SourceType byte

const (
	SOURCE_PBF      SourceType = 0
	SOURCE_OVERPASS SourceType = 1
)

func (self SourceType) String() string {
	switch self {
	case SOURCE_PBF:
		return "pbf"
	case SOURCE_OVERPASS:
		return "overpass"
	default:
		panic("unknown source type")
	}
}
func (self SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *SourceType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	src_typ, err := SourceTypeFromString(typ)
	*self = src_typ
	return err
}

func SourceTypeFromString(s string) (SourceType, error) {
	switch s {
	case "pbf":
		return SOURCE_PBF, nil
	case "overpass":
		return SOURCE_OVERPASS, nil
	default:
		return SOURCE_PBF, errors.New("unknown source type")
	}
}
