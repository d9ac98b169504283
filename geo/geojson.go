package geo

import (
	"github.com/paulmach/orb/geojson"
)

//*******************************************
// geojson helpers
//*******************************************

func NewLineFeature(line CoordArray, props map[string]any) *geojson.Feature {
	feature := geojson.NewFeature(line.LineString())
	for k, v := range props {
		feature.Properties[k] = v
	}
	return feature
}

func NewFeatureCollection(features []*geojson.Feature) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, f := range features {
		collection.Append(f)
	}
	return collection
}
