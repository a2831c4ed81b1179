package seismic

import (
	"encoding/json"

	geojson "github.com/paulmach/go.geojson"

	"github.com/i474232898/knmi-induced/internal/rd"
)

// RawFeed is the upstream document as published by KNMI.
type RawFeed struct {
	Events []RawEventRecord `json:"events"`
}

// RawEventRecord is one upstream event. Numeric fields are kept as raw JSON
// because the feed mixes number literals and numeric strings.
type RawEventRecord struct {
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Depth          json.RawMessage `json:"depth"`
	Lat            json.RawMessage `json:"lat"`
	Lon            json.RawMessage `json:"lon"`
	Mag            json.RawMessage `json:"mag"`
	EvaluationMode string          `json:"evaluationMode"`
	Place          string          `json:"place"`
	Type           string          `json:"type"`
}

// DomainEvent is a normalized event with numeric fields parsed.
type DomainEvent struct {
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Depth          float64 `json:"depth"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	Mag            float64 `json:"mag"`
	EvaluationMode string  `json:"evaluationMode"`
	Place          string  `json:"place"`
	Type           string  `json:"type"`
}

// Dataset is the event list in upstream order.
type Dataset []DomainEvent

// FeatureProperties are the public attributes of a GeoFeature.
type FeatureProperties struct {
	Date           string
	Year           int
	Depth          float64
	EvaluationMode string
	Mag            float64
	Place          string
	Time           string
}

// GeoFeature is an event projected onto the RD grid.
// Datetime is used for filtering only and is never serialized.
type GeoFeature struct {
	Geometry   rd.Point
	Properties FeatureProperties
	Datetime   Timestamp
}

// GeoJSON renders the feature as a GeoJSON Point feature.
func (f GeoFeature) GeoJSON() *geojson.Feature {
	feature := geojson.NewPointFeature([]float64{f.Geometry.X, f.Geometry.Y})
	feature.SetProperty("date", f.Properties.Date)
	feature.SetProperty("year", f.Properties.Year)
	feature.SetProperty("depth", f.Properties.Depth)
	feature.SetProperty("evaluationMode", f.Properties.EvaluationMode)
	feature.SetProperty("mag", f.Properties.Mag)
	feature.SetProperty("place", f.Properties.Place)
	feature.SetProperty("time", f.Properties.Time)
	return feature
}

// MarshalJSON encodes the feature in its GeoJSON form.
func (f GeoFeature) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.GeoJSON())
}

// FeatureCollection is the feature list, index-aligned with the Dataset it was built from.
type FeatureCollection []GeoFeature

// GeoJSON renders the collection as a GeoJSON FeatureCollection.
// An empty collection encodes "features" as an empty array.
func (fc FeatureCollection) GeoJSON() *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	out.Features = make([]*geojson.Feature, 0, len(fc))
	for _, f := range fc {
		out.AddFeature(f.GeoJSON())
	}
	return out
}
