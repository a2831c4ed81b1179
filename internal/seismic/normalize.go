package seismic

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/knmi-induced/internal/rd"
)

// NormalizeEvent parses the numeric fields of a raw record.
// It fails only when one of depth, lat, lon or mag cannot be parsed.
func NormalizeEvent(raw RawEventRecord) (DomainEvent, error) {
	ev := DomainEvent{
		Date:           raw.Date,
		Time:           raw.Time,
		EvaluationMode: raw.EvaluationMode,
		Place:          raw.Place,
		Type:           raw.Type,
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *float64
	}{
		{"depth", raw.Depth, &ev.Depth},
		{"lat", raw.Lat, &ev.Lat},
		{"lon", raw.Lon, &ev.Lon},
		{"mag", raw.Mag, &ev.Mag},
	}
	for _, f := range fields {
		v, err := ParseNumber(f.raw)
		if err != nil {
			return DomainEvent{}, fmt.Errorf("field %s: %w", f.name, err)
		}
		*f.dst = v
	}

	return ev, nil
}

// NewGeoFeature derives the projected feature for an event.
// A malformed year yields 0; a malformed date or time yields an invalid Datetime.
func NewGeoFeature(ev DomainEvent) GeoFeature {
	year, _ := ParseYear(ev.Date)
	return GeoFeature{
		Geometry: rd.FromWGS84(ev.Lat, ev.Lon),
		Properties: FeatureProperties{
			Date:           ev.Date,
			Year:           year,
			Depth:          ev.Depth,
			EvaluationMode: ev.EvaluationMode,
			Mag:            ev.Mag,
			Place:          ev.Place,
			Time:           ev.Time,
		},
		Datetime: ParseTimestamp(ev.Date + " " + ev.Time),
	}
}

// NormalizeResult holds index-aligned events and features from one batch.
type NormalizeResult struct {
	Events            Dataset
	Features          FeatureCollection
	Dropped           int
	InvalidTimestamps int
}

// Normalizer turns raw upstream records into events and features, logging
// every record it drops or degrades.
type Normalizer struct {
	logger *logrus.Logger
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(logger *logrus.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize processes a batch in order. Records with unparseable numeric
// fields are dropped; the rest of the batch is kept.
func (n *Normalizer) Normalize(records []RawEventRecord) NormalizeResult {
	res := NormalizeResult{
		Events:   make(Dataset, 0, len(records)),
		Features: make(FeatureCollection, 0, len(records)),
	}

	for i, raw := range records {
		log := n.logger.WithFields(logrus.Fields{
			"component": "normalizer",
			"index":     i,
			"date":      raw.Date,
			"time":      raw.Time,
			"place":     raw.Place,
		})

		ev, err := NormalizeEvent(raw)
		if err != nil {
			log.WithError(err).Warn("dropping record with malformed numeric field")
			res.Dropped++
			continue
		}

		feature := NewGeoFeature(ev)
		if _, err := ParseYear(ev.Date); err != nil {
			log.WithError(err).Warn("record has no parseable year")
		}
		if !feature.Datetime.Valid() {
			log.WithField("datetime", feature.Datetime.Original()).
				Error("failed to parse event datetime; using minimum timestamp")
			res.InvalidTimestamps++
		}

		res.Events = append(res.Events, ev)
		res.Features = append(res.Features, feature)
	}

	return res
}
