package seismic

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/knmi-induced/internal/rd"
)

func loppersumRecord() RawEventRecord {
	return RawEventRecord{
		Date:           "2023-05-03",
		Time:           "07:31:24",
		Depth:          json.RawMessage(`"3"`),
		Lat:            json.RawMessage(`"53.310"`),
		Lon:            json.RawMessage(`"6.560"`),
		Mag:            json.RawMessage(`"1.2"`),
		EvaluationMode: "manual",
		Place:          "Loppersum",
		Type:           "induced",
	}
}

func TestNormalizeEvent(t *testing.T) {
	ev, err := NormalizeEvent(loppersumRecord())
	require.NoError(t, err)

	assert.Equal(t, DomainEvent{
		Date:           "2023-05-03",
		Time:           "07:31:24",
		Depth:          3,
		Lat:            53.31,
		Lon:            6.56,
		Mag:            1.2,
		EvaluationMode: "manual",
		Place:          "Loppersum",
		Type:           "induced",
	}, ev)
}

func TestNormalizeEvent_BadField(t *testing.T) {
	raw := loppersumRecord()
	raw.Mag = json.RawMessage(`"n/a"`)

	_, err := NormalizeEvent(raw)
	require.ErrorIs(t, err, ErrInvalidNumber)
	assert.Contains(t, err.Error(), "mag")
}

func TestNewGeoFeature(t *testing.T) {
	ev, err := NormalizeEvent(loppersumRecord())
	require.NoError(t, err)

	f := NewGeoFeature(ev)
	assert.Equal(t, rd.Point{X: 233171, Y: 592141}, f.Geometry)
	assert.Equal(t, 2023, f.Properties.Year)
	assert.True(t, f.Datetime.Valid())
	assert.Equal(t, "Loppersum", f.Properties.Place)
}

func TestNormalizer_DropsOnlyMalformedRecords(t *testing.T) {
	logger, hook := test.NewNullLogger()

	bad := loppersumRecord()
	bad.Lat = json.RawMessage(`"noord"`)
	bad.Place = "Nergens"

	second := loppersumRecord()
	second.Place = "Wirdum"

	res := NewNormalizer(logger).Normalize([]RawEventRecord{loppersumRecord(), bad, second})

	assert.Equal(t, 1, res.Dropped)
	require.Len(t, res.Events, 2)
	require.Len(t, res.Features, 2)
	assert.Equal(t, "Loppersum", res.Events[0].Place)
	assert.Equal(t, "Wirdum", res.Events[1].Place)
	for i := range res.Events {
		assert.Equal(t, res.Events[i].Place, res.Features[i].Properties.Place)
	}

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "Nergens", hook.LastEntry().Data["place"])
}

func TestNormalizer_KeepsRecordWithBadTimestamp(t *testing.T) {
	logger, hook := test.NewNullLogger()

	raw := loppersumRecord()
	raw.Time = "7 uur 's ochtends"

	res := NewNormalizer(logger).Normalize([]RawEventRecord{raw})

	require.Len(t, res.Features, 1)
	assert.Equal(t, 1, res.InvalidTimestamps)
	assert.False(t, res.Features[0].Datetime.Valid())
	assert.Equal(t, MinTimestamp, res.Features[0].Datetime.Time())
	assert.Equal(t, 2023, res.Features[0].Properties.Year)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestNormalizer_BadYearKept(t *testing.T) {
	logger, hook := test.NewNullLogger()

	raw := loppersumRecord()
	raw.Date = "onbekend"

	res := NewNormalizer(logger).Normalize([]RawEventRecord{raw})

	require.Len(t, res.Features, 1)
	assert.Equal(t, 0, res.Features[0].Properties.Year)
	assert.Equal(t, 1, res.InvalidTimestamps)
	assert.Len(t, hook.Entries, 2)
}

func TestGeoFeature_JSONOmitsDatetime(t *testing.T) {
	ev, err := NormalizeEvent(loppersumRecord())
	require.NoError(t, err)

	data, err := json.Marshal(NewGeoFeature(ev))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "Feature", out["type"])
	assert.NotContains(t, out, "datetime")
	assert.NotContains(t, out, "Datetime")

	geometry := out["geometry"].(map[string]any)
	assert.Equal(t, "Point", geometry["type"])
	assert.Equal(t, []any{233171.0, 592141.0}, geometry["coordinates"])

	props := out["properties"].(map[string]any)
	assert.Equal(t, map[string]any{
		"date":           "2023-05-03",
		"year":           2023.0,
		"depth":          3.0,
		"evaluationMode": "manual",
		"mag":            1.2,
		"place":          "Loppersum",
		"time":           "07:31:24",
	}, props)
}

func TestFeatureCollection_GeoJSONEmpty(t *testing.T) {
	data, err := json.Marshal(FeatureCollection{}.GeoJSON())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}
