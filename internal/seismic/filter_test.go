package seismic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func featureAt(date, clock string) GeoFeature {
	return NewGeoFeature(DomainEvent{Date: date, Time: clock, Lat: 53.31, Lon: 6.56, Place: date + " " + clock})
}

func places(fc FeatureCollection) []string {
	out := make([]string, 0, len(fc))
	for _, f := range fc {
		out = append(out, f.Properties.Place)
	}
	return out
}

func TestFilterByYearRange_InclusiveBounds(t *testing.T) {
	features := FeatureCollection{
		featureAt("2019-12-31", "23:59:59"),
		featureAt("2020-01-01", "00:00:00"),
		featureAt("2020-07-15", "12:00:00"),
		featureAt("2020-12-31", "23:59:59"),
		featureAt("2021-01-01", "00:00:00"),
	}

	got := FilterByYearRange(features, 2020, 2020)
	assert.Equal(t, []string{
		"2020-01-01 00:00:00",
		"2020-07-15 12:00:00",
		"2020-12-31 23:59:59",
	}, places(got))
}

func TestFilterByYearRange_PreservesUpstreamOrder(t *testing.T) {
	features := FeatureCollection{
		featureAt("2023-05-03", "07:31:24"),
		featureAt("2021-02-01", "10:00:00"),
		featureAt("1999-02-01", "10:00:00"),
		featureAt("2022-08-09", "05:06:07"),
	}

	got := FilterByYearRange(features, 2021, 2023)
	assert.Equal(t, []string{
		"2023-05-03 07:31:24",
		"2021-02-01 10:00:00",
		"2022-08-09 05:06:07",
	}, places(got))
}

func TestFilterByYearRange_ReversedRangeIsEmpty(t *testing.T) {
	features := FeatureCollection{featureAt("2022-01-01", "00:00:00"), featureAt("2024-01-01", "00:00:00")}

	got := FilterByYearRange(features, 2025, 2020)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByYearRange_ExcludesInvalidTimestamps(t *testing.T) {
	features := FeatureCollection{featureAt("2022-01-01", "kwart over"), featureAt("2022-01-01", "01:00:00")}

	got := FilterByYearRange(features, 1, 9999)
	assert.Equal(t, []string{"2022-01-01 01:00:00"}, places(got))
}

func TestFilterByYearRange_DoesNotAliasInput(t *testing.T) {
	features := FeatureCollection{featureAt("2022-01-01", "00:00:00")}

	got := FilterByYearRange(features, 2022, 2022)
	got[0].Properties.Place = "changed"
	assert.Equal(t, "2022-01-01 00:00:00", features[0].Properties.Place)
}
