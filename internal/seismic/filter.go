package seismic

import "time"

// YearRange returns the inclusive bounds [startYear-01-01 00:00:00, endYear-12-31 23:59:59] in UTC.
func YearRange(startYear, endYear int) (time.Time, time.Time) {
	from := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(endYear, time.December, 31, 23, 59, 59, 0, time.UTC)
	return from, to
}

// FilterByYearRange returns the features whose Datetime lies within the
// inclusive year range, in their original order. startYear > endYear
// yields an empty collection.
func FilterByYearRange(features FeatureCollection, startYear, endYear int) FeatureCollection {
	from, to := YearRange(startYear, endYear)

	result := make(FeatureCollection, 0)
	for _, f := range features {
		ts := f.Datetime.Time()
		if !ts.Before(from) && !ts.After(to) {
			result = append(result, f)
		}
	}
	return result
}
