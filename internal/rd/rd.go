// Package rd converts WGS84 latitude/longitude into Rijksdriehoekstelsel (RD New)
// grid coordinates using the published polynomial approximation.
package rd

import "math"

// Reference point Amersfoort, in both systems.
const (
	x0   = 155000.0
	y0   = 463000.0
	lat0 = 52.15517
	lon0 = 5.387206
)

// term is one polynomial entry: coef * dlat^p * dlon^q.
type term struct {
	p, q float64
	coef float64
}

var xTerms = []term{
	{0, 1, 190094.945},
	{1, 1, -11832.228},
	{2, 1, -114.221},
	{0, 3, -32.391},
	{1, 0, -0.705},
	{3, 1, -2.340},
	{1, 3, -0.608},
	{0, 2, -0.008},
	{2, 3, 0.148},
}

var yTerms = []term{
	{1, 0, 309056.544},
	{0, 2, 3638.893},
	{2, 0, 73.077},
	{1, 2, -157.984},
	{3, 0, 59.788},
	{0, 1, 0.433},
	{2, 2, -6.439},
	{1, 1, -0.032},
	{0, 4, 0.092},
	{1, 4, -0.054},
}

// Point is a position in the RD grid, in metres, rounded to whole metres.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromWGS84 projects a WGS84 coordinate onto the RD grid.
// The result is rounded half away from zero on both axes.
func FromWGS84(lat, lon float64) Point {
	dlat := 0.36 * (lat - lat0)
	dlon := 0.36 * (lon - lon0)

	return Point{
		X: math.Round(x0 + sum(xTerms, dlat, dlon)),
		Y: math.Round(y0 + sum(yTerms, dlat, dlon)),
	}
}

func sum(terms []term, dlat, dlon float64) float64 {
	var total float64
	for _, t := range terms {
		total += t.coef * math.Pow(dlat, t.p) * math.Pow(dlon, t.q)
	}
	return total
}
