package rd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromWGS84_GoldenValues(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     Point
	}{
		{"amsterdam", 52.37214383811702, 4.905597604352241, Point{X: 122202, Y: 487250}},
		{"loppersum", 53.310, 6.560, Point{X: 233171, Y: 592141}},
		{"amersfoort reference", lat0, lon0, Point{X: x0, Y: y0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromWGS84(tt.lat, tt.lon))
		})
	}
}

func TestFromWGS84_Deterministic(t *testing.T) {
	first := FromWGS84(53.2, 6.7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, FromWGS84(53.2, 6.7))
	}
}

func TestFromWGS84_WholeMetres(t *testing.T) {
	p := FromWGS84(53.0123456, 6.7654321)
	assert.Equal(t, float64(int64(p.X)), p.X)
	assert.Equal(t, float64(int64(p.Y)), p.Y)
}
