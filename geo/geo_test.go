package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/transitcat/geo"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	p := geo.Coordinates{Lat: 55.611087, Lng: 37.20829}
	assert.Equal(t, 0.0, geo.Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	a := geo.Coordinates{Lat: 55.611087, Lng: 37.20829}
	b := geo.Coordinates{Lat: 55.595884, Lng: 37.209755}
	assert.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-9)
}

func TestDistance_OneDegreeOfLatitude(t *testing.T) {
	// One degree along a meridian is R·π/180 meters.
	a := geo.Coordinates{Lat: 0, Lng: 0}
	b := geo.Coordinates{Lat: 1, Lng: 0}
	want := geo.EarthRadius * math.Pi / 180
	assert.InDelta(t, want, geo.Distance(a, b), 1e-6)
}

func TestCoordinates_Valid(t *testing.T) {
	cases := []struct {
		name string
		c    geo.Coordinates
		ok   bool
	}{
		{"Origin", geo.Coordinates{}, true},
		{"Corner", geo.Coordinates{Lat: -90, Lng: 180}, true},
		{"LatTooHigh", geo.Coordinates{Lat: 90.5, Lng: 0}, false},
		{"LngTooLow", geo.Coordinates{Lat: 0, Lng: -181}, false},
		{"NaN", geo.Coordinates{Lat: math.NaN(), Lng: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.c.Valid())
		})
	}
}
