package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/render"
)

func TestSphereProjector(t *testing.T) {
	cases := []struct {
		name   string
		points []geo.Coordinates
		in     geo.Coordinates
		want   render.Point
	}{
		{"NoPoints", nil, geo.Coordinates{Lat: 5, Lng: 5}, render.Point{X: 10, Y: 10}},
		{"SinglePoint", []geo.Coordinates{{Lat: 3, Lng: 4}}, geo.Coordinates{Lat: 3, Lng: 4}, render.Point{X: 10, Y: 10}},
		{"HeightLimits", []geo.Coordinates{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}, geo.Coordinates{Lat: 0, Lng: 1}, render.Point{X: 90, Y: 90}},
		{"OnlyLongitudeSpread", []geo.Coordinates{{Lat: 2, Lng: 0}, {Lat: 2, Lng: 2}}, geo.Coordinates{Lat: 2, Lng: 1}, render.Point{X: 100, Y: 10}},
		{"OnlyLatitudeSpread", []geo.Coordinates{{Lat: 0, Lng: 7}, {Lat: 2, Lng: 7}}, geo.Coordinates{Lat: 0, Lng: 7}, render.Point{X: 10, Y: 90}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := render.NewSphereProjector(tc.points, 200, 100, 10)
			got := p.Project(tc.in)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}
