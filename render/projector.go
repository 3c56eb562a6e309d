// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/katalvlaran/transitcat/geo"
)

const epsilon = 1e-6

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// SphereProjector maps coordinates onto a width x height canvas, keeping the
// aspect ratio and leaving padding on every side.
type SphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// NewSphereProjector fits points into the canvas.
//
// A zero extent along one axis leaves only the other axis to define the zoom;
// zero extent along both (or no points) projects everything onto (padding, padding).
func NewSphereProjector(points []geo.Coordinates, width, height, padding float64) SphereProjector {
	p := SphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, c := range points[1:] {
		minLng = math.Min(minLng, c.Lng)
		maxLng = math.Max(maxLng, c.Lng)
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	hasWidth := math.Abs(maxLng-minLng) >= epsilon
	hasHeight := math.Abs(maxLat-minLat) >= epsilon
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}

	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}

	return p
}

// Project returns the canvas position of c.
func (p SphereProjector) Project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
