// SPDX-License-Identifier: MIT
// Package: transitcat/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn            ("S0","S1",...)
//   • rng        = nil                    (pure/deterministic unless seeded)
//   • distanceFn = ConstantDistanceFn(1000)
//   • origin     = (55.75, 37.60), spacing 0.01°
//   • asymmetry  = 0 (no reverse distances emitted)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/transitcat/geo"
)

const (
	defaultLegMeters = 1000
	defaultSpacing   = 0.01
)

var defaultOrigin = geo.Coordinates{Lat: 55.75, Lng: 37.60}

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	distanceFn DistanceFn
	stochastic bool // distanceFn needs rng

	origin  geo.Coordinates
	spacing float64 // degrees between neighbouring stops

	// asymmetry > 0 also emits the reverse leg as forward + asymmetry meters.
	asymmetry int
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		distanceFn: ConstantDistanceFn(defaultLegMeters),
		origin:     defaultOrigin,
		spacing:    defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// leg draws the meters of one generated leg.
func (c builderConfig) leg() int {
	return c.distanceFn(c.rng)
}
