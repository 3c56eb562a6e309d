// SPDX-License-Identifier: MIT
// Package: transitcat/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/transitcat/geo"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the stop naming scheme: global stop index -> name.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic distance policies.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistanceFn overrides the per-leg distance policy with a deterministic one.
// Panics on nil.
func WithDistanceFn(fn DistanceFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.distanceFn = fn
		c.stochastic = false
	}
}

// WithUniformDistance draws every leg uniformly from [min, max] meters.
// Requires WithSeed or WithRand. Panics unless 0 <= min <= max.
func WithUniformDistance(min, max int) BuilderOption {
	fn := UniformDistanceFn(min, max)
	return func(c *builderConfig) {
		c.distanceFn = fn
		c.stochastic = true
	}
}

// WithOrigin sets the coordinates of the first generated stop.
// Panics on coordinates out of range.
func WithOrigin(o geo.Coordinates) BuilderOption {
	if !o.Valid() {
		panic("builder: WithOrigin(out of range)")
	}
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithSpacing sets the distance in degrees between neighbouring stops.
// Panics if deg <= 0.
func WithSpacing(deg float64) BuilderOption {
	if deg <= 0 {
		panic("builder: WithSpacing(deg<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = deg
	}
}

// WithAsymmetry makes every reverse leg extra meters longer than its forward leg.
// Panics if extra < 0.
func WithAsymmetry(extra int) BuilderOption {
	if extra < 0 {
		panic("builder: WithAsymmetry(extra<0)")
	}
	return func(c *builderConfig) {
		c.asymmetry = extra
	}
}
