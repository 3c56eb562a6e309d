// SPDX-License-Identifier: MIT
// Package: transitcat/builder
//
// api.go — the BuildBatch orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildBatch(bopts, cons...). Resolves cfg, runs cons in order.
//   - Stop names come from cfg.idFn over a batch-wide running index, so
//     constructors composed in one call never collide.
//   - Determinism: same options, seed and constructor order ⇒ identical batches.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
)

// Constructor appends stops, distances and buses to b.
// Constructors validate parameters first and leave b untouched on error.
type Constructor func(b *catalogue.Batch, cfg builderConfig) error

// BuildBatch resolves bopts and applies all constructors in order.
//
// Errors: ErrNeedRandSource for a stochastic distance policy without an RNG,
// or the first constructor error wrapped with "BuildBatch: %w".
func BuildBatch(bopts []BuilderOption, cons ...Constructor) (catalogue.Batch, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.stochastic && cfg.rng == nil {
		return catalogue.Batch{}, fmt.Errorf("BuildBatch: %w", ErrNeedRandSource)
	}

	var b catalogue.Batch
	for _, con := range cons {
		if err := con(&b, cfg); err != nil {
			return catalogue.Batch{}, fmt.Errorf("BuildBatch: %w", err)
		}
	}

	return b, nil
}

// addStop appends one stop at the given grid offset from the origin and returns its name.
func addStop(b *catalogue.Batch, cfg builderConfig, row, col int) string {
	name := cfg.idFn(len(b.Stops))
	at := geo.Coordinates{
		Lat: cfg.origin.Lat + float64(row)*cfg.spacing,
		Lng: cfg.origin.Lng + float64(col)*cfg.spacing,
	}
	b.Stops = append(b.Stops, catalogue.StopInput{Name: name, Lat: at.Lat, Lng: at.Lng})

	return name
}

// addLeg records from→to, and the longer reverse leg when asymmetry is set.
func addLeg(b *catalogue.Batch, cfg builderConfig, from, to string) {
	meters := cfg.leg()
	b.Distances = append(b.Distances, catalogue.DistanceInput{From: from, To: to, Meters: meters})
	if cfg.asymmetry > 0 {
		b.Distances = append(b.Distances, catalogue.DistanceInput{From: to, To: from, Meters: meters + cfg.asymmetry})
	}
}
