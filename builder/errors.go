// SPDX-License-Identifier: MIT
// Package: transitcat/builder
//
// errors.go — sentinel errors for the builder package.

package builder

import "errors"

// ErrTooFewStops indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewStops = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic distance policy without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyBusName indicates a Line constructor without a bus name.
var ErrEmptyBusName = errors.New("builder: bus name is empty")
