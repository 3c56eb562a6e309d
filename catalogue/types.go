// SPDX-License-Identifier: MIT

package catalogue

import (
	"errors"

	"github.com/katalvlaran/transitcat/geo"
)

// Sentinel errors for catalogue operations.
var (
	// ErrDuplicateStop indicates a stop with the same name is already registered.
	ErrDuplicateStop = errors.New("catalogue: duplicate stop")

	// ErrDuplicateBus indicates a bus with the same name is already registered.
	ErrDuplicateBus = errors.New("catalogue: duplicate bus")

	// ErrUnknownStop indicates a referenced stop name is not registered.
	ErrUnknownStop = errors.New("catalogue: unknown stop")

	// ErrUnknownBus indicates a referenced bus name is not registered.
	ErrUnknownBus = errors.New("catalogue: unknown bus")

	// ErrMissingDistance indicates no distance is recorded in either direction.
	ErrMissingDistance = errors.New("catalogue: missing distance")

	// ErrEmptyRoute indicates a bus definition without stops.
	ErrEmptyRoute = errors.New("catalogue: bus route has no stops")

	// ErrEmptyName indicates an empty stop or bus name.
	ErrEmptyName = errors.New("catalogue: name is empty")

	// ErrBadCoordinates indicates latitude or longitude out of range.
	ErrBadCoordinates = errors.New("catalogue: coordinates out of range")

	// ErrBadDistance indicates a negative distance.
	ErrBadDistance = errors.New("catalogue: distance must be non-negative")

	// ErrInvalidInput indicates a batch entry failed validation.
	ErrInvalidInput = errors.New("catalogue: invalid input")

	// ErrFrozen indicates a mutation after Freeze.
	ErrFrozen = errors.New("catalogue: catalogue is frozen")
)

// Stop is a named point where buses halt.
type Stop struct {
	// ID is the arena index, dense in insertion order.
	ID int

	// Name is unique within the catalogue.
	Name string

	// Coordinates is the geographic position of the stop.
	Coordinates geo.Coordinates
}

// Bus is a named route over an ordered sequence of stops.
//
// Circular buses traverse Stops once (the sequence already is the loop).
// Linear buses traverse Stops forward, then the same stops backward.
type Bus struct {
	// ID is the arena index, dense in insertion order.
	ID int

	// Name is unique within the catalogue.
	Name string

	// Stops holds stop ids in travel order. Never empty.
	Stops []int

	// Circular marks a loop route.
	Circular bool
}

// BusStats summarises one bus route.
type BusStats struct {
	// StopCount is the number of stops visited on a full trip
	// (len(Stops) for circular, 2·len(Stops)−1 for linear).
	StopCount int

	// UniqueStopCount is the number of distinct stops on the route.
	UniqueStopCount int

	// RouteLength is the measured road length in meters.
	RouteLength float64

	// Curvature is RouteLength divided by the straight-line geographic length.
	// Zero when the geographic length is zero.
	Curvature float64
}

// stopPair is the key of the directed distance table.
type stopPair struct {
	from, to int
}
