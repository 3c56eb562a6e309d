// SPDX-License-Identifier: MIT

package catalogue

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transitcat/geo"
)

// validate checks struct tags on batch inputs. A single instance caches struct metadata.
var validate = validator.New()

// StopInput describes one AddStop operation.
type StopInput struct {
	Name string  `validate:"required"`
	Lat  float64 `validate:"gte=-90,lte=90"`
	Lng  float64 `validate:"gte=-180,lte=180"`
}

// DistanceInput describes one SetDistance operation.
type DistanceInput struct {
	From   string `validate:"required"`
	To     string `validate:"required"`
	Meters int    `validate:"gte=0"`
}

// BusInput describes one AddBus operation.
type BusInput struct {
	Name     string   `validate:"required"`
	Stops    []string `validate:"min=1,dive,required"`
	Circular bool
}

// Batch is the full set of construction operations for one catalogue.
type Batch struct {
	Stops     []StopInput
	Distances []DistanceInput
	Buses     []BusInput
}

// Build creates a catalogue from b, all or nothing.
//
// Stops are applied first, then distances, then buses, so the order of
// entries across kinds does not matter. The first invalid entry or
// construction error aborts the build and no catalogue is returned.
//
// Errors: ErrInvalidInput plus any AddStop / SetDistance / AddBus error, wrapped
// with the failing entry index.
// Complexity: O(S + D + total route length).
func Build(b Batch) (*Catalogue, error) {
	c := New()

	for i, s := range b.Stops {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("stop #%d: %w: %v", i, ErrInvalidInput, err)
		}
		if _, err := c.AddStop(s.Name, geo.Coordinates{Lat: s.Lat, Lng: s.Lng}); err != nil {
			return nil, fmt.Errorf("stop #%d: %w", i, err)
		}
	}

	for i, d := range b.Distances {
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("distance #%d: %w: %v", i, ErrInvalidInput, err)
		}
		if err := c.SetDistance(d.From, d.To, d.Meters); err != nil {
			return nil, fmt.Errorf("distance #%d: %w", i, err)
		}
	}

	for i, bus := range b.Buses {
		if err := validate.Struct(bus); err != nil {
			return nil, fmt.Errorf("bus #%d: %w: %v", i, ErrInvalidInput, err)
		}
		if _, err := c.AddBus(bus.Name, bus.Stops, bus.Circular); err != nil {
			return nil, fmt.Errorf("bus #%d: %w", i, err)
		}
	}

	return c, nil
}
