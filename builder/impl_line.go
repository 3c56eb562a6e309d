// SPDX-License-Identifier: MIT
// Package: transitcat/builder
//
// impl_line.go — Line(name, n, circular) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewStops); name non-empty (else ErrEmptyBusName).
//   • Adds n fresh stops along a meridian, n-1 forward legs and one bus.
//   • circular: the bus returns to its first stop, adding the closing leg,
//     so its stop sequence has n+1 entries.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitcat/catalogue"
)

const (
	methodLine  = "Line"
	minLineStop = 2
)

// Line returns a Constructor that builds one bus over n new stops.
func Line(name string, n int, circular bool) Constructor {
	return func(b *catalogue.Batch, cfg builderConfig) error {
		// 1) Validate parameters early.
		if name == "" {
			return fmt.Errorf("%s: %w", methodLine, ErrEmptyBusName)
		}
		if n < minLineStop {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodLine, n, minLineStop, ErrTooFewStops)
		}

		// 2) Stops along a meridian; each Line gets its own column.
		col := len(b.Buses)
		stops := make([]string, 0, n+1)
		for i := 0; i < n; i++ {
			stops = append(stops, addStop(b, cfg, i, col))
		}

		// 3) Forward legs, plus the closing leg for rings.
		for i := 1; i < n; i++ {
			addLeg(b, cfg, stops[i-1], stops[i])
		}
		if circular {
			addLeg(b, cfg, stops[n-1], stops[0])
			stops = append(stops, stops[0])
		}

		b.Buses = append(b.Buses, catalogue.BusInput{Name: name, Stops: stops, Circular: circular})

		return nil
	}
}
