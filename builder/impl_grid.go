// SPDX-License-Identifier: MIT
// Package: transitcat/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols stops in row-major order.
//   • One linear bus per row ("row-<r>") and per column ("col-<c>").
//   • Legs to the right (r,c+1) and bottom (r+1,c) neighbours; every
//     pair of grid-adjacent stops is served by exactly one bus.
//
// Complexity: O(rows*cols) stops, legs and bus entries.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/transitcat/catalogue"
)

const (
	methodGrid = "Grid"
	minGridDim = 2
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(b *catalogue.Batch, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewStops)
		}

		// 2) Stops in row-major order.
		names := make([][]string, rows)
		for r := 0; r < rows; r++ {
			names[r] = make([]string, cols)
			for c := 0; c < cols; c++ {
				names[r][c] = addStop(b, cfg, r, c)
			}
		}

		// 3) Legs: for each (r,c), Right then Bottom if present.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addLeg(b, cfg, names[r][c], names[r][c+1])
				}
				if r+1 < rows {
					addLeg(b, cfg, names[r][c], names[r+1][c])
				}
			}
		}

		// 4) Buses: rows first, then columns.
		for r := 0; r < rows; r++ {
			b.Buses = append(b.Buses, catalogue.BusInput{Name: "row-" + strconv.Itoa(r), Stops: names[r]})
		}
		for c := 0; c < cols; c++ {
			col := make([]string, rows)
			for r := 0; r < rows; r++ {
				col[r] = names[r][c]
			}
			b.Buses = append(b.Buses, catalogue.BusInput{Name: "col-" + strconv.Itoa(c), Stops: col})
		}

		return nil
	}
}
