// SPDX-License-Identifier: MIT

package catalogue

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/transitcat/geo"
)

// BusStats computes the statistics of the named bus.
//
// RouteLength sums resolved road distances over the forward pass and, for
// linear buses, over the backward pass too; each direction is resolved on its
// own, so asymmetric distances count once per direction. The geographic
// length is the sum of great-circle legs, doubled for linear buses.
//
// Errors: ErrUnknownBus, ErrMissingDistance (wrapped with the leg).
// Complexity: O(len(route)).
func (c *Catalogue) BusStats(name string) (BusStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.busByName[name]
	if !ok {
		return BusStats{}, fmt.Errorf("%w: %q", ErrUnknownBus, name)
	}
	bus := c.buses[id]
	n := len(bus.Stops)

	stats := BusStats{StopCount: n}
	if !bus.Circular {
		stats.StopCount = 2*n - 1
	}

	unique := make(map[int]struct{}, n)
	for _, s := range bus.Stops {
		unique[s] = struct{}{}
	}
	stats.UniqueStopCount = len(unique)

	var road, straight float64
	for i := 0; i+1 < n; i++ {
		from, to := bus.Stops[i], bus.Stops[i+1]
		d, err := c.resolve(from, to)
		if err != nil {
			return BusStats{}, fmt.Errorf("bus %q: %w", name, err)
		}
		road += float64(d)
		straight += geo.Distance(c.stops[from].Coordinates, c.stops[to].Coordinates)
	}
	if !bus.Circular {
		for i := n - 1; i > 0; i-- {
			d, err := c.resolve(bus.Stops[i], bus.Stops[i-1])
			if err != nil {
				return BusStats{}, fmt.Errorf("bus %q: %w", name, err)
			}
			road += float64(d)
		}
		straight *= 2
	}

	stats.RouteLength = road
	if straight > 0 {
		stats.Curvature = road / straight
	}

	return stats, nil
}

// StopBuses returns the names of buses serving the stop, sorted lexicographically.
// A stop without buses yields an empty, non-nil slice.
//
// Errors: ErrUnknownStop.
// Complexity: O(B log B) for B buses at the stop.
func (c *Catalogue) StopBuses(name string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.stopByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, name)
	}

	set := c.stopBuses[id]
	out := make([]string, 0, len(set))
	for bus := range set {
		out = append(out, bus)
	}
	sort.Strings(out)

	return out, nil
}
