// SPDX-License-Identifier: MIT

package catalogue

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/transitcat/geo"
)

// Catalogue stores stops, buses and directed distances.
//
// mu guards all fields. After Freeze no field changes, so readers only
// contend on the read lock.
type Catalogue struct {
	mu     sync.RWMutex
	frozen bool

	stops      []Stop
	stopByName map[string]int

	buses     []Bus
	busByName map[string]int

	// stopBuses[stopID] = set of bus names serving that stop.
	stopBuses []map[string]struct{}

	distances map[stopPair]int
}

// New returns an empty, writable Catalogue.
// Complexity: O(1).
func New() *Catalogue {
	return &Catalogue{
		stopByName: make(map[string]int),
		busByName:  make(map[string]int),
		distances:  make(map[stopPair]int),
	}
}

// AddStop registers a stop under a unique name.
//
// Errors: ErrFrozen, ErrEmptyName, ErrBadCoordinates, ErrDuplicateStop.
// Complexity: O(1) amortized.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) (Stop, error) {
	if name == "" {
		return Stop{}, ErrEmptyName
	}
	if !coords.Valid() {
		return Stop{}, fmt.Errorf("%w: stop %q at (%g, %g)", ErrBadCoordinates, name, coords.Lat, coords.Lng)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return Stop{}, ErrFrozen
	}
	if _, ok := c.stopByName[name]; ok {
		return Stop{}, fmt.Errorf("%w: %q", ErrDuplicateStop, name)
	}

	s := Stop{ID: len(c.stops), Name: name, Coordinates: coords}
	c.stops = append(c.stops, s)
	c.stopByName[name] = s.ID
	c.stopBuses = append(c.stopBuses, make(map[string]struct{}))

	return s, nil
}

// AddBus registers a bus visiting stopNames in order.
//
// Every name must resolve to a registered stop; otherwise nothing is stored
// and ErrUnknownStop is returned. A route is never shortened silently because
// that would corrupt span counts and distance accounting downstream.
//
// Errors: ErrFrozen, ErrEmptyName, ErrEmptyRoute, ErrDuplicateBus, ErrUnknownStop.
// Complexity: O(len(stopNames)).
func (c *Catalogue) AddBus(name string, stopNames []string, circular bool) (Bus, error) {
	if name == "" {
		return Bus{}, ErrEmptyName
	}
	if len(stopNames) == 0 {
		return Bus{}, fmt.Errorf("%w: bus %q", ErrEmptyRoute, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return Bus{}, ErrFrozen
	}
	if _, ok := c.busByName[name]; ok {
		return Bus{}, fmt.Errorf("%w: %q", ErrDuplicateBus, name)
	}

	// Resolve all names before touching any index.
	route := make([]int, len(stopNames))
	for i, sn := range stopNames {
		id, ok := c.stopByName[sn]
		if !ok {
			return Bus{}, fmt.Errorf("%w: %q in bus %q", ErrUnknownStop, sn, name)
		}
		route[i] = id
	}

	b := Bus{ID: len(c.buses), Name: name, Stops: route, Circular: circular}
	c.buses = append(c.buses, b)
	c.busByName[name] = b.ID
	for _, id := range route {
		c.stopBuses[id][name] = struct{}{}
	}

	return cloneBus(b), nil
}

// SetDistance records the directed road distance from → to in meters.
// The reverse entry is never populated. Setting an existing pair overwrites it.
//
// Errors: ErrFrozen, ErrBadDistance, ErrUnknownStop.
// Complexity: O(1).
func (c *Catalogue) SetDistance(from, to string, meters int) error {
	if meters < 0 {
		return fmt.Errorf("%w: %q -> %q = %d", ErrBadDistance, from, to, meters)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return ErrFrozen
	}
	fromID, ok := c.stopByName[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}
	c.distances[stopPair{from: fromID, to: toID}] = meters

	return nil
}

// ResolveDistance returns the distance from → to, falling back to to → from.
//
// The fallback only tolerates sparse input; a recorded direct entry always
// wins, so one-way asymmetries survive. The table is never modified.
//
// Errors: ErrUnknownStop, ErrMissingDistance.
// Complexity: O(1).
func (c *Catalogue) ResolveDistance(from, to string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fromID, ok := c.stopByName[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}

	return c.resolve(fromID, toID)
}

// ResolveDistanceByID is ResolveDistance over stop ids.
//
// Errors: ErrUnknownStop for ids out of range, ErrMissingDistance.
func (c *Catalogue) ResolveDistanceByID(from, to int) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if from < 0 || from >= len(c.stops) {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownStop, from)
	}
	if to < 0 || to >= len(c.stops) {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownStop, to)
	}

	return c.resolve(from, to)
}

// resolve applies the direct-then-reverse rule. Caller holds mu.
func (c *Catalogue) resolve(from, to int) (int, error) {
	if d, ok := c.distances[stopPair{from: from, to: to}]; ok {
		return d, nil
	}
	if d, ok := c.distances[stopPair{from: to, to: from}]; ok {
		return d, nil
	}

	return 0, fmt.Errorf("%w: %q -> %q", ErrMissingDistance, c.stops[from].Name, c.stops[to].Name)
}

// Freeze makes the catalogue read-only. Idempotent.
func (c *Catalogue) Freeze() {
	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (c *Catalogue) Frozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.frozen
}

// Stop looks up a stop by name.
func (c *Catalogue) Stop(name string) (Stop, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.stopByName[name]
	if !ok {
		return Stop{}, false
	}

	return c.stops[id], true
}

// StopByID returns the stop with the given arena id.
func (c *Catalogue) StopByID(id int) (Stop, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if id < 0 || id >= len(c.stops) {
		return Stop{}, false
	}

	return c.stops[id], true
}

// Bus looks up a bus by name. The returned Stops slice is a copy.
func (c *Catalogue) Bus(name string) (Bus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.busByName[name]
	if !ok {
		return Bus{}, false
	}

	return cloneBus(c.buses[id]), true
}

// Stops returns all stops in insertion (id) order.
// Complexity: O(S).
func (c *Catalogue) Stops() []Stop {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Stop, len(c.stops))
	copy(out, c.stops)

	return out
}

// Buses returns all buses in insertion (id) order.
// Complexity: O(total route length).
func (c *Catalogue) Buses() []Bus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Bus, len(c.buses))
	for i, b := range c.buses {
		out[i] = cloneBus(b)
	}

	return out
}

// StopCount returns the number of registered stops.
func (c *Catalogue) StopCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.stops)
}

// BusCount returns the number of registered buses.
func (c *Catalogue) BusCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.buses)
}

func cloneBus(b Bus) Bus {
	stops := make([]int, len(b.Stops))
	copy(stops, b.Stops)
	b.Stops = stops

	return b
}
