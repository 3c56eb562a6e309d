// SPDX-License-Identifier: MIT

package router

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transitcat/catalogue"
)

// Sentinel errors for graph building and trip planning.
var (
	// ErrUnknownStop indicates a query names a stop that is not in the catalogue.
	// It is the catalogue sentinel, so errors.Is matches either package's errors.
	ErrUnknownStop = catalogue.ErrUnknownStop

	// ErrRouteNotFound indicates no path exists between two known stops.
	ErrRouteNotFound = errors.New("router: route not found")

	// ErrBadSettings indicates routing settings out of range.
	ErrBadSettings = errors.New("router: invalid routing settings")

	// ErrNilCatalogue indicates BuildGraph got a nil catalogue.
	ErrNilCatalogue = errors.New("router: catalogue is nil")
)

var validate = validator.New()

// Settings holds the routing constants.
type Settings struct {
	// BusWaitTime is charged once per boarding, in minutes.
	BusWaitTime int `json:"bus_wait_time" yaml:"bus_wait_time" validate:"gte=1,lte=1000"`

	// BusVelocity is the constant vehicle speed in km/h.
	BusVelocity float64 `json:"bus_velocity" yaml:"bus_velocity" validate:"gte=1,lte=1000"`
}

// DefaultSettings returns a 6 minute wait and 40 km/h.
func DefaultSettings() Settings {
	return Settings{BusWaitTime: 6, BusVelocity: 40}
}

// Validate checks the settings ranges.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSettings, err)
	}

	return nil
}

// metersPerMinute converts BusVelocity (km/h) to meters per minute.
func (s Settings) metersPerMinute() float64 {
	return s.BusVelocity * 1000 / 60
}

// EdgeInfo is the transit meaning of one graph edge.
type EdgeInfo struct {
	// Bus is the name of the bus riding this edge.
	Bus string

	// SpanCount is the number of consecutive stop-to-stop legs covered.
	SpanCount int

	// From and To are the boundary stop names.
	From, To string

	// Time is the edge weight in minutes, wait included.
	Time float64
}

// ItemType tells Wait and Bus items apart.
type ItemType string

const (
	// ItemWait is time spent at a stop before boarding.
	ItemWait ItemType = "Wait"
	// ItemBus is a continuous ride on one bus.
	ItemBus ItemType = "Bus"
)

// Item is one step of a trip.
type Item struct {
	Type ItemType

	// StopName is set for Wait items.
	StopName string

	// Bus and SpanCount are set for Bus items.
	Bus       string
	SpanCount int

	// Time is the duration in minutes.
	Time float64
}

// Trip is a found route.
type Trip struct {
	// TotalTime is the sum of all item times in minutes.
	TotalTime float64

	// Items alternate Wait, Bus, Wait, Bus, ...
	Items []Item

	// Stages are the raw edges of the path, one per boarding.
	Stages []EdgeInfo
}

// SpanCount returns the total number of legs ridden; spans add up across stages.
func (t Trip) SpanCount() int {
	n := 0
	for _, s := range t.Stages {
		n += s.SpanCount
	}

	return n
}
