// SPDX-License-Identifier: MIT

package jsonio

import (
	"encoding/json"
	"errors"

	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

var (
	// ErrBadDocument indicates malformed JSON or a request of unknown type.
	ErrBadDocument = errors.New("jsonio: malformed document")

	// ErrBadColor indicates a color that is neither a string nor an rgb/rgba array.
	ErrBadColor = errors.New("jsonio: malformed color")
)

// Request types.
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// Document is the whole input.
type Document struct {
	BaseRequests    []BaseRequest    `json:"base_requests"`
	RoutingSettings *router.Settings `json:"routing_settings"`
	RenderSettings  *RenderSettings  `json:"render_settings"`
	StatRequests    []StatRequest    `json:"stat_requests"`

	// renderRaw keeps the render_settings object as read, so that Render
	// can overlay only the keys the document sets.
	renderRaw json.RawMessage
}

// BaseRequest is a Stop or Bus definition.
type BaseRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`

	// Stop fields.
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`

	// Bus fields.
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// StatRequest is one query.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`

	// Name is the bus (Bus) or stop (Stop) queried.
	Name string `json:"name,omitempty"`

	// From and To are the Route endpoints.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Color decodes a render color from its JSON forms.
type Color render.Color

// RenderSettings is the JSON form of render.Settings.
type RenderSettings struct {
	Width             float64       `json:"width"`
	Height            float64       `json:"height"`
	Padding           float64       `json:"padding"`
	LineWidth         float64       `json:"line_width"`
	StopRadius        float64       `json:"stop_radius"`
	BusLabelFontSize  int           `json:"bus_label_font_size"`
	BusLabelOffset    render.Offset `json:"bus_label_offset"`
	StopLabelFontSize int           `json:"stop_label_font_size"`
	StopLabelOffset   render.Offset `json:"stop_label_offset"`
	UnderlayerColor   Color         `json:"underlayer_color"`
	UnderlayerWidth   float64       `json:"underlayer_width"`
	ColorPalette      []Color       `json:"color_palette"`
}

// Response is one answer; ID is the request id it answers.
type Response interface {
	ID() int
}

// BusResponse answers a Bus request.
type BusResponse struct {
	RequestID       int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     float64 `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop request.
type StopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

// RouteItem is one Wait or Bus step.
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// RouteResponse answers a Route request.
type RouteResponse struct {
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []RouteItem `json:"items"`
}

// MapResponse answers a Map request with an SVG document.
type MapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

// ErrorResponse answers any request whose subject does not exist.
type ErrorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// NotFound is the error message of a missing bus, stop or route.
const NotFound = "not found"

func (r BusResponse) ID() int   { return r.RequestID }
func (r StopResponse) ID() int  { return r.RequestID }
func (r RouteResponse) ID() int { return r.RequestID }
func (r MapResponse) ID() int   { return r.RequestID }
func (r ErrorResponse) ID() int { return r.RequestID }
