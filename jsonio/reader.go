// SPDX-License-Identifier: MIT

package jsonio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

// Read decodes a document from r and checks request types.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	var sections struct {
		Render json.RawMessage `json:"render_settings"`
	}
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if doc.RenderSettings != nil {
		doc.renderRaw = sections.Render
	}

	for i, br := range doc.BaseRequests {
		if br.Type != TypeStop && br.Type != TypeBus {
			return nil, fmt.Errorf("%w: base request #%d has type %q", ErrBadDocument, i, br.Type)
		}
	}
	for i, sr := range doc.StatRequests {
		switch sr.Type {
		case TypeStop, TypeBus, TypeRoute, TypeMap:
		default:
			return nil, fmt.Errorf("%w: stat request #%d has type %q", ErrBadDocument, i, sr.Type)
		}
	}

	return &doc, nil
}

// Batch converts the base requests into catalogue construction input.
// Road distances of one stop are emitted in target-name order.
func (d *Document) Batch() catalogue.Batch {
	var b catalogue.Batch
	for _, br := range d.BaseRequests {
		switch br.Type {
		case TypeStop:
			b.Stops = append(b.Stops, catalogue.StopInput{Name: br.Name, Lat: br.Latitude, Lng: br.Longitude})

			targets := make([]string, 0, len(br.RoadDistances))
			for to := range br.RoadDistances {
				targets = append(targets, to)
			}
			sort.Strings(targets)
			for _, to := range targets {
				b.Distances = append(b.Distances, catalogue.DistanceInput{
					From:   br.Name,
					To:     to,
					Meters: br.RoadDistances[to],
				})
			}
		case TypeBus:
			b.Buses = append(b.Buses, catalogue.BusInput{
				Name:     br.Name,
				Stops:    br.Stops,
				Circular: br.IsRoundtrip,
			})
		}
	}

	return b
}

// Routing overlays the document routing settings on fallback. Zero fields
// are treated as unset; neither setting accepts zero.
func (d *Document) Routing(fallback router.Settings) router.Settings {
	if d.RoutingSettings == nil {
		return fallback
	}

	s := fallback
	if d.RoutingSettings.BusWaitTime != 0 {
		s.BusWaitTime = d.RoutingSettings.BusWaitTime
	}
	if d.RoutingSettings.BusVelocity != 0 {
		s.BusVelocity = d.RoutingSettings.BusVelocity
	}

	return s
}

// Render overlays the document render settings on fallback, key by key,
// and validates the result. Absent keys keep their fallback value.
func (d *Document) Render(fallback render.Settings) (render.Settings, error) {
	if d.RenderSettings == nil {
		return fallback, nil
	}

	raw := d.renderRaw
	if len(raw) == 0 {
		// Built in code rather than read: every field is set explicitly.
		var err error
		if raw, err = json.Marshal(d.RenderSettings); err != nil {
			return render.Settings{}, fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
	}

	rs := fromRender(fallback)
	if err := json.Unmarshal(raw, &rs); err != nil {
		return render.Settings{}, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	s := rs.toRender()
	if err := s.Validate(); err != nil {
		return render.Settings{}, err
	}

	return s, nil
}

func fromRender(s render.Settings) RenderSettings {
	rs := RenderSettings{
		Width:             s.Width,
		Height:            s.Height,
		Padding:           s.Padding,
		LineWidth:         s.LineWidth,
		StopRadius:        s.StopRadius,
		BusLabelFontSize:  s.BusLabelFontSize,
		BusLabelOffset:    s.BusLabelOffset,
		StopLabelFontSize: s.StopLabelFontSize,
		StopLabelOffset:   s.StopLabelOffset,
		UnderlayerColor:   Color(s.UnderlayerColor),
		UnderlayerWidth:   s.UnderlayerWidth,
		ColorPalette:      make([]Color, len(s.ColorPalette)),
	}
	for i, c := range s.ColorPalette {
		rs.ColorPalette[i] = Color(c)
	}

	return rs
}

func (rs RenderSettings) toRender() render.Settings {
	s := render.Settings{
		Width:             rs.Width,
		Height:            rs.Height,
		Padding:           rs.Padding,
		LineWidth:         rs.LineWidth,
		StopRadius:        rs.StopRadius,
		BusLabelFontSize:  rs.BusLabelFontSize,
		BusLabelOffset:    rs.BusLabelOffset,
		StopLabelFontSize: rs.StopLabelFontSize,
		StopLabelOffset:   rs.StopLabelOffset,
		UnderlayerColor:   render.Color(rs.UnderlayerColor),
		UnderlayerWidth:   rs.UnderlayerWidth,
		ColorPalette:      make([]render.Color, len(rs.ColorPalette)),
	}
	for i, c := range rs.ColorPalette {
		s.ColorPalette[i] = render.Color(c)
	}

	return s
}

// UnmarshalJSON accepts "name", [r, g, b] and [r, g, b, opacity].
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrBadColor, err)
		}
		*c = Color(s)
		return nil
	}

	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %s", ErrBadColor, data)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("%w: %d components", ErrBadColor, len(parts))
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v := parts[i]
		if v < 0 || v > 255 || v != float64(int(v)) {
			return fmt.Errorf("%w: component %g", ErrBadColor, v)
		}
		rgb[i] = uint8(v)
	}
	if len(parts) == 3 {
		*c = Color(render.RGB(rgb[0], rgb[1], rgb[2]))
		return nil
	}
	if parts[3] < 0 || parts[3] > 1 {
		return fmt.Errorf("%w: opacity %g", ErrBadColor, parts[3])
	}
	*c = Color(render.RGBA(rgb[0], rgb[1], rgb[2], parts[3]))

	return nil
}
