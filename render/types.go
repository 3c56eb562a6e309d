// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrBadSettings indicates render settings out of range.
	ErrBadSettings = errors.New("render: invalid render settings")

	// ErrNilCatalogue indicates RenderMap got a nil catalogue.
	ErrNilCatalogue = errors.New("render: catalogue is nil")
)

var validate = validator.New()

// Color is an SVG paint value: a named color, "rgb(r,g,b)" or "rgba(r,g,b,a)".
type Color string

// NoneColor disables fill or stroke.
const NoneColor Color = "none"

// RGB returns the rgb() form of a color.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
}

// RGBA returns the rgba() form of a color with opacity in [0, 1].
func RGBA(r, g, b uint8, opacity float64) Color {
	return Color(fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatNumber(opacity)))
}

// Offset is a label displacement (dx, dy) in pixels.
type Offset [2]float64

// Settings controls the map geometry and palette.
type Settings struct {
	Width   float64 `json:"width" yaml:"width" validate:"gte=0,lte=100000"`
	Height  float64 `json:"height" yaml:"height" validate:"gte=0,lte=100000"`
	Padding float64 `json:"padding" yaml:"padding" validate:"gte=0"`

	LineWidth  float64 `json:"line_width" yaml:"line_width" validate:"gte=0,lte=100000"`
	StopRadius float64 `json:"stop_radius" yaml:"stop_radius" validate:"gte=0,lte=100000"`

	BusLabelFontSize  int    `json:"bus_label_font_size" yaml:"bus_label_font_size" validate:"gte=0,lte=100000"`
	BusLabelOffset    Offset `json:"bus_label_offset" yaml:"bus_label_offset" validate:"dive,gte=-100000,lte=100000"`
	StopLabelFontSize int    `json:"stop_label_font_size" yaml:"stop_label_font_size" validate:"gte=0,lte=100000"`
	StopLabelOffset   Offset `json:"stop_label_offset" yaml:"stop_label_offset" validate:"dive,gte=-100000,lte=100000"`

	UnderlayerColor Color   `json:"underlayer_color" yaml:"underlayer_color" validate:"required"`
	UnderlayerWidth float64 `json:"underlayer_width" yaml:"underlayer_width" validate:"gte=0,lte=100000"`

	ColorPalette []Color `json:"color_palette" yaml:"color_palette" validate:"min=1,dive,required"`
}

// DefaultSettings returns a 1200x1200 map with a small three-color palette.
func DefaultSettings() Settings {
	return Settings{
		Width:             1200,
		Height:            1200,
		Padding:           50,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    Offset{7, 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   Offset{7, -3},
		UnderlayerColor:   RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []Color{"green", RGB(255, 160, 0), "red"},
	}
}

// Validate checks the ranges; padding must also fit inside both half extents.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSettings, err)
	}
	if s.Padding >= min(s.Width, s.Height)/2 && s.Padding > 0 {
		return fmt.Errorf("%w: padding %s too large for %sx%s",
			ErrBadSettings, formatNumber(s.Padding), formatNumber(s.Width), formatNumber(s.Height))
	}

	return nil
}

// formatNumber prints v with six significant digits and no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
