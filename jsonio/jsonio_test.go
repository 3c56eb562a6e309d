package jsonio_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/jsonio"
	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

const sampleDoc = `{
  "base_requests": [
    {"type": "Bus", "name": "114", "stops": ["Sea", "Riviera"], "is_roundtrip": false},
    {"type": "Stop", "name": "Riviera", "latitude": 43.587795, "longitude": 39.716901,
     "road_distances": {"Sea": 850}},
    {"type": "Stop", "name": "Sea", "latitude": 43.581969, "longitude": 39.719848,
     "road_distances": {"Riviera": 720, "Dock": 100}},
    {"type": "Stop", "name": "Dock", "latitude": 43.58, "longitude": 39.71, "road_distances": {}}
  ],
  "routing_settings": {"bus_wait_time": 2, "bus_velocity": 30},
  "render_settings": {
    "width": 200, "height": 200, "padding": 30,
    "stop_radius": 5, "line_width": 14,
    "bus_label_font_size": 20, "bus_label_offset": [7, 15],
    "stop_label_font_size": 20, "stop_label_offset": [7, -3],
    "underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
    "color_palette": ["green", [255, 160, 0], "red"]
  },
  "stat_requests": [
    {"id": 1, "type": "Map"},
    {"id": 2, "type": "Stop", "name": "Riviera"},
    {"id": 3, "type": "Bus", "name": "114"},
    {"id": 4, "type": "Route", "from": "Sea", "to": "Riviera"}
  ]
}`

func TestRead_Sample(t *testing.T) {
	doc, err := jsonio.Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Len(t, doc.BaseRequests, 4)
	require.Len(t, doc.StatRequests, 4)
	assert.Equal(t, jsonio.StatRequest{ID: 4, Type: jsonio.TypeRoute, From: "Sea", To: "Riviera"}, doc.StatRequests[3])

	b := doc.Batch()
	assert.Len(t, b.Stops, 3)
	assert.Equal(t, []catalogue.DistanceInput{
		{From: "Riviera", To: "Sea", Meters: 850},
		{From: "Sea", To: "Dock", Meters: 100},
		{From: "Sea", To: "Riviera", Meters: 720},
	}, b.Distances)
	assert.Equal(t, []catalogue.BusInput{{Name: "114", Stops: []string{"Sea", "Riviera"}}}, b.Buses)

	cat, err := catalogue.Build(b)
	require.NoError(t, err, "buses may precede their stops in the document")
	assert.Equal(t, 3, cat.StopCount())

	assert.Equal(t, router.Settings{BusWaitTime: 2, BusVelocity: 30}, doc.Routing(router.DefaultSettings()))

	rs, err := doc.Render(render.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, render.RGBA(255, 255, 255, 0.85), rs.UnderlayerColor)
	assert.Equal(t, []render.Color{"green", "rgb(255,160,0)", "red"}, rs.ColorPalette)
	assert.Equal(t, render.Offset{7, -3}, rs.StopLabelOffset)
}

func TestRead_MissingSectionsUseFallbacks(t *testing.T) {
	doc, err := jsonio.Read(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.Equal(t, router.DefaultSettings(), doc.Routing(router.DefaultSettings()))
	rs, err := doc.Render(render.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, render.DefaultSettings(), rs)
	assert.Empty(t, doc.Batch().Stops)
}

func TestRead_PartialSettingsOverlayFallback(t *testing.T) {
	doc, err := jsonio.Read(strings.NewReader(`{
		"routing_settings": {"bus_wait_time": 3},
		"render_settings": {"width": 640, "padding": 0, "color_palette": ["navy"]}
	}`))
	require.NoError(t, err)

	fallback := router.Settings{BusWaitTime: 6, BusVelocity: 40}
	got := doc.Routing(fallback)
	assert.Equal(t, router.Settings{BusWaitTime: 3, BusVelocity: 40}, got)
	assert.NoError(t, got.Validate())

	def := render.DefaultSettings()
	rs, err := doc.Render(def)
	require.NoError(t, err)
	assert.Equal(t, 640.0, rs.Width)
	assert.Zero(t, rs.Padding, "an explicit zero overrides the fallback")
	assert.Equal(t, []render.Color{"navy"}, rs.ColorPalette)
	assert.Equal(t, def.Height, rs.Height)
	assert.Equal(t, def.UnderlayerColor, rs.UnderlayerColor)
	assert.Equal(t, def.StopLabelOffset, rs.StopLabelOffset)
}

func TestRead_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"Syntax":          {`{"base_requests": [`, jsonio.ErrBadDocument},
		"UnknownBaseType": {`{"base_requests": [{"type": "Tram"}]}`, jsonio.ErrBadDocument},
		"UnknownStatType": {`{"stat_requests": [{"id": 1, "type": "Weather"}]}`, jsonio.ErrBadDocument},
		"ColorTooShort":   {`{"render_settings": {"color_palette": [[1, 2]]}}`, jsonio.ErrBadColor},
		"ColorOutOfRange": {`{"render_settings": {"underlayer_color": [256, 0, 0]}}`, jsonio.ErrBadColor},
		"ColorOpacity":    {`{"render_settings": {"underlayer_color": [1, 2, 3, 1.5]}}`, jsonio.ErrBadColor},
		"ColorObject":     {`{"render_settings": {"underlayer_color": {"r": 1}}}`, jsonio.ErrBadColor},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := jsonio.Read(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRender_Invalid(t *testing.T) {
	doc, err := jsonio.Read(strings.NewReader(`{"render_settings": {"width": -1, "color_palette": ["red"], "underlayer_color": "white"}}`))
	require.NoError(t, err)

	_, err = doc.Render(render.DefaultSettings())
	assert.ErrorIs(t, err, render.ErrBadSettings)
}

func TestWriteResponses(t *testing.T) {
	trip := router.Trip{
		TotalTime: 6,
		Items: []router.Item{
			{Type: router.ItemWait, StopName: "A", Time: 2},
			{Type: router.ItemBus, Bus: "55", SpanCount: 2, Time: 4},
		},
	}
	resps := []jsonio.Response{
		jsonio.BusResponse{RequestID: 1, Curvature: 1.5, RouteLength: 2900, StopCount: 5, UniqueStopCount: 3},
		jsonio.StopResponse{RequestID: 2, Buses: []string{}},
		jsonio.NewRouteResponse(3, trip),
		jsonio.MapResponse{RequestID: 4, Map: `<svg a="b">&</svg>`},
		jsonio.ErrorResponse{RequestID: 5, ErrorMessage: jsonio.NotFound},
	}

	var buf bytes.Buffer
	require.NoError(t, jsonio.WriteResponses(&buf, resps))
	assert.Contains(t, buf.String(), `<svg a=\"b\">&</svg>`)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 5)

	assert.Equal(t, map[string]any{
		"request_id": 1.0, "curvature": 1.5, "route_length": 2900.0, "stop_count": 5.0, "unique_stop_count": 3.0,
	}, got[0])
	assert.Equal(t, []any{}, got[1]["buses"])
	assert.Equal(t, map[string]any{
		"request_id": 3.0,
		"total_time": 6.0,
		"items": []any{
			map[string]any{"type": "Wait", "stop_name": "A", "time": 2.0},
			map[string]any{"type": "Bus", "bus": "55", "span_count": 2.0, "time": 4.0},
		},
	}, got[2])
	assert.Equal(t, map[string]any{"request_id": 5.0, "error_message": "not found"}, got[4])

	for i, r := range resps {
		assert.Equal(t, i+1, r.ID())
	}
}

func TestWriteResponses_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonio.WriteResponses(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
