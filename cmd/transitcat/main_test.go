package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/config"
	"github.com/katalvlaran/transitcat/jsonio"
)

const cityDocument = `{
	"base_requests": [
		{"type": "Stop", "name": "A", "latitude": 55.60, "longitude": 37.20, "road_distances": {"B": 1000}},
		{"type": "Stop", "name": "B", "latitude": 55.61, "longitude": 37.21, "road_distances": {"C": 1000}},
		{"type": "Stop", "name": "C", "latitude": 55.62, "longitude": 37.22},
		{"type": "Bus", "name": "55", "stops": ["A", "B", "C"], "is_roundtrip": false}
	],
	"routing_settings": {"bus_wait_time": 2, "bus_velocity": 30},
	"stat_requests": [
		{"id": 1, "type": "Route", "from": "A", "to": "C"},
		{"id": 2, "type": "Bus", "name": "none"}
	]
}`

func TestRun_WritesResponsesFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(cityDocument), 0o600))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(config.Default(), in, out, false, logger))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, 6.0, got[0]["total_time"])
	assert.Equal(t, jsonio.NotFound, got[1]["error_message"])
}

func TestWriteResponses_ReportsFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "out.json")
	assert.ErrorIs(t, writeResponses(missing, nil), os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeResponses(path, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
