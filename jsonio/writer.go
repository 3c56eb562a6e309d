// SPDX-License-Identifier: MIT

package jsonio

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/transitcat/router"
)

// WriteResponses writes resps as one indented JSON array.
// HTML characters are left unescaped so SVG maps stay readable.
func WriteResponses(w io.Writer, resps []Response) error {
	if resps == nil {
		resps = []Response{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	return enc.Encode(resps)
}

// NewRouteResponse converts a planned trip.
func NewRouteResponse(id int, trip router.Trip) RouteResponse {
	resp := RouteResponse{
		RequestID: id,
		TotalTime: trip.TotalTime,
		Items:     make([]RouteItem, 0, len(trip.Items)),
	}
	for _, it := range trip.Items {
		resp.Items = append(resp.Items, RouteItem{
			Type:      string(it.Type),
			StopName:  it.StopName,
			Bus:       it.Bus,
			SpanCount: it.SpanCount,
			Time:      it.Time,
		})
	}

	return resp
}
