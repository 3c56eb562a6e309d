// SPDX-License-Identifier: MIT

// Package jsonio reads the catalogue JSON document and writes query responses.
//
// A document is one JSON object:
//
//	{
//	  "base_requests":    [ {"type":"Stop", ...}, {"type":"Bus", ...} ],
//	  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
//	  "render_settings":  { ... },
//	  "stat_requests":    [ {"id":1, "type":"Bus", "name":"14"}, ... ]
//	}
//
// Every section is optional. Colors in render_settings are either a string,
// a [r, g, b] array or a [r, g, b, opacity] array.
package jsonio
