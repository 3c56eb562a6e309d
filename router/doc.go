// SPDX-License-Identifier: MIT

// Package router turns a frozen catalogue into a weighted graph of bus rides and
// answers "fastest trip from stop X to stop Y" queries over it.
//
// Graph model:
//
//   - One vertex per stop, ids assigned in catalogue insertion order.
//   - One edge per continuous ride: for every bus and every pair of positions i<j
//     on its stop sequence, an edge stop[i]→stop[j] weighted
//     BusWaitTime + Σ leg meters / (BusVelocity·1000/60) minutes.
//   - Linear buses get a second, mirrored pass over the reversed sequence; each
//     leg is resolved in its own direction, so the two passes may differ.
//   - A leg without a resolvable distance ends the extension from i: no edge spans
//     a gap, edges before it stay valid, and the next run starts after it.
//
// Query model:
//
//	Each edge of the optimal path becomes two items: Wait at the boarding stop
//	(BusWaitTime) and Bus with the bus name, span count and ride time.
//
// Errors:
//
//   - ErrUnknownStop:   query names a stop absent from the catalogue.
//   - ErrRouteNotFound: both stops exist but no path connects them.
//   - ErrBadSettings:   BusWaitTime / BusVelocity outside their ranges.
package router
