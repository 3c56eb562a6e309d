// SPDX-License-Identifier: MIT

// Package render draws a catalogue as an SVG route map.
//
// Layers, bottom to top:
//
//  1. Route polylines, one per bus with stops; linear buses go out and back.
//  2. Bus name labels at the first stop, and at the last stop of a linear bus
//     whose ends differ. Each label sits on a wider underlayer copy.
//  3. Stop circles.
//  4. Stop name labels, also on underlayers.
//
// Buses and stops are drawn in lexicographic name order. Only stops served by
// at least one bus are drawn and projected. The palette color advances once
// per drawn bus and wraps around.
package render
