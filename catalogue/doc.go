// SPDX-License-Identifier: MIT

// Package catalogue owns the transit topology: named stops, named bus routes
// that visit them, and a table of directed road distances between stops.
//
// What:
//
//   - Stops and buses live in arenas addressed by dense integer ids; names map to ids.
//   - Distances are directed (a→b may differ from b→a) and are never mirrored on write.
//   - ResolveDistance falls back to the reverse entry when the direct one is absent.
//   - BusStats and StopBuses answer the per-route and per-stop statistics queries.
//
// Lifecycle:
//
//	Catalogue is populated once (AddStop / SetDistance / AddBus or Build from a Batch),
//	then frozen. After Freeze every mutation fails with ErrFrozen and all reads are
//	safe for concurrent use.
//
// Errors:
//
//   - ErrDuplicateStop, ErrDuplicateBus: name already registered.
//   - ErrUnknownStop: a bus, distance or query references a stop that does not exist.
//   - ErrUnknownBus: statistics requested for an unregistered bus.
//   - ErrMissingDistance: neither a→b nor b→a is recorded.
//   - ErrEmptyRoute, ErrEmptyName, ErrBadCoordinates, ErrBadDistance: invalid input.
//   - ErrInvalidInput: batch input failed struct validation.
//   - ErrFrozen: mutation after Freeze.
//
// Build rejects the whole batch on the first construction error; it never drops data.
package catalogue
