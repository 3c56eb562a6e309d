// Package builder generates deterministic synthetic transit networks as
// catalogue.Batch values, for tests, benchmarks and examples.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, stop naming scheme, leg distance policy, geometry.
//   - Stop naming schemes (IDFn implementations):
//     – DefaultIDFn:      "S0", "S1", ...
//     – ExcelColumnIDFn:  "A", "Z", "AA", ...
//   - Leg distance policies (DistanceFn implementations):
//     – ConstantDistanceFn: fixed meters.
//     – UniformDistanceFn:  uniform in [min, max] meters, needs an RNG.
//   - Constructors:
//     – Line(name, n, circular): one bus over n fresh stops.
//     – Grid(rows, cols):        rows×cols stops, one linear bus per row and per column.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical batches.
//   - Every generated leg has a distance in the forward direction; the reverse
//     direction is left to the catalogue fallback unless WithAsymmetry is set.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors.
package builder
