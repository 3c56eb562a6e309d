// Package transitcat is an in-memory transit catalogue and trip planner:
// stops, buses and road distances in, fastest point-to-point trips out.
//
// 🚀 What is transitcat?
//
//	A small, dependency-light toolkit that brings together:
//		• Catalogue: stops, buses, directed road distances with reverse fallback
//		• Statistics: per-bus route length and curvature, per-stop bus lists
//		• Routing: a ride graph built once, Dijkstra queries answered many times
//		• Rendering: an SVG route map
//		• Surfaces: the JSON document batch runner and an HTTP API
//
// Lifecycle:
//
//	catalogue.Build(batch)            // populate once, all or nothing
//	router.NewTransportRouter(cat, s) // freeze, build the graph and solver once
//	tr.GetRoute("A", "B")             // answer any number of queries concurrently
//
// Packages:
//
//	geo/       — coordinates and great-circle distances
//	catalogue/ — stops, buses, distances, statistics
//	core/      — dense directed weighted graph, frozen after build
//	dijkstra/  — shortest paths over core graphs
//	router/    — ride graph builder and trip planner
//	render/    — SVG map renderer
//	jsonio/    — JSON document reader and response writer
//	handler/   — query surface shared by batch and HTTP modes
//	server/    — HTTP API
//	config/    — YAML application configuration
//	builder/   — synthetic networks for tests and benchmarks
//
// The binary lives in cmd/transitcat; examples/ holds a runnable walkthrough.
package transitcat
