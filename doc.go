// Package geomkit is a combinatorial solid geometry (CSG) engine for the
// innermost loop of a Monte Carlo particle transport code.
//
// 🚀 What is geomkit?
//
//	A small, dependency-light engine answering three questions a transport
//	sweep asks thousands of times per particle history:
//
//	  • How far until I leave my current cell? (transport.FindDistance)
//	  • What cell do I enter, and did I just reflect or die? (transport.FindNewCell)
//	  • Which cell contains this point, with no prior context? (transport.FindCell)
//
// ✨ Why geomkit?
//
//   - Lazy      — neighbor discovery happens on first crossing, not up front
//   - Immutable — geometry freezes after construction; only caches mutate at runtime
//   - Explicit  — every fatal condition carries a structured diagnostic dump
//
// Under the hood, everything is organized under five subpackages:
//
//	core/      — quadric surfaces (plane, axis-plane, sphere, cylinder, axis-cylinder) and the root solver
//	cell/      — cells as conjunctions (or negated disjunctions) of bounding-surface senses
//	registry/  — the geometry's surface/cell tables, id<->index bijections, and neighbor reachability
//	transport/ — the five-operation kernel: find_distance, find_new_cell, reflect_direction, get_surface_crossing, find_cell
//	diag/      — warnings and fatal errors, with bounding-surface/neighborhood dumps
//
// The module ships no example geometry builders or demo programs; geometry
// is built directly with registry.AddSurface and registry.AddCell.
//
//	go get github.com/orbital-csg/geomkit
package geomkit
