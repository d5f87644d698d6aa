// Package transport implements the CSG transport kernel: find_distance,
// find_new_cell, reflect_direction, get_surface_crossing, and find_cell
// (spec.md 4.E). A Kernel pairs one registry.Registry with a step cache
// that links the two halves of a particle step; the engine is
// single-threaded and synchronous (spec.md 5), so one Kernel must not be
// shared across concurrently-stepping particles without external
// synchronization — give each goroutine its own Kernel over the same
// Registry instead.
package transport
