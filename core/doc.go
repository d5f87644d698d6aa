// Package core defines the quadric surface primitives of geomkit: the
// shared quadratic root solver and the five built-in surface families
// (plane, axis-plane, sphere, cylinder, axis-cylinder).
//
// A Surface is an immutable value with a stable user-visible ID and an
// optional reflecting flag. Every surface exposes three operations:
//
//	HasPositiveSense(x Vec3) bool         — which side of the surface x sits on
//	Intersect(x, omega Vec3, positiveSense bool) (bool, float64) — ray/surface intersection from the given side
//	Normal(p Vec3) Vec3                    — outward unit normal at a point on the surface
//
// Points and directions are mgl64.Vec3 (re-exported here as Vec3): geomkit
// does not define its own vector type, reusing the corpus's existing
// go-gl/mathgl dependency for 3D arithmetic.
//
// This package has no notion of cells, registries, or transport; it is the
// leaf layer that packages cell, registry, and transport build on.
package core
