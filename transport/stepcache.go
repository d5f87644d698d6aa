package transport

import "github.com/orbital-csg/geomkit/core"

// stepCache is the small record find_distance writes and find_new_cell,
// reflect_direction, and get_surface_crossing consume (spec.md 3: "Step
// cache"). It is overwritten on each find_distance call.
type stepCache struct {
	valid     bool
	oldCell   int
	surface   core.Surface
	oldSense  bool
	distance  float64
	position  core.Vec3
	direction core.Vec3
}
