package cell

import "github.com/orbital-csg/geomkit/core"

// Hit is the result of Intersect: the nearest bounding surface a ray from
// inside the cell strikes, the sense the cell expects of that surface, and
// the distance to it.
type Hit struct {
	Surface  core.Surface
	Sense    bool
	Distance float64
}

// Intersect finds the nearest of this cell's bounding surfaces that a ray
// from x along unit direction omega strikes, comparing candidate distances
// with strict '<' so that on an exact tie (a corner) the first bound in
// insertion order wins. This tie-break is benign: the transport kernel's
// opposite-side and global-fallback searches (spec.md 4.E steps 5-6) are
// robust to either choice, so long as a subsequent zero-distance step
// triggers the bump-on-zero rule.
//
// Returns ErrNoIntersection if no bound reports a forward hit: Intersect's
// postcondition is that a well-formed cell always has one, since a particle
// inside a bounded cell must eventually leave through some surface.
func (c *Cell) Intersect(x, omega core.Vec3) (Hit, error) {
	var best Hit
	found := false

	for _, b := range c.bounds {
		hit, dist := b.Surface.Intersect(x, omega, b.Sense)
		if !hit {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{Surface: b.Surface, Sense: b.Sense, Distance: dist}
			found = true
		}
	}

	if !found {
		return Hit{}, ErrNoIntersection
	}
	return best, nil
}
