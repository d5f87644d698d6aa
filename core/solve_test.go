package core_test

import (
	"testing"

	"github.com/orbital-csg/geomkit/core"
	"github.com/stretchr/testify/assert"
)

func TestSolve_NoRealRoot(t *testing.T) {
	// Q = B^2 - A*C < 0 whenever A and C share a large enough positive
	// product relative to B: e.g. A=1, B=0, C=1 -> Q=-1.
	hit, dist := core.Solve(1, 0, 1, false)
	assert.False(t, hit)
	assert.Zero(t, dist)
}

func TestSolve_InsideCurvesAway(t *testing.T) {
	// A<=0, B<=0, inside: the quadric curves away from the ray.
	hit, dist := core.Solve(-1, -1, 5, false)
	assert.False(t, hit)
	assert.Zero(t, dist)
}

func TestSolve_OutsideHeadingAway(t *testing.T) {
	// B>=0, A>=0, outside: already departing, never returns.
	hit, dist := core.Solve(1, 1, -5, true)
	assert.False(t, hit)
	assert.Zero(t, dist)
}

func TestSolve_DistanceNeverNegative(t *testing.T) {
	// Every reachable branch must clamp to >= 0 even when the algebraic
	// root would be slightly negative due to roundoff.
	cases := []struct {
		a, b, c       float64
		positiveSense bool
	}{
		{1, 0.0000001, -0.0000001, false},
		{-1, 0, 1, true},
		{1, -1, 0.999999, true},
	}
	for _, c := range cases {
		_, dist := core.Solve(c.a, c.b, c.c, c.positiveSense)
		assert.GreaterOrEqual(t, dist, 0.0)
	}
}
