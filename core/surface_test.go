package core_test

import (
	"math"
	"testing"

	"github.com/orbital-csg/geomkit/core"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

// TestSphere_HitFromInside reproduces spec scenario 1: a sphere centered at
// (1,0,0) with r=2, hit from inside.
func TestSphere_HitFromInside(t *testing.T) {
	sphere := core.NewSphere(core.Vec3{1, 0, 0}, 2, false)
	hit, dist := sphere.Intersect(core.Vec3{1.5, 0, 0}, core.Vec3{0, 1, 0}, false)
	assert.True(t, hit)
	assert.InDelta(t, 1.936491673103709, dist, epsilon)
}

// TestSphere_MissTangentDeparture reproduces spec scenario 2.
func TestSphere_MissTangentDeparture(t *testing.T) {
	sphere := core.NewSphere(core.Vec3{1, 0, 0}, 2, false)
	dir := core.Vec3{1 / math.Sqrt2, -1 / math.Sqrt2, 0}
	hit, _ := sphere.Intersect(core.Vec3{-1, -1, 0.5}, dir, true)
	assert.False(t, hit)
}

// TestSphere_Normal checks the sphere normal contract: (p-center)/r.
func TestSphere_Normal(t *testing.T) {
	sphere := core.NewSphere(core.Vec3{0, 0, 0}, 2, false)
	n := sphere.Normal(core.Vec3{2, 0, 0})
	assert.InDelta(t, 1.0, n.X(), epsilon)
	assert.InDelta(t, 0.0, n.Y(), epsilon)
	assert.InDelta(t, 1.0, n.Len(), epsilon)
}

// TestPlane_Distance reproduces spec scenario 3.
func TestPlane_Distance(t *testing.T) {
	n := core.Vec3{1 / math.Sqrt2, 1 / math.Sqrt2, 0}
	plane := core.NewPlane(n, core.Vec3{1, 1, 0}, false)
	hit, dist := plane.Intersect(core.Vec3{-1, -1, 0.5}, n, false)
	assert.True(t, hit)
	assert.InDelta(t, 2.828427124746190, dist, epsilon)
}

// TestPlane_ParallelMiss verifies a ray parallel to the plane never hits.
func TestPlane_ParallelMiss(t *testing.T) {
	plane := core.NewPlane(core.Vec3{0, 0, 1}, core.Vec3{0, 0, 0}, false)
	hit, _ := plane.Intersect(core.Vec3{5, 5, 1}, core.Vec3{1, 0, 0}, true)
	assert.False(t, hit)
}

// TestAxisCylinder_Grazing reproduces spec scenario 4.
func TestAxisCylinder_Grazing(t *testing.T) {
	cyl := core.NewAxisCylinder(core.AxisZ, core.Vec3{0, 0, 0}, 3, false)
	hit, dist := cyl.Intersect(core.Vec3{1.5, 0, 0}, core.Vec3{0, 1, 0}, false)
	assert.True(t, hit)
	assert.InDelta(t, 2.598076211353316, dist, epsilon)
}

// TestAxisCylinder_AlongAxisImmunity reproduces spec scenario 5: a ray
// traveling parallel to the cylinder's axis never intersects it.
func TestAxisCylinder_AlongAxisImmunity(t *testing.T) {
	cyl := core.NewAxisCylinder(core.AxisZ, core.Vec3{0, 0, 0}, 3, false)
	hit, _ := cyl.Intersect(core.Vec3{-1, -2, 0.5}, core.Vec3{0, 0, 1}, false)
	assert.False(t, hit)

	hit, _ = cyl.Intersect(core.Vec3{-1, -2, 0.5}, core.Vec3{0, 0, 1}, true)
	assert.False(t, hit)
}

// TestAxisCylinder_Normal checks the cylinder normal has zero axial
// component and unit length.
func TestAxisCylinder_Normal(t *testing.T) {
	cyl := core.NewAxisCylinder(core.AxisZ, core.Vec3{0, 0, 0}, 3, false)
	n := cyl.Normal(core.Vec3{3, 0, 7})
	assert.InDelta(t, 0.0, n.Z(), epsilon)
	assert.InDelta(t, 1.0, n.Len(), epsilon)
}

// TestCylinder_AlongAxisImmunity checks the general-cylinder variant shares
// the same immunity as its axis-aligned special case.
func TestCylinder_AlongAxisImmunity(t *testing.T) {
	cyl := core.NewCylinder(core.Vec3{0, 0, 0}, core.Vec3{0, 0, 1}, 3, false)
	hit, _ := cyl.Intersect(core.Vec3{-1, -2, 0.5}, core.Vec3{0, 0, 1}, false)
	assert.False(t, hit)
}

// TestHasPositiveSense_SignFlipsAcrossSurface asserts spec's sign-flip
// invariant: for a point strictly off the surface, the sense reported is
// consistent with which side it's actually on.
func TestHasPositiveSense_SignFlipsAcrossSurface(t *testing.T) {
	sphere := core.NewSphere(core.Vec3{0, 0, 0}, 1, false)
	assert.True(t, sphere.HasPositiveSense(core.Vec3{2, 0, 0}))
	assert.False(t, sphere.HasPositiveSense(core.Vec3{0.5, 0, 0}))
}

func TestIsUnit(t *testing.T) {
	assert.True(t, core.IsUnit(core.Vec3{1, 0, 0}))
	assert.False(t, core.IsUnit(core.Vec3{1, 1, 0}))
}

func TestUnitVec3_ZeroLength(t *testing.T) {
	_, err := core.UnitVec3(core.Vec3{0, 0, 0})
	assert.ErrorIs(t, err, core.ErrZeroAxis)
}

func TestWithUserID_StampsWithoutMutatingPrototype(t *testing.T) {
	proto := core.NewSphere(core.Vec3{0, 0, 0}, 1, false)
	stamped := proto.WithUserID(7)
	assert.Equal(t, uint64(0), proto.UserID())
	assert.Equal(t, uint64(7), stamped.UserID())
}
