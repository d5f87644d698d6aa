package transport_test

import (
	"errors"
	"testing"

	"github.com/orbital-csg/geomkit/cell"
	"github.com/orbital-csg/geomkit/core"
	"github.com/orbital-csg/geomkit/diag"
	"github.com/orbital-csg/geomkit/registry"
	"github.com/orbital-csg/geomkit/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoSlabMesh builds two adjacent unit-thick slabs along x: cell0 covers
// [0,1], cell1 covers [1,2]. Reproduces the crossing geometry of spec
// scenario 7 without needing the full 2x2x2 mesh, since the particle
// travels purely along x.
func twoSlabMesh(t *testing.T) (*registry.Registry, int, int) {
	t.Helper()
	r := registry.New()

	_, err := r.AddSurface(1, core.NewAxisPlane(core.AxisX, 0, false))
	require.NoError(t, err)
	_, err = r.AddSurface(2, core.NewAxisPlane(core.AxisX, 1, false))
	require.NoError(t, err)
	_, err = r.AddSurface(3, core.NewAxisPlane(core.AxisX, 2, false))
	require.NoError(t, err)

	c0, err := r.AddCell(10, []int64{1, -2}, 0)
	require.NoError(t, err)
	c1, err := r.AddCell(20, []int64{2, -3}, 0)
	require.NoError(t, err)

	r.CompleteInput()
	return r, c0, c1
}

func TestTransport_EndToEndMeshCrossing(t *testing.T) {
	r, c0, c1 := twoSlabMesh(t)
	k := transport.NewKernel(r)

	x := core.Vec3{0.5, 0.5, 0.5}
	omega := core.Vec3{1, 0, 0}

	d, err := k.FindDistance(x, omega, c0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-12)

	xNew, cellNew, status, err := k.FindNewCell(x, omega)
	require.NoError(t, err)
	assert.Equal(t, c1, cellNew)
	assert.Equal(t, transport.Normal, status)
	assert.InDelta(t, 1.0, xNew.X(), 1e-12)
}

func TestTransport_ReflectingSurface_StatusAndRoundTrip(t *testing.T) {
	r := registry.New()
	_, err := r.AddSurface(1, core.NewAxisPlane(core.AxisX, 1, true))
	require.NoError(t, err)
	c0, err := r.AddCell(10, []int64{-1}, 0)
	require.NoError(t, err)
	r.CompleteInput()

	k := transport.NewKernel(r)
	x := core.Vec3{0.5, 0, 0}
	omega := core.Vec3{1, 0, 0}

	d, err := k.FindDistance(x, omega, c0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-12)

	xNew, cellNew, status, err := k.FindNewCell(x, omega)
	require.NoError(t, err)
	assert.Equal(t, c0, cellNew)
	assert.Equal(t, transport.Reflected, status)

	omega1, err := k.ReflectDirection(xNew, omega)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, omega1.Len(), 1e-9)
	assert.InDelta(t, -1.0, omega1.X(), 1e-12)

	// Reflecting twice across the same surface returns the original
	// direction (spec round-trip law); the step cache is unchanged since
	// no new FindDistance call has intervened.
	omega2, err := k.ReflectDirection(xNew, omega1)
	require.NoError(t, err)
	assert.InDelta(t, omega.X(), omega2.X(), 1e-12)
	assert.InDelta(t, omega.Y(), omega2.Y(), 1e-12)
	assert.InDelta(t, omega.Z(), omega2.Z(), 1e-12)
}

func TestTransport_GetSurfaceCrossing(t *testing.T) {
	r := registry.New()
	_, err := r.AddSurface(7, core.NewAxisPlane(core.AxisX, 1, false))
	require.NoError(t, err)
	c0, err := r.AddCell(10, []int64{-7}, 0)
	require.NoError(t, err)
	_, err = r.AddCell(20, []int64{7}, 0)
	require.NoError(t, err)
	r.CompleteInput()

	k := transport.NewKernel(r)
	x := core.Vec3{0.5, 0, 0}
	omega := core.Vec3{1, 0, 0}
	_, err = k.FindDistance(x, omega, c0)
	require.NoError(t, err)
	xNew, _, _, err := k.FindNewCell(x, omega)
	require.NoError(t, err)

	userID, proj, err := k.GetSurfaceCrossing(xNew, omega)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), userID)
	assert.InDelta(t, 1.0, proj, 1e-12)
}

func TestTransport_DeadCell(t *testing.T) {
	_, c0, _ := twoSlabMesh(t)
	// Re-flag cell1 dead by rebuilding the mesh with the flag set directly.
	r2 := registry.New()
	_, err := r2.AddSurface(1, core.NewAxisPlane(core.AxisX, 0, false))
	require.NoError(t, err)
	_, err = r2.AddSurface(2, core.NewAxisPlane(core.AxisX, 1, false))
	require.NoError(t, err)
	_, err = r2.AddSurface(3, core.NewAxisPlane(core.AxisX, 2, false))
	require.NoError(t, err)
	c0b, err := r2.AddCell(10, []int64{1, -2}, 0)
	require.NoError(t, err)
	c1b, err := r2.AddCell(20, []int64{2, -3}, cell.Dead)
	require.NoError(t, err)
	r2.CompleteInput()
	assert.Equal(t, c0, c0b)

	k := transport.NewKernel(r2)
	x := core.Vec3{0.5, 0.5, 0.5}
	omega := core.Vec3{1, 0, 0}
	_, err = k.FindDistance(x, omega, c0b)
	require.NoError(t, err)
	_, cellNew, status, err := k.FindNewCell(x, omega)
	require.NoError(t, err)
	assert.Equal(t, c1b, cellNew)
	assert.Equal(t, transport.DeadCell, status)
}

func TestTransport_OppositeSenseProbe_NoGlobalFallbackWarning(t *testing.T) {
	r, c0, c1 := twoSlabMesh(t)
	var warnings []diag.Warning
	k := transport.NewKernel(r, transport.WithWarningHook(func(w diag.Warning) {
		warnings = append(warnings, w)
	}))

	x := core.Vec3{0.5, 0.5, 0.5}
	omega := core.Vec3{1, 0, 0}
	_, err := k.FindDistance(x, omega, c0)
	require.NoError(t, err)
	_, cellNew, _, err := k.FindNewCell(x, omega)
	require.NoError(t, err)
	assert.Equal(t, c1, cellNew)

	// The opposite-sense probe finds cell1 directly in this mesh, so no
	// global-search warning fires; this asserts the quieter path instead.
	for _, w := range warnings {
		assert.NotEqual(t, diag.GlobalSearchUsed, w.Kind)
	}
}

func TestTransport_FindDistance_RejectsNonUnitDirection(t *testing.T) {
	r, c0, _ := twoSlabMesh(t)
	k := transport.NewKernel(r)
	_, err := k.FindDistance(core.Vec3{0, 0, 0}, core.Vec3{2, 0, 0}, c0)
	assert.ErrorIs(t, err, transport.ErrNonUnitDirection)
}

func TestTransport_FindNewCell_RequiresPriorFindDistance(t *testing.T) {
	r, _, _ := twoSlabMesh(t)
	k := transport.NewKernel(r)
	_, _, _, err := k.FindNewCell(core.Vec3{0, 0, 0}, core.Vec3{1, 0, 0})
	assert.ErrorIs(t, err, transport.ErrNoPriorFindDistance)
}

func TestTransport_FindCell_LocatesContainingCell(t *testing.T) {
	r, c0, c1 := twoSlabMesh(t)
	k := transport.NewKernel(r)

	idx, err := k.FindCell(core.Vec3{0.5, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, c0, idx)

	idx, err = k.FindCell(core.Vec3{1.5, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, c1, idx)
}

func TestTransport_FindCell_FatalWhenUnclaimed(t *testing.T) {
	r, _, _ := twoSlabMesh(t)
	k := transport.NewKernel(r)

	_, err := k.FindCell(core.Vec3{100, 100, 100})
	require.Error(t, err)
	var fe *diag.FatalError
	assert.True(t, errors.As(err, &fe))
}
