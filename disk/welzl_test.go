package disk_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reebtide/disk"
	"github.com/katalvlaran/reebtide/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallestEnclosingDisk_Empty(t *testing.T) {
	t.Parallel()

	_, ok := disk.SmallestEnclosingDisk(nil)
	require.False(t, ok)
}

func TestSmallestEnclosingDisk_Collinear(t *testing.T) {
	t.Parallel()

	pts := []geom.Point{geom.New(0, 0), geom.New(1, 0), geom.New(2, 0)}
	d, ok := disk.SmallestEnclosingDisk(pts)
	require.True(t, ok)
	assert.InDelta(t, 1, d.Center.X, 1e-9)
	assert.InDelta(t, 0, d.Center.Y, 1e-9)
	assert.InDelta(t, 1, d.Radius, 1e-9)
}

func TestSmallestEnclosingDisk_RightTriangle(t *testing.T) {
	t.Parallel()

	pts := []geom.Point{geom.New(0, 0), geom.New(1, 0), geom.New(0, 1)}
	d, ok := disk.SmallestEnclosingDisk(pts)
	require.True(t, ok)
	assert.InDelta(t, 0.5, d.Center.X, 1e-9)
	assert.InDelta(t, 0.5, d.Center.Y, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), d.Radius, 1e-9)
}

func TestSmallestEnclosingDisk_ContainsAllPoints(t *testing.T) {
	t.Parallel()

	const eps = 1e-6
	for _, pts := range [][]geom.Point{
		{geom.New(0, 0), geom.New(2, 0), geom.New(1, 2)},
		{geom.New(0, 0), geom.New(4, 0), geom.New(4, 3), geom.New(0, 3)},
		{geom.New(-1, -1), geom.New(1, -1), geom.New(0, 1), geom.New(0, 0.2)},
	} {
		d, ok := disk.SmallestEnclosingDisk(pts)
		require.True(t, ok)
		for _, p := range pts {
			dx := p.X - d.Center.X
			dy := p.Y - d.Center.Y
			assert.LessOrEqual(t, dx*dx+dy*dy, d.Radius*d.Radius+eps)
		}
	}
}

func TestSmallestEnclosingDisk_SinglePoint(t *testing.T) {
	t.Parallel()

	d, ok := disk.SmallestEnclosingDisk([]geom.Point{geom.New(3, 4)})
	require.True(t, ok)
	assert.Equal(t, geom.New(3, 4), d.Center)
	assert.Zero(t, d.Radius)
}
