package dcel_test

import (
	"testing"

	"github.com/katalvlaran/reebtide/dcel"
	"github.com/katalvlaran/reebtide/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds the 4-cycle 0-1-2-3-0 around a unit square.
func square(t *testing.T) *dcel.DCEL {
	t.Helper()
	vertices := []geom.Point{
		geom.New(0, 0), geom.New(1, 0), geom.New(1, 1), geom.New(0, 1),
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	d, err := dcel.BuildFromGraph(vertices, edges)
	require.NoError(t, err)
	return d
}

func TestBuildFromGraph_TwinSymmetry(t *testing.T) {
	t.Parallel()

	d := square(t)
	for h, he := range d.HalfEdges {
		require.True(t, he.Alive)
		twin := he.Twin
		assert.Equal(t, h, d.HalfEdges[twin].Twin, "twin of twin must be itself")
		assert.NotEqual(t, he.Origin, d.HalfEdges[twin].Origin, "twin must not share origin")
	}
}

func TestBuildFromGraph_CycleClosure(t *testing.T) {
	t.Parallel()

	d := square(t)
	for h := range d.HalfEdges {
		cur := d.Next(h)
		steps := 1
		for cur != h {
			require.Less(t, steps, len(d.HalfEdges)+1, "next-cycle failed to close")
			assert.Equal(t, cur, d.Next(d.Prev(cur)), "prev must invert next")
			cur = d.Next(cur)
			steps++
		}
	}
}

func TestBuildFromGraph_DanglingVertex(t *testing.T) {
	t.Parallel()

	_, err := dcel.BuildFromGraph([]geom.Point{geom.New(0, 0), geom.New(1, 0)}, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, dcel.ErrDanglingVertex)
}

func TestBuildFromGraph_SelfLoop(t *testing.T) {
	t.Parallel()

	_, err := dcel.BuildFromGraph([]geom.Point{geom.New(0, 0)}, [][2]int{{0, 0}})
	assert.ErrorIs(t, err, dcel.ErrSelfLoop)
}

func TestBuildFromGraph_DuplicateEdge(t *testing.T) {
	t.Parallel()

	vertices := []geom.Point{geom.New(0, 0), geom.New(1, 0)}
	_, err := dcel.BuildFromGraph(vertices, [][2]int{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, dcel.ErrDuplicateEdge)
}

func TestAddFaces_SingleUnboundedFace(t *testing.T) {
	t.Parallel()

	d := square(t)
	require.NoError(t, d.AddFaces())

	for _, he := range d.HalfEdges {
		assert.GreaterOrEqual(t, he.Face, 0)
	}
	assert.Len(t, d.Faces, 2, "one bounded square face plus one unbounded outer face")

	err := d.AddFaces()
	assert.ErrorIs(t, err, dcel.ErrFacesAlreadyBuilt)
}

func TestMakePolygons_DropsOuterFace(t *testing.T) {
	t.Parallel()

	d := square(t)
	require.NoError(t, d.AddFaces())

	polys := d.MakePolygons()
	require.Len(t, polys, 1)
	assert.Len(t, polys[0].Vertices, 4)
}

func TestInsertLine_CrossingSegments(t *testing.T) {
	t.Parallel()

	d := dcel.New()
	d.InsertLine(geom.New(0, 0), geom.New(2, 2))
	d.InsertLine(geom.New(0, 2), geom.New(2, 0))

	for h, he := range d.HalfEdges {
		if !he.Alive {
			continue
		}
		assert.Equal(t, h, d.HalfEdges[he.Twin].Twin)
	}

	require.NoError(t, d.AddFaces())
	assert.NotEmpty(t, d.Faces)
}
