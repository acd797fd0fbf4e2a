// Package geom_test exercises the geometry primitives: orientation,
// distance, segment intersection, and the Line helper.
package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reebtide/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeftTurn(t *testing.T) {
	t.Parallel()

	assert.True(t, geom.LeftTurn(geom.New(0, 0), geom.New(1, 0), geom.New(1, 1)))
	assert.False(t, geom.LeftTurn(geom.New(0, 0), geom.New(1, 0), geom.New(1, -1)))
	assert.False(t, geom.LeftTurn(geom.New(0, 0), geom.New(1, 0), geom.New(2, 0)))
}

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, geom.Distance(geom.New(0, 0), geom.New(3, 4)), 1e-9)
	assert.InDelta(t, 0.0, geom.Distance(geom.New(1, 1), geom.New(1, 1)), 1e-9)
}

func TestSegmentIntersection(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		s1, s2 geom.Segment
		wantOK bool
		want   geom.Point
	}{
		{
			name:   "crossing diagonals",
			s1:     geom.Segment{A: geom.New(0, 0), B: geom.New(2, 2)},
			s2:     geom.Segment{A: geom.New(0, 2), B: geom.New(2, 0)},
			wantOK: true,
			want:   geom.New(1, 1),
		},
		{
			name:   "parallel, no intersection",
			s1:     geom.Segment{A: geom.New(0, 0), B: geom.New(1, 0)},
			s2:     geom.Segment{A: geom.New(0, 1), B: geom.New(1, 1)},
			wantOK: false,
		},
		{
			name:   "collinear overlap",
			s1:     geom.Segment{A: geom.New(0, 0), B: geom.New(2, 0)},
			s2:     geom.Segment{A: geom.New(1, 0), B: geom.New(3, 0)},
			wantOK: false,
		},
		{
			name:   "shared endpoint only",
			s1:     geom.Segment{A: geom.New(0, 0), B: geom.New(1, 1)},
			s2:     geom.Segment{A: geom.New(1, 1), B: geom.New(2, 0)},
			wantOK: false,
		},
		{
			name:   "no intersection at all",
			s1:     geom.Segment{A: geom.New(0, 0), B: geom.New(1, 0)},
			s2:     geom.Segment{A: geom.New(5, 5), B: geom.New(6, 6)},
			wantOK: false,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := geom.SegmentIntersection(tc.s1, tc.s2)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.InDelta(t, tc.want.X, got.X, 1e-9)
				assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			}
		})
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	horiz := geom.LineThrough(geom.New(0, 1), geom.New(4, 1))
	require.False(t, horiz.Vertical())
	assert.InDelta(t, 1.0, horiz.At(100), 1e-9)

	vert := geom.LineThrough(geom.New(3, 0), geom.New(3, 5))
	assert.True(t, vert.Vertical())

	other := geom.LineThrough(geom.New(0, 0), geom.New(4, 4))
	p, ok := vert.Intersection(other)
	require.True(t, ok)
	assert.InDelta(t, 3.0, p.X, 1e-9)
	assert.InDelta(t, 3.0, p.Y, 1e-9)

	l1 := geom.NewLine(2, geom.New(0, 0))
	l2 := geom.NewLine(2, geom.New(0, 1))
	assert.True(t, l1.IsParallelTo(l2))
	assert.False(t, l1.IsOverlappingWith(l2))

	l3 := geom.NewLine(2, geom.New(0, 0))
	assert.True(t, l1.IsOverlappingWith(l3))

	assert.True(t, math.IsInf(math.Inf(1), 1))
}
