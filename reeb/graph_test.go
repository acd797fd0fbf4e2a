package reeb_test

import (
	"testing"

	"github.com/katalvlaran/reebtide/reeb"
	"github.com/stretchr/testify/assert"
)

func TestNew_Root(t *testing.T) {
	t.Parallel()

	g := reeb.New(0, 3.5, 2)
	assert.Equal(t, 2, g.Layer[0])
	assert.Equal(t, 3.5, g.XCoords[0])
	assert.Equal(t, 0, g.InDegree[0])
	assert.Equal(t, 1, g.OutDegree[0])
}

func TestAddPoint_MergeKeepsFirstXCoord(t *testing.T) {
	t.Parallel()

	g := reeb.New(0, 0, 0)
	g.AddPoint(0, 0, 1, 10)
	g.AddPoint(0, 0, 2, 20)
	g.AddPoint(1, 1, 3, 99) // merge: both 1 and 2 link into 3
	g.AddPoint(1, 2, 3, 42)

	assert.Equal(t, float64(99), g.XCoords[3], "first writer wins")
	assert.Equal(t, 2, g.InDegree[3], "two distinct parent edges")
	assert.Equal(t, []int{3}, g.Children[1])
	assert.Equal(t, []int{3}, g.Children[2])
}

func TestAddPoint_SplitIncreasesOutDegree(t *testing.T) {
	t.Parallel()

	g := reeb.New(0, 0, 0)
	g.AddPoint(0, 0, 1, 1)
	g.AddPoint(0, 0, 2, 2)

	assert.Equal(t, 3, g.OutDegree[0], "placeholder 1 plus two real edges")
	assert.ElementsMatch(t, []int{1, 2}, g.Children[0])
}

func TestIsBifurcation(t *testing.T) {
	t.Parallel()

	g := reeb.New(0, 0, 0)
	g.AddPoint(0, 0, 1, 1)

	assert.True(t, g.IsBifurcation(0), "root placeholder out-degree starts above 1")
	assert.True(t, g.IsBifurcation(1), "child 1 has no outgoing edges yet")
}
