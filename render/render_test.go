package render_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/reebtide/reeb"
	"github.com/katalvlaran/reebtide/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() *reeb.ReebGraph {
	g := reeb.New(0, 1, 0)
	g.AddPoint(0, 0, 1, 2)
	g.AddPoint(0, 0, 2, 3)
	return g
}

func TestSVG_ContainsLinesAndMarks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, sampleGraph()))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, "<circle", "root is a split, so it must render as a bifurcation mark")
}

func TestIPE_ContainsPathAndMark(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.IPE(&buf, sampleGraph()))

	out := buf.String()
	assert.Contains(t, out, "<ipe ")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, "mark/disk")
}

func TestSVG_CustomScale(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.SVG(&buf, sampleGraph(), render.WithXScale(1), render.WithYScale(1)))
	assert.Contains(t, buf.String(), "<svg")
}
