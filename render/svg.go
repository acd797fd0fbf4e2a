package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/reebtide/reeb"
)

// SVG writes g to w as an SVG document: a straight line per tracker edge, a
// small circle per bifurcation point.
func SVG(w io.Writer, g *reeb.ReebGraph, opts ...Option) error {
	cfg := newConfig(opts)
	edges, marks, width, height := layout(g, cfg)

	const margin = 8
	canvas := svg.New(w)
	canvas.Start(int(width)+margin, int(height)+margin)

	for _, e := range edges {
		canvas.Line(int(e.x1), int(e.y1), int(e.x2), int(e.y2), "stroke:black;stroke-width:1")
	}
	for _, m := range marks {
		canvas.Circle(int(m.x), int(m.y), 3, "fill:firebrick;stroke:black")
	}

	canvas.End()
	return nil
}
