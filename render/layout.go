package render

import (
	"sort"

	"github.com/katalvlaran/reebtide/reeb"
)

// edgeSpan is one rendered parent-to-child segment.
type edgeSpan struct {
	x1, y1 float64
	x2, y2 float64
}

// markPoint is one rendered bifurcation mark.
type markPoint struct {
	x, y float64
}

// layout walks g in a deterministic (sorted-by-ID) order and produces the
// edge segments and bifurcation marks both renderers draw, plus the
// overall canvas bounds.
func layout(g *reeb.ReebGraph, cfg config) (edges []edgeSpan, marks []markPoint, width, height float64) {
	parents := make([]int, 0, len(g.Children))
	for id := range g.Children {
		parents = append(parents, id)
	}
	sort.Ints(parents)

	for _, parent := range parents {
		px := g.XCoords[parent] * cfg.xScale
		py := float64(g.Layer[parent]) * cfg.yScale
		if px > width {
			width = px
		}
		if py > height {
			height = py
		}

		for _, child := range g.Children[parent] {
			cx := g.XCoords[child] * cfg.xScale
			cy := float64(g.Layer[parent]+1) * cfg.yScale
			edges = append(edges, edgeSpan{x1: px, y1: py, x2: cx, y2: cy})
			if cx > width {
				width = cx
			}
			if cy > height {
				height = cy
			}
		}
	}

	points := make([]int, 0, len(g.Layer))
	for id := range g.Layer {
		points = append(points, id)
	}
	sort.Ints(points)

	for _, id := range points {
		if !g.IsBifurcation(id) {
			continue
		}
		marks = append(marks, markPoint{x: g.XCoords[id] * cfg.xScale, y: float64(g.Layer[id]) * cfg.yScale})
	}

	return edges, marks, width, height
}
