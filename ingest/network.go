package ingest

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/reebtide/geom"
	"github.com/katalvlaran/reebtide/island"
)

// edge is one accepted (post-delta-filter) edge record: the vertex-index
// endpoints and weight from the file, plus any intermediate polyline
// coordinates.
type edge struct {
	u, v   int
	weight float64
	path   []geom.Point
}

// Network is a parsed, delta-filtered weighted graph, ready to be converted
// to an island.Graph for face enumeration.
type Network struct {
	verts []geom.Point
	edges []edge
}

// ParseNetwork reads one time-slice file in the format documented in the
// package doc. Edges whose weight is NaN or below delta are dropped before
// they ever reach Network — ToIsland sees only the accepted edges.
func ParseNetwork(r io.Reader, delta float64) (*Network, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, fmt.Errorf("%w: vertex count", ErrTruncated)
	}
	n, err := strconv.Atoi(header)
	if err != nil {
		return nil, fmt.Errorf("%w at line %d: vertex count %q: %v", ErrMalformedLine, lineNo, header, err)
	}

	verts := make([]geom.Point, n)
	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d of %d", ErrTruncated, i, n)
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w at line %d: want 3 fields, got %d", ErrMalformedLine, lineNo, len(fields))
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil || idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w at line %d: %q", ErrVertexIndex, lineNo, fields[0])
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w at line %d: non-integer coordinate", ErrMalformedLine, lineNo)
		}
		verts[idx] = geom.New(float64(x), float64(y))
		seen[idx] = true
	}
	for i, s := range seen {
		if !s {
			return nil, fmt.Errorf("%w: vertex %d never declared", ErrVertexIndex, i)
		}
	}

	mLine, ok := nextLine()
	if !ok {
		return nil, fmt.Errorf("%w: edge count", ErrTruncated)
	}
	m, err := strconv.Atoi(mLine)
	if err != nil {
		return nil, fmt.Errorf("%w at line %d: edge count %q: %v", ErrMalformedLine, lineNo, mLine, err)
	}

	net := &Network{verts: verts}
	for e := 0; e < m; e++ {
		line, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("%w: edge %d of %d", ErrTruncated, e, m)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w at line %d: want at least 4 fields, got %d", ErrMalformedLine, lineNo, len(fields))
		}

		u, errU := strconv.Atoi(fields[1])
		v, errV := strconv.Atoi(fields[2])
		if errU != nil || errV != nil || u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w at line %d: endpoint (%s,%s)", ErrVertexIndex, lineNo, fields[1], fields[2])
		}

		weight, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: weight %q: %v", ErrMalformedLine, lineNo, fields[3], err)
		}
		if math.IsNaN(weight) || weight < delta {
			continue
		}

		pathFields := fields[4:]
		if len(pathFields)%2 != 0 {
			return nil, fmt.Errorf("%w at line %d: odd number of path coordinates", ErrMalformedLine, lineNo)
		}
		path := make([]geom.Point, 0, len(pathFields)/2)
		for k := 0; k < len(pathFields); k += 2 {
			px, errX := strconv.Atoi(pathFields[k])
			py, errY := strconv.Atoi(pathFields[k+1])
			if errX != nil || errY != nil {
				return nil, fmt.Errorf("%w at line %d: non-integer path coordinate", ErrMalformedLine, lineNo)
			}
			path = append(path, geom.New(float64(px), float64(py)))
		}

		net.edges = append(net.edges, edge{u: u, v: v, weight: weight, path: path})
	}

	return net, nil
}

// ToIsland converts the parsed network into an island.Graph: each accepted
// edge's endpoints (and any intermediate polyline coordinates) become a
// chain of consecutive graph edges, all carrying the edge's weight.
func (n *Network) ToIsland() *island.Graph {
	g := island.New()
	for _, e := range n.edges {
		points := make([]geom.Point, 0, len(e.path)+2)
		points = append(points, n.verts[e.u])
		points = append(points, e.path...)
		points = append(points, n.verts[e.v])

		for i := 0; i+1 < len(points); i++ {
			from := island.Coord{int(points[i].X), int(points[i].Y)}
			to := island.Coord{int(points[i+1].X), int(points[i+1].Y)}
			g.AddEdge(from, to, e.weight)
		}
	}
	return g
}
