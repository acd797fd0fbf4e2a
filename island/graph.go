package island

import (
	"github.com/katalvlaran/reebtide/dcel"
	"github.com/katalvlaran/reebtide/geom"
	"github.com/katalvlaran/reebtide/polygon"
)

// Coord is an integer grid coordinate, the vertex identity used throughout
// this package.
type Coord [2]int

// NetworkEdge is one endpoint-and-weight record in a vertex's adjacency
// list: the coordinate it leads to and the originating network weight
// (delta) of that edge.
type NetworkEdge struct {
	To    Coord
	Delta float64
}

// Graph is an integer-coordinate adjacency graph for one time-slice.
type Graph struct {
	index map[Coord]int
	coord []Coord
	adj   [][]NetworkEdge
	seen  map[Coord2]bool
}

// Coord2 is a canonical (order-independent) key for an undirected edge
// between two vertex indices.
type Coord2 [2]int

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		index: make(map[Coord]int),
		seen:  make(map[Coord2]bool),
	}
}

func (g *Graph) addVertex(c Coord) int {
	if idx, ok := g.index[c]; ok {
		return idx
	}
	idx := len(g.coord)
	g.index[c] = idx
	g.coord = append(g.coord, c)
	g.adj = append(g.adj, nil)
	return idx
}

func edgeKey2(i, j int) Coord2 {
	if i < j {
		return Coord2{i, j}
	}
	return Coord2{j, i}
}

// AddEdge inserts an undirected edge between from and to with weight delta,
// creating either endpoint vertex if it is not already present. It is a
// no-op if the edge (in either direction) was already added, and a no-op if
// from equals to (self-loops have no place in a planar subdivision).
func (g *Graph) AddEdge(from, to Coord, delta float64) {
	i := g.addVertex(from)
	j := g.addVertex(to)
	if i == j {
		return
	}

	key := edgeKey2(i, j)
	if g.seen[key] {
		return
	}
	g.seen[key] = true

	g.adj[i] = append(g.adj[i], NetworkEdge{To: to, Delta: delta})
	g.adj[j] = append(g.adj[j], NetworkEdge{To: from, Delta: delta})
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.coord) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, adj := range g.adj {
		total += len(adj)
	}
	return total / 2
}

// Edges returns the adjacency list for v, or ok=false if v is not a vertex
// of this graph.
func (g *Graph) Edges(v Coord) (edges []NetworkEdge, ok bool) {
	idx, ok := g.index[v]
	if !ok {
		return nil, false
	}
	return g.adj[idx], true
}

// Reduce iteratively removes every vertex with degree <= 1 (and the edges
// that mention it) until no such vertex remains, pruning dangling spurs
// that would otherwise produce degenerate single-edge faces.
func (g *Graph) Reduce() {
	for {
		keep := make([]bool, len(g.coord))
		anyDrop := false
		for i, adj := range g.adj {
			keep[i] = len(adj) > 1
			if !keep[i] {
				anyDrop = true
			}
		}
		if !anyDrop {
			return
		}

		dropped := make(map[Coord]bool)
		for i, k := range keep {
			if !k {
				dropped[g.coord[i]] = true
			}
		}

		newCoord := make([]Coord, 0, len(g.coord))
		newAdj := make([][]NetworkEdge, 0, len(g.coord))
		newIndex := make(map[Coord]int, len(g.coord))
		for i, k := range keep {
			if !k {
				continue
			}
			filtered := make([]NetworkEdge, 0, len(g.adj[i]))
			for _, e := range g.adj[i] {
				if dropped[e.To] {
					continue
				}
				filtered = append(filtered, e)
			}
			newIndex[g.coord[i]] = len(newCoord)
			newCoord = append(newCoord, g.coord[i])
			newAdj = append(newAdj, filtered)
		}

		newSeen := make(map[Coord2]bool, len(g.seen))
		for i, adj := range newAdj {
			for _, e := range adj {
				newSeen[edgeKey2(i, newIndex[e.To])] = true
			}
		}

		g.coord, g.adj, g.index, g.seen = newCoord, newAdj, newIndex, newSeen
	}
}

// Polygons builds a mode-A DCEL from the current vertex and edge set and
// returns its bounded-face polygons. It returns an error only if the
// underlying DCEL construction rejects the edge set (which Graph's
// deduplication and self-loop guard should always prevent).
func (g *Graph) Polygons() ([]polygon.Polygon, error) {
	points := make([]geom.Point, len(g.coord))
	for i, c := range g.coord {
		points[i] = geom.New(float64(c[0]), float64(c[1]))
	}

	edges := make([][2]int, 0, g.EdgeCount())
	seen := make(map[Coord2]bool, g.EdgeCount())
	for i, adj := range g.adj {
		for _, e := range adj {
			j, ok := g.index[e.To]
			if !ok {
				continue
			}
			key := edgeKey2(i, j)
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, [2]int{i, j})
		}
	}

	d, err := dcel.BuildFromGraph(points, edges)
	if err != nil {
		return nil, err
	}
	if err := d.AddFaces(); err != nil {
		return nil, err
	}
	return d.MakePolygons(), nil
}
