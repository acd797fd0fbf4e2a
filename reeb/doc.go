// Package reeb tracks islands across a sequence of time-sliced planar
// subdivisions and records their topological evolution — merges, splits,
// deaths — as a Reeb graph. Births (islands with no predecessor in the
// previous layer) are not recorded.
//
// What:
//
//   - ReebGraph: critical points identified by plain integer IDs. New
//     creates a root critical point; AddPoint links a parent to a child at
//     a given layer, first-writer-wins on the child's x-coordinate,
//     duplicate-tolerant on the children list (a child reached by more
//     than one parent is a merge).
//   - IslandSource: the collaborator boundary. Run never parses files
//     or enumerates directories itself; it asks a caller-supplied
//     IslandSource for the polygon list at a given layer index, on demand.
//   - Run: the layered breadth-first search described in the
//     package's governing specification — seed search, window-sliding
//     cache of two adjacent layers' islands, and the containment-based
//     linking predicate between a parent island's and a candidate child
//     island's representative points.
//   - Method: selects which representative-point rule (centroid or
//     smallest-enclosing-disk centre) the linking predicate uses.
//
// Errors: Run returns a non-nil error only if the IslandSource itself
// fails (an I/O or parse failure surfacing from the collaborator) or the
// context supplied with WithContext is done (ctx.Err()). A seed
// point absent from every layer is not an error — Run returns a
// graph containing only its root and the caller can tell the two cases
// apart by checking len(graph.Children) == 1.
//
// Options: Run accepts functional Options; WithContext lets a caller
// cancel a long-running trace between seed-search layers and between BFS
// steps.
package reeb
