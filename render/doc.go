// Package render is the output collaborator: it draws a reeb.ReebGraph as
// either an SVG or an IPE document. The core never renders anything
// itself — render only reads a finished graph.
//
// Both formats use the same layout: a critical point at x-coordinate x and
// layer t is placed at canvas position (x*XScale, t*YScale); an edge from
// parent to child is a straight segment from the parent's position to
// (child's x-coordinate * XScale, (parent's layer + 1) * YScale). A
// critical point is drawn as a visible mark only where it is a
// bifurcation — in-degree != 1 or out-degree != 1 — per
// reeb.ReebGraph.IsBifurcation; ordinary pass-through points are invisible
// scaffolding between edges.
//
// Defaults: XScale = 16, YScale = 16, matching the reference tool's
// defaults.
//
// SVG rendering is grounded on github.com/ajstarks/svgo. No IPE client
// library exists anywhere in this module's dependency corpus, so IPE is a
// small hand-written XML writer built with fmt — see
// DESIGN.md for why no third-party IPE library was available to wire in
// instead.
package render
