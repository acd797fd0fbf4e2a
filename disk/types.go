package disk

import "github.com/katalvlaran/reebtide/geom"

// Disk is a closed disk: every point within Radius of Center (inclusive).
type Disk struct {
	Center geom.Point
	Radius float64
}

// Contains reports whether p lies within or on the boundary of d.
func (d Disk) Contains(p geom.Point) bool {
	dx := p.X - d.Center.X
	dy := p.Y - d.Center.Y
	return dx*dx+dy*dy <= d.Radius*d.Radius
}

// containsAll reports whether d contains every point in pts.
func (d Disk) containsAll(pts []geom.Point) bool {
	for _, p := range pts {
		if !d.Contains(p) {
			return false
		}
	}
	return true
}
