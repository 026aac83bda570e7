package jcube

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// SplitRatio is the Jerusalem cube subdivision ratio. Corner sub-cubes have
// edge SplitRatio times the parent edge, and the cross tunnels carved into
// each face have width SplitRatio^2 times the parent edge.
const SplitRatio = math.Sqrt2 - 1

// splitPoints computes the 6 split values along one axis: the two extremes,
// the two outer splits at 1-2h = h^2 from each end, and the two inner splits
// at h from each end.
func splitPoints[F constraints.Float](lo, hi, h F) [6]F {
	span := hi - lo
	return [6]F{
		lo,
		lo + (1-2*h)*span,
		lo + h*span,
		hi - h*span,
		hi - (1-2*h)*span,
		hi,
	}
}

// subdivisionGrid computes the full 6x6x6 grid of split points for a cube.
// Point (ix, iy, iz) lands at index 36*iz + 6*iy + ix.
func subdivisionGrid(c Cube, h float64) []model3d.Coord3D {
	min, max := c.Min(), c.Max()
	xs := splitPoints(min.X, max.X, h)
	ys := splitPoints(min.Y, max.Y, h)
	zs := splitPoints(min.Z, max.Z, h)
	verts := make([]model3d.Coord3D, 0, 216)
	for _, z := range zs {
		for _, y := range ys {
			for _, x := range xs {
				verts = append(verts, model3d.XYZ(x, y, z))
			}
		}
	}
	return verts
}

// Subdivide carves one level of the Jerusalem cube pattern out of a cube.
//
// It returns the 216 grid vertices and 120 quads: 6 faces for each of the 20
// surviving sub-cubes, each quad as 4 indices into the vertex buffer.
func Subdivide(c Cube, h float64) ([]model3d.Coord3D, [][4]int) {
	verts := subdivisionGrid(c, h)
	quads := make([][4]int, 0, 120)
	for _, hex := range hexTable {
		for _, face := range cubeFaces {
			quads = append(quads, [4]int{
				hex[face[0]],
				hex[face[1]],
				hex[face[2]],
				hex[face[3]],
			})
		}
	}
	return verts, quads
}

// Children returns the 20 sub-cubes that survive one carving pass.
func (c Cube) Children(h float64) []Cube {
	verts := subdivisionGrid(c, h)
	children := make([]Cube, len(hexTable))
	for i, hex := range hexTable {
		var child Cube
		for j, vi := range hex {
			child.corners[j] = verts[vi]
		}
		children[i] = child
	}
	return children
}
