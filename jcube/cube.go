package jcube

import (
	"github.com/unixpickle/model3d/model3d"
)

// Corner j of a cube has bit layout j = jx + 2*jy + 4*jz, where a set bit
// selects the high side of the corresponding axis. Every face quad starts at
// the face's low-low corner and winds (lo,lo), (hi,lo), (hi,hi), (lo,hi) in
// the face plane's free axes taken in x<y<z order. Coincident faces of two
// different cubes therefore always triangulate with the same diagonal, which
// lets the seam dedup in Assemble and Finalize match them exactly.
var cubeFaces = [6][4]int{
	{0, 2, 6, 4}, // x = min
	{1, 3, 7, 5}, // x = max
	{0, 1, 5, 4}, // y = min
	{2, 3, 7, 6}, // y = max
	{0, 1, 3, 2}, // z = min
	{4, 5, 7, 6}, // z = max
}

// A Cube is an axis-aligned box described by its 8 corners.
//
// Cubes are immutable values. Subdivision produces new Cube instances and
// never modifies an existing one.
type Cube struct {
	corners [8]model3d.Coord3D
}

// NewCube creates the cube spanning min to max.
func NewCube(min, max model3d.Coord3D) Cube {
	var c Cube
	for j := range c.corners {
		p := min
		if j&1 != 0 {
			p.X = max.X
		}
		if j&2 != 0 {
			p.Y = max.Y
		}
		if j&4 != 0 {
			p.Z = max.Z
		}
		c.corners[j] = p
	}
	return c
}

// Corners returns the 8 corners in corner-index order.
func (c Cube) Corners() [8]model3d.Coord3D {
	return c.corners
}

// Corner returns corner j.
func (c Cube) Corner(j int) model3d.Coord3D {
	return c.corners[j]
}

// Faces returns the 6 face quads as indices into Corners().
//
// The table is shared by all cubes.
func (c Cube) Faces() [6][4]int {
	return cubeFaces
}

// Min computes the low corner of the bounding box.
func (c Cube) Min() model3d.Coord3D {
	res := c.corners[0]
	for _, p := range c.corners[1:] {
		res = res.Min(p)
	}
	return res
}

// Max computes the high corner of the bounding box.
func (c Cube) Max() model3d.Coord3D {
	res := c.corners[0]
	for _, p := range c.corners[1:] {
		res = res.Max(p)
	}
	return res
}

// EdgeLength returns the side length of the cube.
func (c Cube) EdgeLength() float64 {
	return c.Max().X - c.Min().X
}

// diagonal is the length of the main space diagonal.
func (c Cube) diagonal() float64 {
	return c.corners[7].Sub(c.corners[0]).Norm()
}
