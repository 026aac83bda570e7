package jcube

import (
	"math"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// WeldTolerance is the distance (per coordinate) under which Finalize treats
// two vertices as the same point in non-printable mode.
const WeldTolerance = 1e4 * 0x1p-52

// Assemble flattens a cube collection into a vertex slice and a triangle
// slice.
//
// Cube i contributes vertices 8*i through 8*i+7, in corner order, and each
// face quad (a, b, c, d) contributes the triangles (a, b, c) and (a, d, c).
// Triangle indices are sorted ascending, which discards winding order;
// consumers that need normals must derive them from geometry. Triangles that
// come out identical after sorting are removed, keeping first occurrences in
// order.
//
// The concurrency argument bounds Goroutines as in Cubes; results do not
// depend on it.
func Assemble(cubes []Cube, concurrency int) ([]model3d.Coord3D, [][3]int) {
	verts := make([]model3d.Coord3D, 8*len(cubes))
	tris := make([][3]int, 12*len(cubes))
	essentials.ConcurrentMap(concurrency, len(cubes), func(i int) {
		base := 8 * i
		c := cubes[i]
		for j, p := range c.Corners() {
			verts[base+j] = p
		}
		for f, face := range c.Faces() {
			a, b, cc, d := base+face[0], base+face[1], base+face[2], base+face[3]
			tris[12*i+2*f] = sortedTriangle(a, b, cc)
			tris[12*i+2*f+1] = sortedTriangle(a, d, cc)
		}
	})
	return verts, dedupTriangles(tris)
}

// Finalize applies the output-mode policy to an assembled mesh.
//
// In printable mode the mesh is returned unchanged: every cube keeps its own
// seam vertices, so each cube's surface stays locally manifold. Otherwise
// vertices within WeldTolerance of an earlier vertex are merged into it,
// triangle indices are remapped and re-sorted, and duplicate triangles are
// removed in first-seen order. Welded seams can leave edges shared by more
// than two triangles, which is fine for display but not for printing.
//
// Applying the non-printable path twice gives the same result as once.
func Finalize(verts []model3d.Coord3D, tris [][3]int, printableReady bool) ([]model3d.Coord3D, [][3]int) {
	if printableReady {
		return verts, tris
	}
	welded, remap := weldVertices(verts, WeldTolerance)
	newTris := make([][3]int, len(tris))
	for i, t := range tris {
		newTris[i] = sortedTriangle(remap[t[0]], remap[t[1]], remap[t[2]])
	}
	return welded, dedupTriangles(newTris)
}

// ToMesh converts a vertex/triangle pair into a model3d mesh for export or
// rendering.
func ToMesh(verts []model3d.Coord3D, tris [][3]int) *model3d.Mesh {
	m := make([]*model3d.Triangle, len(tris))
	for i, t := range tris {
		m[i] = &model3d.Triangle{verts[t[0]], verts[t[1]], verts[t[2]]}
	}
	return model3d.NewMeshTriangles(m)
}

func sortedTriangle(a, b, c int) [3]int {
	tri := [3]int{a, b, c}
	slices.Sort(tri[:])
	return tri
}

func dedupTriangles(tris [][3]int) [][3]int {
	seen := make(map[[3]int]bool, len(tris))
	res := make([][3]int, 0, len(tris))
	for _, t := range tris {
		if !seen[t] {
			seen[t] = true
			res = append(res, t)
		}
	}
	return res
}

// weldVertices merges vertices that are within tol of an earlier vertex on
// every coordinate. It returns the kept vertices in first-seen order and a
// mapping from old indices to new ones.
//
// Candidates are found through a cell hash with cell size tol, so only the
// 27 cells around a vertex are searched rather than all pairs. When several
// earlier vertices qualify, the earliest one wins.
func weldVertices(verts []model3d.Coord3D, tol float64) ([]model3d.Coord3D, []int) {
	type cellKey [3]int64
	keyOf := func(p model3d.Coord3D) cellKey {
		return cellKey{
			int64(math.Round(p.X / tol)),
			int64(math.Round(p.Y / tol)),
			int64(math.Round(p.Z / tol)),
		}
	}
	cells := make(map[cellKey][]int, len(verts))
	kept := make([]model3d.Coord3D, 0, len(verts))
	remap := make([]int, len(verts))
	for i, p := range verts {
		key := keyOf(p)
		match := -1
		for dz := int64(-1); dz <= 1; dz++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dx := int64(-1); dx <= 1; dx++ {
					neighbor := cellKey{key[0] + dx, key[1] + dy, key[2] + dz}
					for _, j := range cells[neighbor] {
						q := kept[j]
						if math.Abs(p.X-q.X) <= tol &&
							math.Abs(p.Y-q.Y) <= tol &&
							math.Abs(p.Z-q.Z) <= tol {
							if match == -1 || j < match {
								match = j
							}
						}
					}
				}
			}
		}
		if match >= 0 {
			remap[i] = match
		} else {
			remap[i] = len(kept)
			cells[key] = append(cells[key], len(kept))
			kept = append(kept, p)
		}
	}
	return kept, remap
}
