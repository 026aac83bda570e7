package jcube

import (
	"math"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// baseHalfEdge is the half-edge of the starting cube, chosen so that its 8
// corners lie on the unit sphere.
var baseHalfEdge = math.Sqrt(3) / 3

// BaseCube returns the starting cube, inscribed in the unit sphere.
func BaseCube() Cube {
	return NewCube(
		model3d.XYZ(-baseHalfEdge, -baseHalfEdge, -baseHalfEdge),
		model3d.XYZ(baseHalfEdge, baseHalfEdge, baseHalfEdge),
	)
}

// Cubes runs the depth-limited carving recursion and returns the final
// collection of sub-cubes.
//
// The collection starts as the single cube from BaseCube() and goes through
// exactly depth+2 passes. Each pass replaces every cube still above a size
// threshold that shrinks by a factor of SplitRatio per pass with its 20
// children, and carries smaller cubes over unchanged. The threshold on the
// first pass exceeds the base cube's size, so the first pass carves every
// cube. Thresholds fall strictly between the discrete cube sizes the
// construction can produce, so no comparison rides on float rounding.
//
// The concurrency argument limits the number of Goroutines used to carve a
// pass. If concurrency is 0, GOMAXPROCS is used. Results do not depend on
// concurrency.
func Cubes(depth, concurrency int) []Cube {
	cubes := []Cube{BaseCube()}
	for p := 0; p != depth+2; p++ {
		limit := baseHalfEdge * math.Pow(SplitRatio, float64(p-1))
		children := make([][]Cube, len(cubes))
		essentials.ConcurrentMap(concurrency, len(cubes), func(i int) {
			if cubes[i].diagonal() > limit {
				children[i] = cubes[i].Children(SplitRatio)
			}
		})
		next := make([]Cube, 0, len(cubes))
		for i, c := range cubes {
			if children[i] != nil {
				next = append(next, children[i]...)
			} else {
				next = append(next, c)
			}
		}
		cubes = next
	}
	return cubes
}

// Generate produces the Jerusalem cube surface mesh for the given depth.
//
// If printableReady is true, every cube keeps its own 8 vertices and 12
// triangles, so the mesh stays manifold at seams and is safe to print. If
// false, coincident seam vertices are welded and duplicate seam triangles
// removed, trading manifoldness for a smaller mesh.
//
// The returned triangle indices are 0-based into the vertex slice. The
// output is a pure function of the arguments other than concurrency, which
// only bounds Goroutine usage (0 means GOMAXPROCS).
func Generate(depth int, printableReady bool, concurrency int) ([]model3d.Coord3D, [][3]int) {
	cubes := Cubes(depth, concurrency)
	v, t := Assemble(cubes, concurrency)
	return Finalize(v, t, printableReady)
}
