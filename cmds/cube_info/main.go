package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/jerusalem-cube/jcube"
)

func main() {
	var depth int
	flag.IntVar(&depth, "depth", 1, "number of carving iterations")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cube_info [flags]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if depth < 0 {
		essentials.Die("depth must be non-negative")
	}

	cubes := jcube.Cubes(depth, 0)
	verts, tris := jcube.Assemble(cubes, 0)
	weldVerts, weldTris := jcube.Finalize(verts, tris, false)

	fmt.Println("Number of cubes:", len(cubes))
	fmt.Println("Printable vertices:", len(verts))
	fmt.Println("Printable triangles:", len(tris))
	fmt.Println("Welded vertices:", len(weldVerts))
	fmt.Println("Welded triangles:", len(weldTris))
	fmt.Println("Bounds min:", jcube.BaseCube().Min())
	fmt.Println("Bounds max:", jcube.BaseCube().Max())
}
