package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/jerusalem-cube/jcube"
)

func main() {
	var depth int
	var printable bool
	flag.IntVar(&depth, "depth", 1, "number of carving iterations")
	flag.BoolVar(&printable, "printable", true,
		"keep duplicated seam vertices so the mesh stays manifold")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: cube_to_stl [flags] <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath := args[0]

	if depth < 0 {
		essentials.Die("depth must be non-negative")
	}
	if depth > 4 {
		log.Println("Note: triangle counts grow quickly; depth above 4 may take a while.")
	}

	log.Println("Generating cubes...")
	verts, tris := jcube.Generate(depth, printable, 0)
	log.Printf("Created mesh with %d vertices and %d triangles.", len(verts), len(tris))

	log.Println("Saving mesh...")
	essentials.Must(jcube.ToMesh(verts, tris).SaveGroupedSTL(outputPath))
}
