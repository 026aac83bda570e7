package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/jerusalem-cube/jcube"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
)

func main() {
	var depth int
	var gridSize int
	var imageSize int
	var fps float64
	var frames int
	flag.IntVar(&depth, "depth", 1, "number of carving iterations")
	flag.IntVar(&gridSize, "grid-size", 3, "grid size (used for rows and columns)")
	flag.IntVar(&imageSize, "image-size", 300, "size of each image in the grid")
	flag.Float64Var(&fps, "fps", 10.0, "FPS for GIF outputs")
	flag.IntVar(&frames, "frames", 20, "total number of frames for GIF outputs")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_cube [flags] <output.png>")
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
	verts, tris := jcube.Generate(depth, false, 0)
	mesh := jcube.ToMesh(verts, tris)

	log.Println("Rendering...")
	object := render3d.Objectify(model3d.MeshToCollider(mesh), nil)
	ext := filepath.Ext(outputPath)
	if strings.ToLower(ext) == ".gif" {
		essentials.Must(
			render3d.SaveRotatingGIF(
				outputPath,
				object,
				model3d.Z(1),
				model3d.YZ(-1, 0.1).Normalize(),
				imageSize,
				frames,
				fps,
				nil,
			),
		)
	} else {
		essentials.Must(
			render3d.SaveRandomGrid(outputPath, object, gridSize, gridSize, imageSize, nil),
		)
	}
}
