// Command raytracer renders a declarative scene file to a PPM image.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/kvassilev/raytracer/pkg/integrator"
	"github.com/kvassilev/raytracer/pkg/logging"
	"github.com/kvassilev/raytracer/pkg/ppmio"
	"github.com/kvassilev/raytracer/pkg/renderer"
	"github.com/kvassilev/raytracer/pkg/scene"
)

const (
	exitOK         = 0
	exitArgError   = 1
	exitSceneError = 2
	exitIOError    = 3
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: raytracer <binary|phong|pathtracer> <scene-file> [flags]\n\n")
	flag.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.Usage = usage

	samples := fs.Int("samples", 16, "samples per pixel")
	depth := fs.Int("depth", 0, "recursion depth (0 = integrator default)")
	workers := fs.Int("workers", 0, "worker goroutines (0 = runtime.NumCPU())")
	seed := fs.Int64("seed", 0, "master RNG seed (0 = time-seeded)")
	out := fs.String("out", "", "output PPM path (default: <scene>.ppm)")
	ascii := fs.Bool("ascii", false, "write P3 ASCII instead of P6 binary")
	logLevel := fs.String("log-level", "info", "debug|info|warn|error")

	if err := fs.Parse(args); err != nil {
		return exitArgError
	}
	positional := fs.Args()
	if len(positional) > 2 {
		// Flags may also follow the mode and scene file.
		if err := fs.Parse(positional[2:]); err != nil {
			return exitArgError
		}
		positional = append(positional[:2:2], fs.Args()...)
	}
	if len(positional) != 2 {
		usage()
		return exitArgError
	}
	mode, scenePath := positional[0], positional[1]
	if mode != "binary" && mode != "phong" && mode != "pathtracer" {
		fmt.Fprintf(os.Stderr, "raytracer: unknown render mode %q\n", mode)
		usage()
		return exitArgError
	}

	logger := logging.NewSlogLogger(*logLevel)

	sc, err := scene.Load(scenePath)
	if err != nil {
		logger.Printf("scene: %v", err)
		return exitSceneError
	}

	resolvedDepth := *depth
	if resolvedDepth <= 0 {
		resolvedDepth = integrator.DefaultDepth(mode)
	}
	var integ integrator.Integrator
	switch mode {
	case "binary":
		integ = integrator.Binary{}
	case "phong":
		integ = integrator.Phong{MaxDepth: resolvedDepth}
	case "pathtracer":
		integ = integrator.PathTracer{MaxDepth: resolvedDepth}
	}

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	masterSeed := *seed
	if masterSeed == 0 {
		masterSeed = time.Now().UnixNano()
	}

	logger.Printf("rendering %s with %s: %dx%d, %d samples, depth %d, %d workers",
		scenePath, mode, sc.Camera.ImageWidth, sc.Camera.ImageHeight, *samples, resolvedDepth, numWorkers)

	img := renderer.Render(sc, integ, renderer.Options{
		Samples:    *samples,
		Workers:    numWorkers,
		MasterSeed: masterSeed,
	})

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(scenePath, filepath.Ext(scenePath)) + ".ppm"
	}
	f, err := os.Create(outPath)
	if err != nil {
		logger.Printf("output: %v", err)
		return exitIOError
	}
	defer f.Close()

	if *ascii {
		err = ppmio.WriteASCII(f, img)
	} else {
		err = ppmio.Write(f, img)
	}
	if err != nil {
		logger.Printf("output: %v", err)
		return exitIOError
	}

	logger.Printf("wrote %s", outPath)
	return exitOK
}
