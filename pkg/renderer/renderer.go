// Package renderer parallelizes the per-pixel integrator calls across a
// worker pool and assembles the results into a final Image.
package renderer

import (
	"sync"

	"github.com/kvassilev/raytracer/pkg/camera"
	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/integrator"
	"github.com/kvassilev/raytracer/pkg/scene"
)

// Image is a rendered frame buffer, row-major, top row first.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

func (img *Image) set(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// Options configures a render.
type Options struct {
	Samples    int
	Workers    int
	MasterSeed int64
}

// rowChunk is a contiguous, half-open range of image rows assigned as
// one unit of work to a worker.
type rowChunk struct {
	startY, endY int
}

// Render traces every pixel of sc's camera through integ, Options.Samples
// times each with stratified jitter (and thin-lens jitter when the
// camera has a nonzero aperture), parallelized across Options.Workers
// goroutines. Each worker owns a private, independently seeded sampler so
// that samples never race or correlate across goroutines; workers pull
// row chunks from a shared queue until it drains, then write their
// results directly into the (disjoint) rows they own, so no merge step
// is required.
func Render(sc *scene.Scene, integ integrator.Integrator, opts Options) *Image {
	cam := sc.Camera
	img := NewImage(cam.ImageWidth, cam.ImageHeight)

	const rowsPerChunk = 8
	workQueue := make(chan rowChunk, (cam.ImageHeight/rowsPerChunk)+1)
	for y := 0; y < cam.ImageHeight; y += rowsPerChunk {
		end := min(y+rowsPerChunk, cam.ImageHeight)
		workQueue <- rowChunk{startY: y, endY: end}
	}
	close(workQueue)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func(workerIndex int) {
			defer wg.Done()
			sampler := core.NewRandomSampler(core.WorkerSeed(opts.MasterSeed, workerIndex))
			for chunk := range workQueue {
				renderChunk(img, cam, integ, sc, sampler, opts.Samples, chunk)
			}
		}(w)
	}
	wg.Wait()

	return img
}

func renderChunk(img *Image, cam *camera.Camera, integ integrator.Integrator, sc *scene.Scene, sampler core.Sampler, samples int, chunk rowChunk) {
	gridSize := stratifiedGridSize(samples)
	for y := chunk.startY; y < chunk.endY; y++ {
		for x := 0; x < cam.ImageWidth; x++ {
			img.set(x, y, tracePixel(cam, integ, sc, sampler, x, y, samples, gridSize))
		}
	}
}

func tracePixel(cam *camera.Camera, integ integrator.Integrator, sc *scene.Scene, sampler core.Sampler, x, y, samples, gridSize int) core.Vec3 {
	offsets := core.StratifiedOffsets(sampler, gridSize)
	var sum core.Vec3
	taken := 0
	for i := 0; i < samples; i++ {
		offset := offsets[i%len(offsets)]
		lens := core.SampleUnitDisk(sampler)
		ray := cam.RayAt(x, y, offset.X, offset.Y, lens)
		sum = sum.Add(integ.Trace(ray, sc, sampler))
		taken++
	}
	return sum.Multiply(1 / float64(taken))
}

// stratifiedGridSize picks the stratification grid for a given sample
// count: the largest n where n*n <= samples, so every stratum gets at
// least one sample and leftover samples reuse strata round-robin.
func stratifiedGridSize(samples int) int {
	n := 1
	for (n+1)*(n+1) <= samples {
		n++
	}
	return n
}
