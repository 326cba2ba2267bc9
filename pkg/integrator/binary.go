package integrator

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/scene"
)

// Binary renders red for any ray that hits a primitive and the scene's
// background color otherwise — a fast sanity check of geometry and BVH
// correctness before spending samples on shading.
type Binary struct{}

func (Binary) Trace(ray core.Ray, sc *scene.Scene, _ core.Sampler) core.Vec3 {
	if sc.BVH.AnyHit(ray, 1e-4, math.Inf(1)) {
		return core.NewVec3(1, 0, 0)
	}
	return sc.Background
}
