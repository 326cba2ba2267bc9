// Package scene loads a declarative scene document into the primitives,
// lights, camera and BVH the renderer needs, and owns the aggregate
// Scene type passed to every integrator.
package scene

import (
	"github.com/kvassilev/raytracer/pkg/camera"
	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/lights"
)

// Scene is the fully resolved, ready-to-render scene: a BVH over its
// primitives, its lights, its camera, and a background color returned
// for rays that escape the scene entirely.
type Scene struct {
	BVH        *core.BVH
	Lights     []*lights.Light
	Camera     *camera.Camera
	Background core.Vec3
}
