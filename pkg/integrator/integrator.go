// Package integrator implements the three rendering modes: binary
// hit/miss, Whitted-style recursive phong, and Monte-Carlo path tracing.
package integrator

import (
	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/scene"
)

// Integrator computes the radiance returned by a single camera ray.
type Integrator interface {
	Trace(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3
}

// DefaultDepth returns each integrator's default recursion depth, used
// when the CLI's -depth flag is left at its zero value.
func DefaultDepth(name string) int {
	switch name {
	case "phong":
		return 3
	case "pathtracer":
		return 5
	default:
		return 0
	}
}

const shadowEpsilon = 1e-4
