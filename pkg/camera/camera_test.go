package camera

import (
	"math"
	"testing"

	"github.com/kvassilev/raytracer/pkg/core"
)

func TestNewCameraLookAtDirection(t *testing.T) {
	cam := NewCamera(Config{
		Position:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		ImageWidth:  100,
		ImageHeight: 100,
		VFov:        90,
	})
	if !cam.Forward.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Forward = %v, want {0,0,-1}", cam.Forward)
	}
}

func TestNewCameraTargetOverridesLookAt(t *testing.T) {
	target := core.NewVec3(0, 0, -10)
	cam := NewCamera(Config{
		Position:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(1, 0, 0), // should be ignored in favor of Target
		Target:      &target,
		Up:          core.NewVec3(0, 1, 0),
		ImageWidth:  100,
		ImageHeight: 100,
		VFov:        90,
	})
	if !cam.Forward.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Forward = %v, want {0,0,-1} (from Target)", cam.Forward)
	}
}

func TestRayAtCenterPixelPointsForward(t *testing.T) {
	cam := NewCamera(Config{
		Position:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		ImageWidth:  101,
		ImageHeight: 101,
		VFov:        60,
	})
	ray := cam.RayAt(50, 50, 0.5, 0.5, core.Vec2{})
	if math.Abs(ray.Direction.X) > 1e-6 || math.Abs(ray.Direction.Y) > 1e-6 {
		t.Errorf("center ray direction = %v, want ~{0,0,-1}", ray.Direction)
	}
}

func TestRayAtUsesLensOffsetWithAperture(t *testing.T) {
	cam := NewCamera(Config{
		Position:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		ImageWidth:    100,
		ImageHeight:   100,
		VFov:          60,
		Aperture:      1,
		FocusDistance: 5,
	})
	centerRay := cam.RayAt(50, 50, 0.5, 0.5, core.Vec2{})
	offsetRay := cam.RayAt(50, 50, 0.5, 0.5, core.NewVec2(1, 0))
	if centerRay.Origin.Equals(offsetRay.Origin) {
		t.Error("expected lens-sample offset to move the ray origin")
	}
}
