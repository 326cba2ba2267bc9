package geometry

import (
	"math"
	"testing"

	"github.com/kvassilev/raytracer/pkg/core"
)

func TestSphereHitCenter(t *testing.T) {
	s := &Sphere{Center: core.NewVec3(0, 0, -5), Radius: 1}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := s.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("T = %v, want 4", hit.T)
	}
	if !hit.FrontFace {
		t.Error("expected front-face hit from outside the sphere")
	}
}

func TestSphereBoundingBoxContainsSurface(t *testing.T) {
	s := &Sphere{Center: core.NewVec3(1, 2, 3), Radius: 2}
	box := s.BoundingBox()
	if !box.Contains(core.NewVec3(3, 2, 3)) {
		t.Error("bounding box should contain a point on the sphere surface")
	}
}

func TestSphereMiss(t *testing.T) {
	s := &Sphere{Center: core.NewVec3(0, 0, -5), Radius: 1}
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1))
	if _, ok := s.Hit(ray, 1e-4, math.Inf(1)); ok {
		t.Error("expected miss")
	}
}

func TestSphereInsideFlipsNormal(t *testing.T) {
	s := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 2}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	hit, ok := s.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		t.Fatal("expected hit exiting the sphere from inside")
	}
	if hit.FrontFace {
		t.Error("expected back-face hit from inside the sphere")
	}
}
