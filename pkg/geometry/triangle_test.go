package geometry

import (
	"math"
	"testing"

	"github.com/kvassilev/raytracer/pkg/core"
)

func TestTriangleHit(t *testing.T) {
	tri := &Triangle{
		V0: core.NewVec3(-1, -1, -5),
		V1: core.NewVec3(1, -1, -5),
		V2: core.NewVec3(0, 1, -5),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := tri.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		t.Fatal("expected hit through the triangle's interior")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("T = %v, want 5", hit.T)
	}
}

func TestTriangleMissOutsideEdges(t *testing.T) {
	tri := &Triangle{
		V0: core.NewVec3(-1, -1, -5),
		V1: core.NewVec3(1, -1, -5),
		V2: core.NewVec3(0, 1, -5),
	}
	ray := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))
	if _, ok := tri.Hit(ray, 1e-4, math.Inf(1)); ok {
		t.Error("expected miss outside the triangle's edges")
	}
}

func TestTriangleUVInterpolation(t *testing.T) {
	tri := &Triangle{
		V0: core.NewVec3(-1, -1, -5), UV0: core.NewVec2(0, 0),
		V1: core.NewVec3(1, -1, -5), UV1: core.NewVec2(1, 0),
		V2: core.NewVec3(0, 1, -5), UV2: core.NewVec2(0.5, 1),
	}
	ray := core.NewRay(core.NewVec3(0, -1.0/3, 0), core.NewVec3(0, 0, -1))
	hit, ok := tri.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		t.Fatal("expected hit at the triangle's centroid")
	}
	if hit.UV.X < 0 || hit.UV.X > 1 || hit.UV.Y < 0 || hit.UV.Y > 1 {
		t.Errorf("interpolated UV out of range: %v", hit.UV)
	}
}
