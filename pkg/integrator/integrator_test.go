package integrator

import (
	"testing"

	"github.com/kvassilev/raytracer/pkg/camera"
	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/geometry"
	"github.com/kvassilev/raytracer/pkg/lights"
	"github.com/kvassilev/raytracer/pkg/material"
	"github.com/kvassilev/raytracer/pkg/scene"
)

func sphereScene(mat *material.Material) *scene.Scene {
	sphere := &geometry.Sphere{Center: core.NewVec3(0, 0, -5), Radius: 1, Material: mat}
	bvh := core.BuildBVH([]core.Shape{sphere})
	cam := camera.NewCamera(camera.Config{
		Position: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		ImageWidth: 10, ImageHeight: 10, VFov: 60,
	})
	light := &lights.Light{Kind: lights.Point, Position: core.NewVec3(5, 5, 0), Color: core.NewVec3(1, 1, 1), Intensity: 50}
	return &scene.Scene{BVH: bvh, Camera: cam, Lights: []*lights.Light{light}, Background: core.NewVec3(0, 0, 0.2)}
}

func TestBinaryHitAndMiss(t *testing.T) {
	sc := sphereScene(&material.Material{BaseColor: core.NewVec3(1, 0, 0)})
	hitRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	missRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if got := (Binary{}).Trace(hitRay, sc, nil); !got.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("hit = %v, want red", got)
	}
	if got := (Binary{}).Trace(missRay, sc, nil); !got.Equals(sc.Background) {
		t.Errorf("miss = %v, want background %v", got, sc.Background)
	}
}

func TestPhongLitSphereIsNonZero(t *testing.T) {
	sc := sphereScene(&material.Material{BaseColor: core.NewVec3(1, 1, 1)})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := Phong{MaxDepth: 3}.Trace(ray, sc, nil)
	if got.IsZero() {
		t.Error("expected nonzero radiance from a lit, diffuse sphere")
	}
}

func TestPhongMissReturnsBackground(t *testing.T) {
	sc := sphereScene(&material.Material{BaseColor: core.NewVec3(1, 1, 1)})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	got := Phong{MaxDepth: 3}.Trace(ray, sc, nil)
	if !got.Equals(sc.Background) {
		t.Errorf("miss = %v, want background %v", got, sc.Background)
	}
}

func TestPathTracerDiffuseSphereIsNonZero(t *testing.T) {
	sc := sphereScene(&material.Material{BaseColor: core.NewVec3(1, 1, 1)})
	sampler := core.NewRandomSampler(123)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var sum core.Vec3
	for i := 0; i < 64; i++ {
		sum = sum.Add(PathTracer{MaxDepth: 5}.Trace(ray, sc, sampler))
	}
	if sum.IsZero() {
		t.Error("expected nonzero average radiance over multiple path-traced samples")
	}
}

func TestDefaultDepth(t *testing.T) {
	if DefaultDepth("phong") != 3 {
		t.Errorf("phong default depth = %d, want 3", DefaultDepth("phong"))
	}
	if DefaultDepth("pathtracer") != 5 {
		t.Errorf("pathtracer default depth = %d, want 5", DefaultDepth("pathtracer"))
	}
}
