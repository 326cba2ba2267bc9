package renderer

import (
	"testing"

	"github.com/kvassilev/raytracer/pkg/camera"
	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/geometry"
	"github.com/kvassilev/raytracer/pkg/integrator"
	"github.com/kvassilev/raytracer/pkg/material"
	"github.com/kvassilev/raytracer/pkg/scene"
)

func tinyScene() *scene.Scene {
	sphere := &geometry.Sphere{Center: core.NewVec3(0, 0, -5), Radius: 1, Material: &material.Material{BaseColor: core.NewVec3(1, 0, 0)}}
	bvh := core.BuildBVH([]core.Shape{sphere})
	cam := camera.NewCamera(camera.Config{
		Position: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		ImageWidth: 8, ImageHeight: 8, VFov: 60,
	})
	return &scene.Scene{BVH: bvh, Camera: cam, Background: core.NewVec3(0, 0, 0)}
}

func TestRenderProducesFullSizeImage(t *testing.T) {
	sc := tinyScene()
	img := Render(sc, integrator.Binary{}, Options{Samples: 4, Workers: 2, MasterSeed: 1})
	if img.Width != 8 || img.Height != 8 {
		t.Fatalf("image dims = %dx%d, want 8x8", img.Width, img.Height)
	}
	if len(img.Pixels) != 64 {
		t.Fatalf("pixel count = %d, want 64", len(img.Pixels))
	}
}

func TestRenderIsDeterministicForSameSeed(t *testing.T) {
	sc := tinyScene()
	img1 := Render(sc, integrator.Binary{}, Options{Samples: 4, Workers: 4, MasterSeed: 99})
	img2 := Render(sc, integrator.Binary{}, Options{Samples: 4, Workers: 4, MasterSeed: 99})
	for i := range img1.Pixels {
		if img1.Pixels[i] != img2.Pixels[i] {
			t.Fatalf("pixel %d differs between same-seed renders: %v vs %v", i, img1.Pixels[i], img2.Pixels[i])
		}
	}
}

func TestToneMapPreservesHueWhenScalingDown(t *testing.T) {
	c := core.NewVec3(4, 2, 0)
	got := ToneMap(c)
	if got.X != 1 {
		t.Errorf("brightest channel after tone map = %v, want 1", got.X)
	}
	if got.Y != 0.5 {
		t.Errorf("scaled channel = %v, want 0.5 (ratio preserved)", got.Y)
	}
}

func TestToneMapClampsNegative(t *testing.T) {
	got := ToneMap(core.NewVec3(-1, 0.5, 2))
	if got.X != 0 {
		t.Errorf("negative channel = %v, want clamped to 0", got.X)
	}
}
