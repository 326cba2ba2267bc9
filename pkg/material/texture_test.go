package material

import (
	"testing"

	"github.com/kvassilev/raytracer/pkg/core"
)

func checkerTexture() *Texture {
	tex := NewTexture(2, 2)
	tex.Set(0, 0, core.NewVec3(1, 0, 0))
	tex.Set(1, 0, core.NewVec3(0, 1, 0))
	tex.Set(0, 1, core.NewVec3(0, 0, 1))
	tex.Set(1, 1, core.NewVec3(1, 1, 1))
	return tex
}

func TestTextureNearestWraps(t *testing.T) {
	tex := checkerTexture()
	a := tex.Nearest(0.1, 0.9)
	b := tex.Nearest(1.1, 1.9) // should wrap back to the same texel
	if a != b {
		t.Errorf("Nearest should wrap fractional UV: %v != %v", a, b)
	}
}

func TestTextureBilinearBlendsNeighbors(t *testing.T) {
	tex := checkerTexture()
	c := tex.Bilinear(0.5, 0.5)
	// At the exact center of a 2x2 grid, bilinear should average all four
	// texels, landing strictly between the darkest and brightest corner.
	if c.X <= 0 || c.X >= 1 {
		t.Errorf("expected blended red channel strictly between 0 and 1, got %v", c.X)
	}
}

func TestMaterialColorAtFallsBackToBaseColor(t *testing.T) {
	m := Material{BaseColor: core.NewVec3(0.2, 0.3, 0.4)}
	if got := m.ColorAt(core.NewVec2(0.5, 0.5)); !got.Equals(m.BaseColor) {
		t.Errorf("ColorAt without texture = %v, want BaseColor %v", got, m.BaseColor)
	}
}

func TestMaterialColorAtUsesTexture(t *testing.T) {
	tex := checkerTexture()
	m := Material{Texture: tex}
	got := m.ColorAt(core.NewVec2(0.1, 0.9))
	want := tex.Nearest(0.1, 0.9)
	if !got.Equals(want) {
		t.Errorf("ColorAt with texture = %v, want %v", got, want)
	}
}

func TestMaterialAlpha(t *testing.T) {
	m := Material{Transparency: 0.4}
	if got := m.Alpha(); got != 0.4 {
		t.Errorf("Alpha() = %v, want 0.4", got)
	}
}
