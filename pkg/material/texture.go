package material

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
)

// Texture is a rectangular grid of color samples, addressed by normalized
// (u,v) in [0,1)x[0,1) with wraparound. Row 0 is the top of the image, as
// written in the PPM source file; V is flipped at lookup time so v=0 maps
// to the bottom of the image, matching the teacher's image_texture
// convention.
type Texture struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, length Width*Height
}

// NewTexture allocates a texture of the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the raw pixel at integer coordinates, clamping out-of-range
// indices to the nearest edge.
func (t *Texture) At(x, y int) core.Vec3 {
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)
	return t.Pixels[y*t.Width+x]
}

// Set writes the pixel at integer coordinates (x,y).
func (t *Texture) Set(x, y int, c core.Vec3) {
	t.Pixels[y*t.Width+x] = c
}

func wrapUV(u, v float64) (float64, float64) {
	u = u - math.Floor(u)
	v = v - math.Floor(v)
	return u, 1 - v
}

// Nearest returns the pixel nearest to the given UV coordinate.
func (t *Texture) Nearest(u, v float64) core.Vec3 {
	u, v = wrapUV(u, v)
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	return t.At(x, y)
}

// Bilinear returns the bilinearly-interpolated color at the given UV
// coordinate, sampling the four nearest texel centers.
func (t *Texture) Bilinear(u, v float64) core.Vec3 {
	u, v = wrapUV(u, v)
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1, y1 := x0+1, y0+1
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := t.At(x0, y0)
	c10 := t.At(x1, y0)
	c01 := t.At(x0, y1)
	c11 := t.At(x1, y1)

	top := c00.Multiply(1 - tx).Add(c10.Multiply(tx))
	bottom := c01.Multiply(1 - tx).Add(c11.Multiply(tx))
	return top.Multiply(1 - ty).Add(bottom.Multiply(ty))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
