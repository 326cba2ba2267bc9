// Package material holds the flat Material description and the Texture
// sample grid it may reference, as specified by the scene data model.
package material

import "github.com/kvassilev/raytracer/pkg/core"

// FilterMode selects how a Texture resolves a fractional (u,v) lookup.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterBilinear
)

// Material is a flat surface description: a base color (or texture),
// plus reflectivity/transparency/refractive-index terms consumed directly
// by the integrators. There is no Scatter/BRDF method on Material itself;
// each integrator implements its own shading model against these fields.
type Material struct {
	BaseColor       core.Vec3
	Reflectivity    float64
	Transparency    float64
	RefractiveIndex float64
	Texture         *Texture
	Filter          FilterMode
}

// ColorAt resolves the material's color at a surface UV coordinate: the
// texture sample if one is bound, otherwise the flat BaseColor. This
// satisfies core.Surface so a HitRecord can carry a Material without
// pkg/core importing this package.
func (m Material) ColorAt(uv core.Vec2) core.Vec3 {
	if m.Texture == nil {
		return m.BaseColor
	}
	if m.Filter == FilterBilinear {
		return m.Texture.Bilinear(uv.X, uv.Y)
	}
	return m.Texture.Nearest(uv.X, uv.Y)
}

// IsOpaque reports whether the material has no transmissive component.
func (m Material) IsOpaque() bool {
	return m.Transparency <= 0
}

// Alpha satisfies core.Surface, letting the BVH's shadow query accumulate
// transmittance through a HitRecord without importing this package.
func (m Material) Alpha() float64 {
	return m.Transparency
}
