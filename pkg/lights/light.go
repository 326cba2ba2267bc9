// Package lights implements the point and area light sources the
// integrators sample for direct illumination.
package lights

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
)

// Kind distinguishes the two supported light shapes.
type Kind int

const (
	Point Kind = iota
	Area
)

// Light is a flat light description: a Point light uses only Position/
// Intensity/Color; an Area light additionally defines a rectangular
// emitter via Normal/UAxis/VAxis/Width/Height, sampled uniformly over its
// surface.
type Light struct {
	Kind      Kind
	Position  core.Vec3
	Intensity float64
	Color     core.Vec3

	Normal          core.Vec3
	UAxis, VAxis    core.Vec3
	Width, Height   float64
}

// Sample draws a point on the light (for Area) or returns its fixed
// position (for Point), along with the solid-angle PDF of that sample as
// seen from the shading point.
func (l *Light) Sample(s core.Sampler, shadingPoint core.Vec3) (point core.Vec3, pdf float64) {
	if l.Kind == Point {
		return l.Position, 1
	}

	u, v := s.Float64Pair()
	offset := l.UAxis.Multiply((u - 0.5) * l.Width).Add(l.VAxis.Multiply((v - 0.5) * l.Height))
	point = l.Position.Add(offset)

	toLight := point.Subtract(shadingPoint)
	distSq := toLight.LengthSquared()
	if distSq < 1e-12 {
		return point, 1
	}
	dir := toLight.Normalize()
	cosLight := math.Abs(dir.Dot(l.Normal))
	if cosLight < 1e-6 {
		return point, 1e6 // grazing angle: PDF effectively infinite, contribution vanishes elsewhere
	}
	area := l.Width * l.Height
	pdf = distSq / (cosLight * area)
	return point, pdf
}

// Radiance returns the light's emitted color*intensity, the quantity the
// integrators scale by attenuation and the light's solid angle.
func (l *Light) Radiance() core.Vec3 {
	return l.Color.Multiply(l.Intensity)
}

// Direction returns the unit vector from point toward the light, and the
// distance to it, for a Point light or an already-sampled Area light
// point.
func Direction(from, lightPoint core.Vec3) (core.Vec3, float64) {
	delta := lightPoint.Subtract(from)
	dist := delta.Length()
	if dist < 1e-12 {
		return core.Vec3{}, 0
	}
	return delta.Multiply(1 / dist), dist
}
