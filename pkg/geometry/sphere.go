// Package geometry implements the primitive shapes (sphere, triangle,
// cylinder) that satisfy core.Shape.
package geometry

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
)

// Sphere is a ray-traceable sphere centered at Center with the given
// Radius, shaded with Material.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Surface
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Hit solves the sphere quadratic and returns the closest root in
// (tMin, tMax], if any.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1 / s.Radius)
	hit := &core.HitRecord{T: root, Point: point, Material: s.Material, UV: sphereUV(outwardNormal)}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// sphereUV maps a point on the unit sphere to (u,v) texture coordinates
// via spherical coordinates.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.Vec2{X: phi / (2 * math.Pi), Y: theta / math.Pi}
}
