package geometry

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
)

// Cylinder is a finite, capped cylinder. Scene files describe it by
// Center/Axis/Radius/Height; internally it is reparametrized to a
// base-center + top-center pair, which is the natural form for both the
// body and the disc-cap intersection tests below.
type Cylinder struct {
	Base, Top core.Vec3 // centers of the bottom and top caps
	Radius    float64
	Material  core.Surface

	axis   core.Vec3 // unit vector from Base to Top
	height float64
}

// NewCylinder builds a Cylinder from a center point, a (not necessarily
// unit) axis direction, a radius and a height, matching the scene file's
// declarative fields.
func NewCylinder(center, axisDir core.Vec3, radius, height float64, mat core.Surface) *Cylinder {
	axis := axisDir.Normalize()
	half := axis.Multiply(height / 2)
	return &Cylinder{
		Base:     center.Subtract(half),
		Top:      center.Add(half),
		Radius:   radius,
		Material: mat,
		axis:     axis,
		height:   height,
	}
}

// BoundingBox returns a conservative axis-aligned bounding box: the union
// of both end-cap bounding spheres.
func (c *Cylinder) BoundingBox() core.AABB {
	r := core.NewVec3(c.Radius, c.Radius, c.Radius)
	baseBox := core.NewAABB(c.Base.Subtract(r), c.Base.Add(r))
	topBox := core.NewAABB(c.Top.Subtract(r), c.Top.Add(r))
	return baseBox.Union(topBox)
}

// Hit tests the ray against the cylinder's curved body and its two flat
// end caps, returning the closest valid intersection.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var best *core.HitRecord
	closest := tMax

	if hit, ok := c.hitBody(ray, tMin, closest); ok {
		best, closest = hit, hit.T
	}
	if hit, ok := c.hitCap(ray, tMin, closest, c.Base, c.axis.Negate()); ok {
		best, closest = hit, hit.T
	}
	if hit, ok := c.hitCap(ray, tMin, closest, c.Top, c.axis); ok {
		best, closest = hit, hit.T
	}
	return best, best != nil
}

// hitBody solves the infinite-cylinder quadratic in coordinates
// perpendicular to the axis, then clips the root to the finite segment
// [Base, Top] by projecting the hit point back onto the axis.
func (c *Cylinder) hitBody(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(c.Base)

	d := ray.Direction.Subtract(c.axis.Multiply(ray.Direction.Dot(c.axis)))
	o := oc.Subtract(c.axis.Multiply(oc.Dot(c.axis)))

	a := d.LengthSquared()
	if a < 1e-12 {
		return nil, false // ray parallel to the axis, body can't be hit
	}
	halfB := o.Dot(d)
	cc := o.LengthSquared() - c.Radius*c.Radius
	discriminant := halfB*halfB - a*cc
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	for _, root := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if root <= tMin || root > tMax {
			continue
		}
		point := ray.At(root)
		height := point.Subtract(c.Base).Dot(c.axis)
		if height < 0 || height > c.height {
			continue
		}
		axial := c.Base.Add(c.axis.Multiply(height))
		outwardNormal := point.Subtract(axial).Normalize()
		hit := &core.HitRecord{T: root, Point: point, Material: c.Material, UV: cylinderUV(height/c.height, point, axial)}
		hit.SetFaceNormal(ray, outwardNormal)
		return hit, true
	}
	return nil, false
}

// hitCap tests the ray against the flat disc cap centered at capCenter
// with outward-facing normal.
func (c *Cylinder) hitCap(ray core.Ray, tMin, tMax float64, capCenter, normal core.Vec3) (*core.HitRecord, bool) {
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}
	t := capCenter.Subtract(ray.Origin).Dot(normal) / denom
	if t <= tMin || t > tMax {
		return nil, false
	}
	point := ray.At(t)
	if point.Subtract(capCenter).LengthSquared() > c.Radius*c.Radius {
		return nil, false
	}
	hit := &core.HitRecord{T: t, Point: point, Material: c.Material, UV: core.Vec2{}}
	hit.SetFaceNormal(ray, normal)
	return hit, true
}

func cylinderUV(v float64, point, axial core.Vec3) core.Vec2 {
	radial := point.Subtract(axial)
	u := (math.Atan2(radial.Z, radial.X) + math.Pi) / (2 * math.Pi)
	return core.Vec2{X: u, Y: v}
}
