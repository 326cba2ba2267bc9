package geometry

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
)

// Triangle is a flat triangle with per-vertex UV coordinates, interpolated
// at the hit point via barycentric weights.
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	Material      core.Surface
}

const triangleEpsilon = 1e-8

// BoundingBox returns the triangle's tight axis-aligned bounding box.
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit implements the Möller–Trumbore ray/triangle intersection test.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < triangleEpsilon {
		return nil, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Subtract(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	dist := edge2.Dot(qvec) * invDet
	if dist <= tMin || dist > tMax {
		return nil, false
	}

	w := 1 - u - v
	point := ray.At(dist)
	outwardNormal := edge1.Cross(edge2).Normalize()
	uv := t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))

	hit := &core.HitRecord{T: dist, Point: point, Material: t.Material, UV: uv}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}
