package core

// Shape is the common contract every primitive (sphere, triangle,
// cylinder) implements: a bounding box for the BVH, and a closest-hit
// test in (tMin, tMax].
type Shape interface {
	BoundingBox() AABB
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// HitRecord describes a ray/primitive intersection.
type HitRecord struct {
	T         float64
	Point     Vec3
	Normal    Vec3 // always faces against the incoming ray (inward on back-face hits)
	FrontFace bool
	UV        Vec2
	Material  Surface
}

// Surface is the minimal material-lookup contract a HitRecord needs;
// pkg/material.Material satisfies it. Kept here (rather than importing
// pkg/material from pkg/core) to avoid a dependency cycle, since
// pkg/geometry depends on both pkg/core and pkg/material.
type Surface interface {
	ColorAt(uv Vec2) Vec3
	// Alpha returns the surface's transparency (0 = opaque, 1 = fully
	// transmissive), used by shadow-ray transmittance accumulation.
	Alpha() float64
}

// SetFaceNormal orients outwardNormal against the ray and records whether
// the hit was on the front face (ray entering from outside).
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Logger is the narrow Printf-style logging contract; pkg/logging
// provides an slog-backed implementation. Scene loading and the renderer
// do not log; the CLI is the only caller.
type Logger interface {
	Printf(format string, args ...interface{})
}
