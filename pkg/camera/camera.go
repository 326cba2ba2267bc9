// Package camera implements pinhole ray generation with stratified
// supersampling and optional thin-lens depth of field.
package camera

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
)

// Camera generates primary rays for a pinhole (or, with a nonzero
// Aperture, thin-lens) projection.
type Camera struct {
	Position core.Vec3
	Forward  core.Vec3 // unit, "look_at" direction
	Right    core.Vec3 // unit
	Up       core.Vec3 // unit

	ImageWidth, ImageHeight int
	halfHeight, halfWidth   float64 // viewport extents at the focus plane

	Aperture      float64 // lens diameter (the lens radius is Aperture/2); 0 disables depth of field
	FocusDistance float64
}

// Config carries the declarative fields a scene file supplies.
type Config struct {
	Position      core.Vec3
	LookAt        core.Vec3 // direction, unless Target is set (see NewCamera)
	Target        *core.Vec3
	Up            core.Vec3
	ImageWidth    int
	ImageHeight   int
	VFov          float64 // vertical field of view, in degrees
	Aperture      float64
	FocusDistance float64
}

// NewCamera builds a Camera from a scene's declarative fields. LookAt is
// used directly as a direction vector by default (the source's
// convention); if Target is set, it overrides LookAt with
// normalize(Target - Position), giving scene authors a true look-at point
// without breaking the direction-vector convention for existing scenes.
func NewCamera(cfg Config) *Camera {
	forward := cfg.LookAt.Normalize()
	if cfg.Target != nil {
		forward = cfg.Target.Subtract(cfg.Position).Normalize()
	}
	if forward.IsZero() {
		forward = core.Vec3{Z: -1}
	}

	up := cfg.Up
	if up.IsZero() {
		up = core.Vec3{Y: 1}
	}
	right := forward.Cross(up).Normalize()
	if right.IsZero() {
		right = core.Vec3{X: 1}
	}
	trueUp := right.Cross(forward).Normalize()

	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = 1
	}
	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta/2) * focusDistance
	aspect := float64(cfg.ImageWidth) / float64(cfg.ImageHeight)
	halfWidth := halfHeight * aspect

	return &Camera{
		Position:      cfg.Position,
		Forward:       forward,
		Right:         right,
		Up:            trueUp,
		ImageWidth:    cfg.ImageWidth,
		ImageHeight:   cfg.ImageHeight,
		halfHeight:    halfHeight,
		halfWidth:     halfWidth,
		Aperture:      cfg.Aperture,
		FocusDistance: focusDistance,
	}
}

// RayAt generates a primary ray through pixel (x,y), offset within the
// pixel by (dx,dy) in [0,1) for stratified supersampling, and jittered
// across the lens aperture by lensSample (a point in the unit disk) for
// depth of field.
func (c *Camera) RayAt(x, y int, dx, dy float64, lensSample core.Vec2) core.Ray {
	u := (float64(x) + dx) / float64(c.ImageWidth)
	v := (float64(y) + dy) / float64(c.ImageHeight)

	// Screen coordinates in [-1, 1], Y flipped so row 0 is the top.
	sx := (2*u - 1) * c.halfWidth
	sy := (1 - 2*v) * c.halfHeight

	focusPoint := c.Position.
		Add(c.Forward.Multiply(c.FocusDistance)).
		Add(c.Right.Multiply(sx)).
		Add(c.Up.Multiply(sy))

	origin := c.Position
	if c.Aperture > 0 {
		lensRadius := c.Aperture / 2
		origin = origin.
			Add(c.Right.Multiply(lensSample.X * lensRadius)).
			Add(c.Up.Multiply(lensSample.Y * lensRadius))
	}

	direction := focusPoint.Subtract(origin).Normalize()
	return core.NewRay(origin, direction)
}
