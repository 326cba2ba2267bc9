package renderer

import "github.com/kvassilev/raytracer/pkg/core"

// ToneMap scales an HDR color to the displayable [0,1] range. If the
// brightest channel exceeds 1, all three channels are scaled down
// together (preserving hue) rather than clamped independently (which
// would shift color toward whichever channel saturates first); the
// result is clamped to [0,1] as a final safety net for any residual
// floating point overshoot.
func ToneMap(c core.Vec3) core.Vec3 {
	m := c.MaxComponent()
	if m > 1 {
		c = c.Multiply(1 / m)
	}
	return c.Clamp(0, 1)
}
