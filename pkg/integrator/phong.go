package integrator

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/lights"
	"github.com/kvassilev/raytracer/pkg/material"
	"github.com/kvassilev/raytracer/pkg/scene"
)

// Phong is the Whitted-style recursive integrator: direct lighting via
// hard/attenuated shadow rays, plus recursive reflection and refraction.
// MaxDepth counts shading levels including the primary hit, so at most
// MaxDepth-1 secondary bounces are traced.
type Phong struct {
	MaxDepth int
}

func (p Phong) Trace(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return p.shade(ray, sc, sampler, 0)
}

func (p Phong) shade(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth >= p.MaxDepth {
		return core.Vec3{}
	}
	hit, ok := sc.BVH.ClosestHit(ray, 1e-4, math.Inf(1))
	if !ok {
		return sc.Background
	}

	mat, _ := hit.Material.(*material.Material)
	if mat == nil {
		return sc.Background
	}
	surfaceColor := mat.ColorAt(hit.UV)

	local := p.directLighting(ray, hit, surfaceColor, sc, sampler)

	remaining := 1 - mat.Reflectivity - mat.Transparency
	color := local.Multiply(max(remaining, 0))

	if mat.Reflectivity > 0 {
		reflectDir := ray.Direction.Reflect(hit.Normal).Normalize()
		reflectRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(1e-4)), reflectDir)
		color = color.Add(p.shade(reflectRay, sc, sampler, depth+1).Multiply(mat.Reflectivity))
	}

	if mat.Transparency > 0 {
		refractDir, didRefract := refract(ray.Direction, hit.Normal, hit.FrontFace, mat.RefractiveIndex)
		if didRefract {
			refractRay := core.NewRay(hit.Point.Subtract(hit.Normal.Multiply(1e-4)), refractDir)
			color = color.Add(p.shade(refractRay, sc, sampler, depth+1).Multiply(mat.Transparency))
		} else {
			// Total internal reflection: the transparent fraction behaves
			// like an additional reflective fraction.
			reflectDir := ray.Direction.Reflect(hit.Normal).Normalize()
			reflectRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(1e-4)), reflectDir)
			color = color.Add(p.shade(reflectRay, sc, sampler, depth+1).Multiply(mat.Transparency))
		}
	}

	return color
}

// specularExponent is the Blinn/Phong shininess used for the specular
// highlight term, per spec.md §4.4's phong direct-lighting formula.
const specularExponent = 32

// directLighting sums each light's Lambertian diffuse term plus a
// Blinn/Phong specular highlight, attenuated by the transmittance of
// whatever lies between the hit point and the light (hard shadow for
// opaque occluders, partial for transparent ones).
func (p Phong) directLighting(ray core.Ray, hit *core.HitRecord, surfaceColor core.Vec3, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	var sum core.Vec3
	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(shadowEpsilon))
	v := ray.Direction.Negate()

	for _, l := range sc.Lights {
		lightPoint, _ := l.Sample(sampler, hit.Point)
		dir, dist := lights.Direction(shadowOrigin, lightPoint)
		if dist == 0 {
			continue
		}
		cosTheta := hit.Normal.Dot(dir)
		if cosTheta <= 0 {
			continue
		}

		shadowRay := core.NewRay(shadowOrigin, dir)
		transmittance := sc.BVH.Shadow(shadowRay, shadowEpsilon, dist-shadowEpsilon)
		if transmittance <= 0 {
			continue
		}

		r := hit.Normal.Multiply(2 * hit.Normal.Dot(dir)).Subtract(dir)
		specular := math.Pow(max(0, v.Dot(r)), specularExponent)

		attenuation := 1 / (dist * dist)
		diffuse := surfaceColor.MultiplyVec(l.Radiance()).Multiply(cosTheta)
		spec := l.Radiance().Multiply(specular)
		sum = sum.Add(diffuse.Add(spec).Multiply(attenuation * transmittance))
	}
	return sum
}

// refract applies Snell's law to compute the transmitted direction,
// returning false on total internal reflection.
func refract(incident, normal core.Vec3, frontFace bool, ior float64) (core.Vec3, bool) {
	n := normal
	etaRatio := 1 / ior
	if !frontFace {
		n = normal.Negate()
		etaRatio = ior
	}

	cosTheta := math.Min(incident.Negate().Dot(n), 1)
	sinThetaSq := 1 - cosTheta*cosTheta
	if etaRatio*etaRatio*sinThetaSq > 1 {
		return core.Vec3{}, false // total internal reflection
	}

	perp := incident.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1 - perp.LengthSquared())))
	return perp.Add(parallel).Normalize(), true
}
