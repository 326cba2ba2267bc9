package integrator

import (
	"math"

	"github.com/kvassilev/raytracer/pkg/core"
	"github.com/kvassilev/raytracer/pkg/lights"
	"github.com/kvassilev/raytracer/pkg/material"
	"github.com/kvassilev/raytracer/pkg/scene"
)

// lightSamplesPerHit is the number of next-event-estimation shadow rays
// traced toward each light at every surface hit.
const lightSamplesPerHit = 16

// PathTracer is the Monte-Carlo integrator: next-event estimation for
// direct light plus cosine-weighted indirect bounces, up to MaxDepth.
type PathTracer struct {
	MaxDepth int
}

func (pt PathTracer) Trace(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.bounce(ray, sc, sampler, 0, core.NewVec3(1, 1, 1))
}

func (pt PathTracer) bounce(ray core.Ray, sc *scene.Scene, sampler core.Sampler, depth int, throughput core.Vec3) core.Vec3 {
	if depth >= pt.MaxDepth {
		return core.Vec3{}
	}
	hit, ok := sc.BVH.ClosestHit(ray, 1e-4, math.Inf(1))
	if !ok {
		return sc.Background.MultiplyVec(throughput)
	}

	mat, _ := hit.Material.(*material.Material)
	if mat == nil {
		return core.Vec3{}
	}
	surfaceColor := mat.ColorAt(hit.UV)

	direct := pt.sampleDirect(hit, surfaceColor, sc, sampler).MultiplyVec(throughput)

	fresnel := schlick(ray.Direction.Negate().Dot(hit.Normal), mat.RefractiveIndex)
	specularWeight := math.Min(1, mat.Reflectivity+fresnel*mat.Transparency)

	if sampler.Float64() < specularWeight {
		var nextDir core.Vec3
		var origin core.Vec3
		if mat.Transparency > 0 && sampler.Float64() < mat.Transparency/(mat.Transparency+mat.Reflectivity+1e-9) {
			refracted, didRefract := refract(ray.Direction, hit.Normal, hit.FrontFace, mat.RefractiveIndex)
			if !didRefract {
				refracted = ray.Direction.Reflect(hit.Normal).Normalize()
				origin = hit.Point.Add(hit.Normal.Multiply(1e-4))
			} else {
				origin = hit.Point.Subtract(hit.Normal.Multiply(1e-4))
			}
			nextDir = refracted
		} else {
			nextDir = ray.Direction.Reflect(hit.Normal).Normalize()
			origin = hit.Point.Add(hit.Normal.Multiply(1e-4))
		}
		nextRay := core.NewRay(origin, nextDir)
		indirect := pt.bounce(nextRay, sc, sampler, depth+1, throughput.Multiply(1/math.Max(specularWeight, 1e-3)))
		return direct.Add(indirect)
	}

	// The Lambertian BRDF (albedo/pi) times cos(theta), divided by the
	// cosine-weighted sampling PDF (cos(theta)/pi), cancels the pi and
	// cos(theta) factors exactly, leaving the albedo as the sole
	// throughput multiplier for the indirect bounce.
	diffuseDir, _ := core.SampleCosineHemisphere(sampler, hit.Normal)
	diffuseThroughput := throughput.MultiplyVec(surfaceColor).Multiply(1 / math.Max(1-specularWeight, 1e-3))
	origin := hit.Point.Add(hit.Normal.Multiply(1e-4))
	nextRay := core.NewRay(origin, diffuseDir)
	indirect := pt.bounce(nextRay, sc, sampler, depth+1, diffuseThroughput)
	return direct.Add(indirect)
}

// sampleDirect performs next-event estimation: lightSamplesPerHit shadow
// rays per light, each weighted by the light's solid-angle PDF and the
// physically-correct albedo/pi Lambertian estimator (resolving the
// source's m.base-vs-m.base/pi ambiguity in favor of energy conservation).
func (pt PathTracer) sampleDirect(hit *core.HitRecord, surfaceColor core.Vec3, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	if len(sc.Lights) == 0 {
		return core.Vec3{}
	}
	shadowOrigin := hit.Point.Add(hit.Normal.Multiply(shadowEpsilon))
	brdf := surfaceColor.Multiply(1 / math.Pi)

	var sum core.Vec3
	for _, l := range sc.Lights {
		var lightSum core.Vec3
		for i := 0; i < lightSamplesPerHit; i++ {
			lightPoint, pdf := l.Sample(sampler, hit.Point)
			dir, dist := lights.Direction(shadowOrigin, lightPoint)
			if dist == 0 || pdf <= 0 {
				continue
			}
			cosTheta := hit.Normal.Dot(dir)
			if cosTheta <= 0 {
				continue
			}
			shadowRay := core.NewRay(shadowOrigin, dir)
			if sc.BVH.AnyHit(shadowRay, shadowEpsilon, dist-shadowEpsilon) {
				continue
			}
			radiance := l.Radiance()
			lightSum = lightSum.Add(brdf.MultiplyVec(radiance).Multiply(cosTheta / pdf))
		}
		sum = sum.Add(lightSum.Multiply(1.0 / float64(lightSamplesPerHit)))
	}
	return sum
}

// schlick is the Fresnel-Schlick reflectance approximation for the given
// incidence cosine (r0, the reflectance at normal incidence, comes from
// ior), used to mix a dielectric's reflective and transmissive indirect
// bounces.
func schlick(cosine, ior float64) float64 {
	r0 := (1 - ior) / (1 + ior)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-math.Max(cosine, 0), 5)
}
