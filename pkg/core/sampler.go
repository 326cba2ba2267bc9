package core

import (
	"math"
	"math/rand"
)

// Sampler draws the random numbers an integrator and camera need. A single
// implementation, RandomSampler, wraps a per-worker *rand.Rand so that
// parallel workers never share (and contend on) one generator.
type Sampler interface {
	Float64() float64
	Float64Pair() (float64, float64)
}

// RandomSampler is a Sampler backed by a private *rand.Rand.
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler seeds a new sampler. Each render worker calls this with
// a distinct seed (derived from the master seed and the worker index) so
// that samples across workers are independent.
func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSampler) Float64() float64 {
	return s.rng.Float64()
}

func (s *RandomSampler) Float64Pair() (float64, float64) {
	return s.rng.Float64(), s.rng.Float64()
}

// WorkerSeed derives a deterministic per-worker seed from a master seed and
// worker index: the same pair always yields the same seed. The renderer
// hands out row chunks to workers dynamically, so which worker's stream
// shades a given chunk depends on scheduling; a sampled render is
// reproducible from the master seed only when it runs on a single worker.
func WorkerSeed(masterSeed int64, workerIndex int) int64 {
	h := uint64(masterSeed) ^ 0x9E3779B97F4A7C15
	h ^= uint64(workerIndex) * 0xBF58476D1CE4E5B9
	h = (h ^ (h >> 30)) * 0xBF58476D1CE4E5B9
	h = (h ^ (h >> 27)) * 0x94D049BB133111EB
	return int64(h ^ (h >> 31))
}

// SampleUnitDisk returns a uniformly distributed point in the unit disk via
// rejection sampling, used by the thin-lens camera for depth of field.
func SampleUnitDisk(s Sampler) Vec2 {
	for {
		x := 2*s.Float64() - 1
		y := 2*s.Float64() - 1
		if x*x+y*y <= 1 {
			return Vec2{X: x, Y: y}
		}
	}
}

// SampleCosineHemisphere draws a direction from the cosine-weighted
// hemisphere around normal n, for diffuse-bounce sampling in the path
// tracer. Returns the world-space direction and its PDF (cos(theta)/pi).
func SampleCosineHemisphere(s Sampler, n Vec3) (Vec3, float64) {
	u1, u2 := s.Float64Pair()
	r := math.Sqrt(u1)
	theta := 2 * math.Pi * u2
	x := r * math.Cos(theta)
	y := r * math.Sin(theta)
	z := math.Sqrt(max(0, 1-u1))

	t, b := OrthonormalBasis(n)
	dir := t.Multiply(x).Add(b.Multiply(y)).Add(n.Multiply(z)).Normalize()
	pdf := z / math.Pi
	if pdf <= 0 {
		pdf = 1e-6
	}
	return dir, pdf
}

// OrthonormalBasis builds two vectors orthogonal to n (and to each other)
// so that (t, b, n) forms a right-handed frame. Uses the
// least-aligned-axis trick to avoid degenerate cross products near the
// poles.
func OrthonormalBasis(n Vec3) (Vec3, Vec3) {
	var up Vec3
	if math.Abs(n.X) < 0.9 {
		up = Vec3{X: 1}
	} else {
		up = Vec3{Y: 1}
	}
	t := up.Cross(n).Normalize()
	b := n.Cross(t)
	return t, b
}

// StratifiedOffsets returns n*n jittered offsets in [0,1)x[0,1), one per
// sub-cell of an n-by-n grid, for stratified pixel sampling in the camera.
func StratifiedOffsets(s Sampler, n int) []Vec2 {
	offsets := make([]Vec2, 0, n*n)
	cell := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			jx, jy := s.Float64Pair()
			offsets = append(offsets, Vec2{
				X: (float64(i) + jx) * cell,
				Y: (float64(j) + jy) * cell,
			})
		}
	}
	return offsets
}
