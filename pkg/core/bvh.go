package core

import "sort"

// leafThreshold is the maximum number of primitives a BVH leaf holds
// before the builder splits it further.
const leafThreshold = 2

// maxDepth bounds the recursion depth of the build; past this depth a
// node becomes a leaf regardless of how many primitives it still holds.
const maxDepth = 16

// BVHNode is one node of the bounding volume hierarchy: an interior node
// has Left/Right and no Shapes, a leaf node has Shapes and no children.
type BVHNode struct {
	Bounds      AABB
	Left, Right *BVHNode
	Shapes      []Shape
}

// BVH is a bounding volume hierarchy over a fixed set of shapes, built
// once and queried many times by the integrators.
type BVH struct {
	root *BVHNode
}

// BuildBVH constructs a BVH over shapes via top-down median splitting:
// at each node, split along the longest axis of the node's bounds (ties
// break X over Y over Z) by stably sorting the shapes on the minimum
// corner of their bounding boxes and dividing at the median. Nodes with at most leafThreshold shapes, or at maxDepth,
// become leaves.
func BuildBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{root: &BVHNode{Bounds: AABB{}}}
	}
	items := make([]Shape, len(shapes))
	copy(items, shapes)
	return &BVH{root: buildNode(items, 0)}
}

func buildNode(shapes []Shape, depth int) *BVHNode {
	bounds := boundsOf(shapes)

	if len(shapes) <= leafThreshold || depth >= maxDepth {
		return &BVHNode{Bounds: bounds, Shapes: shapes}
	}

	axis := bounds.LongestAxis()
	sort.SliceStable(shapes, func(i, j int) bool {
		return minCornerAxis(shapes[i], axis) < minCornerAxis(shapes[j], axis)
	})

	mid := len(shapes) / 2
	left := buildNode(shapes[:mid], depth+1)
	right := buildNode(shapes[mid:], depth+1)
	return &BVHNode{Bounds: bounds, Left: left, Right: right}
}

func boundsOf(shapes []Shape) AABB {
	b := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		b = b.Union(s.BoundingBox())
	}
	return b
}

func minCornerAxis(s Shape, axis int) float64 {
	c := s.BoundingBox().Min
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// ClosestHit returns the nearest intersection along the ray within
// (tMin, tMax], or false if nothing is hit.
func (bvh *BVH) ClosestHit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return closestHitNode(bvh.root, ray, tMin, tMax)
}

func closestHitNode(node *BVHNode, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if node == nil {
		return nil, false
	}
	if _, ok := node.Bounds.HitDistance(ray, tMin, tMax); !ok {
		return nil, false
	}

	if node.Shapes != nil {
		var best *HitRecord
		closest := tMax
		for _, s := range node.Shapes {
			if hit, ok := s.Hit(ray, tMin, closest); ok {
				best = hit
				closest = hit.T
			}
		}
		return best, best != nil
	}

	// Visit the child whose box the ray enters first, so its hit can
	// tighten the bound used to prune the other child.
	near, far := node.Left, node.Right
	if near != nil && far != nil {
		nearDist, nearBoxOK := near.Bounds.HitDistance(ray, tMin, tMax)
		farDist, farBoxOK := far.Bounds.HitDistance(ray, tMin, tMax)
		if farBoxOK && (!nearBoxOK || farDist < nearDist) {
			near, far = far, near
		}
	}
	nearHit, nearOK := closestHitNode(near, ray, tMin, tMax)
	bound := tMax
	if nearOK {
		bound = nearHit.T
	}
	farHit, farOK := closestHitNode(far, ray, tMin, bound)
	if farOK {
		return farHit, true
	}
	return nearHit, nearOK
}

// AnyHit returns whether any primitive intersects the ray within
// (tMin, tMax], stopping at the first hit found. Used for binary-mode
// miss tests and path-tracer shadow-ray visibility tests, where opaque
// occlusion is all that's needed.
func (bvh *BVH) AnyHit(ray Ray, tMin, tMax float64) bool {
	return anyHitNode(bvh.root, ray, tMin, tMax)
}

func anyHitNode(node *BVHNode, ray Ray, tMin, tMax float64) bool {
	if node == nil {
		return false
	}
	if !node.Bounds.Hit(ray, tMin, tMax) {
		return false
	}
	if node.Shapes != nil {
		for _, s := range node.Shapes {
			if _, ok := s.Hit(ray, tMin, tMax); ok {
				return true
			}
		}
		return false
	}
	return anyHitNode(node.Left, ray, tMin, tMax) || anyHitNode(node.Right, ray, tMin, tMax)
}

// Shadow accumulates transmittance along the ray up to tMax, multiplying
// in each opaque-or-transparent surface's contribution rather than
// stopping at the first hit: a fully opaque hit collapses transmittance
// to zero (full shadow), a transparent hit attenuates by (1-opacity) and
// continues past it. Used by the phong integrator for soft shadows
// through transparent occluders.
func (bvh *BVH) Shadow(ray Ray, tMin, tMax float64) float64 {
	return shadowNode(bvh.root, ray, tMin, tMax, 1.0)
}

func shadowNode(node *BVHNode, ray Ray, tMin, tMax float64, transmittance float64) float64 {
	if node == nil || transmittance <= 1e-4 {
		return transmittance
	}
	if !node.Bounds.Hit(ray, tMin, tMax) {
		return transmittance
	}
	if node.Shapes != nil {
		for _, s := range node.Shapes {
			hit, ok := s.Hit(ray, tMin, tMax)
			if !ok {
				continue
			}
			if hit.Material == nil {
				return 0
			}
			transmittance *= hit.Material.Alpha()
			if transmittance <= 1e-4 {
				return 0
			}
		}
		return transmittance
	}
	transmittance = shadowNode(node.Left, ray, tMin, tMax, transmittance)
	transmittance = shadowNode(node.Right, ray, tMin, tMax, transmittance)
	return transmittance
}
