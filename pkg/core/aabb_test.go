package core

import (
	"math"
	"testing"
)

func TestAABBHitMiss(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(5, 5, 5), NewVec3(1, 0, 0))
	if box.Hit(ray, 0, math.Inf(1)) {
		t.Error("expected miss for ray pointing away from box")
	}
}

func TestAABBHitThrough(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))
	dist, ok := box.HitDistance(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(dist-4) > 1e-9 {
		t.Errorf("entry distance = %v, want 4", dist)
	}
}

func TestAABBParallelMiss(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 5, 0), NewVec3(1, 0, 0))
	if box.Hit(ray, 0, math.Inf(1)) {
		t.Error("expected miss for ray parallel to and outside the box's Y extent")
	}
}

func TestAABBUnionAndContains(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, 2, 2), NewVec3(3, 3, 3))
	u := a.Union(b)
	if !u.Contains(NewVec3(0.5, 0.5, 0.5)) || !u.Contains(NewVec3(2.5, 2.5, 2.5)) {
		t.Error("union box should contain points from both inputs")
	}
}

func TestAABBLongestAxisTieBreak(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2))
	if axis := box.LongestAxis(); axis != 0 {
		t.Errorf("LongestAxis on a cube = %d, want 0 (X wins ties)", axis)
	}
}
