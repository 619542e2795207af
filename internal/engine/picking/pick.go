package picking

import "github.com/Faultbox/venture-cube/pkg/math"

// Target is a pickable object: local bounds placed by a world matrix.
type Target struct {
	World  math.Mat4
	Bounds AABB
}

// Hit describes the nearest intersection found by Pick.
type Hit struct {
	Index    int // index into the targets slice
	Distance float32
	Point    [3]float32 // world space
}

// flatEpsilon gives zero-thickness quads a hittable depth.
const flatEpsilon = 1e-4

// Pick intersects a world ray with every target in its local frame and
// returns the nearest hit in front of the ray origin.
func Pick(ray Ray, targets []Target) (Hit, bool) {
	best := Hit{Index: -1}
	for i, tg := range targets {
		local := ray.Transform(tg.World.Inverse())
		t, ok := local.IntersectAABB(tg.Bounds.Inflate(flatEpsilon))
		if !ok || t < 0 {
			continue
		}
		if best.Index < 0 || t < best.Distance {
			best = Hit{Index: i, Distance: t}
		}
	}
	if best.Index < 0 {
		return Hit{}, false
	}
	best.Point = ray.At(best.Distance)
	return best, true
}
