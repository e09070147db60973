package vmath

import "math"

// Ray is a half-line; Dir is expected to be normalized
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// NewRay normalizes dir
func NewRay(origin, dir Vec3F) Ray {
	return Ray{Origin: origin, Dir: V3FNormalize(dir)}
}

// At returns the point at parameter t
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// IntersectTriangle is Möller–Trumbore, both faces
// Returns distance and barycentric weights of b and c
func (r Ray) IntersectTriangle(a, b, c Vec3F) (t, u, v float64, ok bool) {
	e1 := V3FSub(b, a)
	e2 := V3FSub(c, a)
	p := V3FCross(r.Dir, e2)
	det := V3FDot(e1, p)
	if math.Abs(det) < Epsilon {
		return 0, 0, 0, false
	}
	inv := 1.0 / det
	s := V3FSub(r.Origin, a)
	u = V3FDot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := V3FCross(s, e1)
	v = V3FDot(r.Dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	t = V3FDot(e2, q) * inv
	if t < 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// IntersectBox is the slab test, t is the entry distance (0 when inside)
func (r Ray) IntersectBox(b Box3F) (float64, bool) {
	if b.IsEmpty() {
		return 0, false
	}
	tMin, tMax := 0.0, math.Inf(1)
	o := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < Epsilon {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// ClosestToPoint returns the ray parameter nearest to p (clamped to t >= 0)
// and the squared distance at that parameter
func (r Ray) ClosestToPoint(p Vec3F) (t, distSq float64) {
	t = V3FDot(V3FSub(p, r.Origin), r.Dir)
	if t < 0 {
		t = 0
	}
	return t, V3FMagSq(V3FSub(r.At(t), p))
}
