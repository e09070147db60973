package vmath

import "math"

// Box3F is an axis-aligned bounding box
// The zero value is a degenerate box at the origin; use EmptyBox3F for accumulation
type Box3F struct {
	Min, Max Vec3F
}

// EmptyBox3F returns a box that any expansion replaces
func EmptyBox3F() Box3F {
	inf := math.Inf(1)
	return Box3F{
		Min: Vec3F{inf, inf, inf},
		Max: Vec3F{-inf, -inf, -inf},
	}
}

func (b Box3F) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b Box3F) Expand(p Vec3F) Box3F {
	return Box3F{Min: V3FMin(b.Min, p), Max: V3FMax(b.Max, p)}
}

func (b Box3F) Union(o Box3F) Box3F {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Box3F{Min: V3FMin(b.Min, o.Min), Max: V3FMax(b.Max, o.Max)}
}

func (b Box3F) Center() Vec3F {
	return V3FScale(V3FAdd(b.Min, b.Max), 0.5)
}

func (b Box3F) Size() Vec3F {
	if b.IsEmpty() {
		return Vec3F{}
	}
	return V3FSub(b.Max, b.Min)
}

// Transform returns the bounds of the eight transformed corners
func (b Box3F) Transform(m Mat4F) Box3F {
	if b.IsEmpty() {
		return b
	}
	out := EmptyBox3F()
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		out = out.Expand(m.MulPoint(c))
	}
	return out
}
