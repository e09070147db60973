// Package physics holds the positional heuristics walkers use on the floor plane
// There is no mass or impulse model; every function returns a corrected position
package physics

import "github.com/lixenwraith/scroll-room/vmath"

// Bounds is a floor rectangle in world X/Z with an inset margin
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	Margin     float64
}

// Clamp constrains p to [MinX+Margin, MaxX-Margin] × [MinZ+Margin, MaxZ-Margin]
// A degenerate axis (inset range inverted) collapses to the midpoint of the inset range
func Clamp(p vmath.Vec2F, b Bounds) vmath.Vec2F {
	return vmath.Vec2F{
		X: clampAxis(p.X, b.MinX+b.Margin, b.MaxX-b.Margin),
		Y: clampAxis(p.Y, b.MinZ+b.Margin, b.MaxZ-b.Margin),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) * 0.5
	}
	return vmath.Clamp(v, lo, hi)
}

// Contains reports whether p already lies inside the inset rectangle
func (b Bounds) Contains(p vmath.Vec2F) bool {
	return p.X >= b.MinX+b.Margin && p.X <= b.MaxX-b.Margin &&
		p.Y >= b.MinZ+b.Margin && p.Y <= b.MaxZ-b.Margin
}
