package vmath

import "math"

// Vec2F is a float64 2D vector
// Used for floor-plane positions (X, Z) and surface coordinates (U, V)
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{x, y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

func V2FDistSq(a, b Vec2F) float64 {
	return V2FMagSq(V2FSub(a, b))
}

func V2FLerp(a, b Vec2F, t float64) Vec2F {
	return Vec2F{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}
