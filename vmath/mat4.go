package vmath

import "math"

// Mat4F is a row-major affine transform, M[row][col]
// Points are column vectors: p' = M * [x y z 1]
type Mat4F [4][4]float64

// Identity4 returns the identity transform
func Identity4() Mat4F {
	return Mat4F{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Euler holds rotation angles in radians applied in XYZ order
type Euler struct {
	X, Y, Z float64
}

// Compose builds T * Rx * Ry * Rz * S
func Compose(pos Vec3F, rot Euler, scale Vec3F) Mat4F {
	a, b := math.Cos(rot.X), math.Sin(rot.X)
	c, d := math.Cos(rot.Y), math.Sin(rot.Y)
	e, f := math.Cos(rot.Z), math.Sin(rot.Z)

	// Rx*Ry*Rz expanded
	ae, af, be, bf := a*e, a*f, b*e, b*f
	r := [3][3]float64{
		{c * e, -c * f, d},
		{af + be*d, ae - bf*d, -b * c},
		{bf - ae*d, be + af*d, a * c},
	}

	return Mat4F{
		{r[0][0] * scale.X, r[0][1] * scale.Y, r[0][2] * scale.Z, pos.X},
		{r[1][0] * scale.X, r[1][1] * scale.Y, r[1][2] * scale.Z, pos.Y},
		{r[2][0] * scale.X, r[2][1] * scale.Y, r[2][2] * scale.Z, pos.Z},
		{0, 0, 0, 1},
	}
}

// Mul returns m * n
func (m Mat4F) Mul(n Mat4F) Mat4F {
	var out Mat4F
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j] + m[i][3]*n[3][j]
		}
	}
	return out
}

// MulPoint transforms a position (w = 1)
func (m Mat4F) MulPoint(p Vec3F) Vec3F {
	return Vec3F{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MulDir transforms a direction (w = 0)
func (m Mat4F) MulDir(v Vec3F) Vec3F {
	return Vec3F{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Translation extracts the position column
func (m Mat4F) Translation() Vec3F {
	return Vec3F{m[0][3], m[1][3], m[2][3]}
}
