package scene

import "github.com/lixenwraith/scroll-room/vmath"

// Mesh is an indexed triangle list in local space
// UVs, when present, run parallel to Positions
type Mesh struct {
	Positions []vmath.Vec3F
	UVs       []vmath.Vec2F
	Indices   []int
}

// TriangleCount returns the number of indexed triangles
func (m *Mesh) TriangleCount() int {
	if m.Indices == nil {
		return len(m.Positions) / 3
	}
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i
func (m *Mesh) Triangle(i int) (a, b, c int) {
	if m.Indices == nil {
		return 3 * i, 3*i + 1, 3*i + 2
	}
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

// WorldPositions returns a copy of the vertices transformed by world
func (m *Mesh) WorldPositions(world vmath.Mat4F) []vmath.Vec3F {
	out := make([]vmath.Vec3F, len(m.Positions))
	for i, p := range m.Positions {
		out[i] = world.MulPoint(p)
	}
	return out
}

// Points is a point-primitive cloud, positions in local space
type Points struct {
	Positions []vmath.Vec3F
	Size      float64
	Opacity   float64
}

// NewQuadMesh is a w×h plane in local XY facing +Z, UV (0,0) at bottom-left
func NewQuadMesh(w, h float64) *Mesh {
	hw, hh := w/2, h/2
	return &Mesh{
		Positions: []vmath.Vec3F{
			{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh},
		},
		UVs: []vmath.Vec2F{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Indices: []int{0, 1, 2, 0, 2, 3},
	}
}

// NewBoxMesh is a w×h×d box centered on the local origin
func NewBoxMesh(w, h, d float64) *Mesh {
	x, y, z := w/2, h/2, d/2
	return &Mesh{
		Positions: []vmath.Vec3F{
			{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z},
			{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z},
		},
		Indices: []int{
			0, 2, 1, 0, 3, 2, // back
			4, 5, 6, 4, 6, 7, // front
			0, 4, 7, 0, 7, 3, // left
			1, 2, 6, 1, 6, 5, // right
			3, 7, 6, 3, 6, 2, // top
			0, 1, 5, 0, 5, 4, // bottom
		},
	}
}
