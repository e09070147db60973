package scene

import (
	"math"

	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Hit is the nearest intersection of a ray with a candidate set
type Hit struct {
	Node     *Node
	Distance float64
	Point    vmath.Vec3F
	UV       vmath.Vec2F
	HasUV    bool
}

// Raycaster is the hit-test primitive the interaction router consumes
type Raycaster interface {
	// Intersect returns the nearest hit among targets; recursive includes descendants
	Intersect(ray vmath.Ray, targets []*Node, recursive bool) (Hit, bool)
}

// Picker intersects mesh triangles and point primitives of visible nodes
type Picker struct {
	// PointThreshold is the ray-to-point distance that counts as a point hit
	PointThreshold float64
}

func NewPicker() *Picker {
	return &Picker{PointThreshold: parameter.PointPickThreshold}
}

func (p *Picker) Intersect(ray vmath.Ray, targets []*Node, recursive bool) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, t := range targets {
		if t == nil || !t.EffectiveVisible() {
			continue
		}
		visit := func(n *Node, world vmath.Mat4F) {
			if h, ok := p.intersectNode(ray, n, world); ok && h.Distance < best.Distance {
				best = h
				found = true
			}
		}
		if recursive {
			walkVisible(t, t.parentWorld(), visit)
		} else {
			visit(t, t.WorldMatrix())
		}
	}
	return best, found
}

func walkVisible(n *Node, parentWorld vmath.Mat4F, fn func(*Node, vmath.Mat4F)) {
	if !n.Visible {
		return
	}
	world := parentWorld.Mul(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		walkVisible(c, world, fn)
	}
}

func (p *Picker) intersectNode(ray vmath.Ray, n *Node, world vmath.Mat4F) (Hit, bool) {
	switch {
	case n.Mesh != nil:
		return intersectMesh(ray, n, world)
	case n.Points != nil:
		return p.intersectPoints(ray, n, world)
	}
	return Hit{}, false
}

func intersectMesh(ray vmath.Ray, n *Node, world vmath.Mat4F) (Hit, bool) {
	m := n.Mesh
	box := vmath.EmptyBox3F()
	wp := m.WorldPositions(world)
	for _, v := range wp {
		box = box.Expand(v)
	}
	// Flat quads have zero thickness; pad so the slab test does not reject them
	box.Min = vmath.V3FSub(box.Min, vmath.Vec3F{X: 1e-6, Y: 1e-6, Z: 1e-6})
	box.Max = vmath.V3FAdd(box.Max, vmath.Vec3F{X: 1e-6, Y: 1e-6, Z: 1e-6})
	if _, ok := ray.IntersectBox(box); !ok {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1)}
	found := false
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		t, u, v, ok := ray.IntersectTriangle(wp[a], wp[b], wp[c])
		if !ok || t >= best.Distance {
			continue
		}
		best = Hit{Node: n, Distance: t, Point: ray.At(t)}
		if len(m.UVs) == len(m.Positions) {
			w := 1 - u - v
			best.UV = vmath.Vec2F{
				X: m.UVs[a].X*w + m.UVs[b].X*u + m.UVs[c].X*v,
				Y: m.UVs[a].Y*w + m.UVs[b].Y*u + m.UVs[c].Y*v,
			}
			best.HasUV = true
		}
		found = true
	}
	return best, found
}

func (p *Picker) intersectPoints(ray vmath.Ray, n *Node, world vmath.Mat4F) (Hit, bool) {
	threshSq := p.PointThreshold * p.PointThreshold
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, lp := range n.Points.Positions {
		wp := world.MulPoint(lp)
		t, dSq := ray.ClosestToPoint(wp)
		if dSq > threshSq || t >= best.Distance {
			continue
		}
		best = Hit{Node: n, Distance: t, Point: wp}
		found = true
	}
	return best, found
}
