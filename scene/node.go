// Package scene is the in-process stand-in for the render collaborator
// Nodes carry transforms, geometry and visibility; the engine mutates transforms
// and the renderer (terminal sandbox, browser over the bridge) draws them
package scene

import (
	"sync/atomic"

	"github.com/lixenwraith/scroll-room/vmath"
)

// Color is a linear RGB color in [0, 1]
type Color struct {
	R, G, B float64
}

var White = Color{1, 1, 1}

// RGB8 converts to 8-bit channels
func (c Color) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func to8(v float64) uint8 {
	return uint8(vmath.Clamp(v, 0, 1)*255 + 0.5)
}

// Hex builds a Color from 0xRRGGBB
func Hex(v uint32) Color {
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

var nextNodeID atomic.Uint64

// Node is one element of the scene graph
// Exactly one of Mesh or Points is set on renderable leaves; groups carry neither
type Node struct {
	ID       uint64
	Name     string
	Position vmath.Vec3F
	Rotation vmath.Euler
	Scale    vmath.Vec3F
	Visible  bool
	Color    Color
	Mesh     *Mesh
	Points   *Points

	parent   *Node
	children []*Node
}

// NewNode creates an empty visible group with unit scale
func NewNode(name string) *Node {
	return &Node{
		ID:      nextNodeID.Add(1),
		Name:    name,
		Scale:   vmath.Vec3F{X: 1, Y: 1, Z: 1},
		Visible: true,
		Color:   White,
	}
}

// NewMeshNode creates a renderable mesh leaf
func NewMeshNode(name string, mesh *Mesh, color Color) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	n.Color = color
	return n
}

// NewPointsNode creates a point-primitive leaf
func NewPointsNode(name string, points *Points, color Color) *Node {
	n := NewNode(name)
	n.Points = points
	n.Color = color
	return n
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// Add attaches child, detaching it from any previous parent
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child if it is a direct child
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Yaw is the rotation about the world up axis
func (n *Node) Yaw() float64       { return n.Rotation.Y }
func (n *Node) SetYaw(yaw float64) { n.Rotation.Y = yaw }

// LocalMatrix composes position, rotation and scale
func (n *Node) LocalMatrix() vmath.Mat4F {
	return vmath.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix walks the parent chain; graphs are shallow so nothing is cached
func (n *Node) WorldMatrix() vmath.Mat4F {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// EffectiveVisible is false when the node or any ancestor is hidden
func (n *Node) EffectiveVisible() bool {
	for c := n; c != nil; c = c.parent {
		if !c.Visible {
			return false
		}
	}
	return true
}

// Traverse visits n and its descendants depth-first, parents first
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// Leaves visits every mesh leaf of the subtree with its world matrix
func (n *Node) Leaves(fn func(leaf *Node, world vmath.Mat4F)) {
	n.leaves(n.parentWorld(), fn)
}

func (n *Node) parentWorld() vmath.Mat4F {
	if n.parent == nil {
		return vmath.Identity4()
	}
	return n.parent.WorldMatrix()
}

func (n *Node) leaves(parentWorld vmath.Mat4F, fn func(*Node, vmath.Mat4F)) {
	world := parentWorld.Mul(n.LocalMatrix())
	if n.Mesh != nil && len(n.Mesh.Positions) > 0 {
		fn(n, world)
	}
	for _, c := range n.children {
		c.leaves(world, fn)
	}
}

// WorldBounds is the world-space box over every vertex and point in the subtree
func (n *Node) WorldBounds() vmath.Box3F {
	box := vmath.EmptyBox3F()
	n.bounds(n.parentWorld(), &box)
	return box
}

func (n *Node) bounds(parentWorld vmath.Mat4F, box *vmath.Box3F) {
	world := parentWorld.Mul(n.LocalMatrix())
	if n.Mesh != nil {
		for _, p := range n.Mesh.Positions {
			*box = box.Expand(world.MulPoint(p))
		}
	}
	if n.Points != nil {
		for _, p := range n.Points.Positions {
			*box = box.Expand(world.MulPoint(p))
		}
	}
	for _, c := range n.children {
		c.bounds(world, box)
	}
}

// Find returns the first node in the subtree with the given name
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Traverse(func(c *Node) {
		if found == nil && c.Name == name {
			found = c
		}
	})
	return found
}
