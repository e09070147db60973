// Package actor binds a render handle to the choreography state the engine owns for it
package actor

import (
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Actor is a positioned, rotatable entity on the floor
// Node is the render handle; the engine mutates its transform but does not own it
type Actor struct {
	Name  string
	Node  *scene.Node
	RestY float64 // resting height captured at registration

	// Morphed is set once the actor has been replaced by a point cloud
	// Motion stops mutating the actor from that frame on
	Morphed bool
	Cloud   *scene.Node
}

// New registers node as an actor resting at its current height
func New(name string, node *scene.Node) *Actor {
	return &Actor{
		Name:  name,
		Node:  node,
		RestY: node.Position.Y,
	}
}

func (a *Actor) Position() vmath.Vec3F { return a.Node.Position }

// Floor returns the planar (X, Z) position
func (a *Actor) Floor() vmath.Vec2F { return a.Node.Position.XZ() }

// SetFloor writes X/Z and pins Y to the resting height
func (a *Actor) SetFloor(p vmath.Vec2F) {
	a.Node.Position.X = p.X
	a.Node.Position.Z = p.Y
	a.Node.Position.Y = a.RestY
}

func (a *Actor) Yaw() float64       { return a.Node.Yaw() }
func (a *Actor) SetYaw(yaw float64) { a.Node.SetYaw(yaw) }

// Handle returns the node that currently renders the actor
func (a *Actor) Handle() *scene.Node {
	if a.Morphed && a.Cloud != nil {
		return a.Cloud
	}
	return a.Node
}
