package engine

import (
	"github.com/lixenwraith/scroll-room/ripple"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Frame is the render-facing state after one step
// Renderers over the bridge and trace files consume it as JSON
type Frame struct {
	Seq     uint64        `json:"seq"`
	Time    float64       `json:"t"` // scene seconds
	Camera  CameraFrame   `json:"camera"`
	Actors  []ActorFrame  `json:"actors"`
	Ripples []RippleFrame `json:"ripples"`
	Follow  *[2]float64   `json:"follow,omitempty"` // x, z
}

type CameraFrame struct {
	Eye      [3]float64 `json:"eye"`
	Target   [3]float64 `json:"target"`
	Progress float64    `json:"progress"`
	View     string     `json:"view"` // nearest viewpoint
}

// ActorFrame carries the transform of whichever node renders the actor
type ActorFrame struct {
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Morphed  bool       `json:"morphed"`
	Points   int        `json:"points,omitempty"` // point count once morphed
}

type RippleFrame struct {
	Surface string `json:"surface"`
	ripple.Uniforms
}

func vec3(v vmath.Vec3F) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
