// Package motion drives floor walkers, either orbiting a fixed center or
// chasing a shared follow target, with bounds containment and pairwise separation
package motion

import (
	"github.com/lixenwraith/scroll-room/actor"
	"github.com/lixenwraith/scroll-room/physics"
)

// Mode selects how a batch of walkers moves
type Mode int

const (
	ModeOrbit Mode = iota
	ModeFollow
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFollow:
		return "follow"
	}
	return "unknown"
}

// Walker is the per-actor motion state
// Orbit fields are zero for follow walkers
type Walker struct {
	Actor *actor.Actor
	Mode  Mode

	CenterX, CenterZ float64
	Radius           float64
	Speed            float64 // rad/s, sign is direction
	Angle            float64
}

// OrbitOptions configures an orbit batch
type OrbitOptions struct {
	BaseRadius  float64
	BaseSpeed   float64
	Bounds      *physics.Bounds // nil disables containment
	AvoidRadius float64         // <= 0 disables separation
	Seed        uint64
}

// FollowOptions configures a follow batch
type FollowOptions struct {
	Speed       float64 // world units per second
	Bounds      *physics.Bounds
	AvoidRadius float64
}
