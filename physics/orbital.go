package physics

import (
	"math"

	"github.com/lixenwraith/scroll-room/vmath"
)

// OrbitPoint returns center + radius·(cos angle, sin angle) on the floor plane
// Negative radius mirrors the point through the center, which is still well defined
func OrbitPoint(center vmath.Vec2F, radius, angle float64) vmath.Vec2F {
	return vmath.Vec2F{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// Heading returns the yaw facing along step, +Z is yaw 0
func Heading(step vmath.Vec2F) float64 {
	return math.Atan2(step.X, step.Y)
}
