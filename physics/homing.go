package physics

import (
	"math"

	"github.com/lixenwraith/scroll-room/vmath"
)

// ApproachResult describes one homing step
type ApproachResult struct {
	Next    vmath.Vec2F
	Step    vmath.Vec2F // displacement toward target before containment
	Arrived bool        // within arrival epsilon, no step taken
}

// Approach moves pos toward target by at most maxStep, never overshooting
// arriveEpsSq is compared against squared distance to avoid normalizing a zero vector
func Approach(pos, target vmath.Vec2F, maxStep, arriveEpsSq float64) ApproachResult {
	dx := target.X - pos.X
	dz := target.Y - pos.Y
	distSq := dx*dx + dz*dz
	if distSq < arriveEpsSq || distSq == 0 {
		return ApproachResult{Next: pos, Arrived: true}
	}

	dist := math.Sqrt(distSq)
	step := math.Min(maxStep, dist)
	if step < 0 {
		step = 0
	}
	scale := step / dist
	s := vmath.Vec2F{X: dx * scale, Y: dz * scale}
	return ApproachResult{Next: vmath.V2FAdd(pos, s), Step: s}
}
