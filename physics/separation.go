package physics

import (
	"math"

	"github.com/lixenwraith/scroll-room/vmath"
)

// Separate pushes candidate away from every neighbour closer than minDist
// neighbours is a snapshot of all walker positions, index self is skipped
// Each violation moves the running candidate along the neighbour→candidate line by
// (minDist-dist)/dist of that offset, so closer pairs get the larger correction
// Corrections accumulate in one pass; a neighbour at exactly zero distance is ignored
func Separate(candidate vmath.Vec2F, self int, neighbours []vmath.Vec2F, minDist float64) vmath.Vec2F {
	if minDist <= 0 {
		return candidate
	}
	minDistSq := minDist * minDist

	for j := range neighbours {
		if j == self {
			continue
		}
		dx := candidate.X - neighbours[j].X
		dz := candidate.Y - neighbours[j].Y
		distSq := dx*dx + dz*dz
		if distSq <= 0 || distSq >= minDistSq {
			continue
		}
		dist := math.Sqrt(distSq)
		push := (minDist - dist) / dist
		candidate.X += dx * push
		candidate.Y += dz * push
	}
	return candidate
}
