// Package room derives the box room from the door camera's framing
// The back wall fills a fraction of the door view; everything else follows from it
package room

import (
	"math"

	"github.com/lixenwraith/scroll-room/physics"
)

// Layout holds the derived room dimensions
type Layout struct {
	FovY         float64
	Aspect       float64
	WallDistance float64
	FillFactor   float64

	FullHeight       float64 // frustum height at the back wall
	WallHeight       float64
	WallWidth        float64
	EyeY             float64
	FloorY           float64
	HeightMultiplier float64 // vertical stretch applied to the walls
}

// NewLayout computes the room for a vertical FOV in degrees
func NewLayout(fovDeg, aspect, wallDistance, fillFactor float64) Layout {
	full := 2 * wallDistance * math.Tan(fovDeg*math.Pi/360)
	wallH := full * fillFactor
	eyeY := wallH * 0.6

	mult := 0.0
	if fillFactor != 0 {
		mult = 1 / fillFactor
	}

	return Layout{
		FovY:             fovDeg,
		Aspect:           aspect,
		WallDistance:     wallDistance,
		FillFactor:       fillFactor,
		FullHeight:       full,
		WallHeight:       wallH,
		WallWidth:        wallH * aspect,
		EyeY:             eyeY,
		FloorY:           eyeY - wallH/2,
		HeightMultiplier: mult,
	}
}

// Bounds is the walkable floor rectangle, door plane at z = 0
func (l Layout) Bounds(margin float64) physics.Bounds {
	return physics.Bounds{
		MinX:   -l.WallWidth / 2,
		MaxX:   l.WallWidth / 2,
		MinZ:   -l.WallDistance,
		MaxZ:   0,
		Margin: margin,
	}
}
