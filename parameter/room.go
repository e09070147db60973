package parameter

// Room layout, derived the same way the camera frames the back wall
const (
	// WallDistance is the depth of the room from the door plane to the back wall
	WallDistance = 20.0

	// FillFactor is the fraction of the door view's height the back wall fills
	FillFactor = 0.6

	// EyeHeightRatio places the eye at this fraction of wall height
	EyeHeightRatio = 0.6

	// FloorClearance lifts placed models off the floor to avoid z-fighting
	FloorClearance = 0.01

	// RoomBoundsMargin keeps walkers this far from the walls
	RoomBoundsMargin = 1.0

	// DefaultAspect is used by headless hosts without a viewport
	DefaultAspect = 16.0 / 9.0
)
