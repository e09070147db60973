package parameter

// Pointer interaction
const (
	// DragRotationSpeed is yaw radians per horizontal pointer pixel
	DragRotationSpeed = 0.01
)
