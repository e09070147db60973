package parameter

// Scroll-driven camera
const (
	// ScrollSensitivity converts raw wheel delta (pixels) into viewpoint progress
	// 500px of wheel travel moves one viewpoint
	ScrollSensitivity = 0.002

	// CameraFovY is the vertical field of view in degrees
	CameraFovY = 45.0

	// CameraNear is the near clip distance used for pointer rays
	CameraNear = 0.1

	// CameraFar is the far clip distance
	CameraFar = 200.0
)
