package parameter

// System Execution Priorities (lower runs first)
// Frame order is fixed: camera, walkers, morph, ripple
const (
	PriorityCamera = 10
	PriorityMotion = 20
	PriorityMorph  = 30
	PriorityRipple = 40
)

// PriorityStatus publishes telemetry after every other system has run
const PriorityStatus = 100
