package parameter

// Orbit walkers
const (
	// OrbitBaseRadius is the nominal orbit radius before per-walker jitter
	OrbitBaseRadius = 3.0

	// OrbitBaseSpeed is the nominal angular speed in rad/s
	OrbitBaseSpeed = 0.4

	// Per-walker jitter: value * (OrbitJitterMin + rand * OrbitJitterSpan)
	OrbitJitterMin  = 0.7
	OrbitJitterSpan = 0.8

	// OrbitRadiusStep widens each successive walker's orbit so batches fan out
	OrbitRadiusStep = 0.2
)

// Follow walkers
const (
	// FollowSpeed is the chase speed in world units per second
	FollowSpeed = 1.5

	// FollowArriveEpsilonSq is the squared distance treated as arrived
	FollowArriveEpsilonSq = 1e-4

	// FollowFacingThreshold is the minimum step length that re-orients yaw
	FollowFacingThreshold = 1e-3
)

// Shared containment
const (
	// AvoidRadius is the minimum separation between walkers
	AvoidRadius = 1.5

	// BoundsMargin is the inset used when a bounds rectangle omits one
	BoundsMargin = 0.5
)
