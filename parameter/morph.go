package parameter

import "time"

// Point-cloud morph
const (
	// MorphDelay is the shared-clock time after which morphable actors dissolve
	MorphDelay = 60 * time.Second

	// DefaultPointSize applies when an actor has no configured point size
	DefaultPointSize = 0.02

	// PointOpacity is the point material opacity
	PointOpacity = 0.95

	// PointPickThreshold is the ray distance within which a point counts as hit
	PointPickThreshold = 0.05
)
