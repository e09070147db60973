package parameter

import "time"

// Audio output
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue sounds
const (
	// RippleCueDuration is the length of one ripple chirp
	RippleCueDuration = 450 * time.Millisecond

	// RippleCueInterval throttles chirps while the pointer sweeps a wall
	RippleCueInterval = 180 * time.Millisecond

	// RippleCueFrequency is the base pitch of the chirp in Hz
	RippleCueFrequency = 520.0

	// MorphCueDuration is the length of the dissolve shimmer
	MorphCueDuration = 1500 * time.Millisecond

	// CueVolume scales every cue
	CueVolume = 0.25
)
