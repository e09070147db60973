package parameter

import "time"

// Wall ripple
const (
	// RippleDuration is how long a ripple stays active after its last trigger
	RippleDuration = 1200 * time.Millisecond

	// Wave shape, matching the wall fragment shader
	// wave = Amplitude * sin(Frequency*d - Speed*t) * exp(-Falloff*d)
	RippleAmplitude = 0.03
	RippleFrequency = 20.0
	RippleSpeed     = 8.0
	RippleFalloff   = 6.0

	// RippleDirBias keeps the displacement direction finite at the center
	RippleDirBias = 0.0001
)
