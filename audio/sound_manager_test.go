package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cues must be safe without an audio device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		assert.False(t, sm.PlayRipple(0), "uninitialized ripple")
		assert.False(t, sm.PlayMorph(), "uninitialized morph")
		sm.Cleanup()
	})
}

// Initialization may fail without an audio device, which is not a failure
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	assert.NoError(t, sm.Initialize(), "second initialization is a no-op")
	sm.PlayMorph()
	sm.Cleanup()
}

func TestRippleCueThrottle(t *testing.T) {
	sm := NewSoundManager()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return now }
	sm.initialized = true
	sm.muted = true // exercise the throttle without touching the speaker

	sm.PlayRipple(0)
	first := sm.lastRipple

	now = now.Add(50 * time.Millisecond)
	sm.PlayRipple(0)
	assert.True(t, sm.lastRipple.Equal(first), "cue inside the interval is dropped")

	now = now.Add(200 * time.Millisecond)
	sm.PlayRipple(0)
	assert.False(t, sm.lastRipple.Equal(first), "cue after the interval is accepted")
}

func TestMuted(t *testing.T) {
	sm := NewSoundManager()
	sm.SetMuted(true)
	assert.True(t, sm.Muted())
}

func TestGeneratorsStayInRange(t *testing.T) {
	sr := beep.SampleRate(48000)
	gens := map[string]beep.Streamer{
		"ripple":  NewRippleGenerator(sr, 520),
		"shimmer": NewShimmerGenerator(sr, 7),
	}

	for name, g := range gens {
		buf := make([][2]float64, 4800)
		peak := 0.0
		for block := 0; block < 10; block++ {
			n, ok := g.Stream(buf)
			require.True(t, ok, name)
			require.Equal(t, len(buf), n, name)
			for _, s := range buf {
				require.False(t, math.IsNaN(s[0]) || math.IsNaN(s[1]), name)
				peak = math.Max(peak, math.Max(math.Abs(s[0]), math.Abs(s[1])))
			}
		}
		assert.Greater(t, peak, 0.0, name)
		assert.LessOrEqual(t, peak, 1.0, name)
	}
}
