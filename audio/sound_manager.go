// Package audio plays short synthesized cues for ripples and morphs
// Every call is a no-op until Initialize succeeds, so hosts without a device run silent
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/scroll-room/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes cue sounds onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	now        func() time.Time
	lastRipple time.Time
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything in flight
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted drops future cues without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayRipple plays a chirp panned toward the wall, pan in [-1, 1]
// Cues closer together than parameter.RippleCueInterval are dropped
func (sm *SoundManager) PlayRipple(pan float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if !sm.lastRipple.IsZero() && now.Sub(sm.lastRipple) < parameter.RippleCueInterval {
		return false
	}
	sm.lastRipple = now

	if !sm.initialized || sm.muted {
		return false
	}
	cue := beep.Take(sampleRate.N(parameter.RippleCueDuration), NewRippleGenerator(sampleRate, parameter.RippleCueFrequency))
	sm.add(&effects.Pan{Streamer: cue, Pan: math.Max(-1, math.Min(1, pan))})
	return true
}

// PlayMorph plays the dissolve shimmer
func (sm *SoundManager) PlayMorph() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	sm.add(beep.Take(sampleRate.N(parameter.MorphCueDuration), NewShimmerGenerator(sampleRate, 1)))
	return true
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
