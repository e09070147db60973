package engine

import (
	"sync"
	"time"
)

// PausableClock measures frame deltas in scene time, which stops while paused
// Pause and Resume may come from any goroutine; Delta belongs to the frame loop
type PausableClock struct {
	mu       sync.Mutex
	provider TimeProvider

	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration

	lastFrame time.Duration // scene time at the previous Delta
}

func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{provider: provider, start: provider.Now()}
}

// Elapsed is scene time since the clock was created
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.elapsedLocked()
}

func (pc *PausableClock) elapsedLocked() time.Duration {
	now := pc.provider.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPaused
}

// Delta returns scene time since the previous call
func (pc *PausableClock) Delta() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.elapsedLocked()
	dt := now - pc.lastFrame
	pc.lastFrame = now
	if dt < 0 {
		return 0
	}
	return dt
}

func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.setPaused(true)
}

func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.setPaused(false)
}

// Toggle flips the pause state and reports whether the clock is now paused
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.setPaused(!pc.paused)
	return pc.paused
}

func (pc *PausableClock) setPaused(paused bool) {
	if pc.paused == paused {
		return
	}
	now := pc.provider.Now()
	if paused {
		pc.pauseStart = now
	} else {
		pc.totalPaused += now.Sub(pc.pauseStart)
		pc.pauseStart = time.Time{}
	}
	pc.paused = paused
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPaused includes the pause in progress
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.totalPaused
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
