// Package engine assembles the choreography systems into a scene and steps
// them once per frame in a fixed order
package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/scroll-room/status"
)

// System is one per-frame stage
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}

// Driver runs systems in ascending priority; equal priorities keep insertion order
// Not safe for concurrent use
type Driver struct {
	systems []System
	clock   *PausableClock

	frames  uint64
	elapsed time.Duration

	statFrames *atomic.Int64
	statFrame  *status.AtomicFloat
}

func NewDriver(clock *PausableClock, reg *status.Registry) *Driver {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Driver{
		clock:      clock,
		statFrames: reg.Ints.Get(status.Frames),
		statFrame:  reg.Floats.Get(status.FrameTime),
	}
}

func (d *Driver) AddSystem(s System) {
	d.systems = append(d.systems, s)
	sort.SliceStable(d.systems, func(i, j int) bool {
		return d.systems[i].Priority() < d.systems[j].Priority()
	})
}

func (d *Driver) Systems() []System { return d.systems }

func (d *Driver) Clock() *PausableClock { return d.clock }

// Step advances every system by dt
func (d *Driver) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	for _, s := range d.systems {
		s.Update(dt)
	}
	d.frames++
	d.elapsed += dt
	d.statFrames.Store(int64(d.frames))
	d.statFrame.Set(float64(dt) / float64(time.Millisecond))
}

// Tick steps by the scene time elapsed since the previous tick
// A paused clock yields zero-length frames
func (d *Driver) Tick() time.Duration {
	dt := d.clock.Delta()
	d.Step(dt)
	return dt
}

func (d *Driver) Frames() uint64         { return d.frames }
func (d *Driver) Elapsed() time.Duration { return d.elapsed }
