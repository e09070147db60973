package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/scroll-room/status"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	total    time.Duration
}

func (r *recordingSystem) Update(dt time.Duration) {
	*r.log = append(*r.log, r.name)
	r.total += dt
}

func (r *recordingSystem) Priority() int { return r.priority }

func TestDriverRunsInPriorityOrder(t *testing.T) {
	var log []string
	d := NewDriver(nil, nil)
	d.AddSystem(&recordingSystem{name: "ripple", priority: 40, log: &log})
	d.AddSystem(&recordingSystem{name: "camera", priority: 10, log: &log})
	d.AddSystem(&recordingSystem{name: "morph", priority: 30, log: &log})
	d.AddSystem(&recordingSystem{name: "motion", priority: 20, log: &log})
	d.AddSystem(&recordingSystem{name: "motion.b", priority: 20, log: &log})

	d.Step(time.Millisecond)
	assert.Equal(t, []string{"camera", "motion", "motion.b", "morph", "ripple"}, log)
}

func TestDriverTickUsesClock(t *testing.T) {
	clock, mock := newMockClock()
	reg := status.NewRegistry()
	d := NewDriver(clock, reg)
	var log []string
	sys := &recordingSystem{name: "s", log: &log}
	d.AddSystem(sys)

	mock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, d.Tick())
	clock.Pause()
	mock.Advance(time.Second)
	assert.Zero(t, d.Tick())

	assert.Equal(t, 16*time.Millisecond, sys.total)
	assert.Equal(t, uint64(2), d.Frames())
	assert.Equal(t, 16*time.Millisecond, d.Elapsed())
	assert.Equal(t, int64(2), reg.Ints.Get(status.Frames).Load())
}

func TestDriverClampsNegativeDelta(t *testing.T) {
	var log []string
	d := NewDriver(nil, nil)
	sys := &recordingSystem{name: "s", log: &log}
	d.AddSystem(sys)
	d.Step(-time.Second)
	assert.Zero(t, sys.total)
}
