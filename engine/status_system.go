package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/status"
)

// statusSystem publishes per-frame gauges after the choreography systems ran
type statusSystem struct {
	scene *Scene

	rippleActive *atomic.Int64
	walkers      *atomic.Int64
	mode         *status.AtomicString
	progress     *status.AtomicFloat
	view         *status.AtomicString
}

func newStatusSystem(s *Scene) *statusSystem {
	reg := s.Status
	return &statusSystem{
		scene:        s,
		rippleActive: reg.Ints.Get(status.RippleActive),
		walkers:      reg.Ints.Get(status.MotionWalkers),
		mode:         reg.Strings.Get(status.MotionMode),
		progress:     reg.Floats.Get(status.CameraProgress),
		view:         reg.Strings.Get(status.CameraView),
	}
}

func (ss *statusSystem) Update(dt time.Duration) {
	s := ss.scene
	ss.rippleActive.Store(int64(s.Ripples.ActiveCount()))
	ss.walkers.Store(int64(s.Motion.Len()))
	ss.mode.Store(s.Motion.Mode().String())
	ss.progress.Set(s.Camera.Progress())
	ss.view.Store(s.Camera.Nearest().Name)
}

func (ss *statusSystem) Priority() int { return parameter.PriorityStatus }
