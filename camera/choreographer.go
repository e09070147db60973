// Package camera maps an accumulated scroll scalar onto a fixed list of viewpoints
package camera

import (
	"errors"
	"math"
	"time"

	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/vmath"
)

// ErrNoViewpoints is returned when a choreographer is built without states
var ErrNoViewpoints = errors.New("camera: at least one viewpoint is required")

// Viewpoint is a named camera pose
type Viewpoint struct {
	Name   string
	Eye    vmath.Vec3F
	Target vmath.Vec3F
}

// Pose is an interpolated eye/look-at pair
type Pose struct {
	Eye    vmath.Vec3F
	Target vmath.Vec3F
}

// Choreographer holds the ordered viewpoints and the clamped scroll progress
// The pose is a pure function of progress; Update only caches it for the frame
type Choreographer struct {
	states      []Viewpoint
	sensitivity float64
	progress    float64
	current     Pose
}

// New copies states; the list is fixed for the choreographer's lifetime
func New(states []Viewpoint, sensitivity float64) (*Choreographer, error) {
	if len(states) == 0 {
		return nil, ErrNoViewpoints
	}
	c := &Choreographer{
		states:      append([]Viewpoint(nil), states...),
		sensitivity: sensitivity,
	}
	c.current = c.Pose()
	return c, nil
}

// Last is the highest valid progress value
func (c *Choreographer) Last() int { return len(c.states) - 1 }

// SetSensitivity changes the scroll-to-progress factor for future deltas
func (c *Choreographer) SetSensitivity(s float64) { c.sensitivity = s }

// States returns a copy of the viewpoint list
func (c *Choreographer) States() []Viewpoint {
	return append([]Viewpoint(nil), c.states...)
}

// Scroll accumulates raw wheel delta, input is unbounded but progress stays clamped
func (c *Choreographer) Scroll(rawDelta float64) {
	c.SetProgress(c.progress + rawDelta*c.sensitivity)
}

// SetProgress clamps p to [0, Last]; NaN is ignored
func (c *Choreographer) SetProgress(p float64) {
	if math.IsNaN(p) {
		return
	}
	c.progress = vmath.Clamp(p, 0, float64(c.Last()))
}

func (c *Choreographer) Progress() float64 { return c.progress }

// Segment splits progress into the lower viewpoint index and the blend factor
func (c *Choreographer) Segment() (int, float64) {
	i := int(math.Floor(c.progress))
	if i >= c.Last() {
		return c.Last(), 0
	}
	return i, c.progress - float64(i)
}

// Pose interpolates between the two viewpoints bracketing progress
func (c *Choreographer) Pose() Pose {
	i, t := c.Segment()
	a := c.states[i]
	b := c.states[min(i+1, c.Last())]
	return Pose{
		Eye:    vmath.V3FLerp(a.Eye, b.Eye, t),
		Target: vmath.V3FLerp(a.Target, b.Target, t),
	}
}

// Current is the pose cached by the last Update
func (c *Choreographer) Current() Pose { return c.current }

// Nearest returns the viewpoint closest to the current progress
func (c *Choreographer) Nearest() Viewpoint {
	return c.states[int(math.Round(c.progress))]
}

// JumpTo snaps progress to the named viewpoint
func (c *Choreographer) JumpTo(name string) bool {
	for i, s := range c.states {
		if s.Name == name {
			c.progress = float64(i)
			return true
		}
	}
	return false
}

// Update implements engine.System
func (c *Choreographer) Update(dt time.Duration) {
	c.current = c.Pose()
}

func (c *Choreographer) Priority() int { return parameter.PriorityCamera }
