package motion

import (
	"math"
	"time"

	"github.com/lixenwraith/scroll-room/actor"
	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/physics"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Controller owns one batch of walkers; re-initializing replaces the batch
// Not safe for concurrent use, hosts call it from the frame goroutine
type Controller struct {
	mode    Mode
	walkers []Walker

	bounds      *physics.Bounds
	avoidRadius float64
	followSpeed float64

	target    vmath.Vec2F
	hasTarget bool

	// snapshot of walker floor positions at frame start, reused across frames
	scratch []vmath.Vec2F
}

func NewController() *Controller {
	return &Controller{}
}

// InitOrbit replaces the batch with orbit walkers centered on each actor's start position
func (c *Controller) InitOrbit(actors []*actor.Actor, opts OrbitOptions) {
	rng := vmath.NewFastRand(opts.Seed)

	c.mode = ModeOrbit
	c.setContainment(opts.Bounds, opts.AvoidRadius)
	c.walkers = c.walkers[:0]

	for i, a := range actors {
		if a == nil {
			continue
		}
		start := a.Position()
		angle := rng.Float64() * 2 * math.Pi
		radius := opts.BaseRadius*(parameter.OrbitJitterMin+rng.Float64()*parameter.OrbitJitterSpan) +
			float64(i)*parameter.OrbitRadiusStep
		speed := opts.BaseSpeed * (parameter.OrbitJitterMin + rng.Float64()*parameter.OrbitJitterSpan) * rng.Sign()

		c.walkers = append(c.walkers, Walker{
			Actor:   a,
			Mode:    ModeOrbit,
			CenterX: start.X,
			CenterZ: start.Z,
			Radius:  radius,
			Speed:   speed,
			Angle:   angle,
		})
	}
}

// InitFollow replaces the batch with walkers chasing the follow target
// An existing target survives re-initialization
func (c *Controller) InitFollow(actors []*actor.Actor, opts FollowOptions) {
	c.mode = ModeFollow
	c.setContainment(opts.Bounds, opts.AvoidRadius)
	c.followSpeed = opts.Speed
	c.walkers = c.walkers[:0]

	for _, a := range actors {
		if a == nil {
			continue
		}
		c.walkers = append(c.walkers, Walker{
			Actor: a,
			Mode:  ModeFollow,
		})
	}
}

func (c *Controller) setContainment(b *physics.Bounds, avoid float64) {
	if b != nil {
		cp := *b
		c.bounds = &cp
	} else {
		c.bounds = nil
	}
	c.avoidRadius = avoid
}

func (c *Controller) SetFollowTarget(x, z float64) {
	c.target = vmath.Vec2F{X: x, Y: z}
	c.hasTarget = true
}

func (c *Controller) ClearFollowTarget() {
	c.hasTarget = false
}

func (c *Controller) FollowTarget() (vmath.Vec2F, bool) {
	return c.target, c.hasTarget
}

func (c *Controller) Mode() Mode { return c.mode }
func (c *Controller) Len() int   { return len(c.walkers) }

// Walkers returns a copy of the batch state
func (c *Controller) Walkers() []Walker {
	return append([]Walker(nil), c.walkers...)
}

// Update advances every walker by dt
// Separation reads positions as they were at frame start so walker order does not matter
func (c *Controller) Update(dt time.Duration) {
	if len(c.walkers) == 0 {
		return
	}
	if c.mode == ModeFollow && !c.hasTarget {
		return
	}

	c.scratch = c.scratch[:0]
	for i := range c.walkers {
		c.scratch = append(c.scratch, c.walkers[i].Actor.Floor())
	}

	seconds := dt.Seconds()
	for i := range c.walkers {
		w := &c.walkers[i]
		if w.Actor.Morphed {
			continue
		}
		switch w.Mode {
		case ModeOrbit:
			c.stepOrbit(i, w, seconds)
		case ModeFollow:
			c.stepFollow(i, w, seconds)
		}
	}
}

func (c *Controller) stepOrbit(i int, w *Walker, seconds float64) {
	w.Angle += w.Speed * seconds
	next := physics.OrbitPoint(vmath.Vec2F{X: w.CenterX, Y: w.CenterZ}, w.Radius, w.Angle)
	c.place(w, c.contain(i, next))
}

func (c *Controller) stepFollow(i int, w *Walker, seconds float64) {
	prev := w.Actor.Floor()
	res := physics.Approach(prev, c.target, c.followSpeed*seconds, parameter.FollowArriveEpsilonSq)
	if res.Arrived {
		return
	}

	next := c.contain(i, res.Next)
	c.place(w, next)

	moved := vmath.V2FSub(next, prev)
	if vmath.V2FMag(moved) > parameter.FollowFacingThreshold {
		w.Actor.SetYaw(physics.Heading(moved))
	}
}

// contain clamps to bounds, then pushes away from neighbours
func (c *Controller) contain(i int, p vmath.Vec2F) vmath.Vec2F {
	if c.bounds != nil {
		p = physics.Clamp(p, *c.bounds)
	}
	if c.avoidRadius > 0 {
		p = physics.Separate(p, i, c.scratch, c.avoidRadius)
	}
	return p
}

func (c *Controller) place(w *Walker, p vmath.Vec2F) {
	w.Actor.SetFloor(p)
}

// Priority implements engine.System
func (c *Controller) Priority() int { return parameter.PriorityMotion }
