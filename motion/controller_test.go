package motion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scroll-room/actor"
	"github.com/lixenwraith/scroll-room/physics"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

func newActor(name string, x, y, z float64) *actor.Actor {
	n := scene.NewNode(name)
	n.Position = vmath.V3F(x, y, z)
	return actor.New(name, n)
}

const frame = 16 * time.Millisecond

func TestInitOrbitReplacesBatch(t *testing.T) {
	c := NewController()
	c.InitOrbit([]*actor.Actor{newActor("a", 0, 0, 0), newActor("b", 1, 0, 1)}, OrbitOptions{BaseRadius: 3, BaseSpeed: 0.4, Seed: 7})
	require.Equal(t, 2, c.Len())

	c.InitOrbit([]*actor.Actor{newActor("c", 0, 0, 0)}, OrbitOptions{BaseRadius: 3, BaseSpeed: 0.4, Seed: 7})
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, ModeOrbit, c.Mode())
}

func TestInitOrbitParameters(t *testing.T) {
	actors := []*actor.Actor{newActor("a", 2, 0.5, -4), newActor("b", -1, 0.5, -6), newActor("c", 0, 0.5, -8)}
	c := NewController()
	c.InitOrbit(actors, OrbitOptions{BaseRadius: 3, BaseSpeed: 0.25, Seed: 42})

	for i, w := range c.Walkers() {
		assert.Equal(t, actors[i].Position().X, w.CenterX)
		assert.Equal(t, actors[i].Position().Z, w.CenterZ)
		assert.Equal(t, 0.5, w.Actor.RestY)

		step := float64(i) * 0.2
		assert.GreaterOrEqual(t, w.Radius, 3*0.7+step)
		assert.Less(t, w.Radius, 3*1.5+step)
		assert.GreaterOrEqual(t, math.Abs(w.Speed), 0.25*0.7)
		assert.Less(t, math.Abs(w.Speed), 0.25*1.5)
		assert.GreaterOrEqual(t, w.Angle, 0.0)
		assert.Less(t, w.Angle, 2*math.Pi)
	}
}

func TestInitOrbitDeterministicForSeed(t *testing.T) {
	a := NewController()
	b := NewController()
	a.InitOrbit([]*actor.Actor{newActor("a", 0, 0, 0)}, OrbitOptions{BaseRadius: 3, BaseSpeed: 1, Seed: 99})
	b.InitOrbit([]*actor.Actor{newActor("a", 0, 0, 0)}, OrbitOptions{BaseRadius: 3, BaseSpeed: 1, Seed: 99})
	assert.Equal(t, a.Walkers()[0].Radius, b.Walkers()[0].Radius)
	assert.Equal(t, a.Walkers()[0].Angle, b.Walkers()[0].Angle)
}

func TestOrbitFollowsCircle(t *testing.T) {
	act := newActor("a", 1, 0.3, -5)
	c := NewController()
	c.InitOrbit([]*actor.Actor{act}, OrbitOptions{BaseRadius: 2, BaseSpeed: 1, Seed: 3})
	w := c.Walkers()[0]

	c.Update(500 * time.Millisecond)
	angle := w.Angle + w.Speed*0.5
	pos := act.Position()
	assert.InDelta(t, 1+math.Cos(angle)*w.Radius, pos.X, 1e-9)
	assert.InDelta(t, -5+math.Sin(angle)*w.Radius, pos.Z, 1e-9)
	assert.Equal(t, 0.3, pos.Y)
}

func TestOrbitStaysInBounds(t *testing.T) {
	b := physics.Bounds{MinX: -2, MaxX: 2, MinZ: -4, MaxZ: 0, Margin: 0.5}
	act := newActor("a", 0, 0, -2)
	c := NewController()
	c.InitOrbit([]*actor.Actor{act}, OrbitOptions{BaseRadius: 10, BaseSpeed: 2, Bounds: &b, Seed: 5})

	for i := 0; i < 500; i++ {
		c.Update(frame)
		assert.True(t, b.Contains(act.Floor()), "frame %d at %v", i, act.Floor())
	}
}

func TestFollowWithoutTargetIsNoop(t *testing.T) {
	a := newActor("a", 1, 0, -3)
	b := newActor("b", 1.2, 0, -3)
	c := NewController()
	c.InitFollow([]*actor.Actor{a, b}, FollowOptions{Speed: 2, AvoidRadius: 1.5})

	c.Update(time.Second)
	assert.Equal(t, vmath.V3F(1, 0, -3), a.Position())
	assert.Equal(t, vmath.V3F(1.2, 0, -3), b.Position())
}

func TestFollowApproachesMonotonically(t *testing.T) {
	a := newActor("a", 0, 0.1, 0)
	c := NewController()
	c.InitFollow([]*actor.Actor{a}, FollowOptions{Speed: 1.5})
	c.SetFollowTarget(3, -4)

	target := vmath.V2F(3, -4)
	prev := vmath.V2FMag(vmath.V2FSub(target, a.Floor()))
	for i := 0; i < 300; i++ {
		c.Update(frame)
		d := vmath.V2FMag(vmath.V2FSub(target, a.Floor()))
		assert.LessOrEqual(t, d, prev+1e-12)
		prev = d
	}
	assert.InDelta(t, 0, prev, 1e-2)
	assert.Equal(t, 0.1, a.Position().Y)
}

func TestFollowNeverOvershoots(t *testing.T) {
	a := newActor("a", 0, 0, 0)
	c := NewController()
	c.InitFollow([]*actor.Actor{a}, FollowOptions{Speed: 100})
	c.SetFollowTarget(1, 0)

	c.Update(time.Second)
	assert.InDelta(t, 1, a.Floor().X, 1e-12)
	assert.InDelta(t, 0, a.Floor().Y, 1e-12)
}

func TestFollowFacesDirectionOfTravel(t *testing.T) {
	a := newActor("a", 0, 0, 0)
	c := NewController()
	c.InitFollow([]*actor.Actor{a}, FollowOptions{Speed: 1})

	c.SetFollowTarget(5, 0)
	c.Update(100 * time.Millisecond)
	assert.InDelta(t, math.Pi/2, a.Yaw(), 1e-9)

	c.SetFollowTarget(a.Floor().X, -10)
	c.Update(100 * time.Millisecond)
	assert.InDelta(t, math.Pi, math.Abs(a.Yaw()), 1e-9)
}

func TestFollowArrivedKeepsYaw(t *testing.T) {
	a := newActor("a", 2, 0, 2)
	a.SetYaw(0.7)
	c := NewController()
	c.InitFollow([]*actor.Actor{a}, FollowOptions{Speed: 1})
	c.SetFollowTarget(2, 2)

	c.Update(frame)
	assert.Equal(t, 0.7, a.Yaw())
	assert.Equal(t, vmath.V2F(2, 2), a.Floor())
}

func TestFollowTargetLifecycle(t *testing.T) {
	c := NewController()
	_, ok := c.FollowTarget()
	assert.False(t, ok)

	c.SetFollowTarget(1, 2)
	p, ok := c.FollowTarget()
	assert.True(t, ok)
	assert.Equal(t, vmath.V2F(1, 2), p)

	c.InitFollow(nil, FollowOptions{Speed: 1})
	_, ok = c.FollowTarget()
	assert.True(t, ok)

	c.ClearFollowTarget()
	_, ok = c.FollowTarget()
	assert.False(t, ok)
}

func TestMorphedWalkerIsFrozen(t *testing.T) {
	a := newActor("a", 0, 0, 0)
	c := NewController()
	c.InitFollow([]*actor.Actor{a}, FollowOptions{Speed: 1})
	c.SetFollowTarget(5, 5)
	a.Morphed = true

	c.Update(time.Second)
	assert.Equal(t, vmath.V3F(0, 0, 0), a.Position())
}

func TestSeparationUsesFrameStartSnapshot(t *testing.T) {
	// two walkers converge on the same target from opposite sides
	a := newActor("a", -1, 0, 0)
	b := newActor("b", 1, 0, 0)
	c := NewController()
	c.InitFollow([]*actor.Actor{a, b}, FollowOptions{Speed: 1, AvoidRadius: 1.5})
	c.SetFollowTarget(0, 0)

	c.Update(time.Second)
	// each candidate lands on the target, one unit from the other's start,
	// and is pushed half a unit back; b must not react to a's new position
	assert.InDelta(t, -0.5, a.Floor().X, 1e-9)
	assert.InDelta(t, 0.5, b.Floor().X, 1e-9)
}

func TestDegenerateOptionsAccepted(t *testing.T) {
	a := newActor("a", 0, 0, 0)
	c := NewController()
	c.InitOrbit([]*actor.Actor{a}, OrbitOptions{BaseRadius: -2, BaseSpeed: -1, Seed: 1})
	c.Update(frame)
	assert.False(t, math.IsNaN(a.Position().X))

	empty := NewController()
	empty.InitOrbit(nil, OrbitOptions{})
	empty.Update(frame)
	assert.Zero(t, empty.Len())
}

func TestWalkersStayPinnedToRestingHeight(t *testing.T) {
	a := newActor("a", 0, 0.5, -5)
	c := NewController()
	c.SetFollowTarget(3, -5)
	c.InitFollow([]*actor.Actor{a}, FollowOptions{Speed: 1})

	// a drift in Y between frames is undone by the next placement
	a.Node.Position.Y = 4
	c.Update(frame)
	assert.Equal(t, 0.5, a.Position().Y)
	assert.Greater(t, a.Floor().X, 0.0)
}
