package engine

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scroll-room/actor"
	"github.com/lixenwraith/scroll-room/config"
	"github.com/lixenwraith/scroll-room/interact"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/status"
	"github.com/lixenwraith/scroll-room/vmath"
)

func buildDefault(t *testing.T) *Scene {
	t.Helper()
	s, err := Build(config.Default(), Options{})
	require.NoError(t, err)
	return s
}

func TestBuildDefaultScene(t *testing.T) {
	s := buildDefault(t)

	assert.Len(t, s.Actors, 4)
	assert.Empty(t, s.Moving)
	assert.Equal(t, 4, s.Selection.Len())
	assert.Len(t, s.Camera.States(), 5)
	assert.Len(t, s.Ripples.Surfaces(), 3)
	assert.Equal(t, 4, s.Morph.Pending())
	assert.Len(t, s.Driver.Systems(), 5)

	floorY := s.Room.Layout.FloorY
	for _, a := range s.Actors {
		box := a.Node.WorldBounds()
		assert.InDelta(t, floorY+0.01, box.Min.Y, 1e-9, a.Name)
		assert.InDelta(t, math.Pi, a.Yaw(), 1e-12, a.Name)
	}
}

func TestDefaultSceneMorphsAfterAMinute(t *testing.T) {
	s := buildDefault(t)
	var morphed []string
	s.OnMorph = func(a *actor.Actor) { morphed = append(morphed, a.Name) }

	for i := 0; i < 59; i++ {
		s.Step(time.Second)
	}
	assert.Empty(t, morphed)

	s.Step(time.Second)
	assert.Len(t, morphed, 4)
	assert.Equal(t, int64(4), s.Status.Ints.Get(status.MorphFired).Load())
	assert.Equal(t, 8, s.Selection.Len())

	f := s.Snapshot()
	for _, af := range f.Actors {
		assert.True(t, af.Morphed)
		assert.Positive(t, af.Points)
	}
}

func TestOrbitWalkersMove(t *testing.T) {
	cfg := config.Default()
	for i := range cfg.Models {
		cfg.Models[i].CanMove = true
	}
	s, err := Build(cfg, Options{})
	require.NoError(t, err)
	require.Len(t, s.Moving, 4)

	start := s.Actors[0].Floor()
	s.Step(500 * time.Millisecond)
	assert.NotEqual(t, start, s.Actors[0].Floor())

	b := s.Room.Bounds(cfg.Motion.BoundsMargin)
	for i := 0; i < 200; i++ {
		s.Step(50 * time.Millisecond)
	}
	for _, a := range s.Actors {
		p := a.Floor()
		// separation may push past the clamp by at most the avoid radius
		assert.GreaterOrEqual(t, p.X, b.MinX+b.Margin-cfg.Motion.AvoidRadius, a.Name)
		assert.LessOrEqual(t, p.X, b.MaxX-b.Margin+cfg.Motion.AvoidRadius, a.Name)
	}
}

func TestWheelDrivesCamera(t *testing.T) {
	s := buildDefault(t)
	s.Router.Wheel(500)
	s.Step(16 * time.Millisecond)

	f := s.Snapshot()
	assert.InDelta(t, 1, f.Camera.Progress, 1e-12)
	assert.Equal(t, "back", f.Camera.View)
	assert.InDelta(t, -10, f.Camera.Eye[2], 1e-9)
}

func TestPointerDragRotatesModel(t *testing.T) {
	s := buildDefault(t)
	bot := s.Actor("mechbot")
	require.NotNil(t, bot)

	// aim at the mechbot's center from the door view
	pose := s.Camera.Pose()
	ndc, ok := s.Lens.Project(pose, bot.Node.WorldBounds().Center())
	require.True(t, ok)

	yaw := bot.Yaw()
	s.Router.PointerDown(interact.Pointer{ClientX: 100, NDC: ndc})
	require.Same(t, bot.Node, s.Router.Active())
	s.Router.PointerMove(interact.Pointer{ClientX: 150, NDC: ndc})
	assert.InDelta(t, yaw+0.5, bot.Yaw(), 1e-9)
	s.Router.PointerUp()
}

func TestHoverRipplesBackWall(t *testing.T) {
	s := buildDefault(t)
	var hit []*scene.Node
	s.OnRipple = func(n *scene.Node) { hit = append(hit, n) }

	// top-left of the door view sees the back wall above the models
	s.Router.PointerMove(interact.Pointer{NDC: vmath.V2F(-0.3, 0.5)})
	require.Len(t, hit, 1)
	assert.Same(t, s.Room.Back, hit[0])

	s.Step(16 * time.Millisecond)
	f := s.Snapshot()
	require.Len(t, f.Ripples, 3)
	assert.Equal(t, "wall.back", f.Ripples[0].Surface)
	assert.Equal(t, float32(1), f.Ripples[0].Active)
	assert.Equal(t, int64(1), s.Status.Ints.Get(status.RippleActive).Load())
}

func TestFloorTargetsSteerFollowers(t *testing.T) {
	cfg := config.Default()
	cfg.Motion.Mode = config.ModeFollow
	cfg.Interaction.FloorTargets = true
	cfg.Models = []config.ModelConfig{{Name: "crate", Kind: "block", X: 0, Z: -5, Scale: 1, CanMove: true}}
	s, err := Build(cfg, Options{})
	require.NoError(t, err)

	// floor view looks straight down at the room center
	require.True(t, s.Camera.JumpTo("floor"))
	s.Router.PointerDown(interact.Pointer{NDC: vmath.V2F(0, 0)})
	s.Router.PointerUp()

	target, ok := s.Motion.FollowTarget()
	require.True(t, ok)
	assert.InDelta(t, 0, target.X, 1e-6)
	assert.InDelta(t, -10, target.Y, 1e-6)

	for i := 0; i < 300; i++ {
		s.Step(50 * time.Millisecond)
	}
	assert.InDelta(t, -10, s.Actor("crate").Floor().Y, 1e-2)
	require.NotNil(t, s.Snapshot().Follow)
}

func TestReloadSwitchesMode(t *testing.T) {
	cfg := config.Default()
	cfg.Models[0].CanMove = true
	s, err := Build(cfg, Options{})
	require.NoError(t, err)

	s.Step(time.Second)
	next := cfg
	next.Motion.Mode = config.ModeFollow
	next.Camera.ScrollSensitivity = 0.004
	s.Reload(next)

	assert.Equal(t, "follow", s.Motion.Mode().String())
	s.Router.Wheel(250)
	assert.InDelta(t, 1, s.Camera.Progress(), 1e-12)
	assert.Equal(t, int64(1), s.Status.Ints.Get(status.ConfigReloads).Load())
	assert.Equal(t, 4, s.Morph.Pending())
}

func TestRunAppliesCommandsAndStops(t *testing.T) {
	s := buildDefault(t)
	ctx, cancel := context.WithCancel(context.Background())

	cmds := make(chan Command, 1)
	cmds <- func(s *Scene) { s.Router.Wheel(1000) }

	frames := make(chan Frame, 64)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, time.Millisecond, cmds, func(f Frame) {
			select {
			case frames <- f:
			default:
			}
		})
	}()

	var last Frame
	deadline := time.After(5 * time.Second)
	for last.Camera.Progress < 2 {
		select {
		case last = <-frames:
		case <-deadline:
			t.Fatal("no frame with applied scroll")
		}
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
