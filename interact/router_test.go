package interact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scroll-room/ripple"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

// orthoProjector casts straight down -Z from the pointer's NDC, scaled to world units
type orthoProjector struct{ scale float64 }

func (o orthoProjector) PointerRay(ndc vmath.Vec2F) vmath.Ray {
	return vmath.NewRay(vmath.V3F(ndc.X*o.scale, ndc.Y*o.scale, 10), vmath.V3F(0, 0, -1))
}

type scroller struct{ total float64 }

func (s *scroller) Scroll(d float64) { s.total += d }

type follower struct {
	target vmath.Vec2F
	set    bool
}

func (f *follower) SetFollowTarget(x, z float64) { f.target, f.set = vmath.V2F(x, z), true }
func (f *follower) ClearFollowTarget()           { f.set = false }

type fixture struct {
	router *Router
	model  *scene.Node
	part   *scene.Node
	wall   *scene.Node
	ripple *ripple.Manager
	camera *scroller
	follow *follower
}

// model: a group at the origin with one box part; wall: a quad behind it at z = -5
func newFixture() *fixture {
	model := scene.NewNode("model")
	part := scene.NewMeshNode("model.part", scene.NewBoxMesh(1, 1, 1), scene.White)
	model.Add(part)

	wall := scene.NewMeshNode("wall", scene.NewQuadMesh(10, 10), scene.White)
	wall.Position = vmath.V3F(0, 0, -5)

	sel := NewSelection()
	sel.Register(model)

	rip := ripple.NewManager(ripple.DefaultOptions())
	rip.Add(wall)

	f := &fixture{model: model, part: part, wall: wall, ripple: rip, camera: &scroller{}, follow: &follower{}}
	f.router = NewRouter(RouterConfig{
		Raycaster: scene.NewPicker(),
		Projector: orthoProjector{scale: 5},
		Selection: sel,
		Ripples:   rip,
		Camera:    f.camera,
	})
	return f
}

func at(x float64, ndc vmath.Vec2F) Pointer {
	return Pointer{ClientX: x, NDC: ndc}
}

func TestDragRotatesOwnerRoot(t *testing.T) {
	f := newFixture()

	f.router.PointerDown(at(100, vmath.Vec2F{}))
	require.Same(t, f.model, f.router.Active())

	f.router.PointerMove(at(130, vmath.Vec2F{}))
	f.router.PointerMove(at(120, vmath.Vec2F{}))
	assert.InDelta(t, 0.2, f.model.Yaw(), 1e-12)
	assert.Zero(t, f.part.Yaw())

	f.router.PointerUp()
	assert.Nil(t, f.router.Active())
	f.router.PointerMove(at(500, vmath.Vec2F{}))
	assert.InDelta(t, 0.2, f.model.Yaw(), 1e-12)
}

func TestPointerDownMissClearsActive(t *testing.T) {
	f := newFixture()
	f.router.PointerDown(at(0, vmath.Vec2F{}))
	require.NotNil(t, f.router.Active())

	f.router.PointerUp()
	f.router.PointerDown(at(0, vmath.V2F(0.8, 0.8)))
	assert.Nil(t, f.router.Active())
	assert.True(t, f.router.Dragging())

	f.router.PointerMove(at(50, vmath.V2F(0.8, 0.8)))
	assert.Zero(t, f.model.Yaw())
}

func TestHoverTriggersRippleWithUV(t *testing.T) {
	f := newFixture()

	// world (2.5, 2.5) on a 10x10 quad centered at the origin is uv (0.75, 0.75)
	f.router.PointerMove(at(0, vmath.V2F(0.5, 0.5)))

	e, ok := f.ripple.Effect(f.wall)
	require.True(t, ok)
	assert.True(t, e.Active)
	assert.InDelta(t, 0.75, e.Center.X, 1e-9)
	assert.InDelta(t, 0.75, e.Center.Y, 1e-9)
}

func TestHoverOffWallDoesNothing(t *testing.T) {
	f := newFixture()
	f.router.PointerMove(at(0, vmath.V2F(1.5, 0)))
	assert.Zero(t, f.ripple.ActiveCount())
}

func TestPointerUpWithoutDown(t *testing.T) {
	f := newFixture()
	f.router.PointerUp()
	assert.False(t, f.router.Dragging())
	assert.Nil(t, f.router.Active())
}

func TestWheelForwardsToCamera(t *testing.T) {
	f := newFixture()
	f.router.Wheel(120)
	f.router.Wheel(-20)
	assert.Equal(t, 100.0, f.camera.total)
}

func TestFloorClickSetsFollowTarget(t *testing.T) {
	floor := scene.NewMeshNode("floor", scene.NewQuadMesh(20, 20), scene.White)
	floor.Rotation.X = -math.Pi / 2

	fl := &follower{}
	r := NewRouter(RouterConfig{
		Raycaster: scene.NewPicker(),
		Projector: downProjector{},
		Follow:    fl,
		Floor:     floor,
	})

	r.PointerDown(at(0, vmath.V2F(0.3, -0.4)))
	require.True(t, fl.set)
	assert.InDelta(t, 3, fl.target.X, 1e-9)
	assert.InDelta(t, -4, fl.target.Y, 1e-9)

	r.ClearFollowTarget()
	assert.False(t, fl.set)
}

// downProjector looks straight down at the floor, NDC scaled by 10 onto X/Z
type downProjector struct{}

func (downProjector) PointerRay(ndc vmath.Vec2F) vmath.Ray {
	return vmath.NewRay(vmath.V3F(ndc.X*10, 5, ndc.Y*10), vmath.V3F(0, -1, 0))
}

func TestSelectableHitSkipsFollowTarget(t *testing.T) {
	f := newFixture()
	floor := scene.NewMeshNode("floor", scene.NewQuadMesh(20, 20), scene.White)
	f.router.cfg.Floor = floor
	f.router.cfg.Follow = f.follow

	f.router.PointerDown(at(0, vmath.Vec2F{}))
	assert.False(t, f.follow.set)
}

func TestNDC(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 200, Height: 100}
	tests := []struct {
		x, y float64
		want vmath.Vec2F
	}{
		{10, 20, vmath.V2F(-1, 1)},
		{210, 120, vmath.V2F(1, -1)},
		{110, 70, vmath.V2F(0, 0)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NDC(tt.x, tt.y, r))
	}
	assert.Equal(t, vmath.Vec2F{}, NDC(5, 5, Rect{}))

	p := NewPointer(110, 20, r)
	assert.Equal(t, 110.0, p.ClientX)
	assert.Equal(t, vmath.V2F(0, 1), p.NDC)
}
