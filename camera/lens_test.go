package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/scroll-room/vmath"
)

func TestLensCenterRay(t *testing.T) {
	l := Lens{FovY: 45, Aspect: 16.0 / 9.0}
	pose := Pose{Eye: vmath.V3F(0, 1, 0), Target: vmath.V3F(0, 1, -5)}

	r := l.Ray(pose, vmath.Vec2F{})
	assert.InDelta(t, 0, r.Dir.X, 1e-12)
	assert.InDelta(t, 0, r.Dir.Y, 1e-12)
	assert.InDelta(t, -1, r.Dir.Z, 1e-12)
	assert.Equal(t, pose.Eye, r.Origin)
}

func TestLensEdgeRays(t *testing.T) {
	l := Lens{FovY: 90, Aspect: 1}
	pose := Pose{Eye: vmath.V3F(0, 0, 0), Target: vmath.V3F(0, 0, -1)}

	right := l.Ray(pose, vmath.V2F(1, 0))
	assert.InDelta(t, right.Dir.X, -right.Dir.Z, 1e-9)
	assert.Greater(t, right.Dir.X, 0.0)

	top := l.Ray(pose, vmath.V2F(0, 1))
	assert.InDelta(t, top.Dir.Y, -top.Dir.Z, 1e-9)
	assert.Greater(t, top.Dir.Y, 0.0)
}

func TestLensLookingDown(t *testing.T) {
	l := Lens{FovY: 45, Aspect: 1}
	pose := Pose{Eye: vmath.V3F(0, 10, -5), Target: vmath.V3F(0, 0, -5)}

	right, up, forward := Basis(pose)
	assert.InDelta(t, -1, forward.Y, 1e-12)
	assert.InDelta(t, 1, right.X, 1e-12)
	assert.InDelta(t, -1, up.Z, 1e-12)

	// screen top points at the back wall
	r := l.Ray(pose, vmath.V2F(0, 1))
	assert.Less(t, r.Dir.Z, 0.0)
}

func TestProjectInvertsRay(t *testing.T) {
	l := Lens{FovY: 45, Aspect: 1.5}
	pose := Pose{Eye: vmath.V3F(1, 2, 3), Target: vmath.V3F(-2, 0, -4)}

	ndc := vmath.V2F(0.3, -0.4)
	r := l.Ray(pose, ndc)
	got, ok := l.Project(pose, r.At(7))
	assert.True(t, ok)
	assert.InDelta(t, ndc.X, got.X, 1e-9)
	assert.InDelta(t, ndc.Y, got.Y, 1e-9)

	_, ok = l.Project(pose, vmath.V3F(4, 4, 10))
	assert.False(t, ok)
}

func TestProjectorUsesLiveProgress(t *testing.T) {
	c, err := New([]Viewpoint{
		{Name: "a", Eye: vmath.V3F(0, 0, 0), Target: vmath.V3F(0, 0, -1)},
		{Name: "b", Eye: vmath.V3F(4, 0, 0), Target: vmath.V3F(4, 0, -1)},
	}, 1)
	assert.NoError(t, err)

	p := NewProjector(Lens{FovY: 45, Aspect: 1}, c)
	c.SetProgress(1)
	assert.InDelta(t, 4, p.PointerRay(vmath.Vec2F{}).Origin.X, 1e-12)
}
