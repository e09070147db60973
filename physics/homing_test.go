package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scroll-room/vmath"
)

func TestApproachNeverOvershoots(t *testing.T) {
	target := vmath.V2F(3, 4)

	r := Approach(vmath.V2F(0, 0), target, 100, 1e-8)
	require.False(t, r.Arrived)
	assert.Equal(t, target, r.Next, "large step lands on target")
}

func TestApproachStepLength(t *testing.T) {
	r := Approach(vmath.V2F(0, 0), vmath.V2F(3, 4), 1, 1e-8)
	assert.InDelta(t, 1, vmath.V2FMag(r.Step), 1e-12)
	assert.InDelta(t, 0.6, r.Next.X, 1e-12)
	assert.InDelta(t, 0.8, r.Next.Y, 1e-12)
}

func TestApproachArrivalEpsilon(t *testing.T) {
	r := Approach(vmath.V2F(1, 1), vmath.V2F(1, 1.00001), 1, 1e-6)
	assert.True(t, r.Arrived)
	assert.Equal(t, vmath.V2F(1, 1), r.Next, "arrival without movement")

	r = Approach(vmath.V2F(2, 2), vmath.V2F(2, 2), 1, 0)
	assert.True(t, r.Arrived, "zero distance counts as arrived")
}

func TestHeadingFacesTravel(t *testing.T) {
	assert.Equal(t, 0.0, Heading(vmath.V2F(0, 1)))
	assert.InDelta(t, math.Pi/2, Heading(vmath.V2F(1, 0)), 1e-12)
}
