package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

func TestSetFloorPinsRestingHeight(t *testing.T) {
	n := scene.NewNode("ogre")
	n.Position = vmath.V3F(1, 0.7, -14)
	a := New("ogre", n)

	n.Position.Y = 3
	a.SetFloor(vmath.V2F(2, -10))

	assert.Equal(t, vmath.V3F(2, 0.7, -10), a.Position())
	assert.Equal(t, vmath.V2F(2, -10), a.Floor())
}

func TestHandleSwapsToCloud(t *testing.T) {
	n := scene.NewNode("bot")
	a := New("bot", n)
	assert.Same(t, n, a.Handle())

	cloud := scene.NewNode("bot-points")
	a.Cloud = cloud
	a.Morphed = true
	assert.Same(t, cloud, a.Handle())
}
