package room

import (
	"math"

	"github.com/lixenwraith/scroll-room/camera"
	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/physics"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Surface names, shared with renderers that texture walls by name
const (
	NameStage = "stage"
	NameFloor = "floor"
	NameBack  = "wall.back"
	NameLeft  = "wall.left"
	NameRight = "wall.right"
)

var (
	FloorColor = scene.Hex(0x050608)
	WallColor  = scene.Hex(0x1c2430)
)

// Room is the built scene shell; Stage is the root every node hangs from
type Room struct {
	Layout Layout
	Stage  *scene.Node
	Floor  *scene.Node
	Back   *scene.Node
	Left   *scene.Node
	Right  *scene.Node
}

// Build creates the floor and the three walls under a fresh stage
func Build(l Layout) *Room {
	r := &Room{Layout: l, Stage: scene.NewNode(NameStage)}
	d := l.WallDistance

	r.Floor = scene.NewMeshNode(NameFloor, scene.NewQuadMesh(l.WallWidth, d), FloorColor)
	r.Floor.Rotation.X = -math.Pi / 2
	r.Floor.Position = vmath.V3F(0, l.FloorY, -d/2)

	side := scene.NewQuadMesh(d, l.WallHeight)

	r.Left = scene.NewMeshNode(NameLeft, side, WallColor)
	r.Left.Rotation.Y = math.Pi / 2
	r.Left.Scale.Y = l.HeightMultiplier
	r.Left.Position = vmath.V3F(-l.WallWidth/2, l.EyeY, -d/2)

	r.Right = scene.NewMeshNode(NameRight, side, WallColor)
	r.Right.Rotation.Y = -math.Pi / 2
	r.Right.Scale.Y = l.HeightMultiplier
	r.Right.Position = vmath.V3F(l.WallWidth/2, l.EyeY, -d/2)

	r.Back = scene.NewMeshNode(NameBack, scene.NewQuadMesh(l.WallWidth, l.WallHeight), WallColor)
	r.Back.Scale.Y = l.HeightMultiplier
	r.Back.Position = vmath.V3F(0, l.EyeY, -d)

	r.Stage.Add(r.Floor)
	r.Stage.Add(r.Left)
	r.Stage.Add(r.Right)
	r.Stage.Add(r.Back)
	return r
}

// Walls returns the ripple surfaces in a stable order
func (r *Room) Walls() []*scene.Node {
	return []*scene.Node{r.Back, r.Left, r.Right}
}

// Bounds is the walkable floor inset by margin
func (r *Room) Bounds(margin float64) physics.Bounds {
	return r.Layout.Bounds(margin)
}

// Viewpoints are the scroll stops: door, back wall, right wall, left wall, floor
// Each face stop sits half the room depth from the face
func (r *Room) Viewpoints() []camera.Viewpoint {
	l := r.Layout
	d := l.WallDistance
	view := d / 2

	back := vmath.V3F(0, l.EyeY, -d)
	right := vmath.V3F(l.WallWidth/2, l.EyeY, -d/2)
	left := vmath.V3F(-l.WallWidth/2, l.EyeY, -d/2)
	floor := vmath.V3F(0, l.FloorY, -d/2)

	return []camera.Viewpoint{
		{Name: "door", Eye: vmath.V3F(0, l.EyeY, 0), Target: back},
		{Name: "back", Eye: vmath.V3F(0, l.EyeY, back.Z+view), Target: back},
		{Name: "right", Eye: vmath.V3F(right.X-view, l.EyeY, right.Z), Target: right},
		{Name: "left", Eye: vmath.V3F(left.X+view, l.EyeY, left.Z), Target: left},
		{Name: "floor", Eye: vmath.V3F(0, floor.Y+view, floor.Z), Target: floor},
	}
}

// PlaceOnFloor scales node uniformly and rests its lowest point on the floor
// at (x, z), facing the door. Call before attaching node to a transformed parent
func (r *Room) PlaceOnFloor(node *scene.Node, x, z, scale, yOffset float64) {
	node.Scale = vmath.V3F(scale, scale, scale)
	node.Position = vmath.Vec3F{}
	node.Rotation = vmath.Euler{}

	minY := 0.0
	if box := node.WorldBounds(); !box.IsEmpty() {
		minY = box.Min.Y
	}
	node.Position = vmath.V3F(x, r.Layout.FloorY-minY+parameter.FloorClearance+yOffset, z)
	node.Rotation.Y = math.Pi
}
