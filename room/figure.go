package room

import (
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Figure kinds understood by NewFigure
const (
	FigureMechbot = "mechbot"
	FigureOgre    = "ogre"
	FigureTRex    = "trex"
	FigureBlock   = "block"
)

// part is one box of a figure in the figure's native units
type part struct {
	name   string
	size   vmath.Vec3F
	center vmath.Vec3F
	color  uint32
}

// Native units differ per kind so that the stock placement scales give
// figures of comparable height in the room
var figures = map[string][]part{
	FigureMechbot: {
		{name: "leg.l", size: vmath.V3F(4, 12, 4), center: vmath.V3F(-4, 6, 0), color: 0x6b7b8c},
		{name: "leg.r", size: vmath.V3F(4, 12, 4), center: vmath.V3F(4, 6, 0), color: 0x6b7b8c},
		{name: "torso", size: vmath.V3F(14, 10, 8), center: vmath.V3F(0, 17, 0), color: 0x9aa8b5},
		{name: "arm.l", size: vmath.V3F(3, 10, 3), center: vmath.V3F(-9, 16, 0), color: 0x6b7b8c},
		{name: "arm.r", size: vmath.V3F(3, 10, 3), center: vmath.V3F(9, 16, 0), color: 0x6b7b8c},
		{name: "head", size: vmath.V3F(7, 6, 7), center: vmath.V3F(0, 25, 0), color: 0xd0d8e0},
	},
	FigureOgre: {
		{name: "leg.l", size: vmath.V3F(0.3, 0.7, 0.3), center: vmath.V3F(-0.25, 0.35, 0), color: 0x3e5a2a},
		{name: "leg.r", size: vmath.V3F(0.3, 0.7, 0.3), center: vmath.V3F(0.25, 0.35, 0), color: 0x3e5a2a},
		{name: "body", size: vmath.V3F(0.9, 0.8, 0.6), center: vmath.V3F(0, 1.1, 0), color: 0x5c8a3a},
		{name: "head", size: vmath.V3F(0.45, 0.4, 0.4), center: vmath.V3F(0, 1.7, 0.05), color: 0x6fa348},
	},
	FigureTRex: {
		{name: "leg.l", size: vmath.V3F(0.6, 2, 0.8), center: vmath.V3F(-0.6, 1, 0), color: 0x7a4b2a},
		{name: "leg.r", size: vmath.V3F(0.6, 2, 0.8), center: vmath.V3F(0.6, 1, 0), color: 0x7a4b2a},
		{name: "body", size: vmath.V3F(1.8, 1.6, 3), center: vmath.V3F(0, 2.8, 0), color: 0x9c6236},
		{name: "tail", size: vmath.V3F(0.6, 0.6, 3), center: vmath.V3F(0, 2.6, -2.8), color: 0x7a4b2a},
		{name: "neck", size: vmath.V3F(0.8, 1.2, 0.8), center: vmath.V3F(0, 3.9, 1.4), color: 0x9c6236},
		{name: "head", size: vmath.V3F(1, 0.9, 1.8), center: vmath.V3F(0, 4.8, 2.0), color: 0xb8773f},
	},
	FigureBlock: {
		{name: "body", size: vmath.V3F(1, 1, 1), center: vmath.V3F(0, 0.5, 0), color: 0xb0b0b0},
	},
}

// FigureKinds lists the kinds NewFigure builds
func FigureKinds() []string {
	return []string{FigureMechbot, FigureOgre, FigureTRex, FigureBlock}
}

// NewFigure builds a box-figure group; unknown kinds fall back to a block
func NewFigure(name, kind string) *scene.Node {
	parts, ok := figures[kind]
	if !ok {
		parts = figures[FigureBlock]
	}

	root := scene.NewNode(name)
	for _, p := range parts {
		n := scene.NewMeshNode(name+"."+p.name, scene.NewBoxMesh(p.size.X, p.size.Y, p.size.Z), scene.Hex(p.color))
		n.Position = p.center
		root.Add(n)
	}
	return root
}
