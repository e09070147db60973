package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scroll-room/camera"
	"github.com/lixenwraith/scroll-room/engine"
	"github.com/lixenwraith/scroll-room/ripple"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

const (
	// cellAspect is the width/height ratio of one terminal cell
	cellAspect = 0.5

	rippleGridU = 32
	rippleGridV = 12
)

// canvas is a depth-tested character buffer the size of the screen
type canvas struct {
	w, h  int
	cells []cell
}

type cell struct {
	r     rune
	style tcell.Style
	depth float64
}

func newCanvas(w, h int) *canvas {
	c := &canvas{}
	c.resize(w, h)
	return c
}

func (c *canvas) resize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: tcell.StyleDefault, depth: math.Inf(1)}
	}
}

// toCell maps ndc to a cell; ok is false off screen
func (c *canvas) toCell(ndc vmath.Vec2F) (x, y int, ok bool) {
	x = int(math.Floor((ndc.X + 1) / 2 * float64(c.w)))
	y = int(math.Floor((1 - ndc.Y) / 2 * float64(c.h)))
	return x, y, x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *canvas) plot(x, y int, depth float64, r rune, style tcell.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	i := y*c.w + x
	if depth > c.cells[i].depth {
		return
	}
	c.cells[i] = cell{r: r, style: style, depth: depth}
}

// text writes over everything, used for the HUD
func (c *canvas) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.plot(x, y, math.Inf(-1), r, style)
		x++
	}
}

func (c *canvas) flush(screen tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			screen.SetContent(x, y, cl.r, nil, cl.style)
		}
	}
	screen.Show()
}

// view draws the scene through the live camera as a wireframe
type view struct {
	canvas *canvas
	lens   camera.Lens
	pose   camera.Pose
	muted  bool
}

func colorStyle(c scene.Color, scale float64) tcell.Style {
	r, g, b := scene.Color{R: c.R * scale, G: c.G * scale, B: c.B * scale}.RGB8()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func (v *view) project(p vmath.Vec3F) (x, y int, depth float64, ok bool) {
	ndc, front := v.lens.Project(v.pose, p)
	if !front {
		return 0, 0, 0, false
	}
	x, y, ok = v.canvas.toCell(ndc)
	return x, y, vmath.V3FMag(vmath.V3FSub(p, v.pose.Eye)), ok
}

// segment samples a world-space edge densely enough to leave no gaps on screen
func (v *view) segment(a, b vmath.Vec3F, r rune, style tcell.Style) {
	ax, ay, _, aok := v.project(a)
	bx, by, _, bok := v.project(b)
	steps := 24
	if aok && bok {
		steps = max(abs(bx-ax), abs(by-ay), 1) * 2
	}
	for i := 0; i <= steps; i++ {
		p := vmath.V3FLerp(a, b, float64(i)/float64(steps))
		if x, y, d, ok := v.project(p); ok {
			v.canvas.plot(x, y, d, r, style)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (v *view) mesh(n *scene.Node, world vmath.Mat4F, r rune, style tcell.Style) {
	pos := n.Mesh.WorldPositions(world)
	for i := 0; i < n.Mesh.TriangleCount(); i++ {
		a, b, c := n.Mesh.Triangle(i)
		v.segment(pos[a], pos[b], r, style)
		v.segment(pos[b], pos[c], r, style)
		v.segment(pos[c], pos[a], r, style)
	}
}

func (v *view) points(n *scene.Node) {
	world := n.WorldMatrix()
	style := colorStyle(n.Color, n.Points.Opacity)
	for _, p := range n.Points.Positions {
		if x, y, d, ok := v.project(world.MulPoint(p)); ok {
			v.canvas.plot(x, y, d, '·', style)
		}
	}
}

// wallRipple shades the wall where the wave displaces it
func (v *view) wallRipple(wall *scene.Node, u ripple.Uniforms) {
	if u.Active == 0 || wall.Mesh == nil {
		return
	}
	lo, hi := meshExtent(wall.Mesh)
	world := wall.WorldMatrix()
	for j := 0; j <= rippleGridV; j++ {
		for i := 0; i <= rippleGridU; i++ {
			uv := [2]float32{float32(i) / rippleGridU, float32(j) / rippleGridV}
			d := ripple.Displace(u, uv)
			mag := math.Hypot(float64(d[0]), float64(d[1]))
			if mag < 0.002 {
				continue
			}
			local := vmath.Vec3F{
				X: lo.X + float64(uv[0])*(hi.X-lo.X),
				Y: lo.Y + float64(uv[1])*(hi.Y-lo.Y),
			}
			if x, y, dd, ok := v.project(world.MulPoint(local)); ok {
				// nudge in front of the wall outline
				v.canvas.plot(x, y, dd-0.01, '~', colorStyle(scene.Color{R: 0.3, G: 0.7, B: 1}, math.Min(1, mag*40)))
			}
		}
	}
}

func meshExtent(m *scene.Mesh) (lo, hi vmath.Vec3F) {
	box := vmath.EmptyBox3F()
	for _, p := range m.Positions {
		box = box.Expand(p)
	}
	return box.Min, box.Max
}

// draw renders s through its camera, then the HUD from f
func (v *view) draw(s *engine.Scene, f engine.Frame) {
	v.canvas.clear()
	v.lens = s.Lens
	v.pose = s.Camera.Current()

	walls := make(map[*scene.Node]bool)
	for _, w := range s.Room.Walls() {
		walls[w] = true
	}

	s.Room.Stage.Leaves(func(leaf *scene.Node, world vmath.Mat4F) {
		if !leaf.EffectiveVisible() {
			return
		}
		switch {
		case leaf == s.Room.Floor:
			v.mesh(leaf, world, '.', colorStyle(scene.Color{R: 0.25, G: 0.25, B: 0.3}, 1))
		case walls[leaf]:
			v.mesh(leaf, world, '+', colorStyle(scene.Color{R: 0.5, G: 0.5, B: 0.55}, 1))
		default:
			glyph := '#'
			if isActive(s, leaf) {
				glyph = '@'
			}
			v.mesh(leaf, world, glyph, colorStyle(leaf.Color, 1))
		}
	})
	s.Room.Stage.Traverse(func(n *scene.Node) {
		if n.Points != nil && n.EffectiveVisible() {
			v.points(n)
		}
	})
	for _, e := range s.Ripples.Effects() {
		v.wallRipple(e.Surface, e.Uniforms())
	}

	if f.Follow != nil {
		p := vmath.V3F(f.Follow[0], s.Room.Layout.FloorY, f.Follow[1])
		if x, y, d, ok := v.project(p); ok {
			v.canvas.plot(x, y, d-0.05, 'X', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		}
	}

	v.hud(s, f)
}

func isActive(s *engine.Scene, leaf *scene.Node) bool {
	active := s.Router.Active()
	if active == nil {
		return false
	}
	for n := leaf; n != nil; n = n.Parent() {
		if n == active {
			return true
		}
	}
	return false
}

func (v *view) hud(s *engine.Scene, f engine.Frame) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	state := "run"
	if s.Driver.Clock().IsPaused() {
		state = "paused"
	}
	sound := "on"
	if v.muted {
		sound = "off"
	}
	line := fmt.Sprintf(" %s %.2f | %s x%d | morphed %d/%d | ripples %d | %s | sound %s | t=%.1fs ",
		f.Camera.View, f.Camera.Progress,
		s.Motion.Mode(), s.Motion.Len(),
		morphedCount(f), len(f.Actors),
		s.Ripples.ActiveCount(), state, sound, f.Time)
	v.canvas.text(0, 0, line, style)

	help := " wheel: move camera  drag: rotate  hover wall: ripple  1-5: views  space: pause  c: clear target  m: mute  q: quit "
	if v.canvas.h > 1 {
		v.canvas.text(0, v.canvas.h-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

func morphedCount(f engine.Frame) int {
	n := 0
	for _, a := range f.Actors {
		if a.Morphed {
			n++
		}
	}
	return n
}

// aspectFor is the viewport aspect of a w by h cell terminal
func aspectFor(w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return float64(w) * cellAspect / float64(h)
}
