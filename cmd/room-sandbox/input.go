package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scroll-room/engine"
	"github.com/lixenwraith/scroll-room/interact"
	"github.com/lixenwraith/scroll-room/room"
)

// wheelStep is the pixel delta one wheel notch reports in a browser
const wheelStep = 100.0

type action int

const (
	actionNone action = iota
	actionQuit
	actionMute
)

// input turns terminal events into scene commands
// Runs on the event goroutine; only the returned commands touch the scene
type input struct {
	dragging bool
}

func cellPointer(x, y, w, h int) interact.Pointer {
	return interact.NewPointer(float64(x)+0.5, float64(y)+0.5, interact.Rect{Width: float64(w), Height: float64(h)})
}

func (in *input) translate(ev tcell.Event, w, h int) (engine.Command, action) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventMouse:
		return in.mouse(ev, w, h), actionNone
	}
	return nil, actionNone
}

func (in *input) key(ev *tcell.EventKey) (engine.Command, action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, actionQuit
	case tcell.KeyPgDn:
		return func(s *engine.Scene) { s.Router.Wheel(wheelStep * 5) }, actionNone
	case tcell.KeyPgUp:
		return func(s *engine.Scene) { s.Router.Wheel(-wheelStep * 5) }, actionNone
	case tcell.KeyRune:
	default:
		return nil, actionNone
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return nil, actionQuit
	case r == 'm':
		return nil, actionMute
	case r == ' ':
		return func(s *engine.Scene) { s.Driver.Clock().Toggle() }, actionNone
	case r == 'c':
		return func(s *engine.Scene) { s.Router.ClearFollowTarget() }, actionNone
	case r == 'j':
		return func(s *engine.Scene) { s.Router.Wheel(wheelStep) }, actionNone
	case r == 'k':
		return func(s *engine.Scene) { s.Router.Wheel(-wheelStep) }, actionNone
	case r >= '1' && r <= '9':
		i := int(r - '1')
		return func(s *engine.Scene) {
			if states := s.Camera.States(); i < len(states) {
				s.Camera.JumpTo(states[i].Name)
			}
		}, actionNone
	}
	return nil, actionNone
}

func (in *input) mouse(ev *tcell.EventMouse, w, h int) engine.Command {
	x, y := ev.Position()
	p := cellPointer(x, y, w, h)
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return func(s *engine.Scene) { s.Router.Wheel(-wheelStep) }
	case buttons&tcell.WheelDown != 0:
		return func(s *engine.Scene) { s.Router.Wheel(wheelStep) }
	case buttons&tcell.Button1 != 0 && !in.dragging:
		in.dragging = true
		return func(s *engine.Scene) { s.Router.PointerDown(p) }
	case buttons&tcell.Button1 != 0:
		return func(s *engine.Scene) { s.Router.PointerMove(p) }
	case in.dragging:
		in.dragging = false
		return func(s *engine.Scene) { s.Router.PointerUp() }
	}
	// hover still ripples walls
	return func(s *engine.Scene) { s.Router.PointerMove(p) }
}

// panFor places a wall's ripple cue in the stereo field
func panFor(surface string) float64 {
	switch surface {
	case room.NameLeft:
		return -0.8
	case room.NameRight:
		return 0.8
	}
	return 0
}
