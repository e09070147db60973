// Package bridge streams engine frames to browser renderers over WebSocket
// and turns their pointer input into engine commands
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/scroll-room/engine"
	"github.com/lixenwraith/scroll-room/interact"
)

// Input message types
const (
	TypePointerDown = "pointerdown"
	TypePointerMove = "pointermove"
	TypePointerUp   = "pointerup"
	TypeWheel       = "wheel"
	TypeClearTarget = "clear_target"
	TypeJump        = "jump"
	TypePause       = "pause"
)

var (
	ErrUnknownType = errors.New("bridge: unknown message type")
	ErrMissingView = errors.New("bridge: jump without view")
)

// Input is one client message; X and Y are client pixels inside a
// Width by Height viewport
type Input struct {
	Type   string  `json:"type"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	View   string  `json:"view,omitempty"`
}

func (in Input) pointer() interact.Pointer {
	return interact.NewPointer(in.X, in.Y, interact.Rect{Width: in.Width, Height: in.Height})
}

// Decode parses a client message into a command for the frame goroutine
func Decode(b []byte) (engine.Command, error) {
	var in Input
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return in.Command()
}

func (in Input) Command() (engine.Command, error) {
	switch in.Type {
	case TypePointerDown:
		p := in.pointer()
		return func(s *engine.Scene) { s.Router.PointerDown(p) }, nil
	case TypePointerMove:
		p := in.pointer()
		return func(s *engine.Scene) { s.Router.PointerMove(p) }, nil
	case TypePointerUp:
		return func(s *engine.Scene) { s.Router.PointerUp() }, nil
	case TypeWheel:
		d := in.Delta
		return func(s *engine.Scene) { s.Router.Wheel(d) }, nil
	case TypeClearTarget:
		return func(s *engine.Scene) { s.Router.ClearFollowTarget() }, nil
	case TypeJump:
		if in.View == "" {
			return nil, ErrMissingView
		}
		v := in.View
		return func(s *engine.Scene) { s.Camera.JumpTo(v) }, nil
	case TypePause:
		return func(s *engine.Scene) { s.Driver.Clock().Toggle() }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, in.Type)
	}
}
