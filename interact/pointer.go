package interact

import "github.com/lixenwraith/scroll-room/vmath"

// Rect is the viewport in device pixels
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Pointer is one pointer sample; NDC is derived from the client position
type Pointer struct {
	ClientX, ClientY float64
	NDC              vmath.Vec2F
}

// NewPointer maps a client position inside r
func NewPointer(clientX, clientY float64, r Rect) Pointer {
	return Pointer{ClientX: clientX, ClientY: clientY, NDC: NDC(clientX, clientY, r)}
}

// NDC maps client pixels to [-1, 1] with +Y up
// A zero-sized viewport maps everything to the center
func NDC(clientX, clientY float64, r Rect) vmath.Vec2F {
	if r.Width <= 0 || r.Height <= 0 {
		return vmath.Vec2F{}
	}
	return vmath.Vec2F{
		X: (clientX-r.Left)/r.Width*2 - 1,
		Y: -(clientY-r.Top)/r.Height*2 + 1,
	}
}
