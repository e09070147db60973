package ripple

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/scene"
)

// Uniforms are the per-surface shader inputs in GPU precision
type Uniforms struct {
	Center [2]float32 `json:"center"`
	Time   float32    `json:"time"`
	Active float32    `json:"active"` // 0 or 1
}

// Uniforms returns the shader values for surface; unknown surfaces are inactive
func (m *Manager) Uniforms(surface *scene.Node) Uniforms {
	e, ok := m.Effect(surface)
	if !ok {
		return Uniforms{Center: [2]float32{0.5, 0.5}}
	}
	return e.Uniforms()
}

func (e Effect) Uniforms() Uniforms {
	u := Uniforms{
		Center: [2]float32{float32(e.Center.X), float32(e.Center.Y)},
		Time:   float32(e.Elapsed.Seconds()),
	}
	if e.Active {
		u.Active = 1
	}
	return u
}

// Wave is the radial displacement magnitude at distance d from the center
func Wave(d, t float32) float32 {
	return parameter.RippleAmplitude *
		math32.Sin(parameter.RippleFrequency*d-parameter.RippleSpeed*t) *
		math32.Exp(-parameter.RippleFalloff*d)
}

// Displace samples the fragment shader's UV distortion at uv
// Renderers without shaders use it to offset texture lookups on the CPU
func Displace(u Uniforms, uv [2]float32) [2]float32 {
	if u.Active <= 0.5 {
		return uv
	}
	dx := uv[0] - u.Center[0]
	dy := uv[1] - u.Center[1]
	w := Wave(math32.Hypot(dx, dy), u.Time)

	// biased so the direction stays finite at the center
	bx := dx + parameter.RippleDirBias
	by := dy + parameter.RippleDirBias
	n := math32.Hypot(bx, by)
	return [2]float32{uv[0] + bx/n*w, uv[1] + by/n*w}
}
