package camera

import (
	"math"

	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/vmath"
)

var worldUp = vmath.Vec3F{Y: 1}

// Lens is a perspective projection with a vertical field of view in degrees
type Lens struct {
	FovY   float64
	Aspect float64
	Near   float64
}

// DefaultLens matches the room's layout camera
func DefaultLens(aspect float64) Lens {
	return Lens{FovY: parameter.CameraFovY, Aspect: aspect, Near: parameter.CameraNear}
}

// Basis returns the orthonormal right/up/forward frame looking from eye to target
// Looking straight down keeps screen-up toward -Z (the back wall)
func Basis(p Pose) (right, up, forward vmath.Vec3F) {
	forward = vmath.V3FNormalize(vmath.V3FSub(p.Target, p.Eye))
	if vmath.V3FMagSq(forward) == 0 {
		forward = vmath.Vec3F{Z: -1}
	}
	right = vmath.V3FCross(forward, worldUp)
	if vmath.V3FMagSq(right) < vmath.Epsilon {
		right = vmath.V3FCross(forward, vmath.Vec3F{Z: -1})
	}
	right = vmath.V3FNormalize(right)
	up = vmath.V3FCross(right, forward)
	return right, up, forward
}

// Ray casts from the eye through the normalized device coordinate ndc
// ndc is in [-1, 1] on both axes with +Y up
func (l Lens) Ray(p Pose, ndc vmath.Vec2F) vmath.Ray {
	right, up, forward := Basis(p)
	halfH := math.Tan(l.FovY * math.Pi / 360)
	halfW := halfH * l.Aspect

	dir := vmath.V3FAdd(forward, vmath.V3FScale(right, ndc.X*halfW))
	dir = vmath.V3FAdd(dir, vmath.V3FScale(up, ndc.Y*halfH))
	dir = vmath.V3FNormalize(dir)
	return vmath.Ray{Origin: vmath.V3FAdd(p.Eye, vmath.V3FScale(dir, l.Near)), Dir: dir}
}

// Project maps a world point to ndc; ok is false behind the eye
func (l Lens) Project(p Pose, world vmath.Vec3F) (ndc vmath.Vec2F, ok bool) {
	right, up, forward := Basis(p)
	rel := vmath.V3FSub(world, p.Eye)
	depth := vmath.V3FDot(rel, forward)
	if depth <= vmath.Epsilon {
		return vmath.Vec2F{}, false
	}
	halfH := math.Tan(l.FovY * math.Pi / 360)
	halfW := halfH * l.Aspect
	return vmath.Vec2F{
		X: vmath.V3FDot(rel, right) / (depth * halfW),
		Y: vmath.V3FDot(rel, up) / (depth * halfH),
	}, true
}

// Projector turns pointer positions into world rays through the live camera
type Projector struct {
	Lens   Lens
	Camera *Choreographer
}

func NewProjector(lens Lens, c *Choreographer) *Projector {
	return &Projector{Lens: lens, Camera: c}
}

// PointerRay uses the pose implied by the current progress, so input between
// frames sees scroll already applied
func (p *Projector) PointerRay(ndc vmath.Vec2F) vmath.Ray {
	return p.Lens.Ray(p.Camera.Pose(), ndc)
}
