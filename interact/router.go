package interact

import (
	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Projector turns a pointer position into a world ray through the live camera
type Projector interface {
	PointerRay(ndc vmath.Vec2F) vmath.Ray
}

// Scroller consumes wheel deltas
type Scroller interface {
	Scroll(rawDelta float64)
}

// Follower receives floor clicks as a chase target
type Follower interface {
	SetFollowTarget(x, z float64)
	ClearFollowTarget()
}

// Rippler is the wall surface set and its trigger
type Rippler interface {
	Surfaces() []*scene.Node
	Trigger(surface *scene.Node, uv vmath.Vec2F) bool
}

// RouterConfig wires a Router to its collaborators
// Camera, Follow, Ripples and Floor are optional
type RouterConfig struct {
	Raycaster     scene.Raycaster
	Projector     Projector
	Selection     *Selection
	Ripples       Rippler
	Camera        Scroller
	Follow        Follower
	Floor         *scene.Node
	RotationSpeed float64 // zero uses parameter.DragRotationSpeed
}

// Router holds the drag state shared by every pointer handler
// Handlers and frame updates must run on the same goroutine
type Router struct {
	cfg RouterConfig

	dragging bool
	prevX    float64
	active   *scene.Node
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.RotationSpeed == 0 {
		cfg.RotationSpeed = parameter.DragRotationSpeed
	}
	if cfg.Selection == nil {
		cfg.Selection = NewSelection()
	}
	return &Router{cfg: cfg}
}

func (r *Router) Selection() *Selection { return r.cfg.Selection }

// Active is the root being dragged, nil when none
func (r *Router) Active() *scene.Node { return r.active }
func (r *Router) Dragging() bool      { return r.dragging }

// PointerDown starts a drag and picks the nearest selectable under the pointer
// A miss on every selectable lands on the floor as a follow target when configured
func (r *Router) PointerDown(p Pointer) {
	r.dragging = true
	r.prevX = p.ClientX
	r.active = nil

	ray := r.cfg.Projector.PointerRay(p.NDC)
	if hit, ok := r.cfg.Raycaster.Intersect(ray, r.cfg.Selection.Roots(), true); ok {
		r.active = r.cfg.Selection.Owner(hit.Node)
		return
	}

	if r.cfg.Floor == nil || r.cfg.Follow == nil {
		return
	}
	if hit, ok := r.cfg.Raycaster.Intersect(ray, []*scene.Node{r.cfg.Floor}, false); ok {
		r.cfg.Follow.SetFollowTarget(hit.Point.X, hit.Point.Z)
	}
}

// PointerMove rotates the dragged root, then ripples whichever wall is under the pointer
func (r *Router) PointerMove(p Pointer) {
	if r.dragging && r.active != nil {
		dx := p.ClientX - r.prevX
		r.prevX = p.ClientX
		r.active.SetYaw(r.active.Yaw() + dx*r.cfg.RotationSpeed)
	}

	if r.cfg.Ripples == nil {
		return
	}
	ray := r.cfg.Projector.PointerRay(p.NDC)
	hit, ok := r.cfg.Raycaster.Intersect(ray, r.cfg.Ripples.Surfaces(), false)
	if ok && hit.HasUV {
		r.cfg.Ripples.Trigger(hit.Node, hit.UV)
	}
}

// PointerUp ends the drag; it is valid without a preceding PointerDown
func (r *Router) PointerUp() {
	r.dragging = false
	r.active = nil
}

// Wheel forwards the raw wheel delta to the camera
func (r *Router) Wheel(deltaY float64) {
	if r.cfg.Camera != nil {
		r.cfg.Camera.Scroll(deltaY)
	}
}

// ClearFollowTarget stops follow walkers where they are
func (r *Router) ClearFollowTarget() {
	if r.cfg.Follow != nil {
		r.cfg.Follow.ClearFollowTarget()
	}
}
