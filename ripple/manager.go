// Package ripple tracks the time-decaying disturbance on each wall surface and
// exposes it as shader uniforms
package ripple

import (
	"time"

	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Effect is the ripple state of one surface
// Re-triggering an active effect restarts it at the new center; effects never stack
type Effect struct {
	Surface *scene.Node
	Center  vmath.Vec2F // surface UV of the last trigger
	Elapsed time.Duration
	Active  bool
}

// Options configures a Manager
type Options struct {
	Duration time.Duration
}

// DefaultOptions keeps ripples alive for parameter.RippleDuration
func DefaultOptions() Options {
	return Options{Duration: parameter.RippleDuration}
}

// Manager owns one effect per registered surface, in registration order
type Manager struct {
	duration time.Duration
	effects  []Effect
	index    map[*scene.Node]int
	surfaces []*scene.Node

	// OnTrigger runs after a successful trigger
	OnTrigger func(e Effect)
}

func NewManager(opts Options) *Manager {
	return &Manager{
		duration: opts.Duration,
		index:    make(map[*scene.Node]int),
	}
}

// Add registers surface with an inactive effect centered at (0.5, 0.5)
func (m *Manager) Add(surface *scene.Node) {
	if surface == nil {
		return
	}
	if _, ok := m.index[surface]; ok {
		return
	}
	m.index[surface] = len(m.effects)
	m.effects = append(m.effects, Effect{Surface: surface, Center: vmath.V2F(0.5, 0.5)})
	m.surfaces = append(m.surfaces, surface)
}

// Surfaces is the hit-test set; callers must not modify it
func (m *Manager) Surfaces() []*scene.Node { return m.surfaces }

// Trigger starts or restarts the ripple on surface at uv
// Unknown surfaces are ignored and report false
func (m *Manager) Trigger(surface *scene.Node, uv vmath.Vec2F) bool {
	i, ok := m.index[surface]
	if !ok {
		return false
	}
	e := &m.effects[i]
	e.Center = uv
	e.Elapsed = 0
	e.Active = true

	if m.OnTrigger != nil {
		m.OnTrigger(*e)
	}
	return true
}

// Update ages active effects; an effect deactivates once elapsed exceeds the duration
func (m *Manager) Update(dt time.Duration) {
	for i := range m.effects {
		e := &m.effects[i]
		if !e.Active {
			continue
		}
		e.Elapsed += dt
		if e.Elapsed > m.duration {
			e.Active = false
		}
	}
}

// Effect returns the state for surface
func (m *Manager) Effect(surface *scene.Node) (Effect, bool) {
	i, ok := m.index[surface]
	if !ok {
		return Effect{}, false
	}
	return m.effects[i], true
}

// Effects returns a copy of every effect in registration order
func (m *Manager) Effects() []Effect {
	return append([]Effect(nil), m.effects...)
}

// ActiveCount is the number of surfaces currently rippling
func (m *Manager) ActiveCount() int {
	n := 0
	for i := range m.effects {
		if m.effects[i].Active {
			n++
		}
	}
	return n
}

// Priority implements engine.System
func (m *Manager) Priority() int { return parameter.PriorityRipple }
