// Package status collects engine telemetry for the HUD and the bridge status endpoint
package status

import "sync/atomic"

// Metric names published by the engine
const (
	Frames         = "engine.frames"
	FrameTime      = "engine.frame_ms"
	MorphFired     = "morph.fired"
	RippleActive   = "ripple.active"
	RippleTriggers = "ripple.triggers"
	MotionWalkers  = "motion.walkers"
	MotionMode     = "motion.mode"
	CameraProgress = "camera.progress"
	CameraView     = "camera.view"
	BridgeClients  = "bridge.clients"
	ConfigReloads  = "config.reloads"
)

// Registry groups metric cells by value type
// Producers cache cell pointers at construction and write atomics per frame
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a flat map for serialization
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
