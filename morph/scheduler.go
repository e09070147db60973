// Package morph dissolves actors into static point clouds once a shared clock
// passes their delay
package morph

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/scroll-room/actor"
	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/vmath"
)

// Registrar receives every point-cloud container so hit-testing can reach it
// Register reports whether the node was newly added
type Registrar interface {
	Register(node *scene.Node) bool
}

// Job is one pending or fired transition
type Job struct {
	Actor     *actor.Actor
	Delay     time.Duration
	PointSize float64
	Fired     bool
}

// Options configures a Scheduler
type Options struct {
	Delay  time.Duration
	Logger *slog.Logger
}

// DefaultOptions dissolves after parameter.MorphDelay
func DefaultOptions() Options {
	return Options{Delay: parameter.MorphDelay}
}

// Scheduler owns the morph batch and its shared clock
type Scheduler struct {
	stage    *scene.Node
	delay    time.Duration
	logger   *slog.Logger
	jobs     []Job
	clock    time.Duration
	registry Registrar

	// OnFire runs after each transition, on the frame goroutine
	OnFire func(job Job)
}

// NewScheduler attaches future point clouds under stage
func NewScheduler(stage *scene.Node, opts Options) *Scheduler {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{stage: stage, delay: opts.Delay, logger: opts.Logger}
}

// Initialize replaces the batch and resets the shared clock to start
// pointSizes is parallel to actors; missing or non-positive entries use the default size
// Actors that already morphed in an earlier batch are carried as fired
func (s *Scheduler) Initialize(actors []*actor.Actor, start time.Duration, pointSizes []float64, registry Registrar) {
	s.jobs = s.jobs[:0]
	s.clock = start
	s.registry = registry

	for i, a := range actors {
		if a == nil {
			continue
		}
		size := parameter.DefaultPointSize
		if i < len(pointSizes) && pointSizes[i] > 0 {
			size = pointSizes[i]
		}
		s.jobs = append(s.jobs, Job{
			Actor:     a,
			Delay:     s.delay,
			PointSize: size,
			Fired:     a.Morphed,
		})
	}
}

// Clock is the shared clock value
func (s *Scheduler) Clock() time.Duration { return s.clock }

// Jobs returns a copy of the batch
func (s *Scheduler) Jobs() []Job {
	return append([]Job(nil), s.jobs...)
}

// Pending counts jobs that have not fired
func (s *Scheduler) Pending() int {
	n := 0
	for i := range s.jobs {
		if !s.jobs[i].Fired {
			n++
		}
	}
	return n
}

// Update advances the shared clock and fires every due job
func (s *Scheduler) Update(dt time.Duration) {
	s.clock += dt
	for i := range s.jobs {
		j := &s.jobs[i]
		if j.Fired || s.clock < j.Delay {
			continue
		}
		s.fire(j)
	}
}

func (s *Scheduler) fire(j *Job) {
	a := j.Actor
	cloud := Dissolve(a.Node, j.PointSize)
	cloud.Name = a.Name + ".points"

	a.Node.Visible = false
	if s.stage != nil {
		s.stage.Add(cloud)
	}
	a.Cloud = cloud
	a.Morphed = true
	j.Fired = true

	if s.registry != nil {
		s.registry.Register(cloud)
	}

	s.logger.Info("actor morphed",
		"actor", a.Name,
		"clouds", len(cloud.Children()),
		"clock", s.clock)

	if s.OnFire != nil {
		s.OnFire(*j)
	}
}

// Dissolve clones every mesh leaf under root into world-space point primitives
// The returned container sits at the origin with identity transform
func Dissolve(root *scene.Node, pointSize float64) *scene.Node {
	group := scene.NewNode(root.Name + ".points")
	root.Leaves(func(leaf *scene.Node, world vmath.Mat4F) {
		pts := &scene.Points{
			Positions: leaf.Mesh.WorldPositions(world),
			Size:      pointSize,
			Opacity:   parameter.PointOpacity,
		}
		group.Add(scene.NewPointsNode(leaf.Name+".points", pts, leaf.Color))
	})
	return group
}

// Priority implements engine.System
func (s *Scheduler) Priority() int { return parameter.PriorityMorph }
