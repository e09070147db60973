package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/scroll-room/actor"
	"github.com/lixenwraith/scroll-room/camera"
	"github.com/lixenwraith/scroll-room/config"
	"github.com/lixenwraith/scroll-room/interact"
	"github.com/lixenwraith/scroll-room/morph"
	"github.com/lixenwraith/scroll-room/motion"
	"github.com/lixenwraith/scroll-room/parameter"
	"github.com/lixenwraith/scroll-room/physics"
	"github.com/lixenwraith/scroll-room/ripple"
	"github.com/lixenwraith/scroll-room/room"
	"github.com/lixenwraith/scroll-room/scene"
	"github.com/lixenwraith/scroll-room/status"
)

// Options carries the ambient collaborators of a Scene
type Options struct {
	Logger *slog.Logger
	Status *status.Registry
	Clock  *PausableClock
}

// Scene is one room with its actors and every choreography system wired together
type Scene struct {
	Config config.Config
	Room   *room.Room
	Actors []*actor.Actor
	Moving []*actor.Actor

	Camera    *camera.Choreographer
	Lens      camera.Lens
	Projector *camera.Projector
	Motion    *motion.Controller
	Morph     *morph.Scheduler
	Ripples   *ripple.Manager
	Selection *interact.Selection
	Router    *interact.Router
	Driver    *Driver
	Status    *status.Registry

	// Event hooks, run on the frame goroutine
	OnMorph  func(a *actor.Actor)
	OnRipple func(surface *scene.Node)

	logger *slog.Logger
}

// Build lays out the room, places the configured models and wires the systems
// Frame order is camera, motion, morph, ripple, then telemetry
func Build(cfg config.Config, opts Options) (*Scene, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	layout := room.NewLayout(cfg.Room.Fov, cfg.Room.Aspect, cfg.Room.WallDistance, cfg.Room.FillFactor)
	s := &Scene{
		Config:    cfg,
		Room:      room.Build(layout),
		Selection: interact.NewSelection(),
		Status:    opts.Status,
		logger:    opts.Logger,
	}

	var morphable []*actor.Actor
	var pointSizes []float64
	for _, m := range cfg.Models {
		node := room.NewFigure(m.Name, m.Kind)
		s.Room.PlaceOnFloor(node, m.X, m.Z, m.Scale, 0)
		s.Room.Stage.Add(node)

		a := actor.New(m.Name, node)
		s.Actors = append(s.Actors, a)
		s.Selection.Register(node)
		if m.CanMove {
			s.Moving = append(s.Moving, a)
		}
		if m.Morphs() {
			morphable = append(morphable, a)
			pointSizes = append(pointSizes, m.PointSize)
		}
	}

	cam, err := camera.New(s.Room.Viewpoints(), cfg.Camera.ScrollSensitivity)
	if err != nil {
		return nil, fmt.Errorf("build camera: %w", err)
	}
	s.Camera = cam
	s.Lens = camera.Lens{FovY: cfg.Room.Fov, Aspect: cfg.Room.Aspect, Near: parameter.CameraNear}
	s.Projector = camera.NewProjector(s.Lens, cam)

	s.Motion = motion.NewController()
	s.applyMotion(cfg.Motion)

	s.Morph = morph.NewScheduler(s.Room.Stage, morph.Options{Delay: cfg.Morph.Delay(), Logger: opts.Logger})
	s.Morph.Initialize(morphable, 0, pointSizes, s.Selection)

	s.Ripples = ripple.NewManager(ripple.Options{Duration: cfg.Ripple.Duration()})
	for _, w := range s.Room.Walls() {
		s.Ripples.Add(w)
	}

	rc := interact.RouterConfig{
		Raycaster:     scene.NewPicker(),
		Projector:     s.Projector,
		Selection:     s.Selection,
		Ripples:       s.Ripples,
		Camera:        cam,
		Follow:        s.Motion,
		RotationSpeed: cfg.Interaction.RotationSpeed,
	}
	if cfg.Interaction.FloorTargets {
		rc.Floor = s.Room.Floor
	}
	s.Router = interact.NewRouter(rc)

	s.wireHooks()

	s.Driver = NewDriver(opts.Clock, opts.Status)
	s.Driver.AddSystem(s.Camera)
	s.Driver.AddSystem(s.Motion)
	s.Driver.AddSystem(s.Morph)
	s.Driver.AddSystem(s.Ripples)
	s.Driver.AddSystem(newStatusSystem(s))

	opts.Logger.Info("scene built",
		"actors", len(s.Actors),
		"moving", len(s.Moving),
		"morphable", len(morphable),
		"mode", cfg.Motion.Mode,
		"wall_width", layout.WallWidth,
		"wall_height", layout.WallHeight)
	return s, nil
}

func (s *Scene) wireHooks() {
	fired := s.Status.Ints.Get(status.MorphFired)
	triggers := s.Status.Ints.Get(status.RippleTriggers)

	s.Morph.OnFire = func(j morph.Job) {
		fired.Add(1)
		if s.OnMorph != nil {
			s.OnMorph(j.Actor)
		}
	}
	s.Ripples.OnTrigger = func(e ripple.Effect) {
		triggers.Add(1)
		if s.OnRipple != nil {
			s.OnRipple(e.Surface)
		}
	}
}

// applyMotion re-initializes the moving batch wholesale
func (s *Scene) applyMotion(mc config.MotionConfig) {
	var bounds *physics.Bounds
	if mc.Bounded {
		b := s.Room.Bounds(mc.BoundsMargin)
		bounds = &b
	}

	switch mc.Mode {
	case config.ModeFollow:
		s.Motion.InitFollow(s.Moving, motion.FollowOptions{
			Speed:       mc.FollowSpeed,
			Bounds:      bounds,
			AvoidRadius: mc.AvoidRadius,
		})
	default:
		s.Motion.InitOrbit(s.Moving, motion.OrbitOptions{
			BaseRadius:  mc.BaseRadius,
			BaseSpeed:   mc.BaseSpeed,
			Bounds:      bounds,
			AvoidRadius: mc.AvoidRadius,
			Seed:        mc.Seed,
		})
	}
}

// Reload applies a changed config between frames
// Motion restarts from the walkers' current positions; morph progress and
// camera progress are kept. Room and model changes need a rebuild
func (s *Scene) Reload(cfg config.Config) {
	s.applyMotion(cfg.Motion)
	s.Camera.SetSensitivity(cfg.Camera.ScrollSensitivity)
	s.Config.Motion = cfg.Motion
	s.Config.Camera = cfg.Camera
	s.Status.Ints.Get(status.ConfigReloads).Add(1)

	if cfg.Room != s.Config.Room || len(cfg.Models) != len(s.Config.Models) {
		s.logger.Warn("room or model changes ignored until restart")
	}
	s.logger.Info("motion reloaded", "mode", cfg.Motion.Mode, "walkers", s.Motion.Len())
}

// Step advances one frame by dt
func (s *Scene) Step(dt time.Duration) { s.Driver.Step(dt) }

// Tick advances one frame by the clock's delta
func (s *Scene) Tick() time.Duration { return s.Driver.Tick() }

// Snapshot captures the render-facing state of the current frame
func (s *Scene) Snapshot() Frame {
	pose := s.Camera.Current()
	f := Frame{
		Seq:  s.Driver.Frames(),
		Time: s.Driver.Elapsed().Seconds(),
		Camera: CameraFrame{
			Eye:      vec3(pose.Eye),
			Target:   vec3(pose.Target),
			Progress: s.Camera.Progress(),
			View:     s.Camera.Nearest().Name,
		},
		Actors:  make([]ActorFrame, 0, len(s.Actors)),
		Ripples: make([]RippleFrame, 0, len(s.Ripples.Surfaces())),
	}

	for _, a := range s.Actors {
		h := a.Handle()
		af := ActorFrame{
			Name:     a.Name,
			Position: vec3(h.Position),
			Yaw:      h.Yaw(),
			Morphed:  a.Morphed,
		}
		if a.Morphed {
			h.Traverse(func(n *scene.Node) {
				if n.Points != nil {
					af.Points += len(n.Points.Positions)
				}
			})
		}
		f.Actors = append(f.Actors, af)
	}

	for _, e := range s.Ripples.Effects() {
		f.Ripples = append(f.Ripples, RippleFrame{Surface: e.Surface.Name, Uniforms: e.Uniforms()})
	}

	if t, ok := s.Motion.FollowTarget(); ok {
		f.Follow = &[2]float64{t.X, t.Y}
	}
	return f
}

// Actor returns the actor with the given name
func (s *Scene) Actor(name string) *actor.Actor {
	for _, a := range s.Actors {
		if a.Name == name {
			return a
		}
	}
	return nil
}
