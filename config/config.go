// Package config loads the scene description: room framing, walker motion,
// morph and ripple timing, and the models placed on the floor
package config

import (
	"time"

	"github.com/lixenwraith/scroll-room/parameter"
)

// Motion modes
const (
	ModeOrbit  = "orbit"
	ModeFollow = "follow"
)

// Config is the full scene description
type Config struct {
	Room        RoomConfig        `toml:"room" yaml:"room"`
	Camera      CameraConfig      `toml:"camera" yaml:"camera"`
	Motion      MotionConfig      `toml:"motion" yaml:"motion"`
	Morph       MorphConfig       `toml:"morph" yaml:"morph"`
	Ripple      RippleConfig      `toml:"ripple" yaml:"ripple"`
	Interaction InteractionConfig `toml:"interaction" yaml:"interaction"`
	Models      []ModelConfig     `toml:"models" yaml:"models"`
}

type RoomConfig struct {
	Fov          float64 `toml:"fov" yaml:"fov"` // vertical, degrees
	Aspect       float64 `toml:"aspect" yaml:"aspect"`
	WallDistance float64 `toml:"wall_distance" yaml:"wall_distance"`
	FillFactor   float64 `toml:"fill_factor" yaml:"fill_factor"`
}

type CameraConfig struct {
	ScrollSensitivity float64 `toml:"scroll_sensitivity" yaml:"scroll_sensitivity"`
}

type MotionConfig struct {
	Mode         string  `toml:"mode" yaml:"mode"`
	BaseRadius   float64 `toml:"base_radius" yaml:"base_radius"`
	BaseSpeed    float64 `toml:"base_speed" yaml:"base_speed"`
	FollowSpeed  float64 `toml:"follow_speed" yaml:"follow_speed"`
	AvoidRadius  float64 `toml:"avoid_radius" yaml:"avoid_radius"`
	Bounded      bool    `toml:"bounded" yaml:"bounded"`
	BoundsMargin float64 `toml:"bounds_margin" yaml:"bounds_margin"`
	Seed         uint64  `toml:"seed" yaml:"seed"`
}

type MorphConfig struct {
	DelaySeconds float64 `toml:"delay_seconds" yaml:"delay_seconds"`
}

func (m MorphConfig) Delay() time.Duration {
	return time.Duration(m.DelaySeconds * float64(time.Second))
}

type RippleConfig struct {
	DurationSeconds float64 `toml:"duration_seconds" yaml:"duration_seconds"`
}

func (r RippleConfig) Duration() time.Duration {
	return time.Duration(r.DurationSeconds * float64(time.Second))
}

type InteractionConfig struct {
	RotationSpeed float64 `toml:"rotation_speed" yaml:"rotation_speed"` // rad per pointer pixel
	FloorTargets  bool    `toml:"floor_targets" yaml:"floor_targets"`   // floor clicks steer follow walkers
}

// ModelConfig places one figure on the floor
type ModelConfig struct {
	Name      string  `toml:"name" yaml:"name"`
	Kind      string  `toml:"kind" yaml:"kind"`
	X         float64 `toml:"x" yaml:"x"`
	Z         float64 `toml:"z" yaml:"z"`
	Scale     float64 `toml:"scale" yaml:"scale"`
	PointSize float64 `toml:"point_size" yaml:"point_size"`
	CanMove   bool    `toml:"can_move" yaml:"can_move"`
	CanMorph  *bool   `toml:"can_morph,omitempty" yaml:"can_morph,omitempty"`
}

// Morphs defaults to true when unset
func (m ModelConfig) Morphs() bool {
	return m.CanMorph == nil || *m.CanMorph
}

// Default is the stock room: four static figures that dissolve after a minute
func Default() Config {
	c := Config{
		Room: RoomConfig{
			Fov:          parameter.CameraFovY,
			Aspect:       parameter.DefaultAspect,
			WallDistance: parameter.WallDistance,
			FillFactor:   parameter.FillFactor,
		},
		Camera: CameraConfig{ScrollSensitivity: parameter.ScrollSensitivity},
		Motion: MotionConfig{
			Mode:         ModeOrbit,
			BaseRadius:   parameter.OrbitBaseRadius,
			BaseSpeed:    0.25,
			FollowSpeed:  parameter.FollowSpeed,
			AvoidRadius:  parameter.AvoidRadius,
			Bounded:      true,
			BoundsMargin: parameter.RoomBoundsMargin,
			Seed:         1,
		},
		Morph:  MorphConfig{DelaySeconds: parameter.MorphDelay.Seconds()},
		Ripple: RippleConfig{DurationSeconds: parameter.RippleDuration.Seconds()},
		Interaction: InteractionConfig{
			RotationSpeed: parameter.DragRotationSpeed,
		},
	}
	c.Models = DefaultModels(c.Room.WallDistance)
	return c
}

// DefaultModels lays the stock figures out relative to the room depth
func DefaultModels(depth float64) []ModelConfig {
	return []ModelConfig{
		{Name: "mechbot", Kind: "mechbot", X: 0, Z: -depth * 0.6, Scale: 0.06, PointSize: 0.007},
		{Name: "ogre.1", Kind: "ogre", X: 1, Z: -depth * 0.7, Scale: 1, PointSize: 0.005},
		{Name: "ogre.2", Kind: "ogre", X: -2, Z: -depth * 0.7, Scale: 1, PointSize: 0.005},
		{Name: "trex", Kind: "trex", X: 4, Z: -depth * 0.77, Scale: 0.4, PointSize: 0.015},
	}
}
