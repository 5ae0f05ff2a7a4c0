package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/galaxy/parameter"
)

// Config holds every tuned constant of the layout engine and camera
// Values are product tuning, only the algorithm structure is load-bearing
type Config struct {
	Physics     PhysicsConfig     `toml:"physics"`
	Drift       DriftConfig       `toml:"drift"`
	Camera      CameraConfig      `toml:"camera"`
	Interaction InteractionConfig `toml:"interaction"`
	Layout      LayoutConfig      `toml:"layout"`
	Engine      EngineConfig      `toml:"engine"`
}

// PhysicsConfig tunes the primary integrator
type PhysicsConfig struct {
	AlphaDecay        float64 `toml:"alpha_decay"`
	AlphaEpsilon      float64 `toml:"alpha_epsilon"`
	RepulsionMargin   float64 `toml:"repulsion_margin"`
	RepulsionStrength float64 `toml:"repulsion_strength"`
	SpringStiffness   float64 `toml:"spring_stiffness"`
	SpringLength      float64 `toml:"spring_length"`
	SpringLengthSmall float64 `toml:"spring_length_small"`
	CenterGravityX    float64 `toml:"center_gravity_x"`
	CenterGravityY    float64 `toml:"center_gravity_y"`
	GroupGravity      float64 `toml:"group_gravity"`
	Friction          float64 `toml:"friction"`
	BoundaryMargin    float64 `toml:"boundary_margin"`
	ReheatDrag        float64 `toml:"reheat_drag"`
	ReheatRelease     float64 `toml:"reheat_release"`
}

// DriftConfig tunes the idle orbital drift solver
type DriftConfig struct {
	Enabled             bool    `toml:"enabled"`
	OrbitSpeed          float64 `toml:"orbit_speed"`
	SolverIterations    int     `toml:"solver_iterations"`
	SolverMaxIterations int     `toml:"solver_max_iterations"`
	Damping             float64 `toml:"damping"`
	CollisionGap        float64 `toml:"collision_gap"`
	RepulsionRange      float64 `toml:"repulsion_range"`
	RepulsionStrength   float64 `toml:"repulsion_strength"`
	Restitution         float64 `toml:"restitution"`
	WallBounce          float64 `toml:"wall_bounce"`
	MaxSpeed            float64 `toml:"max_speed"`
}

// CameraConfig bounds zoom and shapes transitions
type CameraConfig struct {
	ZoomMin            float64  `toml:"zoom_min"`
	ZoomMax            float64  `toml:"zoom_max"`
	WheelZoomIn        float64  `toml:"wheel_zoom_in"`
	WheelZoomOut       float64  `toml:"wheel_zoom_out"`
	PanToZoom          float64  `toml:"pan_to_zoom"`
	PanToDuration      Duration `toml:"pan_to_duration"`
	ZoomToRadiusFactor float64  `toml:"zoom_to_radius_factor"`
	ZoomToMax          float64  `toml:"zoom_to_max"`
	FlyInRadiusFactor  float64  `toml:"fly_in_radius_factor"`
	FlyInMax           float64  `toml:"fly_in_max"`
	FlyInDuration      Duration `toml:"fly_in_duration"`
	FlyOutDuration     Duration `toml:"fly_out_duration"`
}

// InteractionConfig tunes pointer, touch and picking thresholds
type InteractionConfig struct {
	DragThreshold      float64  `toml:"drag_threshold"`
	TouchMoveThreshold float64  `toml:"touch_move_threshold"`
	TapMaxDuration     Duration `toml:"tap_max_duration"`
	HitTolerance       float64  `toml:"hit_tolerance"`
}

// SeedShape selects the initial placement pattern
type SeedShape string

const (
	SeedEllipse SeedShape = "ellipse"
	SeedCircle  SeedShape = "circle"
)

// LayoutConfig describes viewport-dependent geometry
type LayoutConfig struct {
	SmallScreenBreakpoint float64   `toml:"small_screen_breakpoint"`
	RadiusMin             float64   `toml:"radius_min"`
	RadiusRange           float64   `toml:"radius_range"`
	RadiusMinSmall        float64   `toml:"radius_min_small"`
	RadiusRangeSmall      float64   `toml:"radius_range_small"`
	TopInset              float64   `toml:"top_inset"`
	BottomInset           float64   `toml:"bottom_inset"`
	FocalBottomOffset     float64   `toml:"focal_bottom_offset"`
	SeedShape             SeedShape `toml:"seed_shape"`
	SeedSpreadX           float64   `toml:"seed_spread_x"`
	SeedSpreadY           float64   `toml:"seed_spread_y"`
	SeedTilt              float64   `toml:"seed_tilt"`
	SeedJitter            float64   `toml:"seed_jitter"`
	EntranceStagger       Duration  `toml:"entrance_stagger"`
	EntranceDuration      Duration  `toml:"entrance_duration"`
}

// EngineConfig tunes the frame loop
type EngineConfig struct {
	FrameInterval Duration `toml:"frame_interval"`
	PauseOnBlur   bool     `toml:"pause_on_blur"`
}

// Duration decodes TOML strings such as "800ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// D wraps a time.Duration
func D(v time.Duration) Duration { return Duration{Duration: v} }

// Default returns the clustered preset
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			AlphaDecay:        parameter.AlphaDecay,
			AlphaEpsilon:      parameter.AlphaEpsilon,
			RepulsionMargin:   parameter.RepulsionMargin,
			RepulsionStrength: parameter.RepulsionStrength,
			SpringStiffness:   parameter.SpringStiffness,
			SpringLength:      parameter.SpringLength,
			SpringLengthSmall: parameter.SpringLengthSmall,
			CenterGravityX:    parameter.CenterGravityX,
			CenterGravityY:    parameter.CenterGravityY,
			GroupGravity:      parameter.GroupGravity,
			Friction:          parameter.Friction,
			BoundaryMargin:    parameter.BoundaryMargin,
			ReheatDrag:        parameter.ReheatDrag,
			ReheatRelease:     parameter.ReheatRelease,
		},
		Drift: DriftConfig{
			Enabled:             true,
			OrbitSpeed:          parameter.DriftOrbitSpeed,
			SolverIterations:    parameter.DriftSolverIterations,
			SolverMaxIterations: parameter.DriftSolverMaxIterations,
			Damping:             parameter.DriftDamping,
			CollisionGap:        parameter.DriftCollisionGap,
			RepulsionRange:      parameter.DriftRepulsionRange,
			RepulsionStrength:   parameter.DriftRepulsionStrength,
			Restitution:         parameter.DriftRestitution,
			WallBounce:          parameter.DriftWallBounce,
			MaxSpeed:            parameter.DriftMaxSpeed,
		},
		Camera: CameraConfig{
			ZoomMin:            parameter.ZoomMin,
			ZoomMax:            parameter.ZoomMax,
			WheelZoomIn:        parameter.WheelZoomIn,
			WheelZoomOut:       parameter.WheelZoomOut,
			PanToZoom:          parameter.PanToZoom,
			PanToDuration:      D(parameter.PanToDuration),
			ZoomToRadiusFactor: parameter.ZoomToRadiusFactor,
			ZoomToMax:          parameter.ZoomToMax,
			FlyInRadiusFactor:  parameter.FlyInRadiusFactor,
			FlyInMax:           parameter.FlyInMax,
			FlyInDuration:      D(parameter.FlyInDuration),
			FlyOutDuration:     D(parameter.FlyOutDuration),
		},
		Interaction: InteractionConfig{
			DragThreshold:      parameter.DragThreshold,
			TouchMoveThreshold: parameter.TouchMoveThreshold,
			TapMaxDuration:     D(parameter.TapMaxDuration),
			HitTolerance:       parameter.HitTolerance,
		},
		Layout: LayoutConfig{
			SmallScreenBreakpoint: parameter.SmallScreenBreakpoint,
			RadiusMin:             parameter.RadiusMin,
			RadiusRange:           parameter.RadiusRange,
			RadiusMinSmall:        parameter.RadiusMinSmall,
			RadiusRangeSmall:      parameter.RadiusRangeSmall,
			TopInset:              parameter.TopInset,
			BottomInset:           parameter.BottomInset,
			FocalBottomOffset:     parameter.FocalBottomOffset,
			SeedShape:             SeedEllipse,
			SeedSpreadX:           parameter.SeedSpreadX,
			SeedSpreadY:           parameter.SeedSpreadY,
			SeedTilt:              parameter.SeedTilt,
			SeedJitter:            parameter.SeedJitter,
			EntranceStagger:       D(parameter.EntranceStagger),
			EntranceDuration:      D(parameter.EntranceDuration),
		},
		Engine: EngineConfig{
			FrameInterval: D(parameter.FrameInterval),
			PauseOnBlur:   true,
		},
	}
}

// Clone returns a deep copy
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// SetChrome replaces the browser-sized insets with a front-end's own chrome
// The focal point sits above the bottom band
func (l *LayoutConfig) SetChrome(top, bottom float64) {
	l.TopInset = top
	l.BottomInset = bottom
	l.FocalBottomOffset = bottom
}
