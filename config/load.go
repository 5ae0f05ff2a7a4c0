package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
)

// Load overlays the TOML file at path onto a copy of base and validates the result
// Keys missing from the file keep their base values
func Load(path string, base *Config) (*Config, error) {
	if base == nil {
		base = Default()
	}
	cfg := base.Clone()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once
func (c *Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	p := c.Physics
	if p.AlphaDecay <= 0 || p.AlphaDecay >= 1 {
		add("physics.alpha_decay must be in (0,1), got %v", p.AlphaDecay)
	}
	if p.AlphaEpsilon <= 0 || p.AlphaEpsilon >= 1 {
		add("physics.alpha_epsilon must be in (0,1), got %v", p.AlphaEpsilon)
	}
	if p.Friction < 0 || p.Friction > 1 {
		add("physics.friction must be in [0,1], got %v", p.Friction)
	}
	if p.SpringLength <= 0 || p.SpringLengthSmall <= 0 {
		add("physics.spring_length and spring_length_small must be positive")
	}
	if p.RepulsionStrength < 0 || p.SpringStiffness < 0 || p.GroupGravity < 0 {
		add("physics strengths must be non-negative")
	}
	if p.ReheatDrag < 0 || p.ReheatDrag > 1 || p.ReheatRelease < 0 || p.ReheatRelease > 1 {
		add("physics reheat floors must be in [0,1]")
	}

	d := c.Drift
	if d.SolverIterations < 1 {
		add("drift.solver_iterations must be >= 1, got %d", d.SolverIterations)
	}
	if d.SolverMaxIterations < d.SolverIterations {
		add("drift.solver_max_iterations (%d) must be >= solver_iterations (%d)", d.SolverMaxIterations, d.SolverIterations)
	}
	if d.Damping < 0 || d.Damping > 1 {
		add("drift.damping must be in [0,1], got %v", d.Damping)
	}
	if d.Restitution < 0 || d.Restitution > 1 {
		add("drift.restitution must be in [0,1], got %v", d.Restitution)
	}
	if d.WallBounce < 0 || d.WallBounce > 1 {
		add("drift.wall_bounce must be in [0,1], got %v", d.WallBounce)
	}
	if d.CollisionGap < 0 || d.RepulsionRange < 0 || d.MaxSpeed <= 0 {
		add("drift gap/range must be non-negative and max_speed positive")
	}

	cam := c.Camera
	if cam.ZoomMin <= 0 || cam.ZoomMin >= cam.ZoomMax {
		add("camera zoom bounds invalid: min=%v max=%v", cam.ZoomMin, cam.ZoomMax)
	}
	if cam.WheelZoomIn <= 1 || cam.WheelZoomOut <= 0 || cam.WheelZoomOut >= 1 {
		add("camera wheel steps must satisfy in > 1 and 0 < out < 1")
	}
	if cam.PanToDuration.Duration < 0 || cam.FlyInDuration.Duration < 0 || cam.FlyOutDuration.Duration < 0 {
		add("camera durations must be non-negative")
	}
	if cam.ZoomToRadiusFactor <= 0 || cam.FlyInRadiusFactor <= 0 {
		add("camera framing factors must be positive")
	}

	in := c.Interaction
	if in.HitTolerance < 1 {
		add("interaction.hit_tolerance must be >= 1, got %v", in.HitTolerance)
	}
	if in.DragThreshold < 0 || in.TouchMoveThreshold < 0 {
		add("interaction thresholds must be non-negative")
	}

	l := c.Layout
	if l.RadiusMin <= 0 || l.RadiusMinSmall <= 0 || l.RadiusRange < 0 || l.RadiusRangeSmall < 0 {
		add("layout radius ranges must have positive min and non-negative range")
	}
	if l.SeedShape != SeedEllipse && l.SeedShape != SeedCircle {
		add("layout.seed_shape must be %q or %q, got %q", SeedEllipse, SeedCircle, l.SeedShape)
	}

	if c.Engine.FrameInterval.Duration <= 0 {
		add("engine.frame_interval must be positive")
	}

	return result.ErrorOrNil()
}
