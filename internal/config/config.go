package config

import (
	"fmt"
	"os"

	"github.com/san-kum/cubespin/internal/engine"
	"github.com/san-kum/cubespin/internal/geom"
	"github.com/san-kum/cubespin/internal/scene"
	"github.com/san-kum/cubespin/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDegrees    = 10.0
	DefaultMultiplier = 1.0
	DefaultTheme      = "minimal"
	DefaultCols       = 100
	DefaultRows       = 24
	DefaultHistory    = 120

	DirectionForward = "forward"
	DirectionReverse = "reverse"
)

type Config struct {
	Velocity VelocityConfig `yaml:"velocity"`
	Replicas int            `yaml:"replicas"`
	Theme    string         `yaml:"theme"`
	Canvas   CanvasConfig   `yaml:"canvas"`
	Viewport ViewportConfig `yaml:"viewport"`
	History  int            `yaml:"history"`
	Labels   bool           `yaml:"labels"`
}

type VelocityConfig struct {
	InitialDegrees [3]float64 `yaml:"initial_degrees"`
	Multiplier     float64    `yaml:"multiplier"`
	Direction      string     `yaml:"direction"`
}

// CanvasConfig sizes each view in terminal cells.
type CanvasConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Velocity: VelocityConfig{
			InitialDegrees: [3]float64{DefaultDegrees, DefaultDegrees, DefaultDegrees},
			Multiplier:     DefaultMultiplier,
			Direction:      DirectionForward,
		},
		Theme: DefaultTheme,
		Canvas: CanvasConfig{
			Cols: DefaultCols,
			Rows: DefaultRows,
		},
		Viewport: ViewportConfig{
			Width:  scene.DefaultViewport.Width,
			Height: scene.DefaultViewport.Height,
		},
		History: DefaultHistory,
		Labels:  true,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// base's values. base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the invariants the engine and host rely on.
func (c *Config) Validate() error {
	if !(c.Velocity.Multiplier > 0) {
		return fmt.Errorf("%w: multiplier %v", ErrMultiplier, c.Velocity.Multiplier)
	}
	if c.Replicas < 0 {
		return fmt.Errorf("%w: %d", ErrReplicas, c.Replicas)
	}
	switch c.Velocity.Direction {
	case DirectionForward, DirectionReverse, "":
	default:
		return fmt.Errorf("%w: %q", ErrDirection, c.Velocity.Direction)
	}
	if c.Canvas.Cols < 10 || c.Canvas.Rows < 4 {
		return fmt.Errorf("%w: %dx%d", ErrCanvas, c.Canvas.Cols, c.Canvas.Rows)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrViewport, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Theme != "" && !viz.HasTheme(c.Theme) {
		return fmt.Errorf("%w: %q", ErrTheme, c.Theme)
	}
	if c.History < 2 {
		return fmt.Errorf("%w: %d", ErrHistory, c.History)
	}
	return nil
}

// InitialVelocity converts the configured degrees per second to radians.
func (c *Config) InitialVelocity() geom.AngleVelocity {
	d := c.Velocity.InitialDegrees
	return geom.Degrees(d[0], d[1], d[2])
}

func (c *Config) ViewportSize() scene.Viewport {
	return scene.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

// EngineOptions translates the config into engine construction options.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithVelocity(c.InitialVelocity()),
		engine.WithMultiplier(c.Velocity.Multiplier),
		engine.WithDirection(c.Velocity.Direction != DirectionReverse),
		engine.WithReplicas(c.Replicas),
	}
}

// NewEngine builds an engine from the config.
func (c *Config) NewEngine() *engine.Engine {
	return engine.New(c.EngineOptions()...)
}
