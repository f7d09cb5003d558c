// Package config provides configuration loading and access for the demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Boxes     BoxesConfig     `yaml:"boxes"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds the fixed step used when no frame clock is available.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per headless tick
}

// BoxesConfig holds text box spawn and motion parameters.
type BoxesConfig struct {
	Count        int      `yaml:"count"`
	Speed        float64  `yaml:"speed"`         // pixels per second
	ConfineSize  float64  `yaml:"confine_size"`  // footprint used for edge bounce and clamp
	SpriteWidth  float64  `yaml:"sprite_width"`  // drawn rectangle width
	SpriteHeight float64  `yaml:"sprite_height"` // drawn rectangle height
	Labels       []string `yaml:"labels"`
	FontSize     float64  `yaml:"font_size"`
	FontPath     string   `yaml:"font_path"` // empty = raylib default font
	Color        [3]uint8 `yaml:"color"`
	TextColor    [3]uint8 `yaml:"text_color"`
}

// CameraConfig holds camera control parameters.
type CameraConfig struct {
	PanStep  float64 `yaml:"pan_step"`  // pixels per tick, not time scaled
	ZoomRate float64 `yaml:"zoom_rate"` // log-scale units per second
	Height   float64 `yaml:"height"`    // depth of the camera layer
	LayerGap float64 `yaml:"layer_gap"` // boxes sit this far below the camera
}

// TelemetryConfig holds trace and logging parameters.
type TelemetryConfig struct {
	SampleInterval int `yaml:"sample_interval"` // ticks between CSV rows
	LogInterval    int `yaml:"log_interval"`    // ticks between slog summaries
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	Speed32   float32 // Boxes.Speed as float32
	HalfSize  float32 // Boxes.ConfineSize / 2
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	BoxZ      float32 // Camera.Height - Camera.LayerGap
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the update passes cannot work with.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Boxes.Count < 0 {
		return fmt.Errorf("boxes.count must not be negative, got %d", c.Boxes.Count)
	}
	if c.Physics.DT < 0 {
		return fmt.Errorf("physics.dt must not be negative, got %v", c.Physics.DT)
	}
	if c.Boxes.ConfineSize < 0 {
		return fmt.Errorf("boxes.confine_size must not be negative, got %v", c.Boxes.ConfineSize)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.Speed32 = float32(c.Boxes.Speed)
	c.Derived.HalfSize = float32(c.Boxes.ConfineSize / 2)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.BoxZ = float32(c.Camera.Height - c.Camera.LayerGap)

	if c.Telemetry.SampleInterval <= 0 {
		c.Telemetry.SampleInterval = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
