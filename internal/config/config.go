package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golangdaddy/roadside/pkg/palette"
	"github.com/golangdaddy/roadside/pkg/scene"
	"github.com/golangdaddy/roadside/pkg/sky"
	"github.com/golangdaddy/roadside/pkg/surface"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the full application configuration
type Config struct {
	Window struct {
		Width  int     `yaml:"width"`
		Height int     `yaml:"height"`
		Title  string  `yaml:"title"`
		Scale  float64 `yaml:"scale"`
	} `yaml:"window"`

	Loop struct {
		TPS       int    `yaml:"tps"`
		MaxFrames uint64 `yaml:"max_frames"`
	} `yaml:"loop"`

	Sun struct {
		Radius        float64 `yaml:"radius"`
		Speed         float64 `yaml:"speed"`
		TopLimit      float64 `yaml:"top_limit"`
		Flare         float64 `yaml:"flare"`
		FlareExpanded float64 `yaml:"flare_expanded"`
		Flares        int     `yaml:"flares"`
	} `yaml:"sun"`

	Palette palette.Hex `yaml:"palette"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Overlay struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"overlay"`

	Snapshot struct {
		Frames uint64 `yaml:"frames"`
		Out    string `yaml:"out"`
	} `yaml:"snapshot"`
}

// Default returns the embedded configuration
func Default() *Config {
	cfg, err := Parse(defaultYAML, nil)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path on top of the embedded defaults. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over base (a fresh zero Config when nil) and
// validates the result. Keys missing from data keep their base value.
func Parse(data []byte, base *Config) (*Config, error) {
	cfg := &Config{}
	if base != nil {
		*cfg = *base
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive the scene
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Scale < 0 {
		errs = append(errs, fmt.Errorf("window scale must not be negative, got %v", c.Window.Scale))
	}
	if c.Loop.TPS <= 0 {
		errs = append(errs, fmt.Errorf("loop tps must be positive, got %d", c.Loop.TPS))
	}
	if c.Sun.Radius <= 0 {
		errs = append(errs, fmt.Errorf("sun radius must be positive, got %v", c.Sun.Radius))
	}
	if c.Sun.Speed < 0 {
		errs = append(errs, fmt.Errorf("sun speed must not be negative, got %v", c.Sun.Speed))
	}
	if c.Sun.Flares <= 0 {
		errs = append(errs, fmt.Errorf("sun flares must be positive, got %d", c.Sun.Flares))
	}
	if c.Snapshot.Frames == 0 {
		errs = append(errs, errors.New("snapshot frames must be positive"))
	}
	if c.Snapshot.Out == "" {
		errs = append(errs, errors.New("snapshot out must not be empty"))
	}
	if _, err := c.Palette.Parse(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Bounds returns the logical screen size
func (c *Config) Bounds() surface.Bounds {
	return surface.Bounds{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}

// FrameInterval is the time between two ticks at the configured TPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Loop.TPS)
}

// SceneOptions converts the sun and palette sections for scene.New
func (c *Config) SceneOptions() (scene.Options, error) {
	p, err := c.Palette.Parse()
	if err != nil {
		return scene.Options{}, err
	}
	return scene.Options{
		Palette: p,
		Sun: sky.SunConfig{
			Radius:        c.Sun.Radius,
			Speed:         c.Sun.Speed,
			TopLimit:      c.Sun.TopLimit,
			Flare:         c.Sun.Flare,
			FlareExpanded: c.Sun.FlareExpanded,
			Flares:        c.Sun.Flares,
		},
	}, nil
}
