package willowgui

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config describes a System and its layers, typically loaded from TOML:
//
//	[system]
//	width = 640
//	height = 360
//	pixel_ratio = 2
//
//	[[layer]]
//	name = "hud"
//	priority = 10
//	base_width = 640
type Config struct {
	System SystemConfig  `toml:"system"`
	Layers []LayerConfig `toml:"layer"`
}

// SystemConfig mirrors Options.
type SystemConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	PixelRatio    float64 `toml:"pixel_ratio"`
	Debug         bool    `toml:"debug"`
	ScreenshotDir string  `toml:"screenshot_dir"`
}

// LayerConfig mirrors LayerOptions plus the layer name.
type LayerConfig struct {
	Name      string  `toml:"name"`
	Priority  int     `toml:"priority"`
	BaseWidth float64 `toml:"base_width"`
}

// LoadConfig decodes and validates a TOML config.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("willowgui: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		Logger().Warn("config: unknown keys ignored", "keys", fmt.Sprint(undecoded))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads and decodes the TOML config at path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("willowgui: read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate reports the first problem with c wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.System.Width <= 0 || c.System.Height <= 0 {
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidConfig, c.System.Width, c.System.Height)
	}
	if c.System.PixelRatio < 0 {
		return fmt.Errorf("%w: pixel_ratio %g", ErrInvalidConfig, c.System.PixelRatio)
	}
	seen := make(map[string]bool, len(c.Layers))
	for i, l := range c.Layers {
		if l.Name == "" {
			return fmt.Errorf("%w: layer %d has no name", ErrInvalidConfig, i)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, configError(l.Name, ErrLayerExists))
		}
		seen[l.Name] = true
		if l.BaseWidth < 0 {
			return fmt.Errorf("%w: layer %q base_width %g", ErrInvalidConfig, l.Name, l.BaseWidth)
		}
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("willowgui: encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Options returns the system options described by c.
func (c *Config) Options() Options {
	return Options{
		Width:         c.System.Width,
		Height:        c.System.Height,
		PixelRatio:    c.System.PixelRatio,
		Debug:         c.System.Debug,
		ScreenshotDir: c.System.ScreenshotDir,
	}
}

// NewSystemFromConfig builds a System and creates every configured layer.
func NewSystemFromConfig(c *Config) (*System, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := NewSystem(c.Options())
	for _, l := range c.Layers {
		if _, err := s.CreateLayer(l.Name, LayerOptions{Priority: l.Priority, BaseWidth: l.BaseWidth}); err != nil {
			return nil, err
		}
	}
	return s, nil
}
