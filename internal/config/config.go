package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid generation parameters")

// Generation holds the parameters for a single scenario generation pass.
type Generation struct {
	FPS              int     `yaml:"fps"`
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Preset           string  `yaml:"preset,omitempty"`
	MinSceneDuration float64 `yaml:"min_scene_duration"`
	MaxSceneDuration float64 `yaml:"max_scene_duration"`
	ContrastScale    float64 `yaml:"contrast_scale"`
	SaturationScale  float64 `yaml:"saturation_scale"`
	TransitionScale  float64 `yaml:"transition_scale"`
	Platform         string  `yaml:"platform,omitempty"`
}

// Default returns the baseline configuration: 720p @ 30 FPS,
// 10-20 second scenes, neutral style scaling.
func Default() Generation {
	return Generation{
		FPS:              30,
		Width:            1280,
		Height:           720,
		MinSceneDuration: 10.0,
		MaxSceneDuration: 20.0,
		ContrastScale:    1.0,
		SaturationScale:  1.0,
		TransitionScale:  1.0,
	}
}

// Load reads a generation config from a YAML file, filling unset
// fields from Default.
func Load(path string) (Generation, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyPreset(cfg.Preset)
	return cfg, nil
}

// ApplyPreset maps a named aspect preset onto the output resolution.
func (c *Generation) ApplyPreset(preset string) {
	switch preset {
	case "16:9":
		c.Width, c.Height = 1280, 720
	case "9:16":
		c.Width, c.Height = 720, 1280
	case "4:5":
		c.Width, c.Height = 1080, 1350
	}
	if preset != "" {
		c.Preset = preset
	}
}

// Validate checks the parameter ranges the pipeline depends on.
func (c Generation) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d: %w", c.FPS, ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	}
	if c.MinSceneDuration < 0 || c.MaxSceneDuration <= 0 {
		return fmt.Errorf("scene durations must be positive: %w", ErrInvalidConfig)
	}
	if c.MinSceneDuration > c.MaxSceneDuration {
		return fmt.Errorf("min scene duration %.2f exceeds max %.2f: %w",
			c.MinSceneDuration, c.MaxSceneDuration, ErrInvalidConfig)
	}
	if c.ContrastScale <= 0 || c.SaturationScale <= 0 || c.TransitionScale <= 0 {
		return fmt.Errorf("style scales must be positive: %w", ErrInvalidConfig)
	}
	return nil
}

// Apply returns a copy of the configuration with a variant overlay
// folded in. The receiver is never modified, so concurrent variant
// runs can share one base config.
func (c Generation) Apply(v Variant) Generation {
	out := c
	out.ContrastScale *= v.ContrastScale
	out.SaturationScale *= v.SaturationScale
	out.TransitionScale *= v.TransitionScale
	if v.Platform != "" {
		out.Platform = v.Platform
	}
	return out
}

// Resolution renders the output size as WxH.
func (c Generation) Resolution() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// AspectRatio reduces the output size to its ratio form (16:9, 9:16, 4:5).
func (c Generation) AspectRatio() string {
	d := gcd(c.Width, c.Height)
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", c.Width/d, c.Height/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
