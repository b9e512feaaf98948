package galaxy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gekko3d/galaxy/galaxyrt/rt/breath"
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"

	"gopkg.in/yaml.v3"
)

// Config is the startup configuration file. Missing keys keep their defaults.
type Config struct {
	Seed   int64        `yaml:"seed"`
	Galaxy GalaxyConfig `yaml:"galaxy"`
	Breath BreathConfig `yaml:"breath"`
	Window WindowConfig `yaml:"window"`
}

type GalaxyConfig struct {
	Count           int     `yaml:"count"`
	Size            float32 `yaml:"size"`
	Radius          float32 `yaml:"radius"`
	Branches        int     `yaml:"branches"`
	Spin            float32 `yaml:"spin"`
	Randomness      float32 `yaml:"randomness"`
	RandomnessPower float32 `yaml:"randomnessPower"`
	// Colors accept "#rrggbb" or a CSS color name.
	InsideColor  string `yaml:"insideColor"`
	OutsideColor string `yaml:"outsideColor"`
}

type BreathConfig struct {
	StartY     float32 `yaml:"startY"`
	ZoomAmount float32 `yaml:"zoomAmount"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultConfig() Config {
	p := core.DefaultParameters()
	b := breath.DefaultConfig()
	return Config{
		Galaxy: GalaxyConfig{
			Count:           p.Count,
			Size:            p.Size,
			Radius:          p.Radius,
			Branches:        p.Branches,
			Spin:            p.Spin,
			Randomness:      p.Randomness,
			RandomnessPower: p.RandomnessPower,
			InsideColor:     p.InsideColor.Hex(),
			OutsideColor:    p.OutsideColor.Hex(),
		},
		Breath: BreathConfig{
			StartY:     b.StartY,
			ZoomAmount: b.ZoomAmount,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Galaxy",
		},
	}
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if _, err := cfg.Parameters(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parameters converts the galaxy section and validates it.
func (c Config) Parameters() (core.Parameters, error) {
	inside, err := core.ParseColor(c.Galaxy.InsideColor)
	if err != nil {
		return core.Parameters{}, fmt.Errorf("insideColor: %w", err)
	}
	outside, err := core.ParseColor(c.Galaxy.OutsideColor)
	if err != nil {
		return core.Parameters{}, fmt.Errorf("outsideColor: %w", err)
	}
	p := core.Parameters{
		Count:           c.Galaxy.Count,
		Size:            c.Galaxy.Size,
		Radius:          c.Galaxy.Radius,
		Branches:        c.Galaxy.Branches,
		Spin:            c.Galaxy.Spin,
		Randomness:      c.Galaxy.Randomness,
		RandomnessPower: c.Galaxy.RandomnessPower,
		InsideColor:     inside,
		OutsideColor:    outside,
	}
	if err := p.Validate(); err != nil {
		return core.Parameters{}, err
	}
	return p, nil
}

func (c Config) BreathConfig() breath.Config {
	return breath.Config{
		StartY:     c.Breath.StartY,
		ZoomAmount: c.Breath.ZoomAmount,
	}
}
