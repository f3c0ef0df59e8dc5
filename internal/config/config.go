// Package config loads editor settings from YAML.
//
// Config file locations (priority order):
//  1. $PLANAR_CONFIG
//  2. ./planar.yaml
//  3. $XDG_CONFIG_HOME/planar/config.yaml
//  4. ~/.config/planar/config.yaml
//
// Missing fields fall back to DefaultConfig. The tone volume is read from
// here and handed to the tone package explicitly.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/planar"
	"github.com/gogpu/planar/tone"
)

// ErrInvalid is returned (wrapped) by Validate and the loaders when a
// setting is out of range.
var ErrInvalid = errors.New("invalid config")

// Config is the full editor configuration.
type Config struct {
	Version     int               `yaml:"version"`
	Canvas      CanvasConfig      `yaml:"canvas"`
	Interaction InteractionConfig `yaml:"interaction"`
	Population  PopulationConfig  `yaml:"population"`
	Tone        ToneConfig        `yaml:"tone"`
	Log         LogConfig         `yaml:"log"`
}

// MaxCanvasSide bounds each canvas dimension. Population draws
// width*height/1000 candidates and checks each against the kept ones.
const MaxCanvasSide = 4096

// CanvasConfig is the editing area in units, centred on the origin.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InteractionConfig tunes hit testing and crossing detection.
type InteractionConfig struct {
	HitRadius    float32  `yaml:"hit_radius"`
	SegmentTrim  *float32 `yaml:"segment_trim,omitempty"` // nil means planar.SegmentTrim
	WiggleAmount float32  `yaml:"wiggle_amount"`
}

// PopulationConfig controls the initial random anchors.
type PopulationConfig struct {
	Enabled    bool    `yaml:"enabled"`
	MinSpacing float32 `yaml:"min_spacing"`
	Seed       *uint64 `yaml:"seed,omitempty"` // nil picks a random seed
}

// ToneConfig holds the drag tone settings.
type ToneConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float32 `yaml:"volume"`
	Smoothing float32 `yaml:"smoothing"`
}

// LogConfig selects the slog level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the settings of a fresh installation.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Canvas:  CanvasConfig{Width: 1024, Height: 1024},
		Interaction: InteractionConfig{
			HitRadius:    planar.HitRadius,
			WiggleAmount: 1,
		},
		Population: PopulationConfig{
			Enabled:    true,
			MinSpacing: planar.MinAnchorSpacing,
		},
		Tone: ToneConfig{
			Volume:    tone.DefaultVolume,
			Smoothing: tone.Smoothing,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load finds and loads the config file, or returns defaults if none found.
// The returned path is empty when defaults are used.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the config at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// applyDefaults fills the fields a file can blank out without meaning a
// value. Numeric settings keep whatever the file says and are checked by
// Validate, so hit_radius: 0 is rejected and min_spacing: 0 disables the
// spacing filter.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// Validate reports the first out-of-range setting, wrapping ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d must be positive", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.Width > MaxCanvasSide || c.Canvas.Height > MaxCanvasSide:
		return fmt.Errorf("%w: canvas %dx%d exceeds %d per side", ErrInvalid, c.Canvas.Width, c.Canvas.Height, MaxCanvasSide)
	case c.Interaction.HitRadius <= 0:
		return fmt.Errorf("%w: hit_radius %v must be positive", ErrInvalid, c.Interaction.HitRadius)
	case c.Interaction.SegmentTrim != nil && *c.Interaction.SegmentTrim < 0:
		return fmt.Errorf("%w: segment_trim %v must not be negative", ErrInvalid, *c.Interaction.SegmentTrim)
	case c.Interaction.WiggleAmount < 0:
		return fmt.Errorf("%w: wiggle_amount %v must not be negative", ErrInvalid, c.Interaction.WiggleAmount)
	case c.Population.MinSpacing < 0:
		return fmt.Errorf("%w: min_spacing %v must not be negative", ErrInvalid, c.Population.MinSpacing)
	case c.Tone.Volume < 0 || c.Tone.Volume > 1:
		return fmt.Errorf("%w: volume %v must be within [0, 1]", ErrInvalid, c.Tone.Volume)
	case c.Tone.Smoothing < 1:
		return fmt.Errorf("%w: smoothing %v must be at least 1", ErrInvalid, c.Tone.Smoothing)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
	}
}

// Rand returns the random source for this session: seeded from
// population.seed when set, otherwise from runtime entropy.
func (c *Config) Rand() *rand.Rand {
	if c.Population.Seed != nil {
		seed := *c.Population.Seed
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// StateOptions converts the interaction and population settings into
// planar options. Initial anchors are generated with r when population is
// enabled.
func (c *Config) StateOptions(r *rand.Rand) []planar.Option {
	opts := []planar.Option{
		planar.WithHitRadius(c.Interaction.HitRadius),
		planar.WithRand(r),
	}
	if c.Interaction.SegmentTrim != nil {
		opts = append(opts, planar.WithSegmentTrim(*c.Interaction.SegmentTrim))
	}
	if c.Population.Enabled {
		points := planar.PopulateSpaced(
			float32(c.Canvas.Width), float32(c.Canvas.Height), c.Population.MinSpacing, r)
		opts = append(opts, planar.WithAnchors(points...))
	}
	return opts
}

// NewState builds a planar.State from the config.
func (c *Config) NewState() *planar.State {
	return planar.NewState(c.StateOptions(c.Rand())...)
}

// Summary returns a one-line description of the effective settings.
func (c *Config) Summary() string {
	return fmt.Sprintf("canvas %dx%d, hit radius %v, population %v (spacing %v), tone %v (volume %v), log %s",
		c.Canvas.Width, c.Canvas.Height, c.Interaction.HitRadius,
		c.Population.Enabled, c.Population.MinSpacing,
		c.Tone.Enabled, c.Tone.Volume, c.Log.Level)
}
