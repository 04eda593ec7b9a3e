package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"spinpick/wheel"
)

// Config is the full application configuration
type Config struct {
	Spin  SpinConfig  `yaml:"spin"`
	UI    UIConfig    `yaml:"ui"`
	Audio AudioConfig `yaml:"audio"`
	Data  DataConfig  `yaml:"data"`
}

// SpinConfig shapes a spin run and bounds the duration hints
type SpinConfig struct {
	TotalSeconds         float64 `yaml:"total_seconds"`
	DecelSeconds         float64 `yaml:"decel_seconds"`
	MinSeconds           float64 `yaml:"min_seconds"`
	MaxSeconds           float64 `yaml:"max_seconds"`
	CruiseTurnsPerSecond float64 `yaml:"cruise_turns_per_second"`
	SpinUpFraction       float64 `yaml:"spin_up_fraction"`
	MinExtraTurns        int     `yaml:"min_extra_turns"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	FrameRateHz int `yaml:"frame_rate_hz"`
}

// AudioConfig toggles sound output
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DataConfig points at durable storage
type DataConfig struct {
	DBPath string `yaml:"db_path"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Spin: SpinConfig{
			TotalSeconds:         10,
			DecelSeconds:         3,
			MinSeconds:           1,
			MaxSeconds:           60,
			CruiseTurnsPerSecond: 2.5,
			SpinUpFraction:       0.15,
			MinExtraTurns:        1,
		},
		UI: UIConfig{
			FrameRateHz: 30,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Data: DataConfig{
			DBPath: "spinpick.db",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults; a malformed file is an error
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Normalize()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps every field into its usable range in place
func (c *Config) Normalize() {
	s := &c.Spin
	if s.MinSeconds <= 0 {
		s.MinSeconds = 1
	}
	if s.MaxSeconds < s.MinSeconds {
		s.MaxSeconds = s.MinSeconds
	}
	s.TotalSeconds = clampF(s.TotalSeconds, s.MinSeconds, s.MaxSeconds)
	s.DecelSeconds = clampF(s.DecelSeconds, s.MinSeconds, s.TotalSeconds)
	if s.CruiseTurnsPerSecond <= 0 {
		s.CruiseTurnsPerSecond = 2.5
	}
	if s.SpinUpFraction <= 0 || s.SpinUpFraction > 1 {
		s.SpinUpFraction = 0.15
	}
	if s.MinExtraTurns < 0 {
		s.MinExtraTurns = 0
	}

	if c.UI.FrameRateHz < 10 || c.UI.FrameRateHz > 120 {
		c.UI.FrameRateHz = 30
	}
	if strings.TrimSpace(c.Data.DBPath) == "" {
		c.Data.DBPath = "spinpick.db"
	}
}

// SpinnerConfig maps the spin section onto the animation core's config
func (c Config) SpinnerConfig() wheel.Config {
	return wheel.Config{
		MinDuration:       secondsToDuration(c.Spin.MinSeconds),
		MaxDuration:       secondsToDuration(c.Spin.MaxSeconds),
		SpinUpFraction:    c.Spin.SpinUpFraction,
		CruiseTurnsPerSec: c.Spin.CruiseTurnsPerSecond,
		MinExtraTurns:     c.Spin.MinExtraTurns,
	}
}

// TotalDuration returns the default total spin time
func (c Config) TotalDuration() time.Duration {
	return secondsToDuration(c.Spin.TotalSeconds)
}

// DecelDuration returns the default deceleration time
func (c Config) DecelDuration() time.Duration {
	return secondsToDuration(c.Spin.DecelSeconds)
}

// FrameInterval returns the tick interval from the configured frame rate
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.UI.FrameRateHz)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
