package bouncy

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration of the demo programs. Every field is
// optional in the file; missing fields keep their DefaultConfig values.
type Config struct {
	Window        WindowConfig  `yaml:"window"`
	TPS           int           `yaml:"tps"`
	Motion        MotionConfig  `yaml:"motion"`
	Tuning        Tuning        `yaml:"tuning"`
	Flash         time.Duration `yaml:"flash"`
	Palette       Palette       `yaml:"palette"`
	Audio         AudioConfig   `yaml:"audio"`
	Log           LogConfig     `yaml:"log"`
	ShowHUD       bool          `yaml:"show_hud"`
	ScreenshotDir string        `yaml:"screenshot_dir"`
}

// WindowConfig sizes the ebiten window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// MotionConfig is the initial motion of the object.
type MotionConfig struct {
	VelocityX     float64 `yaml:"velocity_x"`
	VelocityY     float64 `yaml:"velocity_y"`
	RotationSpeed float64 `yaml:"rotation_speed"`
}

// AudioConfig controls the bounce tone.
type AudioConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Frequency float64       `yaml:"frequency"`
	Duration  time.Duration `yaml:"duration"`
	Volume    float64       `yaml:"volume"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	Output     string `yaml:"output"`
	Debug      bool   `yaml:"debug"`
	StatsEvery int    `yaml:"stats_every"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Bouncy Bouncy",
			Width:  640,
			Height: 640,
		},
		TPS: DefaultTPS,
		Motion: MotionConfig{
			VelocityX:     DefaultVelocityX,
			VelocityY:     DefaultVelocityY,
			RotationSpeed: DefaultRotationSpeed,
		},
		Tuning:  DefaultTuning(),
		Flash:   time.Duration(DefaultFlashSeconds * float64(time.Second)),
		Palette: DefaultPalette(),
		Audio: AudioConfig{
			Frequency: 880,
			Duration:  50 * time.Millisecond,
			Volume:    0.5,
		},
		Log: LogConfig{
			Level:      "info",
			Output:     "stderr",
			StatsEvery: DefaultStatsEvery,
		},
		ShowHUD:       true,
		ScreenshotDir: "screenshots",
	}
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads path and parses it with ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate rejects values the demo cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("invalid config: window size %dx%d", c.Window.Width, c.Window.Height)
	case c.TPS <= 0:
		return errors.Errorf("invalid config: tps %d must be positive", c.TPS)
	case c.Tuning.Increase <= 0 || c.Tuning.Decrease <= 0:
		return errors.Errorf("invalid config: tuning factors %v/%v must be positive", c.Tuning.Increase, c.Tuning.Decrease)
	case c.Flash < 0:
		return errors.Errorf("invalid config: flash %v is negative", c.Flash)
	case c.Audio.Enabled && c.Audio.Frequency <= 0:
		return errors.Errorf("invalid config: audio frequency %v must be positive", c.Audio.Frequency)
	}
	return nil
}

// SimConfig extracts the simulation settings.
func (c Config) SimConfig() SimConfig {
	return SimConfig{
		Motion: MotionState{
			Velocity: Pt(c.Motion.VelocityX, c.Motion.VelocityY),
			Speed:    c.Motion.RotationSpeed,
		},
		Tuning:       c.Tuning,
		TPS:          c.TPS,
		FlashSeconds: c.Flash.Seconds(),
	}
}

// RunConfig extracts the window settings. Script and Logger are left for
// the caller.
func (c Config) RunConfig() RunConfig {
	return RunConfig{
		Title:         c.Window.Title,
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		TPS:           c.TPS,
		ShowHUD:       c.ShowHUD,
		Palette:       c.Palette,
		ScreenshotDir: c.ScreenshotDir,
		Debug:         c.Log.Debug,
		StatsEvery:    c.Log.StatsEvery,
	}
}
