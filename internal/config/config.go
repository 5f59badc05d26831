package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Smallest window the page is laid out for.
	MinWindowWidth  = 1024
	MinWindowHeight = 640

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Product control buttons
	ButtonWidth  = 120
	ButtonHeight = 36
	ButtonGap    = 10

	// Page chrome
	NavHeight   = 56
	ScrollStep  = 60
	LoaderDelay = 2500 * time.Millisecond
)

// Config holds the tunables that can be overridden from a TOML file.
// Files are decoded on top of Default(), so omitted keys keep their defaults.
type Config struct {
	LogLevel string `toml:"log_level"`

	Window    WindowConfig    `toml:"window"`
	Particles ParticleConfig  `toml:"particles"`
	Viewer    ViewerConfig    `toml:"viewer"`
	Trail     TrailConfig     `toml:"trail"`
	Audio     AudioConfig     `toml:"audio"`
	Products  []ProductConfig `toml:"products"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type ParticleConfig struct {
	Count           int     `toml:"count"`
	PointerRadius   float64 `toml:"pointer_radius"`
	ConnectRadius   float64 `toml:"connect_radius"`
	BoundsMargin    float64 `toml:"bounds_margin"`
	MaxOpacity      float64 `toml:"max_opacity"`
	Seed            uint64  `toml:"seed"`
	DisableLinks    bool    `toml:"disable_links"`
	PointerStrength float64 `toml:"pointer_strength"`
}

type ViewerConfig struct {
	Default     string  `toml:"default"`
	Sensitivity float64 `toml:"sensitivity"`
	PitchLimit  float64 `toml:"pitch_limit"`
	AutoRotate  float64 `toml:"auto_rotate"`
	Easing      float64 `toml:"easing"`
	BobAmount   float64 `toml:"bob_amount"`
}

type TrailConfig struct {
	Markers int `toml:"markers"`
	DelayMS int `toml:"delay_ms"`
}

type AudioConfig struct {
	Cues       bool    `toml:"cues"`
	Volume     float64 `toml:"volume"`
	Soundtrack string  `toml:"soundtrack"`
}

// ProductConfig overrides catalog entries by id. An empty PreviewURL keeps
// the built-in one; "-" removes it so the product renders in 3D.
type ProductConfig struct {
	ID         string `toml:"id"`
	PreviewURL string `toml:"preview_url"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Anime CSS Studio - drag to rotate, wheel to scroll, M: music, Esc/Q: quit",
		},
		Particles: ParticleConfig{
			Count:           80,
			PointerRadius:   150,
			ConnectRadius:   120,
			BoundsMargin:    50,
			MaxOpacity:      0.8,
			PointerStrength: 0.01,
		},
		Viewer: ViewerConfig{
			Default:     "album",
			Sensitivity: 0.01,
			PitchLimit:  1,
			AutoRotate:  0.003,
			Easing:      0.05,
			BobAmount:   0.1,
		},
		Trail: TrailConfig{
			Markers: 8,
			DelayMS: 40,
		},
		Audio: AudioConfig{
			Cues:   true,
			Volume: -1,
		},
	}
}

// Load reads path on top of Default(). An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("parse config at %d:%d: %w", row, col, err)
		}
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width < MinWindowWidth || c.Window.Height < MinWindowHeight {
		return fmt.Errorf("invalid window size %dx%d: want at least %dx%d",
			c.Window.Width, c.Window.Height, MinWindowWidth, MinWindowHeight)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("invalid particle count %d", c.Particles.Count)
	}
	if c.Viewer.PitchLimit <= 0 {
		return fmt.Errorf("invalid pitch limit %v", c.Viewer.PitchLimit)
	}
	if c.Viewer.Easing <= 0 || c.Viewer.Easing > 1 {
		return fmt.Errorf("invalid easing %v: want (0, 1]", c.Viewer.Easing)
	}
	if c.Trail.Markers < 0 || c.Trail.DelayMS < 0 {
		return fmt.Errorf("invalid trail %d markers / %dms", c.Trail.Markers, c.Trail.DelayMS)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Delay is the per-marker follow delay of the cursor trail.
func (t TrailConfig) Delay() time.Duration {
	return time.Duration(t.DelayMS) * time.Millisecond
}

// Level maps LogLevel to a slog.Level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}
