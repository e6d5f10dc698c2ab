package imwin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the main window and its loop.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// VSync waits for the display refresh on swap, which keeps the poll
	// mode from spinning the CPU.
	VSync bool `yaml:"vsync"`
	// PreferHardware asks for a desktop OpenGL context before the GLES fallback.
	PreferHardware bool `yaml:"prefer_hardware"`
	// Hidden creates the window invisible, for offscreen rendering.
	Hidden bool  `yaml:"hidden"`
	Theme  Theme `yaml:"theme"`
	// Background is the clear color as 0xRRGGBBAA. Zero leaves the
	// framebuffer uncleared.
	Background uint32          `yaml:"background"`
	Scheduler  SchedulerConfig `yaml:"scheduler"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:          "imwin",
		Width:          1280,
		Height:         720,
		VSync:          true,
		PreferHardware: true,
		Theme:          ThemeDark,
		Background:     0x1F1F24FF,
		Scheduler: SchedulerConfig{
			InputLinger: DefaultInputLinger,
			InputFrames: DefaultInputFrames,
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a window can't be created with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Scheduler.InputLinger < 0 {
		return fmt.Errorf("negative input_linger %s", c.Scheduler.InputLinger)
	}
	return nil
}

// BackgroundColor returns the clear color, and false if clearing is disabled.
func (c Config) BackgroundColor() (Color, bool) {
	if c.Background == 0 {
		return Color{}, false
	}
	v := c.Background
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// ContextOptions returns the Context options the config implies.
func (c Config) ContextOptions() []ContextOption {
	opts := []ContextOption{WithTheme(c.Theme)}
	if bg, ok := c.BackgroundColor(); ok {
		opts = append(opts, WithBackground(bg))
	}
	return opts
}

// UnmarshalYAML decodes a theme name.
func (t *Theme) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}
