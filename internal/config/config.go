package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"blockfolio/internal/eventbus"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version      int                `toml:"version"`
	TimelinePath string             `toml:"timeline_path"` // empty means the embedded timeline
	Navigation   NavigationSettings `toml:"navigation"`
	UISettings   UISettings         `toml:"ui"`
}

// NavigationSettings tunes the input-to-index policy of the navigation controller
type NavigationSettings struct {
	WheelThreshold float64 `toml:"wheel_threshold"`
	SwipeThreshold float64 `toml:"swipe_threshold"`
	MaxSwipeMs     int     `toml:"max_swipe_ms"` // negative disables the swipe time gate
	TransitionMs   int     `toml:"transition_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowIntro       bool    `toml:"show_intro"`
	Mouse           bool    `toml:"mouse"`
	WheelStep       float64 `toml:"wheel_step"`      // delta units per wheel notch
	SwipeRowUnits   float64 `toml:"swipe_row_units"` // delta units per dragged terminal row
	FrameIntervalMs int     `toml:"frame_interval_ms"`
	ToastMs         int     `toml:"toast_ms"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "blockfolio", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus to a config service
func WithBus(svc ConfigService, bus eventbus.EventBus) ConfigService {
	if cs, ok := svc.(*configService); ok {
		cs.bus = bus
	}
	return svc
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: ""})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	n := c.Navigation
	switch {
	case !positive(n.WheelThreshold):
		return fmt.Errorf("%w: navigation.wheel_threshold must be positive", ErrInvalid)
	case !positive(n.SwipeThreshold):
		return fmt.Errorf("%w: navigation.swipe_threshold must be positive", ErrInvalid)
	case n.MaxSwipeMs == 0:
		return fmt.Errorf("%w: navigation.max_swipe_ms must be positive or negative to disable the gate", ErrInvalid)
	case n.TransitionMs <= 0:
		return fmt.Errorf("%w: navigation.transition_ms must be positive", ErrInvalid)
	}

	u := c.UISettings
	switch {
	case !positive(u.WheelStep):
		return fmt.Errorf("%w: ui.wheel_step must be positive", ErrInvalid)
	case !positive(u.SwipeRowUnits):
		return fmt.Errorf("%w: ui.swipe_row_units must be positive", ErrInvalid)
	case u.FrameIntervalMs < 1 || u.FrameIntervalMs > 1000:
		return fmt.Errorf("%w: ui.frame_interval_ms must be between 1 and 1000", ErrInvalid)
	case u.ToastMs <= 0:
		return fmt.Errorf("%w: ui.toast_ms must be positive", ErrInvalid)
	}
	return nil
}

// positive reports whether v is a finite number above zero
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// TransitionDuration returns the eased transition length
func (n NavigationSettings) TransitionDuration() time.Duration {
	return time.Duration(n.TransitionMs) * time.Millisecond
}

// MaxSwipeTime returns the swipe time gate; negative means disabled
func (n NavigationSettings) MaxSwipeTime() time.Duration {
	return time.Duration(n.MaxSwipeMs) * time.Millisecond
}

// FrameInterval returns the delay between animation frames
func (u UISettings) FrameInterval() time.Duration {
	return time.Duration(u.FrameIntervalMs) * time.Millisecond
}

// ToastDuration returns how long status messages stay visible
func (u UISettings) ToastDuration() time.Duration {
	return time.Duration(u.ToastMs) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Navigation: NavigationSettings{
			WheelThreshold: 50,
			SwipeThreshold: 50,
			MaxSwipeMs:     300,
			TransitionMs:   800,
		},
		UISettings: UISettings{
			ShowIntro:       true,
			Mouse:           true,
			WheelStep:       30,
			SwipeRowUnits:   10,
			FrameIntervalMs: 16,
			ToastMs:         2000,
		},
	}
}
