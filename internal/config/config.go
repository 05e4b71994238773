package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "peek"

// Image protocols accepted by image_protocol.
const (
	ProtocolAuto  = "auto"
	ProtocolKitty = "kitty"
	ProtocolSixel = "sixel"
	ProtocolNone  = "none"
)

type Config struct {
	// Zoom
	ZoomStep float64 `koanf:"zoom_step"` // default: 0.5
	MinZoom  float64 `koanf:"min_zoom"`  // default: 0.5
	MaxZoom  float64 `koanf:"max_zoom"`  // default: 4

	// Navigation
	Loop      bool `koanf:"loop"`
	Recursive bool `koanf:"recursive"` // descend into directories given on the command line

	// Interaction (all default: true)
	CloseOnEscape       *bool `koanf:"close_on_escape"`
	CloseOnOverlayClick *bool `koanf:"close_on_overlay_click"`
	KeyboardNavigation  *bool `koanf:"keyboard_navigation"`

	// Display (all default: true)
	ShowControls   *bool `koanf:"show_controls"`
	ShowNavigation *bool `koanf:"show_navigation"`
	ShowCounter    *bool `koanf:"show_counter"`
	Thumbnails     *bool `koanf:"thumbnails"`

	// Session (all default: true)
	RememberPosition *bool `koanf:"remember_position"` // reopen a gallery at the image last shown
	Watch            *bool `koanf:"watch"`             // rescan directories when files change

	ImageProtocol string `koanf:"image_protocol"` // "auto", "kitty", "sixel", "none"
	Background    string `koanf:"background"`     // hex colour behind the image
	FrameRate     int    `koanf:"frame_rate"`     // drag/pinch updates per second (default: 60)

	CacheDir string `koanf:"cache_dir"` // default: $XDG_CACHE_HOME/peek
}

// Load reads the config files in priority order (last wins), then extra
// files given by the caller.
func Load(extra ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	for _, path := range extra {
		path = expandPath(path)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ImageProtocol = strings.ToLower(strings.TrimSpace(cfg.ImageProtocol))
	if cfg.CacheDir != "" {
		cfg.CacheDir = expandPath(cfg.CacheDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/peek/config.toml
	xdgPath := filepath.Join(xdg.ConfigHome, appName, "config.toml")
	paths = append(paths, xdgPath)

	// 2. ~/.config/peek/config.toml, when XDG_CONFIG_HOME points elsewhere
	if home, err := os.UserHomeDir(); err == nil {
		if p := filepath.Join(home, ".config", appName, "config.toml"); p != xdgPath {
			paths = append(paths, p)
		}
	}

	// 3. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ViewerConfig is the resolved viewer configuration.
type ViewerConfig struct {
	ZoomStep            float64
	MinZoom             float64
	MaxZoom             float64
	Loop                bool
	CloseOnEscape       bool
	CloseOnOverlayClick bool
	KeyboardNavigation  bool
	ShowControls        bool
	ShowNavigation      bool
	ShowCounter         bool
}

// GetViewerConfig returns the viewer configuration with defaults applied.
// A min_zoom above max_zoom is kept as written.
func (c *Config) GetViewerConfig() ViewerConfig {
	cfg := ViewerConfig{
		ZoomStep:            c.ZoomStep,
		MinZoom:             c.MinZoom,
		MaxZoom:             c.MaxZoom,
		Loop:                c.Loop,
		CloseOnEscape:       boolOr(c.CloseOnEscape, true),
		CloseOnOverlayClick: boolOr(c.CloseOnOverlayClick, true),
		KeyboardNavigation:  boolOr(c.KeyboardNavigation, true),
		ShowControls:        boolOr(c.ShowControls, true),
		ShowNavigation:      boolOr(c.ShowNavigation, true),
		ShowCounter:         boolOr(c.ShowCounter, true),
	}

	if cfg.ZoomStep <= 0 {
		cfg.ZoomStep = 0.5
	}
	if cfg.MinZoom <= 0 {
		cfg.MinZoom = 0.5
	}
	if cfg.MaxZoom <= 0 {
		cfg.MaxZoom = 4
	}

	return cfg
}

// GetImageProtocol returns the configured protocol, "auto" when unset or
// unknown.
func (c *Config) GetImageProtocol() string {
	switch c.ImageProtocol {
	case ProtocolKitty, ProtocolSixel, ProtocolNone:
		return c.ImageProtocol
	}
	return ProtocolAuto
}

// GetFrameRate returns the gesture update rate, between 1 and 240.
func (c *Config) GetFrameRate() int {
	if c.FrameRate <= 0 {
		return 60
	}
	return min(c.FrameRate, 240)
}

// ThumbnailsEnabled reports whether the thumbnail strip is shown.
func (c *Config) ThumbnailsEnabled() bool {
	return boolOr(c.Thumbnails, true)
}

// RememberPositionEnabled reports whether the last shown image is saved
// per gallery.
func (c *Config) RememberPositionEnabled() bool {
	return boolOr(c.RememberPosition, true)
}

// WatchEnabled reports whether scanned directories are watched for
// changes.
func (c *Config) WatchEnabled() bool {
	return boolOr(c.Watch, true)
}

// GetBackground returns the background colour, "#000000" when unset.
func (c *Config) GetBackground() string {
	if c.Background == "" {
		return "#000000"
	}
	return c.Background
}

// GetCacheDir returns the directory for cached renders.
func (c *Config) GetCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return filepath.Join(xdg.CacheHome, appName)
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
