// Package config reads and writes the editor settings file.
package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"PixelLab/internal/state"
)

// Config holds the user's editor settings.
type Config struct {
	CanvasWidth  int
	CanvasHeight int
	ZoomLevel    float64
	ShowGrid     bool
	GridMinZoom  float64
	BrushSize    int
	EraserSize   int
	HistorySize  int
	Palette      []string
	LastProject  string
}

const (
	configFile = "config.toml"
	appDir     = "pixellab"

	MaxCanvasSize = state.MaxCanvasSize
)

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		CanvasWidth:  32,
		CanvasHeight: 32,
		ZoomLevel:    10,
		ShowGrid:     true,
		GridMinZoom:  4,
		BrushSize:    3,
		EraserSize:   3,
		HistorySize:  50,
		Palette: []string{
			"#000000", "#ffffff", "#808080", "#ff0000",
			"#00ff00", "#0000ff", "#ffff00", "#00ffff",
			"#ff00ff", "#ff8000", "#8000ff", "#008040",
		},
	}
}

// Path returns the settings file location under the XDG config directory.
func Path() string {
	return filepath.Join(Dir(), configFile)
}

// Dir returns the directory holding the settings file.
func Dir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), appDir)
}

// Load reads the settings at path, writing the defaults there first if the
// file does not exist. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	ok, err := exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !ok {
		log.Printf("[CONFIG] initializing %s", path)
		if err := Save(path, conf); err != nil {
			return nil, err
		}
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	conf.Validate()
	return conf, nil
}

// Save writes conf to path, creating the directory if needed.
func Save(path string, conf *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate pulls out-of-range settings back into range.
func (c *Config) Validate() {
	d := Default()
	clampInt(&c.CanvasWidth, 1, MaxCanvasSize, "CanvasWidth")
	clampInt(&c.CanvasHeight, 1, MaxCanvasSize, "CanvasHeight")
	clampInt(&c.BrushSize, 1, 100, "BrushSize")
	clampInt(&c.EraserSize, 1, 10, "EraserSize")
	clampInt(&c.HistorySize, 2, 1000, "HistorySize")
	if c.ZoomLevel < 0.5 || c.ZoomLevel > 100 {
		log.Printf("[CONFIG] ZoomLevel %v out of range, using %v", c.ZoomLevel, d.ZoomLevel)
		c.ZoomLevel = d.ZoomLevel
	}
	if c.GridMinZoom <= 0 {
		c.GridMinZoom = d.GridMinZoom
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
}

func clampInt(v *int, lo, hi int, name string) {
	if *v >= lo && *v <= hi {
		return
	}
	n := max(lo, min(hi, *v))
	log.Printf("[CONFIG] %s %d out of range, using %d", name, *v, n)
	*v = n
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	log.Printf("[CONFIG] couldn't resolve $%s, falling back to '%s'", xdg, fallback)
	return fallback
}
