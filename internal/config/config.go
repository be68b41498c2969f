package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int32  `json:"width" yaml:"width"`
	Height int32  `json:"height" yaml:"height"`
	Title  string `json:"title" yaml:"title"`
}

type MouseLookConfig struct {
	Sensitivity  float32 `json:"sensitivity" yaml:"sensitivity"` // radians per pixel
	InvertY      bool    `json:"invert_y" yaml:"invert_y"`
	InitialYaw   float32 `json:"initial_yaw" yaml:"initial_yaw"`
	InitialPitch float32 `json:"initial_pitch" yaml:"initial_pitch"`
}

type Config struct {
	LogLevel  string          `json:"log_level" yaml:"log_level"`
	ScenePath string          `json:"scene_path" yaml:"scene_path"`
	Window    WindowConfig    `json:"window" yaml:"window"`
	MouseLook MouseLookConfig `json:"mouse_look" yaml:"mouse_look"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		ScenePath: "scene.json",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Gopher3D",
		},
		MouseLook: MouseLookConfig{
			Sensitivity: 0.002,
		},
	}
}

// Load reads a .json, .yaml or .yml config file. A missing file yields the
// defaults without error. Fields left at zero in the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var loaded Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &loaded)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		return cfg, fmt.Errorf("config: unsupported extension %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.merge(loaded)
	return cfg, nil
}

// Save writes cfg in the format implied by the path's extension
func Save(path string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config: unsupported extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c *Config) merge(o Config) {
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.ScenePath != "" {
		c.ScenePath = o.ScenePath
	}
	// Only apply window size if it has non-zero size
	if o.Window.Width > 0 && o.Window.Height > 0 {
		c.Window.Width = o.Window.Width
		c.Window.Height = o.Window.Height
	}
	if o.Window.Title != "" {
		c.Window.Title = o.Window.Title
	}
	if o.MouseLook.Sensitivity > 0 {
		c.MouseLook.Sensitivity = o.MouseLook.Sensitivity
	}
	c.MouseLook.InvertY = o.MouseLook.InvertY
	c.MouseLook.InitialYaw = o.MouseLook.InitialYaw
	c.MouseLook.InitialPitch = o.MouseLook.InitialPitch
}
