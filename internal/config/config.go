package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phanxgames/spheregrid"
)

// Config is the demo's JSON configuration file.
type Config struct {
	Title    string `json:"title"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	ShowFPS  bool   `json:"show_fps"`
	AssetDir string `json:"asset_dir"`

	ThumbSize        int    `json:"thumb_size"`
	ScreenshotDir    string `json:"screenshot_dir"`
	ScreenshotFormat string `json:"screenshot_format"`

	Engine EngineConfig      `json:"engine"`
	Items  []spheregrid.Item `json:"items"`
}

// EngineConfig mirrors spheregrid.Config. Pointer fields distinguish "not
// set" from an explicit zero so file values only override what they name.
type EngineConfig struct {
	ContainerSize    *float64 `json:"container_size"`
	SphereRadius     *float64 `json:"sphere_radius"`
	DragSensitivity  *float64 `json:"drag_sensitivity"`
	MomentumDecay    *float64 `json:"momentum_decay"`
	MaxRotationSpeed *float64 `json:"max_rotation_speed"`
	BaseItemScale    *float64 `json:"base_item_scale"`
	HoverScale       *float64 `json:"hover_scale"`
	Perspective      *float64 `json:"perspective"`
	AutoRotate       *bool    `json:"auto_rotate"`
	AutoRotateSpeed  *float64 `json:"auto_rotate_speed"`
	InitialPitch     *float64 `json:"initial_pitch"`
	InitialYaw       *float64 `json:"initial_yaw"`
	Seed             *uint64  `json:"seed"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetDir         string
	ScreenshotFormat string
	ShowFPS          bool
	AutoRotate       bool
	Debug            bool
	Seed             uint64
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.AssetDir != "" && !filepath.IsAbs(cfg.AssetDir) {
		cfg.AssetDir = filepath.Join(filepath.Dir(path), cfg.AssetDir)
	}
	return cfg, nil
}

// Resolve fills empty fields with defaults. CLI flags take priority when
// non-zero.
func (c *Config) Resolve(flags Flags) {
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.ScreenshotFormat != "" {
		c.ScreenshotFormat = flags.ScreenshotFormat
	}
	if flags.ShowFPS {
		c.ShowFPS = true
	}
	if flags.AutoRotate {
		t := true
		c.Engine.AutoRotate = &t
	}
	if flags.Seed != 0 {
		c.Engine.Seed = &flags.Seed
	}

	if c.Title == "" {
		c.Title = "Sphere Grid"
	}
	if c.ThumbSize <= 0 {
		c.ThumbSize = 128
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
}

// EngineSettings returns spheregrid.DefaultConfig overlaid with every value
// the file set.
func (c Config) EngineSettings(debug bool) spheregrid.Config {
	out := spheregrid.DefaultConfig()
	e := c.Engine
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&out.ContainerSize, e.ContainerSize)
	setF(&out.SphereRadius, e.SphereRadius)
	setF(&out.DragSensitivity, e.DragSensitivity)
	setF(&out.MomentumDecay, e.MomentumDecay)
	setF(&out.MaxRotationSpeed, e.MaxRotationSpeed)
	setF(&out.BaseItemScale, e.BaseItemScale)
	setF(&out.HoverScale, e.HoverScale)
	setF(&out.Perspective, e.Perspective)
	setF(&out.AutoRotateSpeed, e.AutoRotateSpeed)
	setF(&out.InitialPitch, e.InitialPitch)
	setF(&out.InitialYaw, e.InitialYaw)
	if e.AutoRotate != nil {
		out.AutoRotate = *e.AutoRotate
	}
	if e.Seed != nil {
		out.Seed = *e.Seed
	}
	out.Debug = debug
	return out
}
