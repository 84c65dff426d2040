// Package config loads the harness preferences from a YAML file, an optional .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/shaderlab.yaml"

// ErrMalformed is wrapped when the preferences file exists but cannot be decoded.
var ErrMalformed = errors.New("malformed config")

// WindowPrefs sizes and titles the window.
type WindowPrefs struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// LogPrefs selects where log lines go and how verbose they are.
type LogPrefs struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// CameraPrefs holds the camera start transform and per-tick step sizes. Angles are in degrees.
type CameraPrefs struct {
	Start     [3]float32 `yaml:"start,flow"`
	YawDeg    float32    `yaml:"yaw"`
	PitchDeg  float32    `yaml:"pitch"`
	MoveStep  float32    `yaml:"move_step"`
	ClimbStep float32    `yaml:"climb_step"`
	TurnDeg   float32    `yaml:"turn_step"`
	Fovy      float32    `yaml:"fovy"`
}

// BatchPrefs is the global modifier of the instance batch.
type BatchPrefs struct {
	Scale float32 `yaml:"scale"`
	Color string  `yaml:"color"`
}

// Prefs holds every user preference. Fields missing from the file keep their Default value.
type Prefs struct {
	Window  WindowPrefs       `yaml:"window"`
	Log     LogPrefs          `yaml:"log"`
	Camera  CameraPrefs       `yaml:"camera"`
	Batch   BatchPrefs        `yaml:"batch"`
	Keys    map[string]string `yaml:"keys,omitempty"`
	Style   string            `yaml:"style,omitempty"`
	Font    string            `yaml:"font,omitempty"`
	Startup []string          `yaml:"startup,omitempty"`
	ShowFPS bool              `yaml:"show_fps"`
	Capture string            `yaml:"capture_dir"`
}

// Default returns the stock preferences: an 800x600 window looking down +Z from the origin.
func Default() Prefs {
	return Prefs{
		Window: WindowPrefs{Width: 800, Height: 600, Title: "shaderlab", TargetFPS: 60},
		Log:    LogPrefs{Path: "logs/shaderlab.txt", Level: "info"},
		Camera: CameraPrefs{
			YawDeg:    90,
			MoveStep:  1,
			ClimbStep: 1,
			TurnDeg:   1,
			Fovy:      45,
		},
		Batch:   BatchPrefs{Scale: 2, Color: "#ffffff"},
		ShowFPS: true,
		Capture: "captures",
	}
}

// Clone returns a deep copy of p, so maps and slices can be changed without touching p.
func (p Prefs) Clone() Prefs {
	var out Prefs
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for identical types
		return p
	}
	return out
}

// Load reads preferences from path, overlaying them onto Default(). A missing file yields the defaults
// and no error; a malformed file yields the defaults and an error wrapping ErrMalformed.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return p, nil
}

// Validate rejects values the window and camera cannot work with.
func (p Prefs) Validate() error {
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", p.Window.Width, p.Window.Height)
	}
	if p.Window.TargetFPS < 0 {
		return fmt.Errorf("target_fps %d must not be negative", p.Window.TargetFPS)
	}
	if p.Camera.Fovy <= 0 || p.Camera.Fovy >= 180 {
		return fmt.Errorf("fovy %v out of range (0, 180)", p.Camera.Fovy)
	}
	return nil
}

// Save writes p to path as YAML, creating the parent directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
