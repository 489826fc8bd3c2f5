// Package config handles viewer configuration loading and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Input    InputConfig    `yaml:"input"`
	Scene    SceneConfig    `yaml:"scene"`
	UI       UIConfig       `yaml:"ui"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Vec3 is a YAML-friendly 3D vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// UnmarshalYAML accepts either a mapping {x, y, z} or a sequence [x, y, z].
func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var xyz []float32
		if err := value.Decode(&xyz); err != nil {
			return err
		}
		if len(xyz) != 3 {
			return fmt.Errorf("line %d: vector needs 3 components, got %d", value.Line, len(xyz))
		}
		v.X, v.Y, v.Z = xyz[0], xyz[1], xyz[2]
		return nil
	}

	type plain Vec3
	return value.Decode((*plain)(v))
}

// Vec converts to an mgl32 vector.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	NearPlane  float32 `yaml:"near_plane"`
	FarPlane   float32 `yaml:"far_plane"`
	ClearColor Vec3    `yaml:"clear_color"`
}

// CameraConfig holds the initial camera state and tuning.
type CameraConfig struct {
	Position         Vec3    `yaml:"position"`
	Yaw              float32 `yaml:"yaw"`
	Pitch            float32 `yaml:"pitch"`
	MovementSpeed    float32 `yaml:"movement_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	Zoom             float32 `yaml:"zoom"`
	ZoomSensitivity  float32 `yaml:"zoom_sensitivity"`
	ConstrainPitch   bool    `yaml:"constrain_pitch"`
}

// Look button names.
const (
	LookRight  = "right"
	LookLeft   = "left"
	LookAlways = "always"
)

// InputConfig holds mouse-look behaviour.
type InputConfig struct {
	LookButton string `yaml:"look_button"` // right, left or always
}

// SceneConfig holds scene contents.
type SceneConfig struct {
	LightPosition Vec3 `yaml:"light_position"`
	ObjectColor   Vec3 `yaml:"object_color"`
	LightParty    bool `yaml:"light_party"`
	Wireframe     bool `yaml:"wireframe"`
}

// UIConfig holds debug overlay settings.
type UIConfig struct {
	ShowOverlay bool `yaml:"show_overlay"`
}

// DebugConfig holds screenshot settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Notreal Engine",
			Width:      1600,
			Height:     900,
			Fullscreen: false,
			VSync:      false,
			FPSLimit:   0,
			NearPlane:  0.01,
			FarPlane:   100.0,
			ClearColor: Vec3{0.1, 0.1, 0.1},
		},
		Camera: CameraConfig{
			Position:         Vec3{0, 0, 3},
			Yaw:              -90,
			Pitch:            0,
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			Zoom:             45,
			ZoomSensitivity:  60,
			ConstrainPitch:   true,
		},
		Input: InputConfig{
			LookButton: LookRight,
		},
		Scene: SceneConfig{
			LightPosition: Vec3{1, 2, 0},
			ObjectColor:   Vec3{1.0, 0.5, 0.31},
			LightParty:    true,
			Wireframe:     false,
		},
		UI: UIConfig{
			ShowOverlay: true,
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("graphics: fps_limit %d must not be negative", c.Graphics.FPSLimit))
	}
	if c.Graphics.NearPlane <= 0 || c.Graphics.FarPlane <= c.Graphics.NearPlane {
		errs = append(errs, fmt.Errorf("graphics: need 0 < near_plane (%g) < far_plane (%g)", c.Graphics.NearPlane, c.Graphics.FarPlane))
	}
	if c.Camera.MovementSpeed < 0 {
		errs = append(errs, fmt.Errorf("camera: movement_speed %g must not be negative", c.Camera.MovementSpeed))
	}
	if c.Camera.MouseSensitivity < 0 {
		errs = append(errs, fmt.Errorf("camera: mouse_sensitivity %g must not be negative", c.Camera.MouseSensitivity))
	}
	if c.Camera.ZoomSensitivity < 0 {
		errs = append(errs, fmt.Errorf("camera: zoom_sensitivity %g must not be negative", c.Camera.ZoomSensitivity))
	}
	switch c.Input.LookButton {
	case LookRight, LookLeft, LookAlways:
	default:
		errs = append(errs, fmt.Errorf("input: unknown look_button %q", c.Input.LookButton))
	}

	switch c.Debug.ScreenshotFormat {
	case "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("debug: unknown screenshot_format %q", c.Debug.ScreenshotFormat))
	}

	return errors.Join(errs...)
}
