package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging and the overlay")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagSpeed       = flag.Float64("speed", 0, "Camera movement speed in units per second")
	flagSensitivity = flag.Float64("sensitivity", 0, "Mouse sensitivity in degrees per pixel")
	flagFOV         = flag.Float64("fov", 0, "Initial vertical field of view in degrees")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.UI.ShowOverlay = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSpeed > 0 {
		cfg.Camera.MovementSpeed = float32(*flagSpeed)
	}
	if *flagSensitivity > 0 {
		cfg.Camera.MouseSensitivity = float32(*flagSensitivity)
	}
	if *flagFOV > 0 {
		cfg.Camera.Zoom = float32(*flagFOV)
	}
}
