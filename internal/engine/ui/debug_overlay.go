package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/notreal/internal/config"
	"github.com/Faultbox/notreal/internal/engine/camera"
	"github.com/Faultbox/notreal/internal/engine/timing"
)

// Slider ranges.
const (
	maxMovementSpeed    = 20.0
	maxMouseSensitivity = 1.0
)

// OverlayState is what the overlay shows and edits for one frame.
// Pointers are edited in place by the widgets.
type OverlayState struct {
	Sample     timing.Sample
	Camera     *camera.Camera
	Wireframe  *bool
	LightParty *bool
	Looking    bool

	// LookButton is the configured config.Look* mode, shown in the controls hint.
	LookButton string

	// OnReset is called when the reset button is pressed.
	OnReset func()
}

// DebugOverlay renders frame statistics and camera controls.
type DebugOverlay struct {
	Visible bool
}

// NewDebugOverlay creates a debug overlay.
func NewDebugOverlay(visible bool) *DebugOverlay {
	return &DebugOverlay{Visible: visible}
}

// Render draws the overlay. While the cursor is over it ImGui wants the mouse,
// which the input layer reports as captured.
func (d *DebugOverlay) Render(s *OverlayState) {
	if !d.Visible || s.Camera == nil {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##DebugOverlay", nil, flags) {
		d.renderFPS(s.Sample)
		d.renderCamera(s.Camera)
		d.renderControls(s)

		imgui.Separator()
		imgui.TextDisabled(controlsHint(s.LookButton, s.Looking))
	}
	imgui.End()

	imgui.PopStyleVar()
}

func (d *DebugOverlay) renderFPS(s timing.Sample) {
	imgui.TextColored(fpsColor(s.FPS), fmt.Sprintf("FPS: %d (avg %d)", s.FPS, s.AverageFPS))
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("(%.3f ms)", float64(s.FrameTime.Microseconds())/1000.0))
}

func (d *DebugOverlay) renderCamera(c *camera.Camera) {
	imgui.Separator()
	imgui.Text("Pos:   " + formatVec3(c.Position))
	imgui.Text("Front: " + formatVec3(c.Front()))
	imgui.Text(fmt.Sprintf("Yaw: %.1f  Pitch: %.1f  FOV: %.1f", c.Yaw(), c.Pitch(), c.Zoom()))
}

func (d *DebugOverlay) renderControls(s *OverlayState) {
	imgui.Separator()

	c := s.Camera
	imgui.SliderFloat("Speed", &c.MovementSpeed, 0, maxMovementSpeed)
	imgui.SliderFloat("Sensitivity", &c.MouseSensitivity, 0, maxMouseSensitivity)

	fov := c.Zoom()
	if imgui.SliderFloat("FOV", &fov, camera.MinZoom, camera.MaxZoom) {
		c.SetZoom(fov)
	}

	if s.Wireframe != nil {
		imgui.Checkbox("Wireframe", s.Wireframe)
	}
	if s.LightParty != nil {
		imgui.SameLine()
		imgui.Checkbox("Light party", s.LightParty)
	}

	if imgui.Button("Reset camera") && s.OnReset != nil {
		s.OnReset()
	}
}

// controlsHint describes the camera controls for the configured look mode.
func controlsHint(lookButton string, looking bool) string {
	switch {
	case lookButton == config.LookAlways:
		return "WASD move, mouse look, wheel zoom"
	case looking:
		return "Looking (release to stop)"
	case lookButton == config.LookLeft:
		return "WASD move, hold LMB look, wheel zoom"
	default:
		return "WASD move, hold RMB look, wheel zoom"
	}
}

// fpsColor grades a frame rate green, yellow or red.
func fpsColor(fps int) imgui.Vec4 {
	switch {
	case fps < 30:
		return imgui.NewVec4(1.0, 0.2, 0.2, 1.0)
	case fps < 60:
		return imgui.NewVec4(1.0, 1.0, 0.2, 1.0)
	default:
		return imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
	}
}

func formatVec3(v mgl32.Vec3) string {
	return fmt.Sprintf("%7.2f %7.2f %7.2f", v[0], v[1], v[2])
}
