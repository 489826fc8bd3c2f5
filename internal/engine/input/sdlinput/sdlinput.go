// Package sdlinput translates SDL2 events into viewer input events.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/notreal/internal/engine/input"
)

// keyFor binds SDL keycodes to logical keys. Arrow keys mirror WASD.
func keyFor(sym sdl.Keycode) (input.Key, bool) {
	switch sym {
	case sdl.K_w, sdl.K_UP:
		return input.KeyForward, true
	case sdl.K_s, sdl.K_DOWN:
		return input.KeyBackward, true
	case sdl.K_a, sdl.K_LEFT:
		return input.KeyLeft, true
	case sdl.K_d, sdl.K_RIGHT:
		return input.KeyRight, true
	case sdl.K_ESCAPE:
		return input.KeyExit, true
	case sdl.K_SPACE:
		return input.KeyWireframe, true
	case sdl.K_F12:
		return input.KeyScreenshot, true
	}
	return 0, false
}

// Poll drains the SDL event queue and returns this frame's events.
// buf is reused to avoid a per-frame allocation.
func Poll(buf []input.Event) []input.Event {
	buf = buf[:0]
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		buf = Translate(ev, buf)
	}
	return buf
}

// Translate appends the viewer events for one SDL event to dst.
// Mouse motion uses the relative offsets SDL reports, so it works with the
// cursor captured; y is inverted because window coordinates grow downward.
func Translate(ev sdl.Event, dst []input.Event) []input.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		dst = append(dst, input.Event{Type: input.EventQuit})

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			dst = append(dst, input.Event{Type: input.EventResize, Width: int(e.Data1), Height: int(e.Data2)})
		case sdl.WINDOWEVENT_FOCUS_LOST:
			// Key-up events are not delivered while unfocused
			for _, k := range []input.Key{input.KeyForward, input.KeyBackward, input.KeyLeft, input.KeyRight, input.KeyWireframe} {
				dst = append(dst, input.KeyState(k, false))
			}
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			break
		}
		if k, ok := keyFor(e.Keysym.Sym); ok {
			dst = append(dst, input.KeyState(k, e.State == sdl.PRESSED))
		}

	case *sdl.MouseMotionEvent:
		if e.XRel != 0 || e.YRel != 0 {
			dst = append(dst, input.MouseMove(float32(e.XRel), float32(-e.YRel)))
		}

	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		if y != 0 {
			dst = append(dst, input.Scroll(y))
		}
	}
	return dst
}
