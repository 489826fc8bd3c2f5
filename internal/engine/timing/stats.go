package timing

import (
	"fmt"
	"time"
)

// historySize is the number of one-second FPS samples averaged.
const historySize = 10

// Sample is a once-per-second frame rate report.
type Sample struct {
	FPS        int           // Frames in the last second
	AverageFPS int           // Mean over the last historySize seconds
	FrameTime  time.Duration // Duration of the most recent frame
	Uptime     time.Duration // Time since the first frame
}

// Title formats the sample as a window title.
func (s Sample) Title(prefix string) string {
	return fmt.Sprintf("%s | %d FPS/%d AFPS | %.3f MSPF | %dS",
		prefix,
		s.FPS,
		s.AverageFPS,
		float64(s.FrameTime.Microseconds())/1000.0,
		int(s.Uptime/time.Second),
	)
}

// FrameStats counts frames and reports FPS once per second.
type FrameStats struct {
	frames      int
	windowStart time.Duration

	history [historySize]int
	next    int
	filled  int
}

// Frame records one frame. uptime is the time since the first frame and
// frameTime the duration of this frame. It returns a sample and true when a
// full second has been accumulated.
//
// If more than one extra second passed since the window started (the process
// stalled or the window was dragged) the window restarts without reporting.
func (f *FrameStats) Frame(uptime, frameTime time.Duration) (Sample, bool) {
	f.frames++

	elapsed := uptime - f.windowStart
	if elapsed >= 2*time.Second {
		f.windowStart = uptime
		f.frames = 0
		return Sample{}, false
	}
	if elapsed < time.Second {
		return Sample{}, false
	}

	f.history[f.next] = f.frames
	f.next = (f.next + 1) % historySize
	if f.filled < historySize {
		f.filled++
	}

	sum := 0
	for i := 0; i < f.filled; i++ {
		sum += f.history[i]
	}

	s := Sample{
		FPS:        f.frames,
		AverageFPS: sum / f.filled,
		FrameTime:  frameTime,
		Uptime:     uptime,
	}

	f.frames = 0
	f.windowStart = uptime

	return s, true
}
