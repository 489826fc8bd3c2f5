package input

// CursorTracker converts absolute cursor positions into look deltas.
//
// The previous position is initialised lazily from the first sample so the
// first event after (re)arming never produces a jump.
type CursorTracker struct {
	lastX, lastY float32
	armed        bool
}

// Delta returns the offset from the previous sample. The y offset is inverted
// because window coordinates grow downward.
func (t *CursorTracker) Delta(x, y float32) (dx, dy float32) {
	if !t.armed {
		t.lastX, t.lastY = x, y
		t.armed = true
	}

	dx = x - t.lastX
	dy = t.lastY - y

	t.lastX, t.lastY = x, y
	return dx, dy
}

// Reset makes the next sample the new reference point.
func (t *CursorTracker) Reset() {
	t.armed = false
}
