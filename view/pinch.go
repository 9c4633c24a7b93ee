package view

// PinchTracker turns successive two-finger samples into zoom factors relative
// to the first sample of the gesture. Distances are kept squared; only their
// ratio is used.
type PinchTracker struct {
	initial  float64
	anchored bool
}

// Sample records the distance between a and b. The first sample of a gesture
// anchors it and reports ok == false; later samples return current/initial.
// A zero anchor distance cannot produce a ratio, so the next sample re-anchors.
func (t *PinchTracker) Sample(a, b Point) (factor float64, ok bool) {
	d := a.DistanceSq(b)
	if !t.anchored || t.initial == 0 {
		t.initial = d
		t.anchored = true
		return 0, false
	}
	return d / t.initial, true
}

// Initial returns the anchored squared distance, if any.
func (t *PinchTracker) Initial() (float64, bool) {
	return t.initial, t.anchored
}

// Reset clears the anchor so the next gesture starts fresh.
func (t *PinchTracker) Reset() {
	t.initial = 0
	t.anchored = false
}
