package sticker

// flipDuration is the fixed duration of the flip transition in seconds.
const flipDuration float32 = 0.3

// flipAnimation animates the content's horizontal mirror factor toward
// +1 (normal) or -1 (mirrored). The transition is fire-and-forget: the
// sticker does not await completion, and a new flip tap while one is in
// flight simply retargets the animation.
type flipAnimation struct {
	mirror float32 // current factor applied to content x-offsets
	target float32 // +1 or -1
}

func newFlipAnimation() flipAnimation {
	return flipAnimation{mirror: 1, target: 1}
}

// Start toggles the flip target, restarting/interrupting any in-flight
// transition.
func (f *flipAnimation) Start() {
	f.target = -f.target
}

// Update advances the transition by dt seconds.
// Returns true while still animating.
func (f *flipAnimation) Update(dt float32) bool {
	if f.mirror == f.target {
		return false
	}
	// The full sweep covers 2 units of mirror factor.
	step := dt * 2 / flipDuration
	if f.mirror < f.target {
		f.mirror = clampf(f.mirror+step, -1, f.target)
	} else {
		f.mirror = clampf(f.mirror-step, f.target, 1)
	}
	return f.mirror != f.target
}

// Animating reports whether a transition is in flight.
func (f *flipAnimation) Animating() bool {
	return f.mirror != f.target
}

// Flipped reports the logical flip state (the state the animation is
// heading toward).
func (f *flipAnimation) Flipped() bool {
	return f.target < 0
}
