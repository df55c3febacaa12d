package sticker

// Gesture state machines. Each gesture stream derives its begin/change/
// end phases from per-frame pointer state: a press inside the relevant
// region begins the stream and captures a snapshot, held-button frames
// are change phases computed as deltas against that snapshot, and a
// release ends it. Early termination by the host (e.g. the window loses
// the pointer) is delivered as a release and therefore ends the stream
// the same way; there are no distinct cancel semantics.

// moveGesture tracks the drag stream on the widget body.
type moveGesture struct {
	active       bool
	startPointer Vec2 // pointer location at begin
	startCenter  Vec2 // widget center at begin
	moved        bool // pointer travelled beyond the tap slop
}

// rotateGesture tracks the drag stream on the rotate-resize handle.
type rotateGesture struct {
	active          bool
	angleOffset     float32 // pointer angle at begin minus rotation at begin
	initialBounds   Size    // widget bounds at begin
	initialDistance float32 // pointer-to-center distance at begin
}

// GestureActive reports whether a gesture stream is currently in its
// begin/changed phase. The canvas uses this to keep routing pointer
// frames to the sticker that grabbed the pointer, even after it leaves
// the sticker's bounds.
func (s *Sticker) GestureActive() bool {
	return s.move.active || s.rotate.active
}

// HandlePointer feeds one frame of pointer state to the sticker.
// Returns true if the sticker consumed the input (a gesture is active or
// was begun this frame). A closed sticker ignores all input.
func (s *Sticker) HandlePointer(in *PointerState) bool {
	if s.closed || in == nil {
		return false
	}
	p := in.Pos()

	// In-flight streams keep the pointer until release.
	if s.rotate.active {
		s.trackRotateResize(in, p)
		return true
	}
	if s.move.active {
		s.trackMove(in, p)
		return true
	}

	if !in.Pressed(PointerPrimary) {
		return false
	}

	local := s.worldToLocal(p)

	// Handles take priority over the body.
	if h := s.hitHandle(local); h != nil {
		switch h.kind {
		case HandleClose:
			s.Close()
		case HandleFlip:
			s.Flip()
		case HandleRotate:
			s.beginRotateResize(p)
		}
		return true
	}

	if s.localBounds().Contains(local) {
		s.beginMove(p)
		return true
	}
	return false
}

// hitHandle returns the interactive handle containing the local-space
// point, or nil.
func (s *Sticker) hitHandle(local Vec2) *Handle {
	for _, h := range s.handles {
		if h.interactive && s.handleRect(h).Contains(local) {
			return h
		}
	}
	return nil
}

// handleRect returns a handle's rectangle in local space, centered on
// its content-frame corner anchor.
func (s *Sticker) handleRect(h *Handle) Rect {
	corner := anchorPoint(s.contentFrame(), h.anchor)
	hs := s.handleSize
	return Rect{X: corner.X - hs/2, Y: corner.Y - hs/2, W: hs, H: hs}
}

// beginMove captures the move snapshot and emits the begin callback.
func (s *Sticker) beginMove(p Vec2) {
	s.move = moveGesture{
		active:       true,
		startPointer: p,
		startCenter:  s.center,
	}
	if s.delegate != nil {
		s.delegate.StickerBeginMoving(s)
	}
}

// trackMove handles change and end phases of the move stream.
// The new center is a pure delta against the snapshot, not re-derived
// from the absolute pointer position.
func (s *Sticker) trackMove(in *PointerState, p Vec2) {
	newCenter := s.move.startCenter.Add(p.Sub(s.move.startPointer))
	s.applyTranslation(newCenter)

	if p.Sub(s.move.startPointer).Len() > tapSlop {
		s.move.moved = true
	}

	if in.Down(PointerPrimary) {
		if s.delegate != nil {
			s.delegate.StickerMoving(s)
		}
		return
	}

	// Release: end phase, then the pass-through tap if the pointer
	// never travelled.
	s.move.active = false
	if s.delegate != nil {
		s.delegate.StickerEndMoving(s)
		if !s.move.moved {
			s.delegate.StickerTapped(s)
		}
	}
}

// beginRotateResize captures the rotate-resize snapshot and emits the
// begin callback.
func (s *Sticker) beginRotateResize(p Vec2) {
	v := p.Sub(s.center)
	s.rotate = rotateGesture{
		active:          true,
		angleOffset:     v.Angle() - s.rotation,
		initialBounds:   s.bounds,
		initialDistance: v.Len(),
	}
	if s.delegate != nil {
		s.delegate.StickerBeginRotating(s)
	}
}

// trackRotateResize handles change and end phases of the rotate-resize
// stream.
func (s *Sticker) trackRotateResize(in *PointerState, p Vec2) {
	if !in.Down(PointerPrimary) {
		// End phase mutates nothing further.
		s.rotate.active = false
		if s.delegate != nil {
			s.delegate.StickerEndRotating(s)
		}
		return
	}

	v := p.Sub(s.center)
	angleDelta := s.rotate.angleOffset - v.Angle()

	// A gesture that began exactly at the center has no usable distance
	// reference; treat the ratio as 1 instead of dividing by zero.
	ratio := float32(1)
	if s.rotate.initialDistance > 0 {
		ratio = v.Len() / s.rotate.initialDistance
	}

	s.applyRotationAndScale(angleDelta, ratio, s.rotate.initialBounds)
	if s.delegate != nil {
		s.delegate.StickerRotating(s)
	}
}
