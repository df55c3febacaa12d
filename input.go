package sticker

// PointerButton represents a pointer (mouse/touch) button.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerButtonCount
)

// PointerState holds pointer input for the current frame.
// This is typically populated by the application from GLFW or similar.
// Gesture phases are derived from it: a press begins a gesture, held
// buttons continue it, and a release (or loss of the button for any
// reason) ends it.
type PointerState struct {
	// Pointer position in canvas coordinates
	X, Y float32

	buttonDown     [PointerButtonCount]bool
	buttonPressed  [PointerButtonCount]bool // True on the frame the button went down
	buttonReleased [PointerButtonCount]bool // True on the frame the button went up
}

// NewPointerState creates a new PointerState.
func NewPointerState() *PointerState {
	return &PointerState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *PointerState) Reset() {
	for i := range s.buttonPressed {
		s.buttonPressed[i] = false
	}
	for i := range s.buttonReleased {
		s.buttonReleased[i] = false
	}
}

// SetPos sets the pointer position.
func (s *PointerState) SetPos(x, y float32) {
	s.X = x
	s.Y = y
}

// Pos returns the pointer position.
func (s *PointerState) Pos() Vec2 {
	return Vec2{X: s.X, Y: s.Y}
}

// SetButton sets pointer button state.
func (s *PointerState) SetButton(button PointerButton, down bool) {
	if button < 0 || button >= PointerButtonCount {
		return
	}

	wasDown := s.buttonDown[button]
	s.buttonDown[button] = down

	if down && !wasDown {
		s.buttonPressed[button] = true
	}
	if !down && wasDown {
		s.buttonReleased[button] = true
	}
}

// Down returns true if a pointer button is currently held.
func (s *PointerState) Down(button PointerButton) bool {
	if button < 0 || button >= PointerButtonCount {
		return false
	}
	return s.buttonDown[button]
}

// Pressed returns true if a pointer button was just pressed this frame.
func (s *PointerState) Pressed(button PointerButton) bool {
	if button < 0 || button >= PointerButtonCount {
		return false
	}
	return s.buttonPressed[button]
}

// Released returns true if a pointer button was just released this frame.
func (s *PointerState) Released(button PointerButton) bool {
	if button < 0 || button >= PointerButtonCount {
		return false
	}
	return s.buttonReleased[button]
}
