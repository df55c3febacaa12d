package sticker

import "testing"

// recordingDelegate records every lifecycle callback for assertions.
type recordingDelegate struct {
	beginMoving, moving, endMoving       int
	beginRotating, rotating, endRotating int
	closed                               int
	tapped                               int
}

func (d *recordingDelegate) StickerBeginMoving(*Sticker)   { d.beginMoving++ }
func (d *recordingDelegate) StickerMoving(*Sticker)        { d.moving++ }
func (d *recordingDelegate) StickerEndMoving(*Sticker)     { d.endMoving++ }
func (d *recordingDelegate) StickerBeginRotating(*Sticker) { d.beginRotating++ }
func (d *recordingDelegate) StickerRotating(*Sticker)      { d.rotating++ }
func (d *recordingDelegate) StickerEndRotating(*Sticker)   { d.endRotating++ }
func (d *recordingDelegate) StickerClosed(*Sticker)        { d.closed++ }
func (d *recordingDelegate) StickerTapped(*Sticker)        { d.tapped++ }

// newTestSticker builds a sticker around 100x100 flat color content with
// the default 22px handles: bounds 122x122, center (61, 61), minimum
// size 44.
func newTestSticker(d Delegate) *Sticker {
	content := NewColorContent(Size{W: 100, H: 100}, ColorGray)
	if d != nil {
		return NewSticker(content, WithDelegate(d))
	}
	return NewSticker(content)
}

func approx(a, b float32) bool {
	diff := a - b
	return diff > -0.01 && diff < 0.01
}

func TestNewSticker_DerivedGeometry(t *testing.T) {
	s := newTestSticker(nil)

	// 22px handles give an 11px content inset on every side.
	if s.inset != 11 {
		t.Errorf("Expected inset 11, got %f", s.inset)
	}
	if s.Bounds() != (Size{W: 122, H: 122}) {
		t.Errorf("Expected bounds 122x122, got %v", s.Bounds())
	}
	if s.Center() != (Vec2{X: 61, Y: 61}) {
		t.Errorf("Expected center (61, 61), got %v", s.Center())
	}
	if s.MinimumSize() != 44 {
		t.Errorf("Expected minimum size 44, got %f", s.MinimumSize())
	}
	if s.Rotation() != 0 {
		t.Errorf("Expected zero rotation, got %f", s.Rotation())
	}
}

func TestNewSticker_NilContentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected NewSticker(nil) to panic")
		}
	}()
	NewSticker(nil)
}

func TestNewSticker_DefaultHandleLayout(t *testing.T) {
	s := newTestSticker(nil)

	cases := []struct {
		kind   HandleKind
		anchor Anchor
	}{
		{HandleClose, AnchorTopLeft},
		{HandleRotate, AnchorBottomRight},
		{HandleFlip, AnchorTopRight},
	}
	for _, c := range cases {
		h := s.HandleFor(c.kind)
		if h == nil {
			t.Fatalf("Missing %v handle", c.kind)
		}
		if h.AnchorPosition() != c.anchor {
			t.Errorf("Expected %v handle at %v, got %v", c.kind, c.anchor, h.AnchorPosition())
		}
		if !h.Visible() || !h.Interactive() {
			t.Errorf("Expected %v handle visible and interactive by default", c.kind)
		}
	}
}

func TestSetMinimumSize_ClampsToInsetFloor(t *testing.T) {
	s := newTestSticker(nil)

	// Below the derived floor: silently clamped up.
	s.SetMinimumSize(10)
	if s.MinimumSize() != 44 {
		t.Errorf("Expected floor clamped to 44, got %f", s.MinimumSize())
	}

	// Above the floor: taken as is.
	s.SetMinimumSize(80)
	if s.MinimumSize() != 80 {
		t.Errorf("Expected floor 80, got %f", s.MinimumSize())
	}
}

func TestSetHandleSize_Relayout(t *testing.T) {
	s := newTestSticker(nil)

	s.SetHandleSize(30)

	if s.HandleSize() != 30 {
		t.Errorf("Expected handle size 30, got %f", s.HandleSize())
	}
	// Inset grows from 11 to 15, so the bounds grow by 8 while the
	// center stays put.
	if s.Bounds() != (Size{W: 130, H: 130}) {
		t.Errorf("Expected bounds 130x130, got %v", s.Bounds())
	}
	if s.Center() != (Vec2{X: 61, Y: 61}) {
		t.Errorf("Expected center unchanged at (61, 61), got %v", s.Center())
	}
	if s.MinimumSize() != 60 {
		t.Errorf("Expected minimum size rederived to 60, got %f", s.MinimumSize())
	}
}

func TestSetHandleSize_NonPositiveIsNoOp(t *testing.T) {
	s := newTestSticker(nil)

	s.SetHandleSize(0)
	s.SetHandleSize(-5)

	if s.HandleSize() != DefaultHandleSize {
		t.Errorf("Expected handle size unchanged, got %f", s.HandleSize())
	}
	if s.Bounds() != (Size{W: 122, H: 122}) {
		t.Errorf("Expected bounds unchanged, got %v", s.Bounds())
	}
}

func TestSetHandleSize_HonorsUserMinimum(t *testing.T) {
	s := newTestSticker(nil)
	s.SetMinimumSize(100)

	// Shrinking the handles must not drop the floor below the user's
	// explicit request.
	s.SetHandleSize(10)
	if s.MinimumSize() != 100 {
		t.Errorf("Expected user floor 100 to survive relayout, got %f", s.MinimumSize())
	}
}

func TestClose_IdempotentAndTerminal(t *testing.T) {
	d := &recordingDelegate{}
	s := newTestSticker(d)

	s.Close()
	s.Close()
	s.Close()

	if d.closed != 1 {
		t.Errorf("Expected exactly one close callback, got %d", d.closed)
	}
	if !s.Closed() {
		t.Error("Expected sticker to report closed")
	}

	// All further operations are no-ops.
	before := s.Center()
	s.SetCenter(Vec2{X: 500, Y: 500})
	s.Flip()
	s.SetHandleSize(40)
	s.SetShowEditingHandlers(false)

	if s.Center() != before {
		t.Errorf("Expected center frozen after close, got %v", s.Center())
	}
	if s.Flipped() {
		t.Error("Expected flip ignored after close")
	}
	if s.HandleSize() != DefaultHandleSize {
		t.Error("Expected handle size frozen after close")
	}
}

func TestPayload(t *testing.T) {
	s := NewSticker(NewColorContent(Size{W: 10, H: 10}, ColorRed), WithPayload("photo-42"))

	if s.Payload() != "photo-42" {
		t.Errorf("Expected construction payload, got %v", s.Payload())
	}

	s.SetPayload(7)
	if s.Payload() != 7 {
		t.Errorf("Expected replaced payload 7, got %v", s.Payload())
	}
}

func TestWithStyle(t *testing.T) {
	st := DefaultStyle()
	st.OutlineColor = ColorRed

	s := NewSticker(NewColorContent(Size{W: 10, H: 10}, ColorGray), WithStyle(st))
	if s.OutlineColor() != ColorRed {
		t.Errorf("Expected styled outline color, got %#x", s.OutlineColor())
	}
}
