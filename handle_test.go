package sticker

import (
	"image"
	"testing"
)

func TestAnchorPoint_Corners(t *testing.T) {
	cf := Rect{X: 11, Y: 11, W: 100, H: 100}

	cases := []struct {
		anchor Anchor
		want   Vec2
	}{
		{AnchorTopLeft, Vec2{X: 11, Y: 11}},
		{AnchorTopRight, Vec2{X: 111, Y: 11}},
		{AnchorBottomLeft, Vec2{X: 11, Y: 111}},
		{AnchorBottomRight, Vec2{X: 111, Y: 111}},
	}
	for _, c := range cases {
		if got := anchorPoint(cf, c.anchor); got != c.want {
			t.Errorf("anchorPoint(%v) = %v, want %v", c.anchor, got, c.want)
		}
	}
}

func TestHandleRect_CenteredOnAnchor(t *testing.T) {
	s := newTestSticker(nil)

	// 22px handle centered on the content frame's bottom-right corner
	// (111, 111).
	r := s.handleRect(s.HandleFor(HandleRotate))
	if r != (Rect{X: 100, Y: 100, W: 22, H: 22}) {
		t.Errorf("Expected rotate handle rect (100, 100, 22, 22), got %v", r)
	}
}

func TestSetAnchor_MovesHandle(t *testing.T) {
	d := &recordingDelegate{}
	s := newTestSticker(d)
	in := NewPointerState()

	s.SetAnchor(HandleRotate, AnchorBottomLeft)

	if s.HandleFor(HandleRotate).AnchorPosition() != AnchorBottomLeft {
		t.Error("Expected rotate handle reanchored to bottom-left")
	}

	// The handle now hits at the bottom-left content corner.
	press(s, in, 11, 111)
	if d.beginRotating != 1 {
		t.Errorf("Expected rotate gesture at the new anchor, got %d", d.beginRotating)
	}
	release(s, in, 11, 111)

	// And the old position is plain body again.
	press(s, in, 111, 111)
	if d.beginMoving != 1 {
		t.Errorf("Expected body move at the old anchor, got %d", d.beginMoving)
	}
	release(s, in, 111, 111)
}

func TestSetIcon_MarksTextureStale(t *testing.T) {
	s := newTestSticker(nil)
	h := s.HandleFor(HandleClose)
	h.texStale = false

	s.SetIcon(HandleClose, image.NewNRGBA(image.Rect(0, 0, 16, 16)))

	if !h.texStale {
		t.Error("Expected icon replacement to mark the texture stale")
	}
}

func TestHandleKindAndAnchorStrings(t *testing.T) {
	if HandleClose.String() != "close" || HandleRotate.String() != "rotate" || HandleFlip.String() != "flip" {
		t.Error("Unexpected HandleKind names")
	}
	if AnchorTopLeft.String() != "top-left" || AnchorBottomRight.String() != "bottom-right" {
		t.Error("Unexpected Anchor names")
	}
}

func TestHandleFor_OutOfRange(t *testing.T) {
	s := newTestSticker(nil)
	if s.HandleFor(HandleKind(-1)) != nil || s.HandleFor(handleKindCount) != nil {
		t.Error("Expected nil for out-of-range handle kinds")
	}
}
