package sticker

import (
	"math"
	"testing"
)

func TestApplyRotationAndScale_Scenario(t *testing.T) {
	s := newTestSticker(nil)
	s.SetCenter(Vec2{X: 100, Y: 100})

	// Gesture begins with the pointer 50px to the right of the center,
	// then sweeps down to 45 degrees below the horizontal while moving
	// sqrt(2) times further out.
	s.beginRotateResize(Vec2{X: 150, Y: 100})

	v := Vec2{X: 150, Y: 150}.Sub(s.Center())
	angleDelta := s.rotate.angleOffset - v.Angle()
	ratio := v.Len() / s.rotate.initialDistance
	s.applyRotationAndScale(angleDelta, ratio, s.rotate.initialBounds)

	if !approx(s.Rotation(), math.Pi/4) {
		t.Errorf("Expected rotation +45 degrees, got %f rad", s.Rotation())
	}
	if !approx(s.Bounds().W, 172.53) || !approx(s.Bounds().H, 172.53) {
		t.Errorf("Expected bounds ~172.53, got %v", s.Bounds())
	}
	// The center never moves during rotate/resize.
	if s.Center() != (Vec2{X: 100, Y: 100}) {
		t.Errorf("Expected center pinned at (100, 100), got %v", s.Center())
	}
}

func TestApplyRotationAndScale_MinimumSizeFloor(t *testing.T) {
	s := newTestSticker(nil)

	// A tiny distance ratio would shrink the 122px bounds below the
	// 44px floor; the scale is clamped instead.
	s.applyRotationAndScale(0, 0.1, Size{W: 122, H: 122})

	if !approx(s.Bounds().W, 44) || !approx(s.Bounds().H, 44) {
		t.Errorf("Expected bounds floored at 44, got %v", s.Bounds())
	}
}

func TestApplyRotationAndScale_FloorTracksShorterSide(t *testing.T) {
	s := NewSticker(NewColorContent(Size{W: 200, H: 50}, ColorGray))

	// Bounds 222x72, floor 44. The clamp keys off the shorter side, so
	// the scale bottoms out at 44/72.
	s.applyRotationAndScale(0, 0.01, Size{W: 222, H: 72})

	if !approx(s.Bounds().H, 44) {
		t.Errorf("Expected shorter side floored at 44, got %v", s.Bounds())
	}
	if !approx(s.Bounds().W, 222*44.0/72.0) {
		t.Errorf("Expected longer side scaled proportionally, got %v", s.Bounds())
	}
}

func TestApplyRotationAndScale_NoDriftAcrossUpdates(t *testing.T) {
	s := newTestSticker(nil)
	initial := s.Bounds()

	// Many change phases against the same begin snapshot must land on
	// the snapshot-derived value, not accumulate.
	for i := 0; i < 1000; i++ {
		s.applyRotationAndScale(0.3, 1.5, initial)
	}

	if !approx(s.Rotation(), -0.3) {
		t.Errorf("Expected rotation -0.3, got %f", s.Rotation())
	}
	if !approx(s.Bounds().W, initial.W*1.5) {
		t.Errorf("Expected bounds %f, got %f", initial.W*1.5, s.Bounds().W)
	}
}

func TestWorldLocalRoundTrip(t *testing.T) {
	s := newTestSticker(nil)
	s.SetCenter(Vec2{X: 300, Y: 200})
	s.applyRotationAndScale(-0.6, 1.3, Size{W: 122, H: 122})

	points := []Vec2{
		{X: 0, Y: 0},
		{X: 61, Y: 61},
		{X: 122, Y: 0},
		{X: 37.5, Y: 90.25},
	}
	for _, p := range points {
		got := s.worldToLocal(s.localToWorld(p))
		if !approx(got.X, p.X) || !approx(got.Y, p.Y) {
			t.Errorf("Round trip of %v gave %v", p, got)
		}
	}
}

func TestContentFrame_InsetOnAllSides(t *testing.T) {
	s := newTestSticker(nil)

	cf := s.contentFrame()
	if cf != (Rect{X: 11, Y: 11, W: 100, H: 100}) {
		t.Errorf("Expected content frame (11, 11, 100, 100), got %v", cf)
	}

	// The content frame scales with the bounds; the inset stays fixed.
	s.applyRotationAndScale(0, 2, Size{W: 122, H: 122})
	cf = s.contentFrame()
	if cf != (Rect{X: 11, Y: 11, W: 222, H: 222}) {
		t.Errorf("Expected scaled content frame (11, 11, 222, 222), got %v", cf)
	}
}

func TestSetCenter_PureTranslation(t *testing.T) {
	s := newTestSticker(nil)
	s.applyRotationAndScale(0.5, 1.2, Size{W: 122, H: 122})
	rot, b := s.Rotation(), s.Bounds()

	s.SetCenter(Vec2{X: -40, Y: 900})

	if s.Center() != (Vec2{X: -40, Y: 900}) {
		t.Errorf("Expected center (-40, 900), got %v", s.Center())
	}
	if s.Rotation() != rot || s.Bounds() != b {
		t.Error("Expected translation to leave rotation and bounds untouched")
	}
}
