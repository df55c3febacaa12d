package sticker

import "testing"

func TestFlipAnimation_IdleDoesNothing(t *testing.T) {
	f := newFlipAnimation()

	if f.Update(1.0) {
		t.Error("Expected no animation while idle")
	}
	if f.mirror != 1 || f.Flipped() {
		t.Error("Expected idle animation to stay at the unflipped pose")
	}
}

func TestFlipAnimation_CompletesInDuration(t *testing.T) {
	f := newFlipAnimation()
	f.Start()

	// The logical state flips immediately; the visual sweep takes the
	// full duration.
	if !f.Flipped() {
		t.Error("Expected logical flip on Start")
	}

	if !f.Update(flipDuration / 2) {
		t.Error("Expected animation still in flight at half duration")
	}
	if !approx(f.mirror, 0) {
		t.Errorf("Expected mirror ~0 at half duration, got %f", f.mirror)
	}

	if f.Update(flipDuration / 2) {
		t.Error("Expected animation finished after the full duration")
	}
	if f.mirror != -1 {
		t.Errorf("Expected mirror -1 at completion, got %f", f.mirror)
	}
}

func TestFlipAnimation_RetargetMidFlight(t *testing.T) {
	f := newFlipAnimation()
	f.Start()
	f.Update(flipDuration / 2) // mirror ~0, heading for -1

	// A second Start retargets back toward +1 without snapping.
	f.Start()
	if f.Flipped() {
		t.Error("Expected retarget back to unflipped")
	}
	if !approx(f.mirror, 0) {
		t.Errorf("Expected mirror to continue from ~0, got %f", f.mirror)
	}

	f.Update(flipDuration)
	if f.mirror != 1 {
		t.Errorf("Expected mirror back at 1, got %f", f.mirror)
	}
}

func TestFlipAnimation_LargeStepClamps(t *testing.T) {
	f := newFlipAnimation()
	f.Start()

	// A stalled frame with a huge delta must not overshoot.
	f.Update(10)
	if f.mirror != -1 {
		t.Errorf("Expected mirror clamped at -1, got %f", f.mirror)
	}
}

func TestContentQuad_MirrorsAboutContentAxis(t *testing.T) {
	s := newTestSticker(nil)

	// Unflipped: top-left corner of the content quad is the content
	// frame's top-left in world space.
	q := s.contentQuad()
	if !approx(q[0].X, 11) || !approx(q[0].Y, 11) {
		t.Fatalf("Expected unflipped top-left (11, 11), got %v", q[0])
	}

	// Fully flipped, the left and right edges swap.
	s.flip.mirror = -1
	s.flip.target = -1
	q = s.contentQuad()
	if !approx(q[0].X, 111) || !approx(q[0].Y, 11) {
		t.Errorf("Expected flipped top-left at the former right edge, got %v", q[0])
	}
	if !approx(q[1].X, 11) {
		t.Errorf("Expected flipped top-right at the former left edge, got %v", q[1])
	}
}
