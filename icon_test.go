package sticker

import (
	"image"
	"testing"
)

func countOpaque(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestDefaultIcon_SizeAndContent(t *testing.T) {
	for _, kind := range []HandleKind{HandleClose, HandleRotate, HandleFlip} {
		img := defaultIcon(kind, 22)
		b := img.Bounds()
		if b.Dx() != 22 || b.Dy() != 22 {
			t.Errorf("%v icon: expected 22x22, got %dx%d", kind, b.Dx(), b.Dy())
		}
		if countOpaque(img) == 0 {
			t.Errorf("%v icon: expected a non-empty glyph", kind)
		}
	}
}

func TestDefaultIcon_MinimumSize(t *testing.T) {
	img := defaultIcon(HandleClose, 2)
	if img.Bounds().Dx() < 8 {
		t.Errorf("Expected tiny icons rasterized at 8px minimum, got %d", img.Bounds().Dx())
	}
}

func TestPrepareIcon_Resizes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	out := prepareIcon(src, 22)
	if out.Bounds().Dx() != 22 || out.Bounds().Dy() != 22 {
		t.Errorf("Expected 22x22 after resize, got %v", out.Bounds())
	}

	// Already at size: passed through untouched.
	same := prepareIcon(out, 22)
	if same != out {
		t.Error("Expected same-size icon passed through")
	}
}
