package sticker

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Handle icons. Each handle carries an icon image that is rasterized at
// the handle pixel size before upload; the built-in glyphs below are
// used until the host supplies its own via SetIcon.

// prepareIcon resizes an icon image to the handle pixel size.
func prepareIcon(img image.Image, px int) image.Image {
	if px <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == px && b.Dy() == px {
		return img
	}
	return imaging.Resize(img, px, px, imaging.Lanczos)
}

// defaultIcon builds the built-in glyph for a handle kind.
func defaultIcon(kind HandleKind, px int) image.Image {
	if px < 8 {
		px = 8
	}
	switch kind {
	case HandleClose:
		return closeIcon(px)
	case HandleRotate:
		return rotateIcon(px)
	default:
		return flipIcon(px)
	}
}

// closeIcon draws an X glyph.
func closeIcon(px int) image.Image {
	img := imaging.New(px, px, color.NRGBA{})
	white := nrgba(ColorWhite)
	m := px / 5
	t := px/10 + 1

	for y := m; y < px-m; y++ {
		for x := m; x < px-m; x++ {
			if Abs(x-y) <= t || Abs(x+y-(px-1)) <= t {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return img
}

// rotateIcon draws a double-headed arrow along the anti-diagonal.
func rotateIcon(px int) image.Image {
	img := imaging.New(px, px, color.NRGBA{})
	white := nrgba(ColorWhite)
	m := px / 5
	t := px/10 + 1

	// Shaft
	for y := m; y < px-m; y++ {
		for x := m; x < px-m; x++ {
			if Abs(x+y-(px-1)) <= t {
				img.SetNRGBA(x, y, white)
			}
		}
	}

	// Arrowheads at the top-right and bottom-left tips, widening back
	// along the shaft.
	ah := px / 4
	setIn := func(x, y int) {
		if x >= 0 && x < px && y >= 0 && y < px {
			img.SetNRGBA(x, y, white)
		}
	}
	tipA := image.Pt(px-m-1, m)
	tipB := image.Pt(m, px-m-1)
	for i := 0; i < ah; i++ {
		for j := -i / 2; j <= i/2; j++ {
			setIn(tipA.X-i+j, tipA.Y+i+j)
			setIn(tipB.X+i+j, tipB.Y-i+j)
		}
	}
	return img
}

// flipIcon draws two opposing triangles around a center axis. The right
// half is the mirrored left half, which is exactly what the handle does
// to the content.
func flipIcon(px int) image.Image {
	left := imaging.New(px, px, color.NRGBA{})
	white := nrgba(ColorWhite)
	m := px / 5
	cx := px / 2
	gap := px/10 + 1

	// Left-pointing solid triangle in the left half.
	for x := m; x < cx-gap; x++ {
		span := (x - m) * (px/2 - m) / Max(cx-gap-m, 1)
		for y := px/2 - span; y <= px/2+span; y++ {
			if y >= 0 && y < px {
				left.SetNRGBA(x, y, white)
			}
		}
	}

	icon := imaging.Overlay(left, imaging.FlipH(left), image.Pt(0, 0), 1.0)

	// Center axis
	for y := m / 2; y < px-m/2; y++ {
		icon.SetNRGBA(cx, y, white)
	}
	return icon
}
