package sticker

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// maxContentTextureDim caps uploaded content textures; larger source
// images are downscaled before upload.
const maxContentTextureDim = 2048

// ContentView is the visual payload a sticker decorates.
// It is not interactive itself; all gestures are captured by the sticker
// or its handles. Draw receives the content's world-space quad with
// rotation and the flip mirror already applied to the corner positions.
type ContentView interface {
	// Size returns the content's natural size in pixels.
	Size() Size

	// Draw renders the content into the given world-space quad.
	Draw(dl *DrawList, quad [4]Vec2)
}

// texturedContent is implemented by content views that need a GPU
// texture prepared before drawing. The canvas resolves it each frame.
type texturedContent interface {
	ensureTexture(r Renderer) error
	releaseTexture(r Renderer)
}

// ImageContent is a ContentView backed by an image.
type ImageContent struct {
	img  image.Image
	size Size
	tex  uint32
}

// NewImageContent creates content from an image. Images larger than the
// texture cap are downscaled with bilinear filtering before upload; the
// reported content size is the original image size.
func NewImageContent(img image.Image) *ImageContent {
	b := img.Bounds()
	size := Size{W: float32(b.Dx()), H: float32(b.Dy())}

	if b.Dx() > maxContentTextureDim || b.Dy() > maxContentTextureDim {
		scale := minf(
			maxContentTextureDim/size.W,
			maxContentTextureDim/size.H,
		)
		dst := image.NewRGBA(image.Rect(0, 0,
			int(size.W*scale), int(size.H*scale)))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	return &ImageContent{img: img, size: size}
}

// Size returns the content's natural size.
func (c *ImageContent) Size() Size { return c.size }

// Image returns the (possibly downscaled) backing image.
func (c *ImageContent) Image() image.Image { return c.img }

// Draw renders the image into the quad.
func (c *ImageContent) Draw(dl *DrawList, quad [4]Vec2) {
	if c.tex == 0 {
		// Texture not prepared (headless canvas); draw a placeholder.
		dl.AddQuad(quad, ColorLightGray)
		return
	}
	dl.SetTexture(c.tex)
	dl.AddImageQuad(quad, 0, 0, 1, 1, ColorWhite)
	dl.SetTexture(0)
}

func (c *ImageContent) ensureTexture(r Renderer) error {
	if c.tex != 0 {
		return nil
	}
	tex, err := r.CreateTexture(c.img)
	if err != nil {
		return err
	}
	c.tex = tex
	return nil
}

func (c *ImageContent) releaseTexture(r Renderer) {
	if c.tex != 0 {
		r.DeleteTexture(c.tex)
		c.tex = 0
	}
}

// ColorContent is a flat single-color ContentView. It needs no textures,
// which makes it useful as a placeholder and in tests.
type ColorContent struct {
	size Size
	col  uint32
}

// NewColorContent creates flat color content of the given size.
func NewColorContent(size Size, col uint32) *ColorContent {
	return &ColorContent{size: size, col: col}
}

// Size returns the content size.
func (c *ColorContent) Size() Size { return c.size }

// Draw renders the flat quad.
func (c *ColorContent) Draw(dl *DrawList, quad [4]Vec2) {
	dl.AddQuad(quad, c.col)
}

// nrgba converts a packed color to a color.NRGBA value.
func nrgba(c uint32) color.NRGBA {
	r, g, b, a := UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
