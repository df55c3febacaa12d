package sticker

import "image"

// Renderer is the interface for rendering canvas draw data and managing
// textures for sticker content and handle icons.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
	CreateTexture(img image.Image) (uint32, error)
	DeleteTexture(id uint32)
}

// Canvas is the host surface stickers live on. It owns a z-ordered list
// of stickers (last is topmost), routes per-frame pointer state to the
// sticker that should receive it, advances flip animations, and renders
// everything through a Renderer.
//
// All Canvas and Sticker methods must be called from the single UI
// goroutine driving the frame loop.
type Canvas struct {
	renderer Renderer // may be nil for headless use (tests)

	stickers    []*Sticker
	displaySize Vec2
	dirty       bool
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// New creates a canvas rendering through the given renderer.
// A nil renderer yields a headless canvas that still routes input and
// maintains state; tests use this.
func New(renderer Renderer, opts ...CanvasOption) *Canvas {
	c := &Canvas{renderer: renderer}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add attaches a sticker on top of the existing ones.
// Adding an already-attached or closed sticker is a no-op.
func (c *Canvas) Add(s *Sticker) {
	if s == nil || s.closed || s.canvas != nil {
		return
	}
	s.canvas = c
	c.stickers = append(c.stickers, s)
	c.Invalidate()
}

// Remove detaches a sticker without closing it: no close callback is
// emitted and the sticker stays usable (it can be re-added).
func (c *Canvas) Remove(s *Sticker) {
	c.detach(s)
}

// detach drops the sticker from the z-order and clears its back
// reference. Also the removal path used by a close gesture.
func (c *Canvas) detach(s *Sticker) {
	for i, st := range c.stickers {
		if st == s {
			c.stickers = append(c.stickers[:i], c.stickers[i+1:]...)
			break
		}
	}
	if s.canvas == c {
		if c.renderer != nil {
			s.releaseTextures(c.renderer)
		}
		s.canvas = nil
	}
	c.Invalidate()
}

// Stickers returns the attached stickers in z-order (last is topmost).
func (c *Canvas) Stickers() []*Sticker {
	return c.stickers
}

// Invalidate marks the canvas as needing a redraw. Sticker mutations
// call this through their canvas back reference.
func (c *Canvas) Invalidate() {
	c.dirty = true
}

// Dirty reports whether a redraw has been requested since the last
// Frame.
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// DisplaySize returns the size passed to the last Frame call.
func (c *Canvas) DisplaySize() Vec2 {
	return c.displaySize
}

// Frame runs one frame: routes pointer input, advances animations, and
// redraws. Pass the frame's pointer state (or nil to skip input) and
// the elapsed time since the previous frame in seconds.
func (c *Canvas) Frame(in *PointerState, displaySize Vec2, deltaTime float32) error {
	c.displaySize = displaySize

	c.routePointer(in)

	for _, s := range c.stickers {
		if s.flip.Update(deltaTime) {
			c.dirty = true
		}
	}

	return c.draw()
}

// routePointer delivers the frame's pointer state to exactly one
// sticker. A sticker with an in-flight gesture keeps the pointer grab;
// otherwise the topmost sticker that consumes the event wins.
func (c *Canvas) routePointer(in *PointerState) {
	if in == nil {
		return
	}
	for i := len(c.stickers) - 1; i >= 0; i-- {
		if c.stickers[i].GestureActive() {
			c.stickers[i].HandlePointer(in)
			return
		}
	}
	for i := len(c.stickers) - 1; i >= 0; i-- {
		if c.stickers[i].HandlePointer(in) {
			return
		}
	}
}

// draw rebuilds the draw list and renders it.
func (c *Canvas) draw() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	for _, s := range c.stickers {
		if c.renderer != nil {
			if err := s.ensureTextures(c.renderer); err != nil {
				return err
			}
		}
		s.Draw(dl)
	}
	c.dirty = false

	if c.renderer == nil {
		return nil
	}
	return c.renderer.Render(dl)
}

// Resize notifies the renderer of a display size change.
func (c *Canvas) Resize(width, height int) {
	if c.renderer != nil {
		c.renderer.Resize(width, height)
	}
	c.Invalidate()
}
