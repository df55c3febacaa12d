package sticker

import "image"

// Sticker is the widget instance: a content view decorated with an
// editing outline and three corner handles, positioned by a center
// point, rotated about it, and uniformly resizable down to a minimum
// size floor.
//
// A sticker is exclusively owned and mutated by the host's UI goroutine;
// it carries no synchronization of its own.
type Sticker struct {
	content  ContentView
	delegate Delegate // non-owning, may be nil
	canvas   *Canvas  // non-owning, set while attached

	center   Vec2
	bounds   Size    // widget bounds prior to rotation
	rotation float32 // radians, about the center

	handleSize float32
	inset      float32 // content margin, half the handle size
	userMin    float32 // requested minimum-size floor before clamping
	minSize    float32 // effective floor, >= minSizeInsetFactor*inset

	style        Style
	outlineColor uint32
	outlineWidth float32

	showHandlers bool
	handles      [handleKindCount]*Handle

	payload any
	closed  bool

	move   moveGesture
	rotate rotateGesture
	flip   flipAnimation
}

// StickerOption configures a Sticker at construction.
type StickerOption func(*Sticker)

// WithDelegate sets the lifecycle delegate.
func WithDelegate(d Delegate) StickerOption {
	return func(s *Sticker) { s.delegate = d }
}

// WithStyle sets the sticker's visual style.
func WithStyle(style Style) StickerOption {
	return func(s *Sticker) {
		s.style = style
		s.outlineColor = style.OutlineColor
	}
}

// WithPayload attaches an opaque user payload.
func WithPayload(payload any) StickerOption {
	return func(s *Sticker) { s.payload = payload }
}

// NewSticker creates a sticker decorating the given content view.
//
// The content view must be supplied programmatically; there is no other
// construction path, so a nil content view is an unrecoverable
// construction failure and panics.
//
// Initialization is strictly ordered: the handle size, inset, and
// minimum-size floor are all finalized before any handle is built, so
// no handle can observe a half-initialized geometry.
func NewSticker(content ContentView, opts ...StickerOption) *Sticker {
	if content == nil {
		panic("sticker: nil content view")
	}

	s := &Sticker{
		content:      content,
		handleSize:   DefaultHandleSize,
		style:        DefaultStyle(),
		showHandlers: true,
		flip:         newFlipAnimation(),
	}
	s.outlineColor = s.style.OutlineColor

	for _, opt := range opts {
		opt(s)
	}

	// Geometry derived from the handle size, in dependency order.
	s.inset = s.handleSize / 2
	s.minSize = minSizeInsetFactor * s.inset

	cs := content.Size()
	s.bounds = Size{W: cs.W + 2*s.inset, H: cs.H + 2*s.inset}
	s.center = Vec2{X: s.bounds.W / 2, Y: s.bounds.H / 2}

	s.handles = [handleKindCount]*Handle{
		HandleClose:  newHandle(HandleClose, AnchorTopLeft, s.handleSize),
		HandleRotate: newHandle(HandleRotate, AnchorBottomRight, s.handleSize),
		HandleFlip:   newHandle(HandleFlip, AnchorTopRight, s.handleSize),
	}
	s.recomputeEnablement()
	return s
}

// Content returns the decorated content view.
func (s *Sticker) Content() ContentView { return s.content }

// Center returns the widget's center point in canvas space.
func (s *Sticker) Center() Vec2 { return s.center }

// SetCenter repositions the widget.
func (s *Sticker) SetCenter(c Vec2) {
	if s.closed {
		return
	}
	s.applyTranslation(c)
}

// Bounds returns the widget's bounds prior to rotation.
func (s *Sticker) Bounds() Size { return s.bounds }

// Rotation returns the widget's rotation angle in radians.
func (s *Sticker) Rotation() float32 { return s.rotation }

// MinimumSize returns the effective minimum-size floor.
func (s *Sticker) MinimumSize() float32 { return s.minSize }

// SetMinimumSize sets the minimum-size floor. Values below the default
// derived from the handle inset are silently clamped up.
func (s *Sticker) SetMinimumSize(v float32) {
	if s.closed {
		return
	}
	s.userMin = v
	s.minSize = maxf(v, minSizeInsetFactor*s.inset)
}

// HandleSize returns the current handle edge length in pixels.
func (s *Sticker) HandleSize() float32 { return s.handleSize }

// SetHandleSize sets the handle edge length and relayouts the widget,
// preserving the current center and transform. Non-positive values are
// a no-op.
func (s *Sticker) SetHandleSize(px float32) {
	if s.closed || px <= 0 {
		return
	}

	newInset := px / 2
	delta := newInset - s.inset

	// Grow/shrink the margin around the content region in place.
	s.bounds.W += 2 * delta
	s.bounds.H += 2 * delta
	s.handleSize = px
	s.inset = newInset
	s.minSize = maxf(s.userMin, minSizeInsetFactor*s.inset)

	// Default icons are rasterized at the handle size; regenerate and
	// re-upload on next draw.
	for _, h := range s.handles {
		if h.icon != nil {
			h.texStale = true
		}
	}
	s.invalidate()
}

// SetAnchor moves a handle to one of the four corner anchors.
func (s *Sticker) SetAnchor(kind HandleKind, anchor Anchor) {
	if s.closed || kind < 0 || kind >= handleKindCount {
		return
	}
	s.handles[kind].anchor = anchor
	s.invalidate()
}

// SetIcon replaces a handle's icon image.
func (s *Sticker) SetIcon(kind HandleKind, icon image.Image) {
	if s.closed || kind < 0 || kind >= handleKindCount {
		return
	}
	h := s.handles[kind]
	h.icon = icon
	h.texStale = true
	s.invalidate()
}

// HandleFor returns the handle of the given kind, or nil.
func (s *Sticker) HandleFor(kind HandleKind) *Handle {
	if kind < 0 || kind >= handleKindCount {
		return nil
	}
	return s.handles[kind]
}

// OutlineColor returns the editing outline color.
func (s *Sticker) OutlineColor() uint32 { return s.outlineColor }

// SetOutlineColor sets the editing outline color.
func (s *Sticker) SetOutlineColor(c uint32) {
	if s.closed {
		return
	}
	s.outlineColor = c
	s.invalidate()
}

// Payload returns the opaque user payload.
func (s *Sticker) Payload() any { return s.payload }

// SetPayload attaches an opaque user payload.
func (s *Sticker) SetPayload(p any) {
	if s.closed {
		return
	}
	s.payload = p
}

// Closed reports whether the sticker has been closed.
// A closed sticker is terminal: all further operations are no-ops.
func (s *Sticker) Closed() bool { return s.closed }

// Close removes the sticker permanently, emitting the close callback
// exactly once. Idempotent.
func (s *Sticker) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.delegate != nil {
		s.delegate.StickerClosed(s)
	}
	if s.canvas != nil {
		s.canvas.detach(s)
	}
}

// Flip starts (or retargets) the mirror transition of the content view
// across its own vertical axis. The widget's own transform is never
// composed with the flip.
func (s *Sticker) Flip() {
	if s.closed {
		return
	}
	s.flip.Start()
	s.invalidate()
}

// Flipped reports the logical flip state.
func (s *Sticker) Flipped() bool { return s.flip.Flipped() }

// invalidate requests a redraw from the owning canvas, if any.
func (s *Sticker) invalidate() {
	if s.canvas != nil {
		s.canvas.Invalidate()
	}
}

// contentQuad returns the content's world-space quad with the flip
// mirror factor applied about the content frame's vertical axis.
func (s *Sticker) contentQuad() [4]Vec2 {
	cf := s.contentFrame()
	cx := cf.X + cf.W/2
	c := cf.Corners()
	for i := range c {
		c[i].X = cx + (c[i].X-cx)*s.flip.mirror
		c[i] = s.localToWorld(c[i])
	}
	return c
}

// Draw appends the sticker's geometry to the draw list: content first,
// then the editing outline, then the visible handles.
func (s *Sticker) Draw(dl *DrawList) {
	if s.closed {
		return
	}

	s.content.Draw(dl, s.contentQuad())

	if s.outlineWidth > 0 {
		dl.AddQuadOutline(s.quadToWorld(s.contentFrame()), s.outlineColor, s.outlineWidth)
	}

	for _, h := range s.handles {
		if !h.visible {
			continue
		}
		quad := s.quadToWorld(s.handleRect(h))
		dl.AddQuad(quad, s.style.HandleColor)
		if h.tex != 0 {
			dl.SetTexture(h.tex)
			dl.AddImageQuad(quad, 0, 0, 1, 1, s.style.HandleIconColor)
			dl.SetTexture(0)
		}
	}
}

// ensureTextures uploads any stale content or icon textures.
// Called by the canvas before drawing when a renderer is attached.
func (s *Sticker) ensureTextures(r Renderer) error {
	if tc, ok := s.content.(texturedContent); ok {
		if err := tc.ensureTexture(r); err != nil {
			return err
		}
	}
	for _, h := range s.handles {
		if !h.texStale || h.icon == nil {
			continue
		}
		if h.tex != 0 {
			r.DeleteTexture(h.tex)
			h.tex = 0
		}
		img := prepareIcon(h.icon, int(s.handleSize))
		tex, err := r.CreateTexture(img)
		if err != nil {
			return err
		}
		h.tex = tex
		h.texStale = false
	}
	return nil
}

// releaseTextures frees GPU resources owned by the sticker.
func (s *Sticker) releaseTextures(r Renderer) {
	if tc, ok := s.content.(texturedContent); ok {
		tc.releaseTexture(r)
	}
	for _, h := range s.handles {
		if h.tex != 0 {
			r.DeleteTexture(h.tex)
			h.tex = 0
			h.texStale = true
		}
	}
}
