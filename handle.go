package sticker

import "image"

// HandleKind identifies one of the three interactive corner controls.
type HandleKind int

const (
	// HandleClose removes the sticker when tapped.
	HandleClose HandleKind = iota
	// HandleRotate rotates and uniformly resizes the sticker when dragged.
	HandleRotate
	// HandleFlip mirrors the content across its vertical axis when tapped.
	HandleFlip

	handleKindCount
)

// String returns a human-readable name for the handle kind.
func (k HandleKind) String() string {
	switch k {
	case HandleClose:
		return "close"
	case HandleRotate:
		return "rotate"
	case HandleFlip:
		return "flip"
	}
	return "?"
}

// Anchor names one of the four corner positions a handle can occupy,
// relative to the content frame.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

// String returns a human-readable name for the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorTopRight:
		return "top-right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottomRight:
		return "bottom-right"
	}
	return "?"
}

// Handle is one interactive corner control of a sticker.
// Visibility and interactivity are derived state: the sticker recomputes
// them from the global show-handlers switch and the handle's own enable
// flag whenever either changes.
type Handle struct {
	kind   HandleKind
	anchor Anchor

	enabled     bool // per-handle enable flag (input)
	visible     bool // derived: globalShow AND enabled
	interactive bool // derived: globalShow AND enabled

	icon     image.Image // source icon, resized lazily for upload
	tex      uint32      // uploaded texture, 0 until prepared
	texStale bool        // icon or handle size changed since last upload
}

// newHandle creates an enabled handle with the given kind, anchor, and
// default icon sized for the current handle size.
func newHandle(kind HandleKind, anchor Anchor, handleSize float32) *Handle {
	return &Handle{
		kind:     kind,
		anchor:   anchor,
		enabled:  true,
		icon:     defaultIcon(kind, int(handleSize)),
		texStale: true,
	}
}

// Kind returns the handle's kind.
func (h *Handle) Kind() HandleKind { return h.kind }

// AnchorPosition returns the handle's current corner anchor.
func (h *Handle) AnchorPosition() Anchor { return h.anchor }

// Visible reports whether the handle is currently drawn.
func (h *Handle) Visible() bool { return h.visible }

// Interactive reports whether the handle currently accepts gestures.
func (h *Handle) Interactive() bool { return h.interactive }

// Enabled reports the handle's individual enable flag, independent of
// the global show-handlers switch.
func (h *Handle) Enabled() bool { return h.enabled }

// anchorPoint returns the content-frame corner the handle is centered
// on, in the sticker's local (unrotated) coordinate space.
func anchorPoint(cf Rect, a Anchor) Vec2 {
	switch a {
	case AnchorTopLeft:
		return Vec2{X: cf.X, Y: cf.Y}
	case AnchorTopRight:
		return Vec2{X: cf.X + cf.W, Y: cf.Y}
	case AnchorBottomLeft:
		return Vec2{X: cf.X, Y: cf.Y + cf.H}
	default: // AnchorBottomRight
		return Vec2{X: cf.X + cf.W, Y: cf.Y + cf.H}
	}
}
