package sticker

// Default geometry constants. The content inset is half the handle size
// so that a handle centered on a content corner exactly fills the
// widget's own corner.
const (
	// DefaultHandleSize is the default edge length of a handle in pixels.
	DefaultHandleSize float32 = 22

	// minSizeInsetFactor derives the default minimum-size floor from the
	// content inset.
	minSizeInsetFactor float32 = 4

	// tapSlop is the pointer travel below which a press/release pair on
	// the widget body also counts as a tap.
	tapSlop float32 = 3
)

// Style defines the visual appearance of a sticker.
type Style struct {
	// OutlineColor is the color of the editing outline drawn around the
	// widget bounds while editing handlers are shown.
	OutlineColor uint32

	// HandleColor is the background fill of each handle.
	HandleColor uint32

	// HandleIconColor tints the handle icon texture.
	HandleIconColor uint32
}

// DefaultStyle returns the default sticker appearance.
func DefaultStyle() Style {
	return Style{
		OutlineColor:    ColorWhite,
		HandleColor:     RGBA(40, 40, 40, 220),
		HandleIconColor: ColorWhite,
	}
}
