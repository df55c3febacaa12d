package sticker

// Delegate receives sticker lifecycle notifications.
//
// The sticker keeps a non-owning reference to its delegate and tolerates
// it being absent: every notification is skipped when no delegate is
// set. All notifications are synchronous and fire-and-forget; return
// values are not consulted because there are none.
//
// Moving and rotating notifications follow the begin / zero-or-more
// change / end ordering of the underlying gesture. Closed fires exactly
// once, after which the sticker is terminal. Tapped fires for a tap on
// the widget body that was not captured by a handle.
type Delegate interface {
	StickerBeginMoving(s *Sticker)
	StickerMoving(s *Sticker)
	StickerEndMoving(s *Sticker)

	StickerBeginRotating(s *Sticker)
	StickerRotating(s *Sticker)
	StickerEndRotating(s *Sticker)

	StickerClosed(s *Sticker)
	StickerTapped(s *Sticker)
}
