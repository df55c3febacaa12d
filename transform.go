package sticker

// Transform controller: the sticker's spatial state is its center point,
// its bounds prior to rotation, and a rotation angle applied about the
// center. Rotation and bounds scaling are orthogonal pieces of state
// composed only at draw/hit-test time; scale is never read back out of a
// composed transform, so repeated gesture updates cannot accumulate
// drift.

// applyTranslation sets the widget center directly.
// Any point is valid; the host clips or allows offscreen positioning.
func (s *Sticker) applyTranslation(newCenter Vec2) {
	s.center = newCenter
	s.invalidate()
}

// applyRotationAndScale rebuilds rotation and bounds from a gesture's
// begin-phase snapshot. The scale is clamped so neither bounds dimension
// drops below the minimum-size floor, and the rotation sign is negated
// to match visual handedness on a y-down screen.
func (s *Sticker) applyRotationAndScale(angleDelta, distanceRatio float32, initialBounds Size) {
	scale := maxf(distanceRatio, s.minSize/minf(initialBounds.W, initialBounds.H))
	s.rotation = -angleDelta
	s.bounds = initialBounds.Mul(scale)
	s.invalidate()
}

// Coordinate mapping between world (canvas) space and the sticker's
// local unrotated space, where the widget occupies Rect{0,0,W,H}.

// worldToLocal maps a canvas-space point into the sticker's local
// coordinate space.
func (s *Sticker) worldToLocal(p Vec2) Vec2 {
	half := Vec2{X: s.bounds.W / 2, Y: s.bounds.H / 2}
	return p.Sub(s.center).Rotate(-s.rotation).Add(half)
}

// localToWorld maps a local point into canvas space.
func (s *Sticker) localToWorld(p Vec2) Vec2 {
	half := Vec2{X: s.bounds.W / 2, Y: s.bounds.H / 2}
	return p.Sub(half).Rotate(s.rotation).Add(s.center)
}

// localBounds returns the widget rectangle in local space.
func (s *Sticker) localBounds() Rect {
	return Rect{X: 0, Y: 0, W: s.bounds.W, H: s.bounds.H}
}

// contentFrame returns the content rectangle in local space: the widget
// bounds inset on all sides by the handle inset.
func (s *Sticker) contentFrame() Rect {
	return Rect{
		X: s.inset,
		Y: s.inset,
		W: s.bounds.W - 2*s.inset,
		H: s.bounds.H - 2*s.inset,
	}
}

// quadToWorld maps a local-space rectangle's corners into canvas space.
func (s *Sticker) quadToWorld(r Rect) [4]Vec2 {
	c := r.Corners()
	for i := range c {
		c[i] = s.localToWorld(c[i])
	}
	return c
}
