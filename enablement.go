package sticker

// Handler visibility/enablement derivation. Four independently settable
// booleans feed it: the global show-editing-handlers switch and one
// enable flag per handle. The derived outputs are recomputed by an
// explicit pure pass after any input flag changes, never by per-field
// observer cascades, so the derivation is testable in isolation.

// recomputeEnablement rederives each handle's visibility and
// interactivity, and the content outline width.
func (s *Sticker) recomputeEnablement() {
	for _, h := range s.handles {
		effective := s.showHandlers && h.enabled
		h.visible = effective
		h.interactive = effective
	}

	// The outline follows the global switch alone, regardless of the
	// per-handle flags.
	if s.showHandlers {
		s.outlineWidth = 1
	} else {
		s.outlineWidth = 0
	}
	s.invalidate()
}

// SetShowEditingHandlers sets the global show switch. When false, all
// handles are hidden and non-interactive regardless of their individual
// enable flags.
func (s *Sticker) SetShowEditingHandlers(show bool) {
	if s.closed {
		return
	}
	s.showHandlers = show
	s.recomputeEnablement()
}

// ShowEditingHandlers reports the global show switch.
func (s *Sticker) ShowEditingHandlers() bool {
	return s.showHandlers
}

// SetHandleEnabled sets one handle's individual enable flag.
func (s *Sticker) SetHandleEnabled(kind HandleKind, enabled bool) {
	if s.closed || kind < 0 || kind >= handleKindCount {
		return
	}
	s.handles[kind].enabled = enabled
	s.recomputeEnablement()
}
