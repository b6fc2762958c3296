package gallery

import "time"

// OverlayAutoHide is how long the fullscreen overlay stays up before hiding
// itself. Not configurable.
const OverlayAutoHide = 2000 * time.Millisecond

// OverlayVisible reports whether the fullscreen overlay is showing.
func (s *Session) OverlayVisible() bool { return s.overlayVisible }

// ToggleOverlay flips the overlay, e.g. on a tap of the fullscreen surface.
// Meaningless without a selection. Showing re-arms the auto-hide timer.
func (s *Session) ToggleOverlay() {
	if s.selectedID == "" {
		return
	}
	if s.overlayVisible {
		s.overlayVisible = false
		s.cancelOverlayTimer()
	} else {
		s.overlayVisible = true
		s.armOverlayTimer()
	}
	s.notifyOverlay()
}

// showOverlay is the unset-to-set selection transition path.
func (s *Session) showOverlay() {
	s.overlayVisible = true
	s.armOverlayTimer()
	s.notifyOverlay()
}

// armOverlayTimer debounces the auto-hide: a fresh arming cancels any
// pending timer instead of stacking a second one. The sequence number guards
// against a timer that already fired before Stop could catch it.
func (s *Session) armOverlayTimer() {
	if s.overlayTimer != nil {
		s.overlayTimer.Stop()
	}
	s.overlaySeq++
	seq := s.overlaySeq
	s.overlayTimer = time.AfterFunc(OverlayAutoHide, func() {
		s.dispatch(func() { s.autoHideOverlay(seq) })
	})
}

func (s *Session) cancelOverlayTimer() {
	if s.overlayTimer != nil {
		s.overlayTimer.Stop()
		s.overlayTimer = nil
	}
	s.overlaySeq++ // invalidate any fire already in flight
}

func (s *Session) autoHideOverlay(seq uint64) {
	if seq != s.overlaySeq || !s.overlayVisible || s.selectedID == "" {
		return
	}
	s.overlayVisible = false
	s.overlayTimer = nil
	s.notifyOverlay()
}
