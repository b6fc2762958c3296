package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The timer callbacks are exercised by calling autoHideOverlay directly with
// captured sequence numbers, so no test ever sleeps.

func TestOverlayShowsOnFirstSelection(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg", "b.jpg"))

	assert.False(t, s.OverlayVisible())
	s.Select("img_0")
	assert.True(t, s.OverlayVisible())
	require.NotNil(t, s.overlayTimer)

	// Moving between images while already selected does not re-show a
	// hidden overlay.
	seq := s.overlaySeq
	s.autoHideOverlay(seq)
	assert.False(t, s.OverlayVisible())
	s.GoToNext()
	assert.False(t, s.OverlayVisible())
}

func TestOverlayAutoHideIsDebounced(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg"))

	s.Select("img_0")
	staleSeq := s.overlaySeq

	// Toggle off and on again; the earlier timer's fire must be ignored.
	s.ToggleOverlay()
	s.ToggleOverlay()
	require.True(t, s.OverlayVisible())
	s.autoHideOverlay(staleSeq)
	assert.True(t, s.OverlayVisible(), "stale timer fire must not hide a re-armed overlay")

	s.autoHideOverlay(s.overlaySeq)
	assert.False(t, s.OverlayVisible())
}

func TestOverlayToggle(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg"))

	// No selection: toggling is meaningless and arms nothing.
	s.ToggleOverlay()
	assert.False(t, s.OverlayVisible())
	assert.Nil(t, s.overlayTimer)

	s.Select("img_0")
	s.ToggleOverlay()
	assert.False(t, s.OverlayVisible())
	s.ToggleOverlay()
	assert.True(t, s.OverlayVisible())
	require.NotNil(t, s.overlayTimer)
}

func TestOverlayClearedWithSelection(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg"))

	s.Select("img_0")
	seq := s.overlaySeq
	s.ClearSelection()
	assert.False(t, s.OverlayVisible())
	assert.Nil(t, s.overlayTimer)

	// A fire from the cancelled timer arrives late; nothing happens.
	s.autoHideOverlay(seq)
	assert.False(t, s.OverlayVisible())
}

func TestOverlayNotificationHook(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg"))

	changes := 0
	s.OnOverlayChanged = func() { changes++ }
	s.Select("img_0")  // show
	s.ToggleOverlay()  // hide
	s.ToggleOverlay()  // show
	s.ClearSelection() // hide
	assert.Equal(t, 4, changes)
}
