package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationBoundaries(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg", "b.jpg", "c.jpg"))

	s.Select("img_1") // b.jpg
	assert.Equal(t, 1, s.CurrentIndex())

	s.GoToNext()
	assert.Equal(t, "img_2", s.SelectedID()) // c.jpg
	s.GoToNext()
	assert.Equal(t, "img_2", s.SelectedID(), "upper boundary is a no-op")

	s.GoToPrevious()
	s.GoToPrevious()
	assert.Equal(t, "img_0", s.SelectedID())
	s.GoToPrevious()
	assert.Equal(t, "img_0", s.SelectedID(), "lower boundary is a no-op")
}

func TestCursorWithoutSelection(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg", "b.jpg"))

	assert.Equal(t, -1, s.CurrentIndex())
	s.GoToNext()
	s.GoToPrevious()
	assert.Empty(t, s.SelectedID())
	assert.Nil(t, s.Selected())
}

func TestCursorSelectionRemovedByRescan(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg", "b.jpg"))
	s.Select("img_1")

	scanInto(t, s, q, entries("x.jpg"))

	// The selected id survives the re-scan but no longer resolves; the
	// cursor must report -1 and navigation must not fault.
	assert.Equal(t, "img_1", s.SelectedID())
	assert.Equal(t, -1, s.CurrentIndex())
	assert.Nil(t, s.Selected())
	s.GoToNext()
	s.GoToPrevious()
	assert.Equal(t, "img_1", s.SelectedID())
}

func TestCursorNavigatesFilteredView(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	es := entries("cat1.jpg", "dog.jpg", "cat2.jpg")
	scanInto(t, s, q, es)

	s.SetSearchQuery("cat")
	s.Select("img_0")
	s.GoToNext()
	assert.Equal(t, "img_2", s.SelectedID(), "navigation skips filtered-out images")

	// Widening the filter mid-selection changes what "next" means; the
	// cursor re-reads the live view instead of a captured one.
	s.SetSearchQuery("")
	s.GoToPrevious()
	assert.Equal(t, "img_1", s.SelectedID())
}

func TestClearSelection(t *testing.T) {
	fb := &fakeBackend{}
	s, q := newTestSession(fb)
	scanInto(t, s, q, entries("a.jpg"))

	s.Select("img_0")
	require.True(t, s.OverlayVisible())
	s.ClearSelection()
	assert.Empty(t, s.SelectedID())
	assert.False(t, s.OverlayVisible())
	s.ClearSelection() // idempotent
	assert.Empty(t, s.SelectedID())
}
