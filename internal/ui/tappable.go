package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// --- Tappable Image Custom Widget ---

// tappableImage is a custom widget that displays an image and handles tap
// and double-tap events.
type tappableImage struct {
	widget.BaseWidget
	image          *canvas.Image
	onTapped       func()
	onDoubleTapped func()
}

var _ fyne.Tappable = (*tappableImage)(nil)
var _ fyne.DoubleTappable = (*tappableImage)(nil)

// newTappableImage creates a new tappableImage widget.
func newTappableImage(res fyne.Resource, onTapped func()) *tappableImage {
	ti := &tappableImage{
		image:    canvas.NewImageFromResource(res),
		onTapped: onTapped,
	}
	ti.image.FillMode = canvas.ImageFillContain
	ti.ExtendBaseWidget(ti) // Important: call this to register the widget
	return ti
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (t *tappableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.image)
}

// Tapped is called when the widget is tapped.
func (t *tappableImage) Tapped(_ *fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// DoubleTapped is called when the widget is double-tapped.
func (t *tappableImage) DoubleTapped(_ *fyne.PointEvent) {
	if t.onDoubleTapped != nil {
		t.onDoubleTapped()
	}
}

// SetResource updates the image resource and refreshes.
func (t *tappableImage) SetResource(res fyne.Resource) {
	t.image.Resource = res
	canvas.Refresh(t.image)
}

// SetMinSize sets the minimum size of the tappable image.
func (t *tappableImage) SetMinSize(size fyne.Size) {
	t.image.SetMinSize(size)
}

// --- Grid Cell ---

// gridCell is one entry of the thumbnail grid: a tappable thumbnail with a
// name label under it.
type gridCell struct {
	widget.BaseWidget
	thumb    *tappableImage
	label    *widget.Label
	onTapped func()

	// boundID is the record the cell currently shows. GridWrap recycles
	// cells, so async thumbnail delivery must check it before painting.
	boundID string
}

func newGridCell(onTapped func()) *gridCell {
	c := &gridCell{
		label:    widget.NewLabel(""),
		onTapped: onTapped,
	}
	c.thumb = newTappableImage(nil, func() {
		if c.onTapped != nil {
			c.onTapped()
		}
	})
	c.thumb.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	c.label.Alignment = fyne.TextAlignCenter
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

func (c *gridCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, c.label, nil, nil, c.thumb))
}

// setThumbnail applies res only while the cell is still bound to id, so a
// slow decode cannot paint onto a cell rebound to another record.
func (c *gridCell) setThumbnail(id string, res fyne.Resource) {
	if c.boundID != id {
		return
	}
	c.thumb.SetResource(res)
}
