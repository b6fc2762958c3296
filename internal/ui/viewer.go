package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// buildViewer assembles the fullscreen viewer: the image surface, a tap
// catcher toggling the overlay, and the overlay itself.
func (a *App) buildViewer() {
	a.viewerImageSlot = container.NewStack()

	a.nameLabel = widget.NewLabel("")
	a.nameLabel.TextStyle.Bold = true
	a.tagsLabel = widget.NewLabel("")
	a.tagsLabel.Wrapping = fyne.TextWrapWord
	a.descriptionLabel = widget.NewLabel("")
	a.descriptionLabel.Wrapping = fyne.TextWrapWord

	a.generateBtn = widget.NewButtonWithIcon("Generate Tags", theme.SearchReplaceIcon(), func() {
		if rec := a.session.Selected(); rec != nil {
			a.session.GenerateTags(rec.ID)
			a.updateViewerLabels()
		}
	})

	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), a.session.GoToPrevious)
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), a.session.GoToNext)
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), a.session.ClearSelection)

	controls := container.NewHBox(prevBtn, nextBtn, layout.NewSpacer(), a.generateBtn, closeBtn)
	a.overlayBox = container.NewVBox(
		widget.NewSeparator(),
		a.nameLabel,
		a.tagsLabel,
		a.descriptionLabel,
		controls,
	)

	// Tapping the surface toggles the overlay; a double tap leaves the
	// viewer. The whole surface re-reads the session per event.
	surface := newTappableImage(nil, a.session.ToggleOverlay)
	surface.onDoubleTapped = a.session.ClearSelection

	a.viewerView = container.NewStack(
		a.viewerImageSlot,
		surface,
		container.NewBorder(nil, a.overlayBox, nil, nil, layout.NewSpacer()),
	)
}

// refreshSelection is the session's OnSelectionChanged hook: it swaps
// between the grid and the viewer and rebinds the displayed image.
func (a *App) refreshSelection() {
	if a.session.SelectedID() == "" {
		a.viewerView.Hide()
		a.browseView.Show()
		a.win.SetTitle("Fotogrid")
		return
	}

	a.updateViewerLabels()
	a.viewerImageSlot.RemoveAll()
	if rec := a.session.Selected(); rec != nil {
		a.viewerImageSlot.Add(displayImage(rec))
		a.win.SetTitle("Fotogrid - " + rec.Name)
	}
	a.viewerImageSlot.Refresh()

	a.browseView.Hide()
	a.viewerView.Show()
	a.refreshOverlay()
}

// updateViewerLabels re-reads the live selection; it never works from
// values captured when a request was issued.
func (a *App) updateViewerLabels() {
	rec := a.session.Selected()
	if rec == nil {
		// Selection id no longer resolves (e.g. removed by a re-scan).
		a.nameLabel.SetText("(image no longer available)")
		a.tagsLabel.SetText("")
		a.descriptionLabel.SetText("")
		a.generateBtn.Disable()
		return
	}

	a.nameLabel.SetText(rec.Name)
	if len(rec.Tags) > 0 {
		a.tagsLabel.SetText("Tags: " + strings.Join(rec.Tags, ", "))
	} else {
		a.tagsLabel.SetText("Tags: (none)")
	}
	a.descriptionLabel.SetText(rec.Description)

	if a.session.GeneratingTags() {
		a.generateBtn.Disable()
	} else {
		a.generateBtn.Enable()
	}
	a.updateStatus()
}

// refreshOverlay is the session's OnOverlayChanged hook.
func (a *App) refreshOverlay() {
	if a.session.OverlayVisible() {
		a.overlayBox.Show()
	} else {
		a.overlayBox.Hide()
	}
	a.viewerView.Refresh()
}
