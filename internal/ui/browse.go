package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"k8s.io/klog/v2"
)

// buildBrowseView assembles the thumbnail grid with its search entry and
// status bar.
func (a *App) buildBrowseView() fyne.CanvasObject {
	a.searchEntry = widget.NewEntry()
	a.searchEntry.SetPlaceHolder("Search by name or tag…")
	a.searchEntry.OnChanged = func(query string) {
		a.session.SetSearchQuery(query)
	}

	openBtn := widget.NewButtonWithIcon("Open Folder", theme.FolderOpenIcon(), a.openFolder)

	a.statusLabel = widget.NewLabel("No folder scanned.")

	a.grid = widget.NewGridWrap(
		func() int { return len(a.session.Filtered()) },
		func() fyne.CanvasObject { return newGridCell(nil) },
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) {
			a.updateGridCell(int(id), obj.(*gridCell))
		},
	)

	top := container.NewBorder(nil, nil, openBtn, nil, a.searchEntry)
	bottom := container.NewVBox(widget.NewSeparator(), a.statusLabel)
	return container.NewBorder(top, bottom, nil, nil, a.grid)
}

// updateGridCell binds one grid cell to the record at view index i. The view
// is re-read on each call, never captured.
func (a *App) updateGridCell(i int, cell *gridCell) {
	view := a.session.Filtered()
	if i < 0 || i >= len(view) {
		return
	}
	rec := view[i]
	id := rec.ID
	cell.boundID = id
	cell.label.SetText(rec.Name)
	cell.onTapped = func() { a.session.Select(id) }

	if !a.session.IsLoaded(id) {
		// Loading placeholder; reappears for every record after a re-scan
		// because the load tracker is keyed by scan generation.
		cell.thumb.SetResource(theme.FileImageIcon())
	}
	res := a.thumbs.Get(rec.SourcePath, func(r fyne.Resource) {
		a.session.MarkLoaded(id)
		cell.setThumbnail(id, r)
	})
	if a.session.IsLoaded(id) {
		cell.thumb.SetResource(res)
	}
}

// openFolder prompts for a folder and kicks off a scan. Cancelling the
// dialog is a no-op, not an error.
func (a *App) openFolder() {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil {
			klog.Errorf("folder picker: %v", err)
			return
		}
		if list == nil {
			return
		}
		a.session.StartScan(list.Path())
		a.updateStatus()
	}, a.win)
}

// refreshImages is the session's OnImagesChanged hook.
func (a *App) refreshImages() {
	a.grid.Refresh()
	a.updateStatus()
	// Tag updates arrive through the collection; keep the overlay labels
	// of a visible viewer current.
	if a.session.SelectedID() != "" {
		a.updateViewerLabels()
	}
}

func (a *App) updateStatus() {
	total := len(a.session.Images())
	shown := len(a.session.Filtered())
	text := fmt.Sprintf("%d images", total)
	if shown != total {
		text = fmt.Sprintf("%d / %d images (filtered)", shown, total)
	}
	if a.session.Scanning() {
		text += " | Scanning…"
	}
	if a.session.GeneratingTags() {
		text += " | Generating tags…"
	}
	a.statusLabel.SetText(text)
}
