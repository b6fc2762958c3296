// Package ui is the Fyne shell around the gallery session: a searchable
// thumbnail grid and a fullscreen viewer with an auto-hiding overlay.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"k8s.io/klog/v2"

	"fotogrid/internal/backend"
	"fotogrid/internal/gallery"
)

// App represents the whole application with all its windows, widgets and
// functions.
type App struct {
	app     fyne.App
	win     fyne.Window
	session *gallery.Session
	thumbs  *ThumbnailManager

	// browse view
	grid        *widget.GridWrap
	searchEntry *widget.Entry
	statusLabel *widget.Label
	browseView  fyne.CanvasObject

	// fullscreen viewer
	viewerView       *fyne.Container
	viewerImageSlot  *fyne.Container
	overlayBox       *fyne.Container
	nameLabel        *widget.Label
	tagsLabel        *widget.Label
	descriptionLabel *widget.Label
	generateBtn      *widget.Button

	root *fyne.Container
}

// CreateApplication builds the window, wires the session to the backend and
// runs the event loop until the window closes.
func CreateApplication(svc *backend.Service) {
	fyneApp := app.NewWithID("com.fotogrid.app")
	win := fyneApp.NewWindow("Fotogrid")

	a := &App{app: fyneApp, win: win}
	a.session = gallery.NewSession(gallery.Config{
		Backend: svc,
		// Backend completions land on the Fyne main thread, keeping the
		// whole session single-threaded.
		Dispatch:   fyne.Do,
		DisplayRef: func(p string) string { return storage.NewFileURI(p).String() },
		Logger:     func(msg string) { klog.Info(msg) },
	})
	a.thumbs = NewThumbnailManager()

	a.session.OnImagesChanged = a.refreshImages
	a.session.OnSelectionChanged = a.refreshSelection
	a.session.OnOverlayChanged = a.refreshOverlay

	a.buildViewer()
	a.browseView = a.buildBrowseView()
	a.viewerView.Hide()
	a.root = container.NewStack(a.browseView, a.viewerView)

	win.SetContent(a.root)
	a.buildKeyboardShortcuts()
	win.Resize(fyne.NewSize(1100, 750))
	win.SetMaster()
	win.ShowAndRun()
}

// displayImage builds the canvas object for one record's display reference.
func displayImage(rec *gallery.Record) *canvas.Image {
	var img *canvas.Image
	if uri, err := storage.ParseURI(rec.DisplayRef); err == nil {
		img = canvas.NewImageFromURI(uri)
	} else {
		img = canvas.NewImageFromFile(rec.SourcePath)
	}
	img.FillMode = canvas.ImageFillContain
	return img
}
