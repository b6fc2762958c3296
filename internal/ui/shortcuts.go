// Shortcuts for keyboard actions.
package ui

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (a *App) buildKeyboardShortcuts() {
	modKey := fyne.KeyModifierControl
	if runtime.GOOS == "darwin" {
		modKey = fyne.KeyModifierSuper
	}

	// ctrl+q to quit application
	a.win.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: modKey,
	}, func(_ fyne.Shortcut) { a.app.Quit() })

	// Arrow keys and escape are meaningful only while a selection exists.
	// The handler re-reads the session on every event instead of capturing
	// the filtered view or index, so navigation always acts against the
	// live list even after a re-scan or a search change.
	a.win.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if a.session.SelectedID() == "" {
			return
		}
		switch key.Name {
		case fyne.KeyLeft:
			a.session.GoToPrevious()
		case fyne.KeyRight:
			a.session.GoToNext()
		case fyne.KeyEscape:
			a.session.ClearSelection()
		}
	})
}
