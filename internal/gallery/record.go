// Package gallery holds the in-memory session state for the image browser:
// the scanned image collection, the search-filtered view, the selection
// cursor, per-scan load tracking and the overlay auto-hide timer.
//
// All Session methods must be called from a single goroutine (the Fyne main
// thread in the GUI). Backend calls run on worker goroutines and marshal
// their completions back through the configured dispatch function, so no
// locking is needed anywhere in this package.
package gallery

import "context"

// Record is one scanned image together with its mutable annotation fields.
// Identity is ID; SourcePath, DisplayRef and Name never change after a scan.
// Only Tags and Description are mutated later, by the tag workflow.
type Record struct {
	ID          string
	SourcePath  string
	DisplayRef  string // renderable reference derived from SourcePath
	Name        string
	Tags        []string
	Description string
}

// ScanEntry is one image as reported by the backend scan service.
type ScanEntry struct {
	ID          string
	SourcePath  string
	Name        string
	Tags        []string
	Description string
}

// Backend is the external collaborator the session talks to. Both calls may
// take arbitrarily long and resolve in any order relative to newer user
// actions; the session never cancels them, it only ignores stale results.
type Backend interface {
	ScanFolder(ctx context.Context, folderPath string) ([]ScanEntry, error)
	GenerateTags(ctx context.Context, sourcePath string) ([]string, error)
}

// LoggerFunc receives diagnostic messages. Failures of backend calls are
// logged through this and never surfaced as errors to the caller.
type LoggerFunc func(message string)
