package gallery

import (
	"log"
	"time"
)

// Config wires a Session to its collaborators. Zero fields get safe
// defaults so tests can construct a Session with just a Backend.
type Config struct {
	Backend Backend

	// Dispatch marshals backend completions onto the goroutine that owns
	// the session. The GUI passes fyne.Do; the default runs inline.
	Dispatch func(func())

	// DisplayRef converts a source path into a renderable reference.
	// The GUI passes a file-URI conversion; the default is the identity.
	DisplayRef func(sourcePath string) string

	Logger LoggerFunc
}

type loadKey struct {
	id  string
	gen uint64
}

// Session is the client-side controller for one gallery: it owns the scanned
// collection, reconciles asynchronous backend responses against newer user
// actions, and derives the filtered, navigable view.
type Session struct {
	backend    Backend
	dispatch   func(func())
	displayRef func(string) string
	logf       LoggerFunc

	// spawn runs a backend call off the owning goroutine. Tests replace it
	// to control completion order.
	spawn func(func())

	images      []Record
	searchQuery string
	selectedID  string // "" means no selection
	scanGen     uint64
	loaded      map[loadKey]struct{}

	scanning       bool
	generatingTags bool

	// scanSeq is the issue token of the newest scan request; a resolution
	// carrying an older token is discarded.
	scanSeq uint64

	overlayVisible bool
	overlaySeq     uint64
	overlayTimer   *time.Timer

	// Change hooks for the presentation layer. All are optional.
	OnImagesChanged    func()
	OnSelectionChanged func()
	OnOverlayChanged   func()
}

// NewSession creates an empty session around the given backend.
func NewSession(cfg Config) *Session {
	s := &Session{
		backend:    cfg.Backend,
		dispatch:   cfg.Dispatch,
		displayRef: cfg.DisplayRef,
		logf:       cfg.Logger,
		loaded:     map[loadKey]struct{}{},
	}
	if s.dispatch == nil {
		s.dispatch = func(fn func()) { fn() }
	}
	if s.displayRef == nil {
		s.displayRef = func(p string) string { return p }
	}
	if s.logf == nil {
		s.logf = func(msg string) { log.Print(msg) }
	}
	s.spawn = func(fn func()) { go fn() }
	return s
}

// Images returns the full collection in scan order.
func (s *Session) Images() []Record { return s.images }

// ScanGeneration returns the current scan generation counter.
func (s *Session) ScanGeneration() uint64 { return s.scanGen }

// Scanning reports whether a folder scan is in flight.
func (s *Session) Scanning() bool { return s.scanning }

// GeneratingTags reports whether a tag-generation request is in flight.
func (s *Session) GeneratingTags() bool { return s.generatingTags }

// record returns a pointer into the live collection, or nil.
func (s *Session) record(id string) *Record {
	for i := range s.images {
		if s.images[i].ID == id {
			return &s.images[i]
		}
	}
	return nil
}

func (s *Session) notifyImages() {
	if s.OnImagesChanged != nil {
		s.OnImagesChanged()
	}
}

func (s *Session) notifySelection() {
	if s.OnSelectionChanged != nil {
		s.OnSelectionChanged()
	}
}

func (s *Session) notifyOverlay() {
	if s.OnOverlayChanged != nil {
		s.OnOverlayChanged()
	}
}
