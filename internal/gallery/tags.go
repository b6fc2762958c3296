package gallery

import (
	"context"
	"fmt"
)

// GenerateTags asks the backend for AI-generated tags for the given image.
// Single-flight: while a request is in flight, further calls are ignored
// rather than queued. The result is applied by id, never by "whatever is
// currently selected", so a user who navigates away mid-request still gets
// the tags attached to the right record.
func (s *Session) GenerateTags(id string) {
	if s.generatingTags {
		return
	}
	rec := s.record(id)
	if rec == nil {
		return
	}
	s.generatingTags = true
	gen := s.scanGen
	sourcePath := rec.SourcePath
	s.spawn(func() {
		tags, err := s.backend.GenerateTags(context.Background(), sourcePath)
		s.dispatch(func() { s.finishGenerateTags(gen, id, tags, err) })
	})
}

// finishGenerateTags reconciles one tagging resolution. Ids are only unique
// within a scan generation, so a result that outlived a re-scan is discarded
// instead of being pinned onto an unrelated record that reused the id.
func (s *Session) finishGenerateTags(gen uint64, id string, tags []string, err error) {
	s.generatingTags = false
	if err != nil {
		s.logf(fmt.Sprintf("generate tags: %v", err))
		return
	}
	if gen != s.scanGen {
		s.logf(fmt.Sprintf("generate tags: discarding result for %s from generation %d", id, gen))
		return
	}
	if rec := s.record(id); rec != nil {
		rec.Tags = tags
		s.notifyImages()
	}
	// Refresh the visible selection only if the user is still on this image.
	if s.selectedID == id {
		s.notifySelection()
	}
}
