package gallery

// MarkLoaded records that the image's visual load completed for the current
// scan generation.
func (s *Session) MarkLoaded(id string) {
	s.loaded[loadKey{id: id, gen: s.scanGen}] = struct{}{}
}

// IsLoaded reports whether the image finished loading within the current
// scan generation. Entries written under an earlier generation do not count,
// so after a re-scan even a reused id shows its loading placeholder again.
func (s *Session) IsLoaded(id string) bool {
	_, ok := s.loaded[loadKey{id: id, gen: s.scanGen}]
	return ok
}
