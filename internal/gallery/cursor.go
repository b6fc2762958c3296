package gallery

// SelectedID returns the id of the selected image, or "" when none.
func (s *Session) SelectedID() string { return s.selectedID }

// Selected returns the selected record from the live collection, or nil when
// there is no selection or a re-scan removed the selected id.
func (s *Session) Selected() *Record {
	if s.selectedID == "" {
		return nil
	}
	return s.record(s.selectedID)
}

// CurrentIndex returns the position of the selection within the filtered
// view, or -1 when there is no selection or it is not in the view. The
// selected id may legitimately be absent, e.g. after a re-scan.
func (s *Session) CurrentIndex() int {
	if s.selectedID == "" {
		return -1
	}
	for i, r := range s.Filtered() {
		if r.ID == s.selectedID {
			return i
		}
	}
	return -1
}

// Select makes id the current selection.
func (s *Session) Select(id string) {
	if s.selectedID == id {
		return
	}
	wasEmpty := s.selectedID == ""
	s.selectedID = id
	if wasEmpty {
		s.showOverlay()
	}
	s.notifySelection()
}

// ClearSelection drops the selection and the overlay with it.
func (s *Session) ClearSelection() {
	if s.selectedID == "" {
		return
	}
	s.selectedID = ""
	s.cancelOverlayTimer()
	if s.overlayVisible {
		s.overlayVisible = false
		s.notifyOverlay()
	}
	s.notifySelection()
}

// GoToPrevious moves the selection one step back within the filtered view.
// At the lower boundary, or when the selection is not in the view, it is a
// no-op. The view is re-read on every call so navigation always acts against
// the live list.
func (s *Session) GoToPrevious() {
	view := s.Filtered()
	i := indexOf(view, s.selectedID)
	if i > 0 {
		s.Select(view[i-1].ID)
	}
}

// GoToNext moves the selection one step forward, symmetric to GoToPrevious.
func (s *Session) GoToNext() {
	view := s.Filtered()
	i := indexOf(view, s.selectedID)
	if i >= 0 && i < len(view)-1 {
		s.Select(view[i+1].ID)
	}
}

func indexOf(view []Record, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range view {
		if r.ID == id {
			return i
		}
	}
	return -1
}
