package gallery

import "strings"

// SearchQuery returns the active search query.
func (s *Session) SearchQuery() string { return s.searchQuery }

// SetSearchQuery updates the search query. The filtered view is derived on
// read, so nothing else needs invalidating.
func (s *Session) SetSearchQuery(query string) {
	if s.searchQuery == query {
		return
	}
	s.searchQuery = query
	s.notifyImages()
}

// Filtered returns the subsequence of the collection whose name or tags
// contain the search query as a case-insensitive substring, preserving scan
// order. An empty query returns the whole collection. It is recomputed on
// every call so it always reflects the live collection and query.
func (s *Session) Filtered() []Record {
	if s.searchQuery == "" {
		return s.images
	}
	query := strings.ToLower(s.searchQuery)
	var out []Record
	for _, r := range s.images {
		if recordMatches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

func recordMatches(r Record, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(r.Name), lowerQuery) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}
