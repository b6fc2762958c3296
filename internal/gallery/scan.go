package gallery

import (
	"context"
	"fmt"
)

// StartScan asks the backend to scan folderPath and, on success, replaces
// the collection wholesale. An empty folderPath (cancelled picker) is a
// no-op. A second scan may be started while one is in flight; only the
// newest request's resolution is applied, older ones are discarded.
func (s *Session) StartScan(folderPath string) {
	if folderPath == "" {
		return
	}
	s.scanSeq++
	token := s.scanSeq
	s.scanning = true
	s.spawn(func() {
		entries, err := s.backend.ScanFolder(context.Background(), folderPath)
		s.dispatch(func() { s.finishScan(token, entries, err) })
	})
}

// finishScan applies one scan resolution. The token check keeps an older
// request from overwriting the result of a newer one; a discarded resolution
// must not release the scanning flag either, since the newer request still
// owns it.
func (s *Session) finishScan(token uint64, entries []ScanEntry, err error) {
	if token != s.scanSeq {
		s.logf(fmt.Sprintf("scan: discarding stale result (token %d, newest %d)", token, s.scanSeq))
		return
	}
	s.scanning = false
	if err != nil {
		s.logf(fmt.Sprintf("scan: %v", err))
		return
	}

	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = Record{
			ID:          e.ID,
			SourcePath:  e.SourcePath,
			DisplayRef:  s.displayRef(e.SourcePath),
			Name:        e.Name,
			Tags:        e.Tags,
			Description: e.Description,
		}
	}

	// Images, generation bump and load-state reset land as one update.
	s.images = records
	s.scanGen++
	s.loaded = map[loadKey]struct{}{}
	s.notifyImages()
	s.notifySelection()
}
