package store

import (
	"path/filepath"
	"sync"

	"nanocamo/internal/domain"
)

const cursorsFilename = "cursors.json"

// CursorFileStore records the last scanned ledger sequence per
// (ledger, address) pair.
type CursorFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewCursorFileStore returns a CursorFileStore rooted at dir.
func NewCursorFileStore(dir string) *CursorFileStore {
	return &CursorFileStore{dir: dir}
}

func cursorKey(ledgerURL, address string) string { return ledgerURL + "|" + address }

// LoadCursor returns 0 when the pair was never scanned.
func (s *CursorFileStore) LoadCursor(ledgerURL, address string) (domain.Sequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursors := map[string]domain.Sequence{}
	if err := readJSON(filepath.Join(s.dir, cursorsFilename), &cursors); err != nil {
		return 0, err
	}
	return cursors[cursorKey(ledgerURL, address)], nil
}

// SaveCursor records seq for the pair.
func (s *CursorFileStore) SaveCursor(ledgerURL, address string, seq domain.Sequence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, cursorsFilename)
	cursors := map[string]domain.Sequence{}
	if err := readJSON(path, &cursors); err != nil {
		return err
	}
	cursors[cursorKey(ledgerURL, address)] = seq
	return writeJSON(path, cursors, 0o600)
}

var _ domain.CursorStore = (*CursorFileStore)(nil)
