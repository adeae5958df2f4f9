package store

import (
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"nanocamo/internal/domain"
)

const accountsFile = "accounts.json"

// AccountFileStore persists account profiles to disk, keyed by index.
type AccountFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewAccountFileStore returns an AccountFileStore rooted at dir.
func NewAccountFileStore(dir string) *AccountFileStore {
	return &AccountFileStore{dir: dir}
}

func (s *AccountFileStore) load() (map[string]domain.AccountProfile, error) {
	profiles := make(map[string]domain.AccountProfile)
	if err := readJSON(filepath.Join(s.dir, accountsFile), &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// SaveAccountProfile stores or updates the given profile.
func (s *AccountFileStore) SaveAccountProfile(profile domain.AccountProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return err
	}
	profiles[strconv.FormatUint(uint64(profile.Index), 10)] = profile
	return writeJSON(filepath.Join(s.dir, accountsFile), profiles, 0o600)
}

// LoadAccountProfile retrieves the profile at index.
func (s *AccountFileStore) LoadAccountProfile(index uint32) (domain.AccountProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return domain.AccountProfile{}, false, err
	}
	profile, ok := profiles[strconv.FormatUint(uint64(index), 10)]
	return profile, ok, nil
}

// ListAccountProfiles returns every profile ordered by index.
func (s *AccountFileStore) ListAccountProfiles() ([]domain.AccountProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.AccountProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.AccountProfile) int { return int(a.Index) - int(b.Index) })
	return out, nil
}

var _ domain.AccountStore = (*AccountFileStore)(nil)
