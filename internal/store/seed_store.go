package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"nanocamo/internal/crypto"
	"nanocamo/internal/domain"
)

const seedFilename = "seed.json.enc"

// ErrNoSeed is returned by LoadSeed before any seed was saved.
var ErrNoSeed = errors.New("store: no wallet seed; run init or import first")

// SeedFileStore keeps the wallet mnemonic encrypted on disk.
type SeedFileStore struct {
	dir string
	kdf scryptParams
	mu  sync.Mutex
}

// NewSeedFileStore returns a SeedFileStore rooted at dir.
func NewSeedFileStore(dir string) *SeedFileStore {
	return &SeedFileStore{dir: dir, kdf: defaultScrypt}
}

// SaveSeed encrypts mnemonic under passphrase and replaces any stored seed.
func (s *SeedFileStore) SaveSeed(passphrase string, mnemonic *crypto.SecretBytes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, err := seal(passphrase, mnemonic.Bytes(), s.kdf)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, seedFilename), ct, 0o600)
}

// LoadSeed decrypts the stored mnemonic. The caller must Destroy it.
func (s *SeedFileStore) LoadSeed(passphrase string) (*crypto.SecretBytes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, seedFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSeed
	}
	if err != nil {
		return nil, err
	}
	pt, err := open(passphrase, b)
	if err != nil {
		return nil, err
	}
	return crypto.NewSecretBytes(pt), nil
}

// HasSeed reports whether a seed file exists.
func (s *SeedFileStore) HasSeed() (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, seedFilename))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

var _ domain.SeedStore = (*SeedFileStore)(nil)
