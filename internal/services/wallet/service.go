package wallet

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/tyler-smith/go-bip39"

	"nanocamo/internal/crypto"
	"nanocamo/internal/domain"
	"nanocamo/internal/protocol/camo"
	"nanocamo/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
	// entropyBits gives a 24-word mnemonic.
	entropyBits = 256

	tagMasterSeed = "nanocamo/master-seed"
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrInvalidMnemonic is returned for a mnemonic that fails the BIP-39 checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrWalletExists is returned by Create and Import when a seed is already stored.
	ErrWalletExists = errors.New("wallet already initialised")
)

// Service derives camo accounts from a stored mnemonic.
//
// The mnemonic is decrypted for each call and wiped afterwards; no secret is
// cached between calls.
type Service struct {
	seeds    domain.SeedStore
	accounts domain.AccountStore
	versions camo.Versions
	log      *slog.Logger
	now      func() time.Time
}

// New returns a wallet service. versions is the set new accounts advertise.
func New(seeds domain.SeedStore, accounts domain.AccountStore, versions camo.Versions, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{seeds: seeds, accounts: accounts, versions: versions, log: log, now: time.Now}
}

// CreateWallet generates a fresh mnemonic, stores it encrypted and returns
// it for the user to write down.
func (s *Service) CreateWallet(passphrase string) (string, error) {
	if err := s.checkNew(passphrase); err != nil {
		return "", err
	}
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	memzero.Zero(entropy)
	if err != nil {
		return "", err
	}
	if err := s.store(passphrase, mnemonic); err != nil {
		return "", err
	}
	return mnemonic, nil
}

// ImportWallet stores an existing mnemonic.
func (s *Service) ImportWallet(passphrase, mnemonic string) error {
	if err := s.checkNew(passphrase); err != nil {
		return err
	}
	mnemonic = normalizeMnemonic(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return s.store(passphrase, mnemonic)
}

func (s *Service) checkNew(passphrase string) error {
	if !isSecurePassphrase(passphrase) {
		return ErrWeakPassphrase
	}
	exists, err := s.seeds.HasSeed()
	if err != nil {
		return err
	}
	if exists {
		return ErrWalletExists
	}
	return nil
}

func (s *Service) store(passphrase, mnemonic string) error {
	secret := crypto.NewSecretBytes([]byte(mnemonic))
	defer secret.Destroy()
	if err := s.seeds.SaveSeed(passphrase, secret); err != nil {
		return err
	}
	acct, err := s.OpenAccount(passphrase, 0)
	if err != nil {
		return err
	}
	defer acct.Destroy()
	s.log.Info("wallet initialised", "address", acct.Address().String())
	return nil
}

// masterSeed turns the stored mnemonic into the 32-byte camo master seed.
func (s *Service) masterSeed(passphrase string) (*crypto.SecretBytes, error) {
	mnemonic, err := s.seeds.LoadSeed(passphrase)
	if err != nil {
		return nil, err
	}
	defer mnemonic.Destroy()

	seed, err := bip39.NewSeedWithErrorChecking(string(mnemonic.Bytes()), "")
	if err != nil {
		return nil, fmt.Errorf("wallet: stored mnemonic: %w", ErrInvalidMnemonic)
	}
	wide := crypto.NewSecretBytes(seed)
	defer wide.Destroy()
	return crypto.Hash256(tagMasterSeed, wide.Bytes()), nil
}

// OpenAccount derives the account at index. The caller must Destroy it.
func (s *Service) OpenAccount(passphrase string, index uint32) (*camo.Account, error) {
	seed, err := s.masterSeed(passphrase)
	if err != nil {
		return nil, err
	}
	defer seed.Destroy()

	acct, err := camo.FromSeedIndex(seed, index, s.versions)
	if err != nil {
		return nil, err
	}
	if err := s.remember(acct); err != nil {
		acct.Destroy()
		return nil, err
	}
	return acct, nil
}

// remember records the public profile of acct the first time it is opened.
func (s *Service) remember(acct *camo.Account) error {
	_, ok, err := s.accounts.LoadAccountProfile(acct.Index())
	if err != nil || ok {
		return err
	}
	versions := make([]uint8, 0, acct.Versions().Len())
	for _, v := range acct.Versions().List() {
		versions = append(versions, uint8(v))
	}
	return s.accounts.SaveAccountProfile(domain.AccountProfile{
		Index:       acct.Index(),
		Address:     acct.Address().String(),
		Versions:    versions,
		Fingerprint: domain.Fingerprint(crypto.Fingerprint(acct.SpendPublicKey())),
		CreatedAt:   s.now().UTC(),
	})
}

// AccountAddress returns the public address and spend key fingerprint at index.
func (s *Service) AccountAddress(passphrase string, index uint32) (camo.Address, domain.Fingerprint, error) {
	acct, err := s.OpenAccount(passphrase, index)
	if err != nil {
		return camo.Address{}, "", err
	}
	defer acct.Destroy()
	return acct.Address(), domain.Fingerprint(crypto.Fingerprint(acct.SpendPublicKey())), nil
}

// ExportViewKeys returns the view-only key export for index. The result is
// secret and must be Destroyed.
func (s *Service) ExportViewKeys(passphrase string, index uint32) (*crypto.SecretBytes, error) {
	acct, err := s.OpenAccount(passphrase, index)
	if err != nil {
		return nil, err
	}
	defer acct.Destroy()
	vk := acct.ViewKeys()
	defer vk.Destroy()
	return vk.Export(), nil
}

func normalizeMnemonic(m string) string {
	return strings.ToLower(strings.Join(strings.Fields(m), " "))
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.WalletService.
var _ domain.WalletService = (*Service)(nil)
