package interfaces

import (
	"nanocamo/internal/crypto"
	domaintypes "nanocamo/internal/domain/types"
)

// SeedStore persists the wallet mnemonic, encrypted under a passphrase.
type SeedStore interface {
	SaveSeed(passphrase string, mnemonic *crypto.SecretBytes) error
	LoadSeed(passphrase string) (*crypto.SecretBytes, error)
	HasSeed() (bool, error)
}

// AccountStore records the public side of derived accounts.
type AccountStore interface {
	SaveAccountProfile(profile domaintypes.AccountProfile) error
	LoadAccountProfile(index uint32) (domaintypes.AccountProfile, bool, error)
	ListAccountProfiles() ([]domaintypes.AccountProfile, error)
}

// CursorStore remembers how far each address has been scanned on each ledger.
type CursorStore interface {
	LoadCursor(ledgerURL, address string) (domaintypes.Sequence, error)
	SaveCursor(ledgerURL, address string, seq domaintypes.Sequence) error
}
