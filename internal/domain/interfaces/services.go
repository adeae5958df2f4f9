package interfaces

import (
	"context"

	"nanocamo/internal/crypto"
	domaintypes "nanocamo/internal/domain/types"
	"nanocamo/internal/protocol/camo"
)

// PaymentDetector is anything that can recognise payments to one address:
// a full *camo.Account or view-only *camo.ViewKeys.
type PaymentDetector interface {
	Detect(payment camo.Payment) bool
	Address() camo.Address
}

// WalletService owns the mnemonic and derives camo accounts from it.
type WalletService interface {
	CreateWallet(passphrase string) (mnemonic string, err error)
	ImportWallet(passphrase, mnemonic string) error
	OpenAccount(passphrase string, index uint32) (*camo.Account, error)
	AccountAddress(passphrase string, index uint32) (
		camo.Address,
		domaintypes.Fingerprint,
		error,
	)
	ExportViewKeys(passphrase string, index uint32) (*crypto.SecretBytes, error)
}

// PaymentService builds stealth payments and publishes them.
type PaymentService interface {
	// SendPayment pays to at version. A zero version picks the newest one
	// both sides support.
	SendPayment(
		ctx context.Context,
		to camo.Address,
		version camo.Version,
	) (domaintypes.LedgerEntry, error)
}

// ScanService finds payments on the ledger that belong to a detector.
type ScanService interface {
	ScanPayments(ctx context.Context, keys PaymentDetector) (domaintypes.ScanResult, error)
	RecoverKey(
		ctx context.Context,
		account *camo.Account,
		seq domaintypes.Sequence,
	) (*crypto.Scalar, camo.Payment, error)
}
