package app

import (
	"log/slog"
	"os"

	"nanocamo/internal/domain"
	"nanocamo/internal/ledger"
	paymentsvc "nanocamo/internal/services/payment"
	scansvc "nanocamo/internal/services/scan"
	walletsvc "nanocamo/internal/services/wallet"
	"nanocamo/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config   Config
	Log      *slog.Logger
	Accounts domain.AccountStore
	Wallet   domain.WalletService
	Payments domain.PaymentService
	Scanner  domain.ScanService
	Ledger   domain.LedgerClient
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	versions, err := cfg.CamoVersions()
	if err != nil {
		return nil, err
	}
	log := cfg.NewLogger(os.Stderr)

	// File-based stores
	seedStore := store.NewSeedFileStore(cfg.Home)
	accountStore := store.NewAccountFileStore(cfg.Home)
	cursorStore := store.NewCursorFileStore(cfg.Home)

	// Ledger client
	lc := ledger.NewHTTPClient(cfg.LedgerURL, ledger.Options{
		RequestsPerSecond: cfg.LedgerRPS,
		Burst:             cfg.LedgerBurst,
		Timeout:           cfg.HTTPTimeout,
	})

	// High-level services
	return &Wire{
		Config:   cfg,
		Log:      log,
		Accounts: accountStore,
		Wallet:   walletsvc.New(seedStore, accountStore, versions, log.With("svc", "wallet")),
		Payments: paymentsvc.New(lc, versions, log.With("svc", "payment")),
		Scanner: scansvc.New(lc, cursorStore, scansvc.Options{
			Workers: cfg.ScanWorkers,
			Batch:   cfg.ScanBatch,
		}, log.With("svc", "scan")),
		Ledger: lc,
	}, nil
}
