package domain

import (
	interfaces "nanocamo/internal/domain/interfaces"
	types "nanocamo/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint     = types.Fingerprint
	Sequence        = types.Sequence
	AccountProfile  = types.AccountProfile
	LedgerEntry     = types.LedgerEntry
	DetectedPayment = types.DetectedPayment
	ScanResult      = types.ScanResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PaymentDetector = interfaces.PaymentDetector
	WalletService   = interfaces.WalletService
	PaymentService  = interfaces.PaymentService
	ScanService     = interfaces.ScanService
	LedgerClient    = interfaces.LedgerClient
	SeedStore       = interfaces.SeedStore
	AccountStore    = interfaces.AccountStore
	CursorStore     = interfaces.CursorStore
)
