package types

import "nanocamo/internal/protocol/camo"

// LedgerEntry is a payment as stored by the ledger, in publication order.
type LedgerEntry struct {
	Seq       Sequence     `json:"seq"`
	Payment   camo.Payment `json:"payment"`
	Timestamp int64        `json:"timestamp"`
}

// DetectedPayment is a ledger entry that matched the scanning keys.
type DetectedPayment struct {
	Entry LedgerEntry `json:"entry"`
	// ID is Payment.ID(), kept for display.
	ID string `json:"id"`
}

// ScanResult summarises one ScanPayments call.
type ScanResult struct {
	Scanned  int               `json:"scanned"`
	Detected []DetectedPayment `json:"detected"`
	// Cursor is the last sequence fully processed; the next scan starts after it.
	Cursor Sequence `json:"cursor"`
}
