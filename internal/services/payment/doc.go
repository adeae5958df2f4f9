// Package payment builds stealth payments to camo addresses and publishes
// them to the ledger.
package payment
