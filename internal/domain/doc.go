// Package domain defines the data models and ports shared across nanocamo.
// It contains plain types (ledger entries, profiles, scan results) and
// contracts (interfaces) only; the cryptography lives in protocol/camo.
package domain
