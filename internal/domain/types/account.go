package types

import "time"

// AccountProfile records a derived camo account the wallet has handed out.
// It holds public data only.
type AccountProfile struct {
	Index       uint32      `json:"index"`
	Address     string      `json:"address"`
	Versions    []uint8     `json:"versions"`
	Fingerprint Fingerprint `json:"fingerprint"`
	CreatedAt   time.Time   `json:"created_at"`
}
