package crypto

import "encoding/hex"

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub PublicKey) string {
	sum := Hash256("nanocamo/fingerprint", pub.enc[:])
	defer sum.Destroy()
	return hex.EncodeToString(sum.Bytes()[:10])
}
