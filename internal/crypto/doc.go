// Package crypto exposes the key primitives used by nanocamo.
//
// Contents
//
//   - SecretBytes: an owned buffer that is wiped on Destroy, compares in
//     constant time and never prints its contents
//   - Scalar: an integer mod the ed25519 group order ℓ, kept canonical and
//     stored in a SecretBytes (add, sub, mul, negate, invert, ·G, ·P)
//   - PublicKey: a validated compressed point in the prime-order subgroup
//   - Tagged BLAKE2b hashing (Hash256, Hash512, HashToScalar) and the 5-byte
//     address Checksum
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Go has no destructors, so secrets are released with an explicit Destroy,
// normally deferred right after construction. A runtime cleanup wipes a
// buffer that was dropped without Destroy, but only whenever the collector
// gets to it.
//
// Curve arithmetic is delegated to filippo.io/edwards25519. This package
// controls what enters it: raw bytes are always reduced or validated first,
// and decoded temporaries are wiped after each operation.
//
// All operations are synchronous and hold no shared state. Distinct values
// may be used from different goroutines freely; a single Scalar or
// SecretBytes may be read concurrently but not destroyed concurrently.
package crypto
