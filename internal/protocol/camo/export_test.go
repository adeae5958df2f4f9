package camo

import "nanocamo/internal/crypto"

// PayWith exposes the deterministic sender path for tests.
func PayWith(addr Address, v Version, r *crypto.Scalar) Payment { return payWith(addr, v, r) }

// Tweak exposes H_v for tests.
func Tweak(d *crypto.SecretBytes, v Version) *crypto.Scalar { return tweak(d, v) }
