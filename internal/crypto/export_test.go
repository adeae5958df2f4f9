package crypto

// BackingStore exposes the buffer behind a secret so tests can observe that
// Destroy wiped it.
func BackingStore(s *SecretBytes) []byte { return s.buf }

// ScalarBackingStore is BackingStore for a Scalar.
func ScalarBackingStore(s *Scalar) []byte { return s.secret.buf }
