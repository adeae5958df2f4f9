package crypto

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"runtime"

	"nanocamo/internal/nanoerr"
	"nanocamo/internal/util/memzero"
)

const redacted = "[secret value]"

// SecretBytes owns a buffer of sensitive bytes.
//
// The buffer is never shared: NewSecretBytes copies and wipes its input, and
// Clone allocates a fresh buffer. Destroy wipes the buffer and must be called
// when the value is no longer needed (usually via defer). A cleanup registered
// with the runtime wipes the buffer if the value is collected without Destroy,
// but collection timing is not guaranteed, so callers must not rely on it.
//
// A SecretBytes is safe for concurrent reads. Destroy must not race with
// other methods.
type SecretBytes struct {
	buf       []byte
	destroyed bool
}

// NewSecretBytes takes ownership of data. The contents are moved into a new
// buffer and data is zeroed before returning.
func NewSecretBytes(data []byte) *SecretBytes {
	buf := make([]byte, len(data))
	copy(buf, data)
	memzero.Zero(data)
	return newOwned(buf)
}

// NewSecretBytesSized is NewSecretBytes with a length check. On a length
// mismatch data is still wiped.
func NewSecretBytesSized(data []byte, size int) (*SecretBytes, error) {
	if len(data) != size {
		n := len(data)
		memzero.Zero(data)
		return nil, nanoerr.Length("crypto.NewSecretBytes", size, n)
	}
	return NewSecretBytes(data), nil
}

// newOwned wraps buf without copying. buf must not be referenced elsewhere.
func newOwned(buf []byte) *SecretBytes {
	s := &SecretBytes{buf: buf}
	runtime.AddCleanup(s, memzero.Zero, buf)
	return s
}

// Bytes returns a read-only view of the secret. The slice is only valid until
// Destroy and must not be retained or modified. It returns nil after Destroy.
func (s *SecretBytes) Bytes() []byte {
	if s == nil || s.destroyed {
		return nil
	}
	return s.buf
}

// Len returns the buffer length. Lengths are not secret.
func (s *SecretBytes) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// Clone returns an independent copy with its own lifetime.
func (s *SecretBytes) Clone() *SecretBytes {
	buf := make([]byte, len(s.Bytes()))
	copy(buf, s.Bytes())
	return newOwned(buf)
}

// Equal compares two secrets in constant time with respect to their contents.
// Differing lengths compare unequal. A destroyed secret equals nothing.
func (s *SecretBytes) Equal(other *SecretBytes) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.destroyed || other.destroyed {
		return false
	}
	return subtle.ConstantTimeCompare(s.Bytes(), other.Bytes()) == 1
}

// Destroy wipes the buffer. It is idempotent.
func (s *SecretBytes) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	memzero.Zero(s.buf)
	s.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (s *SecretBytes) Destroyed() bool { return s == nil || s.destroyed }

func (s *SecretBytes) String() string { return redacted }

// GoString keeps %#v from printing the buffer.
func (s *SecretBytes) GoString() string { return redacted }

// Format covers every verb, including %x and %v on the struct itself.
func (s *SecretBytes) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte(redacted)) }

// LogValue implements slog.LogValuer.
func (s *SecretBytes) LogValue() slog.Value { return slog.StringValue(redacted) }

// UseSecret wraps data, calls fn and destroys the secret on every return path,
// including a panic inside fn.
func UseSecret(data []byte, fn func(*SecretBytes) error) error {
	s := NewSecretBytes(data)
	defer s.Destroy()
	return fn(s)
}

// DestroyAll destroys each non-nil destroyer. Handy in defers.
func DestroyAll(ds ...interface{ Destroy() }) {
	for _, d := range ds {
		if d != nil {
			d.Destroy()
		}
	}
}
