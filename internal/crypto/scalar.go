package crypto

import (
	"crypto/rand"
	"fmt"
	"log/slog"

	"filippo.io/edwards25519"

	"nanocamo/internal/nanoerr"
	"nanocamo/internal/util/memzero"
)

const (
	// ScalarSize is the length of a canonical scalar encoding.
	ScalarSize = 32
	// WideScalarSize is the length of a uniform input to SetUniformBytes.
	WideScalarSize = 64
)

// radix is 2^256 mod ℓ, used to fold inputs longer than 64 bytes.
var radix = func() *edwards25519.Scalar {
	var b [WideScalarSize]byte
	b[ScalarSize] = 1
	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		panic(err)
	}
	return s
}()

// Scalar is an integer modulo the ed25519 group order ℓ.
//
// The value is held as its 32-byte little-endian canonical encoding in a
// SecretBytes, so 0 <= value < ℓ always holds. Arithmetic decodes into
// temporaries that are wiped before returning. Every result is a new Scalar
// that the caller owns and should Destroy.
type Scalar struct {
	secret *SecretBytes
}

// ScalarFromBytesReduced reduces an arbitrary little-endian byte string
// modulo ℓ. It never fails. data is wiped.
func ScalarFromBytesReduced(data []byte) *Scalar {
	defer memzero.Zero(data)
	r := reduce(data)
	return scalarFromRaw(r)
}

// ScalarFromCanonicalBytes accepts only a 32-byte encoding already reduced
// modulo ℓ. data is wiped on every path.
func ScalarFromCanonicalBytes(data []byte) (*Scalar, error) {
	defer memzero.Zero(data)
	if len(data) != ScalarSize {
		return nil, nanoerr.Length("crypto.ScalarFromCanonicalBytes", ScalarSize, len(data))
	}
	r, err := edwards25519.NewScalar().SetCanonicalBytes(data)
	if err != nil {
		return nil, nanoerr.New("crypto.ScalarFromCanonicalBytes", nanoerr.ErrInvalidScalar)
	}
	return scalarFromRaw(r), nil
}

// RandomScalar draws a scalar uniformly from [0, ℓ) using crypto/rand.
// An error means the platform cannot supply secure randomness and the caller
// should abort rather than continue.
func RandomScalar() (*Scalar, error) {
	var wide [WideScalarSize]byte
	defer memzero.Zero(wide[:])
	if _, err := rand.Read(wide[:]); err != nil {
		return nil, nanoerr.Newf("crypto.RandomScalar", nanoerr.ErrEntropy, "%v", err)
	}
	r, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, err
	}
	return scalarFromRaw(r), nil
}

// reduce folds data of any length into a scalar, 32 bytes at a time from the
// most significant end: acc = acc·2^256 + chunk.
func reduce(data []byte) *edwards25519.Scalar {
	var wide [WideScalarSize]byte
	defer memzero.Zero(wide[:])

	if len(data) <= WideScalarSize {
		copy(wide[:], data)
		r, _ := edwards25519.NewScalar().SetUniformBytes(wide[:])
		return r
	}

	acc := edwards25519.NewScalar()
	chunk := edwards25519.NewScalar()
	defer wipeRaw(chunk)
	top := (len(data) - 1) / ScalarSize * ScalarSize
	for off := top; off >= 0; off -= ScalarSize {
		end := min(off+ScalarSize, len(data))
		memzero.Zero(wide[:])
		copy(wide[:], data[off:end])
		_, _ = chunk.SetUniformBytes(wide[:])
		acc.MultiplyAdd(acc, radix, chunk)
	}
	return acc
}

// scalarFromRaw takes the value of r into a new Scalar and wipes r.
func scalarFromRaw(r *edwards25519.Scalar) *Scalar {
	buf := r.Bytes()
	wipeRaw(r)
	return &Scalar{secret: newOwned(buf)}
}

// raw decodes s into a temporary the caller must wipe.
func (s *Scalar) raw() *edwards25519.Scalar {
	r, err := edwards25519.NewScalar().SetCanonicalBytes(s.secret.Bytes())
	if err != nil {
		panic("crypto: use of destroyed scalar")
	}
	return r
}

func wipeRaw(rs ...*edwards25519.Scalar) {
	zero := edwards25519.NewScalar()
	for _, r := range rs {
		r.Set(zero)
	}
}

func combine(a, b *Scalar, op func(dst, x, y *edwards25519.Scalar) *edwards25519.Scalar) *Scalar {
	x, y := a.raw(), b.raw()
	defer wipeRaw(x, y)
	return scalarFromRaw(op(edwards25519.NewScalar(), x, y))
}

// Add returns s + o mod ℓ.
func (s *Scalar) Add(o *Scalar) *Scalar { return combine(s, o, (*edwards25519.Scalar).Add) }

// Sub returns s - o mod ℓ.
func (s *Scalar) Sub(o *Scalar) *Scalar { return combine(s, o, (*edwards25519.Scalar).Subtract) }

// Mul returns s · o mod ℓ.
func (s *Scalar) Mul(o *Scalar) *Scalar { return combine(s, o, (*edwards25519.Scalar).Multiply) }

// Negate returns -s mod ℓ.
func (s *Scalar) Negate() *Scalar {
	x := s.raw()
	defer wipeRaw(x)
	return scalarFromRaw(edwards25519.NewScalar().Negate(x))
}

// Invert returns s⁻¹ mod ℓ. Zero has no inverse.
func (s *Scalar) Invert() (*Scalar, error) {
	x := s.raw()
	defer wipeRaw(x)
	if s.IsZero() {
		return nil, nanoerr.Newf("crypto.Scalar.Invert", nanoerr.ErrInvalidScalar, "zero has no inverse")
	}
	return scalarFromRaw(edwards25519.NewScalar().Invert(x)), nil
}

// IsZero reports whether s ≡ 0, in constant time.
func (s *Scalar) IsZero() bool { return memzero.IsZero(s.secret.Bytes()) }

// PublicKey returns s·G. The result is public.
func (s *Scalar) PublicKey() PublicKey {
	x := s.raw()
	defer wipeRaw(x)
	return publicFromPoint(new(edwards25519.Point).ScalarBaseMult(x))
}

// SharedSecret returns the compressed encoding of s·P. The result is secret:
// it is the Diffie–Hellman value between s and the owner of P.
func (s *Scalar) SharedSecret(p PublicKey) *SecretBytes {
	x := s.raw()
	defer wipeRaw(x)
	q := new(edwards25519.Point).ScalarMult(x, p.point())
	out := newOwned(q.Bytes())
	q.Set(edwards25519.NewIdentityPoint())
	return out
}

// Bytes returns a read-only view of the canonical encoding, valid until
// Destroy.
func (s *Scalar) Bytes() []byte { return s.secret.Bytes() }

// Equal compares two scalars in constant time.
func (s *Scalar) Equal(o *Scalar) bool { return s.secret.Equal(o.secret) }

// Clone returns an independently owned copy.
func (s *Scalar) Clone() *Scalar { return &Scalar{secret: s.secret.Clone()} }

// Destroy wipes the scalar. It is idempotent and nil-safe.
func (s *Scalar) Destroy() {
	if s == nil {
		return
	}
	s.secret.Destroy()
}

func (s *Scalar) String() string { return redacted }

func (s *Scalar) GoString() string { return redacted }

func (s *Scalar) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte(redacted)) }

// LogValue implements slog.LogValuer.
func (s *Scalar) LogValue() slog.Value { return slog.StringValue(redacted) }
