package crypto

import (
	"encoding/hex"

	"filippo.io/edwards25519"

	"nanocamo/internal/nanoerr"
)

// PublicKeySize is the length of a compressed Edwards point.
const PublicKeySize = 32

// minusOne is ℓ-1. [ℓ-1]P + P is the identity exactly when P has prime order.
var minusOne = func() *edwards25519.Scalar {
	one, err := edwards25519.NewScalar().SetCanonicalBytes(append([]byte{1}, make([]byte, 31)...))
	if err != nil {
		panic(err)
	}
	return edwards25519.NewScalar().Negate(one)
}()

// PublicKey is a canonical compressed point in the prime-order subgroup.
//
// Values returned by ParsePublicKey and by this package's arithmetic are
// always valid. Points are public, so equality is ordinary ==.
type PublicKey struct {
	enc [PublicKeySize]byte
}

// ParsePublicKey decodes a compressed point. It rejects wrong lengths,
// encodings that are not on the curve or not canonical, the identity, and
// points with a small-order component.
func ParsePublicKey(b []byte) (PublicKey, error) {
	const op = "crypto.ParsePublicKey"
	if len(b) != PublicKeySize {
		return PublicKey{}, nanoerr.Length(op, PublicKeySize, len(b))
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return PublicKey{}, nanoerr.Newf(op, nanoerr.ErrInvalidPoint, "not on curve")
	}
	var pk PublicKey
	copy(pk.enc[:], p.Bytes())
	if string(pk.enc[:]) != string(b) {
		return PublicKey{}, nanoerr.Newf(op, nanoerr.ErrInvalidPoint, "non-canonical encoding")
	}
	if p.Equal(edwards25519.NewIdentityPoint()) == 1 {
		return PublicKey{}, nanoerr.Newf(op, nanoerr.ErrInvalidPoint, "identity")
	}
	l := new(edwards25519.Point).ScalarMult(minusOne, p)
	if l.Add(l, p).Equal(edwards25519.NewIdentityPoint()) != 1 {
		return PublicKey{}, nanoerr.Newf(op, nanoerr.ErrInvalidPoint, "not in prime-order subgroup")
	}
	return pk, nil
}

// ParsePublicKeyHex parses the hex form produced by String.
func ParsePublicKeyHex(s string) (PublicKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, nanoerr.Newf("crypto.ParsePublicKeyHex", nanoerr.ErrInvalidEncoding, "%v", err)
	}
	return ParsePublicKey(b)
}

func publicFromPoint(p *edwards25519.Point) PublicKey {
	var pk PublicKey
	copy(pk.enc[:], p.Bytes())
	return pk
}

func (p PublicKey) point() *edwards25519.Point {
	q, err := new(edwards25519.Point).SetBytes(p.enc[:])
	if err != nil {
		// Unreachable for values built by this package.
		panic("crypto: invalid public key")
	}
	return q
}

// Add returns p + q.
func (p PublicKey) Add(q PublicKey) PublicKey {
	return publicFromPoint(new(edwards25519.Point).Add(p.point(), q.point()))
}

// IsZero reports whether p is the zero value (never a valid key).
func (p PublicKey) IsZero() bool { return p == PublicKey{} }

// Bytes returns a copy of the compressed encoding.
func (p PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, p.enc[:])
	return out
}

// Array returns the compressed encoding by value.
func (p PublicKey) Array() [PublicKeySize]byte { return p.enc }

func (p PublicKey) String() string { return hex.EncodeToString(p.enc[:]) }

// MarshalText implements encoding.TextMarshaler (lower-case hex).
func (p PublicKey) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler with full validation.
func (p *PublicKey) UnmarshalText(text []byte) error {
	pk, err := ParsePublicKeyHex(string(text))
	if err != nil {
		return err
	}
	*p = pk
	return nil
}
