package crypto

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// ChecksumSize is the length of the address checksum.
const ChecksumSize = 5

// newTagged returns a BLAKE2b hash of size n pre-loaded with a
// length-prefixed domain tag, so inputs under different tags never collide.
func newTagged(n int, tag string) hash.Hash {
	h, err := blake2b.New(n, nil)
	if err != nil {
		panic(err)
	}
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(tag)))
	h.Write(l[:])
	h.Write([]byte(tag))
	return h
}

// Hash256 returns BLAKE2b-256(tag, parts...) as a secret.
func Hash256(tag string, parts ...[]byte) *SecretBytes {
	h := newTagged(blake2b.Size256, tag)
	for _, p := range parts {
		h.Write(p)
	}
	return newOwned(h.Sum(nil))
}

// Hash512 returns BLAKE2b-512(tag, parts...) as a secret.
func Hash512(tag string, parts ...[]byte) *SecretBytes {
	h := newTagged(blake2b.Size, tag)
	for _, p := range parts {
		h.Write(p)
	}
	return newOwned(h.Sum(nil))
}

// HashToScalar hashes to 64 bytes and reduces modulo ℓ, giving a scalar
// with negligible bias.
func HashToScalar(tag string, parts ...[]byte) *Scalar {
	wide := Hash512(tag, parts...)
	defer wide.Destroy()
	buf := make([]byte, WideScalarSize)
	copy(buf, wide.Bytes())
	return ScalarFromBytesReduced(buf)
}

// Checksum returns the untagged 5-byte BLAKE2b digest used by address codecs.
func Checksum(data []byte) [ChecksumSize]byte {
	h, err := blake2b.New(ChecksumSize, nil)
	if err != nil {
		panic(err)
	}
	h.Write(data)
	var out [ChecksumSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Uint32 encodes i big-endian, as account indexes are hashed.
func Uint32(i uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b[:]
}
