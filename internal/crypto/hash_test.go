package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nanocamo/internal/crypto"
)

func TestHash_DomainSeparation(t *testing.T) {
	a := crypto.Hash256("tag-a", []byte("input"))
	b := crypto.Hash256("tag-b", []byte("input"))
	a2 := crypto.Hash256("tag-a", []byte("input"))
	defer crypto.DestroyAll(a, b, a2)

	require.False(t, a.Equal(b))
	require.True(t, a.Equal(a2))

	// The tag is length-prefixed, so moving bytes across the boundary changes the digest.
	c := crypto.Hash512("ab", []byte("c"))
	d := crypto.Hash512("a", []byte("bc"))
	defer crypto.DestroyAll(c, d)
	require.False(t, c.Equal(d))
	require.Equal(t, 64, c.Len())
}

func TestHashToScalar_Deterministic(t *testing.T) {
	s1 := crypto.HashToScalar("t", []byte{1}, crypto.Uint32(7))
	s2 := crypto.HashToScalar("t", []byte{1}, crypto.Uint32(7))
	s3 := crypto.HashToScalar("t", []byte{1}, crypto.Uint32(8))
	defer crypto.DestroyAll(s1, s2, s3)

	require.True(t, s1.Equal(s2))
	require.False(t, s1.Equal(s3))
}

func TestChecksum(t *testing.T) {
	c1 := crypto.Checksum([]byte("data"))
	c2 := crypto.Checksum([]byte("datb"))
	require.NotEqual(t, c1, c2)
	require.Len(t, c1, crypto.ChecksumSize)
}
