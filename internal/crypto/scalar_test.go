package crypto_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
	"nanocamo/internal/util/memzero"
)

// groupOrder is ℓ = 2^252 + 27742317777372353535851937790883648493, little-endian.
const groupOrder = "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func randomScalar(t *testing.T) *crypto.Scalar {
	t.Helper()
	s, err := crypto.RandomScalar()
	require.NoError(t, err)
	t.Cleanup(s.Destroy)
	return s
}

func scalarOf(t *testing.T, v byte) *crypto.Scalar {
	t.Helper()
	b := make([]byte, crypto.ScalarSize)
	b[0] = v
	s, err := crypto.ScalarFromCanonicalBytes(b)
	require.NoError(t, err)
	t.Cleanup(s.Destroy)
	return s
}

func requireCanonical(t *testing.T, s *crypto.Scalar) {
	t.Helper()
	b := append([]byte(nil), s.Bytes()...)
	c, err := crypto.ScalarFromCanonicalBytes(b)
	require.NoError(t, err, "result must be reduced")
	c.Destroy()
}

func TestScalar_FieldClosure(t *testing.T) {
	for i := 0; i < 200; i++ {
		a, b := randomScalar(t), randomScalar(t)
		for _, r := range []*crypto.Scalar{a.Add(b), a.Sub(b), a.Mul(b), a.Negate()} {
			requireCanonical(t, r)
			r.Destroy()
		}
	}
}

func TestScalar_ArithmeticLaws(t *testing.T) {
	zero := scalarOf(t, 0)
	one := scalarOf(t, 1)

	for i := 0; i < 100; i++ {
		a, b, c := randomScalar(t), randomScalar(t), randomScalar(t)

		require.True(t, a.Add(b).Equal(b.Add(a)), "add commutes")
		require.True(t, a.Mul(b).Equal(b.Mul(a)), "mul commutes")
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "add associates")
		require.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "mul associates")
		require.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "mul distributes")
		require.True(t, a.Add(a.Negate()).Equal(zero), "a + (-a) = 0")
		require.True(t, a.Sub(b).Add(b).Equal(a), "a - b + b = a")

		inv, err := a.Invert()
		require.NoError(t, err)
		require.True(t, a.Mul(inv).Equal(one), "a · a⁻¹ = 1")
	}
}

func TestScalar_InvertZero(t *testing.T) {
	_, err := scalarOf(t, 0).Invert()
	require.ErrorIs(t, err, nanoerr.ErrInvalidScalar)
}

func TestScalar_FromCanonicalBytes(t *testing.T) {
	_, err := crypto.ScalarFromCanonicalBytes(mustHex(t, groupOrder))
	require.ErrorIs(t, err, nanoerr.ErrInvalidScalar, "ℓ itself is not canonical")

	ff := make([]byte, 32)
	for i := range ff {
		ff[i] = 0xff
	}
	_, err = crypto.ScalarFromCanonicalBytes(ff)
	require.ErrorIs(t, err, nanoerr.ErrInvalidScalar)

	_, err = crypto.ScalarFromCanonicalBytes(make([]byte, 31))
	require.ErrorIs(t, err, nanoerr.ErrInvalidLength)

	in := make([]byte, 32)
	in[0] = 42
	s, err := crypto.ScalarFromCanonicalBytes(in)
	require.NoError(t, err)
	defer s.Destroy()
	require.True(t, memzero.IsZero(in), "input is wiped")
	require.Equal(t, byte(42), s.Bytes()[0])
}

func TestScalar_FromBytesReduced(t *testing.T) {
	require.True(t, crypto.ScalarFromBytesReduced(mustHex(t, groupOrder)).IsZero(), "ℓ mod ℓ = 0")

	lPlusOne := mustHex(t, groupOrder)
	lPlusOne[0]++
	require.True(t, crypto.ScalarFromBytesReduced(lPlusOne).Equal(scalarOf(t, 1)))

	// 64-byte inputs take the wide path.
	wide := make([]byte, 64)
	copy(wide, mustHex(t, groupOrder))
	wide[0] += 5
	require.True(t, crypto.ScalarFromBytesReduced(wide).Equal(scalarOf(t, 5)))

	require.True(t, crypto.ScalarFromBytesReduced(nil).IsZero())
}

func TestScalar_FromBytesReducedLongInput(t *testing.T) {
	// 2^256 mod ℓ, squared, must equal the reduction of 2^512.
	b256 := make([]byte, 33)
	b256[32] = 1
	r := crypto.ScalarFromBytesReduced(b256)
	defer r.Destroy()

	b512 := make([]byte, 65)
	b512[64] = 1
	got := crypto.ScalarFromBytesReduced(b512)
	defer got.Destroy()
	require.True(t, got.Equal(r.Mul(r)))

	// Low chunk is added: 2^512 + 3.
	b512 = make([]byte, 100)
	b512[64] = 1
	b512[0] = 3
	got = crypto.ScalarFromBytesReduced(b512)
	require.True(t, got.Equal(r.Mul(r).Add(scalarOf(t, 3))))
}

func TestScalar_PublicKeyIsLinear(t *testing.T) {
	a, b := randomScalar(t), randomScalar(t)
	sum := a.Add(b)
	defer sum.Destroy()
	require.Equal(t, sum.PublicKey(), a.PublicKey().Add(b.PublicKey()))
}

func TestScalar_SharedSecretCommutes(t *testing.T) {
	a, b := randomScalar(t), randomScalar(t)
	ab := a.SharedSecret(b.PublicKey())
	ba := b.SharedSecret(a.PublicKey())
	defer crypto.DestroyAll(ab, ba)
	require.True(t, ab.Equal(ba))
	require.Equal(t, 32, ab.Len())
}

func TestScalar_DestroyWipes(t *testing.T) {
	s, err := crypto.RandomScalar()
	require.NoError(t, err)
	store := crypto.ScalarBackingStore(s)
	c := s.Clone()
	defer c.Destroy()

	s.Destroy()
	require.True(t, memzero.IsZero(store))
	require.False(t, c.IsZero(), "clone survives")
	require.Panics(t, func() { s.PublicKey() })
	require.Panics(t, func() { _, _ = s.Invert() })
}
