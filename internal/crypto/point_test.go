package crypto_test

import (
	"encoding/json"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
)

func TestParsePublicKey_RoundTrip(t *testing.T) {
	pk := randomScalar(t).PublicKey()
	got, err := crypto.ParsePublicKey(pk.Bytes())
	require.NoError(t, err)
	require.Equal(t, pk, got)

	fromHex, err := crypto.ParsePublicKeyHex(pk.String())
	require.NoError(t, err)
	require.Equal(t, pk, fromHex)
}

func TestParsePublicKey_Rejects(t *testing.T) {
	_, err := crypto.ParsePublicKey(make([]byte, 31))
	require.ErrorIs(t, err, nanoerr.ErrInvalidLength)

	identity := make([]byte, 32)
	identity[0] = 1
	_, err = crypto.ParsePublicKey(identity)
	require.ErrorIs(t, err, nanoerr.ErrInvalidPoint)

	// y = p + 1 is a non-canonical encoding of the identity.
	nonCanonical := make([]byte, 32)
	nonCanonical[0] = 0xee
	for i := 1; i < 31; i++ {
		nonCanonical[i] = 0xff
	}
	nonCanonical[31] = 0x7f
	_, err = crypto.ParsePublicKey(nonCanonical)
	require.ErrorIs(t, err, nanoerr.ErrInvalidPoint)

	// y = 0 decodes to a point of order 4.
	_, err = crypto.ParsePublicKey(make([]byte, 32))
	require.ErrorIs(t, err, nanoerr.ErrInvalidPoint)

	_, err = crypto.ParsePublicKeyHex("zz")
	require.ErrorIs(t, err, nanoerr.ErrInvalidEncoding)
}

func TestParsePublicKey_RejectsOffCurve(t *testing.T) {
	enc := make([]byte, 32)
	for y := 2; y < 256; y++ {
		enc[0] = byte(y)
		if _, err := new(edwards25519.Point).SetBytes(enc); err != nil {
			_, err := crypto.ParsePublicKey(enc)
			require.ErrorIs(t, err, nanoerr.ErrInvalidPoint)
			return
		}
	}
	t.Fatal("no off-curve encoding found")
}

func TestParsePublicKey_RejectsTorsion(t *testing.T) {
	// P + T where T = (0, -1) has order 2.
	negOne := make([]byte, 32)
	negOne[0] = 0xec
	for i := 1; i < 31; i++ {
		negOne[i] = 0xff
	}
	negOne[31] = 0x7f
	tp, err := new(edwards25519.Point).SetBytes(negOne)
	require.NoError(t, err)

	p, err := new(edwards25519.Point).SetBytes(randomScalar(t).PublicKey().Bytes())
	require.NoError(t, err)

	mixed := new(edwards25519.Point).Add(p, tp)
	_, err = crypto.ParsePublicKey(mixed.Bytes())
	require.ErrorIs(t, err, nanoerr.ErrInvalidPoint)
}

func TestPublicKey_JSON(t *testing.T) {
	type wrapper struct {
		Key crypto.PublicKey `json:"key"`
	}
	in := wrapper{Key: randomScalar(t).PublicKey()}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out wrapper
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)

	require.Error(t, json.Unmarshal([]byte(`{"key":"00"}`), &out))
}

func TestFingerprint(t *testing.T) {
	pk := randomScalar(t).PublicKey()
	fp := crypto.Fingerprint(pk)
	require.Len(t, fp, 20)
	require.Equal(t, fp, crypto.Fingerprint(pk))
}
