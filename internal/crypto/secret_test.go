package crypto_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
	"nanocamo/internal/util/memzero"
)

func TestSecretBytes_TakesOwnership(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	s := crypto.NewSecretBytes(data)
	defer s.Destroy()

	require.True(t, memzero.IsZero(data), "caller buffer must be wiped")
	require.Equal(t, []byte{1, 2, 3, 4}, s.Bytes())
	require.Equal(t, 4, s.Len())
}

func TestSecretBytes_Sized(t *testing.T) {
	data := []byte{9, 9, 9}
	_, err := crypto.NewSecretBytesSized(data, 32)
	require.ErrorIs(t, err, nanoerr.ErrInvalidLength)
	require.True(t, memzero.IsZero(data))

	s, err := crypto.NewSecretBytesSized(make([]byte, 32), 32)
	require.NoError(t, err)
	s.Destroy()
}

func TestSecretBytes_CloneIsIndependent(t *testing.T) {
	s := crypto.NewSecretBytes([]byte("seed material"))
	c := s.Clone()
	require.True(t, s.Equal(c))

	c.Destroy()
	require.Nil(t, c.Bytes())
	require.Equal(t, []byte("seed material"), s.Bytes())
	s.Destroy()
}

func TestSecretBytes_Equal(t *testing.T) {
	a := crypto.NewSecretBytes([]byte{1, 2, 3})
	b := crypto.NewSecretBytes([]byte{1, 2, 3})
	c := crypto.NewSecretBytes([]byte{1, 2, 4})
	d := crypto.NewSecretBytes([]byte{1, 2})
	defer crypto.DestroyAll(a, b, c, d)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(nil))
}

func TestSecretBytes_DestroyedNeverEqual(t *testing.T) {
	a := crypto.NewSecretBytes([]byte{1, 2, 3})
	b := crypto.NewSecretBytes([]byte{4, 5, 6})
	a.Destroy()
	require.False(t, a.Equal(b))
	require.False(t, b.Equal(a))

	b.Destroy()
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(a))
}

func TestSecretBytes_DestroyWipesBackingStore(t *testing.T) {
	s := crypto.NewSecretBytes(bytes.Repeat([]byte{0xAB}, 64))
	store := crypto.BackingStore(s)

	s.Destroy()
	require.True(t, memzero.IsZero(store))
	require.True(t, s.Destroyed())
	require.Nil(t, s.Bytes())

	s.Destroy() // idempotent
}

func TestUseSecret_DestroysOnEveryPath(t *testing.T) {
	var store []byte
	boom := errors.New("boom")

	err := crypto.UseSecret([]byte{7, 7, 7}, func(s *crypto.SecretBytes) error {
		store = crypto.BackingStore(s)
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.True(t, memzero.IsZero(store))

	require.Panics(t, func() {
		_ = crypto.UseSecret([]byte{8, 8}, func(s *crypto.SecretBytes) error {
			store = crypto.BackingStore(s)
			panic("unwind")
		})
	})
	require.True(t, memzero.IsZero(store))
}

func TestSecretBytes_NeverPrinted(t *testing.T) {
	s := crypto.NewSecretBytes([]byte{0xde, 0xad, 0xbe, 0xef})
	defer s.Destroy()

	for _, verb := range []string{"%v", "%+v", "%#v", "%s", "%x", "%X", "%q"} {
		out := fmt.Sprintf(verb, s)
		require.NotContains(t, out, "dead", verb)
		require.NotContains(t, out, "DEAD", verb)
	}

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("loaded", "seed", s)
	require.Contains(t, buf.String(), "[secret value]")
	require.NotContains(t, buf.String(), "dead")
}
