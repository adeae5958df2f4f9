package camo_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
	"nanocamo/internal/protocol/camo"
)

func newSeed(t *testing.T) *crypto.SecretBytes {
	t.Helper()
	b := make([]byte, camo.SeedSize)
	_, err := rand.Read(b)
	require.NoError(t, err)
	s := crypto.NewSecretBytes(b)
	t.Cleanup(s.Destroy)
	return s
}

func newAccount(t *testing.T, versions camo.Versions) *camo.Account {
	t.Helper()
	a, err := camo.FromSeed(newSeed(t), versions)
	require.NoError(t, err)
	t.Cleanup(a.Destroy)
	return a
}

func TestFromSeed_Deterministic(t *testing.T) {
	seed := newSeed(t)
	a, err := camo.FromSeed(seed, camo.AllVersions())
	require.NoError(t, err)
	defer a.Destroy()
	b, err := camo.FromSeed(seed.Clone(), camo.AllVersions())
	require.NoError(t, err)
	defer b.Destroy()

	require.True(t, a.Equal(b))
	require.Equal(t, a.Address(), b.Address())
	require.Equal(t, uint32(0), a.Index())
}

func TestFromSeed_KeysAreIndependent(t *testing.T) {
	a := newAccount(t, camo.AllVersions())
	require.NotEqual(t, a.SpendPublicKey(), a.ViewPublicKey())
}

func TestFromSeed_RejectsWrongLength(t *testing.T) {
	short := crypto.NewSecretBytes(make([]byte, 16))
	defer short.Destroy()
	_, err := camo.FromSeed(short, camo.AllVersions())
	require.ErrorIs(t, err, nanoerr.ErrInvalidLength)
}

func TestFromSeedIndex_DistinctAccounts(t *testing.T) {
	seed := newSeed(t)
	seen := map[crypto.PublicKey]bool{}
	for i := uint32(0); i < 8; i++ {
		a, err := camo.FromSeedIndex(seed, i, camo.AllVersions())
		require.NoError(t, err)
		require.Equal(t, i, a.Index())
		require.False(t, seen[a.SpendPublicKey()], "spend key repeated at index %d", i)
		require.False(t, seen[a.ViewPublicKey()], "view key repeated at index %d", i)
		seen[a.SpendPublicKey()] = true
		seen[a.ViewPublicKey()] = true
		a.Destroy()
	}
}

func TestViewKeys_ExportImport(t *testing.T) {
	a := newAccount(t, camo.VersionsOf(camo.V1, camo.V4))
	vk := a.ViewKeys()
	defer vk.Destroy()

	exported := vk.Export()
	require.Equal(t, 65, exported.Len())
	imported, err := camo.ImportViewKeys(exported)
	require.NoError(t, err)
	defer imported.Destroy()
	exported.Destroy()

	require.Equal(t, a.Address(), imported.Address())
	require.Equal(t, a.Versions(), imported.Versions())
	require.Equal(t, a.SpendPublicKey(), imported.SpendPublicKey())
}

func TestImportViewKeys_Rejects(t *testing.T) {
	a := newAccount(t, camo.AllVersions())
	vk := a.ViewKeys()
	defer vk.Destroy()

	_, err := camo.ImportViewKeys(crypto.NewSecretBytes(make([]byte, 10)))
	require.ErrorIs(t, err, nanoerr.ErrInvalidLength)

	good := vk.Export()
	defer good.Destroy()

	bad := append([]byte(nil), good.Bytes()...)
	for i := 33; i < 65; i++ {
		bad[i] = 0xff
	}
	_, err = camo.ImportViewKeys(crypto.NewSecretBytes(bad))
	require.ErrorIs(t, err, nanoerr.ErrInvalidScalar)

	bad = append([]byte(nil), good.Bytes()...)
	for i := 1; i < 33; i++ {
		bad[i] = 0
	}
	bad[1] = 1 // identity
	_, err = camo.ImportViewKeys(crypto.NewSecretBytes(bad))
	require.ErrorIs(t, err, nanoerr.ErrInvalidPoint)
}

func TestAccount_DestroyIsIdempotent(t *testing.T) {
	a, err := camo.FromSeed(newSeed(t), camo.AllVersions())
	require.NoError(t, err)
	a.Destroy()
	a.Destroy()
	var nilAccount *camo.Account
	nilAccount.Destroy()
}
