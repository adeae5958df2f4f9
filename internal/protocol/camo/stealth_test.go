package camo_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
	"nanocamo/internal/protocol/camo"
)

func randomPublicKey(t *testing.T) crypto.PublicKey {
	t.Helper()
	s, err := crypto.RandomScalar()
	require.NoError(t, err)
	defer s.Destroy()
	return s.PublicKey()
}

func TestStealth_SenderAndReceiverAgree(t *testing.T) {
	versions := allVersions()
	for i := 0; i < 1000; i++ {
		v := versions[rand.IntN(len(versions))]
		a, err := camo.FromSeed(newSeed(t), camo.AllVersions())
		require.NoError(t, err)

		r, err := crypto.RandomScalar()
		require.NoError(t, err)
		p := camo.PayWith(a.Address(), v, r)

		require.Equal(t, v, p.Version)
		require.Equal(t, r.PublicKey(), p.EphemeralKey)
		require.True(t, a.Detect(p), "trial %d at %s", i, v)

		k, ok := a.Recover(p)
		require.True(t, ok)
		require.Equal(t, p.OneTimeKey, k.PublicKey())

		crypto.DestroyAll(k, r, a)
	}
}

func TestStealth_WrongViewKeyNeverMatches(t *testing.T) {
	for i := 0; i < 1000; i++ {
		recipient := newAccount(t, camo.AllVersions())
		other := newAccount(t, camo.AllVersions())

		p, err := camo.Pay(recipient.Address(), camo.V1)
		require.NoError(t, err)

		require.False(t, other.Detect(p))

		// Recipient's spend key paired with an unrelated view key.
		otherKeys := other.ViewKeys()
		exported := otherKeys.Export()
		b := append([]byte(nil), exported.Bytes()...)
		copy(b[1:1+crypto.PublicKeySize], recipient.SpendPublicKey().Bytes())
		forged, err := camo.ImportViewKeys(crypto.NewSecretBytes(b))
		require.NoError(t, err)
		require.False(t, forged.Detect(p))
		crypto.DestroyAll(forged, exported, otherKeys)
	}
}

func TestStealth_WrongEphemeralKeyNeverMatches(t *testing.T) {
	a := newAccount(t, camo.AllVersions())
	vk := a.ViewKeys()
	defer vk.Destroy()
	for i := 0; i < 200; i++ {
		p, err := camo.Pay(a.Address(), camo.V2)
		require.NoError(t, err)
		p.EphemeralKey = randomPublicKey(t)
		require.False(t, vk.Detect(p))
	}
}

func TestStealth_TweakDependsOnVersion(t *testing.T) {
	d := crypto.Hash256("test/shared-point", []byte("D"))
	defer d.Destroy()

	seen := map[string]camo.Version{}
	for _, v := range allVersions() {
		tw := camo.Tweak(d, v)
		key := string(tw.Bytes())
		prev, dup := seen[key]
		require.False(t, dup, "%s and %s share a tweak", prev, v)
		seen[key] = v
		tw.Destroy()
	}
}

func TestStealth_SameEphemeralDifferentVersions(t *testing.T) {
	a := newAccount(t, camo.AllVersions())
	r, err := crypto.RandomScalar()
	require.NoError(t, err)
	defer r.Destroy()

	p1 := camo.PayWith(a.Address(), camo.V1, r)
	p2 := camo.PayWith(a.Address(), camo.V2, r)
	require.Equal(t, p1.EphemeralKey, p2.EphemeralKey)
	require.NotEqual(t, p1.OneTimeKey, p2.OneTimeKey)

	// Relabelling the version breaks detection.
	p1.Version = camo.V2
	require.False(t, a.Detect(p1))
}

func TestStealth_EndToEnd(t *testing.T) {
	a := newAccount(t, camo.Single(camo.V1))
	vk := a.ViewKeys()
	defer vk.Destroy()

	sent, err := camo.Pay(a.Address(), camo.V1)
	require.NoError(t, err)

	candidates := make([]camo.Payment, 0, 101)
	for i := 0; i < 100; i++ {
		candidates = append(candidates, camo.Payment{
			Version:      camo.V1,
			OneTimeKey:   randomPublicKey(t),
			EphemeralKey: randomPublicKey(t),
		})
	}
	at := rand.IntN(len(candidates) + 1)
	candidates = append(candidates[:at], append([]camo.Payment{sent}, candidates[at:]...)...)

	var matches []camo.Payment
	for _, c := range candidates {
		if vk.Detect(c) {
			matches = append(matches, c)
		}
	}
	require.Len(t, matches, 1)
	require.Equal(t, sent, matches[0])

	k, ok := a.Recover(matches[0])
	require.True(t, ok)
	defer k.Destroy()
	require.Equal(t, sent.OneTimeKey, k.PublicKey())
}

func TestStealth_UnsupportedVersionFailsEarly(t *testing.T) {
	a := newAccount(t, camo.Single(camo.V1))
	p, err := camo.Pay(a.Address(), camo.V2)
	require.ErrorIs(t, err, nanoerr.ErrIncompatibleCamoVersions)
	require.Equal(t, camo.Payment{}, p)

	_, err = camo.Pay(a.Address(), camo.Version(0))
	require.ErrorIs(t, err, nanoerr.ErrIncompatibleCamoVersions)
}

func TestStealth_DetectIgnoresUnacceptedVersion(t *testing.T) {
	wide := newAccount(t, camo.AllVersions())
	p, err := camo.Pay(wide.Address(), camo.V3)
	require.NoError(t, err)
	require.True(t, wide.Detect(p))

	// Same keys restricted to {v1}: a v3 payment is not theirs to detect.
	narrow := camo.Address{Versions: camo.Single(camo.V1), Spend: wide.SpendPublicKey(), View: wide.ViewPublicKey()}
	_, err = camo.Pay(narrow, camo.V3)
	require.ErrorIs(t, err, nanoerr.ErrIncompatibleCamoVersions)

	_, ok := wide.Recover(camo.Payment{Version: camo.V3, OneTimeKey: randomPublicKey(t), EphemeralKey: p.EphemeralKey})
	require.False(t, ok)
}

func TestStealth_RecoverWithDestroyedAccountPanics(t *testing.T) {
	a, err := camo.FromSeed(newSeed(t), camo.AllVersions())
	require.NoError(t, err)
	p, err := camo.Pay(a.Address(), camo.V1)
	require.NoError(t, err)
	a.Destroy()
	require.Panics(t, func() { a.Recover(p) })
}
