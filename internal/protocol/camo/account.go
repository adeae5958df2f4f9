package camo

import (
	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
)

// SeedSize is the length of a master seed.
const SeedSize = 32

// Domain tags for seed derivation. These are protocol constants.
const (
	tagSpendSeed     = "nanocamo/spend-seed"
	tagViewSeed      = "nanocamo/view-seed"
	tagMasterSpend   = "nanocamo/master-spend"
	tagAccountSeed   = "nanocamo/account-seed"
	tagPartialSpend  = "nanocamo/partial-spend"
	tagPrivateView   = "nanocamo/private-view"
	viewKeysExportSz = 1 + crypto.PublicKeySize + crypto.ScalarSize
)

// Account is the full key bundle of a camo recipient: a spend key pair that
// controls funds and a view key pair that can only detect payments.
//
// The private scalars never leave the package except as one-time spend keys
// returned by Recover. Destroy wipes both.
type Account struct {
	versions     Versions
	index        uint32
	privateSpend *crypto.Scalar
	privateView  *crypto.Scalar
	spend        crypto.PublicKey
	view         crypto.PublicKey
}

// FromSeed derives account 0 of seed.
func FromSeed(seed *crypto.SecretBytes, versions Versions) (*Account, error) {
	return FromSeedIndex(seed, 0, versions)
}

// FromSeedIndex derives the account at index from a 32-byte master seed.
//
// The seed is split into a spend seed and a view seed under distinct tags.
// The spend key is a master spend scalar (from the spend seed) plus a
// per-index partial spend scalar; the view key comes from the view seed
// alone. Holding the view key therefore reveals nothing about the spend
// seed. The same seed and index always give the same account.
func FromSeedIndex(seed *crypto.SecretBytes, index uint32, versions Versions) (*Account, error) {
	if seed.Len() != SeedSize {
		return nil, nanoerr.Length("camo.FromSeed", SeedSize, seed.Len())
	}

	spendSeed := crypto.Hash256(tagSpendSeed, seed.Bytes())
	viewSeed := crypto.Hash256(tagViewSeed, seed.Bytes())
	defer crypto.DestroyAll(spendSeed, viewSeed)

	masterSpend := crypto.HashToScalar(tagMasterSpend, spendSeed.Bytes())
	partialSpend, privateView := partialKeys(viewSeed, index)
	defer crypto.DestroyAll(masterSpend, partialSpend)

	privateSpend := masterSpend.Add(partialSpend)
	return &Account{
		versions:     versions,
		index:        index,
		privateSpend: privateSpend,
		privateView:  privateView,
		spend:        privateSpend.PublicKey(),
		view:         privateView.PublicKey(),
	}, nil
}

// partialKeys returns the per-index (partial spend, private view) scalars.
func partialKeys(viewSeed *crypto.SecretBytes, index uint32) (*crypto.Scalar, *crypto.Scalar) {
	accountSeed := crypto.Hash512(tagAccountSeed, viewSeed.Bytes(), crypto.Uint32(index))
	defer accountSeed.Destroy()
	b := accountSeed.Bytes()
	return crypto.HashToScalar(tagPartialSpend, b[:32]), crypto.HashToScalar(tagPrivateView, b[32:])
}

// Versions returns the versions the account accepts.
func (a *Account) Versions() Versions { return a.versions }

// Index returns the derivation index.
func (a *Account) Index() uint32 { return a.index }

// SpendPublicKey returns the public spend key S.
func (a *Account) SpendPublicKey() crypto.PublicKey { return a.spend }

// ViewPublicKey returns the public view key V.
func (a *Account) ViewPublicKey() crypto.PublicKey { return a.view }

// Address returns the public address that senders pay to.
func (a *Account) Address() Address {
	return Address{Versions: a.versions, Spend: a.spend, View: a.view}
}

// ViewKeys returns an independent view-only key set for this account.
func (a *Account) ViewKeys() *ViewKeys {
	return &ViewKeys{
		versions:    a.versions,
		spend:       a.spend,
		privateView: a.privateView.Clone(),
	}
}

// Equal compares private material in constant time.
func (a *Account) Equal(o *Account) bool {
	return a.versions == o.versions &&
		a.privateSpend.Equal(o.privateSpend) &&
		a.privateView.Equal(o.privateView)
}

// Destroy wipes both private scalars.
func (a *Account) Destroy() {
	if a == nil {
		return
	}
	crypto.DestroyAll(a.privateSpend, a.privateView)
}

// ViewKeys can detect payments to an account but cannot spend them. It holds
// the public spend key and the private view key.
//
// ViewKeys is read-only after construction, so one value may serve many
// concurrent Detect calls. Destroy must not race with them.
type ViewKeys struct {
	versions    Versions
	spend       crypto.PublicKey
	privateView *crypto.Scalar
}

// Versions returns the versions the keys accept.
func (k *ViewKeys) Versions() Versions { return k.versions }

// SpendPublicKey returns S.
func (k *ViewKeys) SpendPublicKey() crypto.PublicKey { return k.spend }

// Address returns the public address matching these keys.
func (k *ViewKeys) Address() Address {
	return Address{Versions: k.versions, Spend: k.spend, View: k.privateView.PublicKey()}
}

// Export encodes the keys as versions byte | spend public | view private.
// The result holds secret material.
func (k *ViewKeys) Export() *crypto.SecretBytes {
	buf := make([]byte, 0, viewKeysExportSz)
	buf = append(buf, k.versions.Byte())
	buf = append(buf, k.spend.Bytes()...)
	buf = append(buf, k.privateView.Bytes()...)
	return crypto.NewSecretBytes(buf)
}

// ImportViewKeys decodes the Export format, validating the point and
// requiring a canonical view scalar.
func ImportViewKeys(data *crypto.SecretBytes) (*ViewKeys, error) {
	const op = "camo.ImportViewKeys"
	b := data.Bytes()
	if len(b) != viewKeysExportSz {
		return nil, nanoerr.Length(op, viewKeysExportSz, len(b))
	}
	versions, err := VersionsFromBytes(b[:1])
	if err != nil {
		return nil, err
	}
	spend, err := crypto.ParsePublicKey(b[1 : 1+crypto.PublicKeySize])
	if err != nil {
		return nil, err
	}
	view := make([]byte, crypto.ScalarSize)
	copy(view, b[1+crypto.PublicKeySize:])
	privateView, err := crypto.ScalarFromCanonicalBytes(view)
	if err != nil {
		return nil, err
	}
	return &ViewKeys{versions: versions, spend: spend, privateView: privateView}, nil
}

// Destroy wipes the private view key.
func (k *ViewKeys) Destroy() {
	if k == nil {
		return
	}
	k.privateView.Destroy()
}
