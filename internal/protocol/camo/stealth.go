package camo

import (
	"nanocamo/internal/crypto"
)

// Pay derives a one-time destination for a payment to addr at version v.
//
// Steps (G is the base point, V and S the recipient's view and spend keys):
//  1. Check that addr accepts v; nothing else runs if it does not.
//  2. Draw an ephemeral scalar r and compute R = r·G.
//  3. Compute the shared point D = r·V.
//  4. Compute the tweak t = H_v(D, v).
//  5. Return P = S + t·G together with R and v. r is wiped.
func Pay(addr Address, v Version) (Payment, error) {
	if err := Negotiate(v, addr.Versions); err != nil {
		return Payment{}, err
	}
	r, err := crypto.RandomScalar()
	if err != nil {
		return Payment{}, err
	}
	defer r.Destroy()
	return payWith(addr, v, r), nil
}

// payWith is Pay with a caller-chosen ephemeral scalar. Negotiation must
// already have passed.
func payWith(addr Address, v Version, r *crypto.Scalar) Payment {
	d := r.SharedSecret(addr.View)
	defer d.Destroy()
	t := tweak(d, v)
	defer t.Destroy()
	return Payment{
		Version:      v,
		OneTimeKey:   addr.Spend.Add(t.PublicKey()),
		EphemeralKey: r.PublicKey(),
	}
}

// tweak computes H_v(D, v). The wire version byte is hashed along with D
// under a per-version tag, so one D never yields the same tweak twice.
func tweak(d *crypto.SecretBytes, v Version) *crypto.Scalar {
	return crypto.HashToScalar(v.params().tag, d.Bytes(), []byte{v.Legacy()})
}

// receiverTweak recomputes t' = H_v(v_s·R, v).
func receiverTweak(privateView *crypto.Scalar, p Payment) *crypto.Scalar {
	d := privateView.SharedSecret(p.EphemeralKey)
	defer d.Destroy()
	return tweak(d, p.Version)
}

// Detect reports whether p pays to these keys. A payment at a version the
// keys do not accept is not a match. Most payments seen while scanning are
// not matches, which is not an error.
func (k *ViewKeys) Detect(p Payment) bool {
	if !k.versions.Contains(p.Version) {
		return false
	}
	t := receiverTweak(k.privateView, p)
	defer t.Destroy()
	return k.spend.Add(t.PublicKey()) == p.OneTimeKey
}

// Detect is ViewKeys.Detect for a full account.
func (a *Account) Detect(p Payment) bool {
	if !a.versions.Contains(p.Version) {
		return false
	}
	t := receiverTweak(a.privateView, p)
	defer t.Destroy()
	return a.spend.Add(t.PublicKey()) == p.OneTimeKey
}

// Recover returns the one-time private key k = k_s + t' for a payment that
// matches this account. The caller owns the key and must Destroy it right
// after signing. ok is false when p does not pay to this account.
func (a *Account) Recover(p Payment) (key *crypto.Scalar, ok bool) {
	if !a.versions.Contains(p.Version) {
		return nil, false
	}
	t := receiverTweak(a.privateView, p)
	defer t.Destroy()
	if a.spend.Add(t.PublicKey()) != p.OneTimeKey {
		return nil, false
	}
	return a.privateSpend.Add(t), true
}
