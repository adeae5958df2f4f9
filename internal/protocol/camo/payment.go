package camo

import (
	"encoding/json"
	"fmt"

	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
)

// PaymentSize is the length of an encoded Payment.
const PaymentSize = 1 + 2*crypto.PublicKeySize

// Payment is what a sender embeds in a transaction: the version used, the
// one-time destination P and the ephemeral key R. It carries no secret.
type Payment struct {
	Version      Version
	OneTimeKey   crypto.PublicKey
	EphemeralKey crypto.PublicKey
}

// MarshalBinary encodes the payment as legacy version byte | P | R.
func (p Payment) MarshalBinary() ([]byte, error) {
	if !p.Version.Valid() {
		return nil, nanoerr.Newf("camo.Payment.MarshalBinary", nanoerr.ErrIncompatibleCamoVersions, "unknown version %d", uint8(p.Version))
	}
	out := make([]byte, 0, PaymentSize)
	out = append(out, p.Version.Legacy())
	out = append(out, p.OneTimeKey.Bytes()...)
	return append(out, p.EphemeralKey.Bytes()...), nil
}

// UnmarshalBinary decodes and validates the MarshalBinary form.
func (p *Payment) UnmarshalBinary(b []byte) error {
	if len(b) != PaymentSize {
		return nanoerr.Length("camo.Payment.UnmarshalBinary", PaymentSize, len(b))
	}
	v, err := VersionFromLegacy(b[0])
	if err != nil {
		return err
	}
	one, err := crypto.ParsePublicKey(b[1 : 1+crypto.PublicKeySize])
	if err != nil {
		return err
	}
	eph, err := crypto.ParsePublicKey(b[1+crypto.PublicKeySize:])
	if err != nil {
		return err
	}
	*p = Payment{Version: v, OneTimeKey: one, EphemeralKey: eph}
	return nil
}

type paymentJSON struct {
	Version      uint8            `json:"version"`
	OneTimeKey   crypto.PublicKey `json:"one_time_key"`
	EphemeralKey crypto.PublicKey `json:"ephemeral_key"`
}

// MarshalJSON uses the current 1-based version number and hex keys.
func (p Payment) MarshalJSON() ([]byte, error) {
	if !p.Version.Valid() {
		return nil, fmt.Errorf("camo: marshal payment: %w", nanoerr.ErrIncompatibleCamoVersions)
	}
	return json.Marshal(paymentJSON{Version: uint8(p.Version), OneTimeKey: p.OneTimeKey, EphemeralKey: p.EphemeralKey})
}

// UnmarshalJSON validates both keys and the version.
func (p *Payment) UnmarshalJSON(b []byte) error {
	var raw paymentJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v := Version(raw.Version)
	if !v.Valid() {
		return nanoerr.Newf("camo.Payment.UnmarshalJSON", nanoerr.ErrIncompatibleCamoVersions, "unknown version %d", raw.Version)
	}
	if raw.OneTimeKey.IsZero() || raw.EphemeralKey.IsZero() {
		return nanoerr.Newf("camo.Payment.UnmarshalJSON", nanoerr.ErrInvalidPoint, "missing key")
	}
	*p = Payment{Version: v, OneTimeKey: raw.OneTimeKey, EphemeralKey: raw.EphemeralKey}
	return nil
}

// ID is a short public identifier of the payment, used as a log and lookup
// key. It is derived from R, which is unique per payment.
func (p Payment) ID() string { return crypto.Fingerprint(p.EphemeralKey) }
