package camo

import (
	"encoding/base32"
	"slices"
	"strings"

	"nanocamo/internal/crypto"
	"nanocamo/internal/nanoerr"
)

const (
	// AddressPrefix starts every camo address.
	AddressPrefix = "camo_"
	// AddressLength is the length of an encoded address, prefix included.
	AddressLength = len(AddressPrefix) + 112

	addressDataSize = VersionsSize + 2*crypto.PublicKeySize
	addressRawSize  = addressDataSize + crypto.ChecksumSize
)

// nanoEncoding is base32 with the Nano alphabet (no 0, 2, l, v).
var nanoEncoding = base32.NewEncoding("13456789abcdefghijkmnopqrstuwxyz").WithPadding(base32.NoPadding)

// Address is what a recipient publishes: the versions they accept and the
// public spend and view keys. It carries no secret.
type Address struct {
	Versions Versions
	Spend    crypto.PublicKey
	View     crypto.PublicKey
}

// data is versions | spend | view.
func (a Address) data() []byte {
	out := make([]byte, 0, addressRawSize)
	out = append(out, a.Versions.Bytes()...)
	out = append(out, a.Spend.Bytes()...)
	return append(out, a.View.Bytes()...)
}

// addressChecksum is the BLAKE2b-40 digest of data, byte-reversed as in Nano
// account checksums.
func addressChecksum(data []byte) []byte {
	sum := crypto.Checksum(data)
	slices.Reverse(sum[:])
	return sum[:]
}

// String encodes the address as "camo_" + base32(data | checksum).
func (a Address) String() string {
	d := a.data()
	return AddressPrefix + nanoEncoding.EncodeToString(append(d, addressChecksum(d)...))
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress decodes and validates a camo address. Reserved version bits
// are kept; negotiation decides later whether a version is usable.
func ParseAddress(s string) (Address, error) {
	const op = "camo.ParseAddress"
	if !strings.HasPrefix(s, AddressPrefix) {
		return Address{}, nanoerr.Newf(op, nanoerr.ErrInvalidEncoding, "missing %q prefix", AddressPrefix)
	}
	if len(s) != AddressLength {
		return Address{}, nanoerr.Length(op, AddressLength, len(s))
	}
	raw, err := nanoEncoding.DecodeString(s[len(AddressPrefix):])
	if err != nil {
		return Address{}, nanoerr.Newf(op, nanoerr.ErrInvalidEncoding, "%v", err)
	}
	if len(raw) != addressRawSize {
		return Address{}, nanoerr.Length(op, addressRawSize, len(raw))
	}

	data, sum := raw[:addressDataSize], raw[addressDataSize:]
	if string(addressChecksum(data)) != string(sum) {
		return Address{}, nanoerr.New(op, nanoerr.ErrInvalidChecksum)
	}

	versions, err := VersionsFromBytes(data[:VersionsSize])
	if err != nil {
		return Address{}, err
	}
	spend, err := crypto.ParsePublicKey(data[VersionsSize : VersionsSize+crypto.PublicKeySize])
	if err != nil {
		return Address{}, err
	}
	view, err := crypto.ParsePublicKey(data[VersionsSize+crypto.PublicKeySize:])
	if err != nil {
		return Address{}, err
	}
	return Address{Versions: versions, Spend: spend, View: view}, nil
}
