package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"nanocamo/internal/util/memzero"
)

// keystoreFormatVersion is the version of the encrypted blob written to disk.
const keystoreFormatVersion = 1

// keystoreAD binds ciphertexts to this file format.
const keystoreAD = "nanocamo/keystore/v1"

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified.
var ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted keystore")

// scryptParams are the KDF cost parameters recorded with each blob.
type scryptParams struct {
	N, R, P int
}

// defaultScrypt is the cost used for new blobs.
var defaultScrypt = scryptParams{N: 1 << 15, R: 8, P: 1}

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

func deriveKey(passphrase string, salt []byte, p scryptParams) ([]byte, error) {
	return scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
}

// seal derives a key from passphrase and encrypts raw into a JSON blob.
func seal(passphrase string, raw []byte, p scryptParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, salt, p)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, []byte(keystoreAD))

	return json.Marshal(blob{
		V:      keystoreFormatVersion,
		Salt:   salt,
		N:      p.N,
		R:      p.R,
		P:      p.P,
		Nonce:  nonce,
		Cipher: ct,
	})
}

// open decrypts a blob written by seal. The returned plaintext is owned by
// the caller, who must wipe it.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("store: decode keystore: %w", err)
	}
	if bl.V != keystoreFormatVersion {
		return nil, fmt.Errorf("store: unsupported keystore version %d", bl.V)
	}

	key, err := deriveKey(passphrase, bl.Salt, scryptParams{N: bl.N, R: bl.R, P: bl.P})
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(bl.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, bl.Nonce, bl.Cipher, []byte(keystoreAD))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
