// Package wallet manages the wallet mnemonic and the camo accounts derived
// from it.
//
// It enforces the passphrase policy, creates or imports a BIP-39 mnemonic,
// persists it encrypted via domain.SeedStore, and derives indexed accounts
// with camo.FromSeedIndex. Public account data is recorded in
// domain.AccountStore.
package wallet
