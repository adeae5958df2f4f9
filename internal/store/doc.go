// Package store provides file-based persistence for nanocamo.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking, and every file is
// written atomically (temp file + rename) with 0600 permissions under the
// configured home directory.
//
// The package includes stores for:
//   - The wallet mnemonic, encrypted with scrypt + XChaCha20-Poly1305
//     (SeedFileStore)
//   - Public account profiles (AccountFileStore)
//   - Per-ledger scan cursors (CursorFileStore)
package store
