// Package camo implements camo accounts and the stealth payment protocol.
//
// # Overview
//
// A camo account publishes a spend public key S and a view public key V.
// Senders never pay to S directly. For each payment they derive a fresh
// one-time key that only the view key holder can link back to the account:
//
// Sender (Pay):
//  1. Check the recipient's Versions accept the chosen Version.
//  2. r random, R = r·G.
//  3. D = r·V.
//  4. t = H_v(D, v).
//  5. P = S + t·G; publish (v, P, R).
//
// Receiver (Detect, Recover):
//  1. D' = v_s·R.
//  2. t' = H_v(D', v).
//  3. Match iff S + t'·G == P.
//  4. On match the one-time private key is k_s + t'.
//
// # Versions
//
// Version is numbered 1..8. The wire form and the Versions bit positions use
// the legacy 0-based numbering; versionTable is the only place the two meet.
// Each version hashes under its own tag, so the same D gives unrelated
// tweaks under different versions.
//
// # Keys
//
// Account holds both private scalars. ViewKeys holds only the view scalar
// and can run Detect but not Recover. Both must be Destroyed when done.
//
// # Errors
//
// All failures are *nanoerr.Error values; use errors.Is with the nanoerr
// sentinels. A payment that does not match is not an error.
package camo
