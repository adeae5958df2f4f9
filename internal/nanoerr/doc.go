// Package nanoerr defines the error family shared by the key, scalar and camo
// packages.
//
// Every fallible parse or derivation returns an error that wraps exactly one
// of the sentinel kinds below, so callers can branch with errors.Is:
//
//	if errors.Is(err, nanoerr.ErrIncompatibleCamoVersions) {
//		// ask the recipient for a newer address
//	}
//
// Whether a failure is user-facing (reject one peer message) or fatal (no
// secure randomness) is the caller's decision. Nothing in this module retries
// after a validation failure.
package nanoerr
