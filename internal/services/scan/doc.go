// Package scan finds ledger payments that belong to a camo address.
//
// A scan pages through the ledger after a persisted cursor, runs the
// receiver side of the stealth protocol on every entry in parallel, and
// advances the cursor once a whole page is done. Non-matching entries are
// the normal case and are not errors; only ledger and storage failures stop
// a scan.
package scan
