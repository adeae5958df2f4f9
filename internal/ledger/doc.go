// Package ledger is the boundary between nanocamo and the payment ledger.
//
// The ledger is an append-only list of camo payments. Each published payment
// gets the next sequence number, starting at 1. Scanners page through it in
// order with FetchPayments(after, limit).
//
// HTTP API
//
//	POST /payments
//	    Append a payment (JSON camo.Payment). Returns the stored LedgerEntry.
//
//	GET /payments?after=N&limit=M
//	    Return up to M entries with seq > N, oldest first. limit defaults to
//	    100 and is capped at 1000.
//
//	GET /healthz
//
// HTTPClient implements domain.LedgerClient over that API. It rate limits
// its own requests and never retries. Server is an in-memory implementation
// used by cmd/ledger and by tests.
//
// The ledger only ever sees public data: one-time keys and ephemeral keys.
package ledger
