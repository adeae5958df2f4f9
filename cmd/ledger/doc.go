// Package main runs the in-memory development ledger used by nanocamo
// during development and tests. It stores published camo payments in order
// and serves them to scanners.
//
// HTTP API
//
//	POST /payments
//	    Append a camo payment {"version", "one_time_key", "ephemeral_key"}.
//	    Both keys are validated as prime-order points before storing.
//
//	GET /payments?after=N&limit=M
//	    Return up to M stored entries with seq > N, oldest first.
//
//	GET /healthz
//
//	GET /metrics
//	    Prometheus metrics.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - Each request is logged at debug level with method, path, remote,
//     status, bytes and duration.
//   - The default listen address is :8080.
//
// The ledger never sees private keys; it only stores public one-time and
// ephemeral keys, and cannot tell which payments belong together.
package main
