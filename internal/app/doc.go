// Package app wires application dependencies for the CLI.
//
// It loads Config (defaults, then <home>/config.yaml, then NANOCAMO_*
// environment variables), builds the file stores, the ledger client and the
// wallet, payment and scan services, and exposes them via Wire.
package app
