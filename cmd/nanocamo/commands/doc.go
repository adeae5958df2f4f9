// Package commands defines the nanocamo CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Create a wallet with a fresh 24-word mnemonic
//   - import       Create a wallet from an existing mnemonic
//   - address      Print the camo address of an account
//   - fingerprint  Print the spend key fingerprint of an account
//   - accounts     List accounts handed out so far
//   - send         Pay a camo address and publish the payment to the ledger
//   - scan         Find payments to an account (or to exported view keys)
//   - export-view  Print view-only keys for an account
//   - recover      Print the one-time private key of a detected payment
//
// # Implementation
//
// The root command loads the config (file, environment, then flags) and
// builds the dependency graph before any subcommand runs. Secrets are never
// logged; commands that print secrets say so.
package commands
