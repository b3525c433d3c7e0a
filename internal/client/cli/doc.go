// Package cli provides the interactive Vaultic command-line client.
//
// It wires configuration, the HTTP transport, and the authenticated call
// pipeline into a small REPL. Typical flow: register or log in with email
// and password, then operate on vaults and attachments.
//
// Key features:
//   - Register / Login / Logout (email verification, PBKDF2 verifier)
//   - List vaults, create a vault
//   - Upload / Download attachments with a progress readout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
