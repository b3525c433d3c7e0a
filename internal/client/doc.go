// Package client implements the authenticated call pipeline of the Vaultic
// client and the typed operations built on top of it.
//
// # Pipeline
//
// Every remote operation, regardless of payload shape, goes through the same
// sequence in Call: build the request envelope, let the active session
// authenticate it, dispatch through the transport, normalize any failure to
// a single *api.Error, let the session verify the response, and only then
// hand the raw result back to the typed operation for deserialization.
// Authentication happens strictly before send; verification strictly after
// a structured-error-free response. A call is never treated as successful
// if verification was due but not affirmative.
//
// # Errors
//
// Every failure surfaces as exactly one *api.Error: no retries, no partial
// results. Callers branch on its Kind (e.g. session_expired vs.
// insufficient_permissions) with errors.As.
//
// # Progress
//
// Attachment transfers accept a per-call *api.Progress handle. The transport
// writes the byte counters while the call is in flight; the pipeline writes
// the terminal error, so the handle is the single source of truth for both
// live state and terminal failure of a tracked transfer.
//
// # Concurrency
//
// Calls share no mutable state: each gets its own envelope and, if tracked,
// its own progress handle, so any number may be in flight concurrently. The
// session is read from State once at the start of a call; swapping the
// session concurrently with in-flight calls is the caller's to serialize.
package client
