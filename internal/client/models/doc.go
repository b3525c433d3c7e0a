// Package models holds the domain objects exchanged with the server.
//
// Every transferable entity exposes Serialize/Deserialize (JSON); the call
// pipeline never inspects their internals. Typed operations deserialize raw
// results into these types immediately after a call returns.
package models
