// Package common contains shared constants and small helpers used across
// Vaultic client components.
package common

const (
	// APIVersionHeaderName is the HTTP header carrying the wire-protocol
	// version on every outbound request. The server answers calls from
	// unsupported versions with a deprecated_api_version error.
	APIVersionHeaderName = "X-Vaultic-Version"

	// APIVersion is the wire-protocol version this client speaks.
	APIVersion = "1"
)
