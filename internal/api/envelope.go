// Package api defines the wire envelopes, the error taxonomy, the
// failed-response decoder, and the transfer-progress record shared by the
// Vaultic client pipeline and its transports.
package api

import (
	"encoding/json"
	"runtime"

	"github.com/google/uuid"
)

// DeviceInfo describes the device making a call. It is attached to every
// outgoing request so the server can list and revoke sessions per device.
type DeviceInfo struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	AppVersion  string `json:"appVersion,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewDeviceInfo returns a DeviceInfo with a fresh random ID and the current
// platform filled in.
func NewDeviceInfo(appVersion, description string) *DeviceInfo {
	return &DeviceInfo{
		ID:          uuid.NewString(),
		Platform:    runtime.GOOS,
		AppVersion:  appVersion,
		Description: description,
	}
}

// SessionAuth is the authentication material a session attaches to a request
// and the server echoes (re-signed) on a response. The pipeline forwards it
// without interpreting it; only the session reads or writes these fields.
type SessionAuth struct {
	Session   string `json:"session"`
	Time      string `json:"time"`
	Signature []byte `json:"signature"`
}

// Request is the envelope for one logical call. It is constructed fresh per
// call, authenticated in place by the active session, and discarded after
// the transport sends it.
type Request struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params,omitempty"`
	Device *DeviceInfo       `json:"device,omitempty"`
	Auth   *SessionAuth      `json:"auth,omitempty"`
}

// ServerError is the structured error payload carried in a response
// envelope. On a well-formed response exactly one of Error/Result is set.
type ServerError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the envelope a transport hands back for a successful exchange.
// Result stays raw; deserializing it into a domain object is the typed
// operation's job, not the pipeline's.
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *ServerError    `json:"error,omitempty"`
	Auth   *SessionAuth    `json:"auth,omitempty"`
}
